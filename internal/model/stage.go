package model

// Stage — стадия роста растения в саду. Значения упорядочены,
// движение только вперёд, Mature — терминальная стадия.
type Stage string

const (
	StageSeed    Stage = "Seed"
	StageSprout  Stage = "Sprout"
	StageSapling Stage = "Sapling"
	StageTree    Stage = "Tree"
	StageMature  Stage = "Mature"
)

// stageThresholds: порог XP, с которого стадия становится достижимой.
var stageThresholds = map[Stage]int{
	StageSeed:    0,
	StageSprout:  100,
	StageSapling: 300,
	StageTree:    600,
	StageMature:  1000,
}

// nextOf: следующая стадия за текущей. Mature наружу не ведёт.
var nextOf = map[Stage]Stage{
	StageSeed:    StageSprout,
	StageSprout:  StageSapling,
	StageSapling: StageTree,
	StageTree:    StageMature,
}

// ValidStage сообщает, входит ли значение в перечисление стадий.
func ValidStage(s Stage) bool {
	_, ok := stageThresholds[s]
	return ok
}

// NextStage выполняет один шаг машины состояний роста: проверяется
// только ближайший порог от текущей стадии. Большой разовый скачок XP
// всё равно продвигает растение ровно на одну стадию за вызов.
func NextStage(current Stage, xp int) Stage {
	if !ValidStage(current) {
		current = StageSeed
	}
	next, ok := nextOf[current]
	if !ok {
		return current // Mature — дальше некуда
	}
	if xp >= stageThresholds[next] {
		return next
	}
	return current
}
