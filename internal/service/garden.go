package service

import (
	"context"
	"errors"
	"fmt"

	"GardenGuru/internal/model"
	"GardenGuru/internal/repo"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// XPPerLog — фиксированная награда опыта за одну запись дневника роста.
const XPPerLog = 50

// GardenService — сад пользователя: жизненный цикл элементов
// (активен/корзина/удалён навсегда), дневник роста и продвижение стадий.
type GardenService struct {
	garden repo.GardenRepository
	logs   repo.GrowthLogRepository
	plants repo.PlantRepository
	logger *zap.SugaredLogger
}

func NewGardenService(g repo.GardenRepository, l repo.GrowthLogRepository, p repo.PlantRepository, logger *zap.SugaredLogger) *GardenService {
	return &GardenService{garden: g, logs: l, plants: p, logger: logger}
}

// getOwned загружает элемент и проверяет владельца.
// Состояние корзины не проверяется: владелец видит элемент и в корзине.
func (s *GardenService) getOwned(ctx context.Context, userID int64, id string) (*model.GardenItem, error) {
	it, err := s.garden.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get garden item: %w", err)
	}
	if it.UserID != userID {
		return nil, ErrForbidden
	}
	return it, nil
}

// AddToGardenInput — параметры добавления растения в сад.
type AddToGardenInput struct {
	PlantID  string
	Nickname string
	Notes    string
	Stage    model.Stage // пустая строка — Seed
}

// AddToGarden создаёт элемент сада: stage по умолчанию Seed, xp = 0.
func (s *GardenService) AddToGarden(ctx context.Context, userID int64, in AddToGardenInput) (*model.GardenItem, error) {
	if in.PlantID == "" {
		return nil, fmt.Errorf("%w: plantId required", ErrValidation)
	}
	if in.Stage == "" {
		in.Stage = model.StageSeed
	}
	if !model.ValidStage(in.Stage) {
		return nil, fmt.Errorf("%w: unknown stage %q", ErrValidation, in.Stage)
	}
	if _, err := s.plants.GetByID(ctx, in.PlantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get plant: %w", err)
	}

	it := &model.GardenItem{
		ID:       uuid.NewString(),
		UserID:   userID,
		PlantID:  in.PlantID,
		Nickname: in.Nickname,
		Notes:    in.Notes,
		Stage:    in.Stage,
		XP:       0,
	}
	if err := s.garden.Create(ctx, it); err != nil {
		return nil, fmt.Errorf("create garden item: %w", err)
	}
	s.logger.Infow("garden item created", "id", it.ID, "user_id", userID, "plant_id", in.PlantID)
	return s.getOwned(ctx, userID, it.ID)
}

// EnsureGardenItem — явный шаг "посадить каталожное растение", которым
// пользуется создание напоминания по plantId. Дедупликации нет: каждый
// вызов создаёт новый независимый элемент.
func (s *GardenService) EnsureGardenItem(ctx context.Context, userID int64, plantID string) (*model.GardenItem, error) {
	plant, err := s.plants.GetByID(ctx, plantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get plant: %w", err)
	}
	return s.AddToGarden(ctx, userID, AddToGardenInput{
		PlantID:  plantID,
		Nickname: plant.Name,
		Notes:    "Added via Reminders",
		Stage:    model.StageSeed,
	})
}

// Get возвращает элемент владельца независимо от состояния корзины.
func (s *GardenService) Get(ctx context.Context, userID int64, id string) (*model.GardenItem, error) {
	return s.getOwned(ctx, userID, id)
}

func (s *GardenService) ListActive(ctx context.Context, userID int64) ([]model.GardenItem, error) {
	items, err := s.garden.ListActive(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list garden: %w", err)
	}
	return items, nil
}

func (s *GardenService) ListBin(ctx context.Context, userID int64) ([]model.GardenItem, error) {
	items, err := s.garden.ListBin(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list bin: %w", err)
	}
	return items, nil
}

// UpdateItemInput — частичное обновление: применяются только не-nil поля.
type UpdateItemInput struct {
	Nickname *string
	Notes    *string
	Stage    *model.Stage
}

// Update правит nickname/notes/stage. Явная правка стадии минует движок
// продвижения и помечает стадию как зафиксированную вручную.
func (s *GardenService) Update(ctx context.Context, userID int64, id string, in UpdateItemInput) (*model.GardenItem, error) {
	if _, err := s.getOwned(ctx, userID, id); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if in.Nickname != nil {
		updates["nickname"] = *in.Nickname
	}
	if in.Notes != nil {
		updates["notes"] = *in.Notes
	}
	if in.Stage != nil {
		if !model.ValidStage(*in.Stage) {
			return nil, fmt.Errorf("%w: unknown stage %q", ErrValidation, *in.Stage)
		}
		updates["stage"] = *in.Stage
		updates["stage_pinned"] = true
	}

	if len(updates) > 0 {
		if err := s.garden.Update(ctx, id, updates); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, fmt.Errorf("update garden item: %w", err)
		}
	}
	return s.getOwned(ctx, userID, id)
}

// SoftDelete переводит элемент в корзину. Записи дневника и напоминания
// не трогаются.
func (s *GardenService) SoftDelete(ctx context.Context, userID int64, id string) error {
	if _, err := s.getOwned(ctx, userID, id); err != nil {
		return err
	}
	if err := s.garden.SetDeleted(ctx, id, true); err != nil {
		return fmt.Errorf("soft delete: %w", err)
	}
	s.logger.Infow("garden item binned", "id", id, "user_id", userID)
	return nil
}

// Restore возвращает элемент из корзины; прочие поля не меняются.
func (s *GardenService) Restore(ctx context.Context, userID int64, id string) (*model.GardenItem, error) {
	if _, err := s.getOwned(ctx, userID, id); err != nil {
		return nil, err
	}
	if err := s.garden.SetDeleted(ctx, id, false); err != nil {
		return nil, fmt.Errorf("restore: %w", err)
	}
	return s.getOwned(ctx, userID, id)
}

// HardDelete необратимо удаляет элемент вместе со всеми записями его
// дневника. Предварительный перенос в корзину не требуется.
func (s *GardenService) HardDelete(ctx context.Context, userID int64, id string) error {
	if _, err := s.getOwned(ctx, userID, id); err != nil {
		return err
	}
	if err := s.garden.HardDelete(ctx, id); err != nil {
		return fmt.Errorf("hard delete: %w", err)
	}
	s.logger.Infow("garden item purged", "id", id, "user_id", userID)
	return nil
}

// AppendLogInput — содержимое записи дневника роста.
type AppendLogInput struct {
	Notes    string
	Height   *float64
	PhotoURL string
}

// AppendLog добавляет запись дневника, начисляет XPPerLog опыта
// (атомарный инкремент) и выполняет один шаг машины стадий от текущей
// сохранённой стадии. Возвращает запись и обновлённый элемент, чтобы
// клиент отрисовал новые XP/стадию без второго запроса.
// Элемент в корзине логировать можно: корзина — флаг видимости, не замок.
func (s *GardenService) AppendLog(ctx context.Context, userID int64, gardenItemID string, in AppendLogInput) (*model.GrowthLog, *model.GardenItem, error) {
	it, err := s.getOwned(ctx, userID, gardenItemID)
	if err != nil {
		return nil, nil, err
	}

	log := &model.GrowthLog{
		ID:           uuid.NewString(),
		GardenItemID: gardenItemID,
		Notes:        in.Notes,
		Height:       in.Height,
		PhotoURL:     in.PhotoURL,
	}
	if err := s.logs.Create(ctx, log); err != nil {
		return nil, nil, fmt.Errorf("create growth log: %w", err)
	}

	newXP, err := s.garden.AddXP(ctx, gardenItemID, XPPerLog)
	if err != nil {
		return nil, nil, fmt.Errorf("add xp: %w", err)
	}

	// один шаг от текущей стадии; CAS защищает от параллельного повышения
	if next := model.NextStage(it.Stage, newXP); next != it.Stage {
		promoted, err := s.garden.PromoteStage(ctx, gardenItemID, it.Stage, next)
		if err != nil {
			return nil, nil, fmt.Errorf("promote stage: %w", err)
		}
		if promoted {
			s.logger.Infow("stage promoted", "id", gardenItemID, "from", it.Stage, "to", next, "xp", newXP)
		}
	}

	updated, err := s.getOwned(ctx, userID, gardenItemID)
	if err != nil {
		return nil, nil, err
	}
	return log, updated, nil
}

// ListLogs — записи дневника элемента, новые первыми.
func (s *GardenService) ListLogs(ctx context.Context, userID int64, gardenItemID string) ([]model.GrowthLog, error) {
	if _, err := s.getOwned(ctx, userID, gardenItemID); err != nil {
		return nil, err
	}
	logs, err := s.logs.ListByItem(ctx, gardenItemID)
	if err != nil {
		return nil, fmt.Errorf("list growth logs: %w", err)
	}
	return logs, nil
}

// DeleteLog удаляет одну запись дневника. Опыт и стадия не откатываются.
func (s *GardenService) DeleteLog(ctx context.Context, userID int64, gardenItemID, logID string) error {
	log, err := s.logs.GetByID(ctx, logID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("get growth log: %w", err)
	}
	if log.GardenItemID != gardenItemID {
		return ErrNotFound
	}
	// владелец записи определяется через её элемент сада
	if _, err := s.getOwned(ctx, userID, log.GardenItemID); err != nil {
		return err
	}
	if err := s.logs.Delete(ctx, logID); err != nil {
		return fmt.Errorf("delete growth log: %w", err)
	}
	return nil
}
