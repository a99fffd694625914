package main

import (
	"GardenGuru/internal/config"
	"GardenGuru/internal/model"
	"GardenGuru/internal/repo"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// starterPlants — стартовый каталог. Повторный запуск ничего не дублирует:
// при непустом каталоге сидер выходит сразу.
var starterPlants = []model.Plant{
	{
		Name:           "Tomato",
		ScientificName: "Solanum lycopersicum",
		WaterFrequency: "Every 2-3 days",
		Sunlight:       "Full Sun",
		Fertilizer:     "Balanced fertilizer every 2 weeks",
		Pests:          "Aphids, Hornworms",
		ImageURL:       "https://images.unsplash.com/photo-1592841200221-a682ac6c0263?w=800&q=80",
	},
	{
		Name:           "Basil",
		ScientificName: "Ocimum basilicum",
		WaterFrequency: "Every day",
		Sunlight:       "Full Sun to Partial Shade",
		Fertilizer:     "High nitrogen fertilizer every month",
		Pests:          "Aphids, Slugs",
		ImageURL:       "https://images.unsplash.com/photo-1618375531912-867984bdf9d6?w=800&q=80",
	},
	{
		Name:           "Monstera",
		ScientificName: "Monstera deliciosa",
		WaterFrequency: "Every 1-2 weeks",
		Sunlight:       "Bright Indirect Light",
		Fertilizer:     "Balanced liquid fertilizer monthly",
		Pests:          "Spider mites, Scale",
		ImageURL:       "https://images.unsplash.com/photo-1614594975525-e45190c55d0b?w=800&q=80",
	},
	{
		Name:           "Snake Plant",
		ScientificName: "Dracaena trifasciata",
		WaterFrequency: "Every 2-3 weeks",
		Sunlight:       "Low to Bright Indirect Light",
		Fertilizer:     "All-purpose plant food twice a year",
		Pests:          "Mealybugs",
		ImageURL:       "https://images.unsplash.com/photo-1599598425947-8109bf4397de?w=800&q=80",
	},
	{
		Name:           "Aloe Vera",
		ScientificName: "Aloe barbadensis miller",
		WaterFrequency: "Every 3 weeks",
		Sunlight:       "Bright Direct Light",
		Fertilizer:     "Succulent fertilizer once a year",
		Pests:          "Snails, Aphids",
		ImageURL:       "https://images.unsplash.com/photo-1628864700057-36e6761fa0da?w=800&q=80",
	},
	{
		Name:           "Peace Lily",
		ScientificName: "Spathiphyllum",
		WaterFrequency: "Every week",
		Sunlight:       "Low to Medium Light",
		Fertilizer:     "Balanced fertilizer every 6 weeks",
		Pests:          "Spider mites",
		ImageURL:       "https://images.unsplash.com/photo-1593482885934-803fc52f5af6?w=800&q=80",
	},
	{
		Name:           "Fiddle Leaf Fig",
		ScientificName: "Ficus lyrata",
		WaterFrequency: "Every 1-2 weeks",
		Sunlight:       "Bright Indirect Light",
		Fertilizer:     "High nitrogen fertilizer monthly",
		Pests:          "Spider mites, Scale",
		ImageURL:       "https://images.unsplash.com/photo-1616690248206-7e90dc2bb55a?w=800&q=80",
	},
	{
		Name:           "Pothos",
		ScientificName: "Epipremnum aureum",
		WaterFrequency: "Every 1-2 weeks",
		Sunlight:       "Low to Bright Light",
		Fertilizer:     "Balanced fertilizer every month",
		Pests:          "Mealybugs",
		ImageURL:       "https://images.unsplash.com/photo-1596720520638-c62529ad5922?w=800&q=80",
	},
	{
		Name:           "Lavender",
		ScientificName: "Lavandula",
		WaterFrequency: "Every 2-3 weeks",
		Sunlight:       "Full Sun",
		Fertilizer:     "Low nitrogen fertilizer once a year",
		Pests:          "Whiteflies, Spittlebugs",
		ImageURL:       "https://images.unsplash.com/photo-1592187652399-6f91d8302f3a?w=800&q=80",
	},
	{
		Name:           "Spider Plant",
		ScientificName: "Chlorophytum comosum",
		WaterFrequency: "Every week",
		Sunlight:       "Bright Indirect Light",
		Fertilizer:     "General purpose fertilizer every month",
		Pests:          "Spider mites, Aphids",
		ImageURL:       "https://images.unsplash.com/photo-1572688484238-80e2270942e5?w=800&q=80",
	},
}

func main() {
	cfg := config.NewConfig()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	sugar := logger.Sugar()
	defer func() { _ = logger.Sync() }()

	db, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	var count int64
	if err := db.Model(&model.Plant{}).Count(&count).Error; err != nil {
		sugar.Fatalw("failed to count plants", "error", err)
	}
	if count > 0 {
		sugar.Infow("catalog is not empty, nothing to do", "plants", count)
		return
	}

	for i := range starterPlants {
		starterPlants[i].ID = uuid.NewString()
	}
	if err := db.Create(&starterPlants).Error; err != nil {
		sugar.Fatalw("failed to seed plants", "error", err)
	}
	sugar.Infow("catalog seeded", "plants", len(starterPlants))
}
