package main

import (
	"net/http"

	"GardenGuru/internal/config"
	"GardenGuru/internal/handlers"
	"GardenGuru/internal/middleware"
	"GardenGuru/internal/repo"
	"GardenGuru/internal/service"

	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	userRepo := repo.NewUserRepository(gormDB)
	plantRepo := repo.NewPlantRepository(gormDB)
	gardenRepo := repo.NewGardenRepository(gormDB)
	logRepo := repo.NewGrowthLogRepository(gormDB)
	reminderRepo := repo.NewReminderRepository(gormDB)
	resourceRepo := repo.NewResourceRepository(gormDB)

	userService := service.NewUserService(userRepo)
	plantService := service.NewPlantService(plantRepo, sugar)
	gardenService := service.NewGardenService(gardenRepo, logRepo, plantRepo, sugar)
	reminderService := service.NewReminderService(reminderRepo, gardenService, sugar)
	resourceService := service.NewResourceService(resourceRepo, sugar)

	h := handlers.NewHandler(userService, plantService, gardenService, reminderService, resourceService, sugar, cfg)

	addr := cfg.BaseURL

	sugar.Infow(
		"Starting server",
		"addr", addr,
	)

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"EnableHTTPS", cfg.EnableHTTPS,
		"DatabaseDSN", cfg.DatabaseDSN,
	)

	if err := http.ListenAndServe(addr, h.Router); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}
