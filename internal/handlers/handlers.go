package handlers

import (
	"GardenGuru/internal/config"
	"GardenGuru/internal/middleware"
	"GardenGuru/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	userService *service.UserService,
	plantService *service.PlantService,
	gardenService *service.GardenService,
	reminderService *service.ReminderService,
	resourceService *service.ResourceService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(config.AuthSecret))

	// Handlers
	userHandler := NewUserHandler(userService, logger, config)
	plantHandler := NewPlantHandler(plantService, logger)
	gardenHandler := NewGardenHandler(gardenService, logger)
	reminderHandler := NewReminderHandler(reminderService, logger)
	resourceHandler := NewResourceHandler(resourceService, logger)

	// User routes
	r.Post("/api/user/register", userHandler.Register)
	r.Post("/api/user/login", userHandler.Login)
	r.Post("/api/user/test", userHandler.Status)

	// Plant catalog: чтение публичное, мутации — любой аутентифицированный
	r.Route("/api/plants", func(r chi.Router) {
		r.Get("/", plantHandler.List)
		r.Get("/{id}", plantHandler.Get)
		r.Post("/", plantHandler.Create)
		r.Put("/{id}", plantHandler.Update)
		r.Delete("/{id}", plantHandler.Delete)
	})

	// Garden: всё owner-scoped
	r.Route("/api/garden", func(r chi.Router) {
		r.Get("/", gardenHandler.List)
		r.Get("/bin", gardenHandler.ListBin)
		r.Get("/{id}", gardenHandler.Get)
		r.Post("/", gardenHandler.Add)
		r.Put("/{id}", gardenHandler.Update)
		r.Put("/{id}/restore", gardenHandler.Restore)
		r.Delete("/{id}", gardenHandler.SoftDelete)
		r.Delete("/{id}/permanent", gardenHandler.HardDelete)

		r.Post("/{id}/logs", gardenHandler.AppendLog)
		r.Get("/{id}/logs", gardenHandler.ListLogs)
		r.Delete("/{gardenID}/logs/{logID}", gardenHandler.DeleteLog)
	})

	// Reminders
	r.Route("/api/reminders", func(r chi.Router) {
		r.Get("/", reminderHandler.List)
		r.Post("/", reminderHandler.Create)
		r.Put("/{id}", reminderHandler.Toggle)
		r.Delete("/{id}", reminderHandler.Delete)
	})

	// Community resources: чтение публичное, удаление — автор
	r.Route("/api/resources", func(r chi.Router) {
		r.Get("/", resourceHandler.List)
		r.Post("/", resourceHandler.Create)
		r.Delete("/{id}", resourceHandler.Delete)
	})

	return &Handler{Router: r}
}
