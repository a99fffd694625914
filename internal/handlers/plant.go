package handlers

import (
	"encoding/json"
	"net/http"

	"GardenGuru/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// PlantHandler — каталог растений. Мутации требуют аутентификации,
// но не проверяют владельца: каталог общий.
type PlantHandler struct {
	PlantService *service.PlantService
	Logger       *zap.SugaredLogger
}

// NewPlantHandler создаёт хендлер plants
func NewPlantHandler(plantService *service.PlantService, logger *zap.SugaredLogger) *PlantHandler {
	return &PlantHandler{PlantService: plantService, Logger: logger}
}

type plantRequest struct {
	Name           *string `json:"name,omitempty"`
	ScientificName *string `json:"scientificName,omitempty"`
	WaterFrequency *string `json:"waterFrequency,omitempty"`
	Sunlight       *string `json:"sunlight,omitempty"`
	Fertilizer     *string `json:"fertilizer,omitempty"`
	Pests          *string `json:"pests,omitempty"`
	ImageURL       *string `json:"imageUrl,omitempty"`
	CareGuide      *string `json:"careGuide,omitempty"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// List отдаёт каталог; ?search= — подстрока имени.
func (h *PlantHandler) List(w http.ResponseWriter, r *http.Request) {
	plants, err := h.PlantService.List(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		writeServiceError(w, h.Logger, "PlantList", err)
		return
	}
	writeJSON(w, http.StatusOK, plants)
}

func (h *PlantHandler) Get(w http.ResponseWriter, r *http.Request) {
	plant, err := h.PlantService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, h.Logger, "PlantGet", err)
		return
	}
	writeJSON(w, http.StatusOK, plant)
}

func (h *PlantHandler) Create(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUser(w, r); !ok {
		return
	}

	var req plantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("PlantCreate: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	plant, err := h.PlantService.Create(r.Context(), service.CreatePlantInput{
		Name:           deref(req.Name),
		ScientificName: deref(req.ScientificName),
		WaterFrequency: deref(req.WaterFrequency),
		Sunlight:       deref(req.Sunlight),
		Fertilizer:     deref(req.Fertilizer),
		Pests:          deref(req.Pests),
		ImageURL:       deref(req.ImageURL),
		CareGuide:      deref(req.CareGuide),
	})
	if err != nil {
		writeServiceError(w, h.Logger, "PlantCreate", err)
		return
	}
	writeJSON(w, http.StatusCreated, plant)
}

func (h *PlantHandler) Update(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUser(w, r); !ok {
		return
	}

	var req plantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("PlantUpdate: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	plant, err := h.PlantService.Update(r.Context(), chi.URLParam(r, "id"), service.UpdatePlantInput{
		Name:           req.Name,
		ScientificName: req.ScientificName,
		WaterFrequency: req.WaterFrequency,
		Sunlight:       req.Sunlight,
		Fertilizer:     req.Fertilizer,
		Pests:          req.Pests,
		ImageURL:       req.ImageURL,
		CareGuide:      req.CareGuide,
	})
	if err != nil {
		writeServiceError(w, h.Logger, "PlantUpdate", err)
		return
	}
	writeJSON(w, http.StatusOK, plant)
}

func (h *PlantHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUser(w, r); !ok {
		return
	}

	if err := h.PlantService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, h.Logger, "PlantDelete", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"msg": "plant removed"})
}
