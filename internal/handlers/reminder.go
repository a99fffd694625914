package handlers

import (
	"encoding/json"
	"net/http"

	"GardenGuru/internal/model"
	"GardenGuru/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ReminderHandler — календарь ухода.
type ReminderHandler struct {
	ReminderService *service.ReminderService
	Logger          *zap.SugaredLogger
}

// NewReminderHandler создаёт хендлер reminders
func NewReminderHandler(reminderService *service.ReminderService, logger *zap.SugaredLogger) *ReminderHandler {
	return &ReminderHandler{ReminderService: reminderService, Logger: logger}
}

func (h *ReminderHandler) List(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}
	rems, err := h.ReminderService.List(r.Context(), uid)
	if err != nil {
		writeServiceError(w, h.Logger, "ReminderList", err)
		return
	}
	writeJSON(w, http.StatusOK, rems)
}

type createReminderRequest struct {
	GardenItemID string `json:"gardenItemId,omitempty"`
	PlantID      string `json:"plantId,omitempty"`
	Type         string `json:"type"`
	Date         string `json:"date"`
}

// Create принимает либо gardenItemId, либо plantId. Во втором случае
// растение сначала сажается в сад.
func (h *ReminderHandler) Create(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req createReminderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("ReminderCreate: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		http.Error(w, "invalid date", http.StatusBadRequest)
		return
	}

	rem, err := h.ReminderService.Create(r.Context(), uid, service.CreateReminderInput{
		GardenItemID: req.GardenItemID,
		PlantID:      req.PlantID,
		Type:         model.ReminderType(req.Type),
		Date:         date,
	})
	if err != nil {
		writeServiceError(w, h.Logger, "ReminderCreate", err)
		return
	}
	writeJSON(w, http.StatusCreated, rem)
}

func (h *ReminderHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}
	rem, err := h.ReminderService.ToggleComplete(r.Context(), uid, chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, h.Logger, "ReminderToggle", err)
		return
	}
	writeJSON(w, http.StatusOK, rem)
}

func (h *ReminderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}
	if err := h.ReminderService.Delete(r.Context(), uid, chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, h.Logger, "ReminderDelete", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"msg": "reminder deleted"})
}
