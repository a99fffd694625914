package handlers

import (
	"encoding/json"
	"net/http"

	"GardenGuru/internal/model"
	"GardenGuru/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// GardenHandler — сад пользователя, корзина и дневник роста.
type GardenHandler struct {
	GardenService *service.GardenService
	Logger        *zap.SugaredLogger
}

// NewGardenHandler создаёт хендлер garden
func NewGardenHandler(gardenService *service.GardenService, logger *zap.SugaredLogger) *GardenHandler {
	return &GardenHandler{GardenService: gardenService, Logger: logger}
}

func (h *GardenHandler) List(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}
	items, err := h.GardenService.ListActive(r.Context(), uid)
	if err != nil {
		writeServiceError(w, h.Logger, "GardenList", err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *GardenHandler) ListBin(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}
	items, err := h.GardenService.ListBin(r.Context(), uid)
	if err != nil {
		writeServiceError(w, h.Logger, "GardenBin", err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *GardenHandler) Get(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}
	item, err := h.GardenService.Get(r.Context(), uid, chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, h.Logger, "GardenGet", err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

type addToGardenRequest struct {
	PlantID  string `json:"plantId"`
	Nickname string `json:"nickname,omitempty"`
	Notes    string `json:"notes,omitempty"`
	Stage    string `json:"stage,omitempty"`
}

func (h *GardenHandler) Add(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req addToGardenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("GardenAdd: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	item, err := h.GardenService.AddToGarden(r.Context(), uid, service.AddToGardenInput{
		PlantID:  req.PlantID,
		Nickname: req.Nickname,
		Notes:    req.Notes,
		Stage:    model.Stage(req.Stage),
	})
	if err != nil {
		writeServiceError(w, h.Logger, "GardenAdd", err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

type updateItemRequest struct {
	Nickname *string `json:"nickname,omitempty"`
	Notes    *string `json:"notes,omitempty"`
	Stage    *string `json:"stage,omitempty"`
}

func (h *GardenHandler) Update(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req updateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("GardenUpdate: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	in := service.UpdateItemInput{Nickname: req.Nickname, Notes: req.Notes}
	if req.Stage != nil {
		st := model.Stage(*req.Stage)
		in.Stage = &st
	}

	item, err := h.GardenService.Update(r.Context(), uid, chi.URLParam(r, "id"), in)
	if err != nil {
		writeServiceError(w, h.Logger, "GardenUpdate", err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *GardenHandler) Restore(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}
	item, err := h.GardenService.Restore(r.Context(), uid, chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, h.Logger, "GardenRestore", err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *GardenHandler) SoftDelete(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}
	if err := h.GardenService.SoftDelete(r.Context(), uid, chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, h.Logger, "GardenSoftDelete", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"msg": "plant moved to recycle bin"})
}

func (h *GardenHandler) HardDelete(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}
	if err := h.GardenService.HardDelete(r.Context(), uid, chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, h.Logger, "GardenHardDelete", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"msg": "plant permanently deleted"})
}

type appendLogRequest struct {
	Notes    string   `json:"notes,omitempty"`
	Height   *float64 `json:"height,omitempty"`
	PhotoURL string   `json:"photoUrl,omitempty"`
}

// AppendLog добавляет запись дневника и отдаёт {log, gardenItem}, чтобы
// клиент сразу отрисовал новые XP/стадию.
func (h *GardenHandler) AppendLog(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req appendLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("AppendLog: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	log, item, err := h.GardenService.AppendLog(r.Context(), uid, chi.URLParam(r, "id"), service.AppendLogInput{
		Notes:    req.Notes,
		Height:   req.Height,
		PhotoURL: req.PhotoURL,
	})
	if err != nil {
		writeServiceError(w, h.Logger, "AppendLog", err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"log": log, "gardenItem": item})
}

func (h *GardenHandler) ListLogs(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}
	logs, err := h.GardenService.ListLogs(r.Context(), uid, chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, h.Logger, "ListLogs", err)
		return
	}
	writeJSON(w, http.StatusOK, logs)
}

func (h *GardenHandler) DeleteLog(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}
	err := h.GardenService.DeleteLog(r.Context(), uid, chi.URLParam(r, "gardenID"), chi.URLParam(r, "logID"))
	if err != nil {
		writeServiceError(w, h.Logger, "DeleteLog", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"msg": "log deleted"})
}
