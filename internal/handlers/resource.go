package handlers

import (
	"encoding/json"
	"net/http"

	"GardenGuru/internal/model"
	"GardenGuru/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ResourceHandler — доска материалов сообщества.
type ResourceHandler struct {
	ResourceService *service.ResourceService
	Logger          *zap.SugaredLogger
}

// NewResourceHandler создаёт хендлер resources
func NewResourceHandler(resourceService *service.ResourceService, logger *zap.SugaredLogger) *ResourceHandler {
	return &ResourceHandler{ResourceService: resourceService, Logger: logger}
}

func (h *ResourceHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.ResourceService.List(r.Context())
	if err != nil {
		writeServiceError(w, h.Logger, "ResourceList", err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

type createResourceRequest struct {
	Title       string `json:"title"`
	Type        string `json:"type,omitempty"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

func (h *ResourceHandler) Create(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req createResourceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("ResourceCreate: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	res, err := h.ResourceService.Create(r.Context(), uid, service.CreateResourceInput{
		Title:       req.Title,
		Type:        model.ResourceType(req.Type),
		Description: req.Description,
		URL:         req.URL,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		writeServiceError(w, h.Logger, "ResourceCreate", err)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

func (h *ResourceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}
	if err := h.ResourceService.Delete(r.Context(), uid, chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, h.Logger, "ResourceDelete", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"msg": "resource deleted"})
}
