package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/learnx/learnx-go/internal/middleware"
	"github.com/learnx/learnx-go/internal/model"
	"github.com/learnx/learnx-go/internal/service"
)

// ReflectionHandler handles HTTP requests for reflection capture and listing.
type ReflectionHandler struct {
	service *service.ReflectionService
}

// NewReflectionHandler creates a new ReflectionHandler.
func NewReflectionHandler(svc *service.ReflectionService) *ReflectionHandler {
	return &ReflectionHandler{service: svc}
}

// HandleCreate handles POST /api/reflections requests.
func (h *ReflectionHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("Missing token"))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.CreateReflectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err.Error() == "http: request body too large" {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	resp, err := h.service.Create(r.Context(), claims.UserID, claims.Email, req)
	if err != nil {
		if errors.Is(err, service.ErrMissingPromptAnswer) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		slog.Error("saving reflection failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("Failed to save reflection"))
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// HandleList handles GET /api/reflections requests.
func (h *ReflectionHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("Missing token"))
		return
	}

	resp, err := h.service.List(r.Context(), claims.UserID)
	if err != nil {
		slog.Error("listing reflections failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("Failed to load reflections"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
