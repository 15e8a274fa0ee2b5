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

// FeedbackHandler handles HTTP requests for feedback submission.
type FeedbackHandler struct {
	service *service.FeedbackService
}

// NewFeedbackHandler creates a new FeedbackHandler.
func NewFeedbackHandler(svc *service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{service: svc}
}

// HandleCreate handles POST /api/feedback requests. Auth is optional: a
// valid token attributes the feedback, anything else stays anonymous.
func (h *FeedbackHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.CreateFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err.Error() == "http: request body too large" {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	var userID *int64
	if claims, ok := middleware.ClaimsFromContext(r.Context()); ok {
		userID = &claims.UserID
	}

	resp, err := h.service.Create(r.Context(), userID, req)
	if err != nil {
		if errors.Is(err, service.ErrMissingMessage) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		slog.Error("saving feedback failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("Failed to send feedback"))
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}
