package handler

import (
	"net/http"
	"time"
)

// HealthHandler reports service liveness and uptime.
type HealthHandler struct {
	startedAt time.Time
}

// NewHealthHandler creates a HealthHandler measuring uptime from startedAt.
func NewHealthHandler(startedAt time.Time) *HealthHandler {
	return &HealthHandler{startedAt: startedAt}
}

// HandleHealth handles GET /api/health requests.
func (h *HealthHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"uptime": time.Since(h.startedAt).Seconds(),
	})
}
