package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

// StorePinger verifies store reachability with a trivial query.
type StorePinger interface {
	HealthCheck(ctx context.Context) error
}

// HealthHandler provides the health check endpoint
type HealthHandler struct {
	store  StorePinger
	logger *slog.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(store StorePinger, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		store:  store,
		logger: logger,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Database  string    `json:"database,omitempty"`
	Reason    string    `json:"reason,omitempty"`
}

// ServeHTTP handles GET /health. The store ping is the reconnect point for a
// dropped database connection; nothing else re-establishes it.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := h.store.HealthCheck(r.Context()); err != nil {
		h.logger.Error("health check failed", "error", err)
		WriteJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:    "unhealthy",
			Timestamp: time.Now().UTC(),
			Reason:    "database unreachable",
		}, h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Database:  "connected",
	}, h.logger)
}
