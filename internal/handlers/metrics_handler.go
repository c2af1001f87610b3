package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"storefront/internal/service"
)

// MetricsHandler reports basic operational numbers as JSON.
type MetricsHandler struct {
	store    StorePinger
	products *service.ProductService
	orders   *service.OrderService
	logger   *slog.Logger
}

// NewMetricsHandler creates a new metrics handler
func NewMetricsHandler(store StorePinger, products *service.ProductService, orders *service.OrderService, logger *slog.Logger) *MetricsHandler {
	return &MetricsHandler{
		store:    store,
		products: products,
		orders:   orders,
		logger:   logger,
	}
}

// MetricsResponse is the /api/metrics body.
type MetricsResponse struct {
	Database       string    `json:"database"`
	ActiveProducts int       `json:"active_products"`
	TotalOrders    int       `json:"total_orders"`
	Timestamp      time.Time `json:"timestamp"`
}

// ServeHTTP handles GET /api/metrics
func (h *MetricsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	database := "connected"
	if err := h.store.HealthCheck(ctx); err != nil {
		database = "disconnected"
	}

	activeProducts, err := h.products.CountActive(ctx)
	if err != nil {
		h.logger.Error("failed to count active products", "error", err)
		WriteError(w, http.StatusInternalServerError, MsgInternalError, h.logger)
		return
	}

	totalOrders, err := h.orders.Count(ctx)
	if err != nil {
		h.logger.Error("failed to count orders", "error", err)
		WriteError(w, http.StatusInternalServerError, MsgInternalError, h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, MetricsResponse{
		Database:       database,
		ActiveProducts: activeProducts,
		TotalOrders:    totalOrders,
		Timestamp:      time.Now().UTC(),
	}, h.logger)
}
