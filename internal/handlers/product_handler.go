package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"storefront/internal/models"
	"storefront/internal/repository"
	"storefront/internal/service"
	"storefront/internal/telemetry"
	"storefront/internal/view"
)

// ProductHandler serves the customer-facing browsing pages: home, product
// listing, and product detail.
type ProductHandler struct {
	products *service.ProductService
	metrics  telemetry.Recorder
	view     *view.Renderer
	logger   *slog.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(products *service.ProductService, metrics telemetry.Recorder, view *view.Renderer, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		products: products,
		metrics:  metrics,
		view:     view,
		logger:   logger,
	}
}

// HomePageData is the home page view model.
type HomePageData struct {
	Products []models.Product
}

// Home handles GET /
func (h *ProductHandler) Home(w http.ResponseWriter, r *http.Request) {
	featured, err := h.products.Featured(r.Context())
	if err != nil {
		h.logger.Error("failed to load featured products", "error", err)
		h.view.Error(w, http.StatusInternalServerError, MsgInternalError)
		return
	}

	h.view.Render(w, http.StatusOK, "home", HomePageData{Products: featured})
	h.metrics.Count(telemetry.MetricPageView)
}

// List handles GET /products?page=P
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	page := 1
	if raw := r.URL.Query().Get("page"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			page = parsed
		}
	}

	listing, err := h.products.List(r.Context(), page)
	if err != nil {
		h.logger.Error("failed to load product listing", "page", page, "error", err)
		h.view.Error(w, http.StatusInternalServerError, MsgInternalError)
		return
	}

	h.view.Render(w, http.StatusOK, "products", listing)
	h.metrics.Count(telemetry.MetricProductListView)
}

// ProductPageData is the product detail view model.
type ProductPageData struct {
	Product models.Product
	Related []models.Product
}

// Detail handles GET /product/{productID}. A non-numeric, unknown, or
// inactive id is a 404; no partial data is ever rendered.
func (h *ProductHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "productID"), 10, 64)
	if err != nil {
		h.view.Error(w, http.StatusNotFound, MsgNotFound)
		return
	}

	detail, err := h.products.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			h.view.Error(w, http.StatusNotFound, MsgNotFound)
			return
		}
		h.logger.Error("failed to load product", "product_id", id, "error", err)
		h.view.Error(w, http.StatusInternalServerError, MsgInternalError)
		return
	}

	h.view.Render(w, http.StatusOK, "product", ProductPageData{
		Product: detail.Product,
		Related: detail.Related,
	})
	h.metrics.Count(telemetry.MetricProductDetailView)
}
