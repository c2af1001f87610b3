package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"storefront/internal/models"
	"storefront/internal/repository"
	"storefront/internal/service"
	"storefront/internal/session"
	"storefront/internal/telemetry"
	"storefront/internal/view"
)

// CartHandler serves the cart page and the add-to-cart endpoint. The cart
// itself travels in the signed session cookie; this handler only moves it
// between cookie and service.
type CartHandler struct {
	cart    *service.CartService
	codec   *session.CartCodec
	metrics telemetry.Recorder
	view    *view.Renderer
	logger  *slog.Logger
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cart *service.CartService, codec *session.CartCodec, metrics telemetry.Recorder, view *view.Renderer, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		cart:    cart,
		codec:   codec,
		metrics: metrics,
		view:    view,
		logger:  logger,
	}
}

// ViewCart handles GET /cart. Entries whose product no longer resolves are
// dropped from display rather than failing the page.
func (h *CartHandler) ViewCart(w http.ResponseWriter, r *http.Request) {
	items := h.codec.Read(r)

	cart, err := h.cart.Resolve(r.Context(), items)
	if err != nil {
		h.logger.Error("failed to resolve cart", "error", err)
		h.view.Error(w, http.StatusInternalServerError, MsgInternalError)
		return
	}

	h.view.Render(w, http.StatusOK, "cart", cart)
}

// AddToCartResponse is the JSON body returned on a successful add.
type AddToCartResponse struct {
	Success   bool `json:"success"`
	CartCount int  `json:"cart_count"`
}

// AddToCart handles POST /add_to_cart with form fields product_id and
// quantity (default 1). Stock is checked but never reduced here.
func (h *CartHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.ParseInt(r.FormValue("product_id"), 10, 64)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid product id", h.logger)
		return
	}

	quantity := 1
	if raw := r.FormValue("quantity"); raw != "" {
		quantity, err = strconv.Atoi(raw)
		if err != nil {
			WriteError(w, http.StatusBadRequest, "Invalid quantity", h.logger)
			return
		}
	}

	items, err := h.cart.Add(r.Context(), h.codec.Read(r), productID, quantity)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrProductNotFound):
			WriteError(w, http.StatusNotFound, MsgProductMissing, h.logger)
		case errors.Is(err, service.ErrInvalidQuantity):
			WriteError(w, http.StatusBadRequest, "Invalid quantity", h.logger)
		case errors.Is(err, service.ErrInsufficientStock):
			WriteError(w, http.StatusBadRequest, "Insufficient stock", h.logger)
		default:
			h.logger.Error("failed to add to cart", "product_id", productID, "error", err)
			WriteError(w, http.StatusInternalServerError, MsgInternalError, h.logger)
		}
		return
	}

	if err := h.codec.Write(w, items); err != nil {
		h.logger.Error("failed to write cart cookie", "error", err)
		WriteError(w, http.StatusInternalServerError, MsgInternalError, h.logger)
		return
	}

	h.metrics.Count(telemetry.MetricAddToCart)
	WriteJSON(w, http.StatusOK, AddToCartResponse{
		Success:   true,
		CartCount: models.TotalQuantity(items),
	}, h.logger)
}
