package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"storefront/internal/models"
	"storefront/internal/service"
	"storefront/internal/session"
	"storefront/internal/telemetry"
	"storefront/internal/view"
)

// CheckoutHandler serves the checkout form and order submission.
type CheckoutHandler struct {
	cart     *service.CartService
	orders   *service.OrderService
	codec    *session.CartCodec
	metrics  telemetry.Recorder
	view     *view.Renderer
	validate *validator.Validate
	logger   *slog.Logger
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(cart *service.CartService, orders *service.OrderService, codec *session.CartCodec, metrics telemetry.Recorder, view *view.Renderer, logger *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		cart:     cart,
		orders:   orders,
		codec:    codec,
		metrics:  metrics,
		view:     view,
		validate: validator.New(),
		logger:   logger,
	}
}

// CheckoutPageData is the checkout form view model.
type CheckoutPageData struct {
	Cart *models.CartView
}

// Show handles GET /checkout. An empty cart redirects back to the cart page.
func (h *CheckoutHandler) Show(w http.ResponseWriter, r *http.Request) {
	items := h.codec.Read(r)
	if len(items) == 0 {
		http.Redirect(w, r, "/cart", http.StatusFound)
		return
	}

	cart, err := h.cart.Resolve(r.Context(), items)
	if err != nil {
		h.logger.Error("failed to resolve cart for checkout", "error", err)
		h.view.Error(w, http.StatusInternalServerError, MsgInternalError)
		return
	}

	h.view.Render(w, http.StatusOK, "checkout", CheckoutPageData{Cart: cart})
}

// OrderSuccessData is the order confirmation view model.
type OrderSuccessData struct {
	OrderID string
}

// Submit handles POST /checkout: creates the pending order with one item per
// cart entry and clears the session cart.
func (h *CheckoutHandler) Submit(w http.ResponseWriter, r *http.Request) {
	items := h.codec.Read(r)
	if len(items) == 0 {
		http.Redirect(w, r, "/cart", http.StatusFound)
		return
	}

	req := models.CheckoutRequest{
		Name:    r.FormValue("name"),
		Email:   r.FormValue("email"),
		Address: r.FormValue("address"),
		Phone:   r.FormValue("phone"),
	}

	if err := h.validate.Struct(req); err != nil {
		h.logger.Warn("checkout form validation failed", "error", err)
		h.view.Error(w, http.StatusBadRequest, "All customer fields are required")
		return
	}

	order, err := h.orders.Place(r.Context(), req, items)
	if err != nil {
		h.logger.Error("failed to place order", "error", err)
		h.view.Error(w, http.StatusInternalServerError, MsgInternalError)
		return
	}

	h.codec.Clear(w)

	h.metrics.Count(telemetry.MetricOrderPlaced)
	h.metrics.Record(telemetry.MetricOrderItemCount, float64(models.TotalQuantity(items)), telemetry.UnitCount)
	h.logger.Info("order placed", "order_id", order.ID, "items_count", len(items))

	h.view.Render(w, http.StatusOK, "order_success", OrderSuccessData{OrderID: order.ID})
}
