package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"storefront/internal/models"
	"storefront/internal/repository"
)

var (
	ErrEmptyCart = errors.New("cart is empty")
)

// OrderService handles order placement
type OrderService struct {
	orders repository.OrderRepository
}

// NewOrderService creates a new order service
func NewOrderService(orders repository.OrderRepository) *OrderService {
	return &OrderService{
		orders: orders,
	}
}

// Place creates a pending order with one item per cart entry. The caller is
// responsible for clearing the session cart afterwards.
func (s *OrderService) Place(ctx context.Context, req models.CheckoutRequest, items []models.CartItem) (*models.Order, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	order := &models.Order{
		ID:              uuid.New().String(),
		CustomerName:    req.Name,
		CustomerEmail:   req.Email,
		CustomerAddress: req.Address,
		CustomerPhone:   req.Phone,
		Status:          models.OrderStatusPending,
	}

	orderItems := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		orderItems = append(orderItems, models.OrderItem{
			OrderID:   order.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	if err := s.orders.Create(ctx, order, orderItems); err != nil {
		return nil, err
	}

	return order, nil
}

// Count reports the total order count for the metrics endpoint.
func (s *OrderService) Count(ctx context.Context) (int, error) {
	return s.orders.Count(ctx)
}
