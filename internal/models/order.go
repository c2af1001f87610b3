package models

import "time"

// OrderStatusPending is the status every new order starts in. Later
// transitions belong to the fulfillment process, not this service.
const OrderStatusPending = "pending"

// Order represents a placed customer order.
type Order struct {
	ID              string    `json:"id"`
	CustomerName    string    `json:"customer_name"`
	CustomerEmail   string    `json:"customer_email"`
	CustomerAddress string    `json:"customer_address"`
	CustomerPhone   string    `json:"customer_phone"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// OrderItem represents a single line of an order. Rows are inserted in a
// batch right after their parent order and never touched again.
type OrderItem struct {
	ID        int64     `json:"id"`
	OrderID   string    `json:"order_id"`
	ProductID int64     `json:"product_id"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
}

// CheckoutRequest carries the customer fields submitted with the checkout
// form. All fields are required at submission time.
type CheckoutRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Address string `json:"address" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
}
