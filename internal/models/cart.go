package models

import "github.com/shopspring/decimal"

// CartItem is a single (product, quantity) pair held in the client-side
// session cookie. It never touches the database.
type CartItem struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// CartLine is a cart item resolved against current product data.
type CartLine struct {
	Product  Product         `json:"product"`
	Quantity int             `json:"quantity"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// CartView is the assembled cart page view model.
type CartView struct {
	Lines []CartLine      `json:"lines"`
	Total decimal.Decimal `json:"total"`
	Count int             `json:"count"`
}

// TotalQuantity returns the summed quantity across cart items. This is the
// cart_count reported by the add-to-cart endpoint.
func TotalQuantity(items []CartItem) int {
	total := 0
	for _, item := range items {
		total += item.Quantity
	}
	return total
}
