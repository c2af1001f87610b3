package service

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"storefront/internal/models"
	"storefront/internal/repository"
)

var (
	ErrInvalidQuantity   = errors.New("quantity must be positive")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// CartService handles cart mutation and resolution. The cart itself lives in
// the client session cookie; this service only validates and computes.
type CartService struct {
	products repository.ProductRepository
}

// NewCartService creates a new cart service
func NewCartService(products repository.ProductRepository) *CartService {
	return &CartService{
		products: products,
	}
}

// Add merges a product into the cart. The product must exist and be active
// (repository.ErrProductNotFound otherwise), and the requested quantity must
// not exceed current stock. Stock itself is never reduced here.
func (s *CartService) Add(ctx context.Context, items []models.CartItem, productID int64, quantity int) ([]models.CartItem, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	product, err := s.products.GetActive(ctx, productID)
	if err != nil {
		return nil, err
	}

	if quantity > product.StockQuantity {
		return nil, ErrInsufficientStock
	}

	// Increment an existing entry rather than appending a duplicate.
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity += quantity
			return items, nil
		}
	}

	return append(items, models.CartItem{ProductID: productID, Quantity: quantity}), nil
}

// Resolve looks up current product data for every cart entry and computes
// per-line subtotals and the grand total. Entries whose product no longer
// resolves are silently dropped.
func (s *CartService) Resolve(ctx context.Context, items []models.CartItem) (*models.CartView, error) {
	view := &models.CartView{
		Lines: make([]models.CartLine, 0, len(items)),
		Total: decimal.Zero,
	}

	for _, item := range items {
		product, err := s.products.GetActive(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				continue
			}
			return nil, err
		}

		subtotal := product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		view.Lines = append(view.Lines, models.CartLine{
			Product:  *product,
			Quantity: item.Quantity,
			Subtotal: subtotal,
		})
		view.Total = view.Total.Add(subtotal)
		view.Count += item.Quantity
	}

	return view, nil
}
