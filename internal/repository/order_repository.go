package repository

import (
	"context"
	"database/sql"
	"fmt"

	"storefront/internal/models"
)

// OrderRepository defines the interface for order data access
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order, items []models.OrderItem) error
	Count(ctx context.Context) (int, error)
}

// PostgresOrderRepository implements OrderRepository over the store pool.
type PostgresOrderRepository struct {
	db *sql.DB
}

// NewPostgresOrderRepository creates an order repository backed by PostgreSQL.
func NewPostgresOrderRepository(db *sql.DB) *PostgresOrderRepository {
	return &PostgresOrderRepository{db: db}
}

// Create inserts the order and its items as a single transaction, so a fault
// mid-sequence never leaves a parent order without its lines.
func (r *PostgresOrderRepository) Create(ctx context.Context, order *models.Order, items []models.OrderItem) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO orders (id, customer_name, customer_email, customer_address, customer_phone, status)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		order.ID, order.CustomerName, order.CustomerEmail, order.CustomerAddress, order.CustomerPhone, order.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	for _, item := range items {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO order_items (order_id, product_id, quantity) VALUES ($1, $2, $3)`,
			order.ID, item.ProductID, item.Quantity,
		)
		if err != nil {
			return fmt.Errorf("failed to insert order item for product %d: %w", item.ProductID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit order: %w", err)
	}
	return nil
}

// Count returns the total number of orders.
func (r *PostgresOrderRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM orders`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return count, nil
}
