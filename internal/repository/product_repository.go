package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"storefront/internal/models"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	Featured(ctx context.Context, limit int) ([]models.Product, error)
	ListActive(ctx context.Context, limit, offset int) ([]models.Product, error)
	CountActive(ctx context.Context) (int, error)
	GetActive(ctx context.Context, id int64) (*models.Product, error)
	Related(ctx context.Context, category string, excludeID int64, limit int) ([]models.Product, error)
	Insert(ctx context.Context, p *models.Product) (int64, error)
}

const productColumns = `id, name, description, price, category, stock_quantity, image_url, active, featured, created_at, updated_at`

// PostgresProductRepository implements ProductRepository over the store pool.
type PostgresProductRepository struct {
	db *sql.DB
}

// NewPostgresProductRepository creates a product repository backed by PostgreSQL.
func NewPostgresProductRepository(db *sql.DB) *PostgresProductRepository {
	return &PostgresProductRepository{db: db}
}

// Featured returns up to limit featured, active products, newest first.
func (r *PostgresProductRepository) Featured(ctx context.Context, limit int) ([]models.Product, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+productColumns+` FROM products
		 WHERE active = TRUE AND featured = TRUE
		 ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query featured products: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

// ListActive returns a page of active products, newest first.
func (r *PostgresProductRepository) ListActive(ctx context.Context, limit, offset int) ([]models.Product, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+productColumns+` FROM products
		 WHERE active = TRUE
		 ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

// CountActive returns the total number of active products.
func (r *PostgresProductRepository) CountActive(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM products WHERE active = TRUE`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return count, nil
}

// GetActive returns one active product by id, or ErrProductNotFound.
// Inactive products are invisible to shoppers, so they count as absent.
func (r *PostgresProductRepository) GetActive(ctx context.Context, id int64) (*models.Product, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+productColumns+` FROM products
		 WHERE id = $1 AND active = TRUE`, id)

	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product %d: %w", id, err)
	}
	return p, nil
}

// Related returns up to limit other active products in the same category.
func (r *PostgresProductRepository) Related(ctx context.Context, category string, excludeID int64, limit int) ([]models.Product, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+productColumns+` FROM products
		 WHERE active = TRUE AND category = $1 AND id <> $2
		 ORDER BY created_at DESC LIMIT $3`, category, excludeID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query related products: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

// Insert creates a new product row and returns its generated id.
func (r *PostgresProductRepository) Insert(ctx context.Context, p *models.Product) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO products (name, description, price, category, stock_quantity, image_url, active, featured)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id`,
		p.Name, p.Description, p.Price, p.Category, p.StockQuantity, p.ImageURL, p.Active, p.Featured,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert product: %w", err)
	}
	return id, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*models.Product, error) {
	var p models.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Category,
		&p.StockQuantity, &p.ImageURL, &p.Active, &p.Featured,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func scanProducts(rows *sql.Rows) ([]models.Product, error) {
	products := make([]models.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		products = append(products, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read product rows: %w", err)
	}
	return products, nil
}
