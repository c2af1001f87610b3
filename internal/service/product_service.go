package service

import (
	"context"

	"storefront/internal/models"
	"storefront/internal/repository"
)

const (
	// FeaturedLimit caps the home page product grid.
	FeaturedLimit = 8
	// PageSize is the number of products per listing page.
	PageSize = 12
	// RelatedLimit caps the related-products strip on the detail page.
	RelatedLimit = 4
)

// ProductService handles business logic for product browsing
type ProductService struct {
	repo repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(repo repository.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// ProductPage is one page of the product listing.
type ProductPage struct {
	Products   []models.Product
	Page       int
	TotalPages int
	Total      int
}

// PrevPage and NextPage feed the pagination links in the listing template.

func (p *ProductPage) PrevPage() int { return p.Page - 1 }

func (p *ProductPage) NextPage() int { return p.Page + 1 }

// ProductDetail is a product together with others from its category.
type ProductDetail struct {
	Product models.Product
	Related []models.Product
}

// Featured returns the products promoted on the home page.
func (s *ProductService) Featured(ctx context.Context) ([]models.Product, error) {
	return s.repo.Featured(ctx, FeaturedLimit)
}

// List returns one page of active products plus pagination totals.
// Pages below 1 are clamped to the first page.
func (s *ProductService) List(ctx context.Context, page int) (*ProductPage, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * PageSize

	products, err := s.repo.ListActive(ctx, PageSize, offset)
	if err != nil {
		return nil, err
	}

	total, err := s.repo.CountActive(ctx)
	if err != nil {
		return nil, err
	}

	totalPages := (total + PageSize - 1) / PageSize

	return &ProductPage{
		Products:   products,
		Page:       page,
		TotalPages: totalPages,
		Total:      total,
	}, nil
}

// Get returns one active product and up to RelatedLimit others sharing its
// category. Returns repository.ErrProductNotFound for absent or inactive ids.
func (s *ProductService) Get(ctx context.Context, id int64) (*ProductDetail, error) {
	product, err := s.repo.GetActive(ctx, id)
	if err != nil {
		return nil, err
	}

	related, err := s.repo.Related(ctx, product.Category, product.ID, RelatedLimit)
	if err != nil {
		return nil, err
	}

	return &ProductDetail{
		Product: *product,
		Related: related,
	}, nil
}

// CountActive reports the active product count for the metrics endpoint.
func (s *ProductService) CountActive(ctx context.Context) (int, error) {
	return s.repo.CountActive(ctx)
}
