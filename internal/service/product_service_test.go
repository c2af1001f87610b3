package service

import (
	"context"
	"testing"

	"storefront/internal/models"
	"storefront/internal/repository"
)

// fakeProductRepo implements repository.ProductRepository for service tests.
type fakeProductRepo struct {
	products   map[int64]models.Product
	total      int
	lastLimit  int
	lastOffset int
	err        error
}

func (f *fakeProductRepo) Featured(ctx context.Context, limit int) ([]models.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastLimit = limit
	out := []models.Product{}
	for _, p := range f.products {
		if p.Active && p.Featured {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) ListActive(ctx context.Context, limit, offset int) ([]models.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastLimit = limit
	f.lastOffset = offset
	out := []models.Product{}
	for _, p := range f.products {
		if p.Active {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) CountActive(ctx context.Context) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.total, nil
}

func (f *fakeProductRepo) GetActive(ctx context.Context, id int64) (*models.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.products[id]
	if !ok || !p.Active {
		return nil, repository.ErrProductNotFound
	}
	return &p, nil
}

func (f *fakeProductRepo) Related(ctx context.Context, category string, excludeID int64, limit int) ([]models.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []models.Product{}
	for _, p := range f.products {
		if p.Active && p.Category == category && p.ID != excludeID && len(out) < limit {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) Insert(ctx context.Context, p *models.Product) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	id := int64(len(f.products) + 1)
	p.ID = id
	f.products[id] = *p
	return id, nil
}

func TestProductService_List_Pagination(t *testing.T) {
	tests := []struct {
		name           string
		page           int
		total          int
		wantPage       int
		wantOffset     int
		wantTotalPages int
	}{
		{"first page", 1, 30, 1, 0, 3},
		{"second page", 2, 30, 2, 12, 3},
		{"zero clamps to first", 0, 30, 1, 0, 3},
		{"negative clamps to first", -5, 30, 1, 0, 3},
		{"partial last page", 3, 25, 3, 24, 3},
		{"no products", 1, 0, 1, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeProductRepo{products: map[int64]models.Product{}, total: tt.total}
			svc := NewProductService(repo)

			page, err := svc.List(context.Background(), tt.page)
			if err != nil {
				t.Fatalf("List() unexpected error = %v", err)
			}

			if page.Page != tt.wantPage {
				t.Errorf("Page = %d, want %d", page.Page, tt.wantPage)
			}
			if repo.lastOffset != tt.wantOffset {
				t.Errorf("offset = %d, want %d", repo.lastOffset, tt.wantOffset)
			}
			if repo.lastLimit != PageSize {
				t.Errorf("limit = %d, want %d", repo.lastLimit, PageSize)
			}
			if page.TotalPages != tt.wantTotalPages {
				t.Errorf("TotalPages = %d, want %d", page.TotalPages, tt.wantTotalPages)
			}
		})
	}
}

func TestProductService_Get(t *testing.T) {
	repo := &fakeProductRepo{products: map[int64]models.Product{
		1: {ID: 1, Name: "Mug", Category: "Kitchen", Active: true},
		2: {ID: 2, Name: "Plate", Category: "Kitchen", Active: true},
		3: {ID: 3, Name: "Retired Pan", Category: "Kitchen", Active: false},
	}}
	svc := NewProductService(repo)

	detail, err := svc.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("Get() unexpected error = %v", err)
	}
	if detail.Product.Name != "Mug" {
		t.Errorf("expected product Mug, got %s", detail.Product.Name)
	}
	if len(detail.Related) != 1 || detail.Related[0].ID != 2 {
		t.Errorf("expected related [2], got %+v", detail.Related)
	}

	if _, err := svc.Get(context.Background(), 3); err != repository.ErrProductNotFound {
		t.Errorf("expected ErrProductNotFound for inactive product, got %v", err)
	}
	if _, err := svc.Get(context.Background(), 99); err != repository.ErrProductNotFound {
		t.Errorf("expected ErrProductNotFound for unknown product, got %v", err)
	}
}

func TestProductService_Featured_ExcludesNonFeatured(t *testing.T) {
	repo := &fakeProductRepo{products: map[int64]models.Product{
		1: {ID: 1, Active: true, Featured: true},
		2: {ID: 2, Active: true, Featured: false},
		3: {ID: 3, Active: false, Featured: true},
	}}
	svc := NewProductService(repo)

	featured, err := svc.Featured(context.Background())
	if err != nil {
		t.Fatalf("Featured() unexpected error = %v", err)
	}
	if len(featured) != 1 || featured[0].ID != 1 {
		t.Errorf("expected only product 1 featured, got %+v", featured)
	}
	if repo.lastLimit != FeaturedLimit {
		t.Errorf("limit = %d, want %d", repo.lastLimit, FeaturedLimit)
	}
}
