package handlers

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/shopspring/decimal"

	"storefront/internal/models"
	"storefront/internal/repository"
	"storefront/internal/session"
	"storefront/internal/view"
)

var errStore = errors.New("store unavailable")

// Shared fakes for the handler tests. They implement the same interfaces the
// real gateways do, so handlers are exercised through their production wiring.

type fakeProductRepo struct {
	products   map[int64]models.Product
	total      int
	lastOffset int
	inserted   []models.Product
	err        error
}

func (f *fakeProductRepo) Featured(ctx context.Context, limit int) ([]models.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []models.Product{}
	for _, p := range f.products {
		if p.Active && p.Featured && len(out) < limit {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) ListActive(ctx context.Context, limit, offset int) ([]models.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastOffset = offset
	out := []models.Product{}
	for _, p := range f.products {
		if p.Active && len(out) < limit {
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
	id := int64(len(f.inserted) + 1)
	p.ID = id
	f.inserted = append(f.inserted, *p)
	return id, nil
}

type fakeOrderRepo struct {
	lastOrder *models.Order
	lastItems []models.OrderItem
	total     int
	err       error
}

func (f *fakeOrderRepo) Create(ctx context.Context, order *models.Order, items []models.OrderItem) error {
	if f.err != nil {
		return f.err
	}
	f.lastOrder = order
	f.lastItems = items
	return nil
}

func (f *fakeOrderRepo) Count(ctx context.Context) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.total, nil
}

type fakeUploader struct {
	url          string
	lastFilename string
	err          error
}

func (f *fakeUploader) Upload(ctx context.Context, body io.Reader, folder, filename, contentType string) (string, error) {
	f.lastFilename = filename
	if f.err != nil {
		return "", f.err
	}
	return f.url, nil
}

type fakeRecorder struct {
	mu     sync.Mutex
	counts map[string]int
	values map[string]float64
}

func newFakeRecorder() *fakeRecorder {
	return &fakeRecorder{counts: map[string]int{}, values: map[string]float64{}}
}

func (f *fakeRecorder) Record(name string, value float64, unit string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[name] = value
}

func (f *fakeRecorder) Count(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counts[name]++
}

type fakePinger struct {
	err error
}

func (f *fakePinger) HealthCheck(ctx context.Context) error {
	return f.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testRenderer(t *testing.T) *view.Renderer {
	t.Helper()
	renderer, err := view.NewRenderer(testLogger())
	if err != nil {
		t.Fatalf("failed to build renderer: %v", err)
	}
	return renderer
}

func testCodec() *session.CartCodec {
	return session.NewCartCodec("test-secret", false, testLogger())
}

func catalogRepo() *fakeProductRepo {
	return &fakeProductRepo{
		products: map[int64]models.Product{
			1: {ID: 1, Name: "Enamel Mug", Price: decimal.RequireFromString("10.00"), Category: "Kitchen", StockQuantity: 5, Active: true, Featured: true},
			3: {ID: 3, Name: "Cork Coaster", Price: decimal.RequireFromString("5.00"), Category: "Kitchen", StockQuantity: 2, Active: true},
			9: {ID: 9, Name: "Retired Pan", Price: decimal.RequireFromString("1.00"), Category: "Kitchen", StockQuantity: 9, Active: false},
		},
		total: 2,
	}
}
