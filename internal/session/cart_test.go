package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/models"
	"storefront/pkg/logger"
)

func newTestCodec(secret string) *CartCodec {
	return NewCartCodec(secret, false, logger.New("error"))
}

func requestWithCookies(t *testing.T, w *httptest.ResponseRecorder) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	for _, c := range w.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func TestCartCodec_RoundTrip(t *testing.T) {
	codec := newTestCodec("test-secret")
	items := []models.CartItem{
		{ProductID: 1, Quantity: 2},
		{ProductID: 3, Quantity: 1},
	}

	w := httptest.NewRecorder()
	if err := codec.Write(w, items); err != nil {
		t.Fatalf("Write() unexpected error = %v", err)
	}

	got := codec.Read(requestWithCookies(t, w))
	if len(got) != 2 {
		t.Fatalf("expected 2 cart items, got %d", len(got))
	}
	if got[0].ProductID != 1 || got[0].Quantity != 2 {
		t.Errorf("unexpected first item: %+v", got[0])
	}
	if got[1].ProductID != 3 || got[1].Quantity != 1 {
		t.Errorf("unexpected second item: %+v", got[1])
	}
}

func TestCartCodec_MissingCookie(t *testing.T) {
	codec := newTestCodec("test-secret")

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	if got := codec.Read(req); len(got) != 0 {
		t.Errorf("expected empty cart without cookie, got %d items", len(got))
	}
}

func TestCartCodec_TamperedCookie(t *testing.T) {
	codec := newTestCodec("test-secret")

	w := httptest.NewRecorder()
	if err := codec.Write(w, []models.CartItem{{ProductID: 1, Quantity: 1}}); err != nil {
		t.Fatalf("Write() unexpected error = %v", err)
	}

	cookie := w.Result().Cookies()[0]
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.AddCookie(&http.Cookie{Name: cookie.Name, Value: cookie.Value + "x"})

	if got := codec.Read(req); len(got) != 0 {
		t.Errorf("expected tampered cookie to yield empty cart, got %d items", len(got))
	}
}

func TestCartCodec_WrongSecret(t *testing.T) {
	writer := newTestCodec("secret-one")
	reader := newTestCodec("secret-two")

	w := httptest.NewRecorder()
	if err := writer.Write(w, []models.CartItem{{ProductID: 1, Quantity: 1}}); err != nil {
		t.Fatalf("Write() unexpected error = %v", err)
	}

	if got := reader.Read(requestWithCookies(t, w)); len(got) != 0 {
		t.Errorf("expected cookie signed with another key to be rejected, got %d items", len(got))
	}
}

func TestCartCodec_Clear(t *testing.T) {
	codec := newTestCodec("test-secret")

	w := httptest.NewRecorder()
	codec.Clear(w)

	cookies := w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}
	if cookies[0].MaxAge >= 0 {
		t.Errorf("expected expiring cookie, got MaxAge %d", cookies[0].MaxAge)
	}
}
