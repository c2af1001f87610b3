package session

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/securecookie"

	"storefront/internal/models"
)

const (
	cartCookieName   = "cart"
	cartCookieMaxAge = 7 * 24 * 60 * 60 // seconds
)

// CartCodec reads and writes the signed client-side cart cookie. The server
// keeps no cart state; the cookie payload is the small ordered list of
// (product id, quantity) pairs, HMAC-signed so tampering is detectable.
type CartCodec struct {
	codec  *securecookie.SecureCookie
	secure bool
	log    *slog.Logger
}

// NewCartCodec creates a cart codec signing with the given secret. secure
// controls the cookie Secure attribute (true in production).
func NewCartCodec(secret string, secure bool, log *slog.Logger) *CartCodec {
	codec := securecookie.New([]byte(secret), nil)
	codec.SetSerializer(securecookie.JSONEncoder{})
	codec.MaxAge(cartCookieMaxAge)

	return &CartCodec{
		codec:  codec,
		secure: secure,
		log:    log,
	}
}

// Read returns the cart carried by the request. A missing, expired, or
// tampered cookie yields an empty cart; a bad signature is never an error
// surfaced to the client.
func (c *CartCodec) Read(r *http.Request) []models.CartItem {
	cookie, err := r.Cookie(cartCookieName)
	if err != nil {
		return nil
	}

	var items []models.CartItem
	if err := c.codec.Decode(cartCookieName, cookie.Value, &items); err != nil {
		c.log.Warn("rejecting invalid cart cookie", "error", err)
		return nil
	}
	return items
}

// Write replaces the cart cookie with the given items.
func (c *CartCodec) Write(w http.ResponseWriter, items []models.CartItem) error {
	encoded, err := c.codec.Encode(cartCookieName, items)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     cartCookieName,
		Value:    encoded,
		Path:     "/",
		MaxAge:   cartCookieMaxAge,
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Clear expires the cart cookie.
func (c *CartCodec) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     cartCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
