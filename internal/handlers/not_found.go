package handlers

import (
	"net/http"

	"storefront/internal/view"
)

// NotFound returns the handler for unmatched routes: the generic 404 page.
func NotFound(view *view.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view.Error(w, http.StatusNotFound, MsgNotFound)
	}
}

// MethodNotAllowed returns the handler for unmatched methods on known routes.
func MethodNotAllowed(view *view.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view.Error(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}
