package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Generic messages for faults that carry no safe detail. The specifics stay
// in the server-side logs.
const (
	MsgNotFound       = "Page not found"
	MsgInternalError  = "Internal server error"
	MsgProductMissing = "Product not found"
)

// WriteJSON writes a JSON response
func WriteJSON(w http.ResponseWriter, status int, data interface{}, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response", "error", err)
	}
}

// WriteError writes an error response in JSON format
func WriteError(w http.ResponseWriter, status int, message string, logger *slog.Logger) {
	WriteJSON(w, status, map[string]string{"error": message}, logger)
}
