package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
)

//go:embed templates/*.gohtml
var templatesFS embed.FS

// Renderer executes the embedded page templates. Handlers hand it a plain
// view-model struct; markup stays out of the handler layer entirely.
type Renderer struct {
	templates *template.Template
	log       *slog.Logger
}

// NewRenderer parses the embedded templates.
func NewRenderer(log *slog.Logger) (*Renderer, error) {
	templates, err := template.ParseFS(templatesFS, "templates/*.gohtml")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Renderer{templates: templates, log: log}, nil
}

// Render writes the named page with the given status. The template is
// executed into a buffer first so a rendering fault produces a clean 500
// instead of a half-written page.
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data any) {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, page+".gohtml", data); err != nil {
		r.log.Error("failed to render template", "page", page, "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// ErrorPageData is the view model for the generic error page.
type ErrorPageData struct {
	Status  int
	Message string
}

// Error renders the generic error page.
func (r *Renderer) Error(w http.ResponseWriter, status int, message string) {
	r.Render(w, status, "error", ErrorPageData{Status: status, Message: message})
}
