package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sitesmith/sitesmith/internal/template"
)

// TemplatesHandler serves the static template catalog.
type TemplatesHandler struct{}

// NewTemplatesHandler creates a new TemplatesHandler.
func NewTemplatesHandler() *TemplatesHandler {
	return &TemplatesHandler{}
}

// TemplateListResponse represents the catalog listing.
type TemplateListResponse struct {
	Templates  []template.Template `json:"templates"`
	Categories []string            `json:"categories"`
}

// List handles GET /api/templates with an optional ?category= filter.
func (h *TemplatesHandler) List(w http.ResponseWriter, r *http.Request) {
	templates := template.All()
	if category := r.URL.Query().Get("category"); category != "" {
		templates = template.ByCategory(category)
	}
	if templates == nil {
		templates = []template.Template{}
	}

	writeJSON(w, http.StatusOK, TemplateListResponse{
		Templates:  templates,
		Categories: template.Categories(),
	})
}

// Get handles GET /api/templates/{id}.
func (h *TemplatesHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	tmpl, ok := template.ByID(id)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{
			"error": "template not found",
			"code":  "TEMPLATE_NOT_FOUND",
		})
		return
	}

	writeJSON(w, http.StatusOK, tmpl)
}
