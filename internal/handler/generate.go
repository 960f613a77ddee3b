package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/sitesmith/sitesmith/internal/auth"
	"github.com/sitesmith/sitesmith/internal/handler/dto"
	"github.com/sitesmith/sitesmith/internal/service"
)

// GenerateHandler handles website generation requests.
type GenerateHandler struct {
	svc    *service.GeneratorService
	logger *slog.Logger
}

// NewGenerateHandler creates a new GenerateHandler.
func NewGenerateHandler(svc *service.GeneratorService, logger *slog.Logger) *GenerateHandler {
	return &GenerateHandler{
		svc:    svc,
		logger: logger,
	}
}

// Generate handles POST /api/generate. The response body is the raw
// completion text; nothing is persisted here.
func (h *GenerateHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req dto.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	// A template alone is a valid request; its seed becomes the prompt
	if req.Text == "" && req.TemplateID == "" {
		h.writeError(w, http.StatusBadRequest, "MISSING_FIELDS", "Text or templateId is required")
		return
	}

	html, err := h.svc.GenerateWebsite(r.Context(), req.Text, req.TemplateID)
	if err != nil {
		if errors.Is(err, service.ErrGenerationFailed) {
			h.logger.Error("generation failed",
				"error", err,
				"email", auth.EmailFromContext(r.Context()),
				"template_id", req.TemplateID,
			)
			h.writeError(w, http.StatusBadGateway, "GENERATION_FAILED", "Website generation failed")
			return
		}
		h.logger.Error("internal_error", "error", err)
		h.writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
		return
	}

	writeJSON(w, http.StatusOK, dto.GenerateResponse{Text: html})
}

// writeError writes an error response.
func (h *GenerateHandler) writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, dto.ErrorResponse{
		Error: message,
		Code:  code,
	})
}
