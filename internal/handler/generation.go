package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sitesmith/sitesmith/internal/auth"
	"github.com/sitesmith/sitesmith/internal/handler/dto"
	"github.com/sitesmith/sitesmith/internal/service"
)

// GenerationHandler handles HTTP requests for saved generations.
type GenerationHandler struct {
	svc    *service.GenerationService
	logger *slog.Logger
}

// NewGenerationHandler creates a new GenerationHandler.
func NewGenerationHandler(svc *service.GenerationService, logger *slog.Logger) *GenerationHandler {
	return &GenerationHandler{
		svc:    svc,
		logger: logger,
	}
}

// Save handles POST /api/generations.
func (h *GenerationHandler) Save(w http.ResponseWriter, r *http.Request) {
	identity := auth.IdentityFromContext(r.Context())
	if identity == nil {
		h.writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	var req dto.SaveGenerationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	input := service.SaveGenerationInput{
		Title:      req.Title,
		Prompt:     req.Prompt,
		HTMLCode:   req.HTMLCode,
		TemplateID: req.TemplateID,
	}

	generation, err := h.svc.SaveGeneration(r.Context(), *identity, input)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("generation_saved",
		"generation_id", generation.ID,
		"user_id", generation.UserID,
		"has_template", generation.TemplateID != nil,
	)

	writeJSON(w, http.StatusCreated, dto.SaveGenerationResponse{
		Generation: dto.ToGenerationResponse(generation),
	})
}

// List handles GET /api/generations.
func (h *GenerationHandler) List(w http.ResponseWriter, r *http.Request) {
	identity := auth.IdentityFromContext(r.Context())
	if identity == nil {
		h.writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	generations, err := h.svc.ListGenerations(r.Context(), *identity)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToGenerationListResponse(generations))
}

// Delete handles DELETE /api/generations/{id}.
func (h *GenerationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	identity := auth.IdentityFromContext(r.Context())
	if identity == nil {
		h.writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		h.writeError(w, http.StatusBadRequest, "MISSING_ID", "Generation ID is required")
		return
	}

	if err := h.svc.DeleteGeneration(r.Context(), *identity, id); err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("generation_deleted", "generation_id", id)

	writeJSON(w, http.StatusOK, dto.MessageResponse{
		Message: "Generation deleted successfully",
	})
}

// handleServiceError maps service errors to HTTP responses.
func (h *GenerationHandler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrMissingFields):
		h.writeError(w, http.StatusBadRequest, "MISSING_FIELDS", "Title, prompt and htmlCode are required")
	case errors.Is(err, service.ErrGenerationNotFound):
		h.writeError(w, http.StatusNotFound, "GENERATION_NOT_FOUND", "Generation not found")
	default:
		h.logger.Error("internal_error", "error", err)
		h.writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
	}
}

// writeError writes an error response.
func (h *GenerationHandler) writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, dto.ErrorResponse{
		Error: message,
		Code:  code,
	})
}
