// Package dto provides Data Transfer Objects for API requests and responses.
package dto

import (
	"time"

	"github.com/sitesmith/sitesmith/internal/model"
)

// SignupRequest represents the request body for account signup.
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupResponse represents the response for a created account.
type SignupResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the session token. Browser clients also get
// it as a cookie; API clients send it back as a Bearer header.
type LoginResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
}

// GenerateRequest represents the request body for website generation.
type GenerateRequest struct {
	Text       string `json:"text"`
	TemplateID string `json:"templateId,omitempty"`
}

// GenerateResponse carries the raw generated HTML.
type GenerateResponse struct {
	Text string `json:"text"`
}

// SaveGenerationRequest represents the request body for persisting a
// generation.
type SaveGenerationRequest struct {
	Title      string  `json:"title"`
	Prompt     string  `json:"prompt"`
	HTMLCode   string  `json:"htmlCode"`
	TemplateID *string `json:"templateId,omitempty"`
}

// GenerationResponse represents a saved generation in API responses.
type GenerationResponse struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Prompt     string    `json:"prompt"`
	HTMLCode   string    `json:"htmlCode"`
	TemplateID *string   `json:"templateId"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// SaveGenerationResponse wraps a single created generation.
type SaveGenerationResponse struct {
	Generation GenerationResponse `json:"generation"`
}

// GenerationListResponse wraps the user's generations, newest first.
type GenerationListResponse struct {
	Generations []GenerationResponse `json:"generations"`
}

// MessageResponse represents a simple confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an API error.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// ToGenerationResponse converts a Generation model to its DTO.
func ToGenerationResponse(gen *model.Generation) GenerationResponse {
	return GenerationResponse{
		ID:         gen.ID,
		Title:      gen.Title,
		Prompt:     gen.Prompt,
		HTMLCode:   gen.HTMLCode,
		TemplateID: gen.TemplateID,
		CreatedAt:  gen.CreatedAt,
		UpdatedAt:  gen.UpdatedAt,
	}
}

// ToGenerationListResponse converts a slice of Generation models.
func ToGenerationListResponse(generations []*model.Generation) GenerationListResponse {
	responses := make([]GenerationResponse, len(generations))
	for i, gen := range generations {
		responses[i] = ToGenerationResponse(gen)
	}
	return GenerationListResponse{Generations: responses}
}
