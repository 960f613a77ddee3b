// Package service provides business logic for the application.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/sitesmith/sitesmith/internal/auth"
	"github.com/sitesmith/sitesmith/internal/metrics"
	"github.com/sitesmith/sitesmith/internal/model"
	"github.com/sitesmith/sitesmith/internal/repository"
)

// Service errors.
var (
	ErrMissingFields      = errors.New("title, prompt and htmlCode are required")
	ErrGenerationNotFound = errors.New("generation not found")
)

// GenerationStore defines the persistence operations the service needs.
type GenerationStore interface {
	GetOrCreateUser(ctx context.Context, user *model.User) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	CreateGeneration(ctx context.Context, generation *model.Generation) error
	ListGenerationsByUser(ctx context.Context, userID string) ([]*model.Generation, error)
	DeleteGenerationByIDAndUser(ctx context.Context, id, userID string) error
}

// GenerationService handles saved-generation business logic. The
// acting user is always passed in explicitly as an Identity; there is
// no ambient session state.
type GenerationService struct {
	store   GenerationStore
	metrics metrics.Recorder
}

// NewGenerationService creates a new GenerationService.
func NewGenerationService(store GenerationStore, recorder metrics.Recorder) *GenerationService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &GenerationService{
		store:   store,
		metrics: recorder,
	}
}

// SaveGenerationInput defines input for persisting a generation.
type SaveGenerationInput struct {
	Title      string
	Prompt     string
	HTMLCode   string
	TemplateID *string
}

// SaveGeneration persists a generation for the identity's user,
// creating the user row on first save. Validation runs before any
// database write.
func (s *GenerationService) SaveGeneration(ctx context.Context, identity auth.Identity, input SaveGenerationInput) (*model.Generation, error) {
	if input.Title == "" || input.Prompt == "" || input.HTMLCode == "" {
		return nil, ErrMissingFields
	}

	user, err := s.store.GetOrCreateUser(ctx, &model.User{
		ID:        ulid.Make().String(),
		Email:     identity.Email,
		Name:      identity.Name,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("resolve user: %w", err)
	}

	now := time.Now().UTC()
	generation := &model.Generation{
		ID:         ulid.Make().String(),
		Title:      input.Title,
		Prompt:     input.Prompt,
		HTMLCode:   input.HTMLCode,
		TemplateID: input.TemplateID,
		UserID:     user.ID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.store.CreateGeneration(ctx, generation); err != nil {
		return nil, fmt.Errorf("create generation: %w", err)
	}

	s.metrics.IncGenerationSaved()

	return generation, nil
}

// ListGenerations returns the identity's generations, newest first.
// An identity whose user row does not exist yet simply has no
// generations.
func (s *GenerationService) ListGenerations(ctx context.Context, identity auth.Identity) ([]*model.Generation, error) {
	user, err := s.store.GetUserByEmail(ctx, identity.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return []*model.Generation{}, nil
		}
		return nil, fmt.Errorf("resolve user: %w", err)
	}

	generations, err := s.store.ListGenerationsByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("list generations: %w", err)
	}

	return generations, nil
}

// DeleteGeneration removes the identity's generation. A record that
// does not exist and a record owned by someone else both report
// ErrGenerationNotFound.
func (s *GenerationService) DeleteGeneration(ctx context.Context, identity auth.Identity, id string) error {
	user, err := s.store.GetUserByEmail(ctx, identity.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrGenerationNotFound
		}
		return fmt.Errorf("resolve user: %w", err)
	}

	if err := s.store.DeleteGenerationByIDAndUser(ctx, id, user.ID); err != nil {
		if errors.Is(err, repository.ErrGenerationNotFound) {
			return ErrGenerationNotFound
		}
		return fmt.Errorf("delete generation: %w", err)
	}

	s.metrics.IncGenerationDeleted()

	return nil
}
