package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sitesmith/sitesmith/internal/metrics"
	"github.com/sitesmith/sitesmith/internal/prompt"
)

// ErrGenerationFailed wraps any upstream completion failure. Handlers
// report it generically; the cause stays in the logs.
var ErrGenerationFailed = errors.New("website generation failed")

// HTMLGenerator produces raw HTML from a composed instruction.
type HTMLGenerator interface {
	GenerateHTML(ctx context.Context, instruction string) (string, error)
}

// GeneratorService composes prompts and drives the completion API.
type GeneratorService struct {
	generator HTMLGenerator
	metrics   metrics.Recorder
}

// NewGeneratorService creates a new GeneratorService.
func NewGeneratorService(generator HTMLGenerator, recorder metrics.Recorder) *GeneratorService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &GeneratorService{
		generator: generator,
		metrics:   recorder,
	}
}

// GenerateWebsite composes the instruction for the given text and
// optional template id and performs a single completion call. No
// retries; the request context is the only deadline.
func (s *GeneratorService) GenerateWebsite(ctx context.Context, text, templateID string) (string, error) {
	composition := prompt.Compose(text, templateID)

	s.metrics.IncGenerationRequested()

	start := time.Now()
	html, err := s.generator.GenerateHTML(ctx, composition.Instruction())
	s.metrics.ObserveCompletionDuration(time.Since(start))

	if err != nil {
		s.metrics.IncGenerationFailed()
		return "", fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	return html, nil
}
