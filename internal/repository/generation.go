package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/sitesmith/sitesmith/internal/model"
)

// ErrGenerationNotFound is returned when a generation does not exist
// or is not owned by the requesting user. The two cases are deliberately
// indistinguishable so ownership cannot be probed.
var ErrGenerationNotFound = errors.New("generation not found")

// CreateGeneration inserts a new generation into the database.
func (r *Repository) CreateGeneration(ctx context.Context, gen *model.Generation) error {
	query := `
		INSERT INTO generations (id, title, prompt, html_code, template_id, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.pool.Exec(ctx, query,
		gen.ID,
		gen.Title,
		gen.Prompt,
		gen.HTMLCode,
		gen.TemplateID,
		gen.UserID,
		gen.CreatedAt,
		gen.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create generation: %w", err)
	}

	return nil
}

// ListGenerationsByUser returns all generations owned by a user,
// newest first.
func (r *Repository) ListGenerationsByUser(ctx context.Context, userID string) ([]*model.Generation, error) {
	query := `
		SELECT id, title, prompt, html_code, template_id, user_id, created_at, updated_at
		FROM generations
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list generations: %w", err)
	}
	defer rows.Close()

	var generations []*model.Generation
	for rows.Next() {
		gen, err := scanGeneration(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan generation: %w", err)
		}
		generations = append(generations, gen)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating generations: %w", err)
	}

	return generations, nil
}

// GetGenerationByIDAndUser retrieves a generation by ID scoped to an owner.
func (r *Repository) GetGenerationByIDAndUser(ctx context.Context, id, userID string) (*model.Generation, error) {
	query := `
		SELECT id, title, prompt, html_code, template_id, user_id, created_at, updated_at
		FROM generations
		WHERE id = $1 AND user_id = $2
	`

	gen, err := scanGeneration(r.pool.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrGenerationNotFound
		}
		return nil, fmt.Errorf("failed to get generation: %w", err)
	}

	return gen, nil
}

// DeleteGenerationByIDAndUser deletes a generation owned by the given user.
// Returns ErrGenerationNotFound when no owned row matches.
func (r *Repository) DeleteGenerationByIDAndUser(ctx context.Context, id, userID string) error {
	query := `
		DELETE FROM generations
		WHERE id = $1 AND user_id = $2
	`

	result, err := r.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete generation: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrGenerationNotFound
	}

	return nil
}

// scanGeneration scans a single row into a Generation model.
func scanGeneration(row pgx.Row) (*model.Generation, error) {
	var gen model.Generation
	err := row.Scan(
		&gen.ID,
		&gen.Title,
		&gen.Prompt,
		&gen.HTMLCode,
		&gen.TemplateID,
		&gen.UserID,
		&gen.CreatedAt,
		&gen.UpdatedAt,
	)
	return &gen, err
}

// isUniqueViolation checks if the error is a PostgreSQL unique constraint violation.
func isUniqueViolation(err error) bool {
	// PostgreSQL error code 23505 is unique_violation
	return err != nil && (contains(err.Error(), "23505") || contains(err.Error(), "unique"))
}

// contains checks if a string contains a substring.
func contains(s, substr string) bool {
	return len(s) >= len(substr) && searchString(s, substr)
}

// searchString is a simple string search.
func searchString(s, substr string) bool {
	for i := 0; i <= len(s)-len(substr); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
