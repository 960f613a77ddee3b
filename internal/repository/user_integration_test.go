//go:build integration

package repository

import (
	"errors"
	"testing"

	"github.com/sitesmith/sitesmith/internal/model"
	"github.com/sitesmith/sitesmith/internal/testutil"
)

func TestIntegrationUserRepository_CreateAndGet(t *testing.T) {
	ctx, repo := newTestEnv(t)

	user := testutil.NewTestUser(t, testutil.UniqueEmail("create"))
	if err := repo.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	retrieved, err := repo.GetUserByEmail(ctx, user.Email)
	if err != nil {
		t.Fatalf("GetUserByEmail failed: %v", err)
	}
	if retrieved.ID != user.ID {
		t.Errorf("ID mismatch: got %q, want %q", retrieved.ID, user.ID)
	}
	if retrieved.Name != user.Name {
		t.Errorf("Name mismatch: got %q, want %q", retrieved.Name, user.Name)
	}
}

func TestIntegrationUserRepository_GetNotFound(t *testing.T) {
	ctx, repo := newTestEnv(t)

	_, err := repo.GetUserByEmail(ctx, "nobody@example.com")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestIntegrationUserRepository_DuplicateEmail(t *testing.T) {
	ctx, repo := newTestEnv(t)

	email := testutil.UniqueEmail("dup")
	first := testutil.NewTestUser(t, email)
	second := testutil.NewTestUser(t, email)
	second.ID = testutil.UniqueID("user")

	if err := repo.CreateUser(ctx, first); err != nil {
		t.Fatalf("CreateUser (first) failed: %v", err)
	}

	if err := repo.CreateUser(ctx, second); !errors.Is(err, ErrEmailExists) {
		t.Errorf("expected ErrEmailExists, got %v", err)
	}
}

func TestIntegrationUserRepository_GetOrCreate(t *testing.T) {
	ctx, repo := newTestEnv(t)

	email := testutil.UniqueEmail("lazy")

	created, err := repo.GetOrCreateUser(ctx, &model.User{
		ID:    testutil.UniqueID("user"),
		Email: email,
		Name:  "Lazy User",
	})
	if err != nil {
		t.Fatalf("GetOrCreateUser (create) failed: %v", err)
	}

	// A second call with a different candidate ID must return the
	// existing row, not create another.
	again, err := repo.GetOrCreateUser(ctx, &model.User{
		ID:    testutil.UniqueID("user"),
		Email: email,
	})
	if err != nil {
		t.Fatalf("GetOrCreateUser (get) failed: %v", err)
	}

	if again.ID != created.ID {
		t.Errorf("expected existing user %q, got %q", created.ID, again.ID)
	}
}
