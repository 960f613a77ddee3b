//go:build integration

package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/sitesmith/sitesmith/internal/model"
	"github.com/sitesmith/sitesmith/internal/testutil"
)

func newTestAccount(email string) *model.Account {
	return &model.Account{
		ID:           testutil.UniqueID("acct"),
		Email:        email,
		PasswordHash: "$argon2id$v=19$m=65536,t=3,p=4$c2FsdA$aGFzaA",
		CreatedAt:    time.Now().UTC(),
	}
}

func TestIntegrationAccountRepository_CreateAndGet(t *testing.T) {
	ctx, repo := newTestEnv(t)

	account := newTestAccount(testutil.UniqueEmail("acct"))
	if err := repo.CreateAccount(ctx, account); err != nil {
		t.Fatalf("CreateAccount failed: %v", err)
	}

	retrieved, err := repo.GetAccountByEmail(ctx, account.Email)
	if err != nil {
		t.Fatalf("GetAccountByEmail failed: %v", err)
	}
	if retrieved.ID != account.ID {
		t.Errorf("ID mismatch: got %q, want %q", retrieved.ID, account.ID)
	}
	if retrieved.PasswordHash != account.PasswordHash {
		t.Error("PasswordHash mismatch")
	}
}

func TestIntegrationAccountRepository_Duplicate(t *testing.T) {
	ctx, repo := newTestEnv(t)

	email := testutil.UniqueEmail("acct-dup")
	if err := repo.CreateAccount(ctx, newTestAccount(email)); err != nil {
		t.Fatalf("CreateAccount (first) failed: %v", err)
	}

	if err := repo.CreateAccount(ctx, newTestAccount(email)); !errors.Is(err, ErrAccountExists) {
		t.Errorf("expected ErrAccountExists, got %v", err)
	}
}

func TestIntegrationAccountRepository_GetNotFound(t *testing.T) {
	ctx, repo := newTestEnv(t)

	_, err := repo.GetAccountByEmail(ctx, "nobody@example.com")
	if !errors.Is(err, ErrAccountNotFound) {
		t.Errorf("expected ErrAccountNotFound, got %v", err)
	}
}
