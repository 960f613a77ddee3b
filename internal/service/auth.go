package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/sitesmith/sitesmith/internal/auth"
	"github.com/sitesmith/sitesmith/internal/metrics"
	"github.com/sitesmith/sitesmith/internal/model"
	"github.com/sitesmith/sitesmith/internal/repository"
)

// Auth service errors.
var (
	ErrEmailTaken    = errors.New("email already registered")
	ErrInvalidSignup = errors.New("email and a password of at least 8 characters are required")
	// ErrInvalidCredentials covers unknown email and wrong password
	// alike; callers must not distinguish them.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

const minPasswordLength = 8

// AccountStore defines the credential persistence operations.
type AccountStore interface {
	CreateAccount(ctx context.Context, account *model.Account) error
	GetAccountByEmail(ctx context.Context, email string) (*model.Account, error)
}

// SessionStore defines the session persistence operations.
type SessionStore interface {
	CreateSession(ctx context.Context, token string, identity *auth.Identity, ttl time.Duration) error
	DeleteSession(ctx context.Context, token string) error
}

// AuthService handles signup, login and logout.
type AuthService struct {
	accounts   AccountStore
	sessions   SessionStore
	sessionTTL time.Duration
	metrics    metrics.Recorder
}

// NewAuthService creates a new AuthService.
func NewAuthService(accounts AccountStore, sessions SessionStore, sessionTTL time.Duration, recorder metrics.Recorder) *AuthService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &AuthService{
		accounts:   accounts,
		sessions:   sessions,
		sessionTTL: sessionTTL,
		metrics:    recorder,
	}
}

// SignUp registers a new account with an argon2id password hash.
func (s *AuthService) SignUp(ctx context.Context, email, password string) (*model.Account, error) {
	email = strings.TrimSpace(email)
	if !strings.Contains(email, "@") || len(password) < minPasswordLength {
		return nil, ErrInvalidSignup
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	account := &model.Account{
		ID:           ulid.Make().String(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.accounts.CreateAccount(ctx, account); err != nil {
		if errors.Is(err, repository.ErrAccountExists) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create account: %w", err)
	}

	return account, nil
}

// SignIn verifies credentials and opens a session, returning the
// opaque session token. Unknown email and wrong password collapse
// into the same ErrInvalidCredentials.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (string, error) {
	account, err := s.accounts.GetAccountByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("get account: %w", err)
	}

	ok, err := auth.VerifyPassword(password, account.PasswordHash)
	if err != nil || !ok {
		return "", ErrInvalidCredentials
	}

	token, err := auth.GenerateSessionToken()
	if err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}

	identity := &auth.Identity{
		Email: account.Email,
		Name:  displayName(account.Email),
	}
	if err := s.sessions.CreateSession(ctx, token, identity, s.sessionTTL); err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}

	s.metrics.IncSessionCreated()

	return token, nil
}

// SignOut deletes the session for the given token. Deleting an
// already-expired session is not an error.
func (s *AuthService) SignOut(ctx context.Context, token string) error {
	if err := s.sessions.DeleteSession(ctx, token); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// displayName derives a human-readable name from the email local part.
func displayName(email string) string {
	if at := strings.IndexByte(email, '@'); at > 0 {
		return email[:at]
	}
	return email
}
