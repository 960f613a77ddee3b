package middleware

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sitesmith/sitesmith/internal/auth"
)

type fakeSessionReader struct {
	sessions map[string]*auth.Identity
	err      error
}

func (f *fakeSessionReader) GetSession(_ context.Context, token string) (*auth.Identity, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.sessions[token], nil
}

const testToken = "st_" + "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

func newSessionTestHandler(reader SessionReader) (http.Handler, *auth.Identity) {
	captured := &auth.Identity{}
	mw := Session(SessionConfig{
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Sessions: reader,
	})
	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := auth.IdentityFromContext(r.Context()); id != nil {
			*captured = *id
		}
		w.WriteHeader(http.StatusOK)
	}))
	return handler, captured
}

func TestSession_BearerToken(t *testing.T) {
	t.Parallel()

	reader := &fakeSessionReader{sessions: map[string]*auth.Identity{
		testToken: {Email: "alice@example.com", Name: "alice"},
	}}
	handler, captured := newSessionTestHandler(reader)

	req := httptest.NewRequest(http.MethodGet, "/api/generations", nil)
	req.Header.Set("Authorization", "Bearer "+testToken)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	if captured.Email != "alice@example.com" {
		t.Errorf("identity email: got %q", captured.Email)
	}
}

func TestSession_Cookie(t *testing.T) {
	t.Parallel()

	reader := &fakeSessionReader{sessions: map[string]*auth.Identity{
		testToken: {Email: "alice@example.com"},
	}}
	handler, captured := newSessionTestHandler(reader)

	req := httptest.NewRequest(http.MethodGet, "/api/generations", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: testToken})
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	if captured.Email != "alice@example.com" {
		t.Errorf("identity email: got %q", captured.Email)
	}
}

func TestSession_Unauthorized(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		setup func(*http.Request)
	}{
		{"no token", func(*http.Request) {}},
		{"malformed token", func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer not-a-session-token")
		}},
		{"unknown token", func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer "+testToken)
		}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			reader := &fakeSessionReader{sessions: map[string]*auth.Identity{}}
			handler, _ := newSessionTestHandler(reader)

			req := httptest.NewRequest(http.MethodGet, "/api/generations", nil)
			tt.setup(req)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("status: got %d, want 401", rec.Code)
			}
			if !strings.Contains(rec.Body.String(), "UNAUTHORIZED") {
				t.Errorf("body missing UNAUTHORIZED code: %s", rec.Body.String())
			}
		})
	}
}

func TestSession_StoreError(t *testing.T) {
	t.Parallel()

	reader := &fakeSessionReader{err: errors.New("redis down")}
	handler, _ := newSessionTestHandler(reader)

	req := httptest.NewRequest(http.MethodGet, "/api/generations", nil)
	req.Header.Set("Authorization", "Bearer "+testToken)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	// Store failures must not let requests through
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status: got %d, want 401", rec.Code)
	}
}

func TestExtractSessionToken_HeaderWinsOverCookie(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer header-token")
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "cookie-token"})

	if got := ExtractSessionToken(req); got != "header-token" {
		t.Errorf("got %q, want header token to win", got)
	}
}
