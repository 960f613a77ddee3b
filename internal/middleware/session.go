package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/sitesmith/sitesmith/internal/auth"
)

// SessionCookieName is the cookie carrying the session token for
// browser clients. API clients send the token as a Bearer header.
const SessionCookieName = "sitesmith_session"

// SessionReader resolves a session token to its identity. A miss
// returns (nil, nil).
type SessionReader interface {
	GetSession(ctx context.Context, token string) (*auth.Identity, error)
}

// SessionConfig holds configuration for the session middleware.
type SessionConfig struct {
	Logger   *slog.Logger
	Sessions SessionReader
}

// Session returns a middleware that authenticates requests against
// the session store. It extracts the token from the Authorization
// header or the session cookie, resolves it, and injects the identity
// into the request context.
func Session(cfg SessionConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := ExtractSessionToken(r)
			if token == "" {
				cfg.Logger.Warn("authentication failed",
					slog.String("reason", "missing_token"),
					slog.String("endpoint", r.Method+" "+r.URL.Path),
					slog.String("request_id", GetRequestID(r.Context())),
				)
				writeSessionError(w)
				return
			}

			if !auth.ValidateTokenFormat(token) {
				cfg.Logger.Warn("authentication failed",
					slog.String("reason", "invalid_format"),
					slog.String("endpoint", r.Method+" "+r.URL.Path),
					slog.String("request_id", GetRequestID(r.Context())),
				)
				writeSessionError(w)
				return
			}

			identity, err := cfg.Sessions.GetSession(r.Context(), token)
			if err != nil {
				cfg.Logger.Error("session store error during auth",
					slog.String("error", err.Error()),
					slog.String("request_id", GetRequestID(r.Context())),
				)
				writeSessionError(w)
				return
			}

			if identity == nil {
				// Expired, logged out, or never existed
				cfg.Logger.Warn("authentication failed",
					slog.String("reason", "unknown_session"),
					slog.String("endpoint", r.Method+" "+r.URL.Path),
					slog.String("request_id", GetRequestID(r.Context())),
				)
				writeSessionError(w)
				return
			}

			ctx := auth.ContextWithIdentity(r.Context(), identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ExtractSessionToken extracts the session token from the request.
// Supports "Authorization: Bearer <token>" and the session cookie.
func ExtractSessionToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		return cookie.Value
	}

	return ""
}

// writeSessionError writes a 401 Unauthorized response.
// Uses the same message for all auth failures to prevent enumeration.
func writeSessionError(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":{"code":"UNAUTHORIZED","message":"Authentication required"}}`))
}
