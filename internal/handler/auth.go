package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/sitesmith/sitesmith/internal/handler/dto"
	"github.com/sitesmith/sitesmith/internal/middleware"
	"github.com/sitesmith/sitesmith/internal/service"
)

// AuthHandler handles signup, login and logout.
type AuthHandler struct {
	svc          *service.AuthService
	logger       *slog.Logger
	sessionTTL   time.Duration
	secureCookie bool
}

// NewAuthHandler creates a new AuthHandler. secureCookie should be
// true in production so the session cookie is HTTPS-only.
func NewAuthHandler(svc *service.AuthService, logger *slog.Logger, sessionTTL time.Duration, secureCookie bool) *AuthHandler {
	return &AuthHandler{
		svc:          svc,
		logger:       logger,
		sessionTTL:   sessionTTL,
		secureCookie: secureCookie,
	}
}

// Signup handles POST /auth/signup.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req dto.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	account, err := h.svc.SignUp(r.Context(), req.Email, req.Password)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("account_created", "account_id", account.ID)

	writeJSON(w, http.StatusCreated, dto.SignupResponse{
		ID:    account.ID,
		Email: account.Email,
	})
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	token, err := h.svc.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.sessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})

	h.logger.Info("session_opened", "request_id", middleware.GetRequestID(r.Context()))

	writeJSON(w, http.StatusOK, dto.LoginResponse{
		Token: token,
		Email: req.Email,
	})
}

// Logout handles POST /auth/logout. Logging out without a session is
// not an error.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if token := middleware.ExtractSessionToken(r); token != "" {
		if err := h.svc.SignOut(r.Context(), token); err != nil {
			h.logger.Error("logout failed", "error", err)
			h.writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
			return
		}
	}

	// Expire the cookie either way
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})

	w.WriteHeader(http.StatusNoContent)
}

// handleServiceError maps auth service errors to HTTP responses.
func (h *AuthHandler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidSignup):
		h.writeError(w, http.StatusBadRequest, "INVALID_SIGNUP", "Email and a password of at least 8 characters are required")
	case errors.Is(err, service.ErrEmailTaken):
		h.writeError(w, http.StatusConflict, "EMAIL_TAKEN", "Email already registered")
	case errors.Is(err, service.ErrInvalidCredentials):
		h.writeError(w, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password")
	default:
		h.logger.Error("internal_error", "error", err)
		h.writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
	}
}

// writeError writes an error response.
func (h *AuthHandler) writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, dto.ErrorResponse{
		Error: message,
		Code:  code,
	})
}
