// Package auth provides credential hashing and session identity utilities.
package auth

import "context"

// Identity is the authenticated caller resolved by the session guard.
// It is threaded explicitly through the request context; handlers and
// services never consult any ambient session state.
type Identity struct {
	Email string
	Name  string
}

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

// identityKey is the context key for storing Identity.
const identityKey contextKey = "identity"

// ContextWithIdentity adds an Identity to the context.
func ContextWithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFromContext retrieves the Identity from the context.
// Returns nil if not present.
func IdentityFromContext(ctx context.Context) *Identity {
	id, ok := ctx.Value(identityKey).(*Identity)
	if !ok {
		return nil
	}
	return id
}

// EmailFromContext is a convenience function to get the caller email.
// Returns empty string if not authenticated.
func EmailFromContext(ctx context.Context) string {
	id := IdentityFromContext(ctx)
	if id == nil {
		return ""
	}
	return id.Email
}
