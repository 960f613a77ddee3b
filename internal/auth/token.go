// Package auth provides credential hashing and session identity utilities.
package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"regexp"
)

// Session token format: st_{secret}
// Example: st_4f8d2e1b9c7a5f3d2e1b9c7a5f3d2e1b4f8d2e1b9c7a5f3d2e1b9c7a5f3d2e1b
const tokenSecretLen = 64 // hex encoded 32 bytes

var (
	// ErrInvalidTokenFormat indicates the session token format is invalid.
	ErrInvalidTokenFormat = errors.New("invalid session token format")
	// tokenFormatRegex validates the token format.
	tokenFormatRegex = regexp.MustCompile(`^st_[a-f0-9]{64}$`)
)

// GenerateSessionToken creates a new opaque session token.
// The token is random; it carries no claims and is only meaningful
// to the server-side session store.
func GenerateSessionToken() (string, error) {
	secret := make([]byte, tokenSecretLen/2)
	if _, err := rand.Read(secret); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return "st_" + hex.EncodeToString(secret), nil
}

// ValidateTokenFormat checks if the token matches the expected format.
// A format check before the store lookup keeps garbage out of Redis.
func ValidateTokenFormat(token string) bool {
	return tokenFormatRegex.MatchString(token)
}
