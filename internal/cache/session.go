package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sitesmith/sitesmith/internal/auth"
)

// sessionPrefix is the Redis key prefix for session records.
const sessionPrefix = "session:"

// storedSession represents a session record stored in Redis.
type storedSession struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// sessionKey derives the Redis key for a token. Tokens are hashed
// before use as keys so a Redis dump never contains usable tokens.
func sessionKey(token string) string {
	return sessionPrefix + auth.QuickHash(token)
}

// CreateSession stores a session record for the given token with a TTL.
func (c *Cache) CreateSession(ctx context.Context, token string, id *auth.Identity, ttl time.Duration) error {
	data, err := json.Marshal(storedSession{
		Email: id.Email,
		Name:  id.Name,
	})
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	return c.client.Set(ctx, sessionKey(token), data, ttl).Err()
}

// GetSession resolves a token to the identity it was issued for.
// Returns nil if the token is unknown or expired (not an error).
func (c *Cache) GetSession(ctx context.Context, token string) (*auth.Identity, error) {
	data, err := c.client.Get(ctx, sessionKey(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			// Unknown or expired token is not an error
			return nil, nil
		}
		return nil, fmt.Errorf("get session: %w", err)
	}

	var stored storedSession
	if err := json.Unmarshal(data, &stored); err != nil {
		// Corrupted session entry - treat as absent
		return nil, nil //nolint:nilerr
	}

	return &auth.Identity{
		Email: stored.Email,
		Name:  stored.Name,
	}, nil
}

// DeleteSession removes a session record. Used on logout.
func (c *Cache) DeleteSession(ctx context.Context, token string) error {
	return c.client.Del(ctx, sessionKey(token)).Err()
}
