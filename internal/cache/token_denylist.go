package cache

import (
	"context"
	"time"
)

const revokedTokenKeyPrefix = "revoked_token:"

// TokenDenylist keeps revoked token IDs in redis until the token would expire.
type TokenDenylist struct {
	cache *Client
}

// NewTokenDenylist creates a denylist backed by c.
func NewTokenDenylist(c *Client) *TokenDenylist {
	return &TokenDenylist{cache: c}
}

// Revoke marks tokenID as revoked for ttl.
func (d *TokenDenylist) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	return d.cache.Set(ctx, revokedTokenKeyPrefix+tokenID, []byte("1"), ttl)
}

// IsRevoked reports whether tokenID was revoked. Lookup errors are returned
// alongside false so callers can decide to fail open.
func (d *TokenDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	data, err := d.cache.Get(ctx, revokedTokenKeyPrefix+tokenID)
	if err != nil {
		return false, err
	}
	return data != nil, nil
}
