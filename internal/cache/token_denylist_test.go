package cache_test

import (
	"context"
	"testing"
	"time"

	"stockroom/internal/cache"

	"github.com/stretchr/testify/assert"
)

func TestTokenDenylist_NilClientIsNoop(t *testing.T) {
	d := cache.NewTokenDenylist(nil)

	assert.NoError(t, d.Revoke(context.Background(), "token-1", time.Minute))

	revoked, err := d.IsRevoked(context.Background(), "token-1")
	assert.NoError(t, err)
	assert.False(t, revoked)
}
