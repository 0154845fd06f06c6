package auth

import (
	"context"
	"time"

	"store-rating/pkg/cache"
)

const denylistKeyPrefix = "denylist:token:"

// TokenDenylist records revoked token IDs until their natural expiry.
// Tokens stay stateless: the list is only consulted to reject tokens
// that were explicitly logged out. When Redis is unavailable revocation
// degrades to client-side token deletion.
type TokenDenylist interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) bool
}

type tokenDenylist struct {
	cache *cache.Client
}

func NewTokenDenylist(cache *cache.Client) TokenDenylist {
	return &tokenDenylist{cache: cache}
}

// Revoke marks a token ID as revoked for the remaining token lifetime.
func (d *tokenDenylist) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	key := denylistKeyPrefix + tokenID
	return d.cache.Set(ctx, key, []byte("1"), ttl)
}

// IsRevoked checks whether a token ID was logged out. Fails open.
func (d *tokenDenylist) IsRevoked(ctx context.Context, tokenID string) bool {
	key := denylistKeyPrefix + tokenID
	data, err := d.cache.Get(ctx, key)
	if err != nil {
		return false
	}
	return data != nil
}
