package auth

import (
	"context"
	"time"

	"fitgoals/internal/cache"
)

const blacklistKeyPrefix = "blacklist:token:"

// TokenStoreInterface defines the interface for token revocation storage.
type TokenStoreInterface interface {
	BlacklistToken(ctx context.Context, tokenID string, ttl time.Duration) error
	IsTokenBlacklisted(ctx context.Context, tokenID string) (bool, error)
}

// TokenStore tracks revoked tokens in Redis. A logged-out token is
// blacklisted by JTI until its natural expiry; the underlying cache fails
// safe, so an unreachable redis degrades to accepting unexpired tokens.
type TokenStore struct {
	cache *cache.Client
}

// Ensure TokenStore implements TokenStoreInterface
var _ TokenStoreInterface = (*TokenStore)(nil)

// NewTokenStore creates a new token store.
func NewTokenStore(cache *cache.Client) *TokenStore {
	return &TokenStore{cache: cache}
}

// BlacklistToken marks a token as revoked until its TTL elapses.
func (s *TokenStore) BlacklistToken(ctx context.Context, tokenID string, ttl time.Duration) error {
	key := blacklistKeyPrefix + tokenID
	return s.cache.Set(ctx, key, []byte("1"), ttl)
}

// IsTokenBlacklisted checks whether a token has been revoked.
func (s *TokenStore) IsTokenBlacklisted(ctx context.Context, tokenID string) (bool, error) {
	data, err := s.cache.Get(ctx, blacklistKeyPrefix+tokenID)
	if err != nil {
		return false, nil
	}
	return data != nil, nil
}
