// Package lookup caches postal-code address lookups.
package lookup

import (
	"context"
	"time"

	"cleaning-quote/pkg/redis"

	"go.uber.org/zap"
)

const DefaultTTL = 24 * time.Hour

// Resolver is the upstream address service.
type Resolver interface {
	LookupAddress(ctx context.Context, postalCode string) (string, error)
}

// Cache is the subset of the Redis client used here.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
}

// CachedAddress answers from the cache first and stores every non-empty
// upstream answer. Cache failures fall through to the upstream.
type CachedAddress struct {
	upstream Resolver
	cache    Cache
	ttl      time.Duration
	logger   *zap.Logger
}

func NewCachedAddress(upstream Resolver, cache Cache, ttl time.Duration, logger *zap.Logger) *CachedAddress {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &CachedAddress{upstream: upstream, cache: cache, ttl: ttl, logger: logger}
}

func (c *CachedAddress) LookupAddress(ctx context.Context, postalCode string) (string, error) {
	key := "address:" + postalCode

	cached, err := c.cache.Get(ctx, key)
	switch {
	case err == nil:
		return string(cached), nil
	case !redis.IsMiss(err):
		c.logger.Warn("Address cache read failed", zap.String("postal_code", postalCode), zap.Error(err))
	}

	addr, err := c.upstream.LookupAddress(ctx, postalCode)
	if err != nil {
		return "", err
	}
	if addr == "" {
		return "", nil
	}

	if err := c.cache.Set(ctx, key, []byte(addr), c.ttl); err != nil {
		c.logger.Warn("Address cache write failed", zap.String("postal_code", postalCode), zap.Error(err))
	}
	return addr, nil
}
