// Package cache holds the Redis-backed cache for the published menu
// structure. The menu is read on every navigation build and changes
// rarely, so it is the one piece of server state worth caching.
package cache

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const menuKey = "tenderdesk:menu-structure"

// MenuCache caches the raw published menu structure document.
type MenuCache struct {
	rdb    redis.UniversalClient
	ttl    time.Duration
	logger *slog.Logger
}

// NewMenuCache creates a cache over the given Redis client.
func NewMenuCache(rdb redis.UniversalClient, ttl time.Duration, logger *slog.Logger) *MenuCache {
	return &MenuCache{rdb: rdb, ttl: ttl, logger: logger}
}

// Get returns the cached document, or (nil, false) on a miss. Redis
// failures degrade to a miss; the caller falls through to the
// repository.
func (c *MenuCache) Get(ctx context.Context) ([]byte, bool) {
	raw, err := c.rdb.Get(ctx, menuKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("menu cache read failed", "error", err)
		}
		return nil, false
	}
	return raw, true
}

// Set stores the document with the configured TTL.
func (c *MenuCache) Set(ctx context.Context, raw []byte) {
	if err := c.rdb.Set(ctx, menuKey, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("menu cache write failed", "error", err)
	}
}

// Invalidate drops the cached document. Called after a publish so the
// next read sees the new structure immediately.
func (c *MenuCache) Invalidate(ctx context.Context) {
	if err := c.rdb.Del(ctx, menuKey).Err(); err != nil {
		c.logger.Warn("menu cache invalidate failed", "error", err)
	}
}
