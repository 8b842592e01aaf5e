package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/coopbat/intake-api/internal/core/domain"
)

const feedTTL = 30 * time.Second

// FeedCache caches assembled artisan feeds for a short window. Every
// failure is treated as a miss: the feed service always has the storage
// path to fall back on, so cache errors are logged but never surfaced.
// Key format: feed:<artisan_id>
type FeedCache struct {
	client *redis.Client
	logger zerolog.Logger
}

// NewFeedCache creates a FeedCache wrapping the given Redis client.
func NewFeedCache(client *redis.Client, logger zerolog.Logger) *FeedCache {
	return &FeedCache{client: client, logger: logger}
}

func (c *FeedCache) Get(ctx context.Context, artisanID string) ([]domain.FeedItem, bool) {
	raw, err := c.client.Get(ctx, c.key(artisanID)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn().Err(err).Str("artisan_id", artisanID).Msg("feed cache read failed")
		}
		return nil, false
	}

	var items []domain.FeedItem
	if err := json.Unmarshal(raw, &items); err != nil {
		c.logger.Warn().Err(err).Str("artisan_id", artisanID).Msg("feed cache entry corrupt, dropping")
		c.Invalidate(ctx, artisanID)
		return nil, false
	}
	return items, true
}

func (c *FeedCache) Put(ctx context.Context, artisanID string, items []domain.FeedItem) {
	raw, err := json.Marshal(items)
	if err != nil {
		c.logger.Warn().Err(err).Str("artisan_id", artisanID).Msg("feed cache encode failed")
		return
	}
	if err := c.client.Set(ctx, c.key(artisanID), raw, feedTTL).Err(); err != nil {
		c.logger.Warn().Err(err).Str("artisan_id", artisanID).Msg("feed cache write failed")
	}
}

func (c *FeedCache) Invalidate(ctx context.Context, artisanID string) {
	if err := c.client.Del(ctx, c.key(artisanID)).Err(); err != nil {
		c.logger.Warn().Err(err).Str("artisan_id", artisanID).Msg("feed cache invalidation failed")
	}
}

func (c *FeedCache) key(artisanID string) string {
	return fmt.Sprintf("feed:%s", artisanID)
}
