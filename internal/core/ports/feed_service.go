package ports

import (
	"context"

	"github.com/coopbat/intake-api/internal/core/domain"
)

// FeedService merges the three request archives into one chronological view
// joined with the requesting artisan's overlay. The merge is a pure read.
type FeedService interface {
	ListForArtisan(ctx context.Context, artisanID string) ([]domain.FeedItem, error)
}

// FeedCache is a best-effort cache of assembled feeds. Implementations must
// treat every failure as a miss; the feed service degrades to a direct read.
type FeedCache interface {
	Get(ctx context.Context, artisanID string) ([]domain.FeedItem, bool)
	Put(ctx context.Context, artisanID string, items []domain.FeedItem)
	Invalidate(ctx context.Context, artisanID string)
}
