package ports

import (
	"context"

	"github.com/coopbat/intake-api/internal/core/domain"
)

// StatusRepository persists the sparse per-artisan overlay. The composite
// key (artisan, kind, request id) is unique; Upsert is the only write.
type StatusRepository interface {
	// Find returns domain.ErrStatusNotFound when no entry exists for the key.
	Find(ctx context.Context, artisanID string, ref domain.RequestRef) (*domain.StatusEntry, error)

	// Upsert inserts or replaces the single entry for the key, updating the
	// timestamp on every write including same-status rewrites.
	Upsert(ctx context.Context, entry *domain.StatusEntry) error

	// ListByArtisan returns every overlay entry owned by the artisan.
	ListByArtisan(ctx context.Context, artisanID string) ([]domain.StatusEntry, error)
}
