package ports

import (
	"context"

	"github.com/coopbat/intake-api/internal/core/domain"
)

// StatusService is the write/read surface of the overlay. Absence of an
// entry is equivalent to domain.StatusNew.
type StatusService interface {
	Get(ctx context.Context, artisanID string, ref domain.RequestRef) (domain.Status, error)
	Set(ctx context.Context, artisanID string, ref domain.RequestRef, status domain.Status) error

	// BulkGet returns the artisan's full overlay keyed by request reference.
	// Keys without an entry are simply absent from the map.
	BulkGet(ctx context.Context, artisanID string) (map[domain.RequestRef]domain.Status, error)
}
