package ports

import (
	"context"

	"github.com/coopbat/intake-api/internal/core/domain"
)

// RequestRepository is the append-only archive of submitted requests, one
// collection per kind with kind-local auto-increment ids. No update or
// delete is exposed: corrections happen by resubmission.
type RequestRepository interface {
	InsertSimple(ctx context.Context, req *domain.SimpleRequest) (int64, error)
	InsertLead(ctx context.Context, req *domain.LeadRequest) (int64, error)
	InsertAdvanced(ctx context.Context, req *domain.AdvancedRequest) (int64, error)

	// ListRecent* return at most limit records, newest first.
	ListRecentSimple(ctx context.Context, limit int64) ([]domain.SimpleRequest, error)
	ListRecentLead(ctx context.Context, limit int64) ([]domain.LeadRequest, error)
	ListRecentAdvanced(ctx context.Context, limit int64) ([]domain.AdvancedRequest, error)
}
