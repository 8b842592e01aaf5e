package ports

import (
	"context"

	"github.com/coopbat/intake-api/internal/core/domain"
)

// CatalogRepository persists the public trade-category catalog.
type CatalogRepository interface {
	List(ctx context.Context) ([]domain.TradeCategory, error)
	Upsert(ctx context.Context, category *domain.TradeCategory) (*domain.TradeCategory, error)
	Delete(ctx context.Context, id string) error
}

type UpsertCategoryInput struct {
	ID          string
	Title       string
	Description string
	ImageURL    string
	Position    int
}

// CatalogService backs the admin catalog surface and the public listing.
type CatalogService interface {
	List(ctx context.Context) ([]domain.TradeCategory, error)
	Upsert(ctx context.Context, input UpsertCategoryInput) (*domain.TradeCategory, error)
	Delete(ctx context.Context, id string) error
}
