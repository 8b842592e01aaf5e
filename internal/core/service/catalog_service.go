package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/coopbat/intake-api/internal/core/domain"
	"github.com/coopbat/intake-api/internal/core/ports"
)

// CatalogService backs the public trade-category listing and the
// admin-gated editing surface. Plain single-collection upserts.
type CatalogService struct {
	repo   ports.CatalogRepository
	logger zerolog.Logger
}

func NewCatalogService(repo ports.CatalogRepository, logger zerolog.Logger) *CatalogService {
	return &CatalogService{repo: repo, logger: logger}
}

func (s *CatalogService) List(ctx context.Context) ([]domain.TradeCategory, error) {
	return s.repo.List(ctx)
}

func (s *CatalogService) Upsert(ctx context.Context, input ports.UpsertCategoryInput) (*domain.TradeCategory, error) {
	if trimmed(input.Title) == "" {
		return nil, &domain.ValidationError{Missing: []string{"title"}}
	}

	category := &domain.TradeCategory{
		ID:          input.ID,
		Title:       trimmed(input.Title),
		Description: trimmed(input.Description),
		ImageURL:    trimmed(input.ImageURL),
		Position:    input.Position,
	}

	saved, err := s.repo.Upsert(ctx, category)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("category_id", saved.ID).Str("title", saved.Title).Msg("trade category saved")
	return saved, nil
}

func (s *CatalogService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("category_id", id).Msg("trade category deleted")
	return nil
}
