package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/coopbat/intake-api/internal/api/metrics"
	"github.com/coopbat/intake-api/internal/core/domain"
	"github.com/coopbat/intake-api/internal/core/ports"
)

// StatusService owns the per-artisan overlay. Writes are single-row
// upserts keyed on (artisan, kind, request id); two artisans annotating the
// same request touch disjoint rows and never interfere.
type StatusService struct {
	repo   ports.StatusRepository
	cache  ports.FeedCache
	logger zerolog.Logger
}

// NewStatusService wires the overlay store. cache may be nil when no feed
// cache is configured.
func NewStatusService(repo ports.StatusRepository, cache ports.FeedCache, logger zerolog.Logger) *StatusService {
	return &StatusService{repo: repo, cache: cache, logger: logger}
}

// Get resolves the artisan's status for one request, StatusNew when no
// overlay entry exists.
func (s *StatusService) Get(ctx context.Context, artisanID string, ref domain.RequestRef) (domain.Status, error) {
	entry, err := s.repo.Find(ctx, artisanID, ref)
	if err != nil {
		if errors.Is(err, domain.ErrStatusNotFound) {
			return domain.StatusNew, nil
		}
		return "", err
	}
	return entry.Status, nil
}

// Set upserts the overlay entry, refreshing the timestamp even when the
// status value is unchanged.
func (s *StatusService) Set(ctx context.Context, artisanID string, ref domain.RequestRef, status domain.Status) error {
	if !status.Valid() {
		return domain.ErrInvalidStatus
	}

	entry := &domain.StatusEntry{
		ArtisanID: artisanID,
		Ref:       ref,
		Status:    status,
		UpdatedAt: time.Now().UTC(),
	}
	if err := s.repo.Upsert(ctx, entry); err != nil {
		s.logger.Error().Err(err).
			Str("artisan_id", artisanID).
			Str("kind", string(ref.Kind)).
			Int64("request_id", ref.ID).
			Msg("overlay upsert failed")
		return err
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx, artisanID)
	}

	metrics.StatusUpdatesTotal.WithLabelValues(string(status)).Inc()
	s.logger.Info().
		Str("artisan_id", artisanID).
		Str("kind", string(ref.Kind)).
		Int64("request_id", ref.ID).
		Str("status", string(status)).
		Msg("request status set")
	return nil
}

func (s *StatusService) BulkGet(ctx context.Context, artisanID string) (map[domain.RequestRef]domain.Status, error) {
	entries, err := s.repo.ListByArtisan(ctx, artisanID)
	if err != nil {
		return nil, err
	}

	overlay := make(map[domain.RequestRef]domain.Status, len(entries))
	for _, e := range entries {
		overlay[e.Ref] = e.Status
	}
	return overlay, nil
}
