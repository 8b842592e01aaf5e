package service

import (
	"context"
	"sort"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/coopbat/intake-api/internal/api/metrics"
	"github.com/coopbat/intake-api/internal/core/domain"
	"github.com/coopbat/intake-api/internal/core/ports"
)

// feedWindow caps the fan-out per archive so feed latency stays bounded
// regardless of archive growth.
const feedWindow = 100

// FeedService assembles an artisan's request feed: a bounded window from
// each of the three archives, tagged with its kind, joined with the
// artisan's overlay and sorted chronologically. It never writes to either
// the archive or the overlay.
type FeedService struct {
	requests ports.RequestRepository
	statuses ports.StatusService
	cache    ports.FeedCache
	logger   zerolog.Logger
}

// NewFeedService wires the aggregator. cache may be nil to disable caching.
func NewFeedService(requests ports.RequestRepository, statuses ports.StatusService, cache ports.FeedCache, logger zerolog.Logger) *FeedService {
	return &FeedService{requests: requests, statuses: statuses, cache: cache, logger: logger}
}

func (s *FeedService) ListForArtisan(ctx context.Context, artisanID string) ([]domain.FeedItem, error) {
	if s.cache != nil {
		if items, ok := s.cache.Get(ctx, artisanID); ok {
			metrics.FeedCacheTotal.WithLabelValues("hit").Inc()
			return items, nil
		}
		metrics.FeedCacheTotal.WithLabelValues("miss").Inc()
	}

	timer := prometheus.NewTimer(metrics.FeedAssemblyDuration)
	defer timer.ObserveDuration()

	simple, err := s.requests.ListRecentSimple(ctx, feedWindow)
	if err != nil {
		return nil, err
	}
	leads, err := s.requests.ListRecentLead(ctx, feedWindow)
	if err != nil {
		return nil, err
	}
	advanced, err := s.requests.ListRecentAdvanced(ctx, feedWindow)
	if err != nil {
		return nil, err
	}

	overlay, err := s.statuses.BulkGet(ctx, artisanID)
	if err != nil {
		return nil, err
	}

	items := make([]domain.FeedItem, 0, len(simple)+len(leads)+len(advanced))
	for _, r := range simple {
		items = append(items, domain.FeedItem{
			Kind:     domain.KindSimple,
			ID:       r.ID,
			Date:     r.CreatedAt,
			WorkType: r.LotType,
			Surface:  r.SurfaceM2,
			Budget:   r.Budget,
			Email:    r.Email,
			Commune:  r.Commune,
			Status:   resolve(overlay, domain.KindSimple, r.ID),
		})
	}
	for _, r := range leads {
		items = append(items, domain.FeedItem{
			Kind:     domain.KindLead,
			ID:       r.ID,
			Date:     r.CreatedAt,
			WorkType: "Lot complet",
			Surface:  r.CouvertureSurfaceM2,
			Email:    r.ContactEmail,
			Commune:  r.ContactCommune,
			Status:   resolve(overlay, domain.KindLead, r.ID),
		})
	}
	for _, r := range advanced {
		items = append(items, domain.FeedItem{
			Kind:     domain.KindAdvanced,
			ID:       r.ID,
			Date:     r.CreatedAt,
			WorkType: "Chiffrage détaillé",
			Email:    r.ContactEmail,
			Commune:  r.ContactCommune,
			Status:   resolve(overlay, domain.KindAdvanced, r.ID),
		})
	}

	// Newest first; the stable sort keeps concatenation order on equal
	// timestamps.
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date.After(items[j].Date)
	})

	if s.cache != nil {
		s.cache.Put(ctx, artisanID, items)
	}

	s.logger.Debug().
		Str("artisan_id", artisanID).
		Int("items", len(items)).
		Time("assembled_at", time.Now().UTC()).
		Msg("feed assembled")
	return items, nil
}

// resolve looks up the overlay on the full (kind, id) key; requests sharing
// a numeric id across kinds resolve independently.
func resolve(overlay map[domain.RequestRef]domain.Status, kind domain.RequestKind, id int64) domain.Status {
	if st, ok := overlay[domain.RequestRef{Kind: kind, ID: id}]; ok {
		return st
	}
	return domain.StatusNew
}
