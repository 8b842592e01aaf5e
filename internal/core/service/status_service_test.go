package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/coopbat/intake-api/internal/core/domain"
)

type overlayKey struct {
	artisanID string
	ref       domain.RequestRef
}

type stubStatusRepo struct {
	entries map[overlayKey]*domain.StatusEntry
	failing bool
}

func newStubStatusRepo() *stubStatusRepo {
	return &stubStatusRepo{entries: make(map[overlayKey]*domain.StatusEntry)}
}

func (r *stubStatusRepo) Find(_ context.Context, artisanID string, ref domain.RequestRef) (*domain.StatusEntry, error) {
	if r.failing {
		return nil, errors.New("repo down")
	}
	entry, ok := r.entries[overlayKey{artisanID, ref}]
	if !ok {
		return nil, domain.ErrStatusNotFound
	}
	clone := *entry
	return &clone, nil
}

func (r *stubStatusRepo) Upsert(_ context.Context, entry *domain.StatusEntry) error {
	if r.failing {
		return errors.New("repo down")
	}
	clone := *entry
	r.entries[overlayKey{entry.ArtisanID, entry.Ref}] = &clone
	return nil
}

func (r *stubStatusRepo) ListByArtisan(_ context.Context, artisanID string) ([]domain.StatusEntry, error) {
	if r.failing {
		return nil, errors.New("repo down")
	}
	var out []domain.StatusEntry
	for key, entry := range r.entries {
		if key.artisanID == artisanID {
			out = append(out, *entry)
		}
	}
	return out, nil
}

type stubFeedCache struct {
	feeds       map[string][]domain.FeedItem
	invalidated []string
}

func newStubFeedCache() *stubFeedCache {
	return &stubFeedCache{feeds: make(map[string][]domain.FeedItem)}
}

func (c *stubFeedCache) Get(_ context.Context, artisanID string) ([]domain.FeedItem, bool) {
	items, ok := c.feeds[artisanID]
	return items, ok
}

func (c *stubFeedCache) Put(_ context.Context, artisanID string, items []domain.FeedItem) {
	c.feeds[artisanID] = items
}

func (c *stubFeedCache) Invalidate(_ context.Context, artisanID string) {
	delete(c.feeds, artisanID)
	c.invalidated = append(c.invalidated, artisanID)
}

func simpleRef(id int64) domain.RequestRef {
	return domain.RequestRef{Kind: domain.KindSimple, ID: id}
}

func TestStatusService_Get_DefaultsToNew(t *testing.T) {
	svc := NewStatusService(newStubStatusRepo(), nil, zerolog.Nop())

	status, err := svc.Get(context.Background(), "artisan_1", simpleRef(1))
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if status != domain.StatusNew {
		t.Fatalf("expected %q for absent entry, got %q", domain.StatusNew, status)
	}
}

func TestStatusService_SetThenGet(t *testing.T) {
	repo := newStubStatusRepo()
	svc := NewStatusService(repo, nil, zerolog.Nop())

	if err := svc.Set(context.Background(), "artisan_1", simpleRef(7), domain.StatusInProgress); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	status, err := svc.Get(context.Background(), "artisan_1", simpleRef(7))
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if status != domain.StatusInProgress {
		t.Fatalf("expected in_progress, got %q", status)
	}
}

func TestStatusService_Set_InvalidValue(t *testing.T) {
	repo := newStubStatusRepo()
	svc := NewStatusService(repo, nil, zerolog.Nop())

	if err := svc.Set(context.Background(), "artisan_1", simpleRef(1), "done"); !errors.Is(err, domain.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	if len(repo.entries) != 0 {
		t.Fatalf("invalid status must not be persisted")
	}
}

func TestStatusService_Set_UpsertRefreshesTimestamp(t *testing.T) {
	repo := newStubStatusRepo()
	svc := NewStatusService(repo, nil, zerolog.Nop())
	key := overlayKey{"artisan_1", simpleRef(1)}

	if err := svc.Set(context.Background(), "artisan_1", simpleRef(1), domain.StatusInProgress); err != nil {
		t.Fatalf("first Set failed: %v", err)
	}
	first := repo.entries[key].UpdatedAt

	time.Sleep(time.Millisecond)
	if err := svc.Set(context.Background(), "artisan_1", simpleRef(1), domain.StatusInProgress); err != nil {
		t.Fatalf("second Set failed: %v", err)
	}

	if len(repo.entries) != 1 {
		t.Fatalf("rewrite must keep a single entry, got %d", len(repo.entries))
	}
	if !repo.entries[key].UpdatedAt.After(first) {
		t.Fatalf("rewrite should refresh the timestamp")
	}
}

func TestStatusService_Set_ArtisansAreIsolated(t *testing.T) {
	repo := newStubStatusRepo()
	svc := NewStatusService(repo, nil, zerolog.Nop())

	if err := svc.Set(context.Background(), "artisan_1", simpleRef(3), domain.StatusInProgress); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	status, err := svc.Get(context.Background(), "artisan_2", simpleRef(3))
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if status != domain.StatusNew {
		t.Fatalf("another artisan's view must stay new, got %q", status)
	}
}

func TestStatusService_Set_SameIDAcrossKinds(t *testing.T) {
	repo := newStubStatusRepo()
	svc := NewStatusService(repo, nil, zerolog.Nop())

	if err := svc.Set(context.Background(), "artisan_1", domain.RequestRef{Kind: domain.KindLead, ID: 5}, domain.StatusInProgress); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	status, err := svc.Get(context.Background(), "artisan_1", domain.RequestRef{Kind: domain.KindSimple, ID: 5})
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if status != domain.StatusNew {
		t.Fatalf("same numeric id in another kind must be unaffected, got %q", status)
	}
}

func TestStatusService_Set_InvalidatesFeedCache(t *testing.T) {
	repo := newStubStatusRepo()
	cache := newStubFeedCache()
	cache.feeds["artisan_1"] = []domain.FeedItem{{Kind: domain.KindSimple, ID: 1}}
	svc := NewStatusService(repo, cache, zerolog.Nop())

	if err := svc.Set(context.Background(), "artisan_1", simpleRef(1), domain.StatusInProgress); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if _, ok := cache.feeds["artisan_1"]; ok {
		t.Fatalf("cache entry should be invalidated after a status write")
	}
}

func TestStatusService_BulkGet(t *testing.T) {
	repo := newStubStatusRepo()
	svc := NewStatusService(repo, nil, zerolog.Nop())

	_ = svc.Set(context.Background(), "artisan_1", simpleRef(1), domain.StatusInProgress)
	_ = svc.Set(context.Background(), "artisan_1", domain.RequestRef{Kind: domain.KindAdvanced, ID: 1}, domain.StatusNew)
	_ = svc.Set(context.Background(), "artisan_2", simpleRef(2), domain.StatusInProgress)

	overlay, err := svc.BulkGet(context.Background(), "artisan_1")
	if err != nil {
		t.Fatalf("BulkGet failed: %v", err)
	}
	if len(overlay) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(overlay))
	}
	if overlay[simpleRef(1)] != domain.StatusInProgress {
		t.Fatalf("unexpected overlay: %v", overlay)
	}
	if _, ok := overlay[simpleRef(2)]; ok {
		t.Fatalf("overlay must not leak other artisans' entries")
	}
}
