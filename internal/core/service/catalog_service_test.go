package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"

	"github.com/rs/zerolog"

	"github.com/coopbat/intake-api/internal/core/domain"
	"github.com/coopbat/intake-api/internal/core/ports"
)

type stubCatalogRepo struct {
	categories map[string]*domain.TradeCategory
	nextID     int
}

func newStubCatalogRepo() *stubCatalogRepo {
	return &stubCatalogRepo{categories: make(map[string]*domain.TradeCategory)}
}

func (r *stubCatalogRepo) List(_ context.Context) ([]domain.TradeCategory, error) {
	var out []domain.TradeCategory
	for _, c := range r.categories {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

func (r *stubCatalogRepo) Upsert(_ context.Context, category *domain.TradeCategory) (*domain.TradeCategory, error) {
	clone := *category
	if clone.ID == "" {
		r.nextID++
		clone.ID = fmt.Sprintf("cat_%d", r.nextID)
	}
	r.categories[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubCatalogRepo) Delete(_ context.Context, id string) error {
	delete(r.categories, id)
	return nil
}

func TestCatalogService_Upsert_CreatesAndUpdates(t *testing.T) {
	repo := newStubCatalogRepo()
	svc := NewCatalogService(repo, zerolog.Nop())

	created, err := svc.Upsert(context.Background(), ports.UpsertCategoryInput{
		Title:    "  Couverture ",
		Position: 1,
	})
	if err != nil {
		t.Fatalf("Upsert returned error: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected an id to be assigned")
	}
	if created.Title != "Couverture" {
		t.Fatalf("expected trimmed title, got %q", created.Title)
	}

	updated, err := svc.Upsert(context.Background(), ports.UpsertCategoryInput{
		ID:    created.ID,
		Title: "Couverture & Zinguerie",
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.ID != created.ID {
		t.Fatalf("update must keep the id")
	}
	if len(repo.categories) != 1 {
		t.Fatalf("expected single category, got %d", len(repo.categories))
	}
}

func TestCatalogService_Upsert_TitleRequired(t *testing.T) {
	svc := NewCatalogService(newStubCatalogRepo(), zerolog.Nop())

	_, err := svc.Upsert(context.Background(), ports.UpsertCategoryInput{Title: "   "})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestCatalogService_List_OrderedByPosition(t *testing.T) {
	repo := newStubCatalogRepo()
	svc := NewCatalogService(repo, zerolog.Nop())

	_, _ = svc.Upsert(context.Background(), ports.UpsertCategoryInput{Title: "Zinguerie", Position: 2})
	_, _ = svc.Upsert(context.Background(), ports.UpsertCategoryInput{Title: "Couverture", Position: 1})

	categories, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(categories) != 2 || categories[0].Title != "Couverture" {
		t.Fatalf("unexpected order: %+v", categories)
	}
}

func TestCatalogService_Delete(t *testing.T) {
	repo := newStubCatalogRepo()
	svc := NewCatalogService(repo, zerolog.Nop())

	created, _ := svc.Upsert(context.Background(), ports.UpsertCategoryInput{Title: "Charpente"})
	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if len(repo.categories) != 0 {
		t.Fatalf("category should be gone")
	}
}
