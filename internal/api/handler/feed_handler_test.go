package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/coopbat/intake-api/internal/core/domain"
)

type stubFeedService struct {
	listFn func(ctx context.Context, artisanID string) ([]domain.FeedItem, error)
}

func (s *stubFeedService) ListForArtisan(ctx context.Context, artisanID string) ([]domain.FeedItem, error) {
	return s.listFn(ctx, artisanID)
}

type stubStatusService struct {
	setFn func(ctx context.Context, artisanID string, ref domain.RequestRef, status domain.Status) error
}

func (s *stubStatusService) Get(_ context.Context, _ string, _ domain.RequestRef) (domain.Status, error) {
	return domain.StatusNew, nil
}

func (s *stubStatusService) Set(ctx context.Context, artisanID string, ref domain.RequestRef, status domain.Status) error {
	return s.setFn(ctx, artisanID, ref, status)
}

func (s *stubStatusService) BulkGet(_ context.Context, _ string) (map[domain.RequestRef]domain.Status, error) {
	return nil, nil
}

func TestFeedHandler_List_Success(t *testing.T) {
	e := echo.New()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	feed := &stubFeedService{
		listFn: func(ctx context.Context, artisanID string) ([]domain.FeedItem, error) {
			if artisanID != "artisan_1" {
				t.Fatalf("unexpected artisan id: %s", artisanID)
			}
			return []domain.FeedItem{
				{Kind: domain.KindLead, ID: 2, Date: now, WorkType: "Lot complet", Commune: "Brest", Status: domain.StatusInProgress},
				{Kind: domain.KindSimple, ID: 2, Date: now.Add(-time.Hour), WorkType: "toiture", Commune: "Quimper", Status: domain.StatusNew},
			}, nil
		},
	}
	handler := NewFeedHandler(feed, &stubStatusService{})

	req := httptest.NewRequest(http.MethodGet, "/artisan/requests/artisan_1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("artisan_id")
	c.SetParamValues("artisan_1")

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Items []map[string]any `json:"items"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(resp.Items))
	}
	// same numeric id under two kinds stays distinguishable on the wire
	if resp.Items[0]["kind"] != "lead" || resp.Items[1]["kind"] != "simple" {
		t.Fatalf("unexpected kinds: %v / %v", resp.Items[0]["kind"], resp.Items[1]["kind"])
	}
	if resp.Items[0]["status"] != "in_progress" {
		t.Fatalf("expected in_progress, got %v", resp.Items[0]["status"])
	}
}

func TestFeedHandler_List_EmptyFeed(t *testing.T) {
	e := echo.New()
	feed := &stubFeedService{
		listFn: func(ctx context.Context, artisanID string) ([]domain.FeedItem, error) {
			return nil, nil
		},
	}
	handler := NewFeedHandler(feed, &stubStatusService{})

	req := httptest.NewRequest(http.MethodGet, "/artisan/requests/artisan_1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("artisan_id")
	c.SetParamValues("artisan_1")

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	// empty feed must serialize as [], not null
	if !strings.Contains(rec.Body.String(), `"items":[]`) {
		t.Fatalf("expected empty items array, got %s", rec.Body.String())
	}
}

func setStatusContext(e *echo.Echo, kind, id, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/artisan/requests/artisan_1/"+kind+"/"+id+"/status", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("artisan_id", "kind", "id")
	c.SetParamValues("artisan_1", kind, id)
	return c, rec
}

func TestFeedHandler_SetStatus_Success(t *testing.T) {
	e := echo.New()
	var gotRef domain.RequestRef
	var gotStatus domain.Status
	statuses := &stubStatusService{
		setFn: func(ctx context.Context, artisanID string, ref domain.RequestRef, status domain.Status) error {
			gotRef = ref
			gotStatus = status
			return nil
		},
	}
	handler := NewFeedHandler(&stubFeedService{}, statuses)

	c, rec := setStatusContext(e, "lead", "7", `{"status":"in_progress"}`)
	if err := handler.SetStatus(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotRef.Kind != domain.KindLead || gotRef.ID != 7 {
		t.Fatalf("unexpected ref: %+v", gotRef)
	}
	if gotStatus != domain.StatusInProgress {
		t.Fatalf("unexpected status: %q", gotStatus)
	}
}

func TestFeedHandler_SetStatus_UnknownKind(t *testing.T) {
	e := echo.New()
	handler := NewFeedHandler(&stubFeedService{}, &stubStatusService{
		setFn: func(ctx context.Context, artisanID string, ref domain.RequestRef, status domain.Status) error {
			t.Fatalf("should not be called")
			return nil
		},
	})

	c, _ := setStatusContext(e, "premium", "7", `{"status":"in_progress"}`)
	if err := handler.SetStatus(c); !errors.Is(err, domain.ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
}

func TestFeedHandler_SetStatus_NonNumericID(t *testing.T) {
	e := echo.New()
	handler := NewFeedHandler(&stubFeedService{}, &stubStatusService{})

	c, _ := setStatusContext(e, "simple", "abc", `{"status":"in_progress"}`)
	err := handler.SetStatus(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestFeedHandler_SetStatus_InvalidValue(t *testing.T) {
	e := echo.New()
	handler := NewFeedHandler(&stubFeedService{}, &stubStatusService{
		setFn: func(ctx context.Context, artisanID string, ref domain.RequestRef, status domain.Status) error {
			return domain.ErrInvalidStatus
		},
	})

	c, _ := setStatusContext(e, "simple", "1", `{"status":"done"}`)
	if err := handler.SetStatus(c); !errors.Is(err, domain.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}
