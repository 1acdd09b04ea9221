package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"kiosco/internal/types"
)

type fakeProvider struct {
	snap        *types.Snapshot
	err         error
	getCalls    int
	forced      bool
	refreshHits int
}

func (f *fakeProvider) Get(ctx context.Context, forceRefresh bool) (*types.Snapshot, error) {
	f.getCalls++
	f.forced = forceRefresh
	return f.snap, f.err
}

func (f *fakeProvider) Refresh(ctx context.Context) (*types.Snapshot, error) {
	f.refreshHits++
	return f.snap, f.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestHandleNews(t *testing.T) {
	provider := &fakeProvider{snap: &types.Snapshot{
		GeneratedAt: time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC),
		Articles: []types.Article{
			{Slug: "abc", Title: "Some headline", URL: "https://example.com/a", Source: "example.com"},
		},
	}}
	srv := NewServer(8080, provider, testLogger())

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/news", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type = %q", ct)
	}
	var snap types.Snapshot
	if err := json.Unmarshal(rec.Body.Bytes(), &snap); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(snap.Articles) != 1 || snap.Articles[0].Slug != "abc" {
		t.Errorf("unexpected payload: %+v", snap)
	}
	if provider.forced {
		t.Error("plain GET should not force a refresh")
	}
}

func TestHandleNewsForceRefresh(t *testing.T) {
	provider := &fakeProvider{snap: &types.Snapshot{GeneratedAt: time.Now()}}
	srv := NewServer(8080, provider, testLogger())

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/news?refresh=true", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !provider.forced {
		t.Error("refresh=true should force a refresh")
	}
}

func TestHandleNewsEmptyArticlesIsArray(t *testing.T) {
	provider := &fakeProvider{snap: &types.Snapshot{GeneratedAt: time.Now()}}
	srv := NewServer(8080, provider, testLogger())

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/news", nil))

	if strings.Contains(rec.Body.String(), `"articles":null`) {
		t.Errorf("empty snapshot should marshal articles as [], got %s", rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"articles":[]`) {
		t.Errorf("expected empty array, got %s", rec.Body.String())
	}
}

func TestHandleNewsError(t *testing.T) {
	provider := &fakeProvider{err: errors.New("mongo down")}
	srv := NewServer(8080, provider, testLogger())

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/news", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
}

func TestHandleRefresh(t *testing.T) {
	provider := &fakeProvider{snap: &types.Snapshot{GeneratedAt: time.Now()}}
	srv := NewServer(8080, provider, testLogger())

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/news/refresh", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if provider.refreshHits != 1 {
		t.Errorf("refresh calls = %d, want 1", provider.refreshHits)
	}
}

func TestHandleHealth(t *testing.T) {
	srv := NewServer(8080, &fakeProvider{}, testLogger())

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"status":"ok"`) {
		t.Errorf("body = %s", rec.Body.String())
	}
}
