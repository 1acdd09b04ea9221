package landing

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"kiosco/internal/store"
	"kiosco/internal/types"
)

var testLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeFetcher returns a canned article list and counts invocations.
type fakeFetcher struct {
	articles []types.Article
	calls    int
}

func (f *fakeFetcher) FetchLatest(ctx context.Context) []types.Article {
	f.calls++
	return f.articles
}

// failingStore fails every operation, standing in for an unavailable backend.
type failingStore struct{}

func (failingStore) Name() string { return "failing" }
func (failingStore) Latest(ctx context.Context) (*types.Snapshot, error) {
	return nil, &types.StoreError{Backend: "failing", Op: "latest", Err: errors.New("down")}
}
func (failingStore) Upsert(ctx context.Context, snap *types.Snapshot) error {
	return &types.StoreError{Backend: "failing", Op: "upsert", Err: errors.New("down")}
}
func (failingStore) Close(ctx context.Context) error { return nil }

func newTestService(f Fetcher, s store.SnapshotStore, now time.Time) *Service {
	svc := NewService(f, s, 6*time.Hour, testLogger)
	svc.now = func() time.Time { return now }
	return svc
}

func TestGetAbsentTriggersRefresh(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	fetcher := &fakeFetcher{articles: []types.Article{{Slug: "a", Title: "A", URL: "https://e.com/a"}}}
	svc := newTestService(fetcher, store.NewMemoryStore(), now)

	snap, err := svc.Get(context.Background(), false)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if fetcher.calls != 1 {
		t.Errorf("expected one refresh, got %d", fetcher.calls)
	}
	if !snap.GeneratedAt.Equal(now) {
		t.Errorf("generatedAt: got %v, want %v", snap.GeneratedAt, now)
	}
}

func TestGetFreshServesStoredSnapshot(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	memStore := store.NewMemoryStore()

	stored := &types.Snapshot{
		GeneratedAt: now.Add(-time.Hour), // 1h old, TTL is 6h
		Articles:    []types.Article{{Slug: "old", Title: "Old", URL: "https://e.com/old"}},
	}
	memStore.Upsert(context.Background(), stored)

	fetcher := &fakeFetcher{}
	svc := newTestService(fetcher, memStore, now)

	snap, err := svc.Get(context.Background(), false)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if fetcher.calls != 0 {
		t.Errorf("fresh snapshot must not refresh, fetcher called %d times", fetcher.calls)
	}
	if !snap.GeneratedAt.Equal(stored.GeneratedAt) {
		t.Errorf("generatedAt changed on fresh read: %v", snap.GeneratedAt)
	}
}

func TestGetStaleTriggersRefresh(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	memStore := store.NewMemoryStore()

	memStore.Upsert(context.Background(), &types.Snapshot{
		GeneratedAt: now.Add(-7 * time.Hour), // 7h old, TTL is 6h
	})

	fetcher := &fakeFetcher{articles: []types.Article{{Slug: "n", Title: "New", URL: "https://e.com/n"}}}
	svc := newTestService(fetcher, memStore, now)

	snap, err := svc.Get(context.Background(), false)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if fetcher.calls != 1 {
		t.Errorf("stale snapshot should refresh once, got %d calls", fetcher.calls)
	}
	if !snap.GeneratedAt.Equal(now) {
		t.Errorf("generatedAt: got %v, want %v", snap.GeneratedAt, now)
	}
}

func TestGetForceRefreshIgnoresFreshness(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	memStore := store.NewMemoryStore()
	memStore.Upsert(context.Background(), &types.Snapshot{GeneratedAt: now.Add(-time.Minute)})

	fetcher := &fakeFetcher{}
	svc := newTestService(fetcher, memStore, now)

	if _, err := svc.Get(context.Background(), true); err != nil {
		t.Fatalf("get: %v", err)
	}
	if fetcher.calls != 1 {
		t.Errorf("forceRefresh should always refresh, got %d calls", fetcher.calls)
	}
}

func TestGetBackfillsSlugsOnce(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	memStore := store.NewMemoryStore()

	// Snapshot persisted before the slug field existed.
	memStore.Upsert(context.Background(), &types.Snapshot{
		GeneratedAt: now.Add(-time.Hour),
		Articles: []types.Article{
			{Title: "No slug yet", URL: "https://e.com/legacy"},
			{Slug: "keep", Title: "Has slug", URL: "https://e.com/kept"},
		},
	})

	svc := newTestService(&fakeFetcher{}, memStore, now)

	snap, err := svc.Get(context.Background(), false)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if snap.Articles[0].Slug != types.Slug("https://e.com/legacy") {
		t.Errorf("slug not backfilled: %q", snap.Articles[0].Slug)
	}
	if snap.Articles[1].Slug != "keep" {
		t.Errorf("existing slug overwritten: %q", snap.Articles[1].Slug)
	}

	// The backfilled version was persisted.
	stored, _ := memStore.Latest(context.Background())
	if stored.Articles[0].Slug == "" {
		t.Error("backfill was not persisted")
	}
}

func TestStoreFailurePropagates(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	svc := newTestService(&fakeFetcher{}, failingStore{}, now)

	_, err := svc.Get(context.Background(), false)
	if err == nil {
		t.Fatal("expected store failure to propagate")
	}
	var storeErr *types.StoreError
	if !errors.As(err, &storeErr) {
		t.Errorf("expected StoreError, got %T", err)
	}
}

func TestRefreshWithNoArticlesIsValid(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	svc := newTestService(&fakeFetcher{}, store.NewMemoryStore(), now)

	snap, err := svc.Refresh(context.Background())
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if len(snap.Articles) != 0 {
		t.Errorf("expected empty article list, got %d", len(snap.Articles))
	}
}
