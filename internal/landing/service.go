package landing

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"kiosco/internal/store"
	"kiosco/internal/types"
)

// Fetcher produces the aggregated article list for a fresh snapshot.
type Fetcher interface {
	FetchLatest(ctx context.Context) []types.Article
}

// Service serves the landing snapshot with refresh-on-stale semantics.
//
// Snapshot states: absent (nothing persisted), fresh (age < TTL), stale
// (age >= TTL). Get in absent or stale refreshes, then serves the new
// snapshot; Get in fresh serves the stored one unchanged.
//
// Concurrent stale Gets may both trigger a refresh; last writer wins on
// the upsert. Both writers produce a valid snapshot, so no lock is held
// around the refresh.
type Service struct {
	fetcher Fetcher
	store   store.SnapshotStore
	ttl     time.Duration
	logger  *slog.Logger
	now     func() time.Time
}

// NewService creates a landing service.
func NewService(fetcher Fetcher, snapStore store.SnapshotStore, ttl time.Duration, logger *slog.Logger) *Service {
	return &Service{
		fetcher: fetcher,
		store:   snapStore,
		ttl:     ttl,
		logger:  logger.With("component", "landing"),
		now:     time.Now,
	}
}

// Get returns the current snapshot, refreshing first when it is absent,
// stale, or forceRefresh is set. Store failures propagate; there is no
// fallback data source.
func (s *Service) Get(ctx context.Context, forceRefresh bool) (*types.Snapshot, error) {
	if forceRefresh {
		return s.Refresh(ctx)
	}

	snap, err := s.store.Latest(ctx)
	if errors.Is(err, types.ErrNoSnapshot) {
		s.logger.Info("no snapshot stored, refreshing")
		return s.Refresh(ctx)
	}
	if err != nil {
		return nil, err
	}

	if age := snap.Age(s.now()); age >= s.ttl {
		s.logger.Info("snapshot stale, refreshing", "age", age, "ttl", s.ttl)
		return s.Refresh(ctx)
	}

	// Snapshots persisted before slugs existed get them recomputed on
	// read, and the backfilled version is stored once.
	if backfillSlugs(snap) {
		s.logger.Info("backfilled missing slugs", "articles", len(snap.Articles))
		if err := s.store.Upsert(ctx, snap); err != nil {
			return nil, err
		}
	}

	return snap, nil
}

// Refresh re-runs the aggregation and overwrites the stored snapshot
// unconditionally.
func (s *Service) Refresh(ctx context.Context) (*types.Snapshot, error) {
	articles := s.fetcher.FetchLatest(ctx)
	snap := &types.Snapshot{
		GeneratedAt: s.now(),
		Articles:    articles,
	}
	if err := s.store.Upsert(ctx, snap); err != nil {
		return nil, err
	}
	s.logger.Info("snapshot refreshed", "articles", len(articles))
	return snap, nil
}

// backfillSlugs recomputes missing slugs in place and reports whether
// anything changed.
func backfillSlugs(snap *types.Snapshot) bool {
	changed := false
	for i := range snap.Articles {
		a := &snap.Articles[i]
		if a.Slug == "" && a.URL != "" {
			a.Slug = types.Slug(a.URL)
			changed = true
		}
	}
	return changed
}
