package store

import (
	"context"
	"sync"

	"kiosco/internal/types"
)

// MemoryStore is an in-process snapshot store for tests and local runs.
type MemoryStore struct {
	mu   sync.RWMutex
	snap *types.Snapshot
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Name() string { return "memory" }

func (s *MemoryStore) Latest(ctx context.Context) (*types.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snap == nil {
		return nil, types.ErrNoSnapshot
	}
	cp := *s.snap
	cp.Articles = append([]types.Article(nil), s.snap.Articles...)
	return &cp, nil
}

func (s *MemoryStore) Upsert(ctx context.Context, snap *types.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *snap
	cp.Articles = append([]types.Article(nil), snap.Articles...)
	s.snap = &cp
	return nil
}

func (s *MemoryStore) Close(ctx context.Context) error { return nil }
