package store

import (
	"context"
	"fmt"
	"log/slog"

	"kiosco/internal/config"
	"kiosco/internal/types"
)

// SnapshotStore persists the landing feed singleton. There is exactly one
// current snapshot; Upsert overwrites it in place rather than appending.
type SnapshotStore interface {
	// Latest returns the stored snapshot, or types.ErrNoSnapshot when
	// nothing has been persisted yet.
	Latest(ctx context.Context) (*types.Snapshot, error)

	// Upsert overwrites the singleton snapshot.
	Upsert(ctx context.Context, snap *types.Snapshot) error

	// Close releases backend resources.
	Close(ctx context.Context) error

	// Name returns the backend identifier.
	Name() string
}

// New creates the store backend selected by config.
func New(ctx context.Context, cfg *config.StoreConfig, logger *slog.Logger) (SnapshotStore, error) {
	switch cfg.Type {
	case "mongo":
		return NewMongoStore(ctx, &cfg.Mongo, logger)
	case "redis":
		return NewRedisStore(&cfg.Redis, logger)
	case "memory":
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown store type %q", cfg.Type)
	}
}
