package store

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"kiosco/internal/config"
	"kiosco/internal/types"
)

// RedisStore keeps the snapshot as a JSON blob under a single key. No key
// TTL is set; staleness is the landing service's decision, not the store's.
type RedisStore struct {
	client *redis.Client
	key    string
	logger *slog.Logger
}

// NewRedisStore creates a Redis-backed snapshot store.
func NewRedisStore(cfg *config.RedisConfig, logger *slog.Logger) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	key := cfg.Key
	if key == "" {
		key = "kiosco:landing"
	}
	return &RedisStore{
		client: client,
		key:    key,
		logger: logger.With("component", "redis_store"),
	}, nil
}

func (s *RedisStore) Name() string { return "redis" }

func (s *RedisStore) Latest(ctx context.Context) (*types.Snapshot, error) {
	raw, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, types.ErrNoSnapshot
	}
	if err != nil {
		return nil, &types.StoreError{Backend: s.Name(), Op: "latest", Err: err}
	}

	var snap types.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, &types.StoreError{Backend: s.Name(), Op: "decode", Err: err}
	}
	return &snap, nil
}

func (s *RedisStore) Upsert(ctx context.Context, snap *types.Snapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return &types.StoreError{Backend: s.Name(), Op: "encode", Err: err}
	}
	if err := s.client.Set(ctx, s.key, raw, 0).Err(); err != nil {
		return &types.StoreError{Backend: s.Name(), Op: "upsert", Err: err}
	}
	s.logger.Debug("snapshot stored", "articles", len(snap.Articles), "generated_at", snap.GeneratedAt)
	return nil
}

func (s *RedisStore) Close(ctx context.Context) error {
	return s.client.Close()
}
