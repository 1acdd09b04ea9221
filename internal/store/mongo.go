package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"kiosco/internal/config"
	"kiosco/internal/types"
)

// landingDocID is the fixed _id of the singleton snapshot document.
const landingDocID = "landing-news"

// MongoStore keeps the snapshot in a single MongoDB document with a fixed
// _id, giving find-latest-or-create semantics via upsert.
type MongoStore struct {
	client     *mongo.Client
	collection *mongo.Collection
	logger     *slog.Logger
}

type snapshotDoc struct {
	ID          string          `bson:"_id"`
	GeneratedAt time.Time       `bson:"generatedAt"`
	Articles    []types.Article `bson:"articles"`
}

// NewMongoStore connects to MongoDB and pings it before returning.
func NewMongoStore(ctx context.Context, cfg *config.MongoConfig, logger *slog.Logger) (*MongoStore, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("mongodb connect: %w", err)
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		return nil, fmt.Errorf("mongodb ping: %w", err)
	}

	return &MongoStore{
		client:     client,
		collection: client.Database(cfg.Database).Collection(cfg.Collection),
		logger:     logger.With("component", "mongo_store"),
	}, nil
}

func (s *MongoStore) Name() string { return "mongo" }

func (s *MongoStore) Latest(ctx context.Context) (*types.Snapshot, error) {
	var doc snapshotDoc
	err := s.collection.FindOne(ctx, bson.M{"_id": landingDocID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, types.ErrNoSnapshot
	}
	if err != nil {
		return nil, &types.StoreError{Backend: s.Name(), Op: "latest", Err: err}
	}
	return &types.Snapshot{GeneratedAt: doc.GeneratedAt, Articles: doc.Articles}, nil
}

func (s *MongoStore) Upsert(ctx context.Context, snap *types.Snapshot) error {
	doc := snapshotDoc{
		ID:          landingDocID,
		GeneratedAt: snap.GeneratedAt,
		Articles:    snap.Articles,
	}
	opts := options.Replace().SetUpsert(true)
	_, err := s.collection.ReplaceOne(ctx, bson.M{"_id": landingDocID}, doc, opts)
	if err != nil {
		return &types.StoreError{Backend: s.Name(), Op: "upsert", Err: err}
	}
	s.logger.Debug("snapshot stored", "articles", len(snap.Articles), "generated_at", snap.GeneratedAt)
	return nil
}

func (s *MongoStore) Close(ctx context.Context) error {
	disconnectCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return s.client.Disconnect(disconnectCtx)
}
