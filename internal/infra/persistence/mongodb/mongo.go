// Package mongodb contains the concrete implementation of the storage
// gateway backed by MongoDB.
package mongodb

import (
	"context"
	"log/slog"

	"wildtrack/config"
	"wildtrack/internal/domain/lifecycle"
	"wildtrack/internal/domain/repository"
	"wildtrack/internal/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/fx"
)

// Store implements repository.Store on top of a MongoDB database. The
// underlying client pools connections and is safe for concurrent use; one
// Store is shared for the process lifetime.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect creates a Store from the mongo configuration. The connection is
// verified separately via Ping.
func Connect(ctx context.Context, cfg config.MongoConfig) (*Store, error) {
	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}

	return &Store{
		client: client,
		db:     client.Database(cfg.Database),
	}, nil
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the MongoDB-backed store and ties its connection to the fx
// lifecycle: ping and index creation on start, disconnect on stop.
func New(params Params) (repository.Store, error) {
	store, err := Connect(context.Background(), params.Config.Mongo)
	if err != nil {
		return nil, err
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := store.Ping(ctx); err != nil {
				return errors.Wrap(err, "failed to ping MongoDB")
			}
			if err := store.EnsureIndexes(ctx); err != nil {
				return errors.Wrap(err, "failed to ensure MongoDB indexes")
			}

			params.Logger.Info("Connected to MongoDB",
				slog.String("database", params.Config.Mongo.Database))

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			return store.Close(stopCtx)
		},
	})

	return store, nil
}

// Collection returns the gateway for a named collection.
func (s *Store) Collection(name string) repository.Collection {
	return &collection{
		name: name,
		coll: s.db.Collection(name),
	}
}

// Ping checks connectivity against the primary.
func (s *Store) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	return errors.Wrap(s.client.Ping(ctx, readpref.Primary()), "mongodb ping")
}

// EnsureIndexes creates the unique indexes backing the natural keys and the
// descending timestamp index used by the latest-telemetry lookup. It is
// idempotent and runs once at process startup.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)
	naturalKeys := []struct {
		collection string
		field      string
	}{
		{repository.CollectionUsers, "email"},
		{repository.CollectionAnimals, "tag_id"},
		{repository.CollectionDevices, "device_id"},
		{repository.CollectionGeofences, "name"},
	}

	for _, key := range naturalKeys {
		_, err := s.db.Collection(key.collection).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: key.field, Value: 1}},
			Options: unique,
		})
		if err != nil {
			return repository.NewStoreError(key.collection, "create index", err)
		}
	}

	_, err := s.db.Collection(repository.CollectionTelemetry).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "timestamp", Value: -1}},
	})
	if err != nil {
		return repository.NewStoreError(repository.CollectionTelemetry, "create index", err)
	}

	return nil
}

// Close disconnects the client.
func (s *Store) Close(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	return errors.Wrap(s.client.Disconnect(ctx), "mongodb disconnect")
}
