// Package memory provides an in-process implementation of the storage
// gateway. It mirrors the MongoDB gateway's observable behavior, including
// the at-most-one-record-per-natural-key upsert guarantee, and backs the
// end-to-end tests and local runs without a running MongoDB.
package memory

import (
	"context"
	"sync"
	"time"

	"wildtrack/internal/domain/repository"
	"wildtrack/internal/errors"
	"wildtrack/internal/infra/persistence/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Store implements repository.Store with per-collection in-memory slices.
type Store struct {
	mu          sync.Mutex
	collections map[string]*collection
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		collections: make(map[string]*collection),
	}
}

// Collection returns the gateway for a named collection, creating it on
// first use.
func (s *Store) Collection(name string) repository.Collection {
	s.mu.Lock()
	defer s.mu.Unlock()

	coll, ok := s.collections[name]
	if !ok {
		coll = &collection{name: name}
		s.collections[name] = coll
	}

	return coll
}

// Ping always succeeds for the in-memory store.
func (s *Store) Ping(context.Context) error {
	return nil
}

// EnsureIndexes is a no-op: natural-key uniqueness is enforced inside
// UpsertByKey and lookups scan the collection.
func (s *Store) EnsureIndexes(context.Context) error {
	return nil
}

// Close is a no-op.
func (s *Store) Close(context.Context) error {
	return nil
}

// collection holds documents after a bson round trip, matching the value
// types a MongoDB decode would produce.
type collection struct {
	mu   sync.Mutex
	name string
	docs []repository.Document
}

// InsertOne appends a new document with a fresh id.
func (c *collection) InsertOne(_ context.Context, doc any) (string, error) {
	stored, err := toDocument(doc)
	if err != nil {
		return "", repository.NewStoreError(c.name, "insert", err)
	}

	id := primitive.NewObjectID().Hex()
	stored["_id"] = id

	c.mu.Lock()
	defer c.mu.Unlock()
	c.docs = append(c.docs, stored)

	return id, nil
}

// UpsertByKey inserts doc only when no document matches filter. Match and
// insert happen under one lock, which gives the same at-most-one-per-key
// guarantee the MongoDB gateway gets from its atomic findOneAndUpdate.
func (c *collection) UpsertByKey(_ context.Context, filter repository.Document, doc any) (string, error) {
	normalizedFilter, err := toDocument(bson.M(filter))
	if err != nil {
		return "", repository.NewStoreError(c.name, "upsert", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, existing := range c.docs {
		if matches(existing, normalizedFilter) {
			id, ok := existing["_id"].(string)
			if !ok {
				return "", repository.NewStoreError(c.name, "upsert", errors.New("document without string id"))
			}

			return id, nil
		}
	}

	stored, err := toDocument(doc)
	if err != nil {
		return "", repository.NewStoreError(c.name, "upsert", err)
	}

	id := primitive.NewObjectID().Hex()
	stored["_id"] = id
	c.docs = append(c.docs, stored)

	return id, nil
}

// CountAll returns the number of documents.
func (c *collection) CountAll(context.Context) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return int64(len(c.docs)), nil
}

// FindLatestByField scans for the document with the extremal sortField value.
func (c *collection) FindLatestByField(_ context.Context, sortField string, descending bool) (repository.Document, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var best repository.Document
	for _, doc := range c.docs {
		value, ok := doc[sortField]
		if !ok {
			continue
		}
		if best == nil {
			best = doc

			continue
		}

		cmp, err := compareValues(value, best[sortField])
		if err != nil {
			return nil, false, repository.NewStoreError(c.name, "find latest", err)
		}
		if (descending && cmp > 0) || (!descending && cmp < 0) {
			best = doc
		}
	}

	if best == nil {
		return nil, false, nil
	}

	return copyDocument(best), true, nil
}

// toDocument round-trips doc through bson and normalizes it, so stored values
// carry the same shapes the MongoDB gateway returns after a decode.
func toDocument(doc any) (repository.Document, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, errors.Wrap(err, "marshal document")
	}

	var out bson.M
	if err := bson.Unmarshal(raw, &out); err != nil {
		return nil, errors.Wrap(err, "unmarshal document")
	}

	return model.NormalizeDocument(out), nil
}

func matches(doc, filter repository.Document) bool {
	for key, want := range filter {
		got, ok := doc[key]
		if !ok {
			return false
		}
		cmp, err := compareValues(got, want)
		if err != nil || cmp != 0 {
			return false
		}
	}

	return true
}

// compareValues orders the scalar types the gateway sorts and filters on.
func compareValues(a, b any) (int, error) {
	if aTime, ok := asDateTime(a); ok {
		bTime, ok := asDateTime(b)
		if !ok {
			return 0, errors.Errorf("cannot compare datetime with %T", b)
		}

		return compareOrdered(aTime, bTime), nil
	}

	if aNum, ok := asFloat(a); ok {
		bNum, ok := asFloat(b)
		if !ok {
			return 0, errors.Errorf("cannot compare number with %T", b)
		}

		return compareOrdered(aNum, bNum), nil
	}

	aStr, aOK := a.(string)
	bStr, bOK := b.(string)
	if aOK && bOK {
		return compareOrdered(aStr, bStr), nil
	}

	return 0, errors.Errorf("unsupported comparison between %T and %T", a, b)
}

func asDateTime(v any) (int64, bool) {
	switch t := v.(type) {
	case time.Time:
		return t.UnixMilli(), true
	case primitive.DateTime:
		return int64(t), true
	default:
		return 0, false
	}
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

func compareOrdered[T int64 | float64 | string](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func copyDocument(doc repository.Document) repository.Document {
	out := make(repository.Document, len(doc))
	for k, v := range doc {
		out[k] = v
	}

	return out
}
