// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"fmt"
)

// Collection names for the seven record kinds.
const (
	CollectionUsers     = "users"
	CollectionAnimals   = "animals"
	CollectionDevices   = "devices"
	CollectionTelemetry = "telemetry"
	CollectionGeofences = "geofences"
	CollectionAlerts    = "alerts"
	CollectionSightings = "sightings"
)

// CollectionNames returns all collection names in seed dependency order.
func CollectionNames() []string {
	return []string{
		CollectionUsers,
		CollectionAnimals,
		CollectionDevices,
		CollectionTelemetry,
		CollectionGeofences,
		CollectionAlerts,
		CollectionSightings,
	}
}

// Document is a schema-less record as stored in the document store.
type Document = map[string]any

// Collection is the generic gateway to one named collection of the document
// store. Implementations persist every operation immediately; there is no
// caching layer in front of the store.
type Collection interface {
	// InsertOne always creates a new record and returns its store-assigned id.
	InsertOne(ctx context.Context, doc any) (string, error)

	// UpsertByKey inserts doc only if no record matches filter, and returns
	// the id of the record that matches filter afterwards. The check and the
	// insert are a single atomic store operation: at most one record per
	// natural key exists even under concurrent callers, and an existing
	// record is never modified.
	UpsertByKey(ctx context.Context, filter Document, doc any) (string, error)

	// CountAll returns the number of records in the collection.
	CountAll(ctx context.Context) (int64, error)

	// FindLatestByField returns the record with the extremal value of
	// sortField, or found=false when the collection is empty.
	FindLatestByField(ctx context.Context, sortField string, descending bool) (Document, bool, error)
}

// Store is the handle to the document store as a whole.
type Store interface {
	// Collection returns the gateway for a named collection.
	Collection(name string) Collection

	// Ping checks connectivity to the store.
	Ping(ctx context.Context) error

	// EnsureIndexes creates the unique indexes on the natural keys and the
	// telemetry timestamp sort index. Run once at process startup.
	EnsureIndexes(ctx context.Context) error

	// Close releases the store connection.
	Close(ctx context.Context) error
}

// StoreError is the storage-error of the gateway: it carries the collection
// name and the failed operation along with the underlying cause.
type StoreError struct {
	Collection string
	Op         string
	Err        error
}

// NewStoreError wraps err with collection and operation context.
func NewStoreError(collection, op string, err error) *StoreError {
	return &StoreError{
		Collection: collection,
		Op:         op,
		Err:        err,
	}
}

// Error implements the error interface.
func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s on %s: %v", e.Op, e.Collection, e.Err)
}

// Unwrap returns the underlying cause.
func (e *StoreError) Unwrap() error {
	return e.Err
}
