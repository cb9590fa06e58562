// Package usecase defines the application-layer contracts between the
// delivery layers and the service implementations.
package usecase

import (
	"context"

	"wildtrack/internal/domain/repository"
)

// SeedResult carries the ids of every document the seeder created or located.
type SeedResult struct {
	UsersID      string   `json:"users_id"`
	AnimalsID    string   `json:"animals_id"`
	DevicesID    string   `json:"devices_id"`
	TelemetryIDs []string `json:"telemetry_ids"`
	GeofenceID   string   `json:"geofence_id"`
	AlertID      string   `json:"alert_id"`
	SightingID   string   `json:"sighting_id"`
}

// VerifyResult is the verdict of a verification pass. Counts holds one entry
// per collection that could be counted; Errors lists every check that failed
// without aborting the pass.
type VerifyResult struct {
	OK              bool                `json:"ok"`
	Counts          map[string]int64    `json:"counts"`
	LatestTelemetry repository.Document `json:"latest_telemetry,omitempty"`
	Errors          []string            `json:"errors,omitempty"`
}

// SeedVerifyResult combines a seed run with the verification that followed it.
type SeedVerifyResult struct {
	Seed   *SeedResult   `json:"seed"`
	Verify *VerifyResult `json:"verify"`
}

// SampleDataUsecase seeds the store with one consistent set of sample
// documents and verifies their presence.
type SampleDataUsecase interface {
	// Seed writes one record per entity kind in dependency order. Repeated
	// calls are idempotent for the natural-key entities and append fresh
	// telemetry, alert and sighting records.
	Seed(ctx context.Context) (*SeedResult, error)

	// Verify counts every collection and fetches the most recent telemetry
	// point. It is read-only; per-check failures are reported in the result
	// rather than aborting the pass.
	Verify(ctx context.Context) (*VerifyResult, error)

	// SeedAndVerify runs Seed then Verify sequentially.
	SeedAndVerify(ctx context.Context) (*SeedVerifyResult, error)
}
