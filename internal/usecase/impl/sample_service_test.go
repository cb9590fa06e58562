package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"wildtrack/internal/domain/repository"
	"wildtrack/internal/infra/metrics"
	"wildtrack/internal/infra/persistence/memory"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleServiceFixtures holds all test dependencies for sample-data service tests.
type sampleServiceFixtures struct {
	service *sampleDataService
	store   *memory.Store
	now     time.Time
}

func createTestSampleService(t *testing.T) sampleServiceFixtures {
	t.Helper()

	store := memory.New()
	now := time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC)
	service := &sampleDataService{
		store:   store,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		metrics: metrics.NewWithRegistry(prometheus.NewRegistry()),
		now:     func() time.Time { return now },
	}

	return sampleServiceFixtures{
		service: service,
		store:   store,
		now:     now,
	}
}

func TestSampleDataService_Seed_CreatesAllRecords(t *testing.T) {
	fx := createTestSampleService(t)
	ctx := context.Background()

	result, err := fx.service.Seed(ctx)
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.NotEmpty(t, result.UsersID)
	assert.NotEmpty(t, result.AnimalsID)
	assert.NotEmpty(t, result.DevicesID)
	assert.Len(t, result.TelemetryIDs, 3)
	assert.NotEmpty(t, result.GeofenceID)
	assert.NotEmpty(t, result.AlertID)
	assert.NotEmpty(t, result.SightingID)

	for _, name := range repository.CollectionNames() {
		count, countErr := fx.store.Collection(name).CountAll(ctx)
		require.NoError(t, countErr)
		if name == repository.CollectionTelemetry {
			assert.EqualValues(t, 3, count)
		} else {
			assert.EqualValues(t, 1, count, name)
		}
	}
}

func TestSampleDataService_Seed_ReferencesAreConsistent(t *testing.T) {
	fx := createTestSampleService(t)
	ctx := context.Background()

	result, err := fx.service.Seed(ctx)
	require.NoError(t, err)

	device, found, err := fx.store.Collection(repository.CollectionDevices).
		FindLatestByField(ctx, "created_at", true)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, result.AnimalsID, device["animal_id"])

	latest, found, err := fx.store.Collection(repository.CollectionTelemetry).
		FindLatestByField(ctx, "timestamp", true)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, result.AnimalsID, latest["animal_id"])
	assert.Equal(t, result.DevicesID, latest["device_id"])

	alert, found, err := fx.store.Collection(repository.CollectionAlerts).
		FindLatestByField(ctx, "created_at", true)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, result.AnimalsID, alert["animal_id"])
	metadata, ok := alert["metadata"].(repository.Document)
	require.True(t, ok)
	assert.Equal(t, result.GeofenceID, metadata["geofence_id"])

	sighting, found, err := fx.store.Collection(repository.CollectionSightings).
		FindLatestByField(ctx, "timestamp", true)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, result.UsersID, sighting["reporter_id"])
}

func TestSampleDataService_Seed_Idempotent(t *testing.T) {
	fx := createTestSampleService(t)
	ctx := context.Background()

	first, err := fx.service.Seed(ctx)
	require.NoError(t, err)
	second, err := fx.service.Seed(ctx)
	require.NoError(t, err)

	// Natural-key entities resolve to the same records.
	assert.Equal(t, first.UsersID, second.UsersID)
	assert.Equal(t, first.AnimalsID, second.AnimalsID)
	assert.Equal(t, first.DevicesID, second.DevicesID)
	assert.Equal(t, first.GeofenceID, second.GeofenceID)

	// Event-like entities are appended fresh each run.
	assert.NotEqual(t, first.AlertID, second.AlertID)
	assert.NotEqual(t, first.SightingID, second.SightingID)
	assert.NotElementsMatch(t, first.TelemetryIDs, second.TelemetryIDs)

	userCount, err := fx.store.Collection(repository.CollectionUsers).CountAll(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, userCount)

	telemetryCount, err := fx.store.Collection(repository.CollectionTelemetry).CountAll(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 6, telemetryCount)
}

func TestSampleDataService_Verify_EmptyStore(t *testing.T) {
	fx := createTestSampleService(t)

	result, err := fx.service.Verify(context.Background())
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.False(t, result.OK)
	assert.Empty(t, result.Errors)
	assert.Nil(t, result.LatestTelemetry)
	for _, name := range repository.CollectionNames() {
		assert.EqualValues(t, 0, result.Counts[name])
	}
}

func TestSampleDataService_Verify_AfterSeed(t *testing.T) {
	fx := createTestSampleService(t)
	ctx := context.Background()

	_, err := fx.service.Seed(ctx)
	require.NoError(t, err)

	result, err := fx.service.Verify(ctx)
	require.NoError(t, err)

	assert.True(t, result.OK)
	assert.Empty(t, result.Errors)
	assert.EqualValues(t, 3, result.Counts[repository.CollectionTelemetry])
	assert.EqualValues(t, 1, result.Counts[repository.CollectionUsers])
	assert.EqualValues(t, 1, result.Counts[repository.CollectionGeofences])

	// The most recent track point is the one seeded 1 minute before now.
	require.NotNil(t, result.LatestTelemetry)
	timestamp, ok := result.LatestTelemetry["timestamp"].(time.Time)
	require.True(t, ok)
	assert.True(t, timestamp.Equal(fx.now.Add(-time.Minute)))
	assert.Equal(t, 2.5, result.LatestTelemetry["speed_kmh"])
}

func TestSampleDataService_SeedAndVerify(t *testing.T) {
	fx := createTestSampleService(t)

	result, err := fx.service.SeedAndVerify(context.Background())
	require.NoError(t, err)
	require.NotNil(t, result.Seed)
	require.NotNil(t, result.Verify)

	assert.Len(t, result.Seed.TelemetryIDs, 3)
	assert.True(t, result.Verify.OK)
}
