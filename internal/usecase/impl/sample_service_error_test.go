package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"wildtrack/internal/domain/repository"
	"wildtrack/internal/infra/metrics"
	mockRepo "wildtrack/internal/mocks/repository"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createMockedSampleService(t *testing.T) (*sampleDataService, *mockRepo.MockStore) {
	t.Helper()

	store := mockRepo.NewMockStore(t)
	service := &sampleDataService{
		store:   store,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		metrics: metrics.NewWithRegistry(prometheus.NewRegistry()),
		now:     func() time.Time { return time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC) },
	}

	return service, store
}

func TestSampleDataService_Seed_AbortsOnFirstStoreError(t *testing.T) {
	service, store := createMockedSampleService(t)

	ctx := context.Background()
	storeErr := repository.NewStoreError(repository.CollectionUsers, "upsert", assert.AnError)

	users := mockRepo.NewMockCollection(t)
	users.EXPECT().
		UpsertByKey(ctx, repository.Document{"email": "researcher@example.org"}, mock.Anything).
		Return("", storeErr)

	// Only the users collection is touched: the first failure stops the run.
	store.EXPECT().Collection(repository.CollectionUsers).Return(users)

	result, err := service.Seed(ctx)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorContains(t, err, "seed user")
	assert.ErrorIs(t, err, storeErr)
}

func TestSampleDataService_Verify_CollectsPerCheckErrors(t *testing.T) {
	service, store := createMockedSampleService(t)

	ctx := context.Background()

	healthy := mockRepo.NewMockCollection(t)
	healthy.EXPECT().CountAll(ctx).Return(int64(1), nil)

	broken := mockRepo.NewMockCollection(t)
	broken.EXPECT().CountAll(ctx).
		Return(int64(0), repository.NewStoreError(repository.CollectionDevices, "count", assert.AnError))

	telemetry := mockRepo.NewMockCollection(t)
	telemetry.EXPECT().CountAll(ctx).Return(int64(3), nil)
	telemetry.EXPECT().FindLatestByField(ctx, "timestamp", true).
		Return(nil, false, repository.NewStoreError(repository.CollectionTelemetry, "find latest", assert.AnError))

	for _, name := range repository.CollectionNames() {
		switch name {
		case repository.CollectionDevices:
			store.EXPECT().Collection(name).Return(broken)
		case repository.CollectionTelemetry:
			store.EXPECT().Collection(name).Return(telemetry)
		default:
			store.EXPECT().Collection(name).Return(healthy)
		}
	}

	result, err := service.Verify(ctx)
	require.NoError(t, err)
	require.NotNil(t, result)

	// The failed count and the failed latest-telemetry lookup are both
	// reported; every other check still ran.
	assert.False(t, result.OK)
	assert.Len(t, result.Errors, 2)
	assert.Contains(t, result.Errors[0], "count devices")
	assert.Contains(t, result.Errors[1], "latest telemetry")
	assert.Len(t, result.Counts, len(repository.CollectionNames())-1)
	assert.NotContains(t, result.Counts, repository.CollectionDevices)
	assert.EqualValues(t, 3, result.Counts[repository.CollectionTelemetry])
	assert.Nil(t, result.LatestTelemetry)
}

func TestSampleDataService_Verify_FailsWhenCollectionEmpty(t *testing.T) {
	service, store := createMockedSampleService(t)

	ctx := context.Background()

	populated := mockRepo.NewMockCollection(t)
	populated.EXPECT().CountAll(ctx).Return(int64(1), nil)

	empty := mockRepo.NewMockCollection(t)
	empty.EXPECT().CountAll(ctx).Return(int64(0), nil)

	telemetry := mockRepo.NewMockCollection(t)
	telemetry.EXPECT().CountAll(ctx).Return(int64(3), nil)
	telemetry.EXPECT().FindLatestByField(ctx, "timestamp", true).
		Return(repository.Document{"speed_kmh": 2.5}, true, nil)

	for _, name := range repository.CollectionNames() {
		switch name {
		case repository.CollectionSightings:
			store.EXPECT().Collection(name).Return(empty)
		case repository.CollectionTelemetry:
			store.EXPECT().Collection(name).Return(telemetry)
		default:
			store.EXPECT().Collection(name).Return(populated)
		}
	}

	result, err := service.Verify(ctx)
	require.NoError(t, err)

	assert.False(t, result.OK)
	assert.Empty(t, result.Errors)
	assert.EqualValues(t, 0, result.Counts[repository.CollectionSightings])
	assert.NotNil(t, result.LatestTelemetry)
}

func TestSampleDataService_SeedAndVerify_PropagatesSeedError(t *testing.T) {
	service, store := createMockedSampleService(t)

	ctx := context.Background()

	users := mockRepo.NewMockCollection(t)
	users.EXPECT().
		UpsertByKey(ctx, mock.Anything, mock.Anything).
		Return("", repository.NewStoreError(repository.CollectionUsers, "upsert", assert.AnError))
	store.EXPECT().Collection(repository.CollectionUsers).Return(users)

	result, err := service.SeedAndVerify(ctx)
	require.Error(t, err)
	assert.Nil(t, result)
}
