package memory

import (
	"context"
	"testing"
	"time"

	"wildtrack/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollection_InsertOne_AssignsDistinctIDs(t *testing.T) {
	store := New()
	ctx := context.Background()
	coll := store.Collection("telemetry")

	first, err := coll.InsertOne(ctx, repository.Document{"n": 1})
	require.NoError(t, err)
	second, err := coll.InsertOne(ctx, repository.Document{"n": 2})
	require.NoError(t, err)

	assert.NotEmpty(t, first)
	assert.NotEmpty(t, second)
	assert.NotEqual(t, first, second)

	count, err := coll.CountAll(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}

func TestCollection_UpsertByKey_InsertsOncePerKey(t *testing.T) {
	store := New()
	ctx := context.Background()
	coll := store.Collection("users")

	filter := repository.Document{"email": "researcher@example.org"}

	first, err := coll.UpsertByKey(ctx, filter, repository.Document{
		"email": "researcher@example.org",
		"name":  "Dr. Asha Rao",
	})
	require.NoError(t, err)

	// A second upsert with the same key returns the existing record's id and
	// leaves the stored document untouched.
	second, err := coll.UpsertByKey(ctx, filter, repository.Document{
		"email": "researcher@example.org",
		"name":  "Somebody Else",
	})
	require.NoError(t, err)
	assert.Equal(t, first, second)

	count, err := coll.CountAll(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	doc, found, err := coll.FindLatestByField(ctx, "email", true)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Dr. Asha Rao", doc["name"])
}

func TestCollection_UpsertByKey_DifferentKeysInsertSeparately(t *testing.T) {
	store := New()
	ctx := context.Background()
	coll := store.Collection("geofences")

	first, err := coll.UpsertByKey(ctx,
		repository.Document{"name": "Zone A"}, repository.Document{"name": "Zone A"})
	require.NoError(t, err)
	second, err := coll.UpsertByKey(ctx,
		repository.Document{"name": "Zone B"}, repository.Document{"name": "Zone B"})
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	count, err := coll.CountAll(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}

func TestCollection_FindLatestByField_TimeOrdering(t *testing.T) {
	store := New()
	ctx := context.Background()
	coll := store.Collection("telemetry")

	base := time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC)
	for i, age := range []time.Duration{10 * time.Minute, time.Minute, 5 * time.Minute} {
		_, err := coll.InsertOne(ctx, repository.Document{
			"timestamp": base.Add(-age),
			"seq":       i,
		})
		require.NoError(t, err)
	}

	latest, found, err := coll.FindLatestByField(ctx, "timestamp", true)
	require.NoError(t, err)
	require.True(t, found)
	assert.EqualValues(t, 1, latest["seq"])

	earliest, found, err := coll.FindLatestByField(ctx, "timestamp", false)
	require.NoError(t, err)
	require.True(t, found)
	assert.EqualValues(t, 0, earliest["seq"])
}

func TestCollection_FindLatestByField_EmptyCollection(t *testing.T) {
	store := New()

	doc, found, err := store.Collection("telemetry").
		FindLatestByField(context.Background(), "timestamp", true)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, doc)
}

func TestCollection_FindLatestByField_ReturnsCopy(t *testing.T) {
	store := New()
	ctx := context.Background()
	coll := store.Collection("telemetry")

	_, err := coll.InsertOne(ctx, repository.Document{"speed_kmh": 2.5})
	require.NoError(t, err)

	doc, found, err := coll.FindLatestByField(ctx, "speed_kmh", true)
	require.NoError(t, err)
	require.True(t, found)

	doc["speed_kmh"] = 99.0

	again, found, err := coll.FindLatestByField(ctx, "speed_kmh", true)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 2.5, again["speed_kmh"])
}

func TestStore_PingAndClose(t *testing.T) {
	store := New()
	ctx := context.Background()

	assert.NoError(t, store.Ping(ctx))
	assert.NoError(t, store.EnsureIndexes(ctx))
	assert.NoError(t, store.Close(ctx))
}
