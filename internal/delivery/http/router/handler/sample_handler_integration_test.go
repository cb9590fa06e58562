package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"wildtrack/internal/delivery/http/middleware"
	"wildtrack/internal/infra/metrics"
	"wildtrack/internal/infra/persistence/memory"
	"wildtrack/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestSampleHandler(t *testing.T) (*echo.Echo, *SampleDataHandler) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := impl.NewSampleDataService(
		memory.New(),
		logger,
		metrics.NewWithRegistry(prometheus.NewRegistry()),
	)

	e := echo.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	return e, NewSampleDataHandler(service, logger)
}

func TestSampleDataHandler_Seed_Integration(t *testing.T) {
	e, h := createTestSampleHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/sample/seed", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Seed(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Data    struct {
			UsersID      string   `json:"users_id"`
			TelemetryIDs []string `json:"telemetry_ids"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.True(t, body.Success)
	assert.Equal(t, "Sample data seeded successfully", body.Message)
	assert.NotEmpty(t, body.Data.UsersID)
	assert.Len(t, body.Data.TelemetryIDs, 3)
}

func TestSampleDataHandler_Verify_EmptyStore_Integration(t *testing.T) {
	e, h := createTestSampleHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/sample/verify", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Verify(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			OK     bool             `json:"ok"`
			Counts map[string]int64 `json:"counts"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.True(t, body.Success)
	assert.False(t, body.Data.OK)
	assert.EqualValues(t, 0, body.Data.Counts["users"])
}

func TestSampleDataHandler_SeedAndVerify_Integration(t *testing.T) {
	e, h := createTestSampleHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/sample/seed-verify", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.SeedAndVerify(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Seed struct {
				GeofenceID string `json:"geofence_id"`
			} `json:"seed"`
			Verify struct {
				OK     bool             `json:"ok"`
				Counts map[string]int64 `json:"counts"`
			} `json:"verify"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.True(t, body.Success)
	assert.NotEmpty(t, body.Data.Seed.GeofenceID)
	assert.True(t, body.Data.Verify.OK)
	assert.EqualValues(t, 3, body.Data.Verify.Counts["telemetry"])
}
