package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"wildtrack/config"
	"wildtrack/internal/domain/repository"
	"wildtrack/internal/infra/persistence/memory"
	mockRepo "wildtrack/internal/mocks/repository"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestHealthHandler(t *testing.T, store repository.Store) (*echo.Echo, *HealthHandler) {
	t.Helper()

	cfg := &config.Config{}
	cfg.Env.ServiceName = "wildtrack"
	cfg.Mongo.URI = "mongodb://localhost:27017"
	cfg.Mongo.Database = "wildtrack"

	return echo.New(), NewHealthHandler(cfg, store)
}

func TestHealthHandler_Health(t *testing.T) {
	e, h := createTestHealthHandler(t, memory.New())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.Health(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Healthy")
}

func TestHealthHandler_DBHealth_StoreDown(t *testing.T) {
	store := mockRepo.NewMockStore(t)
	store.EXPECT().Ping(mock.Anything).Return(assert.AnError)

	e, h := createTestHealthHandler(t, store)

	req := httptest.NewRequest(http.MethodGet, "/health/db", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.DBHealth(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "STORE_UNAVAILABLE")
}

func TestHealthHandler_DBHealth_OK(t *testing.T) {
	e, h := createTestHealthHandler(t, memory.New())

	req := httptest.NewRequest(http.MethodGet, "/health/db", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.DBHealth(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data map[string]string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Data["status"])
	assert.Equal(t, "wildtrack", body.Data["db_name"])
}

func TestHealthHandler_Info(t *testing.T) {
	e, h := createTestHealthHandler(t, memory.New())

	req := httptest.NewRequest(http.MethodGet, "/info", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.Info(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data struct {
			Name     string `json:"name"`
			Version  string `json:"version"`
			Database struct {
				Type   string `json:"type"`
				URISet bool   `json:"uri_set"`
			} `json:"database"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "wildtrack", body.Data.Name)
	assert.Equal(t, serviceVersion, body.Data.Version)
	assert.Equal(t, "mongodb", body.Data.Database.Type)
	assert.True(t, body.Data.Database.URISet)
}
