package handler

import (
	"net/http"

	"wildtrack/config"
	"wildtrack/internal/delivery/http/response"
	"wildtrack/internal/domain/repository"

	"github.com/labstack/echo/v4"
)

const serviceVersion = "0.1.0"

// HealthHandler serves the health and info passthrough endpoints.
type HealthHandler struct {
	cfg   *config.Config
	store repository.Store
}

// NewHealthHandler is the constructor for HealthHandler, injected by Fx.
func NewHealthHandler(cfg *config.Config, store repository.Store) *HealthHandler {
	return &HealthHandler{
		cfg:   cfg,
		store: store,
	}
}

// Health is the basic service liveness check.
func (h *HealthHandler) Health(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"message": "Healthy"}, "Healthy")
}

// DBHealth checks store connectivity and returns the configured database name.
func (h *HealthHandler) DBHealth(c echo.Context) error {
	if err := h.store.Ping(c.Request().Context()); err != nil {
		return response.ServiceUnavailable(c, "STORE_UNAVAILABLE", "document store is unavailable")
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"status":  "ok",
		"db_name": h.cfg.Mongo.Database,
	}, "Database healthy")
}

// Info returns non-sensitive service information for diagnostics.
func (h *HealthHandler) Info(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"name":    h.cfg.Env.ServiceName,
		"version": serviceVersion,
		"database": map[string]any{
			"type":    "mongodb",
			"db_name": h.cfg.Mongo.Database,
			"uri_set": h.cfg.Mongo.URI != "",
		},
	}, "Service info")
}
