// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"wildtrack/internal/delivery/http/response"
	"wildtrack/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SampleDataHandler holds dependencies for the seed/verify endpoints.
type SampleDataHandler struct {
	uc     usecase.SampleDataUsecase
	logger *slog.Logger
}

// NewSampleDataHandler is the constructor for SampleDataHandler, injected by Fx.
func NewSampleDataHandler(uc usecase.SampleDataUsecase, logger *slog.Logger) *SampleDataHandler {
	return &SampleDataHandler{
		uc:     uc,
		logger: logger,
	}
}

// Seed inserts one realistic sample document per collection and returns the
// resulting ids.
func (h *SampleDataHandler) Seed(c echo.Context) error {
	output, err := h.uc.Seed(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Sample data seeded successfully")
}

// Verify reports per-collection counts, the latest telemetry point and an
// overall verdict.
func (h *SampleDataHandler) Verify(c echo.Context) error {
	output, err := h.uc.Verify(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Sample data verified")
}

// SeedAndVerify runs the seed and the verification in sequence.
func (h *SampleDataHandler) SeedAndVerify(c echo.Context) error {
	output, err := h.uc.SeedAndVerify(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Sample data seeded and verified")
}
