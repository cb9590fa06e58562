// Package impl contains the service implementations of the usecase contracts.
package impl

import (
	"context"
	"log/slog"
	"time"

	"wildtrack/internal/domain/repository"
	"wildtrack/internal/infra/metrics"
	"wildtrack/internal/usecase"
)

// sampleDataService implements usecase.SampleDataUsecase. It performs no
// internal parallelism: every storage operation of one invocation runs after
// the previous one completes.
type sampleDataService struct {
	store   repository.Store
	logger  *slog.Logger
	metrics *metrics.SampleMetrics

	// now is swappable in tests to pin the telemetry timestamps.
	now func() time.Time
}

// NewSampleDataService creates the sample-data service. The store handle is
// injected explicitly; the service holds no other state between invocations.
func NewSampleDataService(store repository.Store, logger *slog.Logger, sampleMetrics *metrics.SampleMetrics) usecase.SampleDataUsecase {
	return &sampleDataService{
		store:   store,
		logger:  logger,
		metrics: sampleMetrics,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// SeedAndVerify runs Seed then Verify sequentially and returns both results.
func (s *sampleDataService) SeedAndVerify(ctx context.Context) (*usecase.SeedVerifyResult, error) {
	seed, err := s.Seed(ctx)
	if err != nil {
		return nil, err
	}

	verify, err := s.Verify(ctx)
	if err != nil {
		return nil, err
	}

	return &usecase.SeedVerifyResult{
		Seed:   seed,
		Verify: verify,
	}, nil
}
