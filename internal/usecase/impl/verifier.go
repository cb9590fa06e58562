package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"wildtrack/internal/domain/repository"
	"wildtrack/internal/usecase"
)

// Verify counts every collection and fetches the most recent telemetry point
// across the whole telemetry collection. Unlike Seed, per-check storage
// errors do not abort the pass: they are recorded in the result and the
// remaining checks still run, so partial results stay useful.
func (s *sampleDataService) Verify(ctx context.Context) (*usecase.VerifyResult, error) {
	started := time.Now()

	result := &usecase.VerifyResult{
		Counts: make(map[string]int64, len(repository.CollectionNames())),
	}

	for _, name := range repository.CollectionNames() {
		count, err := s.store.Collection(name).CountAll(ctx)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("count %s: %v", name, err))

			continue
		}
		result.Counts[name] = count
		s.logger.Info("Verified collection count",
			slog.String("collection", name), slog.Int64("count", count))
	}

	latest, found, err := s.store.Collection(repository.CollectionTelemetry).
		FindLatestByField(ctx, "timestamp", true)
	switch {
	case err != nil:
		result.Errors = append(result.Errors, fmt.Sprintf("latest telemetry: %v", err))
	case found:
		result.LatestTelemetry = latest
	}

	result.OK = s.verdict(result, found)
	s.metrics.Observe("verify", started, nil)

	return result, nil
}

// verdict is true iff every collection counted at least one record, the
// latest-telemetry lookup returned a record, and no errors were recorded.
func (s *sampleDataService) verdict(result *usecase.VerifyResult, latestFound bool) bool {
	if len(result.Errors) > 0 || !latestFound {
		return false
	}

	for _, name := range repository.CollectionNames() {
		if result.Counts[name] < 1 {
			return false
		}
	}

	return true
}
