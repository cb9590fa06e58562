// Package metrics exposes Prometheus instrumentation for the sample-data
// operations.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SampleMetrics counts seed/verify runs and measures their duration.
type SampleMetrics struct {
	runsTotal *prometheus.CounterVec
	duration  *prometheus.HistogramVec
}

// New registers the metrics on the default registry.
func New() *SampleMetrics {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

// NewWithRegistry registers the metrics on reg. Tests pass a fresh registry
// to avoid duplicate registration.
func NewWithRegistry(reg prometheus.Registerer) *SampleMetrics {
	m := &SampleMetrics{
		runsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wildtrack_sample_runs_total",
				Help: "Total number of sample-data operations by outcome.",
			},
			[]string{"operation", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "wildtrack_sample_duration_seconds",
				Help:    "Sample-data operation latencies in seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}

	reg.MustRegister(m.runsTotal, m.duration)

	return m
}

// Observe records one finished operation.
func (m *SampleMetrics) Observe(operation string, start time.Time, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}

	m.runsTotal.WithLabelValues(operation, outcome).Inc()
	m.duration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

// Handler serves the Prometheus scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
