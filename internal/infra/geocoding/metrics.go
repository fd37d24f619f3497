// Package geocoding adapts the upstream place provider to the location
// resolution ports: reverse geocoding, nearby search and autocomplete.
package geocoding

import (
	"time"

	"placebook/internal/errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Operation labels
const (
	OperationReverseGeocode = "reverse_geocode"
	OperationSearchNearby   = "search_nearby"
	OperationComplete       = "complete"
	OperationResolve        = "resolve_completion"
)

// Outcome labels
const (
	OutcomeSuccess  = "success"
	OutcomeEmpty    = "empty"
	OutcomeRejected = "rejected" // result too far from the requested point
	OutcomeError    = "error"
)

// Metrics contains the Prometheus metrics recorded at the adapter boundary.
type Metrics struct {
	Requests *prometheus.CounterVec
	Duration *prometheus.HistogramVec
}

// NewMetrics creates the geocoding metrics and registers them on registry.
func NewMetrics(registry prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "placebook",
			Subsystem: "geocoding",
			Name:      "requests_total",
			Help:      "Total number of upstream geocoding requests by operation and outcome",
		}, []string{"operation", "outcome"}),
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "placebook",
			Subsystem: "geocoding",
			Name:      "request_duration_seconds",
			Help:      "Latency of upstream geocoding requests in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 10),
		}, []string{"operation"}),
	}

	for _, c := range []prometheus.Collector{m.Requests, m.Duration} {
		if err := registry.Register(c); err != nil {
			return nil, errors.Wrap(err, "failed to register geocoding metrics")
		}
	}

	return m, nil
}

// Observe records one upstream call. A nil receiver records nothing.
func (m *Metrics) Observe(operation, outcome string, started time.Time) {
	if m == nil {
		return
	}

	m.Requests.WithLabelValues(operation, outcome).Inc()
	m.Duration.WithLabelValues(operation).Observe(time.Since(started).Seconds())
}
