package geocoding

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Observe(t *testing.T) {
	registry := prometheus.NewRegistry()
	m, err := NewMetrics(registry)
	require.NoError(t, err)

	started := time.Now()
	m.Observe(OperationSearchNearby, OutcomeSuccess, started)
	m.Observe(OperationSearchNearby, OutcomeRejected, started)
	m.Observe(OperationSearchNearby, OutcomeRejected, started)

	assert.InDelta(t, 1, testutil.ToFloat64(m.Requests.WithLabelValues(OperationSearchNearby, OutcomeSuccess)), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(m.Requests.WithLabelValues(OperationSearchNearby, OutcomeRejected)), 0)
	assert.Equal(t, 1, testutil.CollectAndCount(m.Duration))
}

func TestMetrics_RegisterTwiceFails(t *testing.T) {
	registry := prometheus.NewRegistry()

	_, err := NewMetrics(registry)
	require.NoError(t, err)

	_, err = NewMetrics(registry)
	assert.Error(t, err)
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.Observe(OperationComplete, OutcomeError, time.Now())
	})
}
