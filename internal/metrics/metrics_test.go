package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveLoad(42, 10*time.Millisecond)
	assert.Equal(t, 42.0, testutil.ToFloat64(m.DatasetRecords))

	m.IncSelection("ok")
	m.IncSelection("empty")
	m.IncSelection("lookup_error")
	m.IncSelection("ok")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Selections.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EmptySelections))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.LookupFailures))

	m.ObserveStage("aggregate", time.Millisecond)
	assert.Equal(t, 1, testutil.CollectAndCount(m.StageDuration))
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveLoad(1, time.Second)
		m.ObserveStage("filter", time.Second)
		m.IncSelection("ok")
	})
}
