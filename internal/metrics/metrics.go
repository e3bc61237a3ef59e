package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the dashboard
type Metrics struct {
	DatasetRecords  prometheus.Gauge
	DatasetLoadTime prometheus.Histogram
	Selections      *prometheus.CounterVec
	StageDuration   *prometheus.HistogramVec
	EmptySelections prometheus.Counter
	LookupFailures  prometheus.Counter
}

// New creates the collectors and registers them with reg
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		DatasetRecords: f.NewGauge(prometheus.GaugeOpts{
			Name: "trade_dashboard_dataset_records",
			Help: "Number of trade records loaded into the dataset store",
		}),
		DatasetLoadTime: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "trade_dashboard_dataset_load_seconds",
			Help:    "Time spent loading the trade dataset",
			Buckets: prometheus.DefBuckets,
		}),
		Selections: f.NewCounterVec(prometheus.CounterOpts{
			Name: "trade_dashboard_selections_total",
			Help: "Dashboard selection runs by outcome",
		}, []string{"outcome"}),
		StageDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "trade_dashboard_stage_duration_seconds",
			Help:    "Duration of each pipeline stage per selection",
			Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5},
		}, []string{"stage"}),
		EmptySelections: f.NewCounter(prometheus.CounterOpts{
			Name: "trade_dashboard_empty_selections_total",
			Help: "Selections that matched no trade records",
		}),
		LookupFailures: f.NewCounter(prometheus.CounterOpts{
			Name: "trade_dashboard_lookup_failures_total",
			Help: "Selections that failed on an unknown country code",
		}),
	}
}

// ObserveLoad records a completed dataset load
func (m *Metrics) ObserveLoad(records int, d time.Duration) {
	if m == nil {
		return
	}
	m.DatasetRecords.Set(float64(records))
	m.DatasetLoadTime.Observe(d.Seconds())
}

// ObserveStage records the duration of one pipeline stage
func (m *Metrics) ObserveStage(stage string, d time.Duration) {
	if m == nil {
		return
	}
	m.StageDuration.WithLabelValues(stage).Observe(d.Seconds())
}

// IncSelection counts a selection run by outcome ("ok", "empty", "lookup_error", "error")
func (m *Metrics) IncSelection(outcome string) {
	if m == nil {
		return
	}
	m.Selections.WithLabelValues(outcome).Inc()
	switch outcome {
	case "empty":
		m.EmptySelections.Inc()
	case "lookup_error":
		m.LookupFailures.Inc()
	}
}
