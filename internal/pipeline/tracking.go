package pipeline

import (
	"time"

	"go-trade-dashboard/internal/logging"
	"go-trade-dashboard/internal/metrics"
	"go-trade-dashboard/internal/model"
)

// RunTracker times the stages of one selection run
type RunTracker struct {
	selection model.Selection
	start     time.Time
	stages    []model.StageMetrics
	metrics   *metrics.Metrics
	log       logging.Logger
}

func newRunTracker(sel model.Selection, m *metrics.Metrics, log logging.Logger) *RunTracker {
	return &RunTracker{
		selection: sel,
		start:     time.Now(),
		metrics:   m,
		log:       log,
	}
}

// Track runs fn as the named stage. fn reports how many records it handled.
func (t *RunTracker) Track(stage string, fn func() (int, error)) error {
	start := time.Now()
	n, err := fn()
	d := time.Since(start)

	status := "completed"
	if err != nil {
		status = "failed"
	}
	t.stages = append(t.stages, model.StageMetrics{
		Stage:            stage,
		Duration:         d,
		RecordsProcessed: n,
		Status:           status,
	})
	t.metrics.ObserveStage(stage, d)
	t.log.Debug("stage finished",
		logging.String("stage", stage),
		logging.String("status", status),
		logging.Int("records", n),
		logging.Duration("duration", d),
	)
	return err
}

// Stages returns the stages tracked so far
func (t *RunTracker) Stages() []model.StageMetrics {
	return t.stages
}

// Finish records the run outcome
func (t *RunTracker) Finish(outcome string) {
	t.metrics.IncSelection(outcome)
	t.log.Debug("selection run finished",
		logging.String("outcome", outcome),
		logging.Int("stages", len(t.stages)),
		logging.Duration("duration", time.Since(t.start)),
	)
}
