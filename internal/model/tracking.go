package model

import "time"

// StageMetrics records how long one pipeline stage took for a selection
type StageMetrics struct {
	Stage            string        `json:"stage"`
	Duration         time.Duration `json:"duration"`
	RecordsProcessed int           `json:"records_processed"`
	Status           string        `json:"status"` // "completed", "failed"
}
