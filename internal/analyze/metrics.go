package analyze

import (
	"sync"
	"time"
)

// RunMetrics tracks cumulative analysis run statistics. Watch mode logs a
// snapshot of these after each rebuild cycle.
type RunMetrics struct {
	TotalRuns       int64
	SuccessfulRuns  int64
	FailedRuns      int64
	TotalDuration   time.Duration
	AverageDuration time.Duration
	mutex           sync.RWMutex
}

// NewRunMetrics creates a new run metrics tracker
func NewRunMetrics() *RunMetrics {
	return &RunMetrics{}
}

// RecordRun records one completed (or failed) run in the metrics
func (rm *RunMetrics) RecordRun(duration time.Duration, err error) {
	rm.mutex.Lock()
	defer rm.mutex.Unlock()

	rm.TotalRuns++
	rm.TotalDuration += duration

	if err != nil {
		rm.FailedRuns++
	} else {
		rm.SuccessfulRuns++
	}

	if rm.TotalRuns > 0 {
		rm.AverageDuration = rm.TotalDuration / time.Duration(rm.TotalRuns)
	}
}

// GetSnapshot returns a snapshot of current metrics
func (rm *RunMetrics) GetSnapshot() RunMetrics {
	rm.mutex.RLock()
	defer rm.mutex.RUnlock()
	// Return a copy without the mutex to avoid lock copying issues
	return RunMetrics{
		TotalRuns:       rm.TotalRuns,
		SuccessfulRuns:  rm.SuccessfulRuns,
		FailedRuns:      rm.FailedRuns,
		TotalDuration:   rm.TotalDuration,
		AverageDuration: rm.AverageDuration,
	}
}

// Reset resets all metrics
func (rm *RunMetrics) Reset() {
	rm.mutex.Lock()
	defer rm.mutex.Unlock()

	rm.TotalRuns = 0
	rm.SuccessfulRuns = 0
	rm.FailedRuns = 0
	rm.TotalDuration = 0
	rm.AverageDuration = 0
}

// GetSuccessRate returns the success rate as a percentage
func (rm *RunMetrics) GetSuccessRate() float64 {
	rm.mutex.RLock()
	defer rm.mutex.RUnlock()

	if rm.TotalRuns == 0 {
		return 0.0
	}

	return float64(rm.SuccessfulRuns) / float64(rm.TotalRuns) * 100.0
}
