// Package performance provides lightweight operation timing for
// request handlers.
package performance

import (
	"sync"
	"time"
)

// Tracker records operation markers and aggregates simple counters
type Tracker struct {
	mu         sync.Mutex
	operations map[string]*OperationStats
	started    time.Time
}

// OperationStats aggregates outcomes per operation name
type OperationStats struct {
	Count         int64         `json:"count"`
	Failures      int64         `json:"failures"`
	TotalDuration time.Duration `json:"totalDuration"`
	MaxDuration   time.Duration `json:"maxDuration"`
}

// Marker tracks a single in-flight operation
type Marker struct {
	Operation string
	StartTime time.Time
	Duration  time.Duration
	Success   bool

	tracker   *Tracker
	completed bool
}

// NewTracker creates a new performance tracker
func NewTracker() *Tracker {
	return &Tracker{
		operations: make(map[string]*OperationStats),
		started:    time.Now(),
	}
}

// StartOperation creates and tracks a new performance marker for an operation
func (t *Tracker) StartOperation(operation string) *Marker {
	return &Marker{
		Operation: operation,
		StartTime: time.Now(),
		Success:   true, // Assume success until proven otherwise
		tracker:   t,
	}
}

// SetSuccess records whether the operation succeeded
func (m *Marker) SetSuccess(success bool) {
	m.Success = success
}

// Complete finalizes the marker and folds it into the tracker stats.
// Safe to call once; later calls are ignored.
func (m *Marker) Complete() {
	if m.completed {
		return
	}
	m.completed = true
	m.Duration = time.Since(m.StartTime)

	t := m.tracker
	t.mu.Lock()
	defer t.mu.Unlock()

	stats, ok := t.operations[m.Operation]
	if !ok {
		stats = &OperationStats{}
		t.operations[m.Operation] = stats
	}
	stats.Count++
	if !m.Success {
		stats.Failures++
	}
	stats.TotalDuration += m.Duration
	if m.Duration > stats.MaxDuration {
		stats.MaxDuration = m.Duration
	}
}

// Stats returns a copy of the aggregated operation stats
func (t *Tracker) Stats() map[string]OperationStats {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make(map[string]OperationStats, len(t.operations))
	for op, stats := range t.operations {
		out[op] = *stats
	}
	return out
}

// Uptime reports how long the tracker has been running
func (t *Tracker) Uptime() time.Duration {
	return time.Since(t.started)
}
