package monitoring

import (
	"time"

	"github.com/GriffinCanCode/AgentOS/compiler/internal/shared/types"
)

// Timer measures one package compilation
type Timer struct {
	start   time.Time
	metrics *Metrics
	kind    string
}

// NewTimer creates a new timer
func NewTimer(metrics *Metrics, kind string) *Timer {
	return &Timer{
		start:   time.Now(),
		metrics: metrics,
		kind:    kind,
	}
}

// Stop stops the timer and records the package outcome.
// A nil metrics collector makes Stop a no-op.
func (t *Timer) Stop(result types.Result) time.Duration {
	duration := time.Since(t.start)
	if t.metrics != nil {
		t.metrics.RecordPackage(t.kind, result, duration)
	}
	return duration
}
