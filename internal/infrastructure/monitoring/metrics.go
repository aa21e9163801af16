package monitoring

import (
	"sync"
	"time"

	"github.com/GriffinCanCode/AgentOS/compiler/internal/shared/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Signal resolution paths
const (
	PathCanned  = "canned"
	PathChooser = "chooser"
	PathGeneric = "generic"
)

// Metrics holds all Prometheus metrics of one compiler run
type Metrics struct {
	registry *prometheus.Registry

	// Package metrics
	PackagesTotal   *prometheus.CounterVec
	PackageDuration *prometheus.HistogramVec

	// Artifact metrics
	ArtifactsWritten *prometheus.CounterVec
	ArtifactBytes    *prometheus.CounterVec

	// Generator metrics
	WindowsGenerated prometheus.Counter
	SignalsResolved  *prometheus.CounterVec

	// Snapshot for the build summary - track current values
	snapshot MetricsSnapshot

	mu sync.RWMutex
}

// MetricsSnapshot holds current metric values for the run summary
type MetricsSnapshot struct {
	Packages      int64
	Failures      int64
	Skipped       int64
	Artifacts     int64
	Windows       int64
	TotalDuration float64 // sum of all package durations
}

// NewMetrics creates a metrics collector backed by its own registry
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	m := &Metrics{
		registry: reg,

		// Package metrics
		PackagesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "compiler_packages_total",
				Help: "Total number of packages processed",
			},
			[]string{"kind", "result"},
		),
		PackageDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "compiler_package_duration_seconds",
				Help:    "Package compilation duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
			},
			[]string{"kind"},
		),

		// Artifact metrics
		ArtifactsWritten: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "compiler_artifacts_written_total",
				Help: "Total number of artifacts written to the build tree",
			},
			[]string{"kind"},
		),
		ArtifactBytes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "compiler_artifact_bytes_total",
				Help: "Total number of artifact bytes written",
			},
			[]string{"kind"},
		),

		// Generator metrics
		WindowsGenerated: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "compiler_windows_generated_total",
				Help: "Total number of windows generated",
			},
		),
		SignalsResolved: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "compiler_signals_resolved_total",
				Help: "Total number of widget signals resolved, by resolution path",
			},
			[]string{"path"},
		),
	}

	return m
}

// RecordPackage records one package outcome
func (m *Metrics) RecordPackage(kind string, result types.Result, duration time.Duration) {
	m.PackagesTotal.WithLabelValues(kind, string(result)).Inc()
	m.PackageDuration.WithLabelValues(kind).Observe(duration.Seconds())

	// Update snapshot
	m.mu.Lock()
	m.snapshot.Packages++
	m.snapshot.TotalDuration += duration.Seconds()
	switch result {
	case types.ResultFailure:
		m.snapshot.Failures++
	case types.ResultSkippedDisabled:
		m.snapshot.Skipped++
	}
	m.mu.Unlock()
}

// RecordArtifact records one artifact persisted to disk
func (m *Metrics) RecordArtifact(kind string, size int) {
	m.ArtifactsWritten.WithLabelValues(kind).Inc()
	m.ArtifactBytes.WithLabelValues(kind).Add(float64(size))

	m.mu.Lock()
	m.snapshot.Artifacts++
	m.mu.Unlock()
}

// IncWindows increments the generated windows counter
func (m *Metrics) IncWindows() {
	m.WindowsGenerated.Inc()

	m.mu.Lock()
	m.snapshot.Windows++
	m.mu.Unlock()
}

// RecordSignal records one resolved signal by its resolution path
func (m *Metrics) RecordSignal(path string) {
	m.SignalsResolved.WithLabelValues(path).Inc()
}

// Snapshot returns the current summary values
func (m *Metrics) Snapshot() MetricsSnapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snapshot
}
