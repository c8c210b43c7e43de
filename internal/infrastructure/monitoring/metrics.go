package monitoring

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Call outcomes used as the status label
const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Tool metrics
	ToolCalls    *prometheus.CounterVec
	ToolDuration *prometheus.HistogramVec
	ToolErrors   *prometheus.CounterVec

	// Snapshot for quick inspection - track current values
	snapshot MetricsSnapshot

	mu sync.RWMutex
}

// MetricsSnapshot holds current metric values
type MetricsSnapshot struct {
	TotalCalls    int64
	TotalFailures int64
	TotalDuration float64 // sum of all call durations in seconds
}

// NewMetrics creates a metrics collector registered on reg.
// A nil reg registers on the default Prometheus registry.
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		ToolCalls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "tool_calls_total",
				Help:      "Total number of math tool calls",
			},
			[]string{"tool", "status"},
		),
		ToolDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "tool_duration_seconds",
				Help:      "Math tool call duration in seconds",
				Buckets:   []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05, .1},
			},
			[]string{"tool"},
		),
		ToolErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "tool_errors_total",
				Help:      "Total number of rejected math tool calls",
			},
			[]string{"tool", "error_type"},
		),
	}
}

// RecordCall records one completed tool call
func (m *Metrics) RecordCall(tool, status string, duration time.Duration) {
	m.ToolCalls.WithLabelValues(tool, status).Inc()
	m.ToolDuration.WithLabelValues(tool).Observe(duration.Seconds())

	m.mu.Lock()
	m.snapshot.TotalCalls++
	if status == StatusFailure {
		m.snapshot.TotalFailures++
	}
	m.snapshot.TotalDuration += duration.Seconds()
	m.mu.Unlock()
}

// RecordError records why a call was rejected
func (m *Metrics) RecordError(tool, errorType string) {
	m.ToolErrors.WithLabelValues(tool, errorType).Inc()
}

// Snapshot returns a copy of the running totals
func (m *Metrics) Snapshot() MetricsSnapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snapshot
}

// AverageDuration returns the mean call duration in seconds
func (m *Metrics) AverageDuration() float64 {
	snap := m.Snapshot()
	if snap.TotalCalls == 0 {
		return 0
	}
	return snap.TotalDuration / float64(snap.TotalCalls)
}
