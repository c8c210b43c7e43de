// Package monitoring provides Prometheus metrics for math tool calls.
//
// Metrics:
//   - <namespace>_tool_calls_total{tool,status}
//   - <namespace>_tool_duration_seconds{tool}
//   - <namespace>_tool_errors_total{tool,error_type}
//
// Example Usage:
//
//	metrics := monitoring.NewMetrics("mathkit", prometheus.NewRegistry())
//	timer := monitoring.NewTimer(metrics, "math.factorial")
//	// ... perform operation ...
//	timer.Stop(monitoring.StatusSuccess)
package monitoring
