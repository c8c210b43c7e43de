// Package main is the entry point for mathctl, a command that runs a single
// math tool call and prints the result.
//
// Usage:
//
//	# List every tool with its parameters
//	mathctl -list
//
//	# Inline JSON parameters
//	mathctl math.factorial '{"n": 5}'
//
//	# Parameters from a YAML (or JSON) file
//	mathctl -f params.yaml math.quadratic
//
//	# Development mode (colored logs, debug level)
//	mathctl -dev math.stdev '{"numbers": [1, 2, 3, 4]}'
//
// Configuration:
//   - LOG_LEVEL, LOG_DEV: logger level and encoder
//   - RANDOM_SEED: fixed seed for math.randomInt (0 uses runtime entropy)
//   - METRICS_ENABLED, METRICS_NAMESPACE: per-call Prometheus collectors
//
// Exit codes: 0 on success, 1 when the call is rejected, 2 on usage errors.
package main
