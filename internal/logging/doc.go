// Package logging provides structured logging using uber/zap.
//
// Two modes:
//   - Production: JSON output for machine parsing
//   - Development: Colored console output for human readability
//
// Both write to stderr by default.
//
// Example Usage:
//
//	logger := logging.NewDefault()
//	logger.Info("tool executed", zap.String("tool", "math.factorial"))
//	logger.Warn("argument rejected", zap.Error(err))
package logging
