// Package config provides 12-factor configuration management for mathkit.
//
// Configuration is loaded from environment variables with sensible defaults.
//
// Configuration Sections:
//   - Logging: Log level and output format
//   - Random: Optional fixed seed for randomInt
//   - Metrics: Prometheus collector registration
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	fmt.Printf("log level %s\n", cfg.Logging.Level)
//
// Environment Variables:
//   - LOG_LEVEL, LOG_DEV
//   - RANDOM_SEED
//   - METRICS_ENABLED, METRICS_NAMESPACE
package config
