package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/GriffinCanCode/mathkit/internal/config"
	"github.com/GriffinCanCode/mathkit/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/mathkit/internal/logging"
	mathprovider "github.com/GriffinCanCode/mathkit/internal/providers/math"
	"github.com/GriffinCanCode/mathkit/internal/providers/math/utilities"
	"github.com/bytedance/sonic"
	"github.com/goccy/go-yaml"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("mathctl", flag.ContinueOnError)
	flags.SetOutput(stderr)
	list := flags.Bool("list", false, "Print the tool catalogue and exit")
	paramsFile := flags.String("f", "", "Read tool parameters from a YAML or JSON file")
	dev := flags.Bool("dev", false, "Development mode (colored logs, debug level)")
	stats := flags.Bool("stats", false, "Print call metrics to stderr after the call")
	flags.Usage = func() {
		fmt.Fprintln(stderr, "usage: mathctl [-dev] [-stats] -list")
		fmt.Fprintln(stderr, "       mathctl [-dev] [-stats] <tool> ['<json params>']")
		fmt.Fprintln(stderr, "       mathctl [-dev] [-stats] -f params.yaml <tool>")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return 2
	}

	cfg := config.LoadOrDefault()

	var logger *logging.Logger
	if *dev {
		logger = logging.NewDevelopment()
	} else {
		var err error
		logger, err = logging.New(logging.Config{
			Level:       cfg.Logging.Level,
			Development: cfg.Logging.Development,
			OutputPaths: []string{"stderr"},
		})
		if err != nil {
			fmt.Fprintf(stderr, "invalid log configuration: %v\n", err)
			return 2
		}
	}
	defer func() { _ = logger.Sync() }()

	var metrics *monitoring.Metrics
	if cfg.Metrics.Enabled {
		metrics = monitoring.NewMetrics(cfg.Metrics.Namespace, prometheus.NewRegistry())
	}

	opts := mathprovider.Options{Logger: logger, Metrics: metrics}
	if cfg.Random.Seed != 0 {
		opts.Random = utilities.NewSeededGenerator(cfg.Random.Seed)
		logger.Debug("Using fixed random seed", zap.Uint64("seed", cfg.Random.Seed))
	}
	provider := mathprovider.New(opts)

	if *list {
		return writeJSON(stdout, stderr, provider.Definition())
	}

	rest := flags.Args()
	if len(rest) == 0 {
		flags.Usage()
		return 2
	}
	toolID := rest[0]

	params, err := loadParams(*paramsFile, rest[1:])
	if err != nil {
		fmt.Fprintf(stderr, "mathctl: %v\n", err)
		return 2
	}

	result, err := provider.Execute(context.Background(), toolID, params, nil)
	if err != nil {
		fmt.Fprintf(stderr, "mathctl: %v\n", err)
		return 1
	}

	if *stats && metrics != nil {
		snap := metrics.Snapshot()
		fmt.Fprintf(stderr, "calls=%d failures=%d avg=%.6fs\n",
			snap.TotalCalls, snap.TotalFailures, metrics.AverageDuration())
	}

	if result.Data != nil {
		result.Data = finiteData(result.Data)
	}
	if code := writeJSON(stdout, stderr, result); code != 0 {
		return code
	}
	if !result.Success {
		return 1
	}
	return 0
}

// loadParams reads parameters from a file, an inline JSON argument, or neither.
func loadParams(path string, inline []string) (map[string]interface{}, error) {
	params := map[string]interface{}{}

	switch {
	case path != "" && len(inline) > 0:
		return nil, fmt.Errorf("parameters given both inline and with -f")
	case path != "":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read params: %w", err)
		}
		// YAML is a superset of JSON, so one decoder covers both file kinds
		if err := yaml.Unmarshal(data, &params); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case len(inline) == 1:
		if err := sonic.UnmarshalString(inline[0], &params); err != nil {
			return nil, fmt.Errorf("parse params: %w", err)
		}
	case len(inline) > 1:
		return nil, fmt.Errorf("expected a single JSON object, got %d arguments", len(inline))
	}

	if params == nil {
		params = map[string]interface{}{}
	}
	return params, nil
}

func writeJSON(stdout, stderr io.Writer, v interface{}) int {
	out, err := sonic.ConfigStd.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(stderr, "mathctl: encode output: %v\n", err)
		return 1
	}
	fmt.Fprintln(stdout, string(out))
	return 0
}

// finiteData replaces NaN and ±Inf, which JSON cannot carry, with the strings
// "NaN", "Infinity" and "-Infinity".
func finiteData(data map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(data))
	for k, v := range data {
		out[k] = finiteValue(v)
	}
	return out
}

func finiteValue(v interface{}) interface{} {
	switch x := v.(type) {
	case float64:
		return finiteFloat(x)
	case []float64:
		if !hasNonFinite(x) {
			return x
		}
		values := make([]interface{}, len(x))
		for i, f := range x {
			values[i] = finiteFloat(f)
		}
		return values
	case []interface{}:
		values := make([]interface{}, len(x))
		for i, e := range x {
			values[i] = finiteValue(e)
		}
		return values
	case map[string]interface{}:
		return finiteData(x)
	default:
		return v
	}
}

func finiteFloat(f float64) interface{} {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	default:
		return f
	}
}

func hasNonFinite(values []float64) bool {
	for _, f := range values {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return true
		}
	}
	return false
}
