package math

import (
	"context"
	"errors"
	"fmt"

	"github.com/GriffinCanCode/mathkit/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/mathkit/internal/logging"
	"github.com/GriffinCanCode/mathkit/internal/providers/math/common"
	"github.com/GriffinCanCode/mathkit/internal/providers/math/geometry"
	"github.com/GriffinCanCode/mathkit/internal/providers/math/operations"
	"github.com/GriffinCanCode/mathkit/internal/providers/math/statistics"
	"github.com/GriffinCanCode/mathkit/internal/providers/math/utilities"
	"github.com/GriffinCanCode/mathkit/internal/shared/id"
	"github.com/GriffinCanCode/mathkit/internal/shared/types"
	"go.uber.org/zap"
)

// Error types recorded on rejected calls
const (
	errorUnknownTool     = "unknown_tool"
	errorInvalidArgument = "invalid_argument"
	errorInternal        = "internal"
)

// ErrUnknownTool is returned for tool IDs the provider does not serve
var ErrUnknownTool = errors.New("unknown tool")

// Options wires optional infrastructure into the provider
type Options struct {
	Logger  *logging.Logger
	Metrics *monitoring.Metrics
	Random  *utilities.Generator
}

// Provider implements mathematical operations
type Provider struct {
	// Module instances
	arithmetic   *operations.ArithmeticOps
	numberTheory *operations.NumberTheoryOps
	stats        *statistics.StatsOps
	geometry     *geometry.GeometryOps
	random       *utilities.RandomOps

	logger  *logging.Logger
	metrics *monitoring.Metrics
}

// NewProvider creates a math provider with no logging or metrics
func NewProvider() *Provider {
	return New(Options{})
}

// New creates a math provider with the given infrastructure
func New(opts Options) *Provider {
	ops := &common.MathOps{}

	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	random := opts.Random
	if random == nil {
		random = utilities.Default()
	}

	return &Provider{
		arithmetic:   &operations.ArithmeticOps{MathOps: ops},
		numberTheory: &operations.NumberTheoryOps{MathOps: ops},
		stats:        &statistics.StatsOps{MathOps: ops},
		geometry:     &geometry.GeometryOps{MathOps: ops},
		random:       &utilities.RandomOps{MathOps: ops, Generator: random},
		logger:       logger.Named("math"),
		metrics:      opts.Metrics,
	}
}

// Definition returns service metadata with all module tools
func (m *Provider) Definition() types.Service {
	// Collect tools from all modules
	tools := []types.Tool{}
	tools = append(tools, m.numberTheory.GetTools()...)
	tools = append(tools, m.arithmetic.GetTools()...)
	tools = append(tools, m.stats.GetTools()...)
	tools = append(tools, m.geometry.GetTools()...)
	tools = append(tools, m.random.GetTools()...)

	return types.Service{
		ID:          "math",
		Name:        "Math Service",
		Description: "Math utilities (number theory, statistics, geometry, combinatorics)",
		Category:    types.CategoryMath,
		Capabilities: []string{
			"number_theory",
			"arithmetic",
			"statistics",
			"geometry",
			"combinatorics",
			"random",
		},
		Tools: tools,
	}
}

// Execute routes a tool call to its module. Argument problems come back as a
// failed Result; the returned error is reserved for a cancelled context.
func (m *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("execute %s: %w", toolID, err)
	}
	if params == nil {
		params = map[string]interface{}{}
	}

	callID := id.NewCallID()
	timer := monitoring.NewTimer(m.metrics, toolID)

	result, err := m.dispatch(ctx, toolID, params, appCtx)
	if err == nil && result.Success {
		elapsed := timer.Stop(monitoring.StatusSuccess)
		m.logger.Debug("Tool executed",
			zap.String("tool", toolID),
			zap.String("call_id", callID.String()),
			zap.Duration("elapsed", elapsed))
		return result, nil
	}

	timer.Stop(monitoring.StatusFailure)
	errorType := classify(err)
	if m.metrics != nil {
		m.metrics.RecordError(toolID, errorType)
	}
	m.logger.Warn("Tool call rejected",
		zap.String("tool", toolID),
		zap.String("call_id", callID.String()),
		zap.String("error_type", errorType),
		zap.Error(err))

	if result == nil && err != nil {
		result, _ = common.FromError(err)
	}
	return result, nil
}

func (m *Provider) dispatch(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	switch toolID {
	// Number theory
	case "math.factorial":
		return m.numberTheory.Factorial(ctx, params, appCtx)
	case "math.isPrime":
		return m.numberTheory.IsPrime(ctx, params, appCtx)
	case "math.gcd":
		return m.numberTheory.GCD(ctx, params, appCtx)
	case "math.lcm":
		return m.numberTheory.LCM(ctx, params, appCtx)
	case "math.fibonacci":
		return m.numberTheory.Fibonacci(ctx, params, appCtx)

	// Combinatorics
	case "math.permutation":
		return m.numberTheory.Permutation(ctx, params, appCtx)
	case "math.combination":
		return m.numberTheory.Combination(ctx, params, appCtx)

	// Arithmetic
	case "math.power":
		return m.arithmetic.Power(ctx, params, appCtx)
	case "math.nthRoot":
		return m.arithmetic.NthRoot(ctx, params, appCtx)
	case "math.logBase":
		return m.arithmetic.LogBase(ctx, params, appCtx)
	case "math.clamp":
		return m.arithmetic.Clamp(ctx, params, appCtx)

	// Statistics
	case "math.sum":
		return m.stats.Sum(ctx, params, appCtx)
	case "math.average":
		return m.stats.Average(ctx, params, appCtx)
	case "math.stdev":
		return m.stats.Stdev(ctx, params, appCtx)
	case "math.median":
		return m.stats.Median(ctx, params, appCtx)
	case "math.mode":
		return m.stats.Mode(ctx, params, appCtx)
	case "math.geometricMean":
		return m.stats.GeometricMean(ctx, params, appCtx)
	case "math.harmonicMean":
		return m.stats.HarmonicMean(ctx, params, appCtx)

	// Geometry
	case "math.pythagorean":
		return m.geometry.Pythagorean(ctx, params, appCtx)
	case "math.distance":
		return m.geometry.Distance(ctx, params, appCtx)
	case "math.radians":
		return m.geometry.DegreesToRadians(ctx, params, appCtx)
	case "math.degrees":
		return m.geometry.RadiansToDegrees(ctx, params, appCtx)
	case "math.quadratic":
		return m.geometry.Quadratic(ctx, params, appCtx)

	// Random
	case "math.randomInt":
		return m.random.RandomInt(ctx, params, appCtx)

	default:
		return common.FromError(fmt.Errorf("%w: %s", ErrUnknownTool, toolID))
	}
}

func classify(err error) string {
	switch {
	case errors.Is(err, ErrUnknownTool):
		return errorUnknownTool
	case common.IsInvalidArgument(err):
		return errorInvalidArgument
	default:
		return errorInternal
	}
}
