package math

import (
	"context"
	"errors"
	"fmt"
	gomath "math"
	"testing"

	"github.com/GriffinCanCode/mathkit/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/mathkit/internal/logging"
	"github.com/GriffinCanCode/mathkit/internal/providers/math/common"
	"github.com/GriffinCanCode/mathkit/internal/providers/math/utilities"
	"github.com/GriffinCanCode/mathkit/internal/shared/types"
	"github.com/GriffinCanCode/mathkit/internal/testutil"
	"github.com/prometheus/client_golang/prometheus"
	prom "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestMathProvider(t *testing.T) {
	mathProvider := NewProvider()
	ctx := context.Background()

	execute := func(t *testing.T, toolID string, params map[string]interface{}) *types.Result {
		t.Helper()
		result, err := mathProvider.Execute(ctx, toolID, params, nil)
		require.NoError(t, err)
		return result
	}

	t.Run("Number Theory", func(t *testing.T) {
		t.Run("Factorial", func(t *testing.T) {
			result := execute(t, "math.factorial", map[string]interface{}{"n": 5.0})
			testutil.AssertDataField(t, result, "result", 120.0)

			result = execute(t, "math.factorial", map[string]interface{}{"n": 0})
			testutil.AssertDataField(t, result, "result", 1.0)
		})

		t.Run("Factorial rejects negative and fractional", func(t *testing.T) {
			testutil.AssertErrorContains(t, execute(t, "math.factorial", map[string]interface{}{"n": -1.0}), "invalid argument")
			testutil.AssertError(t, execute(t, "math.factorial", map[string]interface{}{"n": 2.5}))
			testutil.AssertError(t, execute(t, "math.factorial", map[string]interface{}{"n": "5"}))
			testutil.AssertError(t, execute(t, "math.factorial", map[string]interface{}{}))
		})

		t.Run("IsPrime", func(t *testing.T) {
			testutil.AssertDataField(t, execute(t, "math.isPrime", map[string]interface{}{"n": 7}), "result", true)
			testutil.AssertDataField(t, execute(t, "math.isPrime", map[string]interface{}{"n": 4}), "result", false)
			testutil.AssertError(t, execute(t, "math.isPrime", map[string]interface{}{"n": 1}))
		})

		t.Run("GCD and LCM", func(t *testing.T) {
			testutil.AssertDataField(t, execute(t, "math.gcd", map[string]interface{}{"a": 8, "b": 12}), "result", 4)
			testutil.AssertDataField(t, execute(t, "math.lcm", map[string]interface{}{"a": 6.0, "b": 8.0}), "result", 24)
			testutil.AssertError(t, execute(t, "math.lcm", map[string]interface{}{"a": 0, "b": 0}))
			testutil.AssertError(t, execute(t, "math.gcd", map[string]interface{}{"a": 1.5, "b": 3}))
		})

		t.Run("Fibonacci", func(t *testing.T) {
			result := execute(t, "math.fibonacci", map[string]interface{}{"n": 5})
			testutil.AssertSuccess(t, result)
			assert.Equal(t, []int{0, 1, 1, 2, 3, 5}, result.Data["result"])
			assert.Equal(t, 6, result.Data["count"])

			testutil.AssertError(t, execute(t, "math.fibonacci", map[string]interface{}{"n": -1}))
			testutil.AssertErrorContains(t, execute(t, "math.fibonacci", map[string]interface{}{"n": 9.2233720368547e18 - 2048}), "must be at most 92")
		})
	})

	t.Run("Combinatorics", func(t *testing.T) {
		testutil.AssertDataField(t, execute(t, "math.permutation", map[string]interface{}{"n": 5, "r": 2}), "result", 20.0)
		testutil.AssertDataField(t, execute(t, "math.combination", map[string]interface{}{"n": 5, "r": 2}), "result", 10.0)
		testutil.AssertError(t, execute(t, "math.combination", map[string]interface{}{"n": 2, "r": 5}))
		testutil.AssertError(t, execute(t, "math.permutation", map[string]interface{}{"n": 5}))
	})

	t.Run("Arithmetic", func(t *testing.T) {
		testutil.AssertDataField(t, execute(t, "math.power", map[string]interface{}{"base": 2, "exponent": 3}), "result", 8.0)
		testutil.AssertDataField(t, execute(t, "math.nthRoot", map[string]interface{}{"x": 27, "n": 3}), "result", 3.0)
		testutil.AssertDataField(t, execute(t, "math.logBase", map[string]interface{}{"x": 8, "base": 2}), "result", 3.0)
		testutil.AssertDataField(t, execute(t, "math.clamp", map[string]interface{}{"x": 15, "min": 10, "max": 20}), "result", 15.0)
		testutil.AssertDataField(t, execute(t, "math.clamp", map[string]interface{}{"x": 25, "min": 10, "max": 20}), "result", 20.0)

		testutil.AssertError(t, execute(t, "math.logBase", map[string]interface{}{"x": -8, "base": 2}))
		testutil.AssertError(t, execute(t, "math.nthRoot", map[string]interface{}{"x": 8, "n": 0}))
		testutil.AssertError(t, execute(t, "math.power", map[string]interface{}{"base": "2", "exponent": 3}))
	})

	t.Run("Statistics", func(t *testing.T) {
		testutil.AssertDataField(t, execute(t, "math.sum", map[string]interface{}{"numbers": []interface{}{1, 2, 3}}), "result", 6.0)
		testutil.AssertDataField(t, execute(t, "math.average", map[string]interface{}{"numbers": []interface{}{2, 4, 6}}), "result", 4.0)
		testutil.AssertDataField(t, execute(t, "math.median", map[string]interface{}{"numbers": []interface{}{1, 2, 3, 4, 5}}), "result", 3.0)

		stdev := execute(t, "math.stdev", map[string]interface{}{"numbers": []interface{}{1, 2, 3, 4}})
		testutil.AssertSuccess(t, stdev)
		assert.InDelta(t, 1.118, stdev.Data["result"].(float64), 1e-3)
		assert.InDelta(t, 2.5, stdev.Data["mean"].(float64), 1e-12)
		assert.InDelta(t, 1.25, stdev.Data["variance"].(float64), 1e-12)

		mode := execute(t, "math.mode", map[string]interface{}{"numbers": []interface{}{1, 2, 2, 3}})
		testutil.AssertSuccess(t, mode)
		assert.Equal(t, []float64{2}, mode.Data["result"])
		assert.Equal(t, 2, mode.Data["frequency"])

		geo := execute(t, "math.geometricMean", map[string]interface{}{"numbers": []interface{}{1, 3, 9}})
		testutil.AssertSuccess(t, geo)
		assert.InDelta(t, 3.0, geo.Data["result"].(float64), 1e-9)

		harmonic := execute(t, "math.harmonicMean", map[string]interface{}{"numbers": []interface{}{1, 2, 4}})
		testutil.AssertSuccess(t, harmonic)
		assert.InDelta(t, 12.0/7.0, harmonic.Data["result"].(float64), 1e-9)

		testutil.AssertError(t, execute(t, "math.average", map[string]interface{}{"numbers": []interface{}{}}))
		testutil.AssertError(t, execute(t, "math.median", map[string]interface{}{"numbers": 5}))
		testutil.AssertError(t, execute(t, "math.geometricMean", map[string]interface{}{"numbers": []interface{}{1, -1}}))
		testutil.AssertError(t, execute(t, "math.sum", map[string]interface{}{"numbers": []interface{}{1, "x"}}))
	})

	t.Run("Geometry", func(t *testing.T) {
		hyp := execute(t, "math.pythagorean", map[string]interface{}{"a": 3, "b": 4})
		testutil.AssertSuccess(t, hyp)
		assert.InDelta(t, 5.0, hyp.Data["result"].(float64), 1e-12)

		dist := execute(t, "math.distance", map[string]interface{}{
			"p": []interface{}{1, 2},
			"q": []interface{}{4, 6},
		})
		testutil.AssertSuccess(t, dist)
		assert.InDelta(t, 5.0, dist.Data["result"].(float64), 1e-12)

		testutil.AssertError(t, execute(t, "math.distance", map[string]interface{}{
			"p": []interface{}{1, 2},
			"q": []interface{}{4},
		}))

		rad := execute(t, "math.radians", map[string]interface{}{"degrees": 180})
		testutil.AssertSuccess(t, rad)
		assert.InDelta(t, gomath.Pi, rad.Data["result"].(float64), 1e-12)

		deg := execute(t, "math.degrees", map[string]interface{}{"radians": gomath.Pi})
		testutil.AssertSuccess(t, deg)
		assert.InDelta(t, 180.0, deg.Data["result"].(float64), 1e-12)
	})

	t.Run("Quadratic", func(t *testing.T) {
		realRoots := execute(t, "math.quadratic", map[string]interface{}{"a": 1, "b": -3, "c": 2})
		testutil.AssertSuccess(t, realRoots)
		assert.Equal(t, []float64{2, 1}, realRoots.Data["result"])
		assert.Equal(t, false, realRoots.Data["complex"])

		complexRoots := execute(t, "math.quadratic", map[string]interface{}{"a": 1, "b": 0, "c": 1})
		testutil.AssertSuccess(t, complexRoots)
		assert.Equal(t, []string{"0 + 1i", "0 - 1i"}, complexRoots.Data["result"])
		assert.Equal(t, true, complexRoots.Data["complex"])
		assert.Equal(t, -4.0, complexRoots.Data["discriminant"])

		testutil.AssertError(t, execute(t, "math.quadratic", map[string]interface{}{"a": 0, "b": 1, "c": 1}))
	})

	t.Run("Wrong parameter types are invalid arguments", func(t *testing.T) {
		tests := []struct {
			tool   string
			params map[string]interface{}
			msg    string
		}{
			{"math.factorial", map[string]interface{}{"n": 2.5}, "factorial: invalid argument n: must be an integer"},
			{"math.factorial", map[string]interface{}{}, "factorial: invalid argument n: is required"},
			{"math.power", map[string]interface{}{"base": "2", "exponent": 3}, "power: invalid argument base: must be a number"},
			{"math.median", map[string]interface{}{"numbers": 5}, "median: invalid argument numbers: must be an array of numbers"},
			{"math.distance", map[string]interface{}{"p": []interface{}{1}, "q": "x"}, "euclideanDistance: invalid argument q: must be an array of numbers"},
			{"math.randomInt", map[string]interface{}{"min": 1, "max": true}, "randomInt: invalid argument max: must be an integer"},
		}

		for _, tt := range tests {
			result := execute(t, tt.tool, tt.params)
			testutil.AssertError(t, result)
			assert.Equal(t, tt.msg, *result.Error, tt.tool)
		}
	})

	t.Run("Unknown tool", func(t *testing.T) {
		testutil.AssertErrorContains(t, execute(t, "math.teleport", nil), "unknown tool")
	})
}

func TestRandomIntTool(t *testing.T) {
	provider := New(Options{Random: utilities.NewSeededGenerator(99)})
	ctx := context.Background()

	for i := 0; i < 1000; i++ {
		result, err := provider.Execute(ctx, "math.randomInt", map[string]interface{}{"min": 1, "max": 10}, nil)
		require.NoError(t, err)
		testutil.AssertSuccess(t, result)

		n := result.Data["result"].(int)
		assert.GreaterOrEqual(t, n, 1)
		assert.LessOrEqual(t, n, 10)
	}

	result, err := provider.Execute(ctx, "math.randomInt", map[string]interface{}{"min": 10, "max": 1}, nil)
	require.NoError(t, err)
	testutil.AssertError(t, result)
}

func TestRandomIntToolDeterministic(t *testing.T) {
	ctx := context.Background()
	params := map[string]interface{}{"min": 0, "max": 1_000_000}

	a := New(Options{Random: utilities.NewSeededGenerator(5)})
	b := New(Options{Random: utilities.NewSeededGenerator(5)})

	for i := 0; i < 20; i++ {
		ra, err := a.Execute(ctx, "math.randomInt", params, nil)
		require.NoError(t, err)
		rb, err := b.Execute(ctx, "math.randomInt", params, nil)
		require.NoError(t, err)
		assert.Equal(t, ra.Data["result"], rb.Data["result"])
	}
}

func TestDefinition(t *testing.T) {
	def := NewProvider().Definition()

	assert.Equal(t, "math", def.ID)
	assert.Equal(t, types.CategoryMath, def.Category)
	assert.Len(t, def.Tools, 24)

	seen := make(map[string]bool)
	for _, tool := range def.Tools {
		assert.False(t, seen[tool.ID], "duplicate tool %s", tool.ID)
		seen[tool.ID] = true
		assert.NotEmpty(t, tool.Parameters, tool.ID)
	}

	// Every advertised tool must be routable
	provider := NewProvider()
	for _, tool := range def.Tools {
		result, err := provider.Execute(context.Background(), tool.ID, map[string]interface{}{}, nil)
		require.NoError(t, err)
		testutil.AssertError(t, result)
		assert.NotContains(t, *result.Error, "unknown tool", tool.ID)
	}
}

func TestExecuteCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := NewProvider().Execute(ctx, "math.sum", map[string]interface{}{"numbers": []interface{}{1}}, nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, result)
}

func TestExecuteInstrumentation(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	metrics := monitoring.NewMetrics("test", prometheus.NewRegistry())
	provider := New(Options{
		Logger:  logging.Wrap(zap.New(core)),
		Metrics: metrics,
	})
	ctx := context.Background()

	_, err := provider.Execute(ctx, "math.factorial", map[string]interface{}{"n": 4}, nil)
	require.NoError(t, err)
	_, err = provider.Execute(ctx, "math.factorial", map[string]interface{}{"n": -4}, nil)
	require.NoError(t, err)
	_, err = provider.Execute(ctx, "math.nope", nil, nil)
	require.NoError(t, err)
	_, err = provider.Execute(ctx, "math.factorial", map[string]interface{}{"n": "four"}, nil)
	require.NoError(t, err)

	assert.Equal(t, 1.0, prom.ToFloat64(metrics.ToolCalls.WithLabelValues("math.factorial", monitoring.StatusSuccess)))
	assert.Equal(t, 2.0, prom.ToFloat64(metrics.ToolCalls.WithLabelValues("math.factorial", monitoring.StatusFailure)))
	assert.Equal(t, 2.0, prom.ToFloat64(metrics.ToolErrors.WithLabelValues("math.factorial", errorInvalidArgument)))
	assert.Equal(t, 0.0, prom.ToFloat64(metrics.ToolErrors.WithLabelValues("math.factorial", errorInternal)))
	assert.Equal(t, 1.0, prom.ToFloat64(metrics.ToolErrors.WithLabelValues("math.nope", errorUnknownTool)))

	executed := logs.FilterMessage("Tool executed").All()
	require.Len(t, executed, 1)
	assert.Equal(t, "math.factorial", executed[0].ContextMap()["tool"])
	assert.Contains(t, executed[0].ContextMap()["call_id"], "call_")

	rejected := logs.FilterMessage("Tool call rejected").All()
	require.Len(t, rejected, 3)
	assert.Equal(t, zap.WarnLevel, rejected[0].Level)
	assert.Equal(t, errorInvalidArgument, rejected[0].ContextMap()["error_type"])
	assert.Equal(t, errorUnknownTool, rejected[1].ContextMap()["error_type"])
	assert.Equal(t, errorInvalidArgument, rejected[2].ContextMap()["error_type"])
}

func TestClassify(t *testing.T) {
	assert.Equal(t, errorUnknownTool, classify(fmt.Errorf("%w: math.nope", ErrUnknownTool)))
	assert.Equal(t, errorInvalidArgument, classify(common.InvalidArgument("factorial", "n", "must be an integer")))
	assert.Equal(t, errorInternal, classify(errors.New("boom")))
}
