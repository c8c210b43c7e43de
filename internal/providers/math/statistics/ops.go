package statistics

import (
	"context"

	"github.com/GriffinCanCode/mathkit/internal/providers/math/common"
	"github.com/GriffinCanCode/mathkit/internal/shared/types"
)

// StatsOps handles statistical operations using gonum
type StatsOps struct {
	*common.MathOps
}

func numbersTool(id, name, description string) types.Tool {
	return types.Tool{
		ID:          id,
		Name:        name,
		Description: description,
		Parameters: []types.Parameter{
			{Name: "numbers", Type: "array", Description: "Array of numbers", Required: true},
		},
		Returns: "number",
	}
}

// GetTools returns stats tool definitions
func (s *StatsOps) GetTools() []types.Tool {
	mode := numbersTool("math.mode", "Mode", "Find the most frequent values")
	mode.Returns = "array"

	return []types.Tool{
		numbersTool("math.sum", "Sum", "Calculate sum of all numbers"),
		numbersTool("math.average", "Average", "Calculate arithmetic mean"),
		numbersTool("math.stdev", "Standard Deviation", "Calculate population standard deviation"),
		numbersTool("math.median", "Median", "Calculate median value"),
		mode,
		numbersTool("math.geometricMean", "Geometric Mean", "Calculate geometric mean of positive numbers"),
		numbersTool("math.harmonicMean", "Harmonic Mean", "Calculate harmonic mean of positive numbers"),
	}
}

// Sum calculates sum
func (s *StatsOps) Sum(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return reduce("sum", params, Sum)
}

// Average calculates arithmetic mean
func (s *StatsOps) Average(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return reduce("average", params, Average)
}

// Stdev calculates population standard deviation using gonum
func (s *StatsOps) Stdev(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	numbers, err := common.Numbers("standardDeviation", params, "numbers")
	if err != nil {
		return common.FromError(err)
	}

	summary, err := Describe(numbers)
	if err != nil {
		return common.FromError(err)
	}

	return common.Success(map[string]interface{}{
		"result":   summary.StdDev,
		"variance": summary.Variance,
		"mean":     summary.Mean,
	})
}

// Median calculates median
func (s *StatsOps) Median(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return reduce("median", params, Median)
}

// Mode finds most frequent values
func (s *StatsOps) Mode(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	numbers, err := common.Numbers("mode", params, "numbers")
	if err != nil {
		return common.FromError(err)
	}

	modes, freq, err := Mode(numbers)
	if err != nil {
		return common.FromError(err)
	}

	return common.Success(map[string]interface{}{
		"result":    modes,
		"frequency": freq,
	})
}

// GeometricMean calculates geometric mean using gonum
func (s *StatsOps) GeometricMean(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return reduce("geometricMean", params, GeometricMean)
}

// HarmonicMean calculates harmonic mean using gonum
func (s *StatsOps) HarmonicMean(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return reduce("harmonicMean", params, HarmonicMean)
}

func reduce(op string, params map[string]interface{}, fn func([]float64) (float64, error)) (*types.Result, error) {
	numbers, err := common.Numbers(op, params, "numbers")
	if err != nil {
		return common.FromError(err)
	}

	result, err := fn(numbers)
	if err != nil {
		return common.FromError(err)
	}
	return common.Success(map[string]interface{}{"result": result})
}
