package utilities

import (
	"context"

	"github.com/GriffinCanCode/mathkit/internal/providers/math/common"
	"github.com/GriffinCanCode/mathkit/internal/shared/types"
)

// RandomOps exposes random integer generation as a tool
type RandomOps struct {
	*common.MathOps
	Generator *Generator
}

// GetTools returns random tool definitions
func (r *RandomOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "math.randomInt",
			Name:        "Random Integer",
			Description: "Uniformly random integer between min and max (inclusive)",
			Parameters: []types.Parameter{
				{Name: "min", Type: "integer", Description: "Lower bound", Required: true},
				{Name: "max", Type: "integer", Description: "Upper bound", Required: true},
			},
			Returns: "integer",
		},
	}
}

// RandomInt draws a random integer
func (r *RandomOps) RandomInt(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	lo, err := common.Integer("randomInt", params, "min")
	if err != nil {
		return common.FromError(err)
	}
	hi, err := common.Integer("randomInt", params, "max")
	if err != nil {
		return common.FromError(err)
	}

	gen := r.Generator
	if gen == nil {
		gen = Default()
	}

	value, err := gen.RandomInt(lo, hi)
	if err != nil {
		return common.FromError(err)
	}
	return common.Success(map[string]interface{}{"result": value})
}
