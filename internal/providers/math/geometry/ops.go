package geometry

import (
	"context"

	"github.com/GriffinCanCode/mathkit/internal/providers/math/common"
	"github.com/GriffinCanCode/mathkit/internal/shared/types"
)

// GeometryOps handles distances, angle conversion and quadratic roots
type GeometryOps struct {
	*common.MathOps
}

// GetTools returns geometry tool definitions
func (g *GeometryOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "math.pythagorean",
			Name:        "Hypotenuse",
			Description: "Length of the hypotenuse given both legs",
			Parameters: []types.Parameter{
				{Name: "a", Type: "number", Description: "First leg", Required: true},
				{Name: "b", Type: "number", Description: "Second leg", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.distance",
			Name:        "Euclidean Distance",
			Description: "Distance between two points in n dimensions",
			Parameters: []types.Parameter{
				{Name: "p", Type: "array", Description: "Coordinates of the first point", Required: true},
				{Name: "q", Type: "array", Description: "Coordinates of the second point", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.radians",
			Name:        "Degrees to Radians",
			Description: "Convert degrees to radians",
			Parameters: []types.Parameter{
				{Name: "degrees", Type: "number", Description: "Angle in degrees", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.degrees",
			Name:        "Radians to Degrees",
			Description: "Convert radians to degrees",
			Parameters: []types.Parameter{
				{Name: "radians", Type: "number", Description: "Angle in radians", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.quadratic",
			Name:        "Quadratic Roots",
			Description: "Solve ax² + bx + c = 0; complex roots are returned as strings",
			Parameters: []types.Parameter{
				{Name: "a", Type: "number", Description: "Coefficient of x² (non-zero)", Required: true},
				{Name: "b", Type: "number", Description: "Coefficient of x", Required: true},
				{Name: "c", Type: "number", Description: "Constant term", Required: true},
			},
			Returns: "array",
		},
	}
}

// Pythagorean calculates the hypotenuse
func (g *GeometryOps) Pythagorean(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	a, err := common.Number("pythagorean", params, "a")
	if err != nil {
		return common.FromError(err)
	}
	b, err := common.Number("pythagorean", params, "b")
	if err != nil {
		return common.FromError(err)
	}

	result, err := Pythagorean(a, b)
	if err != nil {
		return common.FromError(err)
	}
	return common.Success(map[string]interface{}{"result": result})
}

// Distance calculates Euclidean distance
func (g *GeometryOps) Distance(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	p, err := common.Numbers("euclideanDistance", params, "p")
	if err != nil {
		return common.FromError(err)
	}
	q, err := common.Numbers("euclideanDistance", params, "q")
	if err != nil {
		return common.FromError(err)
	}

	result, err := EuclideanDistance(p, q)
	if err != nil {
		return common.FromError(err)
	}
	return common.Success(map[string]interface{}{"result": result})
}

// DegreesToRadians converts degrees to radians
func (g *GeometryOps) DegreesToRadians(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	degrees, err := common.Number("degreesToRadians", params, "degrees")
	if err != nil {
		return common.FromError(err)
	}

	radians, err := DegreesToRadians(degrees)
	if err != nil {
		return common.FromError(err)
	}
	return common.Success(map[string]interface{}{"result": radians})
}

// RadiansToDegrees converts radians to degrees
func (g *GeometryOps) RadiansToDegrees(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	radians, err := common.Number("radiansToDegrees", params, "radians")
	if err != nil {
		return common.FromError(err)
	}

	degrees, err := RadiansToDegrees(radians)
	if err != nil {
		return common.FromError(err)
	}
	return common.Success(map[string]interface{}{"result": degrees})
}

// Quadratic solves a quadratic equation
func (g *GeometryOps) Quadratic(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	a, err := common.Number("quadraticRoots", params, "a")
	if err != nil {
		return common.FromError(err)
	}
	b, err := common.Number("quadraticRoots", params, "b")
	if err != nil {
		return common.FromError(err)
	}
	c, err := common.Number("quadraticRoots", params, "c")
	if err != nil {
		return common.FromError(err)
	}

	roots, err := QuadraticRoots(a, b, c)
	if err != nil {
		return common.FromError(err)
	}

	data := map[string]interface{}{
		"discriminant": Discriminant(a, b, c),
		"complex":      !roots[0].IsReal(),
	}
	if roots[0].IsReal() {
		data["result"] = []float64{roots[0].Re, roots[1].Re}
	} else {
		data["result"] = []string{roots[0].String(), roots[1].String()}
	}
	return common.Success(data)
}
