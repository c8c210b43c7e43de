package operations

import (
	"context"

	"github.com/GriffinCanCode/mathkit/internal/providers/math/common"
	"github.com/GriffinCanCode/mathkit/internal/shared/types"
)

// ArithmeticOps handles powers, roots, logarithms and clamping
type ArithmeticOps struct {
	*common.MathOps
}

// NumberTheoryOps handles integer sequences, divisibility and counting
type NumberTheoryOps struct {
	*common.MathOps
}

// GetTools returns arithmetic tool definitions
func (a *ArithmeticOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "math.power",
			Name:        "Power",
			Description: "Raise base to the power of exponent",
			Parameters: []types.Parameter{
				{Name: "base", Type: "number", Description: "Base", Required: true},
				{Name: "exponent", Type: "number", Description: "Exponent", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.nthRoot",
			Name:        "Nth Root",
			Description: "Calculate the nth root of x",
			Parameters: []types.Parameter{
				{Name: "x", Type: "number", Description: "Radicand", Required: true},
				{Name: "n", Type: "number", Description: "Degree of the root (non-zero)", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.logBase",
			Name:        "Logarithm",
			Description: "Calculate the logarithm of x in an arbitrary base",
			Parameters: []types.Parameter{
				{Name: "x", Type: "number", Description: "Positive number", Required: true},
				{Name: "base", Type: "number", Description: "Positive base other than 1", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.clamp",
			Name:        "Clamp",
			Description: "Bound x into [min, max]",
			Parameters: []types.Parameter{
				{Name: "x", Type: "number", Description: "Value to clamp", Required: true},
				{Name: "min", Type: "number", Description: "Lower bound", Required: true},
				{Name: "max", Type: "number", Description: "Upper bound", Required: true},
			},
			Returns: "number",
		},
	}
}

// Power raises base to exponent
func (a *ArithmeticOps) Power(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	base, err := common.Number("power", params, "base")
	if err != nil {
		return common.FromError(err)
	}
	exponent, err := common.Number("power", params, "exponent")
	if err != nil {
		return common.FromError(err)
	}

	result, err := Power(base, exponent)
	if err != nil {
		return common.FromError(err)
	}
	return common.Success(map[string]interface{}{"result": result})
}

// NthRoot calculates the nth root
func (a *ArithmeticOps) NthRoot(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	x, err := common.Number("nthRoot", params, "x")
	if err != nil {
		return common.FromError(err)
	}
	n, err := common.Number("nthRoot", params, "n")
	if err != nil {
		return common.FromError(err)
	}

	result, err := NthRoot(x, n)
	if err != nil {
		return common.FromError(err)
	}
	return common.Success(map[string]interface{}{"result": result})
}

// LogBase calculates a logarithm in the given base
func (a *ArithmeticOps) LogBase(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	x, err := common.Number("logBase", params, "x")
	if err != nil {
		return common.FromError(err)
	}
	base, err := common.Number("logBase", params, "base")
	if err != nil {
		return common.FromError(err)
	}

	result, err := LogBase(x, base)
	if err != nil {
		return common.FromError(err)
	}
	return common.Success(map[string]interface{}{"result": result})
}

// Clamp bounds x into [min, max]
func (a *ArithmeticOps) Clamp(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	x, err := common.Number("clamp", params, "x")
	if err != nil {
		return common.FromError(err)
	}
	lo, err := common.Number("clamp", params, "min")
	if err != nil {
		return common.FromError(err)
	}
	hi, err := common.Number("clamp", params, "max")
	if err != nil {
		return common.FromError(err)
	}

	result, err := Clamp(x, lo, hi)
	if err != nil {
		return common.FromError(err)
	}
	return common.Success(map[string]interface{}{"result": result})
}

// GetTools returns number theory and combinatorics tool definitions
func (nt *NumberTheoryOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "math.factorial",
			Name:        "Factorial",
			Description: "Calculate factorial (n!)",
			Parameters: []types.Parameter{
				{Name: "n", Type: "integer", Description: "Non-negative integer", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.isPrime",
			Name:        "Is Prime",
			Description: "Test whether n is prime",
			Parameters: []types.Parameter{
				{Name: "n", Type: "integer", Description: "Integer >= 2", Required: true},
			},
			Returns: "boolean",
		},
		{
			ID:          "math.gcd",
			Name:        "Greatest Common Divisor",
			Description: "Calculate GCD of two integers",
			Parameters: []types.Parameter{
				{Name: "a", Type: "integer", Description: "First integer", Required: true},
				{Name: "b", Type: "integer", Description: "Second integer", Required: true},
			},
			Returns: "integer",
		},
		{
			ID:          "math.lcm",
			Name:        "Least Common Multiple",
			Description: "Calculate LCM of two integers",
			Parameters: []types.Parameter{
				{Name: "a", Type: "integer", Description: "First integer", Required: true},
				{Name: "b", Type: "integer", Description: "Second integer", Required: true},
			},
			Returns: "integer",
		},
		{
			ID:          "math.fibonacci",
			Name:        "Fibonacci",
			Description: "Fibonacci sequence F(0) through F(n)",
			Parameters: []types.Parameter{
				{Name: "n", Type: "integer", Description: "Non-negative integer", Required: true},
			},
			Returns: "array",
		},
		{
			ID:          "math.permutation",
			Name:        "Permutations",
			Description: "Ordered arrangements of r items from n (nPr)",
			Parameters: []types.Parameter{
				{Name: "n", Type: "integer", Description: "Total items", Required: true},
				{Name: "r", Type: "integer", Description: "Items arranged (0 <= r <= n)", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.combination",
			Name:        "Combinations",
			Description: "Unordered selections of r items from n (nCr)",
			Parameters: []types.Parameter{
				{Name: "n", Type: "integer", Description: "Total items", Required: true},
				{Name: "r", Type: "integer", Description: "Items selected (0 <= r <= n)", Required: true},
			},
			Returns: "number",
		},
	}
}

// Factorial calculates factorial
func (nt *NumberTheoryOps) Factorial(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	n, err := common.Integer("factorial", params, "n")
	if err != nil {
		return common.FromError(err)
	}

	result, err := Factorial(n)
	if err != nil {
		return common.FromError(err)
	}
	return common.Success(map[string]interface{}{"result": result})
}

// IsPrime tests primality
func (nt *NumberTheoryOps) IsPrime(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	n, err := common.Integer("isPrime", params, "n")
	if err != nil {
		return common.FromError(err)
	}

	result, err := IsPrime(n)
	if err != nil {
		return common.FromError(err)
	}
	return common.Success(map[string]interface{}{"result": result})
}

// GCD calculates greatest common divisor
func (nt *NumberTheoryOps) GCD(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	a, b, err := integerPair("gcd", params, "a", "b")
	if err != nil {
		return common.FromError(err)
	}
	return common.Success(map[string]interface{}{"result": GCD(a, b)})
}

// LCM calculates least common multiple
func (nt *NumberTheoryOps) LCM(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	a, b, err := integerPair("lcm", params, "a", "b")
	if err != nil {
		return common.FromError(err)
	}

	result, err := LCM(a, b)
	if err != nil {
		return common.FromError(err)
	}
	return common.Success(map[string]interface{}{"result": result})
}

// Fibonacci returns the sequence up to F(n)
func (nt *NumberTheoryOps) Fibonacci(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	n, err := common.Integer("fibonacci", params, "n")
	if err != nil {
		return common.FromError(err)
	}

	seq, err := Fibonacci(n)
	if err != nil {
		return common.FromError(err)
	}
	return common.Success(map[string]interface{}{"result": seq, "count": len(seq)})
}

// Permutation counts ordered arrangements
func (nt *NumberTheoryOps) Permutation(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	n, r, err := integerPair("permutation", params, "n", "r")
	if err != nil {
		return common.FromError(err)
	}

	result, err := Permutation(n, r)
	if err != nil {
		return common.FromError(err)
	}
	return common.Success(map[string]interface{}{"result": result})
}

// Combination counts unordered selections
func (nt *NumberTheoryOps) Combination(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	n, r, err := integerPair("combination", params, "n", "r")
	if err != nil {
		return common.FromError(err)
	}

	result, err := Combination(n, r)
	if err != nil {
		return common.FromError(err)
	}
	return common.Success(map[string]interface{}{"result": result})
}

func integerPair(op string, params map[string]interface{}, first, second string) (int, int, error) {
	a, err := common.Integer(op, params, first)
	if err != nil {
		return 0, 0, err
	}
	b, err := common.Integer(op, params, second)
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}
