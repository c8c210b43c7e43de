package operations

import (
	gomath "math"

	"github.com/GriffinCanCode/mathkit/internal/providers/math/common"
)

// Power raises base to exponent
func Power(base, exponent float64) (float64, error) {
	if err := common.ValidateNumber("power", base, "base"); err != nil {
		return 0, err
	}
	if err := common.ValidateNumber("power", exponent, "exponent"); err != nil {
		return 0, err
	}
	return gomath.Pow(base, exponent), nil
}

// NthRoot calculates x^(1/n). Square and cube roots are exact; odd integral
// roots of negative numbers are real.
func NthRoot(x, n float64) (float64, error) {
	if err := common.ValidateNumber("nthRoot", x, "x"); err != nil {
		return 0, err
	}
	if err := common.ValidateNumber("nthRoot", n, "n"); err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, common.InvalidArgument("nthRoot", "n", "must not be zero")
	}

	switch n {
	case 2:
		return gomath.Sqrt(x), nil
	case 3:
		return gomath.Cbrt(x), nil
	}

	if x < 0 && n == gomath.Trunc(n) && gomath.Mod(n, 2) != 0 {
		return -gomath.Pow(-x, 1/n), nil
	}
	return gomath.Pow(x, 1/n), nil
}

// LogBase calculates the logarithm of x in the given base
func LogBase(x, base float64) (float64, error) {
	if err := common.ValidateNumber("logBase", x, "x"); err != nil {
		return 0, err
	}
	if err := common.ValidateNumber("logBase", base, "base"); err != nil {
		return 0, err
	}
	if x <= 0 {
		return 0, common.InvalidArgument("logBase", "x", "logarithm undefined for non-positive numbers")
	}
	if base <= 0 || base == 1 {
		return 0, common.InvalidArgument("logBase", "base", "must be positive and not equal to 1")
	}

	switch base {
	case 2:
		return gomath.Log2(x), nil
	case 10:
		return gomath.Log10(x), nil
	case gomath.E:
		return gomath.Log(x), nil
	}
	return gomath.Log(x) / gomath.Log(base), nil
}

// Clamp bounds x into [min, max]
func Clamp(x, lo, hi float64) (float64, error) {
	if err := common.ValidateNumbers("clamp", []float64{x, lo, hi}, "args"); err != nil {
		return 0, err
	}
	if lo > hi {
		return 0, common.InvalidArgument("clamp", "min", "must not exceed max")
	}
	return gomath.Min(gomath.Max(x, lo), hi), nil
}
