package geometry

import (
	"fmt"
	gomath "math"
	"strconv"
	"strings"

	"github.com/GriffinCanCode/mathkit/internal/providers/math/common"
)

// Root is one solution of a quadratic equation. Im is zero for real roots.
type Root struct {
	Re float64
	Im float64
}

// IsReal reports whether the root has no imaginary part
func (r Root) IsReal() bool {
	return r.Im == 0
}

// String renders real roots as a plain number and complex roots as "re + im i"
func (r Root) String() string {
	if r.IsReal() {
		return formatNumber(r.Re)
	}
	sign := "+"
	if r.Im < 0 {
		sign = "-"
	}
	return fmt.Sprintf("%s %s %si", formatNumber(r.Re), sign, formatNumber(gomath.Abs(r.Im)))
}

// QuadraticRoots solves ax^2 + bx + c = 0.
//
// With a non-negative discriminant the two real roots are returned as
// (-b+sqrt(D))/2a then (-b-sqrt(D))/2a. Otherwise the complex conjugate pair is
// returned with the positive imaginary part first.
func QuadraticRoots(a, b, c float64) ([2]Root, error) {
	var roots [2]Root
	if err := common.ValidateNumbers("quadraticRoots", []float64{a, b, c}, "coefficients"); err != nil {
		return roots, err
	}
	if a == 0 {
		return roots, common.InvalidArgument("quadraticRoots", "a", "must not be zero")
	}

	discriminant := Discriminant(a, b, c)
	if discriminant >= 0 {
		sqrtD := gomath.Sqrt(discriminant)
		roots[0] = Root{Re: (-b + sqrtD) / (2 * a)}
		roots[1] = Root{Re: (-b - sqrtD) / (2 * a)}
		return roots, nil
	}

	re := -b / (2 * a)
	im := gomath.Abs(gomath.Sqrt(-discriminant) / (2 * a))
	roots[0] = Root{Re: re, Im: im}
	roots[1] = Root{Re: re, Im: -im}
	return roots, nil
}

// Discriminant returns b^2 - 4ac
func Discriminant(a, b, c float64) float64 {
	return b*b - 4*a*c
}

// formatNumber prints the shortest representation and folds -0 into 0.
// Magnitudes of at least 1e21 or below 1e-6 use exponent form, e.g. 1e+21 and 1.5e-7.
func formatNumber(x float64) string {
	switch {
	case x == 0:
		return "0"
	case gomath.IsNaN(x):
		return "NaN"
	case gomath.IsInf(x, 1):
		return "Infinity"
	case gomath.IsInf(x, -1):
		return "-Infinity"
	}

	abs := gomath.Abs(x)
	if abs < 1e21 && abs >= 1e-6 {
		return strconv.FormatFloat(x, 'f', -1, 64)
	}

	// Go pads the exponent to two digits
	mantissa, exp, _ := strings.Cut(strconv.FormatFloat(x, 'e', -1, 64), "e")
	return mantissa + "e" + exp[:1] + strings.TrimLeft(exp[1:], "0")
}
