package geometry

import (
	gomath "math"

	"github.com/GriffinCanCode/mathkit/internal/providers/math/common"
	"gonum.org/v1/gonum/floats"
)

// Pythagorean returns the hypotenuse of a right triangle with legs a and b
func Pythagorean(a, b float64) (float64, error) {
	if err := common.ValidateNumbers("pythagorean", []float64{a, b}, "legs"); err != nil {
		return 0, err
	}
	return gomath.Hypot(a, b), nil
}

// EuclideanDistance returns the L2 distance between two points of equal dimension
func EuclideanDistance(p, q []float64) (float64, error) {
	if len(p) != len(q) {
		return 0, common.InvalidArgument("euclideanDistance", "q", "must have the same length as p")
	}
	if err := common.ValidateNumbers("euclideanDistance", p, "p"); err != nil {
		return 0, err
	}
	if err := common.ValidateNumbers("euclideanDistance", q, "q"); err != nil {
		return 0, err
	}
	return floats.Distance(p, q, 2), nil
}

// DegreesToRadians converts degrees to radians
func DegreesToRadians(degrees float64) (float64, error) {
	if err := common.ValidateNumber("degreesToRadians", degrees, "degrees"); err != nil {
		return 0, err
	}
	return degrees * (gomath.Pi / 180), nil
}

// RadiansToDegrees converts radians to degrees
func RadiansToDegrees(radians float64) (float64, error) {
	if err := common.ValidateNumber("radiansToDegrees", radians, "radians"); err != nil {
		return 0, err
	}
	return radians * (180 / gomath.Pi), nil
}
