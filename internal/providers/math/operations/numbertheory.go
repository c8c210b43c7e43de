package operations

import (
	"fmt"
	gomath "math"

	"github.com/GriffinCanCode/mathkit/internal/providers/math/common"
)

const (
	// MaxFactorial is the largest n whose factorial is finite in float64
	MaxFactorial = 170

	// MaxFibonacci is the largest index whose Fibonacci number fits in an int64
	MaxFibonacci = 92
)

// Factorial calculates n! iteratively. n must be non-negative.
// Results past MaxFactorial overflow to +Inf.
func Factorial(n int) (float64, error) {
	if err := common.RequireNonNegative("factorial", n, "n"); err != nil {
		return 0, err
	}
	if n > MaxFactorial {
		return gomath.Inf(1), nil
	}

	result := 1.0
	for i := 2; i <= n; i++ {
		result *= float64(i)
	}
	return result, nil
}

// IsPrime tests primality by trial division up to sqrt(n). n must be at least 2.
func IsPrime(n int) (bool, error) {
	if n < 2 {
		return false, common.InvalidArgument("isPrime", "n", "must be an integer greater than or equal to 2")
	}

	for i := 2; i <= n/i; i++ {
		if n%i == 0 {
			return false, nil
		}
	}
	return true, nil
}

// GCD calculates the greatest common divisor with the Euclidean algorithm.
// The result is never negative; GCD(0, 0) is 0.
func GCD(a, b int) int {
	numA := abs(a)
	numB := abs(b)
	for numB != 0 {
		numA, numB = numB, numA%numB
	}
	return numA
}

// LCM calculates the least common multiple as |a*b| / GCD(a, b).
// It is undefined when both arguments are zero.
func LCM(a, b int) (int, error) {
	divisor := GCD(a, b)
	if divisor == 0 {
		return 0, common.InvalidArgument("lcm", "", "undefined when both arguments are zero")
	}

	// Divide first to keep the intermediate product small
	return abs(a/divisor) * abs(b), nil
}

// Fibonacci returns the sequence F(0)..F(n), i.e. n+1 values starting 0, 1.
// n is limited to MaxFibonacci so every term fits in an int.
func Fibonacci(n int) ([]int, error) {
	if err := common.RequireNonNegative("fibonacci", n, "n"); err != nil {
		return nil, err
	}
	if n > MaxFibonacci {
		return nil, common.InvalidArgument("fibonacci", "n", fmt.Sprintf("must be at most %d", MaxFibonacci))
	}

	seq := make([]int, n+1)
	if n >= 1 {
		seq[1] = 1
	}
	for i := 2; i <= n; i++ {
		seq[i] = seq[i-1] + seq[i-2]
	}
	return seq, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
