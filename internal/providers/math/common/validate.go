package common

import (
	"fmt"
	gomath "math"
)

// ValidateNumber checks if a number is valid (not NaN or Inf)
func ValidateNumber(op string, x float64, name string) error {
	if gomath.IsNaN(x) {
		return InvalidArgument(op, name, "is NaN")
	}
	if gomath.IsInf(x, 0) {
		return InvalidArgument(op, name, "is infinite")
	}
	return nil
}

// ValidateNumbers validates an array of numbers
func ValidateNumbers(op string, nums []float64, name string) error {
	for i, x := range nums {
		if err := ValidateNumber(op, x, fmt.Sprintf("%s[%d]", name, i)); err != nil {
			return err
		}
	}
	return nil
}

// RequireNonEmpty rejects empty arrays and any non-finite element
func RequireNonEmpty(op string, nums []float64, name string) error {
	if len(nums) == 0 {
		return InvalidArgument(op, name, "must not be empty")
	}
	return ValidateNumbers(op, nums, name)
}

// RequirePositive rejects empty arrays and any element that is not strictly positive
func RequirePositive(op string, nums []float64, name string) error {
	if err := RequireNonEmpty(op, nums, name); err != nil {
		return err
	}
	for i, x := range nums {
		if x <= 0 {
			return InvalidArgument(op, fmt.Sprintf("%s[%d]", name, i), "must be positive")
		}
	}
	return nil
}

// RequireNonNegative rejects negative integers
func RequireNonNegative(op string, n int, name string) error {
	if n < 0 {
		return InvalidArgument(op, name, "must be a non-negative integer")
	}
	return nil
}
