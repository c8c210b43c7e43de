package operations

import "github.com/GriffinCanCode/mathkit/internal/providers/math/common"

// Permutation counts ordered arrangements of r items drawn from n: n! / (n-r)!
func Permutation(n, r int) (float64, error) {
	if err := checkSelection("permutation", n, r); err != nil {
		return 0, err
	}

	num, err := Factorial(n)
	if err != nil {
		return 0, err
	}
	den, err := Factorial(n - r)
	if err != nil {
		return 0, err
	}
	return num / den, nil
}

// Combination counts unordered selections of r items drawn from n: n! / (r! (n-r)!)
func Combination(n, r int) (float64, error) {
	if err := checkSelection("combination", n, r); err != nil {
		return 0, err
	}

	num, err := Factorial(n)
	if err != nil {
		return 0, err
	}
	rFact, err := Factorial(r)
	if err != nil {
		return 0, err
	}
	rest, err := Factorial(n - r)
	if err != nil {
		return 0, err
	}
	return num / (rFact * rest), nil
}

func checkSelection(op string, n, r int) error {
	if err := common.RequireNonNegative(op, n, "n"); err != nil {
		return err
	}
	if err := common.RequireNonNegative(op, r, "r"); err != nil {
		return err
	}
	if r > n {
		return common.InvalidArgument(op, "r", "must be less than or equal to n")
	}
	return nil
}
