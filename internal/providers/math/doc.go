// Package math exposes the math utility library as a catalogue of tools.
//
// The library itself lives in the sub-packages and can be called directly:
//   - operations: factorial, primality, gcd/lcm, Fibonacci, powers, roots,
//     logarithms, clamping, permutations and combinations
//   - statistics: sum, average, population standard deviation, median, mode,
//     geometric and harmonic means (gonum/stat)
//   - geometry: hypotenuse, Euclidean distance, angle conversion, quadratic roots
//   - utilities: uniform random integers over an injectable source
//   - common: the InvalidArgument error and parameter helpers
//
// Every library function validates its arguments first and returns an error
// matching common.ErrInvalidArgument on a violated precondition; no partial
// result is ever produced.
//
// The Provider routes tool IDs such as "math.factorial" to those functions and
// wraps the outcome in a types.Result:
//
//	provider := math.New(math.Options{Logger: logger, Metrics: metrics})
//	result, err := provider.Execute(ctx, "math.combination", map[string]interface{}{
//	    "n": 5, "r": 2,
//	}, nil)
//	// result.Data["result"] == 10.0
package math
