// Package operations implements number theory, arithmetic and combinatorics.
//
// Integer-only operations take int arguments; callers holding float64 values
// must reject fractional input before calling (common.GetInteger does this for
// tool parameters). Factorial-based results are float64 so large inputs degrade
// to +Inf rather than wrapping.
package operations
