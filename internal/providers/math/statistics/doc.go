// Package statistics provides descriptive statistics over float64 slices.
//
// Standard deviation is the population form (denominator n). Every reduction
// except Sum rejects an empty slice; the geometric and harmonic means also
// reject non-positive elements.
package statistics
