package statistics

import (
	gomath "math"
	"sort"

	"github.com/GriffinCanCode/mathkit/internal/providers/math/common"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Sum adds every element. An empty slice sums to 0.
func Sum(numbers []float64) (float64, error) {
	if err := common.ValidateNumbers("sum", numbers, "numbers"); err != nil {
		return 0, err
	}
	return floats.Sum(numbers), nil
}

// Average calculates the arithmetic mean
func Average(numbers []float64) (float64, error) {
	if err := common.RequireNonEmpty("average", numbers, "numbers"); err != nil {
		return 0, err
	}

	total, err := Sum(numbers)
	if err != nil {
		return 0, err
	}
	return total / float64(len(numbers)), nil
}

// Summary is the mean, population variance and standard deviation of a dataset
type Summary struct {
	Mean     float64
	Variance float64
	StdDev   float64
}

// Describe calculates the population mean and variance using gonum
func Describe(numbers []float64) (Summary, error) {
	if err := common.RequireNonEmpty("standardDeviation", numbers, "numbers"); err != nil {
		return Summary{}, err
	}

	mean, variance := stat.PopMeanVariance(numbers, nil)
	return Summary{Mean: mean, Variance: variance, StdDev: gomath.Sqrt(variance)}, nil
}

// StandardDeviation calculates the population standard deviation (denominator n)
func StandardDeviation(numbers []float64) (float64, error) {
	summary, err := Describe(numbers)
	if err != nil {
		return 0, err
	}
	return summary.StdDev, nil
}

// Median returns the middle value, or the mean of the two middle values for
// even-length input. The input is not modified.
func Median(numbers []float64) (float64, error) {
	if err := common.RequireNonEmpty("median", numbers, "numbers"); err != nil {
		return 0, err
	}

	sorted := make([]float64, len(numbers))
	copy(sorted, numbers)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2, nil
	}
	return sorted[mid], nil
}

// Mode returns every value that shares the highest frequency, in ascending
// order, together with that frequency.
func Mode(numbers []float64) ([]float64, int, error) {
	if err := common.RequireNonEmpty("mode", numbers, "numbers"); err != nil {
		return nil, 0, err
	}

	freqMap := make(map[float64]int)
	maxFreq := 0
	for _, n := range numbers {
		freqMap[n]++
		if freqMap[n] > maxFreq {
			maxFreq = freqMap[n]
		}
	}

	modes := make([]float64, 0, len(freqMap))
	for num, freq := range freqMap {
		if freq == maxFreq {
			modes = append(modes, num)
		}
	}
	sort.Float64s(modes)

	return modes, maxFreq, nil
}

// GeometricMean calculates the nth root of the product of n positive numbers
func GeometricMean(numbers []float64) (float64, error) {
	if err := common.RequirePositive("geometricMean", numbers, "numbers"); err != nil {
		return 0, err
	}
	return stat.GeometricMean(numbers, nil), nil
}

// HarmonicMean calculates n divided by the sum of reciprocals of n positive numbers
func HarmonicMean(numbers []float64) (float64, error) {
	if err := common.RequirePositive("harmonicMean", numbers, "numbers"); err != nil {
		return 0, err
	}
	return stat.HarmonicMean(numbers, nil), nil
}
