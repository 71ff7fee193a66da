// SPDX-License-Identifier: MIT

package stats

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Mean returns the arithmetic mean of xs.
func Mean(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, statsErrorf(opMean, ErrEmpty)
	}

	return stat.Mean(xs, nil), nil
}

// Median returns the middle value of xs, or the average of the two middle
// values when len(xs) is even. xs is not reordered.
//
// Complexity: O(n log n) time, O(n) space for the sorted copy.
func Median(xs []float64) (float64, error) {
	n := len(xs)
	if n == 0 {
		return 0, statsErrorf(opMedian, ErrEmpty)
	}
	sorted := slices.Clone(xs)
	slices.Sort(sorted)
	mid := n / 2
	if n%2 == 1 {
		return sorted[mid], nil
	}

	return (sorted[mid-1] + sorted[mid]) / 2, nil
}

// DeMean returns xs shifted so that its mean is zero.
func DeMean(xs []float64) ([]float64, error) {
	m, err := Mean(xs)
	if err != nil {
		return nil, statsErrorf(opDeMean, err)
	}
	out := slices.Clone(xs)
	floats.AddConst(-m, out)

	return out, nil
}

// Variance returns the sample variance Σ(x - x̄)² / (n - 1).
func Variance(xs []float64) (float64, error) {
	if len(xs) < 2 {
		return 0, statsErrorf(opVariance, ErrTooFewPoints)
	}

	return stat.Variance(xs, nil), nil
}

// StandardDeviation returns the square root of the sample variance.
func StandardDeviation(xs []float64) (float64, error) {
	v, err := Variance(xs)
	if err != nil {
		return 0, statsErrorf(opStandardDeviation, err)
	}

	return math.Sqrt(v), nil
}

// Covariance returns the sample covariance of the paired samples x and y.
//
// Errors:
//   - ErrLengthMismatch when len(x) != len(y).
//   - ErrTooFewPoints when fewer than two pairs are given.
func Covariance(x, y []float64) (float64, error) {
	if err := pairCheck(opCovariance, x, y); err != nil {
		return 0, err
	}

	return stat.Covariance(x, y, nil), nil
}

// Correlation returns Pearson's correlation coefficient of x and y.
// When either sample has zero standard deviation the correlation is reported
// as 0 rather than NaN.
func Correlation(x, y []float64) (float64, error) {
	if err := pairCheck(opCorrelation, x, y); err != nil {
		return 0, err
	}
	if stat.StdDev(x, nil) == 0 || stat.StdDev(y, nil) == 0 {
		return 0, nil
	}

	return stat.Correlation(x, y, nil), nil
}
