// SPDX-License-Identifier: MIT
// Package matrix: column statistics for datasets (rows = examples, columns = features).
//
// Exposed API:
//   - ColumnMeans(X)   -> means (len = cols)
//   - ColumnStdDevs(X) -> sample standard deviations (n-1 denominator)
//   - Rescale(X)       -> copy with every non-degenerate column z-scored
//
// Columns are gathered once and handed to gonum/stat, which owns the numerics.

package matrix

import "gonum.org/v1/gonum/stat"

// ColumnMeans returns the arithmetic mean of every column.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity: O(r*c).
func ColumnMeans(X *Dense) ([]float64, error) {
	if err := validateNotNil(X); err != nil {
		return nil, matrixErrorf(opColumnMeans, err)
	}
	means := make([]float64, X.c)
	for j := range means {
		means[j] = stat.Mean(X.column(j), nil)
	}

	return means, nil
}

// ColumnStdDevs returns the sample standard deviation of every column.
//
// Errors:
//   - ErrNilMatrix.
//   - ErrTooFewRows when X has a single row (the sample statistic is undefined).
//
// Complexity: O(r*c).
func ColumnStdDevs(X *Dense) ([]float64, error) {
	if err := validateNotNil(X); err != nil {
		return nil, matrixErrorf(opColumnStdDevs, err)
	}
	if X.r < 2 {
		return nil, matrixErrorf(opColumnStdDevs, ErrTooFewRows)
	}
	stds := make([]float64, X.c)
	for j := range stds {
		stds[j] = stat.StdDev(X.column(j), nil)
	}

	return stds, nil
}

// Rescale returns a copy of X in which every column with a positive standard
// deviation is replaced by its z-scores (x - mean) / std. Columns with zero
// deviation, such as a constant bias column of ones, are copied unchanged.
//
// Implementation:
//   - Stage 1: means and sample standard deviations per column.
//   - Stage 2: i→j pass writing the transformed copy.
//
// Returns:
//   - *Dense: the rescaled copy; X is not modified.
//   - []float64, []float64: the means and standard deviations used, so callers
//     can map predictions or coefficients back to the original scale.
//
// Errors:
//   - ErrNilMatrix, ErrTooFewRows.
//
// Complexity: O(r*c).
func Rescale(X *Dense) (*Dense, []float64, []float64, error) {
	means, err := ColumnMeans(X)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opRescale, err)
	}
	stds, err := ColumnStdDevs(X)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opRescale, err)
	}

	out := X.Clone()
	var i, j, base int
	for i = 0; i < out.r; i++ {
		base = i * out.c
		for j = 0; j < out.c; j++ {
			if stds[j] > 0 {
				out.data[base+j] = (out.data[base+j] - means[j]) / stds[j]
			}
		}
	}

	return out, means, stds, nil
}
