// SPDX-License-Identifier: MIT

package stats

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty indicates a statistic was requested over no data.
	ErrEmpty = errors.New("stats: empty input")

	// ErrTooFewPoints indicates a sample statistic needs at least two points.
	ErrTooFewPoints = errors.New("stats: at least two points required")

	// ErrLengthMismatch indicates paired inputs of different lengths.
	ErrLengthMismatch = errors.New("stats: inputs differ in length")
)

const (
	opMean              = "Mean"
	opMedian            = "Median"
	opDeMean            = "DeMean"
	opVariance          = "Variance"
	opStandardDeviation = "StandardDeviation"
	opCovariance        = "Covariance"
	opCorrelation       = "Correlation"
)

func statsErrorf(op string, err error) error {
	return fmt.Errorf("stats.%s: %w", op, err)
}

// pairCheck validates two paired samples for covariance-style statistics.
func pairCheck(op string, x, y []float64) error {
	if len(x) != len(y) {
		return fmt.Errorf("stats.%s(len %d, len %d): %w", op, len(x), len(y), ErrLengthMismatch)
	}
	if len(x) < 2 {
		return statsErrorf(op, ErrTooFewPoints)
	}

	return nil
}
