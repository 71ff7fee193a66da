// SPDX-License-Identifier: MIT

package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch indicates operands of different lengths.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrEmpty indicates that an aggregate (Sum, Mean) received no vectors.
	ErrEmpty = errors.New("vector: no vectors given")
)

// Operation tags used when wrapping sentinels.
const (
	opAdd             = "Add"
	opSubtract        = "Subtract"
	opSum             = "Sum"
	opMean            = "Mean"
	opDot             = "Dot"
	opSquaredDistance = "SquaredDistance"
	opDistance        = "Distance"
	opStep            = "Step"
)

// vectorErrorf wraps err with the operation tag and the offending lengths.
func vectorErrorf(op string, n, m int, err error) error {
	return fmt.Errorf("vector.%s(len %d, len %d): %w", op, n, m, err)
}

// sameLen returns a wrapped ErrDimensionMismatch when len(v) != len(w).
func sameLen(op string, v, w []float64) error {
	if len(v) != len(w) {
		return vectorErrorf(op, len(v), len(w), ErrDimensionMismatch)
	}

	return nil
}
