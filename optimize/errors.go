// SPDX-License-Identifier: MIT

package optimize

import (
	"errors"
	"fmt"
)

// Sentinel errors. Callers match them with errors.Is; the optimizer wraps them
// with the operation name and the offending sizes.
var (
	// ErrEmptyTheta is returned when the initial parameter vector has no elements.
	ErrEmptyTheta = errors.New("optimize: empty parameter vector")

	// ErrDimensionMismatch is returned when a gradient's length differs from len(θ).
	ErrDimensionMismatch = errors.New("optimize: gradient length does not match parameter vector")

	// ErrLengthMismatch is returned when inputs and targets have different lengths.
	ErrLengthMismatch = errors.New("optimize: inputs and targets differ in length")

	// ErrEmptyDataset is returned when stochastic descent receives no examples.
	ErrEmptyDataset = errors.New("optimize: empty dataset")

	// ErrNoImprovement is returned by stochastic descent when no total objective
	// value was ever below +Inf, so no best θ exists.
	ErrNoImprovement = errors.New("optimize: objective never improved on +Inf")
)

// Operation tags for error wrapping.
const (
	opMinimizeBatch      = "MinimizeBatch"
	opMinimizeStochastic = "MinimizeStochastic"
)

// optimizeErrorf wraps err with the operation tag.
func optimizeErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// sizeErrorf wraps err with the operation tag and a got/want size pair.
func sizeErrorf(op, what string, got, want int, err error) error {
	return fmt.Errorf("%s: %s has length %d, want %d: %w", op, what, got, want, err)
}
