// SPDX-License-Identifier: MIT

package regression

import "github.com/pkg/errors"

var (
	// ErrEmptyDataset indicates that no examples were given.
	ErrEmptyDataset = errors.New("regression: empty dataset")

	// ErrLengthMismatch indicates that inputs and targets differ in length.
	ErrLengthMismatch = errors.New("regression: inputs and targets differ in length")

	// ErrNoFeatures indicates that the first example has no features.
	ErrNoFeatures = errors.New("regression: example has no features")

	// ErrInvalidFraction indicates a split fraction outside [0, 1].
	ErrInvalidFraction = errors.New("regression: fraction must be in [0, 1]")
)

// validateDataset checks the shape every estimator relies on.
func validateDataset(x [][]float64, y []float64) error {
	if len(x) != len(y) {
		return errors.Wrapf(ErrLengthMismatch, "%d inputs, %d targets", len(x), len(y))
	}
	if len(x) == 0 {
		return errors.WithStack(ErrEmptyDataset)
	}
	if len(x[0]) == 0 {
		return errors.WithStack(ErrNoFeatures)
	}
	for i, xi := range x {
		if len(xi) != len(x[0]) {
			return errors.Wrapf(ErrLengthMismatch, "example %d has %d features, want %d", i, len(xi), len(x[0]))
		}
	}

	return nil
}
