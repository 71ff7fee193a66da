// SPDX-License-Identifier: MIT

package regression

import (
	"math/rand"

	"github.com/pkg/errors"
)

// SplitData partitions data into two groups: each element independently goes
// to the first group with probability prob and to the second otherwise.
// Relative order is preserved inside each group.
//
// Errors:
//   - ErrInvalidFraction when prob is outside [0, 1] or NaN.
func SplitData[T any](data []T, prob float64, rng *rand.Rand) (first, second []T, err error) {
	if !(prob >= 0 && prob <= 1) {
		return nil, nil, errors.Wrapf(ErrInvalidFraction, "split data: prob %v", prob)
	}
	for _, row := range data {
		if rng.Float64() < prob {
			first = append(first, row)
		} else {
			second = append(second, row)
		}
	}

	return first, second, nil
}

// TrainTestSplit holds out roughly testPct of the paired examples (x[i], y[i])
// for testing. Pairs stay together.
//
// Errors:
//   - ErrLengthMismatch when len(x) != len(y).
//   - ErrInvalidFraction when testPct is outside [0, 1].
func TrainTestSplit[X, Y any](x []X, y []Y, testPct float64, rng *rand.Rand) (xTrain, xTest []X, yTrain, yTest []Y, err error) {
	if len(x) != len(y) {
		return nil, nil, nil, nil, errors.Wrapf(ErrLengthMismatch, "train test split: %d inputs, %d targets", len(x), len(y))
	}
	idx := make([]int, len(x))
	for i := range idx {
		idx[i] = i
	}
	train, test, err := SplitData(idx, 1-testPct, rng)
	if err != nil {
		return nil, nil, nil, nil, errors.Wrap(err, "train test split")
	}
	for _, i := range train {
		xTrain = append(xTrain, x[i])
		yTrain = append(yTrain, y[i])
	}
	for _, i := range test {
		xTest = append(xTest, x[i])
		yTest = append(yTest, y[i])
	}

	return xTrain, xTest, yTrain, yTest, nil
}
