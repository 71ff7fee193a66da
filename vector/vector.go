// SPDX-License-Identifier: MIT

package vector

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Clone returns an independent copy of v. A nil v yields an empty, non-nil slice.
func Clone(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)

	return out
}

// Add returns v + w element-wise.
//
// Errors:
//   - ErrDimensionMismatch when len(v) != len(w).
//
// Complexity: O(n) time, O(n) space.
func Add(v, w []float64) ([]float64, error) {
	if err := sameLen(opAdd, v, w); err != nil {
		return nil, err
	}

	return floats.AddTo(make([]float64, len(v)), v, w), nil
}

// Subtract returns v - w element-wise.
//
// Errors:
//   - ErrDimensionMismatch when len(v) != len(w).
//
// Complexity: O(n) time, O(n) space.
func Subtract(v, w []float64) ([]float64, error) {
	if err := sameLen(opSubtract, v, w); err != nil {
		return nil, err
	}

	return floats.SubTo(make([]float64, len(v)), v, w), nil
}

// Sum adds any number of equally sized vectors.
// Implementation:
//   - Stage 1: reject an empty argument list (ErrEmpty).
//   - Stage 2: accumulate left to right into a copy of the first vector.
//
// Errors:
//   - ErrEmpty when no vectors are given.
//   - ErrDimensionMismatch when any vector differs in length from the first.
//
// Complexity: O(k·n) time, O(n) space.
func Sum(vs ...[]float64) ([]float64, error) {
	if len(vs) == 0 {
		return nil, vectorErrorf(opSum, 0, 0, ErrEmpty)
	}
	acc := Clone(vs[0])
	for _, v := range vs[1:] {
		if err := sameLen(opSum, acc, v); err != nil {
			return nil, err
		}
		floats.Add(acc, v)
	}

	return acc, nil
}

// ScalarMultiply returns c·v.
func ScalarMultiply(c float64, v []float64) []float64 {
	return floats.ScaleTo(make([]float64, len(v)), c, v)
}

// Negate returns -v.
func Negate(v []float64) []float64 {
	return ScalarMultiply(-1, v)
}

// Mean returns the component-wise mean of the given vectors.
//
// Errors:
//   - ErrEmpty when no vectors are given.
//   - ErrDimensionMismatch on unequal lengths.
func Mean(vs ...[]float64) ([]float64, error) {
	if len(vs) == 0 {
		return nil, vectorErrorf(opMean, 0, 0, ErrEmpty)
	}
	sum, err := Sum(vs...)
	if err != nil {
		return nil, err
	}
	floats.Scale(1/float64(len(vs)), sum)

	return sum, nil
}

// Dot returns Σ v_i·w_i.
//
// Errors:
//   - ErrDimensionMismatch when len(v) != len(w).
func Dot(v, w []float64) (float64, error) {
	if err := sameLen(opDot, v, w); err != nil {
		return 0, err
	}

	return floats.Dot(v, w), nil
}

// SumOfSquares returns v·v.
func SumOfSquares(v []float64) float64 {
	return floats.Dot(v, v)
}

// Magnitude returns the Euclidean norm of v.
func Magnitude(v []float64) float64 {
	return math.Sqrt(SumOfSquares(v))
}

// SquaredDistance returns Σ (v_i - w_i)².
// The value is computed from the difference vector rather than by squaring
// Distance, so it carries no square-root rounding.
func SquaredDistance(v, w []float64) (float64, error) {
	if err := sameLen(opSquaredDistance, v, w); err != nil {
		return 0, err
	}
	diff := floats.SubTo(make([]float64, len(v)), v, w)

	return SumOfSquares(diff), nil
}

// Distance returns the Euclidean distance between v and w.
func Distance(v, w []float64) (float64, error) {
	if err := sameLen(opDistance, v, w); err != nil {
		return 0, err
	}

	return floats.Distance(v, w, 2), nil
}

// Step moves size units from v along direction: v + size·direction.
// A negative size moves against the direction, which is how descent uses it.
//
// Errors:
//   - ErrDimensionMismatch when len(v) != len(direction).
//
// Complexity: O(n) time, O(n) space. v and direction are not modified.
func Step(v, direction []float64, size float64) ([]float64, error) {
	if err := sameLen(opStep, v, direction); err != nil {
		return nil, err
	}

	return floats.AddScaledTo(make([]float64, len(v)), v, size, direction), nil
}
