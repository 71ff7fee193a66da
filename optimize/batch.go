// SPDX-License-Identifier: MIT

package optimize

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/descent/vector"
)

// MinimizeBatch finds θ minimizing target by full-gradient descent.
//
// Algorithm Outline:
//  1. Wrap target with Safe once; every later evaluation uses the wrapped form.
//  2. value = target(θ₀).
//  3. Repeat:
//     a. append value to history;
//     b. g = gradient(θ);
//     c. for each step size s in the ladder (largest first) build θ - s·g;
//     d. pick the candidate with the smallest objective; the FIRST minimal
//     candidate in ladder order wins ties;
//     e. if |value - next| < tolerance: append next to history and return the
//     CURRENT θ (not the candidate) together with history;
//     f. otherwise θ, value = candidate, next.
//
// The early return in 3e is a deliberate contract: the returned θ is the last
// committed point, while history already holds the value the rejected step would
// have reached. Consequently target(θ) == history[len(history)-2].
//
// When every candidate evaluates to +Inf the first candidate is still selected
// and a warning is logged. Two consecutive equal infinities count as no improvement,
// so the run then ends at the next tolerance check.
//
// Inputs:
//   - target:   objective; failures are absorbed by Safe.
//   - gradient: must be total over the reachable region; it is not guarded.
//   - theta0:   initial guess; copied, never modified.
//   - opts:     WithTolerance, WithStepSizes, WithLogger.
//
// Returns:
//   - theta:   last committed parameter vector (fresh slice).
//   - history: objective values, one per iteration plus the final would-be value.
//
// Errors:
//   - ErrEmptyTheta when len(theta0) == 0.
//   - ErrDimensionMismatch when gradient returns a vector of the wrong length.
//
// Complexity:
//   - Per iteration: one gradient call and len(ladder) objective calls, O(len(ladder)·n) space.
func MinimizeBatch(target Objective, gradient Gradient, theta0 []float64, opts ...Option) ([]float64, []float64, error) {
	if len(theta0) == 0 {
		return nil, nil, optimizeErrorf(opMinimizeBatch, ErrEmptyTheta)
	}
	o := gatherOptions(opts...)
	safeTarget := Safe(target)

	theta := vector.Clone(theta0)
	value := safeTarget(theta)
	history := make([]float64, 0, 16)

	var (
		iteration int
		grad      []float64
		next      []float64
		nextValue float64
		stepSize  float64
		err       error
	)
	for iteration = 0; ; iteration++ {
		history = append(history, value)

		grad = gradient(theta)
		if len(grad) != len(theta) {
			return nil, nil, sizeErrorf(opMinimizeBatch, "gradient", len(grad), len(theta), ErrDimensionMismatch)
		}

		next, nextValue, stepSize, err = bestCandidate(safeTarget, theta, grad, o.stepSizes)
		if err != nil {
			return nil, nil, optimizeErrorf(opMinimizeBatch, err)
		}
		if math.IsInf(nextValue, 1) {
			o.logger.WithFields(logrus.Fields{
				"iteration": iteration,
				"value":     value,
				"step":      stepSize,
			}).Warn("every candidate step evaluates to +Inf; taking the first one")
		}
		o.logger.WithFields(logrus.Fields{
			"iteration": iteration,
			"value":     value,
			"next":      nextValue,
			"step":      stepSize,
		}).Debug("batch descent iteration")

		if improvement(value, nextValue) < o.tolerance {
			history = append(history, nextValue)

			return theta, history, nil
		}
		theta, value = next, nextValue
	}
}

// bestCandidate evaluates θ - s·g for every s in sizes and returns the candidate
// with the smallest objective value, its value and the step size that produced it.
// Only a strictly smaller value displaces the current best, so ties keep the
// earliest candidate, and an all-+Inf ladder yields the first candidate.
func bestCandidate(f Objective, theta, grad, sizes []float64) ([]float64, float64, float64, error) {
	var (
		best      []float64
		bestValue float64
		bestStep  float64
	)
	for k, s := range sizes {
		candidate, err := vector.Step(theta, grad, -s)
		if err != nil {
			return nil, 0, 0, err
		}
		v := f(candidate)
		if k == 0 || v < bestValue {
			best, bestValue, bestStep = candidate, v, s
		}
	}

	return best, bestValue, bestStep, nil
}

// improvement returns |value - next|, treating two equal infinities as no change
// (their difference would otherwise be NaN and never meet the tolerance).
func improvement(value, next float64) float64 {
	if math.IsInf(value, 0) && value == next {
		return 0
	}

	return math.Abs(value - next)
}
