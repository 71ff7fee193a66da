// SPDX-License-Identifier: MIT

package optimize

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/descent/vector"
)

// MinimizeStochastic finds θ minimizing Σ_i target(x[i], y[i], θ) by stochastic
// gradient descent and returns the best θ seen.
//
// Algorithm Outline:
//  1. Pair x and y into a fixed dataset once.
//  2. best = none, bestValue = +Inf, stale = 0, α = α₀.
//  3. While stale < patience:
//     a. total = Σ target(x_i, y_i, θ) at the current θ (comparison only);
//     b. if total < bestValue: remember (θ, total), stale = 0, α = α₀;
//     otherwise stale++, α *= decay;
//     c. materialize a fresh random permutation of the examples and, in that
//     order, set θ = θ - α·gradient(x_i, y_i, θ), each gradient taken at the
//     θ produced by the previous update.
//  4. Return the remembered θ.
//
// Behavior highlights:
//   - α is never bounded below; it only shrinks or resets to α₀.
//   - The per-example objective is wrapped with SafeStochastic, so a failing
//     example contributes +Inf to the total instead of aborting the run.
//   - θ is replaced, never mutated, so the remembered best stays intact.
//
// Inputs:
//   - target, gradient: per-example objective and gradient.
//   - x, y:   inputs and targets, paired by index; lengths must match.
//   - theta0: initial guess; copied, never modified.
//   - opts:   WithLearningRate, WithDecay, WithPatience, WithRand/WithSeed, WithLogger.
//
// Errors:
//   - ErrEmptyTheta, ErrEmptyDataset, ErrLengthMismatch on malformed input.
//   - ErrDimensionMismatch when gradient returns a vector of the wrong length.
//   - ErrNoImprovement when no total was ever below +Inf.
//
// Determinism:
//   - For a fixed seed (or an identically seeded WithRand) the result is identical
//     across runs.
//
// Complexity:
//   - Per outer iteration: n objective calls, n gradient calls, O(n + len(θ)) space.
func MinimizeStochastic[X, Y any](
	target StochasticObjective[X, Y],
	gradient StochasticGradient[X, Y],
	x []X,
	y []Y,
	theta0 []float64,
	opts ...Option,
) ([]float64, error) {
	data, err := pairExamples(x, y)
	if err != nil {
		return nil, err
	}
	if len(theta0) == 0 {
		return nil, optimizeErrorf(opMinimizeStochastic, ErrEmptyTheta)
	}
	o := gatherOptions(opts...)
	safeTarget := SafeStochastic(target)

	var (
		theta     = vector.Clone(theta0)
		alpha     = o.learningRate
		best      []float64
		bestValue = math.Inf(1)
		stale     int
		iteration int
		order     = make([]int, len(data))
		total     float64
		grad      []float64
	)
	for stale < o.patience {
		total = 0
		for _, ex := range data {
			total += safeTarget(ex.x, ex.y, theta)
		}

		if total < bestValue {
			best, bestValue = theta, total
			stale = 0
			alpha = o.learningRate
			o.logger.WithFields(logrus.Fields{
				"iteration": iteration,
				"value":     total,
			}).Debug("stochastic descent found a new minimum")
		} else {
			stale++
			alpha *= o.decay
		}

		shuffleOrder(order, o.rng)
		for _, idx := range order {
			grad = gradient(data[idx].x, data[idx].y, theta)
			if len(grad) != len(theta) {
				return nil, sizeErrorf(opMinimizeStochastic, "gradient", len(grad), len(theta), ErrDimensionMismatch)
			}
			theta, err = vector.Step(theta, grad, -alpha)
			if err != nil {
				return nil, optimizeErrorf(opMinimizeStochastic, err)
			}
		}
		iteration++
	}

	o.logger.WithFields(logrus.Fields{
		"iterations": iteration,
		"value":      bestValue,
		"alpha":      alpha,
		"stale":      stale,
	}).Debug("stochastic descent stopped")

	if best == nil {
		return nil, optimizeErrorf(opMinimizeStochastic, ErrNoImprovement)
	}

	return vector.Clone(best), nil
}

// pairExamples zips x and y into one dataset, rejecting unequal or empty inputs
// rather than truncating to the shorter one.
func pairExamples[X, Y any](x []X, y []Y) ([]example[X, Y], error) {
	if len(x) != len(y) {
		return nil, sizeErrorf(opMinimizeStochastic, "targets", len(y), len(x), ErrLengthMismatch)
	}
	if len(x) == 0 {
		return nil, optimizeErrorf(opMinimizeStochastic, ErrEmptyDataset)
	}
	data := make([]example[X, Y], len(x))
	for i := range x {
		data[i] = example[X, Y]{x: x[i], y: y[i]}
	}

	return data, nil
}
