// SPDX-License-Identifier: MIT

package optimize

// Objective maps a parameter vector θ to the scalar being optimized.
// It must be callable repeatedly and must not modify θ.
type Objective func(theta []float64) float64

// Gradient maps θ to the vector of partial derivatives of an Objective,
// with len(result) == len(theta). It must not modify θ.
type Gradient func(theta []float64) []float64

// StochasticObjective is the per-example form of an Objective: the loss of a
// single example (x, y) at θ. The total objective is the sum over the dataset.
type StochasticObjective[X, Y any] func(x X, y Y, theta []float64) float64

// StochasticGradient is the gradient of a StochasticObjective with respect to θ
// for a single example (x, y).
type StochasticGradient[X, Y any] func(x X, y Y, theta []float64) []float64

// example pairs an input with its target. The dataset is paired once per run.
type example[X, Y any] struct {
	x X
	y Y
}
