// SPDX-License-Identifier: MIT

package optimize

import "github.com/katalvlaran/descent/vector"

// Negate returns the Objective θ ↦ -f(θ).
func Negate(f Objective) Objective {
	return func(theta []float64) float64 { return -f(theta) }
}

// NegateAll returns the Gradient θ ↦ -g(θ), negated element-wise.
func NegateAll(g Gradient) Gradient {
	return func(theta []float64) []float64 { return vector.Negate(g(theta)) }
}

// NegateStochastic is Negate for per-example objectives.
func NegateStochastic[X, Y any](f StochasticObjective[X, Y]) StochasticObjective[X, Y] {
	return func(x X, y Y, theta []float64) float64 { return -f(x, y, theta) }
}

// NegateAllStochastic is NegateAll for per-example gradients.
func NegateAllStochastic[X, Y any](g StochasticGradient[X, Y]) StochasticGradient[X, Y] {
	return func(x X, y Y, theta []float64) []float64 { return vector.Negate(g(x, y, theta)) }
}

// MaximizeBatch finds θ maximizing target by running MinimizeBatch on the
// negated objective and gradient. The returned history therefore holds the
// NEGATED objective values, exactly as the minimizer observed them.
func MaximizeBatch(target Objective, gradient Gradient, theta0 []float64, opts ...Option) ([]float64, []float64, error) {
	return MinimizeBatch(Negate(target), NegateAll(gradient), theta0, opts...)
}

// MaximizeStochastic finds θ maximizing Σ_i target(x[i], y[i], θ) by running
// MinimizeStochastic on the negated per-example objective and gradient.
func MaximizeStochastic[X, Y any](
	target StochasticObjective[X, Y],
	gradient StochasticGradient[X, Y],
	x []X,
	y []Y,
	theta0 []float64,
	opts ...Option,
) ([]float64, error) {
	return MinimizeStochastic(NegateStochastic(target), NegateAllStochastic(gradient), x, y, theta0, opts...)
}
