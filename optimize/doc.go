// Package optimize minimizes and maximizes differentiable objectives by
// gradient descent, from first principles.
//
// 🚀 What is in here?
//
//   - MinimizeBatch: full-gradient descent with a fixed ladder of step sizes
//     re-tried every iteration; the best candidate wins.
//   - MinimizeStochastic: per-example descent over a shuffled dataset with a
//     decaying, resettable learning rate and a patience stop.
//   - MaximizeBatch / MaximizeStochastic: the same engines applied to the
//     negated objective and gradient.
//   - EstimateGradient / NumericalGradient: central finite differences for
//     objectives without an analytic gradient.
//   - Safe: turns objective failures (panics, NaN) into +Inf so that a bad
//     candidate step is simply never selected.
//
// ⚙️ Usage:
//
//	sumSq := func(v []float64) float64 { return vector.SumOfSquares(v) }
//	grad := func(v []float64) []float64 { return vector.ScalarMultiply(2, v) }
//
//	theta, history, err := optimize.MinimizeBatch(sumSq, grad, []float64{10, 10, 10})
//
// Contracts worth knowing:
//
//   - θ is never mutated in place. Every iteration produces a fresh vector and the
//     caller's initial guess is copied.
//   - MinimizeBatch stops when one more step would improve the objective by less
//     than the tolerance. It then returns the θ from BEFORE that step, while the
//     history ends with the value that step would have reached.
//   - Objective failures never leave the optimizer. Gradient failures do: a
//     panicking gradient propagates, a wrongly sized one is ErrDimensionMismatch.
//   - Randomness (MinimizeStochastic shuffles) comes only from the *rand.Rand
//     passed through WithRand/WithSeed. Without either, a fixed default seed is
//     used so runs are reproducible.
//
// Concurrency:
//
//	Every call owns its θ, step-size and history state. Calls may run in parallel
//	as long as they do not share a *rand.Rand (math/rand.Rand is not goroutine-safe).
package optimize
