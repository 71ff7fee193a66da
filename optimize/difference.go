// SPDX-License-Identifier: MIT

package optimize

// PartialDifferenceQuotient estimates ∂f/∂v_i at v by central differences:
//
//	(f(v + eps·e_i) - f(v - eps·e_i)) / (2·eps)
//
// The truncation error is O(eps²) for smooth f; rounding error grows as eps
// shrinks, so the caller picks the scale. A non-positive eps means
// DefaultEpsilon. v is not modified. Panics if i is out of range.
//
// Complexity: two evaluations of f, O(n) extra space.
func PartialDifferenceQuotient(f Objective, v []float64, i int, eps float64) float64 {
	if eps <= 0 {
		eps = DefaultEpsilon
	}
	lo := make([]float64, len(v))
	hi := make([]float64, len(v))
	copy(lo, v)
	copy(hi, v)
	lo[i] -= eps
	hi[i] += eps

	return (f(hi) - f(lo)) / (2 * eps)
}

// EstimateGradient applies PartialDifferenceQuotient to every coordinate of v
// and returns a vector of the same length.
//
// Complexity: 2·len(v) evaluations of f.
func EstimateGradient(f Objective, v []float64, eps float64) []float64 {
	grad := make([]float64, len(v))
	for i := range v {
		grad[i] = PartialDifferenceQuotient(f, v, i, eps)
	}

	return grad
}

// NumericalGradient adapts f into a Gradient backed by EstimateGradient. It is the
// fallback for objectives without an analytic gradient:
//
//	theta, history, err := MinimizeBatch(f, NumericalGradient(f, 0), theta0)
func NumericalGradient(f Objective, eps float64) Gradient {
	return func(theta []float64) []float64 {
		return EstimateGradient(f, theta, eps)
	}
}
