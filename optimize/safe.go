// SPDX-License-Identifier: MIT

package optimize

import "math"

// Safe returns an Objective with the same signature as f that evaluates to +Inf
// whenever f fails, instead of propagating the failure.
//
// A failure is either:
//   - a panic raised during f (index errors, explicit panics, ...), or
//   - a NaN result, which is how Go surfaces undefined arithmetic such as
//     math.Log(-1) or math.Sqrt(-1).
//
// -Inf is a legitimate value and is passed through unchanged.
//
// Batch descent wraps its target exactly once with Safe, so a candidate step that
// lands in an undefined region is treated as infinitely bad and never selected
// over a finite candidate.
func Safe(f Objective) Objective {
	return func(theta []float64) float64 {
		return guard(func() float64 { return f(theta) })
	}
}

// SafeStochastic is Safe for per-example objectives.
func SafeStochastic[X, Y any](f StochasticObjective[X, Y]) StochasticObjective[X, Y] {
	return func(x X, y Y, theta []float64) float64 {
		return guard(func() float64 { return f(x, y, theta) })
	}
}

// guard evaluates fn, mapping a recovered panic or a NaN result to +Inf.
func guard(fn func() float64) (value float64) {
	defer func() {
		if r := recover(); r != nil {
			value = math.Inf(1)
		}
	}()
	value = fn()
	if math.IsNaN(value) {
		value = math.Inf(1)
	}

	return value
}
