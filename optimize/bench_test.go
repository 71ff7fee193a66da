// SPDX-License-Identifier: MIT

package optimize_test

import (
	"testing"

	"github.com/katalvlaran/descent/optimize"
)

func benchmarkMinimizeBatch(b *testing.B, n int) {
	start := make([]float64, n)
	for i := range start {
		start[i] = float64(i + 1)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := optimize.MinimizeBatch(sumOfSquares, sumOfSquaresGradient, start); err != nil {
			b.Fatalf("MinimizeBatch failed: %v", err)
		}
	}
}

func BenchmarkMinimizeBatch_Dim3(b *testing.B)   { benchmarkMinimizeBatch(b, 3) }
func BenchmarkMinimizeBatch_Dim100(b *testing.B) { benchmarkMinimizeBatch(b, 100) }

func BenchmarkMinimizeStochastic_Linear50(b *testing.B) {
	xs, _, ys := linearData(50, 3, 2, 0.1, 1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := optimize.MinimizeStochastic(linearError, linearErrorGradient, xs, ys, []float64{0, 0}); err != nil {
			b.Fatalf("MinimizeStochastic failed: %v", err)
		}
	}
}

func BenchmarkEstimateGradient_Dim100(b *testing.B) {
	v := make([]float64, 100)
	for i := range v {
		v[i] = float64(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = optimize.EstimateGradient(sumOfSquares, v, 0)
	}
}
