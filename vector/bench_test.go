package vector_test

import (
	"testing"

	"github.com/katalvlaran/descent/vector"
)

// benchmarkStep runs Step on vectors of length n.
func benchmarkStep(b *testing.B, n int) {
	v := make([]float64, n)
	dir := make([]float64, n)
	for i := 0; i < n; i++ {
		v[i] = float64(i)
		dir[i] = float64(n - i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := vector.Step(v, dir, -0.01); err != nil {
			b.Fatalf("Step failed: %v", err)
		}
	}
}

func BenchmarkStep_Small(b *testing.B)  { benchmarkStep(b, 8) }
func BenchmarkStep_Medium(b *testing.B) { benchmarkStep(b, 1024) }
