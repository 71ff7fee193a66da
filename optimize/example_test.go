// SPDX-License-Identifier: MIT

package optimize_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/descent/optimize"
	"github.com/katalvlaran/descent/vector"
)

// ExampleMinimizeBatch minimizes Σ θ_i² from (10, 10, 10).
func ExampleMinimizeBatch() {
	f := vector.SumOfSquares
	grad := func(v []float64) []float64 { return vector.ScalarMultiply(2, v) }

	theta, history, err := optimize.MinimizeBatch(f, grad, []float64{10, 10, 10})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	converged := true
	for _, v := range theta {
		converged = converged && math.Abs(v) < 1e-3
	}
	fmt.Println("converged:", converged)
	fmt.Println("first value:", history[0])
	// Output:
	// converged: true
	// first value: 300
}

// ExampleMinimizeStochastic fits y = 2·x through the origin one example at a time.
func ExampleMinimizeStochastic() {
	var xs [][]float64
	var ys []float64
	for i := 1; i <= 10; i++ {
		x := float64(i) / 10
		xs = append(xs, []float64{x})
		ys = append(ys, 2*x)
	}
	loss := func(x []float64, y float64, theta []float64) float64 {
		e := y - theta[0]*x[0]
		return e * e
	}
	grad := func(x []float64, y float64, theta []float64) []float64 {
		return []float64{-2 * (y - theta[0]*x[0]) * x[0]}
	}

	theta, err := optimize.MinimizeStochastic(loss, grad, xs, ys, []float64{0}, optimize.WithSeed(1))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("slope: %.2f\n", theta[0])
	// Output:
	// slope: 2.00
}

// ExampleMaximizeBatch finds the peak of -(θ - 3)².
func ExampleMaximizeBatch() {
	f := func(v []float64) float64 { return -(v[0] - 3) * (v[0] - 3) }
	grad := func(v []float64) []float64 { return []float64{-2 * (v[0] - 3)} }

	theta, _, err := optimize.MaximizeBatch(f, grad, []float64{0})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("peak: %.2f\n", theta[0])
	// Output:
	// peak: 3.00
}

// ExampleSafe shows an undefined evaluation turning into +Inf.
func ExampleSafe() {
	logOf := optimize.Safe(func(v []float64) float64 { return math.Log(v[0]) })
	fmt.Println(logOf([]float64{-1}))
	fmt.Println(logOf([]float64{1}))
	// Output:
	// +Inf
	// 0
}

// ExampleEstimateGradient differentiates x² at 3.
func ExampleEstimateGradient() {
	square := func(v []float64) float64 { return v[0] * v[0] }
	fmt.Printf("%.4f\n", optimize.EstimateGradient(square, []float64{3}, 0)[0])
	// Output:
	// 6.0000
}
