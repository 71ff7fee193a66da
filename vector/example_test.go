package vector_test

import (
	"fmt"

	"github.com/katalvlaran/descent/vector"
)

// ExampleStep moves a point against a gradient, the basic descent move.
func ExampleStep() {
	theta := []float64{3, 4}
	gradient := []float64{6, 8}

	next, err := vector.Step(theta, gradient, -0.5)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(next)
	// Output:
	// [0 0]
}

// ExampleDistance shows the Euclidean distance between two points.
func ExampleDistance() {
	d, _ := vector.Distance([]float64{1, 1}, []float64{4, 5})
	fmt.Println(d)
	// Output:
	// 5
}
