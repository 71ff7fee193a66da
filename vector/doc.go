// Package vector implements the small slice-based linear algebra used by the
// optimizer and its callers: element-wise add/subtract, scalar multiply,
// dot product, magnitudes, distances and the "step" move along a direction.
//
// Vectors are plain []float64. Every function returns a fresh slice and never
// writes into its arguments, so a value handed to the optimizer stays valid to
// inspect after later iterations.
//
// Length policy:
//
//	Two-operand functions require equal lengths and return ErrDimensionMismatch
//	otherwise. Nothing is silently truncated to the shorter operand.
//
// Kernels delegate to gonum.org/v1/gonum/floats once lengths are validated
// (floats panics on mismatched lengths, so validation always comes first).
//
//	sum, err := vector.Add([]float64{1, 2}, []float64{3, 4}) // [4 6]
//	d, err := vector.Distance([]float64{0, 0}, []float64{3, 4}) // 5
package vector
