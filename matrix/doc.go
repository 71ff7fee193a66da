// SPDX-License-Identifier: MIT

// Package matrix provides a small row-major Dense matrix for data-science style
// work: a dataset is a matrix whose rows are examples and whose columns are
// features.
//
// The matrix package provides:
//
//   - Dense construction from a shape, from rows, from an entry function, or as
//     an identity, with bounds-checked At/Set that return errors instead of panicking.
//   - Row and Column extraction (copies), Shape, Clone and a readable String.
//   - Mul, MatVec and Transpose with strict dimension checks.
//   - Column statistics (ColumnMeans, ColumnStdDevs) and Rescale, which
//     z-scores every column that has a non-zero standard deviation.
//   - ToGonum / FromGonum bridges to gonum's mat.Dense for factorizations this
//     package deliberately does not implement.
//
// Determinism:
//
//	All loops run in fixed i→j order. Nothing here is random.
//
// Complexity quicksheet:
//
//	NewDense O(r·c); At/Set O(1); Row O(c); Column O(r); Mul O(r·n·c);
//	MatVec O(r·c); ColumnMeans/ColumnStdDevs/Rescale O(r·c).
package matrix
