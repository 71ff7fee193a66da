// SPDX-License-Identifier: MIT
// Package matrix: linear-algebra kernels over *Dense.
//
// All kernels allocate a fresh result and never mutate their operands.
// Loop orders are fixed (i→k→j for Mul, i→j elsewhere).

package matrix

import "fmt"

// Mul returns the matrix product a·b.
//
// Implementation:
//   - Stage 1: validate a.Cols() == b.Rows(); the error reports both shapes.
//   - Stage 2: i→k→j accumulation over the flat buffers, skipping zero a[i,k].
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b *Dense) (*Dense, error) {
	if err := validateMulCompatible(a, b); err != nil {
		return nil, err
	}
	res := &Dense{r: a.r, c: b.c, data: make([]float64, a.r*b.c)}

	var (
		i, j, k               int
		av                    float64
		rowA, rowB, rowResult int
	)
	for i = 0; i < a.r; i++ {
		rowA = i * a.c
		rowResult = i * b.c
		for k = 0; k < a.c; k++ {
			av = a.data[rowA+k]
			if av == 0 {
				continue
			}
			rowB = k * b.c
			for j = 0; j < b.c; j++ {
				res.data[rowResult+j] += av * b.data[rowB+j]
			}
		}
	}

	return res, nil
}

// MatVec computes y = m·x.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch when len(x) != m.Cols().
//
// Complexity: O(r*c) time, O(r) space.
func MatVec(m *Dense, x []float64) ([]float64, error) {
	if err := validateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if len(x) != m.c {
		return nil, fmt.Errorf("%s: vector length %d, want %d: %w", opMatVec, len(x), m.c, ErrDimensionMismatch)
	}
	y := make([]float64, m.r)
	var i, j, base int
	var acc float64
	for i = 0; i < m.r; i++ {
		acc = 0
		base = i * m.c
		for j = 0; j < m.c; j++ {
			acc += m.data[base+j] * x[j]
		}
		y[i] = acc
	}

	return y, nil
}

// Transpose returns mᵀ.
func Transpose(m *Dense) (*Dense, error) {
	if err := validateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	t := &Dense{r: m.c, c: m.r, data: make([]float64, len(m.data))}
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			t.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return t, nil
}
