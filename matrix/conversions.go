// SPDX-License-Identifier: MIT

package matrix

import "gonum.org/v1/gonum/mat"

// ToGonum copies m into a gonum *mat.Dense, for solvers and factorizations
// (QR, SVD, Solve) that live in gonum.
func ToGonum(m *Dense) (*mat.Dense, error) {
	if err := validateNotNil(m); err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	data := make([]float64, len(m.data))
	copy(data, m.data)

	return mat.NewDense(m.r, m.c, data), nil
}

// FromGonum copies any gonum mat.Matrix into a Dense.
//
// Errors:
//   - ErrNilMatrix for a nil src.
//   - ErrInvalidDimensions for an empty src.
func FromGonum(src mat.Matrix) (*Dense, error) {
	if src == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	r, c := src.Dims()
	m, err := MakeMatrix(r, c, src.At)
	if err != nil {
		return nil, matrixErrorf(opFromGonum, err)
	}

	return m, nil
}
