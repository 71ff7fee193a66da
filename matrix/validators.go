// SPDX-License-Identifier: MIT

package matrix

// validateNotNil returns ErrNilMatrix for a nil *Dense.
func validateNotNil(m *Dense) error {
	if m == nil {
		return ErrNilMatrix
	}

	return nil
}

// validateMulCompatible checks a, b non-nil and a.Cols() == b.Rows().
func validateMulCompatible(a, b *Dense) error {
	if a == nil || b == nil {
		return matrixErrorf(opMul, ErrNilMatrix)
	}
	if a.c != b.r {
		return shapeErrorf(opMul, a.r, a.c, b.r, b.c, ErrDimensionMismatch)
	}

	return nil
}
