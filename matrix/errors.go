// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every public function returns one of these sentinels, wrapped with the
// operation name (and coordinates or shapes where they help), so callers match
// with errors.Is. Nothing on the public surface panics on user input.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operands, e.g. Mul where
	// a.Cols() != b.Rows(), or a vector whose length differs from Cols().
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrRagged indicates that the rows given to NewDenseFromRows differ in length.
	ErrRagged = errors.New("matrix: rows have different lengths")

	// ErrNilMatrix indicates that a nil *Dense was passed in.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrTooFewRows indicates that a sample statistic needs at least two rows.
	ErrTooFewRows = errors.New("matrix: at least two rows required")
)

// Method and operation tags used in error wrappers.
const (
	ctxAt     = "At"
	ctxSet    = "Set"
	ctxRow    = "Row"
	ctxColumn = "Column"

	opNewDense      = "NewDense"
	opFromRows      = "NewDenseFromRows"
	opMakeMatrix    = "MakeMatrix"
	opIdentity      = "NewIdentity"
	opMul           = "Mul"
	opMatVec        = "MatVec"
	opTranspose     = "Transpose"
	opColumnMeans   = "ColumnMeans"
	opColumnStdDevs = "ColumnStdDevs"
	opRescale       = "Rescale"
	opToGonum       = "ToGonum"
	opFromGonum     = "FromGonum"
)

// denseErrorf wraps err with a Dense method tag and the offending coordinates.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// matrixErrorf wraps err with an operation tag. Call it only with err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// shapeErrorf reports both operand shapes, e.g. "Mul: 2×3 by 2×2: matrix: dimension mismatch".
func shapeErrorf(tag string, ar, ac, br, bc int, err error) error {
	return fmt.Errorf("%s: %d×%d by %d×%d: %w", tag, ar, ac, br, bc, err)
}
