// SPDX-License-Identifier: MIT

package regression

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/descent/matrix"
)

// Scale returns the mean and sample standard deviation of every column of data.
func Scale(data [][]float64) (means, stdevs []float64, err error) {
	m, err := matrix.NewDenseFromRows(data)
	if err != nil {
		return nil, nil, errors.Wrap(err, "scale")
	}
	if means, err = matrix.ColumnMeans(m); err != nil {
		return nil, nil, errors.Wrap(err, "scale")
	}
	if stdevs, err = matrix.ColumnStdDevs(m); err != nil {
		return nil, nil, errors.Wrap(err, "scale")
	}

	return means, stdevs, nil
}

// Rescale returns a copy of data in which every column has mean 0 and standard
// deviation 1. Columns with no deviation (such as the constant intercept
// column) are left alone. data is not modified.
func Rescale(data [][]float64) ([][]float64, error) {
	m, err := matrix.NewDenseFromRows(data)
	if err != nil {
		return nil, errors.Wrap(err, "rescale")
	}
	scaled, _, _, err := matrix.Rescale(m)
	if err != nil {
		return nil, errors.Wrap(err, "rescale")
	}

	return scaled.RawRows(), nil
}
