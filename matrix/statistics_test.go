// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/descent/matrix"
)

var approx = cmpopts.EquateApprox(0, 1e-12)

func TestColumnMeansAndStdDevs(t *testing.T) {
	t.Parallel()

	X := mustRows(t, [][]float64{{1, 10, 5}, {2, 20, 5}, {3, 30, 5}})

	means, err := matrix.ColumnMeans(X)
	require.NoError(t, err)
	assert.True(t, cmp.Equal([]float64{2, 20, 5}, means, approx), cmp.Diff([]float64{2, 20, 5}, means))

	stds, err := matrix.ColumnStdDevs(X)
	require.NoError(t, err)
	assert.True(t, cmp.Equal([]float64{1, 10, 0}, stds, approx), cmp.Diff([]float64{1, 10, 0}, stds))
}

func TestColumnStdDevs_TooFewRows(t *testing.T) {
	t.Parallel()

	_, err := matrix.ColumnStdDevs(mustRows(t, [][]float64{{1, 2}}))
	assert.ErrorIs(t, err, matrix.ErrTooFewRows)

	_, _, _, err = matrix.Rescale(mustRows(t, [][]float64{{1, 2}}))
	assert.ErrorIs(t, err, matrix.ErrTooFewRows)

	_, err = matrix.ColumnMeans(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestRescale(t *testing.T) {
	t.Parallel()

	// the first column is a constant bias term and must survive unchanged
	X := mustRows(t, [][]float64{{1, 20, -1}, {1, 10, -1}, {1, 30, -1}, {1, 40, 3}})
	before := X.RawRows()

	Y, means, stds, err := matrix.Rescale(X)
	require.NoError(t, err)
	assert.Equal(t, before, X.RawRows(), "input is not modified")
	assert.Equal(t, []float64{1, 25, 0}, means)
	assert.Equal(t, 0.0, stds[0])

	col0, _ := Y.Column(0)
	assert.Equal(t, []float64{1, 1, 1, 1}, col0)

	for j := 1; j < 3; j++ {
		col, err := Y.Column(j)
		require.NoError(t, err)
		var sum, ss float64
		for _, v := range col {
			sum += v
		}
		mean := sum / float64(len(col))
		for _, v := range col {
			ss += (v - mean) * (v - mean)
		}
		assert.InDelta(t, 0, mean, 1e-12, "column %d mean", j)
		assert.InDelta(t, 1, math.Sqrt(ss/float64(len(col)-1)), 1e-12, "column %d std", j)
	}
}
