// SPDX-License-Identifier: MIT

package regression_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/descent/matrix"
	"github.com/katalvlaran/descent/regression"
)

func TestScaleRescale(t *testing.T) {
	t.Parallel()

	data := [][]float64{{1, 2, 10}, {1, 4, 20}, {1, 6, 30}}

	means, stdevs, err := regression.Scale(data)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 4, 20}, means)
	assert.Equal(t, []float64{0, 2, 10}, stdevs)

	scaled, err := regression.Rescale(data)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, -1, -1}, {1, 0, 0}, {1, 1, 1}}, scaled)
	assert.Equal(t, [][]float64{{1, 2, 10}, {1, 4, 20}, {1, 6, 30}}, data, "input untouched")

	_, err = regression.Rescale([][]float64{{1, 2}})
	assert.ErrorIs(t, err, matrix.ErrTooFewRows)
	_, _, err = regression.Scale([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, matrix.ErrRagged)
}

func TestSplitData(t *testing.T) {
	t.Parallel()

	data := make([]int, 1000)
	for i := range data {
		data[i] = i
	}

	first, second, err := regression.SplitData(data, 0.75, rand.New(rand.NewSource(2)))
	require.NoError(t, err)
	assert.Len(t, append(first, second...), len(data))
	assert.InDelta(t, 750, len(first), 60)
	assert.IsIncreasing(t, first)
	assert.IsIncreasing(t, second)

	all, none, err := regression.SplitData(data, 1, rand.New(rand.NewSource(2)))
	require.NoError(t, err)
	assert.Len(t, all, len(data))
	assert.Empty(t, none)

	for _, bad := range []float64{-0.1, 1.1} {
		_, _, err = regression.SplitData(data, bad, rand.New(rand.NewSource(2)))
		assert.ErrorIs(t, err, regression.ErrInvalidFraction)
	}
}

func TestTrainTestSplit_KeepsPairsTogether(t *testing.T) {
	t.Parallel()

	x := make([]int, 200)
	y := make([]string, 200)
	for i := range x {
		x[i] = i
		y[i] = string(rune('a' + i%26))
	}

	xTrain, xTest, yTrain, yTest, err := regression.TrainTestSplit(x, y, 0.25, rand.New(rand.NewSource(6)))
	require.NoError(t, err)
	assert.Len(t, xTrain, len(yTrain))
	assert.Len(t, xTest, len(yTest))
	assert.Equal(t, len(x), len(xTrain)+len(xTest))
	assert.InDelta(t, 50, len(xTest), 20)
	for i, xi := range xTrain {
		assert.Equal(t, y[xi], yTrain[i])
	}
	for i, xi := range xTest {
		assert.Equal(t, y[xi], yTest[i])
	}

	_, _, _, _, err = regression.TrainTestSplit(x, y[:3], 0.25, rand.New(rand.NewSource(6)))
	assert.ErrorIs(t, err, regression.ErrLengthMismatch)
	_, _, _, _, err = regression.TrainTestSplit(x, y, 2, rand.New(rand.NewSource(6)))
	assert.ErrorIs(t, err, regression.ErrInvalidFraction)
}

func TestOptions_PanicOnNonsense(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { regression.WithRand(nil) })
	assert.Panics(t, func() { regression.WithLogger(nil) })
	assert.Panics(t, func() { regression.WithLearningRate(0) })
}
