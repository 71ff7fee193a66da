// SPDX-License-Identifier: MIT

package regression_test

import (
	"math/rand"

	"github.com/katalvlaran/descent/regression"
)

// linearDataset draws n examples [1, u1, u2] with u ~ U[0,1) and targets
// beta·x plus Gaussian noise of the given scale.
func linearDataset(n int, beta []float64, noise float64, seed int64) ([][]float64, []float64) {
	rng := rand.New(rand.NewSource(seed))
	x := make([][]float64, n)
	y := make([]float64, n)
	for i := range x {
		x[i] = []float64{1, rng.Float64(), rng.Float64()}
		y[i] = regression.Predict(x[i], beta) + noise*rng.NormFloat64()
	}

	return x, y
}

// logisticDataset draws n examples [1, z] with z ~ N(0,1) and labels sampled
// from Bernoulli(σ(beta·x)).
func logisticDataset(n int, beta []float64, seed int64) ([][]float64, []float64) {
	rng := rand.New(rand.NewSource(seed))
	x := make([][]float64, n)
	y := make([]float64, n)
	for i := range x {
		x[i] = []float64{1, rng.NormFloat64()}
		if rng.Float64() < regression.PredictProbability(x[i], beta) {
			y[i] = 1
		}
	}

	return x, y
}
