// SPDX-License-Identifier: MIT

package cmd

import (
	"math/rand"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/descent/optimize"
	"github.com/katalvlaran/descent/regression"
)

// sampler draws synthetic data from a seeded stream. Normal variates are
// produced by inverse-CDF sampling so every draw depends only on the seed.
type sampler struct {
	rng *rand.Rand
}

func newSampler(seed int64) *sampler {
	if seed == 0 {
		seed = optimize.DefaultSeed
	}

	return &sampler{rng: rand.New(rand.NewSource(seed))}
}

// uniform returns a draw from the open interval (0, 1).
func (s *sampler) uniform() float64 {
	for {
		if u := s.rng.Float64(); u > 0 {
			return u
		}
	}
}

func (s *sampler) normal(mu, sigma float64) float64 {
	return distuv.Normal{Mu: mu, Sigma: sigma}.Quantile(s.uniform())
}

// linear returns n examples [1, u] with u ~ U(0,1) scaled to [0, 10) and
// targets intercept + slope·u + N(0, noise²).
func (s *sampler) linear(n int, intercept, slope, noise float64) ([][]float64, []float64) {
	x := make([][]float64, n)
	y := make([]float64, n)
	for i := range x {
		u := 10 * s.uniform()
		x[i] = []float64{1, u}
		y[i] = intercept + slope*u
		if noise > 0 {
			y[i] += s.normal(0, noise)
		}
	}

	return x, y
}

// logistic returns n examples [1, z] with z ~ N(5, 2²) and labels drawn from
// Bernoulli(σ(intercept + slope·z)). The feature is deliberately off-center so
// the driver has to rescale before fitting.
func (s *sampler) logistic(n int, intercept, slope float64) ([][]float64, []float64) {
	beta := []float64{intercept, slope}
	x := make([][]float64, n)
	y := make([]float64, n)
	for i := range x {
		x[i] = []float64{1, s.normal(5, 2)}
		if s.uniform() < regression.PredictProbability(x[i], beta) {
			y[i] = 1
		}
	}

	return x, y
}

func (s *sampler) normalSample(n int, mu, sigma float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = s.normal(mu, sigma)
	}

	return out
}
