// SPDX-License-Identifier: MIT

package mle_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/descent/mle"
	"github.com/katalvlaran/descent/optimize"
)

func normalSample(n int, mu, sigma float64, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, n)
	for i := range out {
		out[i] = mu + sigma*rng.NormFloat64()
	}

	return out
}

func TestNormalLogLikelihood(t *testing.T) {
	t.Parallel()

	ll := mle.NormalLogLikelihood([]float64{0})
	// log of the standard normal density at 0
	assert.InDelta(t, -0.5*math.Log(2*math.Pi), ll([]float64{0, 1}), 1e-12)

	assert.True(t, math.IsNaN(ll([]float64{0, 0})))
	assert.True(t, math.IsNaN(ll([]float64{0, -1})))
	assert.True(t, math.IsInf(optimize.Safe(ll)([]float64{0, -1}), 1))
}

func TestNormalLogLikelihoodGradient_MatchesNumeric(t *testing.T) {
	t.Parallel()

	sample := normalSample(25, 1, 3, 2)
	ll := mle.NormalLogLikelihood(sample)
	grad := mle.NormalLogLikelihoodGradient(sample)

	for _, theta := range [][]float64{{0, 1}, {1, 3}, {-2, 0.5}} {
		numeric := optimize.EstimateGradient(ll, theta, 1e-6)
		analytic := grad(theta)
		require.Len(t, analytic, 2)
		for i := range analytic {
			assert.InDelta(t, analytic[i], numeric[i], 1e-4, "theta %v coordinate %d", theta, i)
		}
	}
}

func TestFitNormal_RecoversClosedForm(t *testing.T) {
	t.Parallel()

	sample := normalSample(200, 5, 2, 11)

	mu, sigma, err := mle.FitNormal(sample, []float64{0, 1})
	require.NoError(t, err)

	// closed form: sample mean and the population (1/n) standard deviation
	wantMu := stat.Mean(sample, nil)
	var ss float64
	for _, x := range sample {
		ss += (x - wantMu) * (x - wantMu)
	}
	wantSigma := math.Sqrt(ss / float64(len(sample)))

	assert.InDelta(t, wantMu, mu, 1e-2)
	assert.InDelta(t, wantSigma, sigma, 1e-2)
	assert.Greater(t, sigma, 0.0)
}

func TestFitNormal_LogsToInjectedLogger(t *testing.T) {
	t.Parallel()

	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	mu, sigma, err := mle.FitNormal(normalSample(50, 1, 2, 4), []float64{0, 1}, optimize.WithLogger(logger))
	require.NoError(t, err)

	last := hook.LastEntry()
	require.NotNil(t, last)
	assert.Equal(t, "normal distribution fitted", last.Message)
	assert.Equal(t, mu, last.Data["mu"])
	assert.Equal(t, sigma, last.Data["sigma"])
}

func TestFitNormal_Errors(t *testing.T) {
	t.Parallel()

	_, _, err := mle.FitNormal(nil, []float64{0, 1})
	assert.ErrorIs(t, err, mle.ErrEmptySample)

	for _, bad := range [][]float64{nil, {0}, {0, 0}, {0, -2}, {0, 1, 2}} {
		_, _, err = mle.FitNormal([]float64{1, 2}, bad)
		assert.ErrorIs(t, err, mle.ErrInvalidStart, "theta0 %v", bad)
	}
}
