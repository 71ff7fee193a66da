// SPDX-License-Identifier: MIT

package regression_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gonumopt "gonum.org/v1/gonum/optimize"

	"github.com/katalvlaran/descent/optimize"
	"github.com/katalvlaran/descent/regression"
)

func TestLogistic(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.5, regression.Logistic(0))
	assert.InDelta(t, 1.0, regression.Logistic(50), 1e-12)
	assert.InDelta(t, 0.0, regression.Logistic(-50), 1e-12)
	assert.InDelta(t, 1-regression.Logistic(1.3), regression.Logistic(-1.3), 1e-15)
}

func TestLogisticLogLikelihoodI(t *testing.T) {
	t.Parallel()

	x := []float64{1, 2}
	beta := []float64{0.5, -0.25} // z = 0
	assert.InDelta(t, math.Log(0.5), regression.LogisticLogLikelihoodI(x, 1, beta), 1e-15)
	assert.InDelta(t, math.Log(0.5), regression.LogisticLogLikelihoodI(x, 0, beta), 1e-15)

	// stays finite where log(σ(z)) would underflow
	far := []float64{0, -400}
	assert.False(t, math.IsInf(regression.LogisticLogLikelihoodI(x, 1, far), 0))

	for _, y := range []float64{0, 1} {
		ll := func(b []float64) float64 { return regression.LogisticLogLikelihoodI(x, y, b) }
		numeric := optimize.EstimateGradient(ll, []float64{0.3, 0.1}, 0)
		analytic := regression.LogisticLogLikelihoodGradientI(x, y, []float64{0.3, 0.1})
		for i := range numeric {
			assert.InDelta(t, analytic[i], numeric[i], 1e-8, "y=%v coordinate %d", y, i)
		}
	}
}

func TestLogisticLogLikelihood_SumsExamples(t *testing.T) {
	t.Parallel()

	x, y := logisticDataset(30, []float64{0.2, 1}, 4)
	beta := []float64{0.1, 0.7}

	var want float64
	wantGrad := make([]float64, 2)
	for i := range x {
		want += regression.LogisticLogLikelihoodI(x[i], y[i], beta)
		g := regression.LogisticLogLikelihoodGradientI(x[i], y[i], beta)
		wantGrad[0] += g[0]
		wantGrad[1] += g[1]
	}
	assert.InDelta(t, want, regression.LogisticLogLikelihood(x, y)(beta), 1e-12)
	got := regression.LogisticLogLikelihoodGradient(x, y)(beta)
	assert.InDeltaSlice(t, wantGrad, got, 1e-12)
}

// EstimateLogistic must land on the same maximum-likelihood estimate as gonum's
// L-BFGS applied to the negated log-likelihood.
func TestEstimateLogistic_MatchesLBFGS(t *testing.T) {
	t.Parallel()

	x, y := logisticDataset(400, []float64{-0.5, 2}, 21)

	got, err := regression.EstimateLogistic(x, y, regression.WithSeed(3))
	require.NoError(t, err)

	ll := regression.LogisticLogLikelihood(x, y)
	grad := regression.LogisticLogLikelihoodGradient(x, y)
	problem := gonumopt.Problem{
		Func: func(b []float64) float64 { return -ll(b) },
		Grad: func(g, b []float64) {
			for i, v := range grad(b) {
				g[i] = -v
			}
		},
	}
	res, err := gonumopt.Minimize(problem, []float64{0, 0}, nil, &gonumopt.LBFGS{})
	require.NoError(t, err)

	assert.InDeltaSlice(t, res.X, got, 0.01)
	assert.InDelta(t, -res.F, ll(got), 1e-3)
}

func TestEstimateLogistic_PredictsLabels(t *testing.T) {
	t.Parallel()

	x, y := logisticDataset(300, []float64{0, 3}, 8)
	beta, err := regression.EstimateLogistic(x, y, regression.WithSeed(1))
	require.NoError(t, err)

	var correct int
	for i := range x {
		p := regression.PredictProbability(x[i], beta)
		if (p >= 0.5) == (y[i] == 1) {
			correct++
		}
	}
	assert.Greater(t, float64(correct)/float64(len(x)), 0.7)
}

func TestEstimateLogistic_Errors(t *testing.T) {
	t.Parallel()

	_, err := regression.EstimateLogistic(nil, nil)
	assert.ErrorIs(t, err, regression.ErrEmptyDataset)
	_, err = regression.EstimateLogistic([][]float64{{1}}, nil)
	assert.ErrorIs(t, err, regression.ErrLengthMismatch)
}
