// SPDX-License-Identifier: MIT

package regression

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/descent/optimize"
)

// Predict returns x·β. Panics if len(x) != len(beta); inside an objective the
// optimizer's safety wrapper turns that into +Inf.
func Predict(x, beta []float64) float64 {
	return floats.Dot(x, beta)
}

// Error returns the residual y - x·β.
func Error(x []float64, y float64, beta []float64) float64 {
	return y - Predict(x, beta)
}

// SquaredError is the per-example loss (y - x·β)².
func SquaredError(x []float64, y float64, beta []float64) float64 {
	e := Error(x, y, beta)

	return e * e
}

// SquaredErrorGradient is ∂/∂β of SquaredError: -2·(y - x·β)·x.
func SquaredErrorGradient(x []float64, y float64, beta []float64) []float64 {
	g := make([]float64, len(x))
	floats.ScaleTo(g, -2*Error(x, y, beta), x)

	return g
}

var (
	_ optimize.StochasticObjective[[]float64, float64] = SquaredError
	_ optimize.StochasticGradient[[]float64, float64]  = SquaredErrorGradient
)

// EstimateBeta fits a multiple linear regression y ≈ x·β by minimizing the
// summed squared error with stochastic gradient descent.
//
// The initial β is drawn uniformly from [0, 1) with the configured RNG, which
// then also drives the optimizer's shuffles, so one seed pins the whole run.
// The learning rate defaults to DefaultLearningRate.
//
// Errors:
//   - ErrLengthMismatch, ErrEmptyDataset, ErrNoFeatures for malformed data.
//   - optimizer errors, wrapped.
func EstimateBeta(x [][]float64, y []float64, opts ...Option) ([]float64, error) {
	if err := validateDataset(x, y); err != nil {
		return nil, errors.Wrap(err, "estimate beta")
	}
	o := gatherOptions(opts...)
	beta0 := o.randomBeta(len(x[0]))

	beta, err := optimize.MinimizeStochastic(SquaredError, SquaredErrorGradient, x, y, beta0, o.optimizerOptions()...)
	if err != nil {
		return nil, errors.Wrap(err, "estimate beta")
	}
	o.logger.WithFields(logrus.Fields{
		"examples": len(x),
		"beta":     beta,
	}).Debug("linear regression fitted")

	return beta, nil
}

// RSquared returns the coefficient of determination of β on (x, y): the share
// of the variance of y explained by the predictions x·β.
func RSquared(x [][]float64, y []float64, beta []float64) (float64, error) {
	if err := validateDataset(x, y); err != nil {
		return 0, errors.Wrap(err, "r squared")
	}
	if len(x[0]) != len(beta) {
		return 0, errors.Wrapf(ErrLengthMismatch, "r squared: %d features, %d coefficients", len(x[0]), len(beta))
	}
	estimates := make([]float64, len(x))
	for i, xi := range x {
		estimates[i] = Predict(xi, beta)
	}

	return stat.RSquaredFrom(estimates, y, nil), nil
}
