// SPDX-License-Identifier: MIT

package regression

import (
	"math"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/descent/optimize"
)

// Logistic is the sigmoid 1 / (1 + e^-z).
func Logistic(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}

// PredictProbability returns σ(x·β), the modelled P(y = 1 | x).
func PredictProbability(x, beta []float64) float64 {
	return Logistic(Predict(x, beta))
}

// LogisticLogLikelihoodI is the log-likelihood of one labelled example.
// Labels are 0 or 1; any label other than 1 counts as 0.
// log σ(z) is evaluated as -softplus(-z), which stays finite where σ(z)
// itself underflows to 0.
func LogisticLogLikelihoodI(x []float64, y float64, beta []float64) float64 {
	z := Predict(x, beta)
	if y == 1 {
		return -softplus(-z)
	}

	return -softplus(z)
}

// softplus returns log(1 + e^t) without overflowing for large t.
func softplus(t float64) float64 {
	if t > 0 {
		return t + math.Log1p(math.Exp(-t))
	}

	return math.Log1p(math.Exp(t))
}

// LogisticLogLikelihoodGradientI is ∂/∂β of LogisticLogLikelihoodI: (y - σ(x·β))·x.
func LogisticLogLikelihoodGradientI(x []float64, y float64, beta []float64) []float64 {
	g := make([]float64, len(x))
	floats.ScaleTo(g, y-PredictProbability(x, beta), x)

	return g
}

// LogisticLogLikelihood returns the Objective β ↦ Σ_i LogisticLogLikelihoodI(x_i, y_i, β).
// The dataset is captured, not copied; do not modify it while the objective is in use.
func LogisticLogLikelihood(x [][]float64, y []float64) optimize.Objective {
	return func(beta []float64) float64 {
		var sum float64
		for i := range x {
			sum += LogisticLogLikelihoodI(x[i], y[i], beta)
		}

		return sum
	}
}

// LogisticLogLikelihoodGradient returns the Gradient of LogisticLogLikelihood.
func LogisticLogLikelihoodGradient(x [][]float64, y []float64) optimize.Gradient {
	return func(beta []float64) []float64 {
		g := make([]float64, len(beta))
		for i := range x {
			floats.Add(g, LogisticLogLikelihoodGradientI(x[i], y[i], beta))
		}

		return g
	}
}

// EstimateLogistic fits a logistic regression by batch maximization of the
// total log-likelihood, starting from a random β in [0, 1).
//
// Features should be on comparable scales (see Rescale): the batch ladder tries
// steps up to 100, and unscaled features make most of them overflow.
//
// Errors:
//   - ErrLengthMismatch, ErrEmptyDataset, ErrNoFeatures for malformed data.
//   - optimizer errors, wrapped.
func EstimateLogistic(x [][]float64, y []float64, opts ...Option) ([]float64, error) {
	if err := validateDataset(x, y); err != nil {
		return nil, errors.Wrap(err, "estimate logistic")
	}
	o := gatherOptions(opts...)
	beta0 := o.randomBeta(len(x[0]))

	beta, history, err := optimize.MaximizeBatch(
		LogisticLogLikelihood(x, y),
		LogisticLogLikelihoodGradient(x, y),
		beta0,
		o.optimizerOptions()...,
	)
	if err != nil {
		return nil, errors.Wrap(err, "estimate logistic")
	}
	o.logger.WithFields(logrus.Fields{
		"examples":       len(x),
		"iterations":     len(history) - 1,
		"log_likelihood": -history[len(history)-2],
	}).Debug("logistic regression fitted")

	return beta, nil
}
