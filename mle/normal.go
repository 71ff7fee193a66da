// SPDX-License-Identifier: MIT

package mle

import (
	"math"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/descent/optimize"
)

// NormalLogLikelihood returns the Objective θ ↦ Σ_i log N(x_i | μ = θ[0], σ = θ[1]).
// For σ ≤ 0 the objective returns NaN. The sample is captured, not copied.
func NormalLogLikelihood(sample []float64) optimize.Objective {
	return func(theta []float64) float64 {
		mu, sigma := theta[0], theta[1]
		if !(sigma > 0) {
			return math.NaN()
		}
		dist := distuv.Normal{Mu: mu, Sigma: sigma}
		var ll float64
		for _, x := range sample {
			ll += dist.LogProb(x)
		}

		return ll
	}
}

// NormalLogLikelihoodGradient returns the Gradient of NormalLogLikelihood:
//
//	∂/∂μ = Σ (x - μ) / σ²
//	∂/∂σ = Σ ((x - μ)² / σ³ - 1/σ)
func NormalLogLikelihoodGradient(sample []float64) optimize.Gradient {
	return func(theta []float64) []float64 {
		mu, sigma := theta[0], theta[1]
		var dMu, dSigma float64
		for _, x := range sample {
			d := x - mu
			dMu += d / (sigma * sigma)
			dSigma += d*d/(sigma*sigma*sigma) - 1/sigma
		}

		return []float64{dMu, dSigma}
	}
}

// FitNormal estimates (μ, σ) of a normal distribution from sample by batch
// maximization of the log-likelihood starting at theta0 = (μ₀, σ₀).
//
// opts are passed to optimize.MaximizeBatch (tolerance, step ladder, logger).
//
// Errors:
//   - ErrEmptySample when sample is empty.
//   - ErrInvalidStart unless len(theta0) == 2 and σ₀ > 0.
func FitNormal(sample, theta0 []float64, opts ...optimize.Option) (mu, sigma float64, err error) {
	if len(sample) == 0 {
		return 0, 0, errors.WithStack(ErrEmptySample)
	}
	if len(theta0) != 2 || !(theta0[1] > 0) {
		return 0, 0, errors.Wrapf(ErrInvalidStart, "theta0 %v", theta0)
	}

	theta, history, err := optimize.MaximizeBatch(
		NormalLogLikelihood(sample),
		NormalLogLikelihoodGradient(sample),
		theta0,
		opts...,
	)
	if err != nil {
		return 0, 0, errors.Wrap(err, "fit normal")
	}
	optimize.LoggerFrom(opts...).WithFields(logrus.Fields{
		"mu":             theta[0],
		"sigma":          theta[1],
		"iterations":     len(history) - 1,
		"log_likelihood": -history[len(history)-2],
	}).Debug("normal distribution fitted")

	return theta[0], theta[1], nil
}
