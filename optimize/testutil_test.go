// SPDX-License-Identifier: MIT

package optimize_test

import (
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

// sumOfSquares is the canonical convex test objective Σ θ_i².
func sumOfSquares(theta []float64) float64 {
	var s float64
	for _, v := range theta {
		s += v * v
	}

	return s
}

// sumOfSquaresGradient is 2θ.
func sumOfSquaresGradient(theta []float64) []float64 {
	g := make([]float64, len(theta))
	for i, v := range theta {
		g[i] = 2 * v
	}

	return g
}

// quietLogger returns a logger that records entries without printing them.
func quietLogger() (*logrus.Logger, *test.Hook) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	return logger, hook
}

// linearError is the per-example squared error of y ≈ θ·x.
func linearError(x []float64, y float64, theta []float64) float64 {
	e := y - dot(x, theta)

	return e * e
}

// linearErrorGradient is -2·(y - θ·x)·x.
func linearErrorGradient(x []float64, y float64, theta []float64) []float64 {
	e := y - dot(x, theta)
	g := make([]float64, len(theta))
	for i := range theta {
		g[i] = -2 * e * x[i]
	}

	return g
}

func dot(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}

	return s
}
