// Package descent is a small numerical-optimization toolkit built around
// gradient descent, together with the linear algebra, statistics and model
// fitting code that exercises it.
//
// What is in the box?
//
//	A pure-Go library on top of gonum that brings together:
//		• Finite differences: partial difference quotients and gradient estimates
//		• Batch descent: step-size ladder search, no learning rate to tune
//		• Stochastic descent: shuffled per-example updates with decay and patience
//		• Maximization: the same engines on negated objectives
//		• Model fitting: linear and logistic regression, normal MLE
//
// Failures of the objective never escape the optimizer: a panic or a NaN is
// scored as +Inf, so a bad candidate step is simply never chosen.
//
// Subpackages:
//
//	optimize/   : the descent engines, Safe wrappers, numerical gradients, options
//	vector/     : dense []float64 arithmetic (Add, Dot, Step, Distance, ...)
//	matrix/     : a small Dense type, products, column statistics, gonum bridge
//	stats/      : mean, median, variance, covariance, correlation, binning
//	regression/ : linear and logistic regression, rescaling, train/test split
//	mle/        : maximum-likelihood estimation of a normal distribution
//	cmd/descent : CLI running the fitters on synthetic data
//
// Quick example:
//
//	theta, history, err := optimize.MinimizeBatch(
//		vector.SumOfSquares,
//		func(v []float64) []float64 { return vector.ScalarMultiply(2, v) },
//		[]float64{10, 10, 10},
//	)
//
// theta ends next to the origin; history records the objective value at every
// iteration plus the value the rejected final step would have reached.
//
//	go get github.com/katalvlaran/descent
package descent
