// SPDX-License-Identifier: MIT

// Package regression fits linear and logistic models with the optimize package.
//
// A dataset is a slice of feature vectors x (each starting with a constant 1 for
// the intercept) and a slice of targets y, paired by index.
//
//   - EstimateBeta fits y ≈ x·β by stochastic descent on the squared error.
//   - EstimateLogistic fits P(y=1|x) = σ(x·β) by batch maximization of the
//     log-likelihood.
//   - Scale/Rescale standardize feature columns, SplitData/TrainTestSplit hold
//     data out, and RSquared scores a linear fit.
//
// Randomness (initial β, splits) comes from an injected *rand.Rand or a seed;
// see WithRand and WithSeed.
package regression
