// SPDX-License-Identifier: MIT

// Package mle fits distribution parameters by maximum likelihood with the
// optimize package.
//
// FitNormal maximizes the normal log-likelihood over θ = (μ, σ) with batch
// gradient ascent. Parameter vectors with σ ≤ 0 are outside the model; the
// objective reports them as NaN and the optimizer's safety wrapper turns them
// into candidates that are never selected.
package mle
