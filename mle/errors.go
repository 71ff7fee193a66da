// SPDX-License-Identifier: MIT

package mle

import "github.com/pkg/errors"

var (
	// ErrEmptySample indicates that no observations were given.
	ErrEmptySample = errors.New("mle: empty sample")

	// ErrInvalidStart indicates an initial θ that is not a valid (μ, σ) pair.
	ErrInvalidStart = errors.New("mle: initial parameters must be (mu, sigma) with sigma > 0")
)
