// SPDX-License-Identifier: MIT

package regression

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/descent/optimize"
)

// DefaultLearningRate is the initial stochastic learning rate used by EstimateBeta.
const DefaultLearningRate = 0.001

// DefaultSeed seeds the RNG when neither WithRand nor a non-zero WithSeed is given.
const DefaultSeed int64 = 1

const (
	panicRandNil             = "regression: WithRand: rng must not be nil"
	panicLoggerNil           = "regression: WithLogger: logger must not be nil"
	panicLearningRateInvalid = "regression: WithLearningRate: alpha must be > 0"
)

// Option configures an estimator.
type Option func(*Options)

// Options is the resolved estimator configuration.
type Options struct {
	rng          *rand.Rand
	seed         int64
	learningRate float64
	logger       logrus.FieldLogger
	optimizeOpts []optimize.Option
}

// WithRand injects the RNG used for initial coefficients and splits.
// Panics if rng is nil.
func WithRand(rng *rand.Rand) Option {
	if rng == nil {
		panic(panicRandNil)
	}

	return func(o *Options) { o.rng = rng }
}

// WithSeed derives the RNG from seed (0 ⇒ DefaultSeed). WithRand wins when both are given.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.seed = seed }
}

// WithLearningRate overrides the initial learning rate of EstimateBeta.
// Panics unless alpha > 0.
func WithLearningRate(alpha float64) Option {
	if !(alpha > 0) {
		panic(panicLearningRateInvalid)
	}

	return func(o *Options) { o.learningRate = alpha }
}

// WithLogger sets the logger handed down to the optimizer. Panics if nil.
func WithLogger(logger logrus.FieldLogger) Option {
	if logger == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = logger }
}

// WithOptimizeOptions appends raw optimizer options (tolerance, patience, ...).
// They are applied after the estimator's own settings and therefore win.
func WithOptimizeOptions(opts ...optimize.Option) Option {
	return func(o *Options) { o.optimizeOpts = append(o.optimizeOpts, opts...) }
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		learningRate: DefaultLearningRate,
		logger:       logrus.StandardLogger(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.rng == nil {
		seed := o.seed
		if seed == 0 {
			seed = DefaultSeed
		}
		o.rng = rand.New(rand.NewSource(seed))
	}

	return o
}

// optimizerOptions translates the estimator settings into optimize options.
func (o Options) optimizerOptions() []optimize.Option {
	out := []optimize.Option{
		optimize.WithRand(o.rng),
		optimize.WithLearningRate(o.learningRate),
		optimize.WithLogger(o.logger),
	}

	return append(out, o.optimizeOpts...)
}

// randomBeta draws an initial coefficient vector uniformly from [0, 1).
func (o Options) randomBeta(n int) []float64 {
	beta := make([]float64, n)
	for i := range beta {
		beta[i] = o.rng.Float64()
	}

	return beta
}
