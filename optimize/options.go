// SPDX-License-Identifier: MIT

// Package optimize: functional configuration for the descent engines.
// This file defines:
//   - documented defaults (constants), the single source of truth,
//   - Option / Options (functional options with unexported state),
//   - WithX constructors that panic on nonsensical values (programmer error),
//   - gatherOptions, which resolves a fresh Options value per call.
//
// Notes:
//   - Batch descent reads tolerance and stepSizes; stochastic descent reads
//     learningRate, decay, patience and rng. Both read logger.
//   - A resolved Options is owned by exactly one run. In particular the default
//     *rand.Rand is created per call and never shared.
package optimize

import (
	"math"
	"math/rand"

	"github.com/sirupsen/logrus"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultTolerance is the minimum objective improvement below which batch
	// descent considers itself converged.
	DefaultTolerance = 1e-6

	// DefaultEpsilon is the finite-difference half-width used by
	// EstimateGradient and NumericalGradient when a non-positive eps is given.
	DefaultEpsilon = 1e-5

	// DefaultLearningRate is the initial stochastic learning rate α₀.
	DefaultLearningRate = 0.01

	// DefaultDecay multiplies α after every outer iteration without a new best.
	DefaultDecay = 0.9

	// DefaultPatience is the number of consecutive non-improving outer
	// iterations after which stochastic descent stops.
	DefaultPatience = 100

	// DefaultSeed seeds the shuffle RNG when neither WithRand nor a non-zero
	// WithSeed is given.
	DefaultSeed int64 = 1
)

// DefaultStepSizes returns the candidate step magnitudes tried by batch
// descent at every iteration, largest first. Order matters: on ties the
// earlier (larger) step wins. A new slice is returned on each call.
func DefaultStepSizes() []float64 {
	return []float64{100, 10, 1, 0.1, 0.01, 0.001, 0.0001, 0.00001}
}

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicToleranceInvalid    = "optimize: WithTolerance: tolerance must be finite and > 0"
	panicStepSizesEmpty      = "optimize: WithStepSizes: at least one step size is required"
	panicStepSizeInvalid     = "optimize: WithStepSizes: step sizes must be finite and > 0"
	panicLearningRateInvalid = "optimize: WithLearningRate: alpha must be finite and > 0"
	panicDecayInvalid        = "optimize: WithDecay: decay must be in (0, 1]"
	panicPatienceInvalid     = "optimize: WithPatience: patience must be >= 1"
	panicRandNil             = "optimize: WithRand: rng must not be nil"
	panicLoggerNil           = "optimize: WithLogger: logger must not be nil"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Constructors panic only on nonsensical
// values; applying the same Option twice is harmless.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option and resolve them
// through gatherOptions.
type Options struct {
	// batch descent
	tolerance float64   // > 0; DefaultTolerance
	stepSizes []float64 // non-empty, finite, > 0; DefaultStepSizes()

	// stochastic descent
	learningRate float64    // α₀ > 0; DefaultLearningRate
	decay        float64    // (0,1]; DefaultDecay
	patience     int        // >= 1; DefaultPatience
	rng          *rand.Rand // nil until resolved; then seeded from seed
	seed         int64      // 0 ⇒ DefaultSeed

	logger logrus.FieldLogger
}

// WithTolerance sets the batch convergence tolerance (absolute difference
// between consecutive objective values).
// Panics if tol is NaN, ±Inf or ≤ 0: a zero tolerance could never be met.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tolerance = tol }
}

// WithStepSizes replaces the candidate step ladder used by batch descent.
// The order given is the tie-break order. The slice is copied.
// Panics on an empty ladder or on a non-finite or non-positive entry.
func WithStepSizes(sizes ...float64) Option {
	if len(sizes) == 0 {
		panic(panicStepSizesEmpty)
	}
	ladder := make([]float64, len(sizes))
	for i, s := range sizes {
		if math.IsNaN(s) || math.IsInf(s, 0) || s <= 0 {
			panic(panicStepSizeInvalid)
		}
		ladder[i] = s
	}

	return func(o *Options) { o.stepSizes = ladder }
}

// WithLearningRate sets the initial stochastic learning rate α₀.
// Panics if alpha is NaN, ±Inf or ≤ 0.
func WithLearningRate(alpha float64) Option {
	if math.IsNaN(alpha) || math.IsInf(alpha, 0) || alpha <= 0 {
		panic(panicLearningRateInvalid)
	}

	return func(o *Options) { o.learningRate = alpha }
}

// WithDecay sets the factor applied to α after a non-improving outer iteration.
// Panics unless 0 < decay ≤ 1.
func WithDecay(decay float64) Option {
	if math.IsNaN(decay) || decay <= 0 || decay > 1 {
		panic(panicDecayInvalid)
	}

	return func(o *Options) { o.decay = decay }
}

// WithPatience sets how many consecutive non-improving outer iterations end
// stochastic descent. Panics if n < 1.
func WithPatience(n int) Option {
	if n < 1 {
		panic(panicPatienceInvalid)
	}

	return func(o *Options) { o.patience = n }
}

// WithRand injects the RNG used to shuffle examples. The optimizer advances its
// state; do not share it with a concurrently running call. Panics if rng is nil.
func WithRand(rng *rand.Rand) Option {
	if rng == nil {
		panic(panicRandNil)
	}

	return func(o *Options) { o.rng = rng }
}

// WithSeed makes the run create its own RNG from seed (0 ⇒ DefaultSeed).
// WithRand takes precedence when both are given.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.seed = seed }
}

// WithLogger sets the logger used for iteration diagnostics.
// Panics if logger is nil.
func WithLogger(logger logrus.FieldLogger) Option {
	if logger == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = logger }
}

// DefaultOptions returns the documented defaults with no RNG resolved yet.
func DefaultOptions() Options {
	return Options{
		tolerance:    DefaultTolerance,
		stepSizes:    DefaultStepSizes(),
		learningRate: DefaultLearningRate,
		decay:        DefaultDecay,
		patience:     DefaultPatience,
		logger:       logrus.StandardLogger(),
	}
}

// applyOptions applies opts over DefaultOptions without resolving the RNG.
func applyOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// gatherOptions applies opts over DefaultOptions and resolves the RNG.
func gatherOptions(opts ...Option) Options {
	o := applyOptions(opts...)
	if o.rng == nil {
		o.rng = rngFromSeed(o.seed)
	}

	return o
}

// Tolerance reports the resolved batch tolerance.
func (o Options) Tolerance() float64 { return o.tolerance }

// StepSizes returns a copy of the resolved step ladder.
func (o Options) StepSizes() []float64 {
	out := make([]float64, len(o.stepSizes))
	copy(out, o.stepSizes)

	return out
}

// LearningRate reports the resolved α₀.
func (o Options) LearningRate() float64 { return o.learningRate }

// Decay reports the resolved learning-rate decay factor.
func (o Options) Decay() float64 { return o.decay }

// Patience reports the resolved non-improvement cutoff.
func (o Options) Patience() int { return o.patience }

// Logger returns the resolved logger.
func (o Options) Logger() logrus.FieldLogger { return o.logger }

// LoggerFrom returns the logger opts select (logrus.StandardLogger() when none
// does). Unlike Resolve it creates no RNG.
func LoggerFrom(opts ...Option) logrus.FieldLogger { return applyOptions(opts...).logger }

// Resolve applies opts over the defaults, exactly as the descent functions do.
// Useful for drivers that need to inspect or log the effective configuration.
func Resolve(opts ...Option) Options { return gatherOptions(opts...) }
