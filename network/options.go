// SPDX-License-Identifier: MIT

package network

import (
	"math"
	"math/rand"

	"github.com/pkg/errors"

	"github.com/katalvlaran/lvlann/matrix"
	"github.com/katalvlaran/lvlann/rng"
)

// Defaults for parameter initialization.
const (
	// DefaultRangeMin is the inclusive lower bound of initial parameters.
	DefaultRangeMin = -1.0

	// DefaultRangeMax is the exclusive upper bound of initial parameters.
	DefaultRangeMax = 1.0
)

// Option configures network construction. An invalid Option is recorded
// and surfaced as ErrOptionViolation by the constructor.
type Option func(*options)

type options struct {
	src    matrix.Source
	lo, hi float64
	err    error
}

func defaultOptions() options {
	return options{lo: DefaultRangeMin, hi: DefaultRangeMax}
}

// WithRandomRange sets the half-open range [lo, hi) initial weights and
// biases are drawn from. lo must be below hi and both must be finite.
func WithRandomRange(lo, hi float64) Option {
	return func(o *options) {
		if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || lo >= hi {
			o.err = errors.Wrapf(ErrOptionViolation, "random range [%g, %g)", lo, hi)
			return
		}
		o.lo, o.hi = lo, hi
	}
}

// WithRand draws initial parameters from r. A nil r is ignored.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		if r != nil {
			o.src = r
		}
	}
}

// WithSource draws initial parameters from any matrix.Source.
// A nil src is ignored.
func WithSource(src matrix.Source) Option {
	return func(o *options) {
		if src != nil {
			o.src = src
		}
	}
}

// WithSeed draws initial parameters from a linear congruential generator
// seeded with seed, so the same seed always builds the same network.
func WithSeed(seed int64) Option {
	return func(o *options) { o.src = rng.NewLCG(seed) }
}

func gatherOptions(opts ...Option) (options, error) {
	o := defaultOptions()
	for _, set := range opts {
		if set != nil {
			set(&o)
		}
	}
	if o.err != nil {
		return o, o.err
	}
	if o.src == nil {
		o.src = rng.NewLCG(rand.Int63())
	}

	return o, nil
}

// LearnOption configures a Learn call.
type LearnOption func(*learnOptions)

type learnOptions struct {
	onError func(epochErr float64)
	every   int
	err     error
}

// WithErrorCallback calls fn with the epoch's mean absolute output error
// after every epoch whose zero-based index is a multiple of every. every
// must be ≥ 1; a nil fn disables reporting.
func WithErrorCallback(fn func(epochErr float64), every int) LearnOption {
	return func(o *learnOptions) {
		if every < 1 {
			o.err = errors.Wrapf(ErrOptionViolation, "error callback frequency %d", every)
			return
		}
		o.onError, o.every = fn, every
	}
}

func gatherLearnOptions(opts ...LearnOption) (learnOptions, error) {
	var o learnOptions
	for _, set := range opts {
		if set != nil {
			set(&o)
		}
	}

	return o, o.err
}
