// SPDX-License-Identifier: MIT

// Package network - the transition stack shared by ThreeLayer and MultiLayer.
//
// Forward pass, per transition k:
//
//	z_k = a_k · W_k + b_k
//	a_{k+1} = σ(z_k)
//
// Training is online back-propagation with batch size 1. For one sample:
//
//	e   = target − a_L
//	δ_L = e ⊙ σ'(z_L)
//	δ_k = (δ_{k+1} · W_{k+1}ᵀ) ⊙ σ'(z_k)   computed before W_{k+1} changes
//	W_k += η · a_kᵀ · δ_k
//	b_k += η · δ_k
//
// The input layer is not passed through σ.
package network

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/lvlann/activation"
	"github.com/katalvlaran/lvlann/matrix"
)

type stack struct {
	sizes       []int
	transitions []Transition
	act         activation.Func
	src         matrix.Source
	lo, hi      float64
}

// validateSizes checks count and positivity of layer sizes.
func validateSizes(sizes []int) error {
	if len(sizes) < 2 {
		return errors.Wrapf(ErrTooFewLayers, "got %d", len(sizes))
	}
	for i, n := range sizes {
		if n < 1 {
			return errors.Wrapf(ErrInvalidLayerSize, "layer %d has size %d", i, n)
		}
	}

	return nil
}

// newStack builds zeroed transitions for sizes and randomizes them in order.
func newStack(sizes []int, opts ...Option) (*stack, error) {
	if err := validateSizes(sizes); err != nil {
		return nil, err
	}
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, err
	}
	s := &stack{
		sizes: append([]int(nil), sizes...),
		act:   activation.Logistic,
		src:   o.src,
		lo:    o.lo,
		hi:    o.hi,
	}
	s.transitions = make([]Transition, len(sizes)-1)
	for k := range s.transitions {
		if s.transitions[k], err = newTransition(sizes[k], sizes[k+1]); err != nil {
			return nil, errors.Wrapf(err, "transition %d", k)
		}
		if err = s.transitions[k].randomize(s.src, s.lo, s.hi); err != nil {
			return nil, errors.Wrapf(err, "transition %d", k)
		}
	}

	return s, nil
}

// Sizes returns a copy of the layer sizes, input first.
func (s *stack) Sizes() []int { return append([]int(nil), s.sizes...) }

// Transitions returns a new slice holding the live transitions; mutating
// the matrices mutates the network.
func (s *stack) Transitions() []Transition {
	return append([]Transition(nil), s.transitions...)
}

// FeedForward maps input through every transition.
func (s *stack) FeedForward(input []float64) ([]float64, error) {
	x, err := matrix.NewRowVector(input)
	if err != nil {
		return nil, errors.Wrap(err, "network: input")
	}
	out, err := s.Predict(x)
	if err != nil {
		return nil, err
	}

	return out.Row(0)
}

// Predict maps a 1×in row vector to a fresh 1×out row vector.
func (s *stack) Predict(x *matrix.Dense) (*matrix.Dense, error) {
	a := x
	var z *matrix.Dense
	var err error
	for k, t := range s.transitions {
		if z, err = s.affine(a, t); err != nil {
			return nil, errors.Wrapf(err, "network: feed forward, transition %d", k)
		}
		if a, err = z.Map(s.act.Forward); err != nil {
			return nil, errors.Wrapf(err, "network: feed forward, transition %d", k)
		}
	}

	return a, nil
}

// affine returns a·W + b as a new matrix.
func (s *stack) affine(a *matrix.Dense, t Transition) (*matrix.Dense, error) {
	z, err := a.Dot(t.Weights)
	if err != nil {
		return nil, err
	}

	return z.Add(t.Biases)
}

// Learn runs epochs passes over set; see Network.
func (s *stack) Learn(set []Sample, epochs int, rate float64, opts ...LearnOption) error {
	lopts, err := gatherLearnOptions(opts...)
	if err != nil {
		return err
	}
	if epochs < 0 {
		return errors.Wrapf(ErrOptionViolation, "epochs %d", epochs)
	}
	if len(set) == 0 {
		return nil
	}
	rows, err := toRows(set)
	if err != nil {
		return err
	}

	var epochErr float64
	for e := 0; e < epochs; e++ {
		if epochErr, err = s.epoch(rows, rate); err != nil {
			return errors.Wrapf(err, "network: epoch %d", e)
		}
		if lopts.onError != nil && e%lopts.every == 0 {
			lopts.onError(epochErr)
		}
	}

	return nil
}

// Epoch runs one pass over set and returns the mean over samples of the
// mean absolute output error. An empty set returns 0.
func (s *stack) Epoch(set []Sample, rate float64) (float64, error) {
	if len(set) == 0 {
		return 0, nil
	}
	rows, err := toRows(set)
	if err != nil {
		return 0, err
	}

	return s.epoch(rows, rate)
}

func (s *stack) epoch(rows []sampleRows, rate float64) (float64, error) {
	var sum float64
	for i, r := range rows {
		e, err := s.trainSample(r.input, r.target, rate)
		if err != nil {
			return 0, errors.Wrapf(err, "sample %d", i)
		}
		sum += e
	}

	return sum / float64(len(rows)), nil
}

// trainSample runs one forward/backward pass and updates every transition.
// It returns the mean absolute output error before the update. Shape errors
// are detected before any parameter changes.
func (s *stack) trainSample(x, y *matrix.Dense, rate float64) (float64, error) {
	n := len(s.transitions)
	acts := make([]*matrix.Dense, 0, n+1)
	pre := make([]*matrix.Dense, 0, n)

	acts = append(acts, x)
	a := x
	for k, t := range s.transitions {
		z, err := s.affine(a, t)
		if err != nil {
			return 0, errors.Wrapf(err, "forward, transition %d", k)
		}
		pre = append(pre, z)
		if a, err = z.Copy().Map(s.act.Forward); err != nil {
			return 0, errors.Wrapf(err, "forward, transition %d", k)
		}
		acts = append(acts, a)
	}

	e, err := y.Copy().Subtract(a)
	if err != nil {
		return 0, errors.Wrap(err, "target")
	}
	errAbs := e.AbsMean()

	delta, err := s.slope(pre[n-1])
	if err != nil {
		return 0, err
	}
	if delta, err = delta.MulElem(e); err != nil {
		return 0, err
	}

	var prev, gw, slope *matrix.Dense
	for k := n - 1; k >= 0; k-- {
		t := s.transitions[k]
		prev = nil
		if k > 0 {
			if prev, err = delta.Dot(t.Weights.T()); err != nil {
				return 0, errors.Wrapf(err, "backward, transition %d", k)
			}
			if slope, err = s.slope(pre[k-1]); err != nil {
				return 0, err
			}
			if _, err = prev.MulElem(slope); err != nil {
				return 0, errors.Wrapf(err, "backward, transition %d", k)
			}
		}
		if gw, err = acts[k].T().Dot(delta); err != nil {
			return 0, errors.Wrapf(err, "gradient, transition %d", k)
		}
		if _, err = t.Weights.Add(gw.MulScalar(rate)); err != nil {
			return 0, errors.Wrapf(err, "update, transition %d", k)
		}
		if _, err = t.Biases.Add(delta.Copy().MulScalar(rate)); err != nil {
			return 0, errors.Wrapf(err, "update, transition %d", k)
		}
		delta = prev
	}

	return errAbs, nil
}

// slope returns σ'(z) as a new matrix.
func (s *stack) slope(z *matrix.Dense) (*matrix.Dense, error) {
	d, err := z.Copy().Map(s.act.Derivative)

	return d, errors.Wrap(err, "derivative")
}

// Resize reshapes the stack to sizes. Transitions present in both layouts
// keep their overlapping parameters; everything new is zero.
func (s *stack) Resize(sizes ...int) error {
	if err := validateSizes(sizes); err != nil {
		return err
	}
	next := make([]Transition, len(sizes)-1)
	var err error
	for k := range next {
		if k < len(s.transitions) {
			next[k] = s.transitions[k]
			if err = next[k].reshape(sizes[k], sizes[k+1]); err != nil {
				return errors.Wrapf(err, "network: resize transition %d", k)
			}
			continue
		}
		if next[k], err = newTransition(sizes[k], sizes[k+1]); err != nil {
			return errors.Wrapf(err, "network: resize transition %d", k)
		}
	}
	s.transitions = next
	s.sizes = append([]int(nil), sizes...)

	return nil
}

// ResizeRandomized resizes, then draws every parameter outside the old
// bounds from the network's source and range.
func (s *stack) ResizeRandomized(sizes ...int) error {
	old := s.Sizes()
	if err := s.Resize(sizes...); err != nil {
		return err
	}
	if s.src == nil {
		o, _ := gatherOptions()
		s.src, s.lo, s.hi = o.src, o.lo, o.hi
	}
	var oldIn, oldOut int
	for k, t := range s.transitions {
		oldIn, oldOut = 0, 0
		if k < len(old)-1 {
			oldIn, oldOut = old[k], old[k+1]
		}
		if err := t.randomizeOutside(oldIn, oldOut, s.src, s.lo, s.hi); err != nil {
			return errors.Wrapf(err, "network: randomize transition %d", k)
		}
	}

	return nil
}
