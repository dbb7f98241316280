// SPDX-License-Identifier: MIT

package network

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/lvlann/matrix"
)

// Transition connects layer k to layer k+1: Weights is in×out and Biases
// is 1×out, so a row-vector activation a maps to a·Weights + Biases.
type Transition struct {
	Weights *matrix.Dense
	Biases  *matrix.Dense
}

// In is the size of the layer feeding the transition.
func (t Transition) In() int { return t.Weights.Rows() }

// Out is the size of the layer the transition feeds.
func (t Transition) Out() int { return t.Weights.Cols() }

func newTransition(in, out int) (Transition, error) {
	w, err := matrix.NewDense(in, out)
	if err != nil {
		return Transition{}, errors.Wrapf(err, "weights %dx%d", in, out)
	}
	b, err := matrix.NewDense(1, out)
	if err != nil {
		return Transition{}, errors.Wrapf(err, "biases 1x%d", out)
	}

	return Transition{Weights: w, Biases: b}, nil
}

// clone deep-copies both matrices.
func (t Transition) clone() Transition {
	return Transition{Weights: t.Weights.Copy(), Biases: t.Biases.Copy()}
}

// reshape resizes the transition in place to in×out.
func (t Transition) reshape(in, out int) error {
	if _, err := t.Weights.Reshape(in, out); err != nil {
		return err
	}
	_, err := t.Biases.Reshape(1, out)

	return err
}

// randomize adds a draw from [lo, hi) to every parameter, weights first,
// row-major.
func (t Transition) randomize(src matrix.Source, lo, hi float64) error {
	if _, err := t.Weights.Randomize(src, lo, hi); err != nil {
		return err
	}
	_, err := t.Biases.Randomize(src, lo, hi)

	return err
}

// randomizeOutside overwrites the parameters that lie outside an
// oldIn×oldOut region with draws from [lo, hi), weights first, row-major.
func (t Transition) randomizeOutside(oldIn, oldOut int, src matrix.Source, lo, hi float64) error {
	span := hi - lo
	draw := func(i, j int, v float64) float64 {
		if i < oldIn && j < oldOut {
			return v
		}
		return src.Float64()*span + lo
	}
	if _, err := t.Weights.Apply(draw); err != nil {
		return err
	}
	_, err := t.Biases.Apply(func(_, j int, v float64) float64 { return draw(0, j, v) })

	return err
}
