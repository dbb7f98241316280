// SPDX-License-Identifier: MIT

package network

import (
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/katalvlaran/lvlann/activation"
	"github.com/katalvlaran/lvlann/matrix"
)

type wireNetwork struct {
	Sizes   []int           `json:"sizes"`
	Weights []*matrix.Dense `json:"weights"`
	Biases  []*matrix.Dense `json:"biases"`
}

func (s *stack) marshal() ([]byte, error) {
	w := wireNetwork{
		Sizes:   s.sizes,
		Weights: make([]*matrix.Dense, len(s.transitions)),
		Biases:  make([]*matrix.Dense, len(s.transitions)),
	}
	for k, t := range s.transitions {
		w.Weights[k], w.Biases[k] = t.Weights, t.Biases
	}
	b, err := json.Marshal(w)

	return b, errors.Wrap(err, "network: marshal")
}

// unmarshal decodes and checks a payload; wantLayers == 0 accepts any depth.
// The receiver is left untouched on error.
func (s *stack) unmarshal(b []byte, wantLayers int) error {
	var w wireNetwork
	if err := json.Unmarshal(b, &w); err != nil {
		return errors.Wrap(err, "network: unmarshal")
	}
	if err := validateSizes(w.Sizes); err != nil {
		return errors.Wrap(err, "network: unmarshal")
	}
	if wantLayers > 0 && len(w.Sizes) != wantLayers {
		return errors.Wrapf(ErrLayerCount, "network: unmarshal: want %d layers, got %d", wantLayers, len(w.Sizes))
	}
	n := len(w.Sizes) - 1
	if len(w.Weights) != n || len(w.Biases) != n {
		return errors.Wrapf(ErrCorruptState, "network: unmarshal: %d layers need %d weight and bias matrices, got %d and %d",
			len(w.Sizes), n, len(w.Weights), len(w.Biases))
	}
	ts := make([]Transition, n)
	for k := 0; k < n; k++ {
		t := Transition{Weights: w.Weights[k], Biases: w.Biases[k]}
		if t.Weights == nil || t.Biases == nil ||
			t.Weights.Rows() != w.Sizes[k] || t.Weights.Cols() != w.Sizes[k+1] ||
			t.Biases.Rows() != 1 || t.Biases.Cols() != w.Sizes[k+1] {
			return errors.Wrapf(ErrCorruptState, "network: unmarshal: transition %d does not match sizes %v", k, w.Sizes)
		}
		ts[k] = t
	}

	s.sizes, s.transitions = w.Sizes, ts
	if s.act.Forward == nil {
		s.act = activation.Logistic
	}

	return nil
}
