// SPDX-License-Identifier: MIT

package network

import "github.com/pkg/errors"

// MultiLayer is a network of any depth ≥ 2 layers.
type MultiLayer struct {
	stack
}

// NewMultiLayer builds a network with len(sizes)-1 transitions.
//
// Errors: ErrTooFewLayers, ErrInvalidLayerSize, ErrOptionViolation.
func NewMultiLayer(sizes []int, opts ...Option) (*MultiLayer, error) {
	s, err := newStack(sizes, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "network: NewMultiLayer")
	}

	return &MultiLayer{stack: *s}, nil
}

// MarshalJSON encodes the network as
// {"sizes":[...],"weights":[[[...]]],"biases":[[[...]]]}.
func (n *MultiLayer) MarshalJSON() ([]byte, error) { return n.stack.marshal() }

// UnmarshalJSON replaces the parameters with a payload written by MarshalJSON.
func (n *MultiLayer) UnmarshalJSON(b []byte) error { return n.stack.unmarshal(b, 0) }
