// SPDX-License-Identifier: MIT

package network

import "github.com/pkg/errors"

// ThreeLayer is a fixed input-hidden-output network with two transitions.
type ThreeLayer struct {
	stack
}

// NewThreeLayer builds an in-hidden-out network with parameters drawn
// uniformly from the configured range.
func NewThreeLayer(in, hidden, out int, opts ...Option) (*ThreeLayer, error) {
	s, err := newStack([]int{in, hidden, out}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "network: NewThreeLayer")
	}

	return &ThreeLayer{stack: *s}, nil
}

// Resize takes exactly three sizes.
func (n *ThreeLayer) Resize(sizes ...int) error {
	if len(sizes) != 3 {
		return errors.Wrapf(ErrLayerCount, "three-layer network got %d sizes", len(sizes))
	}

	return n.stack.Resize(sizes...)
}

// ResizeRandomized takes exactly three sizes.
func (n *ThreeLayer) ResizeRandomized(sizes ...int) error {
	if len(sizes) != 3 {
		return errors.Wrapf(ErrLayerCount, "three-layer network got %d sizes", len(sizes))
	}

	return n.stack.ResizeRandomized(sizes...)
}

// MarshalJSON encodes the network; see MultiLayer.MarshalJSON.
func (n *ThreeLayer) MarshalJSON() ([]byte, error) { return n.stack.marshal() }

// UnmarshalJSON replaces the parameters; the payload must hold three layers.
func (n *ThreeLayer) UnmarshalJSON(b []byte) error { return n.stack.unmarshal(b, 3) }
