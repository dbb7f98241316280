// SPDX-License-Identifier: MIT

package network

import "github.com/katalvlaran/lvlann/matrix"

// Network is the contract shared by ThreeLayer and MultiLayer.
type Network interface {
	// Sizes returns a copy of the layer sizes, input first.
	Sizes() []int

	// FeedForward maps one input vector to the output layer's activations.
	FeedForward(input []float64) ([]float64, error)

	// Predict is FeedForward on a 1×in row vector.
	Predict(x *matrix.Dense) (*matrix.Dense, error)

	// Learn runs exactly epochs passes over set, in order, updating the
	// parameters after every sample. An empty set is a no-op.
	Learn(set []Sample, epochs int, rate float64, opts ...LearnOption) error

	// Epoch runs one pass over set and returns its mean absolute error.
	Epoch(set []Sample, rate float64) (float64, error)

	// Resize reshapes the parameters to new layer sizes. Overlapping
	// parameters keep their values; new ones are zero.
	Resize(sizes ...int) error

	// ResizeRandomized is Resize followed by drawing every new parameter
	// from the network's random source.
	ResizeRandomized(sizes ...int) error

	// Transitions returns the network's transitions in order.
	Transitions() []Transition
}

var (
	_ Network = (*ThreeLayer)(nil)
	_ Network = (*MultiLayer)(nil)
)
