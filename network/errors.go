// SPDX-License-Identifier: MIT

package network

import "github.com/pkg/errors"

// Sentinel errors for network construction, training and persistence.
// Shape problems between samples and a network surface as
// matrix.ErrDimensionMismatch wrapped with context.
var (
	// ErrTooFewLayers is returned when fewer than two layer sizes are given.
	ErrTooFewLayers = errors.New("network: at least two layers are required")

	// ErrLayerCount is returned when a fixed-depth network gets the wrong
	// number of layer sizes.
	ErrLayerCount = errors.New("network: wrong number of layers")

	// ErrInvalidLayerSize is returned when a layer size is < 1.
	ErrInvalidLayerSize = errors.New("network: layer sizes must be > 0")

	// ErrOptionViolation is returned when an invalid Option or LearnOption
	// was supplied. It is recorded while options are applied and surfaced by
	// the constructor or by Learn.
	ErrOptionViolation = errors.New("network: invalid option supplied")

	// ErrCorruptState is returned when decoded parameters do not form a
	// consistent network.
	ErrCorruptState = errors.New("network: inconsistent parameters")
)
