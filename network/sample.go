// SPDX-License-Identifier: MIT

package network

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/lvlann/matrix"
)

// Sample is one training pair.
type Sample struct {
	Input  []float64 `json:"input"`
	Target []float64 `json:"target"`
}

type sampleRows struct {
	input, target *matrix.Dense
}

// toRows copies every sample into row vectors once per Learn/Epoch call.
func toRows(set []Sample) ([]sampleRows, error) {
	rows := make([]sampleRows, len(set))
	var err error
	for i, s := range set {
		if rows[i].input, err = matrix.NewRowVector(s.Input); err != nil {
			return nil, errors.Wrapf(err, "network: sample %d input", i)
		}
		if rows[i].target, err = matrix.NewRowVector(s.Target); err != nil {
			return nil, errors.Wrapf(err, "network: sample %d target", i)
		}
	}

	return rows, nil
}

// ValidateSamples checks that every sample fits net: input and target
// lengths match the first and last layer sizes and all values are finite.
// Learn does not validate on its own; hosts call this first.
//
// Errors: matrix.ErrDimensionMismatch, matrix.ErrNaNInf.
func ValidateSamples(net Network, set []Sample) error {
	sizes := net.Sizes()
	in, out := sizes[0], sizes[len(sizes)-1]
	for i, s := range set {
		if len(s.Input) != in {
			return errors.Wrapf(matrix.ErrDimensionMismatch, "sample %d: input has %d values, network takes %d", i, len(s.Input), in)
		}
		if len(s.Target) != out {
			return errors.Wrapf(matrix.ErrDimensionMismatch, "sample %d: target has %d values, network gives %d", i, len(s.Target), out)
		}
		if err := matrix.ValidateFinite(s.Input); err != nil {
			return errors.Wrapf(err, "sample %d input", i)
		}
		if err := matrix.ValidateFinite(s.Target); err != nil {
			return errors.Wrapf(err, "sample %d target", i)
		}
	}

	return nil
}

// FitSamples returns copies of set with inputs cut or zero-padded to in
// values and targets to out values. Use it after a resize changes the
// outer layers.
func FitSamples(set []Sample, in, out int) []Sample {
	res := make([]Sample, len(set))
	for i, s := range set {
		res[i] = Sample{Input: fit(s.Input, in), Target: fit(s.Target, out)}
	}

	return res
}

func fit(x []float64, n int) []float64 {
	if n < 0 {
		n = 0
	}
	res := make([]float64, n)
	copy(res, x)

	return res
}

// MeanAbsError returns the mean, over set, of the mean absolute difference
// between target and net's output. An empty set returns 0.
func MeanAbsError(net Network, set []Sample) (float64, error) {
	if len(set) == 0 {
		return 0, nil
	}
	var sum float64
	for i, s := range set {
		y, err := net.FeedForward(s.Input)
		if err != nil {
			return 0, errors.Wrapf(err, "sample %d", i)
		}
		if len(y) != len(s.Target) {
			return 0, errors.Wrapf(matrix.ErrDimensionMismatch, "sample %d: target has %d values, network gives %d", i, len(s.Target), len(y))
		}
		var e float64
		for j := range y {
			d := s.Target[j] - y[j]
			if d < 0 {
				d = -d
			}
			e += d
		}
		sum += e / float64(len(y))
	}

	return sum / float64(len(set)), nil
}
