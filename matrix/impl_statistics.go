// SPDX-License-Identifier: MIT

// Package matrix - small reductions used by training loops.
//
// Purpose:
//   - AbsMean: mean absolute value (per-sample training error).
//   - ColumnMean: mean of one column over all rows (bias gradient averaging
//     for batches; a single-row matrix returns the row value itself).
//   - SumAll: plain sum of all cells.
//
// Determinism:
//   - Flat 0..n-1 accumulation order.
package matrix

import (
	"fmt"
	"math"
)

// AbsMean returns mean(|m[i,j]|) over every cell.
// Complexity: O(r*c).
func (m *Dense) AbsMean() float64 {
	sum := ZeroSum
	for _, v := range m.data {
		sum += math.Abs(v)
	}

	return sum / float64(len(m.data))
}

// ColumnMean returns the mean of column col over all rows.
// Errors: ErrOutOfRange.
// Complexity: O(r).
func (m *Dense) ColumnMean(col int) (float64, error) {
	if col < 0 || col >= m.c {
		return 0, fmt.Errorf("Dense.ColumnMean(%d): %w", col, ErrOutOfRange)
	}
	sum := ZeroSum
	for i := 0; i < m.r; i++ {
		sum += m.data[i*m.c+col]
	}

	return sum / float64(m.r), nil
}

// SumAll returns the sum of every cell.
func (m *Dense) SumAll() float64 {
	sum := ZeroSum
	for _, v := range m.data {
		sum += v
	}

	return sum
}
