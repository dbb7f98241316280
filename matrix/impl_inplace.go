// SPDX-License-Identifier: MIT

// Package matrix - in-place kernels on *Dense.
//
// Purpose:
//   - Mutate the receiver and return it, so updates can be chained:
//     w.Add(grad) / delta.MulElem(slope) / m.Reshape(r, c).
//   - Share validation with the pure kernels (ValidateBinarySameShape).
//
// Determinism:
//   - Flat 0..n-1 walks for *Dense operands, i→j for any other Matrix.
//
// Notes:
//   - The receiver is never replaced; Reshape swaps its backing buffer but the
//     *Dense handle held by callers stays valid.
package matrix

import "fmt"

// Operation tags for the in-place kernels.
const (
	opAddInPlace  = "Dense.Add"
	opSubInPlace  = "Dense.Subtract"
	opMulElem     = "Dense.MulElem"
	opReshape     = "Dense.Reshape"
	opRandomize   = "Dense.Randomize"
	opMulScalarIP = "Dense.MulScalar"
)

// axpyInPlace computes m[i,j] += sign*b[i,j] in place.
// Implementation:
//   - Stage 1: ValidateBinarySameShape(m, b).
//   - Stage 2: flat loop when b is *Dense; else At-based fallback.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense) axpyInPlace(b Matrix, sign float64, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(m, b); err != nil {
		return m, matrixErrorf(opTag, err)
	}
	if db, ok := b.(*Dense); ok {
		for idx := range m.data {
			m.data[idx] += sign * db.data[idx]
		}

		return m, nil
	}

	var i, j int
	var bv float64
	var err error
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			if bv, err = b.At(i, j); err != nil {
				return m, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			m.data[i*m.c+j] += sign * bv
		}
	}

	return m, nil
}

// Add adds b element-wise into m and returns m.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (shapes must match exactly).
//
// Complexity: O(r*c).
func (m *Dense) Add(b Matrix) (*Dense, error) { return m.axpyInPlace(b, +1, opAddInPlace) }

// Subtract subtracts b element-wise from m and returns m.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (shapes must match exactly).
//
// Complexity: O(r*c).
func (m *Dense) Subtract(b Matrix) (*Dense, error) { return m.axpyInPlace(b, -1, opSubInPlace) }

// MulScalar multiplies every cell by alpha and returns m.
// Complexity: O(r*c).
func (m *Dense) MulScalar(alpha float64) *Dense {
	for idx := range m.data {
		m.data[idx] *= alpha
	}

	return m
}

// MulElem performs the Hadamard product m ⊙ b in place and returns m.
// Distinct from Dot: shapes must be identical.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity: O(r*c).
func (m *Dense) MulElem(b Matrix) (*Dense, error) {
	if err := ValidateBinarySameShape(m, b); err != nil {
		return m, matrixErrorf(opMulElem, err)
	}
	if db, ok := b.(*Dense); ok {
		for idx := range m.data {
			m.data[idx] *= db.data[idx]
		}

		return m, nil
	}

	var i, j int
	var bv float64
	var err error
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			if bv, err = b.At(i, j); err != nil {
				return m, matrixErrorf(opMulElem, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			m.data[i*m.c+j] *= bv
		}
	}

	return m, nil
}

// Reshape resizes m to rows×cols in place and returns m.
// MAIN DESCRIPTION:
//   - Truncates rows/columns beyond the new bounds and zero-extends beyond the
//     old bounds; the overlapping top-left region keeps its values.
//
// Implementation:
//   - Stage 1: validate rows ≥ 1 && cols ≥ 1.
//   - Stage 2: allocate a fresh zeroed buffer and copy the overlap row by row.
//   - Stage 3: swap the buffer and dimensions into the receiver.
//
// Errors:
//   - ErrInvalidDimensions (m is left untouched).
//
// Complexity:
//   - Time O(rows*cols), Space O(rows*cols).
//
// Notes:
//   - New cells start at zero; re-randomizing them is the caller's decision.
func (m *Dense) Reshape(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return m, matrixErrorf(opReshape, fmt.Errorf("(%d,%d): %w", rows, cols, ErrInvalidDimensions))
	}
	if rows == m.r && cols == m.c {
		return m, nil
	}

	buf := make([]float64, rows*cols)
	keepR, keepC := min(rows, m.r), min(cols, m.c)
	for i := 0; i < keepR; i++ {
		copy(buf[i*cols:i*cols+keepC], m.data[i*m.c:i*m.c+keepC])
	}
	m.r, m.c, m.data = rows, cols, buf

	return m, nil
}

// Randomize adds an independent uniform draw from [lo, hi) to every cell,
// row-major, and returns m. On a zero matrix this is plain uniform
// initialization.
//
// Errors:
//   - ErrNilSource when src is nil.
//
// Complexity: O(r*c) draws.
func (m *Dense) Randomize(src Source, lo, hi float64) (*Dense, error) {
	if src == nil {
		return m, matrixErrorf(opRandomize, ErrNilSource)
	}
	span := hi - lo
	for idx := range m.data {
		m.data[idx] += src.Float64()*span + lo
	}

	return m, nil
}
