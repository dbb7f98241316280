// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation,
// including element-wise addition, subtraction, Hadamard product, matrix
// multiplication, transpose, scalar scaling, determinant and inverse.
// All functions perform strict fail-fast validation and return clear errors
// on dimension mismatches.
//
// Purpose:
//   - Declare canonical linear-algebra kernels used across the package.
//   - Define operation tags and shared constants for determinism and error reporting.
//
// Notes:
//   - Package-level kernels never mutate their operands and always allocate.
//   - Dot/T/Determinant/Inverse are also exposed as *Dense methods; Dot and T
//     return fresh storage, exactly like the package-level kernels.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial sum value for accumulations.
const ZeroSum = 0.0

// ZeroPivot is the sentinel for detecting a zero pivot in elimination routines.
const ZeroPivot = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opTranspose   = "Transpose"
	opScale       = "Scale"
	opHadamard    = "Hadamard"
	opDeterminant = "Determinant"
	opInverse     = "Inverse"
	opDot         = "Dense.Dot"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// asDense returns m itself when it is a *Dense, otherwise a *Dense copy
// materialized through At.
// Complexity: O(1) for *Dense, O(r*c) otherwise.
func asDense(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	res, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var v float64
	for i := 0; i < res.r; i++ {
		for j := 0; j < res.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			res.data[i*res.c+j] = v
		}
	}

	return res, nil
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes. A fresh Dense is allocated; operands are not mutated.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Copy a into a fresh Dense.
//   - Stage 2: reuse the in-place kernel on the copy.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub(a, b Matrix, sign float64, opTag string) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	res := da.Copy()
	if _, err = res.axpyInPlace(b, sign, opTag); err != nil {
		return nil, err
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (Matrix, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Sub(a, b Matrix) (Matrix, error) { return addSub(a, b, -1, opSub) }

// Hadamard returns the element-wise product A ⊙ B as a fresh Dense.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
func Hadamard(a, b Matrix) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}
	res := da.Copy()
	if _, err = res.MulElem(b); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}

	return res, nil
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, use i→k→j with row-major strides and skip zeros;
//     otherwise use i→j→k with a fixed order and zero-skip on A[i,k].
//
// Inputs:
//   - A: left matrix with shape (r × n).
//   - B: right matrix with shape (n × c).
//
// Returns:
//   - Matrix: new Dense C with shape (r × c).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Determinism:
//   - Fixed loop orders; each C[i,j] accumulates over k in ascending order on both paths.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c). Skipping zero A[i,k] avoids useless multiplies.
func Mul(a, b Matrix) (Matrix, error) {
	res, err := mul(a, b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return res, nil
}

// mul is the shared kernel behind Mul and Dense.Dot; errors are untagged.
func mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, err
	}
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, err
	}
	var (
		i, j, k         int
		av, bv, current float64
	)
	// Fast-path for two Dense matrices.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// da.data layout: i*aCols + k ; db.data layout: k*bCols + j
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					if av == 0 {
						continue
					}
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k).
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, fmt.Errorf("At(%d,%d): %w", i, k, err)
				}
				if av == 0 {
					continue
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, fmt.Errorf("At(%d,%d): %w", k, j, err)
				}
				current += av * bv
			}
			res.data[i*bCols+j] = current
		}
	}

	return res, nil
}

// Dot returns the matrix product m·b as a new matrix of shape m.Rows()×b.Cols().
// Neither operand is mutated.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch when m.Cols() != b.Rows().
func (m *Dense) Dot(b Matrix) (*Dense, error) {
	res, err := mul(m, b)
	if err != nil {
		return nil, matrixErrorf(opDot, err)
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Input is validated non-nil; the original matrix is never mutated.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (Matrix, error) {
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	return d.T(), nil
}

// T returns mᵀ as a new Cols×Rows matrix.
// Complexity: O(r*c).
func (m *Dense) T() *Dense {
	res := &Dense{r: m.c, c: m.r, data: make([]float64, len(m.data)), validateNaNInf: m.validateNaNInf}
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[base+j]
		}
	}

	return res
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
// The original matrix is never mutated.
//
// Errors:
//   - ErrNilMatrix.
func Scale(m Matrix, alpha float64) (Matrix, error) {
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	return d.Copy().MulScalar(alpha), nil
}

// Determinant returns det(m).
// MAIN DESCRIPTION:
//   - 1×1 and 2×2 use the closed forms.
//   - n ≥ 3 runs Gaussian elimination on a scratch copy: for each column,
//     swap in the first row below with a non-zero entry when the pivot is
//     zero (each swap flips the sign), then eliminate below the pivot.
//     det = ±∏ pivots.
//
// Errors:
//   - ErrNonSquare when Rows != Cols (there is no determinant to report).
//
// Determinism:
//   - Fixed column-major pivot scan and row order.
//
// Complexity:
//   - Time O(n^3), Space O(n^2) scratch.
//
// Notes:
//   - Only zero-avoidance swaps are made; no magnitude-based partial pivoting.
func (m *Dense) Determinant() (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	n := m.r
	switch n {
	case 1:
		return m.data[0], nil
	case 2:
		return m.data[0]*m.data[3] - m.data[1]*m.data[2], nil
	}

	w := make([]float64, len(m.data))
	copy(w, m.data)
	det := 1.0
	var col, p, r, k int
	var pivot, f float64
	for col = 0; col < n; col++ {
		// find a non-zero pivot at or below the diagonal
		for p = col; p < n && w[p*n+col] == ZeroPivot; p++ {
		}
		if p == n {
			return 0, nil
		}
		if p != col {
			swapRows(w, n, p, col)
			det = -det
		}
		pivot = w[col*n+col]
		det *= pivot
		for r = col + 1; r < n; r++ {
			f = w[r*n+col] / pivot
			if f == 0 {
				continue
			}
			for k = col; k < n; k++ {
				w[r*n+k] -= f * w[col*n+k]
			}
		}
	}

	return det, nil
}

// Inverse returns m⁻¹ computed by Gauss–Jordan elimination on [m | I].
// MAIN DESCRIPTION:
//   - Singular input is reported with ErrSingular, the expected answer of an
//     invertibility probe; callers test errors.Is(err, ErrSingular).
//
// Implementation:
//   - Stage 1: ValidateSquare; Determinant == 0 ⇒ ErrSingular.
//   - Stage 2: per column, swap in a row with a non-zero pivot if needed,
//     normalize the pivot row, eliminate the column from all other rows.
//
// Errors:
//   - ErrNonSquare, ErrSingular.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func (m *Dense) Inverse() (*Dense, error) {
	det, err := m.Determinant()
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if det == 0 || math.IsNaN(det) {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}

	n := m.r
	a := make([]float64, len(m.data))
	copy(a, m.data)
	inv, _ := NewIdentity(n) // n ≥ 1 here
	inv.validateNaNInf = m.validateNaNInf

	var col, p, r, k int
	var pivot, f float64
	for col = 0; col < n; col++ {
		for p = col; p < n && a[p*n+col] == ZeroPivot; p++ {
		}
		if p == n {
			return nil, matrixErrorf(opInverse, ErrSingular)
		}
		if p != col {
			swapRows(a, n, p, col)
			swapRows(inv.data, n, p, col)
		}
		pivot = a[col*n+col]
		for k = 0; k < n; k++ {
			a[col*n+k] /= pivot
			inv.data[col*n+k] /= pivot
		}
		for r = 0; r < n; r++ {
			if r == col {
				continue
			}
			f = a[r*n+col]
			if f == 0 {
				continue
			}
			for k = 0; k < n; k++ {
				a[r*n+k] -= f * a[col*n+k]
				inv.data[r*n+k] -= f * inv.data[col*n+k]
			}
		}
	}

	return inv, nil
}

// Determinant is the Matrix-interface facade of Dense.Determinant.
func Determinant(m Matrix) (float64, error) {
	d, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return d.Determinant()
}

// Inverse is the Matrix-interface facade of Dense.Inverse.
func Inverse(m Matrix) (Matrix, error) {
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	inv, err := d.Inverse()
	if err != nil {
		return nil, err
	}

	return inv, nil
}

// swapRows exchanges rows p and q of an n-column row-major buffer.
func swapRows(buf []float64, n, p, q int) {
	rp, rq := buf[p*n:(p+1)*n], buf[q*n:(q+1)*n]
	for k := 0; k < n; k++ {
		rp[k], rq[k] = rq[k], rp[k]
	}
}
