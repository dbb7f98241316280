// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Kernels wrap these sentinels with an operation
// tag via matrixErrorf; callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape/ragged -> dimension mismatch -> square -> singular.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive
	// (NewDense, Reshape).
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrRaggedShape is returned when nested input is empty or its rows differ in length.
	ErrRaggedShape = errors.New("matrix: ragged or empty rows")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Subtract/MulElem with different shapes, or Dot where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	// Determinant and Inverse report it instead of a "no value" result.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned by Inverse when the determinant is zero.
	// It is the expected outcome of an invertibility probe, not a failure.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNaNInf signals a NaN or ±Inf value was written where the numeric
	// policy requires finite values (Set, Apply, NewFromRows).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNilSource indicates that Randomize was called without a random source.
	ErrNilSource = errors.New("matrix: nil random source")
)
