// Package matrix provides a dense, row-major float64 matrix and the linear
// algebra the training code in this module is built on.
//
// The matrix package provides:
//
//   - Dense: a rectangular grid with safe At/Set, deep Copy/Clone, Row/ToRows,
//     Apply (in-place map), Reshape (truncate / zero-extend), Randomize.
//   - In-place arithmetic that returns the receiver for chaining:
//     Add, Subtract, MulScalar, MulElem (Hadamard).
//   - Pure kernels that allocate: Dot, T, Determinant, Inverse and the
//     package-level Add, Sub, Mul, Hadamard, Scale, Transpose.
//   - Sentinel errors (ErrRaggedShape, ErrDimensionMismatch,
//     ErrInvalidDimensions, ErrNonSquare, ErrSingular, ...) matched with errors.Is.
//   - Converters to and from gonum's mat.Dense.
//
// Shapes follow the usual convention: A.Dot(B) requires A.Cols() == B.Rows()
// and yields A.Rows()×B.Cols(). A sample or activation is a 1×n row vector.
//
// Quick example:
//
//	a, _ := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}})
//	inv, err := a.Inverse()
//	if errors.Is(err, matrix.ErrSingular) {
//		// not invertible
//	}
//	id, _ := a.Dot(inv) // ≈ I₂
package matrix
