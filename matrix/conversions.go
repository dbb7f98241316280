// SPDX-License-Identifier: MIT

// Package matrix - converters between *Dense and gonum's mat.Dense.
//
// Purpose:
//   - Hand matrices to gonum for routines this package does not implement
//     (SVD, eigen solvers) and bring results back.
//   - Serve as an independent oracle for Determinant, Inverse and Dot in tests.
//
// Both directions copy; no storage is shared with gonum.
package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const (
	opToGonum   = "ToGonum"
	opFromGonum = "FromGonum"
)

// ToGonum copies m into a new *mat.Dense of the same shape.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity: O(r*c).
func ToGonum(m Matrix) (*mat.Dense, error) {
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	buf := make([]float64, len(d.data))
	copy(buf, d.data)

	// gonum's backing layout is row-major with stride == cols, same as Dense.
	return mat.NewDense(d.r, d.c, buf), nil
}

// FromGonum copies any gonum matrix into a new *Dense.
//
// Errors:
//   - ErrNilMatrix for a nil input.
//   - ErrInvalidDimensions for gonum's empty matrix.
//   - ErrNaNInf under the numeric policy.
//
// Complexity: O(r*c).
func FromGonum(g mat.Matrix, opts ...Option) (*Dense, error) {
	if g == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	if gd, ok := g.(*mat.Dense); ok && gd.IsEmpty() {
		return nil, matrixErrorf(opFromGonum, ErrInvalidDimensions)
	}
	r, c := g.Dims()
	res, err := NewDense(r, c, opts...)
	if err != nil {
		return nil, matrixErrorf(opFromGonum, err)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if err = res.Set(i, j, g.At(i, j)); err != nil {
				return nil, matrixErrorf(opFromGonum, fmt.Errorf("(%d,%d): %w", i, j, err))
			}
		}
	}

	return res, nil
}
