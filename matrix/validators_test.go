// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlann/matrix"
)

// TestValidateSameShape covers nil inputs, matching and mismatched dimensions.
func TestValidateSameShape(t *testing.T) {
	t.Parallel()

	zeros := func(r, c int) matrix.Matrix {
		m, err := matrix.NewDense(r, c)
		require.NoError(t, err)
		return m
	}
	var typedNil *matrix.Dense

	tests := []struct {
		name    string
		a, b    matrix.Matrix
		wantErr error
	}{
		{"both nil", nil, nil, matrix.ErrNilMatrix},
		{"first nil", nil, zeros(2, 2), matrix.ErrNilMatrix},
		{"second nil", zeros(2, 2), nil, matrix.ErrNilMatrix},
		{"typed nil", typedNil, zeros(2, 2), matrix.ErrNilMatrix},
		{"equal 2x3", zeros(2, 3), zeros(2, 3), nil},
		{"row mismatch", zeros(2, 3), zeros(3, 3), matrix.ErrDimensionMismatch},
		{"col mismatch", zeros(2, 3), zeros(2, 4), matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateBinarySameShape(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				require.Truef(t, errors.Is(err, tc.wantErr),
					"expected errors.Is(%v, %v)", err, tc.wantErr)
			}
		})
	}
}

func TestValidateSquareAndMul(t *testing.T) {
	t.Parallel()
	require.NoError(t, matrix.ValidateSquare(MustDense(t, 3, 3)))
	require.ErrorIs(t, matrix.ValidateSquare(MustDense(t, 3, 2)), matrix.ErrNonSquare)
	require.ErrorIs(t, matrix.ValidateSquare(nil), matrix.ErrNilMatrix)

	require.NoError(t, matrix.ValidateMulCompatible(MustDense(t, 1, 3), MustDense(t, 3, 7)))
	require.ErrorIs(t, matrix.ValidateMulCompatible(MustDense(t, 1, 3), MustDense(t, 1, 3)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateMulCompatible(MustDense(t, 1, 3), nil), matrix.ErrNilMatrix)
}

func TestValidateRectangularAndFinite(t *testing.T) {
	t.Parallel()
	require.NoError(t, matrix.ValidateRectangular([][]float64{{1, 2}, {3, 4}}))
	require.ErrorIs(t, matrix.ValidateRectangular([][]float64{{1, 2}, {3}}), matrix.ErrRaggedShape)
	require.ErrorIs(t, matrix.ValidateRectangular(nil), matrix.ErrRaggedShape)

	require.NoError(t, matrix.ValidateFinite([]float64{0, -1, 1e300}))
	require.ErrorIs(t, matrix.ValidateFinite([]float64{0, math.Inf(1)}), matrix.ErrNaNInf)
	require.ErrorIs(t, matrix.ValidateFinite([]float64{math.NaN()}), matrix.ErrNaNInf)
}
