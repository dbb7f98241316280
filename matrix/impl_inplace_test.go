// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlann/matrix"
)

func TestAddSubtract_InPlaceChaining(t *testing.T) {
	t.Parallel()
	a := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	b := MustFromRows(t, [][]float64{{10, 20}, {30, 40}})

	got, err := a.Add(b)
	require.NoError(t, err)
	require.Same(t, a, got, "Add must return the receiver")
	CompareExact(t, [][]float64{{11, 22}, {33, 44}}, a)

	_, err = a.Subtract(b)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 2}, {3, 4}}, a)
	// operand untouched
	CompareExact(t, [][]float64{{10, 20}, {30, 40}}, b)
}

func TestAdd_InPlace_Fallback(t *testing.T) {
	t.Parallel()
	a := MustFromRows(t, [][]float64{{1, 2}})
	b := MustFromRows(t, [][]float64{{3, 4}})
	_, err := a.Add(hide{b})
	require.NoError(t, err)
	CompareExact(t, [][]float64{{4, 6}}, a)
}

func TestInPlace_DimensionMismatch(t *testing.T) {
	t.Parallel()
	a := MustDense(t, 2, 3)
	b := MustDense(t, 3, 2)

	_, err := a.Add(b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = a.Subtract(b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = a.MulElem(b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = a.Add(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMulScalarAndMulElem(t *testing.T) {
	t.Parallel()
	a := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	require.Same(t, a, a.MulScalar(2))
	CompareExact(t, [][]float64{{2, 4}, {6, 8}}, a)

	b := MustFromRows(t, [][]float64{{0.5, 0}, {-1, 2}})
	_, err := a.MulElem(b)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 0}, {-6, 16}}, a)

	_, err = a.MulElem(hide{b})
	require.NoError(t, err)
	CompareExact(t, [][]float64{{0.5, 0}, {6, 32}}, a)
}

func TestReshape_GrowAndShrink(t *testing.T) {
	t.Parallel()
	m := MustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	_, err := m.Reshape(3, 4)
	require.NoError(t, err)
	CompareExact(t, [][]float64{
		{1, 2, 3, 0},
		{4, 5, 6, 0},
		{0, 0, 0, 0},
	}, m)

	_, err = m.Reshape(1, 2)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 2}}, m)

	// mixed: fewer rows, more cols
	m = MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	_, err = m.Reshape(1, 3)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 2, 0}}, m)
}

func TestReshape_Invalid(t *testing.T) {
	t.Parallel()
	m := MustFromRows(t, [][]float64{{1, 2}})
	_, err := m.Reshape(0, 2)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = m.Reshape(2, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	CompareExact(t, [][]float64{{1, 2}}, m) // untouched
}

type constSource float64

func (c constSource) Float64() float64 { return float64(c) }

func TestRandomize(t *testing.T) {
	t.Parallel()
	m := MustDense(t, 2, 2)
	_, err := m.Randomize(constSource(0.25), -1, 1)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{-0.5, -0.5}, {-0.5, -0.5}}, m)

	// adds on top of existing values
	_, err = m.Randomize(constSource(0.5), -1, 1)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{-0.5, -0.5}, {-0.5, -0.5}}, m)

	_, err = m.Randomize(nil, 0, 1)
	require.ErrorIs(t, err, matrix.ErrNilSource)
}
