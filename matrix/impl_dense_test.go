// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlann/matrix"
)

func TestNewDenseDefaultZero(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{
		{1, 1},
		{3, 3},
		{2, 6},
	} {
		tc := tc
		t.Run(fmt.Sprintf("%dx%d", tc.rows, tc.cols), func(t *testing.T) {
			t.Parallel()
			m := MustDense(t, tc.rows, tc.cols)
			require.Equal(t, tc.rows, m.Rows())
			require.Equal(t, tc.cols, m.Cols())
			require.Equal(t, tc.cols, m.Width())
			require.Equal(t, tc.rows, m.Height())
			m.Do(func(i, j int, v float64) bool {
				require.Zerof(t, v, "cell [%d,%d] of a new Dense must be 0", i, j)
				return true
			})
		})
	}
}

func TestNewDense_InvalidDimensions(t *testing.T) {
	t.Parallel()
	for _, shape := range [][2]int{{0, 1}, {1, 0}, {-1, 3}, {0, 0}} {
		_, err := matrix.NewDense(shape[0], shape[1])
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions, "shape %v", shape)
	}
}

func TestNewFromRows_DeepCopy(t *testing.T) {
	t.Parallel()
	src := [][]float64{{1, 2, 3}, {4, 5, 6}}
	m := MustFromRows(t, src)
	src[0][0] = 100 // must not leak into m

	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
	require.Equal(t, 6.0, MustAt(t, m, 1, 2))
}

func TestNewFromRows_Ragged(t *testing.T) {
	t.Parallel()
	cases := map[string][][]float64{
		"nil":       nil,
		"empty":     {},
		"empty row": {{}},
		"ragged":    {{1, 2}, {3}},
		"ragged2":   {{1}, {2, 3}},
	}
	for name, rows := range cases {
		_, err := matrix.NewFromRows(rows)
		require.ErrorIs(t, err, matrix.ErrRaggedShape, name)
	}
}

func TestNewFromRows_NaNPolicy(t *testing.T) {
	t.Parallel()
	_, err := matrix.NewFromRows([][]float64{{1, math.NaN()}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	m, err := matrix.NewFromRows([][]float64{{math.Inf(1)}}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.True(t, math.IsInf(MustAt(t, m, 0, 0), 1))
}

func TestNewRowVector(t *testing.T) {
	t.Parallel()
	v, err := matrix.NewRowVector([]float64{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, 1, v.Rows())
	require.Equal(t, 3, v.Cols())

	_, err = matrix.NewRowVector(nil)
	require.ErrorIs(t, err, matrix.ErrRaggedShape)
}

func TestAtSet_OutOfRange(t *testing.T) {
	t.Parallel()
	m := MustDense(t, 2, 2)
	_, err := m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.NoError(t, m.Set(1, 1, 7))
	require.Equal(t, 7.0, MustAt(t, m, 1, 1))
}

func TestCopy_Independent(t *testing.T) {
	t.Parallel()
	a := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	b := a.Copy()
	require.NoError(t, b.Set(0, 0, 42))
	require.Equal(t, 1.0, MustAt(t, a, 0, 0))

	c, ok := a.Clone().(*matrix.Dense)
	require.True(t, ok)
	CompareExact(t, [][]float64{{1, 2}, {3, 4}}, c)
}

func TestRowAndToRows(t *testing.T) {
	t.Parallel()
	m := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	r, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 4}, r)
	r[0] = 99 // copy
	require.Equal(t, 3.0, MustAt(t, m, 1, 0))

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestApply_VisitsEveryCellOnce(t *testing.T) {
	t.Parallel()
	m := MustDense(t, 3, 4)
	seen := make(map[[2]int]int)
	got, err := m.Apply(func(i, j int, v float64) float64 {
		seen[[2]int{i, j}]++
		return v + float64(i*10+j)
	})
	require.NoError(t, err)
	require.Same(t, m, got)
	require.Len(t, seen, 12)
	for k, n := range seen {
		require.Equalf(t, 1, n, "cell %v visited %d times", k, n)
	}
	require.Equal(t, 23.0, MustAt(t, m, 2, 3))
}

func TestApply_NaNRejected(t *testing.T) {
	t.Parallel()
	m := MustDense(t, 1, 2)
	_, err := m.Apply(func(_, j int, _ float64) float64 {
		if j == 1 {
			return math.Inf(-1)
		}
		return 1
	})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	// cells before the failure remain updated
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
}

func TestMapAndFill(t *testing.T) {
	t.Parallel()
	m := MustFromRows(t, [][]float64{{1, -2}})
	_, err := m.Map(math.Abs)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 2}}, m)

	_, err = m.Fill(3)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{3, 3}}, m)

	_, err = m.Fill(math.NaN())
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestDo_EarlyStop(t *testing.T) {
	t.Parallel()
	m := MustDense(t, 3, 3)
	n := 0
	m.Do(func(_, _ int, _ float64) bool {
		n++
		return n < 4
	})
	require.Equal(t, 4, n)
}

func TestString(t *testing.T) {
	t.Parallel()
	m := MustFromRows(t, [][]float64{{1, 2.5}, {-3, 0}})
	require.Equal(t, "[1, 2.5]\n[-3, 0]\n", m.String())
}

func TestStatistics(t *testing.T) {
	t.Parallel()
	m := MustFromRows(t, [][]float64{{1, -2}, {3, -4}})
	require.InDelta(t, 2.5, m.AbsMean(), tol)
	require.InDelta(t, -2.0, m.SumAll(), tol)

	mean, err := m.ColumnMean(1)
	require.NoError(t, err)
	require.InDelta(t, -3.0, mean, tol)

	_, err = m.ColumnMean(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestJSON_RoundTrip(t *testing.T) {
	t.Parallel()
	m := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	b, err := m.MarshalJSON()
	require.NoError(t, err)
	require.JSONEq(t, `[[1,2],[3,4]]`, string(b))

	var back matrix.Dense
	require.NoError(t, back.UnmarshalJSON(b))
	ok, err := matrix.Equal(m, &back)
	require.NoError(t, err)
	require.True(t, ok)

	require.ErrorIs(t, back.UnmarshalJSON([]byte(`[[1],[2,3]]`)), matrix.ErrRaggedShape)
}
