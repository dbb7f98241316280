// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlann/matrix"
)

// tol is the comparison tolerance for round-trip algebra.
const tol = 1e-9

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Use hide{X} in tests to force the non-*Dense (fallback) paths.
type hide struct{ matrix.Matrix }

// MustDense ALLOCATES an r×c *Dense or fails the test.
func MustDense(tb testing.TB, r, c int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(tb, err)

	return m
}

// MustFromRows builds a *Dense from literal rows or fails the test.
func MustFromRows(tb testing.TB, rows [][]float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(tb, err)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(tb testing.TB, m matrix.Matrix, i, j int) float64 {
	tb.Helper()
	v, err := m.At(i, j)
	require.NoError(tb, err)

	return v
}

// RandomFill overwrites m with values in [-1, 1) from a seeded source.
func RandomFill(tb testing.TB, m *matrix.Dense, seed int64) *matrix.Dense {
	tb.Helper()
	r := rand.New(rand.NewSource(seed))
	_, err := m.Apply(func(_, _ int, _ float64) float64 { return r.Float64()*2 - 1 })
	require.NoError(tb, err)

	return m
}

// RandomDense allocates and fills an r×c matrix in one call.
func RandomDense(tb testing.TB, r, c int, seed int64) *matrix.Dense {
	tb.Helper()

	return RandomFill(tb, MustDense(tb, r, c), seed)
}

// RequireClose asserts shape equality and cell-wise closeness within tol.
func RequireClose(tb testing.TB, want, got matrix.Matrix) {
	tb.Helper()
	ok, err := matrix.AllClose(got, want, matrix.WithEpsilon(tol), matrix.WithRelTolerance(tol))
	require.NoError(tb, err)
	require.Truef(tb, ok, "matrices differ:\nwant\n%v\ngot\n%v", want, got)
}

// CompareExact asserts m equals the literal rows bit for bit.
func CompareExact(tb testing.TB, want [][]float64, m *matrix.Dense) {
	tb.Helper()
	require.Equal(tb, want, m.ToRows())
}
