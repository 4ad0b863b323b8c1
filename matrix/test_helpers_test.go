// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures and comparison utilities for kernels.
//   - Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvpca/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing kernels onto their generic At/Set fallback paths.
type hide struct{ matrix.Matrix }

// mustDense allocates an r×c *Dense or fails the test.
func mustDense(tb testing.TB, r, c int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(tb, err)

	return m
}

// newFilledDense builds an r×c *Dense from row-major data.
func newFilledDense(tb testing.TB, r, c int, data []float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDenseFromData(r, c, data)
	require.NoError(tb, err)

	return m
}

// mustAt reads (i,j) or fails the test.
func mustAt(tb testing.TB, m matrix.Matrix, i, j int) float64 {
	tb.Helper()
	v, err := m.At(i, j)
	require.NoError(tb, err)

	return v
}

// compareClose asserts element-wise |a-b| <= atol + rtol*|b|.
func compareClose(tb testing.TB, a, b matrix.Matrix, rtol, atol float64) {
	tb.Helper()
	require.Equal(tb, a.Rows(), b.Rows(), "rows")
	require.Equal(tb, a.Cols(), b.Cols(), "cols")
	var av, bv float64
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			av, bv = mustAt(tb, a, i, j), mustAt(tb, b, i, j)
			if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
				tb.Fatalf("mismatch at (%d,%d): got %.17g, want %.17g", i, j, av, bv)
			}
		}
	}
}

// sliceClose asserts element-wise closeness of two vectors.
func sliceClose(tb testing.TB, got, want []float64, rtol, atol float64) {
	tb.Helper()
	require.Len(tb, got, len(want))
	for i := range want {
		if math.Abs(got[i]-want[i]) > atol+rtol*math.Abs(want[i]) {
			tb.Fatalf("index %d: got %.17g, want %.17g", i, got[i], want[i])
		}
	}
}

// fillDenseRand fills m with deterministic values in [-1, 1).
func fillDenseRand(tb testing.TB, m *matrix.Dense, seed int64) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	require.NoError(tb, m.Apply(func(_, _ int, _ float64) float64 {
		return rng.Float64()*2 - 1
	}))
}

// randomSymmetric returns AᵀA for a deterministic random n×n A (symmetric PSD).
func randomSymmetric(tb testing.TB, n int, seed int64) matrix.Matrix {
	tb.Helper()
	a := mustDense(tb, n, n)
	fillDenseRand(tb, a, seed)
	at, err := matrix.Transpose(a)
	require.NoError(tb, err)
	s, err := matrix.Mul(at, a)
	require.NoError(tb, err)

	return s
}
