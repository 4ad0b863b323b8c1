// SPDX-License-Identifier: MIT
package pca_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvpca/matrix"
	"github.com/stretchr/testify/require"
)

// hide masks the concrete *Dense type so kernels take their generic paths.
type hide struct{ matrix.Matrix }

func mustRows(tb testing.TB, rows [][]float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(tb, err)

	return m
}

func mustToRows(tb testing.TB, m matrix.Matrix) [][]float64 {
	tb.Helper()
	rows, err := matrix.ToRows(m)
	require.NoError(tb, err)

	return rows
}

func colOf(tb testing.TB, m matrix.Matrix, j int) []float64 {
	tb.Helper()
	out := make([]float64, m.Rows())
	for i := range out {
		v, err := m.At(i, j)
		require.NoError(tb, err)
		out[i] = v
	}

	return out
}

func dotVec(a, b []float64) float64 {
	s := 0.0
	for i := range a {
		s += a[i] * b[i]
	}

	return s
}

// requireParallel asserts got == ±want element-wise within tol.
func requireParallel(tb testing.TB, got, want []float64, tol float64) {
	tb.Helper()
	require.Len(tb, got, len(want))
	sign := 1.0
	if dotVec(got, want) < 0 {
		sign = -1
	}
	for i := range want {
		require.InDelta(tb, want[i], sign*got[i], tol, "index %d: got %v want ±%v", i, got, want)
	}
}

// requireOrthonormal asserts CᵀC ≈ I for the columns of c.
func requireOrthonormal(tb testing.TB, c matrix.Matrix, tol float64) {
	tb.Helper()
	k := c.Cols()
	for a := 0; a < k; a++ {
		ca := colOf(tb, c, a)
		for b := a; b < k; b++ {
			want := 0.0
			if a == b {
				want = 1
			}
			require.InDelta(tb, want, dotVec(ca, colOf(tb, c, b)), tol, "columns %d,%d", a, b)
		}
	}
}

func requireNonIncreasing(tb testing.TB, v []float64) {
	tb.Helper()
	for i := 1; i < len(v); i++ {
		require.LessOrEqual(tb, v[i], v[i-1], "index %d of %v", i, v)
	}
}

func maxAbsDiff(tb testing.TB, a, b matrix.Matrix) float64 {
	tb.Helper()
	require.Equal(tb, a.Rows(), b.Rows())
	require.Equal(tb, a.Cols(), b.Cols())
	worst := 0.0
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			av, _ := a.At(i, j)
			bv, _ := b.At(i, j)
			worst = math.Max(worst, math.Abs(av-bv))
		}
	}

	return worst
}
