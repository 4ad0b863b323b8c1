// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvpca/matrix"
	"github.com/stretchr/testify/require"
)

const epsTight = 1e-12

func TestCenterColumns_SmallAndFallback(t *testing.T) {
	t.Parallel()

	X := newFilledDense(t, 2, 3, []float64{1, 2, 3, 10, 20, 30})

	Yf, meansF, err := matrix.CenterColumns(X)
	require.NoError(t, err)
	Ys, meansS, err := matrix.CenterColumns(hide{X})
	require.NoError(t, err)

	want := []float64{5.5, 11, 16.5}
	sliceClose(t, meansF, want, 0, 0)
	sliceClose(t, meansS, want, 0, 0)
	compareClose(t, Yf, Ys, 0, 0)

	var sum float64
	for j := 0; j < 3; j++ {
		sum = mustAt(t, Yf, 0, j) + mustAt(t, Yf, 1, j)
		require.LessOrEqual(t, math.Abs(sum/2), epsTight, "col %d not centered", j)
	}
}

func TestCovariance_Known(t *testing.T) {
	t.Parallel()

	// Columns x=[1,2,3,4], y=[2,4,6,8]: var(x)=5/3, var(y)=20/3, cov=10/3.
	X := newFilledDense(t, 4, 2, []float64{1, 2, 2, 4, 3, 6, 4, 8})
	cov, means, err := matrix.Covariance(X)
	require.NoError(t, err)
	sliceClose(t, means, []float64{2.5, 5}, 0, 0)
	compareClose(t, cov, newFilledDense(t, 2, 2, []float64{5.0 / 3, 10.0 / 3, 10.0 / 3, 20.0 / 3}), 0, epsTight)
	require.NoError(t, matrix.ValidateSymmetric(cov, 0))
}

func TestCovariance_ConstantColumnIsZero(t *testing.T) {
	t.Parallel()

	X := newFilledDense(t, 4, 2, []float64{1, 5, 2, 5, 3, 5, 4, 5})
	cov, _, err := matrix.Covariance(X)
	require.NoError(t, err)
	require.Equal(t, 0.0, mustAt(t, cov, 1, 1))
	require.Equal(t, 0.0, mustAt(t, cov, 0, 1))
}

func TestCovariance_Errors(t *testing.T) {
	t.Parallel()

	_, _, err := matrix.Covariance(newFilledDense(t, 1, 3, []float64{1, 2, 3}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, _, err = matrix.Covariance(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestBroadcastCols_RoundTrip(t *testing.T) {
	t.Parallel()

	X := newFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	shift := []float64{0.5, -1}
	sub, err := matrix.BroadcastSubCols(X, shift)
	require.NoError(t, err)
	back, err := matrix.BroadcastAddCols(hide{sub}, shift)
	require.NoError(t, err)
	compareClose(t, back, X, 0, 0)

	_, err = matrix.BroadcastSubCols(X, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestAllClose(t *testing.T) {
	t.Parallel()

	a := newFilledDense(t, 1, 2, []float64{1, 2})
	b := newFilledDense(t, 1, 2, []float64{1 + 1e-10, 2})
	ok, err := matrix.AllClose(a, b, 0, 1e-9)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.AllClose(hide{a}, b, 0, 1e-12)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = matrix.AllClose(a, b, math.NaN(), 0)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}
