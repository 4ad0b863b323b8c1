// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvpca/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateBinarySameShape covers nil inputs, matching and mismatched dimensions.
func TestValidateBinarySameShape(t *testing.T) {
	t.Parallel()

	var typedNil *matrix.Dense
	tests := []struct {
		name    string
		a, b    matrix.Matrix
		wantErr error
	}{
		{"both nil", nil, nil, matrix.ErrNilMatrix},
		{"first nil", nil, mustDense(t, 2, 2), matrix.ErrNilMatrix},
		{"second typed nil", mustDense(t, 2, 2), typedNil, matrix.ErrNilMatrix},
		{"equal 2x3", mustDense(t, 2, 3), mustDense(t, 2, 3), nil},
		{"row mismatch", mustDense(t, 2, 3), mustDense(t, 3, 3), matrix.ErrDimensionMismatch},
		{"col mismatch", mustDense(t, 2, 3), mustDense(t, 2, 4), matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateBinarySameShape(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestValidateSymmetric(t *testing.T) {
	t.Parallel()

	sym := newFilledDense(t, 2, 2, []float64{2, 1, 1, 3})
	require.NoError(t, matrix.ValidateSymmetric(sym, 0))
	require.NoError(t, matrix.ValidateSymmetric(hide{sym}, 0))

	skew := newFilledDense(t, 2, 2, []float64{2, 1, 1.1, 3})
	require.ErrorIs(t, matrix.ValidateSymmetric(skew, 1e-3), matrix.ErrAsymmetry)
	require.NoError(t, matrix.ValidateSymmetric(skew, -0.2)) // |tol| is used

	require.ErrorIs(t, matrix.ValidateSymmetric(sym, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, matrix.ValidateSymmetric(mustDense(t, 2, 3), 0), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateSymmetric(nil, 0), matrix.ErrNilMatrix)
}

func TestValidateFinite(t *testing.T) {
	t.Parallel()

	clean := newFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, matrix.ValidateFinite(clean))
	require.NoError(t, matrix.ValidateFinite(hide{clean}))

	raw, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {math.Inf(-1), 4}}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	err = matrix.ValidateFinite(raw)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	require.Contains(t, err.Error(), "(1,0)")
	require.ErrorIs(t, matrix.ValidateFinite(hide{raw}), matrix.ErrNaNInf)

	require.ErrorIs(t, matrix.ValidateFinite(nil), matrix.ErrNilMatrix)
}
