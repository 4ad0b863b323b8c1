// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvpca/matrix"
	"github.com/stretchr/testify/require"
)

func TestNewDense_InvalidDimensions(t *testing.T) {
	t.Parallel()

	for _, shape := range [][2]int{{0, 1}, {1, 0}, {-1, 2}} {
		_, err := matrix.NewDense(shape[0], shape[1])
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions, "shape %v", shape)
	}
}

func TestDense_AtSetBounds(t *testing.T) {
	t.Parallel()

	m := mustDense(t, 2, 3)
	require.NoError(t, m.Set(1, 2, 7.5))
	require.Equal(t, 7.5, mustAt(t, m, 1, 2))

	_, err := m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
}

func TestNewDenseFromRows(t *testing.T) {
	t.Parallel()

	src := [][]float64{{1, 2}, {3, 4}, {5, 6}}
	m, err := matrix.NewDenseFromRows(src)
	require.NoError(t, err)
	r, c := m.Shape()
	require.Equal(t, 3, r)
	require.Equal(t, 2, c)

	src[0][0] = 100 // the input was copied
	require.Equal(t, 1.0, mustAt(t, m, 0, 0))

	_, err = matrix.NewDenseFromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrRaggedRows)

	_, err = matrix.NewDenseFromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDenseFromRows([][]float64{{}})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDenseFromRows([][]float64{{1, math.NaN()}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	raw, err := matrix.NewDenseFromRows([][]float64{{1, math.NaN()}}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.True(t, math.IsNaN(mustAt(t, raw, 0, 1)))
}

func TestNewDenseFromData(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewDenseFromData(2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, err)
	require.Equal(t, 3.0, mustAt(t, m, 1, 0))

	_, err = matrix.NewDenseFromData(2, 2, []float64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewDenseFromData(1, 2, []float64{1, math.Inf(1)})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestDense_CloneIsIndependent(t *testing.T) {
	t.Parallel()

	m := newFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	cp := m.Clone()
	require.NoError(t, cp.Set(0, 0, 9))
	require.Equal(t, 1.0, mustAt(t, m, 0, 0))
	require.Equal(t, 9.0, mustAt(t, cp, 0, 0))
}

func TestDense_Col(t *testing.T) {
	t.Parallel()

	m := newFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	col, err := m.Col(2)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 6}, col)

	_, err = m.Col(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestDense_InducedReorders(t *testing.T) {
	t.Parallel()

	m := newFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	sub, err := m.Induced([]int{0, 1}, []int{2, 0})
	require.NoError(t, err)
	rows, err := matrix.ToRows(sub)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{3, 1}, {6, 4}}, rows)

	_, err = m.Induced([]int{0}, []int{3})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Induced(nil, []int{0})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestDense_ApplyString(t *testing.T) {
	t.Parallel()

	m := newFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, m.Apply(func(i, j int, v float64) float64 { return v * 2 }))
	require.Equal(t, "[2, 4]\n[6, 8]\n", m.String())

	err := m.Apply(func(_, _ int, _ float64) float64 { return math.Inf(1) })
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestToRows_FastAndFallback(t *testing.T) {
	t.Parallel()

	m := newFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	fast, err := matrix.ToRows(m)
	require.NoError(t, err)
	slow, err := matrix.ToRows(hide{m})
	require.NoError(t, err)
	require.Equal(t, fast, slow)

	_, err = matrix.ToRows(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
