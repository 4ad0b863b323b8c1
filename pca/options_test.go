// SPDX-License-Identifier: MIT
package pca_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvpca/pca"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSolverAndMeanPolicy(t *testing.T) {
	t.Parallel()

	s, err := pca.ParseSolver(" Gonum ")
	require.NoError(t, err)
	assert.Equal(t, pca.SolverGonum, s)
	_, err = pca.ParseSolver("qr")
	require.Error(t, err)

	p, err := pca.ParseMeanPolicy("BATCH")
	require.NoError(t, err)
	assert.Equal(t, pca.BatchMean, p)
	_, err = pca.ParseMeanPolicy("")
	require.Error(t, err)

	assert.Equal(t, "jacobi", pca.SolverJacobi.String())
	assert.Equal(t, "Solver(7)", pca.Solver(7).String())
	assert.Equal(t, "fit", pca.FitMean.String())
	assert.Equal(t, "MeanPolicy(-1)", pca.MeanPolicy(-1).String())
}

func TestOptions_PanicOnNonsense(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { pca.WithSolver(pca.Solver(5)) })
	assert.Panics(t, func() { pca.WithMeanPolicy(pca.MeanPolicy(9)) })
	assert.Panics(t, func() { pca.WithTolerance(0) })
	assert.Panics(t, func() { pca.WithTolerance(math.NaN()) })
	assert.Panics(t, func() { pca.WithMaxIter(-1) })
	assert.NotPanics(t, func() { pca.WithMaxIter(0) })
}

func TestOptions_NilLoggerAndNilOption(t *testing.T) {
	t.Parallel()

	e, err := pca.New(1, pca.WithLogger(nil), nil, pca.WithTolerance(1e-10))
	require.NoError(t, err)
	require.NoError(t, e.Fit(mustRows(t, [][]float64{{1, 2}, {2, 1}, {0, 0}})))
}
