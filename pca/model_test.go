// SPDX-License-Identifier: MIT
package pca_test

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/katalvlaran/lvpca/pca"
	"github.com/katalvlaran/lvpca/synth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fittedModel(t *testing.T, opts ...pca.Option) (*pca.Engine, pca.Model) {
	t.Helper()
	X, err := synth.LowRank(40, 4, 3, 5, synth.WithNoise(0.3), synth.WithShift([]float64{1, -1, 2, 0}))
	require.NoError(t, err)
	e, err := pca.New(2, opts...)
	require.NoError(t, err)
	require.NoError(t, e.Fit(X))
	m, err := e.Model()
	require.NoError(t, err)

	return e, m
}

func TestModel_YAMLRoundTrip(t *testing.T) {
	t.Parallel()

	e, m := fittedModel(t, pca.WithMeanPolicy(pca.BatchMean))
	assert.Equal(t, pca.ModelVersion, m.Version)
	assert.Equal(t, "jacobi", m.Solver)
	assert.Equal(t, "batch", m.MeanPolicy)
	assert.Equal(t, 40, m.NSamples)

	var buf bytes.Buffer
	require.NoError(t, pca.WriteModel(&buf, m))
	assert.Contains(t, buf.String(), "explained_variance:")

	back, err := pca.ReadModel(&buf)
	require.NoError(t, err)
	assert.Equal(t, m, back)

	restored, err := pca.FromModel(back)
	require.NoError(t, err)
	assert.True(t, restored.Fitted())
	assert.Equal(t, pca.BatchMean, restored.MeanPolicy())

	X, err := synth.Gaussian(7, 4, 99)
	require.NoError(t, err)
	want, err := e.Transform(X)
	require.NoError(t, err)
	got, err := restored.Transform(X)
	require.NoError(t, err)
	assert.Equal(t, mustToRows(t, want), mustToRows(t, got))
}

func TestModel_JSONTags(t *testing.T) {
	t.Parallel()

	_, m := fittedModel(t)
	raw, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"n_components":2`)

	var back pca.Model
	require.NoError(t, json.Unmarshal(raw, &back))
	require.NoError(t, back.Validate())
}

func TestFromModel_OptionsOverrideSnapshot(t *testing.T) {
	t.Parallel()

	_, m := fittedModel(t)
	e, err := pca.FromModel(m, pca.WithSolver(pca.SolverGonum), pca.WithMeanPolicy(pca.BatchMean))
	require.NoError(t, err)
	assert.Equal(t, pca.SolverGonum, e.Solver())
	assert.Equal(t, pca.BatchMean, e.MeanPolicy())
}

func TestFromModel_RejectsInconsistentSnapshots(t *testing.T) {
	t.Parallel()

	_, good := fittedModel(t)
	clone := func() pca.Model {
		c := good
		c.Mean = append([]float64(nil), good.Mean...)
		c.ExplainedVariance = append([]float64(nil), good.ExplainedVariance...)
		c.Components = make([][]float64, len(good.Components))
		for i := range good.Components {
			c.Components[i] = append([]float64(nil), good.Components[i]...)
		}
		return c
	}

	tests := []struct {
		name   string
		mutate func(*pca.Model)
	}{
		{"version", func(m *pca.Model) { m.Version = 99 }},
		{"zero components", func(m *pca.Model) { m.NComponents = 0 }},
		{"mean length", func(m *pca.Model) { m.Mean = m.Mean[:1] }},
		{"component count", func(m *pca.Model) { m.Components = m.Components[:1] }},
		{"component length", func(m *pca.Model) { m.Components[0] = m.Components[0][:2] }},
		{"variance length", func(m *pca.Model) { m.ExplainedVariance = nil }},
		{"increasing variance", func(m *pca.Model) { m.ExplainedVariance[1] = m.ExplainedVariance[0] + 1 }},
		{"not unit", func(m *pca.Model) { m.Components[0][0] *= 2 }},
		{"not orthogonal", func(m *pca.Model) { m.Components[1] = append([]float64(nil), m.Components[0]...) }},
		{"non-finite mean", func(m *pca.Model) { m.Mean[0] = math.NaN() }},
		{"unknown solver", func(m *pca.Model) { m.Solver = "power" }},
		{"unknown mean policy", func(m *pca.Model) { m.MeanPolicy = "median" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := clone()
			tc.mutate(&m)
			_, err := pca.FromModel(m)
			require.ErrorIs(t, err, pca.ErrInvalidModel)
		})
	}
}

func TestReadModel_Errors(t *testing.T) {
	t.Parallel()

	_, err := pca.ReadModel(strings.NewReader(""))
	require.ErrorIs(t, err, pca.ErrInvalidModel)

	_, err = pca.ReadModel(strings.NewReader("version: 1\nbogus: true\n"))
	require.ErrorIs(t, err, pca.ErrInvalidModel)

	_, err = pca.ReadModel(strings.NewReader("version: [\n"))
	require.ErrorIs(t, err, pca.ErrInvalidModel)
}

func TestModelValidate_OrthonormalityTolerance(t *testing.T) {
	t.Parallel()

	_, m := fittedModel(t)
	require.NoError(t, m.Validate())

	scaled := func(f float64) pca.Model {
		c := m
		c.Components = [][]float64{m.Components[0], make([]float64, len(m.Components[1]))}
		for i, v := range m.Components[1] {
			c.Components[1][i] = v * f
		}
		return c
	}
	require.NoError(t, scaled(1+1e-8).Validate(), "drift below the tolerance is accepted")
	require.ErrorContains(t, scaled(1+1e-3).Validate(), "not orthonormal")

	e, err := pca.FromModel(m)
	require.NoError(t, err)
	C, err := e.Components()
	require.NoError(t, err)
	requireOrthonormal(t, C, 1e-12)
	assert.Equal(t, m.Components[0], colOf(t, C, 0))
}
