// SPDX-License-Identifier: MIT
// Package: pca
//
// model.go - serializable snapshot of a fitted Engine.
//
// The snapshot stores components as one slice per component (each of length
// n_features), which reads naturally in YAML and JSON.

package pca

import (
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/lvpca/matrix"
	"gopkg.in/yaml.v3"
)

// ModelVersion is the snapshot format version written by Model.
const ModelVersion = 1

// orthoTol bounds |C·Cᵀ - I| entry-wise when validating a snapshot.
const orthoTol = 1e-6

// Model is a plain-data snapshot of a fitted Engine.
type Model struct {
	Version           int         `yaml:"version" json:"version"`
	Solver            string      `yaml:"solver" json:"solver"`
	MeanPolicy        string      `yaml:"mean_policy" json:"mean_policy"`
	NSamples          int         `yaml:"n_samples" json:"n_samples"`
	NFeatures         int         `yaml:"n_features" json:"n_features"`
	NComponents       int         `yaml:"n_components" json:"n_components"`
	Mean              []float64   `yaml:"mean" json:"mean"`
	Components        [][]float64 `yaml:"components" json:"components"`
	ExplainedVariance []float64   `yaml:"explained_variance" json:"explained_variance"`
	TotalVariance     float64     `yaml:"total_variance" json:"total_variance"`
}

// Model returns a deep-copied snapshot of the fitted state.
// Errors: ErrNotFitted.
func (e *Engine) Model() (Model, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	st := e.state
	if st == nil {
		return Model{}, pcaErrorf(opModel, ErrNotFitted, nil)
	}
	comps := make([][]float64, e.k)
	for j := 0; j < e.k; j++ {
		col, err := st.components.Col(j)
		if err != nil {
			return Model{}, pcaErrorf(opModel, ErrNumerical, err)
		}
		comps[j] = col
	}

	return Model{
		Version:           ModelVersion,
		Solver:            e.opts.solver.String(),
		MeanPolicy:        e.opts.meanPolicy.String(),
		NSamples:          st.nSamples,
		NFeatures:         st.nFeatures,
		NComponents:       e.k,
		Mean:              append([]float64(nil), st.mean...),
		Components:        comps,
		ExplainedVariance: append([]float64(nil), st.variance...),
		TotalVariance:     st.totalVariance,
	}, nil
}

// FromModel rebuilds a fitted Engine from a snapshot. The snapshot's solver
// and mean policy apply first; opts override them.
//
// Errors:
//   - ErrInvalidModel for a version mismatch, inconsistent lengths, non-finite
//     values, increasing variance or components that are not orthonormal.
func FromModel(m Model, opts ...Option) (*Engine, error) {
	if err := m.Validate(); err != nil {
		return nil, pcaErrorf(opFromModel, ErrInvalidModel, err)
	}

	base := make([]Option, 0, len(opts)+2)
	if m.Solver != "" {
		s, err := ParseSolver(m.Solver)
		if err != nil {
			return nil, pcaErrorf(opFromModel, ErrInvalidModel, err)
		}
		base = append(base, WithSolver(s))
	}
	if m.MeanPolicy != "" {
		p, err := ParseMeanPolicy(m.MeanPolicy)
		if err != nil {
			return nil, pcaErrorf(opFromModel, ErrInvalidModel, err)
		}
		base = append(base, WithMeanPolicy(p))
	}

	rows, err := m.componentRows()
	if err != nil {
		return nil, pcaErrorf(opFromModel, ErrInvalidModel, err)
	}
	t, err := matrix.Transpose(rows)
	if err != nil {
		return nil, pcaErrorf(opFromModel, ErrInvalidModel, err)
	}
	comps, ok := t.(*matrix.Dense)
	if !ok {
		return nil, pcaErrorf(opFromModel, ErrInvalidModel, fmt.Errorf("unexpected component type %T", t))
	}

	e := &Engine{k: m.NComponents, opts: gatherOptions(append(base, opts...)...)}
	e.state = &fitted{
		nSamples:      m.NSamples,
		nFeatures:     m.NFeatures,
		mean:          append([]float64(nil), m.Mean...),
		components:    comps,
		variance:      append([]float64(nil), m.ExplainedVariance...),
		totalVariance: m.TotalVariance,
	}

	return e, nil
}

// Validate checks the structural and numeric invariants of a snapshot.
func (m Model) Validate() error {
	if m.Version != ModelVersion {
		return fmt.Errorf("version %d, want %d", m.Version, ModelVersion)
	}
	if m.NComponents <= 0 || m.NFeatures < m.NComponents {
		return fmt.Errorf("n_components=%d n_features=%d", m.NComponents, m.NFeatures)
	}
	if len(m.Mean) != m.NFeatures {
		return fmt.Errorf("mean has %d values, want %d", len(m.Mean), m.NFeatures)
	}
	if len(m.ExplainedVariance) != m.NComponents {
		return fmt.Errorf("explained_variance has %d values, want %d", len(m.ExplainedVariance), m.NComponents)
	}
	if len(m.Components) != m.NComponents {
		return fmt.Errorf("components has %d vectors, want %d", len(m.Components), m.NComponents)
	}
	for j, c := range m.Components {
		if len(c) != m.NFeatures {
			return fmt.Errorf("component %d has %d values, want %d", j, len(c), m.NFeatures)
		}
		if !allFinite(c) {
			return fmt.Errorf("component %d: %w", j, matrix.ErrNaNInf)
		}
	}
	if !allFinite(m.Mean) || !allFinite(m.ExplainedVariance) || !allFinite([]float64{m.TotalVariance}) {
		return fmt.Errorf("mean or variance: %w", matrix.ErrNaNInf)
	}
	for j := 1; j < m.NComponents; j++ {
		if m.ExplainedVariance[j] > m.ExplainedVariance[j-1] {
			return fmt.Errorf("explained_variance increases at %d", j)
		}
	}
	C, err := m.componentRows()
	if err != nil {
		return err
	}
	Ct, err := matrix.Transpose(C)
	if err != nil {
		return err
	}
	gram, err := matrix.Mul(C, Ct)
	if err != nil {
		return err
	}
	eye, err := matrix.NewIdentity(m.NComponents)
	if err != nil {
		return err
	}
	ok, err := matrix.AllClose(gram, eye, 0, orthoTol)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("components are not orthonormal within %g", orthoTol)
	}

	return nil
}

// componentRows packs the components as the rows of a k×d matrix.
func (m Model) componentRows() (*matrix.Dense, error) {
	flat := make([]float64, 0, m.NComponents*m.NFeatures)
	for _, c := range m.Components {
		flat = append(flat, c...)
	}

	return matrix.NewDenseFromData(m.NComponents, m.NFeatures, flat)
}

// WriteModel encodes m as YAML.
func WriteModel(w io.Writer, m Model) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("%s: %w", opWriteModel, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("%s: %w", opWriteModel, err)
	}

	return nil
}

// ReadModel decodes a YAML snapshot and validates it.
// Errors: ErrInvalidModel for unknown fields, malformed YAML or failed validation.
func ReadModel(r io.Reader) (Model, error) {
	var m Model
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return Model{}, pcaErrorf(opReadModel, ErrInvalidModel, errors.New("empty document"))
		}
		return Model{}, pcaErrorf(opReadModel, ErrInvalidModel, err)
	}
	if err := m.Validate(); err != nil {
		return Model{}, pcaErrorf(opReadModel, ErrInvalidModel, err)
	}

	return m, nil
}
