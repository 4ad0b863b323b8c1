// SPDX-License-Identifier: MIT
// Package: pca
//
// engine.go - the stateful PCA engine.
//
// Contract:
//   - An Engine is Unfitted (state == nil) or Fitted (state fully populated).
//     Fit builds a complete fitted value and swaps it in; on error the prior
//     state is untouched.
//   - Inputs are read-only; every returned matrix or slice is a fresh copy.

package pca

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/katalvlaran/lvpca/matrix"
)

// fitted is the immutable result of a successful Fit.
type fitted struct {
	nSamples      int
	nFeatures     int
	mean          []float64     // len nFeatures
	components    *matrix.Dense // nFeatures × k, columns orthonormal
	variance      []float64     // len k, non-increasing
	totalVariance float64       // trace of the covariance
}

// Engine learns principal components with Fit and projects data with Transform.
// The zero value is not usable; construct with New or FromModel.
type Engine struct {
	mu    sync.RWMutex
	k     int
	opts  options
	state *fitted
}

// New returns an unfitted Engine that keeps nComponents components.
//
// Errors:
//   - ErrInvalidComponents (also matches ErrInvalidShape) when nComponents <= 0.
func New(nComponents int, opts ...Option) (*Engine, error) {
	if nComponents <= 0 {
		return nil, pcaErrorf(opNew, ErrInvalidComponents, fmt.Errorf("got %d", nComponents))
	}

	return &Engine{k: nComponents, opts: gatherOptions(opts...)}, nil
}

// NComponents returns the configured component count.
func (e *Engine) NComponents() int { return e.k }

// Solver reports the configured eigen-solver.
func (e *Engine) Solver() Solver { return e.opts.solver }

// MeanPolicy reports the configured Transform centering policy.
func (e *Engine) MeanPolicy() MeanPolicy { return e.opts.meanPolicy }

// Fitted reports whether a Fit has succeeded.
func (e *Engine) Fitted() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.state != nil
}

// NFeatures returns the fitted feature count; ok is false while unfitted.
func (e *Engine) NFeatures() (n int, ok bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.state == nil {
		return 0, false
	}

	return e.state.nFeatures, true
}

// Fit learns the mean, components and explained variance of X, replacing any
// previous fit.
//
// Implementation:
//   - Stage 1: validate shape (n >= 2, k <= d) and finiteness.
//   - Stage 2: covariance (Xcᵀ Xc)/(n-1) and its mean via matrix.Covariance.
//   - Stage 3: eigendecomposition, stable descending sort, sign convention, truncation.
//
// Errors:
//   - ErrInvalidShape: nil X, n < 2, k > d.
//   - ErrNumerical: non-finite input, covariance or eigenvalues; solver non-convergence.
//
// Complexity: O(n·d²) for the covariance plus the solver cost (O(d³) per sweep).
func (e *Engine) Fit(X matrix.Matrix) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.fitLocked(X, opFit)
}

// Transform projects X onto the fitted components: (X - mean)·components.
// The mean is the training mean under FitMean and the batch mean under BatchMean.
//
// Errors:
//   - ErrNotFitted, ErrInvalidShape (nil or empty X), ErrShapeMismatch (X.Cols() != d),
//     ErrNumerical (non-finite X).
//
// Complexity: O(n·d·k).
func (e *Engine) Transform(X matrix.Matrix) (matrix.Matrix, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.transformLocked(X, opTransform)
}

// FitTransform fits X and projects it, holding the exclusive lock throughout.
// The result is identical to Fit(X) followed by Transform(X).
func (e *Engine) FitTransform(X matrix.Matrix) (matrix.Matrix, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.fitLocked(X, opFitTransform); err != nil {
		return nil, err
	}

	return e.transformLocked(X, opFitTransform)
}

// InverseTransform maps projected coordinates back to feature space:
// Y·componentsᵀ + mean, always using the training mean.
// With k < d the result is the best rank-k reconstruction, not the original.
//
// Errors:
//   - ErrNotFitted, ErrInvalidShape (nil or empty Y), ErrShapeMismatch (Y.Cols() != k),
//     ErrNumerical (non-finite Y).
func (e *Engine) InverseTransform(Y matrix.Matrix) (matrix.Matrix, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	st := e.state
	if st == nil {
		return nil, pcaErrorf(opInverseTransform, ErrNotFitted, nil)
	}
	if err := checkBatch(Y); err != nil {
		return nil, pcaErrorf(opInverseTransform, ErrInvalidShape, err)
	}
	if Y.Cols() != e.k {
		return nil, pcaErrorf(opInverseTransform, ErrShapeMismatch,
			fmt.Errorf("got %d columns, model has %d components", Y.Cols(), e.k))
	}
	if err := matrix.ValidateFinite(Y); err != nil {
		return nil, pcaErrorf(opInverseTransform, ErrNumerical, err)
	}

	ct, err := matrix.Transpose(st.components)
	if err != nil {
		return nil, pcaErrorf(opInverseTransform, ErrNumerical, err)
	}
	Z, err := matrix.Mul(Y, ct)
	if err != nil {
		return nil, pcaErrorf(opInverseTransform, ErrNumerical, err)
	}
	out, err := matrix.BroadcastAddCols(Z, st.mean)
	if err != nil {
		return nil, pcaErrorf(opInverseTransform, ErrNumerical, err)
	}

	return out, nil
}

// Components returns a copy of the d×k component matrix (one component per column).
func (e *Engine) Components() (matrix.Matrix, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.state == nil {
		return nil, pcaErrorf(opComponents, ErrNotFitted, nil)
	}

	return e.state.components.Clone(), nil
}

// ExplainedVariance returns a copy of the retained eigenvalues, non-increasing.
func (e *Engine) ExplainedVariance() ([]float64, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.state == nil {
		return nil, pcaErrorf(opExplained, ErrNotFitted, nil)
	}

	return append([]float64(nil), e.state.variance...), nil
}

// ExplainedVarianceRatio returns each retained eigenvalue divided by the total
// variance (trace of the covariance). All zeros for a zero-variance fit.
func (e *Engine) ExplainedVarianceRatio() ([]float64, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.state == nil {
		return nil, pcaErrorf(opExplained, ErrNotFitted, nil)
	}

	out := make([]float64, len(e.state.variance))
	if e.state.totalVariance == 0 {
		return out, nil
	}
	for i, v := range e.state.variance {
		out[i] = v / e.state.totalVariance
	}

	return out, nil
}

// Mean returns a copy of the training mean.
func (e *Engine) Mean() ([]float64, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.state == nil {
		return nil, pcaErrorf(opMean, ErrNotFitted, nil)
	}

	return append([]float64(nil), e.state.mean...), nil
}

// fitLocked runs the fit pipeline; caller holds the write lock.
func (e *Engine) fitLocked(X matrix.Matrix, op string) error {
	if err := checkBatch(X); err != nil {
		return pcaErrorf(op, ErrInvalidShape, err)
	}
	n, d := X.Rows(), X.Cols()
	if n < 2 {
		return pcaErrorf(op, ErrInvalidShape, fmt.Errorf("need at least 2 samples, got %d", n))
	}
	if e.k > d {
		return pcaErrorf(op, ErrInvalidShape, fmt.Errorf("%d components requested for %d features", e.k, d))
	}
	if err := matrix.ValidateFinite(X); err != nil {
		return pcaErrorf(op, ErrNumerical, err)
	}

	cov, mean, err := matrix.Covariance(X)
	if err != nil {
		return pcaErrorf(op, ErrNumerical, err)
	}
	if err = matrix.ValidateFinite(cov); err != nil {
		return pcaErrorf(op, ErrNumerical, fmt.Errorf("covariance: %w", err))
	}

	eig, err := decompose(cov, e.opts)
	if err != nil {
		return pcaErrorf(op, ErrNumerical, err)
	}
	if !allFinite(eig.vals) {
		return pcaErrorf(op, ErrNumerical, fmt.Errorf("eigenvalues: %w", matrix.ErrNaNInf))
	}

	order := rankEigen(eig.vals)
	allRows := make([]int, d)
	for i := range allRows {
		allRows[i] = i
	}
	comps, err := eig.vecs.Induced(allRows, order[:e.k])
	if err != nil {
		return pcaErrorf(op, ErrNumerical, err)
	}
	variance := make([]float64, e.k)
	for j := 0; j < e.k; j++ {
		if err = orientComponent(comps, j); err != nil {
			return pcaErrorf(op, ErrNumerical, err)
		}
		variance[j] = eig.vals[order[j]]
	}
	if err = matrix.ValidateFinite(comps); err != nil {
		return pcaErrorf(op, ErrNumerical, fmt.Errorf("components: %w", err))
	}

	total := 0.0
	for i := 0; i < d; i++ {
		c, _ := cov.At(i, i)
		total += c
	}

	e.state = &fitted{
		nSamples:      n,
		nFeatures:     d,
		mean:          mean,
		components:    comps,
		variance:      variance,
		totalVariance: total,
	}
	e.logFit(e.state)

	return nil
}

// transformLocked projects X; caller holds at least the read lock.
func (e *Engine) transformLocked(X matrix.Matrix, op string) (matrix.Matrix, error) {
	st := e.state
	if st == nil {
		return nil, pcaErrorf(op, ErrNotFitted, nil)
	}
	if err := checkBatch(X); err != nil {
		return nil, pcaErrorf(op, ErrInvalidShape, err)
	}
	if X.Cols() != st.nFeatures {
		return nil, pcaErrorf(op, ErrShapeMismatch,
			fmt.Errorf("got %d features, model has %d", X.Cols(), st.nFeatures))
	}
	if err := matrix.ValidateFinite(X); err != nil {
		return nil, pcaErrorf(op, ErrNumerical, err)
	}

	mean := st.mean
	if e.opts.meanPolicy == BatchMean {
		var err error
		if mean, err = matrix.ColumnMeans(X); err != nil {
			return nil, pcaErrorf(op, ErrNumerical, err)
		}
	}
	Xc, err := matrix.BroadcastSubCols(X, mean)
	if err != nil {
		return nil, pcaErrorf(op, ErrNumerical, err)
	}
	Y, err := matrix.Mul(Xc, st.components)
	if err != nil {
		return nil, pcaErrorf(op, ErrNumerical, err)
	}

	return Y, nil
}

// checkBatch rejects nil and empty matrices.
func checkBatch(X matrix.Matrix) error {
	if err := matrix.ValidateNotNil(X); err != nil {
		return err
	}
	if X.Rows() == 0 || X.Cols() == 0 {
		return fmt.Errorf("empty %dx%d input: %w", X.Rows(), X.Cols(), matrix.ErrInvalidDimensions)
	}

	return nil
}

// logFit emits the Debug fit summary and a Warn per near-zero retained eigenvalue.
func (e *Engine) logFit(st *fitted) {
	log := e.opts.logger
	top := st.variance[0]
	log.Debug("pca fit",
		slog.Int("samples", st.nSamples),
		slog.Int("features", st.nFeatures),
		slog.Int("components", e.k),
		slog.String("solver", e.opts.solver.String()),
		slog.Float64("top_eigenvalue", top),
		slog.Float64("total_variance", st.totalVariance),
	)
	for j, v := range st.variance {
		if v <= nearZeroRel*top {
			log.Warn("retained component has near-zero variance",
				slog.Int("component", j),
				slog.Float64("eigenvalue", v),
			)
		}
	}
}
