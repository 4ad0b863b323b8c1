// SPDX-License-Identifier: MIT
// Package: pca
//
// solver.go - eigendecomposition backends and the ordering/sign convention.
//
// Both backends return eigenpairs in their natural order; rankEigen and
// orientComponent turn that into the canonical, reproducible form.

package pca

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/lvpca/matrix"
	"gonum.org/v1/gonum/mat"
)

// eigenResult is an unsorted eigendecomposition of a d×d symmetric matrix.
// vecs column j pairs with vals[j].
type eigenResult struct {
	vals []float64
	vecs *matrix.Dense
}

// decompose runs the configured solver on the covariance.
// The Jacobi threshold is o.tol scaled by max|cov[i,i]| (1 for an all-zero diagonal).
func decompose(cov *matrix.Dense, o options) (eigenResult, error) {
	d := cov.Rows()
	scale := 0.0
	for i := 0; i < d; i++ {
		v, _ := cov.At(i, i)
		if a := math.Abs(v); a > scale {
			scale = a
		}
	}
	if scale == 0 {
		scale = 1
	}
	tol := o.tol * scale

	switch o.solver {
	case SolverGonum:
		return decomposeGonum(cov, tol)
	default:
		return decomposeJacobi(cov, tol, o.rotationBudget(d))
	}
}

func decomposeJacobi(cov *matrix.Dense, tol float64, budget int) (eigenResult, error) {
	vals, q, err := matrix.EigenSym(cov, tol, budget)
	if err != nil {
		return eigenResult{}, err
	}
	vecs, ok := q.(*matrix.Dense)
	if !ok {
		return eigenResult{}, fmt.Errorf("jacobi: unexpected eigenvector type %T", q)
	}

	return eigenResult{vals: vals, vecs: vecs}, nil
}

func decomposeGonum(cov *matrix.Dense, tol float64) (eigenResult, error) {
	sym, err := matrix.ToSymDense(cov, tol)
	if err != nil {
		return eigenResult{}, err
	}
	var es mat.EigenSym
	if !es.Factorize(sym, true) {
		return eigenResult{}, fmt.Errorf("gonum EigenSym: %w", matrix.ErrMatrixEigenFailed)
	}
	vals := es.Values(nil)
	var ev mat.Dense
	es.VectorsTo(&ev)
	vecs, err := matrix.FromGonum(&ev)
	if err != nil {
		return eigenResult{}, err
	}

	return eigenResult{vals: vals, vecs: vecs}, nil
}

// rankEigen returns eigenpair indices ordered by descending eigenvalue.
// The sort is stable, so equal eigenvalues keep ascending solver index.
func rankEigen(vals []float64) []int {
	order := make([]int, len(vals))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return vals[order[a]] > vals[order[b]]
	})

	return order
}

// orientComponent flips column j of comps in place so that its entry of
// largest magnitude is positive (the first such entry on ties).
func orientComponent(comps *matrix.Dense, j int) error {
	v, err := comps.Col(j)
	if err != nil {
		return err
	}
	pivot, best := 0, -1.0
	for i, x := range v {
		if a := math.Abs(x); a > best {
			pivot, best = i, a
		}
	}
	if v[pivot] >= 0 {
		return nil
	}
	for i, x := range v {
		if err = comps.Set(i, j, -x); err != nil {
			return err
		}
	}

	return nil
}

// allFinite reports whether every value is neither NaN nor ±Inf.
func allFinite(vals []float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}
