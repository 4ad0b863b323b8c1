// SPDX-License-Identifier: MIT
// Package: matrix
//
// gonum.go - bridges between Dense and gonum.org/v1/gonum/mat.
//
// The bridges always copy; neither side aliases the other's buffer.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const (
	opFromGonum  = "FromGonum"
	opToSymDense = "ToSymDense"
)

// FromGonum copies any gonum matrix into a *Dense. Non-finite values are
// accepted; the result carries the relaxed numeric policy.
// Errors: ErrNilMatrix (nil g), ErrInvalidDimensions (empty g).
// Complexity: O(r*c).
func FromGonum(g mat.Matrix) (*Dense, error) {
	if g == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	r, c := g.Dims()
	out, err := newDenseWithPolicy(r, c, false)
	if err != nil {
		return nil, matrixErrorf(opFromGonum, err)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.data[i*c+j] = g.At(i, j)
		}
	}

	return out, nil
}

// ToSymDense converts a symmetric m into *mat.SymDense using the upper triangle.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf, ErrAsymmetry (beyond tol).
// Complexity: O(n^2).
func ToSymDense(m Matrix, tol float64) (*mat.SymDense, error) {
	if err := ValidateSymmetric(m, tol); err != nil {
		return nil, matrixErrorf(opToSymDense, err)
	}
	n := m.Rows()
	sym := mat.NewSymDense(n, nil)
	var (
		v   float64
		err error
	)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opToSymDense, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			sym.SetSym(i, j, v)
		}
	}

	return sym, nil
}
