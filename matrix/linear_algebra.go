// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// matrix multiplication, transpose, scalar scaling and the symmetric Jacobi
// eigen-solver.
// All functions perform strict fail-fast validation and return wrapped
// sentinels on dimension mismatches.
//
// Notes:
//   - Every kernel has a *Dense fast-path over the flat buffer and a generic
//     At/Set fallback with the same loop order, so results never depend on
//     which path ran.
//   - Results are freshly allocated Dense values; operands are never mutated.

package matrix

import (
	"fmt"
	"math"
)

// NormZero is the additive identity for norm and accumulation operations.
const NormZero = 0.0

// ZeroSum is the initial value for dot-product style accumulators.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opEigen     = "Eigen"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul returns the matrix product a×b (a.Cols() must equal b.Rows()).
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b); allocate Dense(a.Rows × b.Cols).
//   - Stage 2: *Dense fast-path with i→k→j order (row-major friendly, zero-skip on a[i,k]).
//     Otherwise a generic i→j→k loop via At.
//
// Determinism:
//   - The accumulation order for every output cell is k = 0..n-1 on both
//     paths, so Mul(Xᵀ, X) is bitwise symmetric.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k         int
		av, bv, current float64
	)
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					if av == 0 {
						continue
					}
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}

			return res, nil
		}
	}

	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if av == 0 {
					continue
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				current += av * bv
			}
			res.data[i*bCols+j] = current
		}
	}

	return res, nil
}

// Transpose returns a new matrix mᵀ. The input is never mutated.
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	if d, ok := m.(*Dense); ok {
		var base int
		for i = 0; i < rows; i++ {
			base = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = d.data[base+j]
			}
		}

		return res, nil
	}

	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// Scale returns alpha*m as a new matrix.
// Errors: ErrNilMatrix, ErrNaNInf (alpha not finite).
// Complexity: O(r*c).
func Scale(m Matrix, alpha float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	if math.IsNaN(alpha) || math.IsInf(alpha, 0) {
		return nil, matrixErrorf(opScale, ErrNaNInf)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	if d, ok := m.(*Dense); ok {
		for idx, v := range d.data {
			res.data[idx] = alpha * v
		}

		return res, nil
	}

	var (
		i, j int
		v    float64
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opScale, err)
			}
			res.data[i*cols+j] = alpha * v
		}
	}

	return res, nil
}

// Eigen performs the cyclic-by-pivot Jacobi eigen-decomposition of a symmetric
// matrix. It returns the eigenvalues (diagonal of the rotated matrix, in the
// solver's natural order, NOT sorted) and Q whose columns are the matching
// unit eigenvectors, so that m ≈ Q·diag(λ)·Qᵀ.
//
// Implementation:
//   - Stage 1: ValidateSymmetric(m, tol); copy m into a Dense work buffer A; Q = I.
//   - Stage 2: up to maxIter rotations. Each step picks the largest |A[p,q]|
//     (fixed i→j scan, first maximum wins) and stops once it is <= tol.
//   - Stage 3: rotate rows/cols p,q of A symmetrically and accumulate into Q.
//
// Inputs:
//   - tol: absolute convergence threshold (>= 0). Callers with large-magnitude
//     data should scale it by max|A[i,i]|.
//   - maxIter: rotation budget (> 0).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square), ErrAsymmetry,
//     ErrNaNInf (tol not finite or non-finite entry), ErrBadShape (maxIter <= 0 or tol < 0),
//     ErrMatrixEigenFailed (max off-diagonal > tol after maxIter rotations).
//
// Determinism:
//   - Fixed pivot search and update order produce bit-identical results.
//
// Complexity:
//   - Time O(maxIter * n), plus O(n^2) per pivot search; Space O(n^2).
//
// AI-Hints:
//   - A 1×1 or already-diagonal input converges with zero rotations and Q = I.
func Eigen(m Matrix, tol float64, maxIter int) ([]float64, Matrix, error) {
	if err := ValidateSymmetric(m, tol); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	if tol < 0 || maxIter <= 0 {
		return nil, nil, matrixErrorf(opEigen, fmt.Errorf("tol=%g maxIter=%d: %w", tol, maxIter, ErrBadShape))
	}
	if err := ValidateFinite(m); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}

	n := m.Rows()
	a, err := toDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	qm, err := NewIdentity(n)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	var i int

	var (
		iter               int
		base               int
		p, q               int
		maxOff             float64
		app, aqq, apq      float64
		aip, aiq, qip, qiq float64
		newIP, newIQ       float64
		theta, t           float64
		c, s               float64
	)
	for iter = 0; iter < maxIter; iter++ {
		maxOff = offDiagMax(a, &p, &q)
		if maxOff <= tol {
			break
		}

		app = a.data[p*n+p]
		aqq = a.data[q*n+q]
		apq = a.data[p*n+q]

		// θ = (aqq−app)/(2*apq); t = sign(θ)/(|θ|+√(θ²+1)).
		theta = (aqq - app) / (2 * apq)
		t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		c = 1.0 / math.Sqrt(t*t+1)
		s = t * c

		for i = 0; i < n; i++ {
			if i == p || i == q {
				continue
			}
			aip = a.data[i*n+p]
			aiq = a.data[i*n+q]
			newIP = c*aip - s*aiq
			newIQ = s*aip + c*aiq
			a.data[i*n+p], a.data[p*n+i] = newIP, newIP
			a.data[i*n+q], a.data[q*n+i] = newIQ, newIQ
		}
		a.data[p*n+p] = c*c*app - 2*c*s*apq + s*s*aqq
		a.data[q*n+q] = s*s*app + 2*c*s*apq + c*c*aqq
		a.data[p*n+q], a.data[q*n+p] = 0, 0

		for i = 0; i < n; i++ {
			base = i * n
			qip = qm.data[base+p]
			qiq = qm.data[base+q]
			qm.data[base+p] = c*qip - s*qiq
			qm.data[base+q] = s*qip + c*qiq
		}
	}

	if maxOff = offDiagMax(a, &p, &q); maxOff > tol {
		return nil, nil, matrixErrorf(opEigen, fmt.Errorf("off-diagonal %g > tol %g after %d rotations: %w",
			maxOff, tol, maxIter, ErrMatrixEigenFailed))
	}

	eigs := make([]float64, n)
	for i = 0; i < n; i++ {
		eigs[i] = a.data[i*n+i]
	}

	return eigs, qm, nil
}

// offDiagMax scans the strict upper triangle in i→j order and returns the
// largest |A[i,j]|, storing its position into p,q (first maximum wins).
func offDiagMax(a *Dense, p, q *int) float64 {
	n := a.c
	maxOff := NormZero
	var i, j, base int
	var off float64
	for i = 0; i < n; i++ {
		base = i * n
		for j = i + 1; j < n; j++ {
			off = math.Abs(a.data[base+j])
			if off > maxOff {
				maxOff, *p, *q = off, i, j
			}
		}
	}

	return maxOff
}

// toDense returns an independent *Dense copy of m (fast copy for *Dense input).
// The copy skips the finite-only policy; callers validate values themselves.
func toDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d.Clone().(*Dense), nil
	}
	rows, cols := m.Rows(), m.Cols()
	out, err := newDenseWithPolicy(rows, cols, false)
	if err != nil {
		return nil, err
	}
	var (
		i, j int
		v    float64
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			out.data[i*cols+j] = v
		}
	}

	return out, nil
}
