// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Each facade delegates to the canonical implementation; no logic duplication.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.
//
// AI-Hints:
//   - Prefer passing *Dense to unlock fast-paths in kernels (flat-slice loops).
//   - CenterColumns + Covariance + EigenSym is the whole PCA numeric pipeline.

package matrix

// ---------- Constructors & Utilities ----------

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// ToRows copies m into a fresh [][]float64 (one slice per row).
// Errors: ErrNilMatrix; At errors from non-Dense implementations.
// Complexity: O(r*c).
func ToRows(m Matrix) ([][]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(ctxToRows, err)
	}
	rows, cols := m.Rows(), m.Cols()
	out := make([][]float64, rows)
	if d, ok := m.(*Dense); ok {
		for i := 0; i < rows; i++ {
			out[i] = make([]float64, cols)
			copy(out[i], d.data[i*cols:(i+1)*cols])
		}

		return out, nil
	}

	var (
		v   float64
		err error
	)
	for i := 0; i < rows; i++ {
		out[i] = make([]float64, cols)
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(ctxToRows, err)
			}
			out[i][j] = v
		}
	}

	return out, nil
}

// ---------- Algebra aliases ----------

// EigenSym is the intention-revealing alias of Eigen for symmetric input.
// Eigenvalues come back in solver order; callers sort as they need.
func EigenSym(m Matrix, tol float64, maxIter int) ([]float64, Matrix, error) {
	return Eigen(m, tol, maxIter)
}

// AllClose reports whether |a-b| <= atol + rtol*|b| holds element-wise.
// Errors: ErrNaNInf (bad tolerance), ErrNilMatrix, ErrDimensionMismatch.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	return ewAllClose(a, b, rtol, atol)
}

// BroadcastSubCols returns X - 1·vecᵀ (vec subtracted from every row).
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(vec) != X.Cols()).
func BroadcastSubCols(X Matrix, vec []float64) (*Dense, error) {
	return ewBroadcastSubCols(X, vec)
}

// BroadcastAddCols returns X + 1·vecᵀ (vec added to every row).
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(vec) != X.Cols()).
func BroadcastAddCols(X Matrix, vec []float64) (*Dense, error) {
	return ewBroadcastAddCols(X, vec)
}

// ---------- Statistics ----------

// ColumnMeans returns the per-column arithmetic mean of X.
func ColumnMeans(X Matrix) ([]float64, error) { return columnMeans(X) }

// CenterColumns subtracts the column means from every row.
// Returns the centered copy and the means used.
func CenterColumns(X Matrix) (*Dense, []float64, error) { return centerColumns(X) }

// Covariance returns the c×c sample covariance (Xcᵀ Xc)/(r-1) and the column means.
// Errors: ErrNilMatrix, ErrDimensionMismatch (r < 2).
func Covariance(X Matrix) (*Dense, []float64, error) { return covariance(X) }
