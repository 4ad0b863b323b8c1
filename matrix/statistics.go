// SPDX-License-Identifier: MIT
// Package: matrix
//
// statistics.go - column statistics used by principal component analysis.
//
// Contract:
//   - Observations are rows, features are columns.
//   - ColumnMeans accumulates in row order then divides once, so the same
//     input always yields bit-identical means.
//   - Covariance is the unbiased sample estimator (Xcᵀ Xc)/(r-1).

package matrix

import "fmt"

const (
	opColumnMeans   = "ColumnMeans"
	opCenterColumns = "CenterColumns"
	opCovariance    = "Covariance"
)

// columnMeans returns the per-column arithmetic mean of X.
// Complexity: O(r*c).
func columnMeans(X Matrix) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opColumnMeans, err)
	}
	r, c := X.Rows(), X.Cols()
	means := make([]float64, c)

	var (
		i, j, base int
		v          float64
		err        error
	)
	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ {
			base = i * c
			for j = 0; j < c; j++ {
				means[j] += d.data[base+j]
			}
		}
	} else {
		for i = 0; i < r; i++ {
			for j = 0; j < c; j++ {
				if v, err = X.At(i, j); err != nil {
					return nil, matrixErrorf(opColumnMeans, err)
				}
				means[j] += v
			}
		}
	}

	invR := 1.0 / float64(r)
	for j = 0; j < c; j++ {
		means[j] *= invR
	}

	return means, nil
}

// centerColumns returns Xc = X - 1·meansᵀ and the means used.
//
// Implementation:
//   - Stage 1: columnMeans(X).
//   - Stage 2: ewBroadcastSubCols(X, means) into a fresh Dense.
//
// Complexity: Time O(r*c), Space O(r*c).
func centerColumns(X Matrix) (*Dense, []float64, error) {
	means, err := columnMeans(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}
	Xc, err := ewBroadcastSubCols(X, means)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}

	return Xc, means, nil
}

// covariance computes the sample covariance of the columns of X.
//
// Implementation:
//   - Stage 1: require r >= 2 (ErrDimensionMismatch otherwise).
//   - Stage 2: centerColumns(X).
//   - Stage 3: Cov = Scale(Mul(Transpose(Xc), Xc), 1/(r-1)).
//
// Behavior highlights:
//   - The result is exactly symmetric (see Mul determinism notes).
//
// Complexity: Time O(r*c^2), Space O(r*c + c^2).
func covariance(X Matrix) (*Dense, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	r := X.Rows()
	if r < 2 {
		return nil, nil, matrixErrorf(opCovariance, fmt.Errorf("need at least 2 rows, got %d: %w", r, ErrDimensionMismatch))
	}

	Xc, means, err := centerColumns(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	Xct, err := Transpose(Xc)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	G, err := Mul(Xct, Xc)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	Cov, err := Scale(G, 1.0/float64(r-1))
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}

	return Cov.(*Dense), means, nil
}
