// SPDX-License-Identifier: MIT

// Package matrix is the dense linear-algebra core used by lvpca.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 matrix with bounds-checked At/Set and an
//     optional finite-only numeric policy (NaN/±Inf rejected on Set).
//   - Kernels: Mul, Transpose, Scale and column broadcasts with Dense fast-paths
//     and an At/Set fallback for any Matrix implementation.
//   - Statistics: CenterColumns and the sample Covariance (Xcᵀ Xc)/(r-1).
//   - Spectral: Eigen, a deterministic Jacobi eigen-solver for symmetric input.
//   - Bridges: FromGonum / ToSymDense for gonum.org/v1/gonum/mat.
//
// Determinism:
//
//	Every kernel uses fixed loop orders, so identical inputs produce
//	bit-identical outputs. This is what lets pca.Engine promise a stable
//	component order for repeated fits.
//
// Errors are package sentinels (errors.go) wrapped with an operation tag;
// match them with errors.Is.
//
//	go get github.com/katalvlaran/lvpca/matrix
package matrix
