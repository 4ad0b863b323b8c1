// SPDX-License-Identifier: MIT

// Package pca implements Principal Component Analysis on dense in-memory
// matrices.
//
// An Engine is created with a fixed number of components, fitted once on a
// training matrix (observations are rows, features are columns) and then
// used to project any number of batches onto the learned directions:
//
//	eng, err := pca.New(2)
//	if err != nil { ... }
//	if err := eng.Fit(X); err != nil { ... }
//	Y, err := eng.Transform(Xnew) // n_samples × 2
//
// Fit pipeline:
//
//  1. per-feature mean and centering (matrix.Covariance);
//  2. sample covariance (Xcᵀ·Xc)/(n-1);
//  3. symmetric eigendecomposition (Jacobi by default, gonum EigenSym optionally);
//  4. stable descending sort of eigenpairs (ties keep solver order);
//  5. sign convention: the largest-magnitude entry of every component is positive;
//  6. truncation to the requested number of components.
//
// Steps 4 and 5 make the result a pure function of the input: fitting the
// same matrix twice yields bit-identical components.
//
// Mean policy:
//
//	FitMean (default) centers Transform input with the training mean, which
//	is standard PCA. BatchMean recenters every batch on its own mean; it
//	exists for compatibility with pipelines that were built around that
//	behaviour and diverges from FitMean whenever a batch is shifted.
//
// Concurrency:
//
//	Engine is safe for concurrent use. Fit and FitTransform take an exclusive
//	lock; Transform, InverseTransform and the accessors share a read lock.
//
// Errors are sentinels (ErrInvalidShape, ErrShapeMismatch, ErrNotFitted,
// ErrNumerical, ...) matched with errors.Is. Underlying matrix sentinels stay
// matchable as well.
package pca
