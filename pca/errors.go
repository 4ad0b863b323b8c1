// SPDX-License-Identifier: MIT
// Package pca: sentinel error set.
//
// Every message is prefixed with "pca: ". Operations wrap with pcaErrorf so
// both the pca sentinel and the underlying cause match errors.Is.

package pca

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidShape is returned for unusable input geometry: nil or empty
	// matrices, fewer than two samples, or more components than features.
	ErrInvalidShape = errors.New("pca: invalid shape")

	// ErrInvalidComponents is returned by New for a non-positive component count.
	// It also matches ErrInvalidShape.
	ErrInvalidComponents = fmt.Errorf("pca: component count must be > 0: %w", ErrInvalidShape)

	// ErrShapeMismatch indicates that input feature dimensionality disagrees
	// with the fitted model.
	ErrShapeMismatch = errors.New("pca: feature dimension mismatch")

	// ErrNotFitted is returned by Transform and accessors before a successful Fit.
	ErrNotFitted = errors.New("pca: engine is not fitted")

	// ErrNumerical signals non-finite values in input or intermediates, or an
	// eigendecomposition that failed to converge.
	ErrNumerical = errors.New("pca: numerical failure")

	// ErrInvalidModel is returned by FromModel and ReadModel for an
	// inconsistent or corrupted model snapshot.
	ErrInvalidModel = errors.New("pca: invalid model")
)

// Operation tags.
const (
	opNew              = "New"
	opFit              = "Fit"
	opTransform        = "Transform"
	opInverseTransform = "InverseTransform"
	opFitTransform     = "FitTransform"
	opComponents       = "Components"
	opExplained        = "ExplainedVariance"
	opMean             = "Mean"
	opModel            = "Model"
	opFromModel        = "FromModel"
	opReadModel        = "ReadModel"
	opWriteModel       = "WriteModel"
)

// pcaErrorf tags kind with op and, when cause is non-nil, chains it so both
// sentinels match errors.Is.
func pcaErrorf(op string, kind, cause error) error {
	if cause == nil {
		return fmt.Errorf("%s: %w", op, kind)
	}

	return fmt.Errorf("%s: %w: %w", op, kind, cause)
}
