// SPDX-License-Identifier: MIT
// Package: synth
//
// errors.go - sentinel errors for the synth package.
// Callers branch with errors.Is; implementations attach context with %w.

package synth

import "errors"

var (
	// ErrTooSmall indicates a non-positive row or column count.
	ErrTooSmall = errors.New("synth: parameter too small")

	// ErrInvalidRank indicates rank outside [1, min(rows, cols)].
	ErrInvalidRank = errors.New("synth: rank out of range")

	// ErrShiftLength indicates a WithShift vector whose length differs from cols.
	ErrShiftLength = errors.New("synth: shift length mismatch")
)
