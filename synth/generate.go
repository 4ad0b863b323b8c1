// SPDX-License-Identifier: MIT
// Package: synth
//
// generate.go - matrix generators.
//
// Complexity:
//   - Gaussian O(rows*cols); LowRank O(rows*cols*rank).

package synth

import (
	"fmt"

	"github.com/katalvlaran/lvpca/matrix"
)

// Gaussian returns a rows×cols matrix of i.i.d. N(shift[j], sigma²) entries.
//
// Errors:
//   - ErrTooSmall (rows < 1 or cols < 1), ErrShiftLength.
func Gaussian(rows, cols int, seed int64, opts ...Option) (*matrix.Dense, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("Gaussian(%d,%d): %w", rows, cols, ErrTooSmall)
	}
	cfg := newConfig(opts...)
	if err := cfg.checkShift(cols); err != nil {
		return nil, fmt.Errorf("Gaussian: %w", err)
	}

	out, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("Gaussian: %w", err)
	}
	rng := deriveRNG(seed, streamValues)
	if err = out.Apply(func(_, _ int, _ float64) float64 {
		return cfg.sigma * rng.NormFloat64()
	}); err != nil {
		return nil, fmt.Errorf("Gaussian: %w", err)
	}

	return cfg.applyShift(out)
}

// LowRank returns Z·W + noise + shift where Z is rows×rank with N(0, sigma²)
// entries and W is rank×cols with N(0,1) entries scaled by (rank-r) on row r.
// The scaling gives the factors distinct variances, so the leading principal
// components are well separated.
//
// Latent factors, loadings and noise come from independent streams of seed:
// changing WithNoise alters only the noise term.
//
// Errors:
//   - ErrTooSmall, ErrInvalidRank (rank < 1 or rank > min(rows, cols)), ErrShiftLength.
func LowRank(rows, cols, rank int, seed int64, opts ...Option) (*matrix.Dense, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("LowRank(%d,%d): %w", rows, cols, ErrTooSmall)
	}
	if rank < 1 || rank > min(rows, cols) {
		return nil, fmt.Errorf("LowRank: rank %d for %dx%d: %w", rank, rows, cols, ErrInvalidRank)
	}
	cfg := newConfig(opts...)
	if err := cfg.checkShift(cols); err != nil {
		return nil, fmt.Errorf("LowRank: %w", err)
	}

	latent, err := matrix.NewDense(rows, rank)
	if err != nil {
		return nil, fmt.Errorf("LowRank: %w", err)
	}
	zr := deriveRNG(seed, streamLatent)
	if err = latent.Apply(func(_, _ int, _ float64) float64 {
		return cfg.sigma * zr.NormFloat64()
	}); err != nil {
		return nil, fmt.Errorf("LowRank: %w", err)
	}

	loadings, err := matrix.NewDense(rank, cols)
	if err != nil {
		return nil, fmt.Errorf("LowRank: %w", err)
	}
	wr := deriveRNG(seed, streamLoadings)
	if err = loadings.Apply(func(r, _ int, _ float64) float64 {
		return float64(rank-r) * wr.NormFloat64()
	}); err != nil {
		return nil, fmt.Errorf("LowRank: %w", err)
	}

	signal, err := matrix.Mul(latent, loadings)
	if err != nil {
		return nil, fmt.Errorf("LowRank: %w", err)
	}
	out := signal.(*matrix.Dense)
	if cfg.noise > 0 {
		nr := deriveRNG(seed, streamNoise)
		if err = out.Apply(func(_, _ int, v float64) float64 {
			return v + cfg.noise*nr.NormFloat64()
		}); err != nil {
			return nil, fmt.Errorf("LowRank: %w", err)
		}
	}

	return cfg.applyShift(out)
}

func (c config) checkShift(cols int) error {
	if c.shift != nil && len(c.shift) != cols {
		return fmt.Errorf("shift has %d values for %d columns: %w", len(c.shift), cols, ErrShiftLength)
	}

	return nil
}

func (c config) applyShift(m *matrix.Dense) (*matrix.Dense, error) {
	if c.shift == nil {
		return m, nil
	}
	out, err := matrix.BroadcastAddCols(m, c.shift)
	if err != nil {
		return nil, fmt.Errorf("shift: %w", err)
	}

	return out, nil
}
