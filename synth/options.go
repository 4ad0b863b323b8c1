// SPDX-License-Identifier: MIT
// Package: synth
//
// options.go - functional options for the generators.
//
// Contract:
//   - Option constructors VALIDATE and PANIC on meaningless inputs.
//   - Generators themselves never panic; they return sentinel errors.

package synth

import "math"

// Generator defaults.
const (
	// DefaultSigma is the standard deviation of Gaussian entries.
	DefaultSigma = 1.0

	// DefaultNoise is the additive noise standard deviation of LowRank.
	DefaultNoise = 0.0
)

// Option customizes a generator call.
type Option func(*config)

type config struct {
	sigma float64
	noise float64
	shift []float64
}

func newConfig(opts ...Option) config {
	c := config{sigma: DefaultSigma, noise: DefaultNoise}
	for _, set := range opts {
		if set != nil {
			set(&c)
		}
	}

	return c
}

// WithSigma sets the standard deviation of Gaussian entries (and of the
// latent factors in LowRank). Panics when sigma is negative or non-finite.
func WithSigma(sigma float64) Option {
	if math.IsNaN(sigma) || math.IsInf(sigma, 0) || sigma < 0 {
		panic("synth: WithSigma: sigma must be finite and >= 0")
	}

	return func(c *config) { c.sigma = sigma }
}

// WithNoise sets the additive isotropic noise of LowRank.
// Panics when noise is negative or non-finite.
func WithNoise(noise float64) Option {
	if math.IsNaN(noise) || math.IsInf(noise, 0) || noise < 0 {
		panic("synth: WithNoise: noise must be finite and >= 0")
	}

	return func(c *config) { c.noise = noise }
}

// WithShift adds shift[j] to every entry of column j (the vector is copied).
// Panics on a non-finite entry.
func WithShift(shift []float64) Option {
	for _, v := range shift {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			panic("synth: WithShift: entries must be finite")
		}
	}
	cp := append([]float64(nil), shift...)

	return func(c *config) { c.shift = cp }
}
