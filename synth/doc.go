// SPDX-License-Identifier: MIT

// Package synth generates deterministic synthetic sample matrices for
// exercising principal component analysis: isotropic Gaussian clouds,
// low-rank factor models with additive noise, and column-shifted variants.
//
// Every generator is a pure function of (shape, seed, options): seed==0 maps
// to a fixed default seed, and independent sub-streams (latent factors,
// loadings, noise) are derived with a SplitMix64 mix so that changing one
// knob (e.g. noise) leaves the other draws untouched.
//
//	X, err := synth.LowRank(500, 10, 3, 42, synth.WithNoise(0.01))
//	// X has ≈3 dominant principal components.
package synth
