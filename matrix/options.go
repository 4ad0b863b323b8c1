// SPDX-License-Identifier: MIT
// Package: matrix
//
// options.go - numeric policy for Dense construction and structural checks.
//
// Contract:
//   - Options are functional (type Option func(*Options)).
//   - Option constructors validate and PANIC on nonsensical values
//     (programmer error). Kernels themselves never panic.
//   - Defaults live in Default* constants (single source of truth).
//
// Numeric policy:
//   - eps is the non-negative tolerance used by symmetry checks (EigenSym)
//     and by Dense equality helpers.
//   - validateNaNInf controls whether Set()/ingestion rejects NaN/±Inf.
//     It is ON by default; turn it off only to ingest raw data that will be
//     screened later (e.g., by ValidateFinite).
package matrix

import "math"

// Numeric policy defaults.
const (
	// DefaultEpsilon defines the non-negative tolerance used by structural checks.
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true
)

const panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	eps            float64 // >= 0; DefaultEpsilon
	validateNaNInf bool    // DefaultValidateNaNInf
}

// Epsilon reports the resolved tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// ValidateNaNInf reports whether the finite-only policy is on.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// WithEpsilon sets the numeric tolerance eps used by structural checks.
// Panics with a stable message when eps is NaN, ±Inf or negative.
//
// AI-Hints:
//   - 1e-9 suits double-precision data; loosen only for noisy inputs.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}
	return func(o *Options) {
		o.eps = eps
	}
}

// WithValidateNaNInf enables the finite-only policy (the default).
func WithValidateNaNInf() Option {
	return func(o *Options) {
		o.validateNaNInf = true
	}
}

// WithNoValidateNaNInf disables the finite-only policy so raw data containing
// NaN/±Inf can be ingested and screened later.
func WithNoValidateNaNInf() Option {
	return func(o *Options) {
		o.validateNaNInf = false
	}
}

// NewMatrixOptions resolves option setters against documented defaults.
// Last-writer-wins; pure function.
// Complexity: O(k) for k=len(opts).
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user-provided setters on top of defaults.
// This is the canonical internal entry for constructors and facades.
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		if set != nil {
			set(&o) // apply in order; last-writer-wins semantics
		}
	}

	return o
}
