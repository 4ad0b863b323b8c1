// SPDX-License-Identifier: MIT
// Package: pca
//
// options.go - functional options for Engine.
//
// Contract:
//   - Defaults live in Default* constants (single source of truth).
//   - Option constructors PANIC on nonsensical values (programmer error);
//     Engine methods never panic on user data.
//   - Options are resolved once in New/FromModel; an Engine's policy is immutable.

package pca

import (
	"fmt"
	"log/slog"
	"math"
	"strings"
)

// Solver selects the symmetric eigen-solver used by Fit.
type Solver int

const (
	// SolverJacobi uses matrix.Eigen (cyclic Jacobi rotations, fully deterministic).
	SolverJacobi Solver = iota

	// SolverGonum uses gonum.org/v1/gonum/mat.EigenSym (LAPACK dsyev port).
	SolverGonum
)

var solverNames = [...]string{SolverJacobi: "jacobi", SolverGonum: "gonum"}

// String returns the lower-case solver name ("jacobi", "gonum").
func (s Solver) String() string {
	if s < 0 || int(s) >= len(solverNames) {
		return fmt.Sprintf("Solver(%d)", int(s))
	}

	return solverNames[s]
}

// ParseSolver maps a case-insensitive name to a Solver.
func ParseSolver(name string) (Solver, error) {
	for i, n := range solverNames {
		if strings.EqualFold(strings.TrimSpace(name), n) {
			return Solver(i), nil
		}
	}

	return 0, fmt.Errorf("pca: unknown solver %q (want jacobi or gonum)", name)
}

// MeanPolicy selects which mean Transform subtracts before projecting.
type MeanPolicy int

const (
	// FitMean reuses the mean captured by Fit for every Transform call.
	FitMean MeanPolicy = iota

	// BatchMean recomputes the mean of each batch passed to Transform.
	// A batch shifted relative to the training data projects identically to
	// the unshifted batch under this policy.
	BatchMean
)

var meanPolicyNames = [...]string{FitMean: "fit", BatchMean: "batch"}

// String returns "fit" or "batch".
func (p MeanPolicy) String() string {
	if p < 0 || int(p) >= len(meanPolicyNames) {
		return fmt.Sprintf("MeanPolicy(%d)", int(p))
	}

	return meanPolicyNames[p]
}

// ParseMeanPolicy maps "fit" or "batch" (case-insensitive) to a MeanPolicy.
func ParseMeanPolicy(name string) (MeanPolicy, error) {
	for i, n := range meanPolicyNames {
		if strings.EqualFold(strings.TrimSpace(name), n) {
			return MeanPolicy(i), nil
		}
	}

	return 0, fmt.Errorf("pca: unknown mean policy %q (want fit or batch)", name)
}

// Engine defaults.
const (
	// DefaultSolver is the eigen-solver used when WithSolver is not given.
	DefaultSolver = SolverJacobi

	// DefaultMeanPolicy is the Transform centering policy.
	DefaultMeanPolicy = FitMean

	// DefaultTolerance is the Jacobi convergence threshold relative to the
	// largest covariance diagonal entry.
	DefaultTolerance = 1e-12

	// DefaultMaxIter of 0 means "auto": max(minAutoIter, autoIterPerEntry*d*d)
	// rotations for a d-feature covariance.
	DefaultMaxIter = 0
)

const (
	minAutoIter      = 100
	autoIterPerEntry = 30

	// nearZeroRel flags retained eigenvalues below nearZeroRel*λmax as rank deficiency.
	nearZeroRel = 1e-10
)

const (
	panicSolverInvalid     = "pca: WithSolver: unknown solver"
	panicMeanPolicyInvalid = "pca: WithMeanPolicy: unknown mean policy"
	panicToleranceInvalid  = "pca: WithTolerance: tol must be finite and > 0"
	panicMaxIterInvalid    = "pca: WithMaxIter: maxIter must be >= 0"
)

// Option configures an Engine.
type Option func(*options)

type options struct {
	solver     Solver
	meanPolicy MeanPolicy
	tol        float64
	maxIter    int
	logger     *slog.Logger
}

// WithSolver selects the eigen-solver. Panics on an unknown value.
func WithSolver(s Solver) Option {
	if s != SolverJacobi && s != SolverGonum {
		panic(panicSolverInvalid)
	}

	return func(o *options) { o.solver = s }
}

// WithMeanPolicy selects the Transform centering policy. Panics on an unknown value.
func WithMeanPolicy(p MeanPolicy) Option {
	if p != FitMean && p != BatchMean {
		panic(panicMeanPolicyInvalid)
	}

	return func(o *options) { o.meanPolicy = p }
}

// WithTolerance sets the relative convergence threshold for the Jacobi solver
// and the symmetry check feeding either solver.
// Panics when tol is NaN, ±Inf or <= 0.
//
// AI-Hints:
//   - 1e-12 (default) reaches full double precision on well-scaled data.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *options) { o.tol = tol }
}

// WithMaxIter caps Jacobi rotations; 0 restores the automatic budget.
// Panics when maxIter < 0.
func WithMaxIter(maxIter int) Option {
	if maxIter < 0 {
		panic(panicMaxIterInvalid)
	}

	return func(o *options) { o.maxIter = maxIter }
}

// WithLogger routes engine diagnostics to l; nil selects slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// gatherOptions applies setters on top of defaults (last writer wins).
func gatherOptions(user ...Option) options {
	o := options{
		solver:     DefaultSolver,
		meanPolicy: DefaultMeanPolicy,
		tol:        DefaultTolerance,
		maxIter:    DefaultMaxIter,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	o.logger = o.logger.With("component", "pca")

	return o
}

// rotationBudget resolves the Jacobi rotation cap for a d×d covariance.
func (o options) rotationBudget(d int) int {
	if o.maxIter > 0 {
		return o.maxIter
	}
	if n := autoIterPerEntry * d * d; n > minAutoIter {
		return n
	}

	return minAutoIter
}
