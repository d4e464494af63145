// SPDX-License-Identifier: MIT

// Package numeric: functional configuration for the Newton–Raphson square root.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults and setters.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Sqrt(x) and SqrtWith(x) with no options are the same computation.
//   - Panic only on invalid parameters (programmer error), never on input data.
package numeric

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMaxIterations bounds the Newton loop. Convergence for
	// range-reduced inputs takes far fewer steps; the cap guards against
	// oscillation between two neighbouring floats.
	DefaultMaxIterations = 100

	// DefaultTolerance of zero selects MinNormal[T]() as the relative
	// stopping bound, i.e. iterate until consecutive estimates coincide.
	DefaultTolerance = 0.0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicMaxIterationsInvalid = "numeric: WithMaxIterations: n must be >= 1"
	panicToleranceInvalid     = "numeric: WithTolerance: tol must be finite, non-negative"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; read them through the accessor methods.
type Options struct {
	maxIter   int     // >= 1; DefaultMaxIterations
	tolerance float64 // >= 0; DefaultTolerance (0 ⇒ MinNormal[T])
}

// MaxIterations returns the Newton iteration cap.
func (o Options) MaxIterations() int { return o.maxIter }

// Tolerance returns the configured relative stopping bound (0 means MinNormal of T).
func (o Options) Tolerance() float64 { return o.tolerance }

// WithMaxIterations caps the number of Newton updates.
// Implementation:
//   - Stage 1: validate n >= 1.
//   - Stage 2: return a setter writing n into Options.
//
// Errors:
//   - Panics with a stable message when n < 1.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic(panicMaxIterationsInvalid)
	}

	return func(o *Options) { o.maxIter = n }
}

// WithTolerance sets the relative stopping bound |xₙ − x/xₙ| / (1 + xₙ) < tol.
// Zero restores the default (MinNormal of the instantiated type).
//
// Errors:
//   - Panics with a stable message when tol is NaN, ±Inf or negative.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tolerance = tol }
}

// NewSqrtOptions resolves option setters against documented defaults.
// Useful to inspect the effective configuration; SqrtWith resolves internally.
func NewSqrtOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user setters on top of defaults (last-writer-wins).
// Complexity: O(k) for k=len(user); no allocation for k == 0.
func gatherOptions(user ...Option) Options {
	o := Options{
		maxIter:   DefaultMaxIterations,
		tolerance: DefaultTolerance,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
