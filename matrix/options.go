// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the absolute per-element tolerance used by ApproxEqual.
	// Sized for float32 data with magnitudes around 1.
	DefaultEpsilon = 1e-5

	// DefaultPivotTolerance is the smallest scaled pivot |u_jj|/max|row_j| that
	// Invert accepts. Below it the matrix is reported as ErrSingular.
	DefaultPivotTolerance = 1e-12
)

// Panic messages for invalid option parameters.
const (
	panicEpsilonInvalid  = "matrix: WithEpsilon requires a finite eps >= 0"
	panicPivotTolInvalid = "matrix: WithPivotTolerance requires a finite tol >= 0"
)

// Options holds the resolved numeric policy. Fields are unexported; public
// APIs consume ...Option.
type Options struct {
	eps      float64 // ApproxEqual tolerance
	pivotTol float64 // Invert scaled-pivot threshold
}

// Option mutates Options; constructors validate eagerly.
type Option func(*Options)

// WithEpsilon sets the absolute tolerance used by ApproxEqual.
// Panics when eps is negative, NaN or ±Inf.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithPivotTolerance sets the scaled-pivot threshold used by Invert.
// A zero tolerance restores the strict "exactly zero pivot" rule.
// Panics when tol is negative, NaN or ±Inf.
func WithPivotTolerance(tol float64) Option {
	if isNonFinite(tol) || tol < 0 {
		panic(panicPivotTolInvalid)
	}

	return func(o *Options) { o.pivotTol = tol }
}

// gatherOptions applies user setters on top of the defaults (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:      DefaultEpsilon,
		pivotTol: DefaultPivotTolerance,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
