// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for construction and elimination.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - No global state. Randomness is explicit: seeded per call.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Panic only on invalid option parameters (programmer error).
//
// Notes:
//   - Numeric policy for elimination: the pivot predicate compares against
//     zero exactly when eps == 0 (the default); WithEpsilon switches it to
//     |v| <= eps without touching the elimination algorithm.
//   - Inverse is permissive by default: singular inputs produce a result with
//     no error. WithSingularCheck opts into ErrSingular.
package matrix

import (
	"time"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the negligibility threshold of the pivot predicate.
	// Zero means exact comparison with 0.
	DefaultEpsilon = 0.0

	// DefaultValidateNaNInf toggles strict finite-value validation on Set/Apply
	// of newly built matrices.
	DefaultValidateNaNInf = true

	// DefaultSingularCheck controls whether Inverse reports ErrSingular.
	DefaultSingularCheck = false
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	// numeric policy
	eps            float64 // >= 0; DefaultEpsilon
	validateNaNInf bool    // DefaultValidateNaNInf

	// inverse policy
	singularCheck bool // DefaultSingularCheck

	// random construction
	seed   uint64 // used only when seeded == true
	seeded bool
}

// WithEpsilon sets the tolerance of the pivot predicate: entries with
// |v| <= eps are treated as zero during elimination.
//
// Errors:
//   - Panics with a stable message when eps is NaN, ±Inf or negative.
//
// Notes:
//   - eps = 0 restores exact comparison.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithSingularCheck makes Inverse return ErrSingular when the input has no
// full set of pivots.
func WithSingularCheck() Option {
	return func(o *Options) { o.singularCheck = true }
}

// WithoutSingularCheck restores the permissive default of Inverse.
func WithoutSingularCheck() Option {
	return func(o *Options) { o.singularCheck = false }
}

// WithSeed fixes the seed of NewRandom/NewRandomInt for reproducible output.
func WithSeed(seed uint64) Option {
	return func(o *Options) {
		o.seed = seed
		o.seeded = true
	}
}

// WithValidateNaNInf enables strict finite-value validation on matrices built
// by constructors that accept options. This is the default.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation on newly built matrices.
// Existing matrices keep their policy.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// NewMatrixOptions resolves option setters against documented defaults.
// Last-writer-wins.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// Epsilon returns the resolved pivot tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// SingularCheck reports whether Inverse runs in strict mode.
func (o Options) SingularCheck() bool { return o.singularCheck }

// gatherOptions applies user-provided Option setters on top of defaults.
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
		singularCheck:  DefaultSingularCheck,
	}
	for _, set := range user {
		if set != nil {
			set(&o) // apply in order; last-writer-wins semantics
		}
	}

	return o
}

// randomSeed returns the configured seed, or one derived from the wall clock.
func (o Options) randomSeed() uint64 {
	if o.seeded {
		return o.seed
	}

	return uint64(time.Now().UnixNano())
}
