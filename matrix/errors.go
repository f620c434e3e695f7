// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels (optionally wrapped with an
// operation tag) and tests MUST check them via errors.Is. No exported routine
// panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Kernels wrap
// with matrixErrorf(opTag, ErrX) so messages read "Inverse: matrix: ...";
// callers still match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape/index -> numeric (NaN/Inf, zero coefficient) -> singular.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) and the row primitives MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add with different shapes, Mul where a.Cols != b.Rows, Augment with
	// different row counts, or a non-square input to Inverse/Power.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrZeroCoefficient is returned by RowScaling (and Scale) for a zero
	// coefficient: scaling a row by 0 destroys information irreversibly.
	ErrZeroCoefficient = errors.New("matrix: zero scaling coefficient")

	// ErrSingular is returned by Inverse under WithSingularCheck when the
	// left block of the reduced augmented matrix lacks a pivot.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrInvalidBounds indicates an empty or non-finite sampling interval
	// passed to NewRandom/NewRandomInt.
	ErrInvalidBounds = errors.New("matrix: invalid random bounds")

	// ErrNegativeExponent indicates a negative exponent passed to Power.
	ErrNegativeExponent = errors.New("matrix: negative exponent")
)

// ErrIndexOutOfBounds historically named the same condition as ErrOutOfRange.
// Keep it as an alias so errors.Is(err, ErrIndexOutOfBounds) remains true.
var ErrIndexOutOfBounds = ErrOutOfRange // Deprecated: use ErrOutOfRange.
