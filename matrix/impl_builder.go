// SPDX-License-Identifier: MIT
// Package matrix - canonical builders for Dense matrices.
//
// Purpose:
//   - Explicit construction from row slices (NewFromRows).
//   - Neutral elements: zeros and the identity.
//   - Test-data generation: uniform random entries with float bounds
//     (gonum distuv.Uniform) or integer bounds, both over [lo, hi).
//
// Policy & Contracts:
//   - Shapes must be positive (ErrInvalidDimensions).
//   - Random bounds must be finite with lo < hi (ErrInvalidBounds).
//   - Randomness is per call: each builder owns its source, seeded by
//     WithSeed or by the wall clock. No global generator is touched.

package matrix

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Builder tags for error wrapping.
const (
	opFromRows   = "NewFromRows"
	opIdentity   = "NewIdentity"
	opRandom     = "NewRandom"
	opRandomInt  = "NewRandomInt"
	identityDiag = 1.0
)

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// Thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewFromRows builds a Dense from a rectangular [][]float64, copying data.
//
// Implementation:
//   - Stage 1: reject empty input and ragged rows.
//   - Stage 2: allocate rows×cols and copy row by row, enforcing the numeric policy.
//
// Errors:
//   - ErrInvalidDimensions (no rows or empty first row).
//   - ErrDimensionMismatch (ragged rows).
//   - ErrNaNInf (non-finite entry under the default policy).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf(opFromRows, ErrInvalidDimensions)
	}
	o := gatherOptions(opts...)
	r, c := len(rows), len(rows[0])
	res, err := newDenseWithPolicy(r, c, o.validateNaNInf)
	if err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}

	var i, j int
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, matrixErrorf(opFromRows, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(rows[i]), c, ErrDimensionMismatch))
		}
		for j = 0; j < c; j++ {
			if res.validateNaNInf && isNonFinite(rows[i][j]) {
				return nil, matrixErrorf(opFromRows, denseErrorf(ctxSet, i, j, ErrNaNInf))
			}
		}
		copy(res.rowSlice(i), rows[i])
	}

	return res, nil
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = identityDiag
	}

	return I, nil
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return NewIdentity(m.Rows())
}

// NewRandom returns a rows×cols Dense with entries drawn uniformly from
// [lowerBound, upperBound). A sample that rounds up to upperBound is redrawn.
//
// Implementation:
//   - Stage 1: validate shape and bounds.
//   - Stage 2: build a distuv.Uniform over a per-call source (WithSeed or clock).
//   - Stage 3: fill row-major.
//
// Errors:
//   - ErrInvalidDimensions, ErrInvalidBounds (non-finite bounds, lowerBound >=
//     upperBound, or an interval whose width overflows float64).
//
// Determinism:
//   - Identical output for identical (shape, bounds, WithSeed) inputs.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewRandom(rows, cols int, lowerBound, upperBound float64, opts ...Option) (*Dense, error) {
	if isNonFinite(lowerBound) || isNonFinite(upperBound) || lowerBound >= upperBound ||
		isNonFinite(upperBound-lowerBound) {
		return nil, matrixErrorf(opRandom, fmt.Errorf("[%g, %g): %w", lowerBound, upperBound, ErrInvalidBounds))
	}
	o := gatherOptions(opts...)
	res, err := newDenseWithPolicy(rows, cols, o.validateNaNInf)
	if err != nil {
		return nil, matrixErrorf(opRandom, err)
	}

	dist := distuv.Uniform{
		Min: lowerBound,
		Max: upperBound,
		Src: rand.NewSource(o.randomSeed()),
	}
	var v float64
	for idx := range res.data {
		for v = dist.Rand(); v >= upperBound; v = dist.Rand() {
		}
		res.data[idx] = v
	}

	return res, nil
}

// NewRandomInt returns a rows×cols Dense whose entries are integers drawn
// uniformly from [lowerBound, upperBound) and stored as float64.
//
// Errors:
//   - ErrInvalidDimensions, ErrInvalidBounds (lowerBound >= upperBound).
//
// Notes:
//   - The span is computed in uint64, so any pair of int bounds is accepted.
//     Integers beyond 2^53 lose precision when stored as float64.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewRandomInt(rows, cols int, lowerBound, upperBound int, opts ...Option) (*Dense, error) {
	if lowerBound >= upperBound {
		return nil, matrixErrorf(opRandomInt, fmt.Errorf("[%d, %d): %w", lowerBound, upperBound, ErrInvalidBounds))
	}
	o := gatherOptions(opts...)
	res, err := newDenseWithPolicy(rows, cols, o.validateNaNInf)
	if err != nil {
		return nil, matrixErrorf(opRandomInt, err)
	}

	gen := rand.New(rand.NewSource(o.randomSeed()))
	span := uint64(upperBound) - uint64(lowerBound) // in (0, 2^64-1]; wraps correctly
	for idx := range res.data {
		res.data[idx] = float64(int(uint64(lowerBound) + gen.Uint64n(span)))
	}

	return res, nil
}
