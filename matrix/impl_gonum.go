// SPDX-License-Identifier: MIT
// Package matrix - interoperability with gonum.
//
// Purpose:
//   - Move data between this package and gonum.org/v1/gonum/mat so results
//     can be handed to (or verified against) gonum's numerical routines.
//   - Tolerance comparison (AllClose) on top of gonum's floats/scalar.
//
// Notes:
//   - Conversions always copy; no storage is shared across the boundary.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"
)

// ToGonum copies m into a new *mat.Dense of the same shape.
//
// Errors:
//   - ErrNilMatrix; element access errors from non-Dense implementations.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func ToGonum(m Matrix) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}

	rows, cols := m.Rows(), m.Cols()
	buf := make([]float64, rows*cols)
	if d, ok := m.(*Dense); ok {
		copy(buf, d.data)

		return mat.NewDense(rows, cols, buf), nil
	}
	for i := 0; i < rows; i++ {
		if err := copyRowInto(buf[i*cols:(i+1)*cols], m, i, 0); err != nil {
			return nil, matrixErrorf(opToGonum, err)
		}
	}

	return mat.NewDense(rows, cols, buf), nil
}

// FromGonum copies any gonum mat.Matrix into a new *Dense.
//
// Errors:
//   - ErrNilMatrix (nil g); ErrInvalidDimensions (empty g);
//     ErrNaNInf (non-finite entry under the default policy).
func FromGonum(g mat.Matrix, opts ...Option) (*Dense, error) {
	if g == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	rows, cols := g.Dims()
	o := gatherOptions(opts...)
	res, err := newDenseWithPolicy(rows, cols, o.validateNaNInf)
	if err != nil {
		return nil, matrixErrorf(opFromGonum, err)
	}

	var v float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v = g.At(i, j)
			if res.validateNaNInf && isNonFinite(v) {
				return nil, matrixErrorf(opFromGonum, denseErrorf(ctxSet, i, j, ErrNaNInf))
			}
			res.data[i*cols+j] = v
		}
	}

	return res, nil
}

// AllClose reports whether a and b have the same shape and every pair of
// entries satisfies |a-b| <= atol or the relative difference is <= rtol
// (scalar.EqualWithinAbsOrRel).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf (negative or non-finite tolerances).
func AllClose(a, b Matrix, atol, rtol float64) (bool, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if isNonFinite(atol) || isNonFinite(rtol) || atol < 0 || rtol < 0 {
		return false, matrixErrorf(opAllClose, fmt.Errorf("atol=%g rtol=%g: %w", atol, rtol, ErrNaNInf))
	}

	var av, bv float64
	var err error
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if !scalar.EqualWithinAbsOrRel(av, bv, atol, rtol) {
				return false, nil
			}
		}
	}

	return true, nil
}
