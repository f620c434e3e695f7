// SPDX-License-Identifier: MIT
// Package matrix - elementary row operations.
//
// Purpose:
//   - The three in-place primitives of Gaussian elimination: interchange,
//     combination (row1 += c·row2) and scaling. EchelonForm,
//     ReducedEchelonForm, Inverse and Scale are compositions of these.
//
// Contract:
//   - Each primitive mutates m and returns the same m for chaining.
//   - Indices are validated (ErrOutOfRange); coefficients must be finite
//     (ErrNaNInf); RowScaling refuses 0 (ErrZeroCoefficient).
//   - Validation happens before the first write: a failing call leaves m untouched.
//
// Complexity:
//   - Each primitive is O(cols) time and O(1) extra space.

package matrix

import (
	"fmt"
)

// RowInterchange swaps rows row1 and row2 of m in place.
// row1 == row2 is a valid no-op.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange.
func RowInterchange(m Matrix, row1, row2 int) (Matrix, error) {
	if err := checkRows(m, row1, row2); err != nil {
		return nil, matrixErrorf(opInterchg, err)
	}
	if row1 == row2 {
		return m, nil
	}

	if d, ok := m.(*Dense); ok {
		a, b := d.rowSlice(row1), d.rowSlice(row2)
		for j := range a {
			a[j], b[j] = b[j], a[j]
		}

		return m, nil
	}

	var av, bv float64
	var err error
	for j := 0; j < m.Cols(); j++ {
		if av, err = m.At(row1, j); err != nil {
			return nil, matrixErrorf(opInterchg, err)
		}
		if bv, err = m.At(row2, j); err != nil {
			return nil, matrixErrorf(opInterchg, err)
		}
		if err = m.Set(row1, j, bv); err != nil {
			return nil, matrixErrorf(opInterchg, err)
		}
		if err = m.Set(row2, j, av); err != nil {
			return nil, matrixErrorf(opInterchg, err)
		}
	}

	return m, nil
}

// RowCombination replaces row1 with row1 + coefficient·row2, element-wise
// across all columns. row2 is not modified (unless row1 == row2, in which case
// the row is scaled by 1+coefficient).
//
// This is the only elimination primitive: pivots clear other rows through it.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange, ErrNaNInf (non-finite coefficient, or a
//     non-finite result on a *Dense with the finite-only policy).
func RowCombination(m Matrix, row1, row2 int, coefficient float64) (Matrix, error) {
	if err := checkRows(m, row1, row2); err != nil {
		return nil, matrixErrorf(opCombine, err)
	}
	if err := ValidateFinite(coefficient); err != nil {
		return nil, matrixErrorf(opCombine, err)
	}

	if d, ok := m.(*Dense); ok {
		dst, src := d.rowSlice(row1), d.rowSlice(row2)
		if d.validateNaNInf {
			for j := range dst {
				if isNonFinite(dst[j] + coefficient*src[j]) {
					return nil, matrixErrorf(opCombine, denseErrorf(ctxSet, row1, j, ErrNaNInf))
				}
			}
		}
		for j := range dst {
			dst[j] += coefficient * src[j]
		}

		return m, nil
	}

	var av, bv float64
	var err error
	for j := 0; j < m.Cols(); j++ {
		if av, err = m.At(row1, j); err != nil {
			return nil, matrixErrorf(opCombine, err)
		}
		if bv, err = m.At(row2, j); err != nil {
			return nil, matrixErrorf(opCombine, err)
		}
		if err = m.Set(row1, j, av+coefficient*bv); err != nil {
			return nil, matrixErrorf(opCombine, err)
		}
	}

	return m, nil
}

// RowScaling multiplies every entry of row by coefficient, in place.
//
// A zero coefficient would annihilate the row and make the operation
// irreversible; it is reported as ErrZeroCoefficient and m is left untouched.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange, ErrNaNInf, ErrZeroCoefficient.
func RowScaling(m Matrix, row int, coefficient float64) (Matrix, error) {
	if err := checkRows(m, row, row); err != nil {
		return nil, matrixErrorf(opRowScale, err)
	}
	if err := ValidateFinite(coefficient); err != nil {
		return nil, matrixErrorf(opRowScale, err)
	}
	if coefficient == 0 {
		return nil, matrixErrorf(opRowScale, fmt.Errorf("row %d: %w", row, ErrZeroCoefficient))
	}

	if d, ok := m.(*Dense); ok {
		r := d.rowSlice(row)
		if d.validateNaNInf {
			for j := range r {
				if isNonFinite(r[j] * coefficient) {
					return nil, matrixErrorf(opRowScale, denseErrorf(ctxSet, row, j, ErrNaNInf))
				}
			}
		}
		for j := range r {
			r[j] *= coefficient
		}

		return m, nil
	}

	var v float64
	var err error
	for j := 0; j < m.Cols(); j++ {
		if v, err = m.At(row, j); err != nil {
			return nil, matrixErrorf(opRowScale, err)
		}
		if err = m.Set(row, j, v*coefficient); err != nil {
			return nil, matrixErrorf(opRowScale, err)
		}
	}

	return m, nil
}

// checkRows – Composite: NotNil → RowIndex(row1) → RowIndex(row2).
func checkRows(m Matrix, row1, row2 int) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if err := ValidateRowIndex(m, row1); err != nil {
		return err
	}

	return ValidateRowIndex(m, row2)
}
