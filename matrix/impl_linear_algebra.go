// SPDX-License-Identifier: MIT
// Package matrix provides the arithmetic collaborators of the elimination
// engine: element-wise addition, in-place scalar scaling, matrix
// multiplication, integer powers, column augmentation and column extraction.
// All functions validate shapes up front and return sentinel errors wrapped
// with an operation tag.
//
// Notes:
//   - *Dense operands take a flat-slice fast path; any other Matrix goes
//     through At/Set with the same loop order.
//   - Add, Mul, Power, Augment and Columns allocate fresh results. Scale is
//     the exception: it mutates its argument, like the row primitives it
//     delegates to.

package matrix

import (
	"fmt"
)

// ZeroSum is the initial value of inner-product accumulators.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opMul       = "Mul"
	opScale     = "Scale"
	opPower     = "Power"
	opAugment   = "Augment"
	opColumns   = "Columns"
	opInverse   = "Inverse"
	opEchelon   = "EchelonForm"
	opReduced   = "ReducedEchelonForm"
	opPivots    = "Pivots"
	opInterchg  = "RowInterchange"
	opCombine   = "RowCombination"
	opRowScale  = "RowScaling"
	opPrint     = "Fprint"
	opToGonum   = "ToGonum"
	opFromGonum = "FromGonum"
	opAllClose  = "AllClose"
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
// Call only with a non-nil err.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Allocate Dense(rows, cols).
//   - Stage 2: single flat loop if both are *Dense; otherwise i→j via At/Set.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf (a sum overflowed or an
//     operand held NaN/Inf; results use the default finite-only policy).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range res.data {
				if err = res.store(idx, da.data[idx]+db.data[idx]); err != nil {
					return nil, matrixErrorf(opAdd, err)
				}
			}

			return res, nil
		}
	}

	var i, j int
	var av, bv float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opAdd, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opAdd, err)
			}
			if err = res.store(i*cols+j, av+bv); err != nil {
				return nil, matrixErrorf(opAdd, err)
			}
		}
	}

	return res, nil
}

// Scale multiplies every entry of m by coefficient, in place, by applying
// RowScaling to each row. It returns m itself for chaining.
//
// Errors:
//   - ErrNilMatrix, ErrNaNInf, ErrZeroCoefficient (coefficient == 0).
//
// Complexity:
//   - Time O(r*c), Space O(1).
//
// Notes:
//   - A zero coefficient is refused before any row is touched.
func Scale(m Matrix, coefficient float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	for i := 0; i < m.Rows(); i++ {
		if _, err := RowScaling(m, i, coefficient); err != nil {
			return nil, matrixErrorf(opScale, err)
		}
	}

	return m, nil
}

// Mul performs matrix multiplication C = A × B as row-by-column inner
// products: C[i,j] = Σ_k A[i,k]·B[k,j].
//
// Implementation:
//   - Stage 1: ValidateMulCompatible (A.Cols == B.Rows). Allocate r×c result.
//   - Stage 2: i→j→k triple loop; flat indexing for *Dense operands.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf (non-finite entry in the
//     product under the default finite-only policy).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, inner, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k int
		sum     float64
		av, bv  float64
	)
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var rowA int
			for i = 0; i < aRows; i++ {
				rowA = i * inner
				for j = 0; j < bCols; j++ {
					sum = ZeroSum
					for k = 0; k < inner; k++ {
						sum += da.data[rowA+k] * db.data[k*bCols+j]
					}
					if err = res.store(i*bCols+j, sum); err != nil {
						return nil, matrixErrorf(opMul, err)
					}
				}
			}

			return res, nil
		}
	}

	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			sum = ZeroSum
			for k = 0; k < inner; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				sum += av * bv
			}
			if err = res.store(i*bCols+j, sum); err != nil {
				return nil, matrixErrorf(opMul, err)
			}
		}
	}

	return res, nil
}

// Power raises a square matrix to a non-negative integer power by repeated
// multiplication starting from the identity. Power(m, 0) is I_n whatever m
// contains.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square), ErrNegativeExponent.
//
// Complexity:
//   - Time O(k·n^3), Space O(n^2).
func Power(m Matrix, exponent int) (Matrix, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opPower, err)
	}
	if exponent < 0 {
		return nil, matrixErrorf(opPower, fmt.Errorf("exponent %d: %w", exponent, ErrNegativeExponent))
	}

	id, err := NewIdentity(m.Rows())
	if err != nil {
		return nil, matrixErrorf(opPower, err)
	}
	var acc Matrix = id
	for i := 0; i < exponent; i++ {
		if acc, err = Mul(acc, m); err != nil {
			return nil, matrixErrorf(opPower, err)
		}
	}

	return acc, nil
}

// Augment returns [left | right]: a fresh rows×(lc+rc) Dense whose first lc
// columns are copied from left and the remaining rc columns from right.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (row counts differ).
//
// Complexity:
//   - Time O(r*(lc+rc)), Space O(r*(lc+rc)).
func Augment(left, right Matrix) (*Dense, error) {
	if err := ValidateSameRows(left, right); err != nil {
		return nil, matrixErrorf(opAugment, err)
	}

	rows, lc, rc := left.Rows(), left.Cols(), right.Cols()
	res, err := NewDense(rows, lc+rc)
	if err != nil {
		return nil, matrixErrorf(opAugment, err)
	}

	var i int
	var dst []float64
	dl, okL := left.(*Dense)
	dr, okR := right.(*Dense)
	for i = 0; i < rows; i++ {
		dst = res.rowSlice(i)
		if okL {
			copy(dst[:lc], dl.rowSlice(i))
		} else if err = copyRowInto(dst[:lc], left, i, 0); err != nil {
			return nil, matrixErrorf(opAugment, err)
		}
		if okR {
			copy(dst[lc:], dr.rowSlice(i))
		} else if err = copyRowInto(dst[lc:], right, i, 0); err != nil {
			return nil, matrixErrorf(opAugment, err)
		}
	}

	return res, nil
}

// Columns returns a fresh Dense holding columns [from, to) of m.
// Inverse uses it to split the right-hand block off the augmented matrix.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange (empty or out-of-bounds range).
func Columns(m Matrix, from, to int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opColumns, err)
	}
	if err := ValidateColRange(m, from, to); err != nil {
		return nil, matrixErrorf(opColumns, err)
	}

	rows := m.Rows()
	res, err := NewDense(rows, to-from)
	if err != nil {
		return nil, matrixErrorf(opColumns, err)
	}
	dm, ok := m.(*Dense)
	for i := 0; i < rows; i++ {
		if ok {
			copy(res.rowSlice(i), dm.rowSlice(i)[from:to])
			continue
		}
		if err = copyRowInto(res.rowSlice(i), m, i, from); err != nil {
			return nil, matrixErrorf(opColumns, err)
		}
	}

	return res, nil
}

// copyRowInto reads len(dst) entries of row i of m, starting at column c0.
func copyRowInto(dst []float64, m Matrix, i, c0 int) error {
	var v float64
	var err error
	for j := range dst {
		if v, err = m.At(i, c0+j); err != nil {
			return err
		}
		dst[j] = v
	}

	return nil
}
