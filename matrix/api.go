// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin entry points with alternative, intention-revealing names.
//   - Avoid any logic duplication: each facade delegates to the canonical kernel.
//
// Policy:
//   - Facades never change loop orders, ownership or numeric policy of the kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

// ---------- Constructors & Utilities ----------

// CloneMatrix returns a deep copy of m. Use it before handing a matrix to
// one of the in-place routines when the original must survive.
func CloneMatrix(m Matrix) Matrix {
	return m.Clone()
}

// ZerosLike returns a new zero matrix with the same shape as m.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return NewDense(m.Rows(), m.Cols())
}

// ---------- Arithmetic aliases ----------

// Sum is an alias for Add: element-wise a + b.
func Sum(a, b Matrix) (Matrix, error) { return Add(a, b) }

// Product is an alias for Mul: matrix product a × b.
func Product(a, b Matrix) (Matrix, error) { return Mul(a, b) }

// Pow is an alias for Power.
func Pow(m Matrix, exponent int) (Matrix, error) { return Power(m, exponent) }

// ---------- Elimination aliases ----------

// REF is an alias for EchelonForm (in place).
func REF(m Matrix, opts ...Option) (Matrix, error) { return EchelonForm(m, opts...) }

// RREF is an alias for ReducedEchelonForm (in place).
func RREF(m Matrix, opts ...Option) (Matrix, error) { return ReducedEchelonForm(m, opts...) }

// InverseOf is an alias for Inverse.
func InverseOf(m Matrix, opts ...Option) (Matrix, error) { return Inverse(m, opts...) }

// ReducedCopy returns the reduced echelon form of a clone of m, leaving m untouched.
func ReducedCopy(m Matrix, opts ...Option) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opReduced, err)
	}

	return ReducedEchelonForm(m.Clone(), opts...)
}

// ---------- Numeric compare ----------

// IsIdentity reports whether m is square and within atol of I.
// Handy to check Mul(A, Inverse(A)).
func IsIdentity(m Matrix, atol float64) (bool, error) {
	if err := ValidateNotNil(m); err != nil {
		return false, matrixErrorf("IsIdentity", err)
	}
	if m.Rows() != m.Cols() {
		return false, nil
	}
	id, err := NewIdentity(m.Rows())
	if err != nil {
		return false, matrixErrorf("IsIdentity", err)
	}

	return AllClose(m, id, atol, 0)
}
