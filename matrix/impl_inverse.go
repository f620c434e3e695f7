// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// Inverse computes A^{-1} by Gauss–Jordan elimination on the augmented
// matrix [A | I]. The input is not mutated; a fresh n×n Dense is returned.
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil(m).
//   - Stage 2: aug = Augment(m, I_n).
//   - Stage 3: reduce aug to reduced echelon form.
//   - Stage 4: return columns n..2n-1 of aug.
//
// Behavior highlights:
//   - By default no singularity check is performed: for a singular input the
//     left block keeps zero rows and the returned block is NOT an inverse,
//     yet no error is reported.
//   - WithSingularCheck() turns a missing pivot in the left block into
//     ErrSingular. WithEpsilon(eps) also affects which pivots count.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square), ErrSingular (strict mode only).
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
//
// Notes:
//   - Pivoting is "first nonzero in column"; ill-conditioned inputs lose
//     precision. Check Mul(A, Inverse(A)) against I with AllClose when in doubt.
func Inverse(m Matrix, opts ...Option) (Matrix, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	o := gatherOptions(opts...)
	n := m.Rows()

	id, err := NewIdentity(n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	aug, err := Augment(m, id)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	pivots, err := reduce(aug, o.eps)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if o.singularCheck {
		if err = checkFullPivots(pivots, n); err != nil {
			return nil, matrixErrorf(opInverse, err)
		}
	}

	inv, err := Columns(aug, n, 2*n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return inv, nil
}

// checkFullPivots verifies that each of the first n columns hosts a pivot.
// Pivot columns strictly increase, so it is enough that there are n pivots
// and the last one lies left of column n.
func checkFullPivots(pivots []Pivot, n int) error {
	if len(pivots) < n {
		return fmt.Errorf("rank %d < %d: %w", len(pivots), n, ErrSingular)
	}
	if last := pivots[n-1]; last.Col >= n {
		return fmt.Errorf("no pivot in column %d: %w", firstMissingPivot(pivots, n), ErrSingular)
	}

	return nil
}

// firstMissingPivot returns the first column in [0, n) without a pivot.
func firstMissingPivot(pivots []Pivot, n int) int {
	for i, p := range pivots {
		if i >= n || p.Col != i {
			return i
		}
	}

	return len(pivots)
}
