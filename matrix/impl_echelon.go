// SPDX-License-Identifier: MIT
// Package matrix - Gaussian elimination: echelon and reduced echelon forms.
//
// Purpose:
//   - EchelonForm: forward elimination with "first non-negligible entry in
//     the column" pivot selection.
//   - ReducedEchelonForm: forward elimination, then per-row normalization
//     and clearing above each pivot.
//   - Pivots/Rank: the same forward pass on a clone, reporting pivots.
//
// Numeric policy:
//   - isNegligible is the single zero test of the engine. eps == 0 (default)
//     is exact comparison; WithEpsilon(eps) makes it |v| <= eps.
//   - Cells the algorithm is meant to zero (below/above a pivot) or to make 1
//     (the pivot after normalization) are stored exactly, so rounding residue
//     never breaks the echelon invariants.
//
// Determinism:
//   - Fixed scan orders: columns left→right, rows top→bottom.

package matrix

import (
	"fmt"
	"math"
)

const (
	pivotOne  = 1.0
	clearZero = 0.0
)

// isNegligible reports whether v counts as zero for elimination purposes.
func isNegligible(v, eps float64) bool {
	if eps == 0 {
		return v == 0
	}

	return math.Abs(v) <= eps
}

// EchelonForm reduces m to row-echelon form in place and returns m.
//
// Implementation:
//   - Stage 1: pivotsFound = 0; scan columns left to right while pivotsFound < Rows.
//   - Stage 2: in column j, find the first row i >= pivotsFound with a
//     non-negligible entry; skip the column if there is none.
//   - Stage 3: RowInterchange(i, pivotsFound), then for every row c below,
//     RowCombination(c, pivotsFound, -m[c,j]/m[pivotsFound,j]).
//   - Stage 4: pivotsFound++ and continue with the next column.
//
// Behavior highlights:
//   - At most one pivot per column; at most min(Rows, Cols) pivots.
//   - Entries below every pivot are exactly zero on return.
//
// Errors:
//   - ErrNilMatrix; element access errors from non-Dense implementations.
//
// Complexity:
//   - Time O(r·c·min(r,c)), Space O(1) beyond the pivot list.
func EchelonForm(m Matrix, opts ...Option) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opEchelon, err)
	}
	o := gatherOptions(opts...)
	if _, err := forwardEliminate(m, o.eps); err != nil {
		return nil, matrixErrorf(opEchelon, err)
	}

	return m, nil
}

// ReducedEchelonForm reduces m to reduced row-echelon form in place and
// returns m: every pivot is 1 and every other entry of a pivot column is 0.
//
// Implementation:
//   - Stage 1: EchelonForm (forward elimination).
//   - Stage 2: for each row i top-down, locate its pivot (i, j) scanning
//     columns from i; zero rows are skipped.
//   - Stage 3: RowScaling(i, 1/m[i,j]).
//   - Stage 4: for rows k in [0, min(j, Rows)), k != i:
//     RowCombination(k, i, -m[k,j]).
//
// Behavior highlights:
//   - Idempotent: reducing an already reduced matrix changes nothing.
//
// Errors:
//   - ErrNilMatrix; ErrNaNInf if 1/pivot overflows (pivot below ~1e-308).
//
// Complexity:
//   - Time O(r·c·min(r,c)), Space O(1) beyond the pivot list.
func ReducedEchelonForm(m Matrix, opts ...Option) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opReduced, err)
	}
	o := gatherOptions(opts...)
	if _, err := reduce(m, o.eps); err != nil {
		return nil, matrixErrorf(opReduced, err)
	}

	return m, nil
}

// Pivots runs forward elimination on a clone of m and returns the pivot
// positions in discovery order. m is not modified.
func Pivots(m Matrix, opts ...Option) ([]Pivot, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opPivots, err)
	}
	o := gatherOptions(opts...)
	pivots, err := forwardEliminate(m.Clone(), o.eps)
	if err != nil {
		return nil, matrixErrorf(opPivots, err)
	}

	return pivots, nil
}

// Rank returns the number of pivots of m (under the same numeric policy as
// EchelonForm). m is not modified.
func Rank(m Matrix, opts ...Option) (int, error) {
	pivots, err := Pivots(m, opts...)
	if err != nil {
		return 0, err
	}

	return len(pivots), nil
}

// reduce is the reduced-echelon pass shared by ReducedEchelonForm and Inverse.
func reduce(m Matrix, eps float64) ([]Pivot, error) {
	pivots, err := forwardEliminate(m, eps)
	if err != nil {
		return nil, err
	}
	if err = backEliminate(m, eps); err != nil {
		return nil, err
	}

	return pivots, nil
}

// forwardEliminate performs the EchelonForm pass and reports pivots.
func forwardEliminate(m Matrix, eps float64) ([]Pivot, error) {
	rows, cols := m.Rows(), m.Cols()
	pivots := make([]Pivot, 0, min(rows, cols))

	var (
		pivotsFound int // pivots placed so far == next pivot row
		i, j, c     int
		v, pv       float64
		err         error
	)
	for j = 0; j < cols && pivotsFound < rows; j++ {
		// Find the first non-negligible entry at or below the pivot row.
		i = -1
		for c = pivotsFound; c < rows; c++ {
			if v, err = m.At(c, j); err != nil {
				return nil, err
			}
			if !isNegligible(v, eps) {
				i = c
				break
			}
			if err = snapZero(m, c, j, v); err != nil {
				return nil, err
			}
		}
		if i < 0 {
			continue // no pivot in this column
		}

		if _, err = RowInterchange(m, i, pivotsFound); err != nil {
			return nil, err
		}
		if pv, err = m.At(pivotsFound, j); err != nil {
			return nil, err
		}

		// Eliminate below the pivot using the just-placed pivot row.
		for c = pivotsFound + 1; c < rows; c++ {
			if v, err = m.At(c, j); err != nil {
				return nil, err
			}
			if isNegligible(v, eps) {
				if err = snapZero(m, c, j, v); err != nil {
					return nil, err
				}
				continue
			}
			if _, err = RowCombination(m, c, pivotsFound, -v/pv); err != nil {
				return nil, err
			}
			if err = m.Set(c, j, clearZero); err != nil {
				return nil, err
			}
		}

		pivots = append(pivots, Pivot{Row: pivotsFound, Col: j})
		pivotsFound++
	}

	return pivots, nil
}

// backEliminate normalizes each pivot row and clears the entries above its
// pivot. m must already be in echelon form.
func backEliminate(m Matrix, eps float64) error {
	rows, cols := m.Rows(), m.Cols()

	var (
		i, j, k int
		v, pv   float64
		err     error
	)
	for i = 0; i < rows; i++ {
		// Locate the pivot of row i; in echelon form it is never left of column i.
		j = -1
		for k = i; k < cols; k++ {
			if v, err = m.At(i, k); err != nil {
				return err
			}
			if !isNegligible(v, eps) {
				j, pv = k, v
				break
			}
		}
		if j < 0 {
			continue // zero row
		}

		if _, err = RowScaling(m, i, 1/pv); err != nil {
			return fmt.Errorf("normalize row %d: %w", i, err)
		}
		if err = m.Set(i, j, pivotOne); err != nil {
			return err
		}

		for k = 0; k < min(j, rows); k++ {
			if k == i {
				continue
			}
			if v, err = m.At(k, j); err != nil {
				return err
			}
			if isNegligible(v, eps) {
				if err = snapZero(m, k, j, v); err != nil {
					return err
				}
				continue
			}
			if _, err = RowCombination(m, k, i, -v); err != nil {
				return err
			}
			if err = m.Set(k, j, clearZero); err != nil {
				return err
			}
		}
	}

	return nil
}

// snapZero stores an exact zero over a negligible but nonzero entry
// (only reachable with eps > 0).
func snapZero(m Matrix, i, j int, v float64) error {
	if v == 0 {
		return nil
	}

	return m.Set(i, j, clearZero)
}
