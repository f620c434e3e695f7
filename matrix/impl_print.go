// SPDX-License-Identifier: MIT

package matrix

import (
	"io"
	"os"
	"strconv"
	"strings"
)

const (
	_printCellSep = "\t"
	_printRowEnd  = "\n"
)

// Fprint writes m to w as tab-separated values: every entry is followed by a
// tab and every row is terminated by a newline. Entries use the shortest
// representation that round-trips ('g', -1).
//
// Errors:
//   - ErrNilMatrix; element access errors; the first write error of w.
//
// Complexity:
//   - Time O(r*c); one write per row.
func Fprint(w io.Writer, m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opPrint, err)
	}

	var b strings.Builder
	var v float64
	var err error
	for i := 0; i < m.Rows(); i++ {
		b.Reset()
		for j := 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return matrixErrorf(opPrint, err)
			}
			b.WriteString(strconv.FormatFloat(unsignedZero(v), 'g', -1, 64))
			b.WriteString(_printCellSep)
		}
		b.WriteString(_printRowEnd)
		if _, err = io.WriteString(w, b.String()); err != nil {
			return matrixErrorf(opPrint, err)
		}
	}

	return nil
}

// Print writes m to standard output in the Fprint layout.
func Print(m Matrix) error { return Fprint(os.Stdout, m) }

// unsignedZero maps -0 to 0 so scaled zero entries print as "0".
func unsignedZero(v float64) float64 {
	if v == 0 {
		return 0
	}

	return v
}
