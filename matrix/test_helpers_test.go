// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels and the elimination engine.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/AntiSocialSkynet/LinearAlgebraBasics/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions.
// Use hide{X} to force the At/Set fallback paths of the kernels.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustFromRows builds a *Dense from literal rows or fails the test.
func MustFromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	if err != nil {
		t.Fatalf("NewFromRows(%v): %v", rows, err)
	}

	return m
}

// IdentityDense returns an n×n identity or fails the test.
func IdentityDense(t *testing.T, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewIdentity(n)
	if err != nil {
		t.Fatalf("NewIdentity(%d): %v", n, err)
	}

	return m
}

// RandomFill sets every entry of m to a value in [-1, 1) from a seeded source.
func RandomFill(t *testing.T, m matrix.Matrix, seed int64) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	var i, j int
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			MustSet(t, m, i, j, rng.Float64()*2-1)
		}
	}
}

// MustSet writes m[i,j] = v or fails the test.
func MustSet(t *testing.T, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d,%v): %v", i, j, v, err)
	}
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// ToRows snapshots m as [][]float64.
func ToRows(t *testing.T, m matrix.Matrix) [][]float64 {
	t.Helper()
	out := make([][]float64, m.Rows())
	for i := range out {
		out[i] = make([]float64, m.Cols())
		for j := range out[i] {
			out[i][j] = MustAt(t, m, i, j)
		}
	}

	return out
}

// CompareExact fails unless m has exactly the entries of want.
func CompareExact(t *testing.T, want [][]float64, m matrix.Matrix) {
	t.Helper()
	r, c := m.Rows(), m.Cols()
	if len(want) != r {
		t.Fatalf("CompareExact: Rows = %d; want %d", r, len(want))
	}
	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		if len(want[i]) != c {
			t.Fatalf("CompareExact: Cols[%d] = %d; want %d", i, c, len(want[i]))
		}
		for j = 0; j < c; j++ {
			if v = MustAt(t, m, i, j); v != want[i][j] {
				t.Fatalf("m[%d,%d]=%v; want %v", i, j, v, want[i][j])
			}
		}
	}
}

// CompareClose fails unless a and b agree element-wise within atol.
func CompareClose(t *testing.T, a, b matrix.Matrix, atol float64) {
	t.Helper()
	ok, err := matrix.AllClose(a, b, atol, 0)
	if err != nil {
		t.Fatalf("AllClose: %v", err)
	}
	if !ok {
		t.Fatalf("matrices differ beyond %g:\n%v\nvs\n%v", atol, a, b)
	}
}

// leadingCol returns the column of the first nonzero entry of row i, or -1.
func leadingCol(t *testing.T, m matrix.Matrix, i int) int {
	t.Helper()
	for j := 0; j < m.Cols(); j++ {
		if MustAt(t, m, i, j) != 0 {
			return j
		}
	}

	return -1
}

// AssertEchelon checks the row-echelon invariants on m and returns the
// number of nonzero rows: leading columns strictly increase, zero rows come
// last, and every entry below a leading entry is exactly zero.
func AssertEchelon(t *testing.T, m matrix.Matrix) int {
	t.Helper()
	nonZero := 0
	prev := -1
	seenZero := false
	for i := 0; i < m.Rows(); i++ {
		lc := leadingCol(t, m, i)
		if lc < 0 {
			seenZero = true
			continue
		}
		if seenZero {
			t.Fatalf("nonzero row %d below a zero row", i)
		}
		if lc <= prev {
			t.Fatalf("leading column of row %d is %d, not right of %d", i, lc, prev)
		}
		for k := i + 1; k < m.Rows(); k++ {
			if v := MustAt(t, m, k, lc); v != 0 {
				t.Fatalf("entry (%d,%d)=%v below pivot (%d,%d)", k, lc, v, i, lc)
			}
		}
		prev = lc
		nonZero++
	}

	return nonZero
}

// AssertReduced checks AssertEchelon plus: every leading entry is exactly 1
// and is the only nonzero entry of its column.
func AssertReduced(t *testing.T, m matrix.Matrix) int {
	t.Helper()
	rank := AssertEchelon(t, m)
	for i := 0; i < rank; i++ {
		lc := leadingCol(t, m, i)
		if v := MustAt(t, m, i, lc); v != 1 {
			t.Fatalf("pivot (%d,%d)=%v; want 1", i, lc, v)
		}
		for k := 0; k < m.Rows(); k++ {
			if k == i {
				continue
			}
			if v := MustAt(t, m, k, lc); v != 0 {
				t.Fatalf("entry (%d,%d)=%v in pivot column; want 0", k, lc, v)
			}
		}
	}

	return rank
}

// isInteger reports whether v has no fractional part.
func isInteger(v float64) bool { return v == math.Trunc(v) }

// mustDense allocates for benchmarks.
func mustDense(b *testing.B, r, c int) *matrix.Dense {
	b.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		b.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// fillDenseRand fills d with values in [-1, 1) for benchmarks, boosting the
// diagonal so the matrix stays comfortably invertible.
func fillDenseRand(b *testing.B, d *matrix.Dense, seed int64) {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	var i, j int
	for i = 0; i < d.Rows(); i++ {
		for j = 0; j < d.Cols(); j++ {
			v := rng.Float64()*2 - 1
			if i == j {
				v += float64(d.Cols())
			}
			if err := d.Set(i, j, v); err != nil {
				b.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}
}
