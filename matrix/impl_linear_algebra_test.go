// Package matrix_test contains unit tests for the arithmetic kernels:
// Add, Scale, Mul, Power, Augment and Columns.
package matrix_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/AntiSocialSkynet/LinearAlgebraBasics/matrix"
	"github.com/stretchr/testify/require"
)

func TestNewDenseDefaultZero(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{
		{3, 3},
		{2, 5},
	} {
		name := fmt.Sprintf("%dx%d", tc.rows, tc.cols)
		t.Run(name, func(t *testing.T) {
			m := MustDense(t, tc.rows, tc.cols)
			var i, j int
			for i = 0; i < tc.rows; i++ {
				for j = 0; j < tc.cols; j++ {
					if v := MustAt(t, m, i, j); v != 0.0 {
						t.Fatalf("element [%d,%d] of a new Dense(%dx%d) must be 0", i, j, tc.rows, tc.cols)
					}
				}
			}
		})
	}
}

// TestHelpers_InterfaceHiding_Fallback ensures that a wrapper hiding the
// concrete type forces the At/Set fallback and yields the same results as
// the *Dense fast path.
func TestHelpers_InterfaceHiding_Fallback(t *testing.T) {
	t.Parallel()

	a := MustDense(t, 3, 4)
	b := MustDense(t, 4, 2)
	RandomFill(t, a, 1)
	RandomFill(t, b, 2)

	fast, err := matrix.Mul(a, b)
	require.NoError(t, err)
	slow, err := matrix.Mul(hide{a}, hide{b})
	require.NoError(t, err)
	CompareExact(t, ToRows(t, fast), slow)

	sumFast, err := matrix.Add(a, a)
	require.NoError(t, err)
	sumSlow, err := matrix.Add(hide{a}, a)
	require.NoError(t, err)
	CompareExact(t, ToRows(t, sumFast), sumSlow)

	augFast, err := matrix.Augment(a, a)
	require.NoError(t, err)
	augSlow, err := matrix.Augment(hide{a}, hide{a})
	require.NoError(t, err)
	CompareExact(t, ToRows(t, augFast), augSlow)
}

func TestAdd(t *testing.T) {
	a := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	b := MustFromRows(t, [][]float64{{10, 20}, {30, 40}})

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{11, 22}, {33, 44}}, sum)
	// inputs untouched
	CompareExact(t, [][]float64{{1, 2}, {3, 4}}, a)

	_, err = matrix.Add(a, MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Add(nil, b)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	alias, err := matrix.Sum(a, b)
	require.NoError(t, err)
	CompareExact(t, ToRows(t, sum), alias)
}

func TestScale_InPlace(t *testing.T) {
	m := MustFromRows(t, [][]float64{{1, -2}, {0.5, 4}})

	got, err := matrix.Scale(m, 2)
	require.NoError(t, err)
	require.Same(t, m, got)
	CompareExact(t, [][]float64{{2, -4}, {1, 8}}, m)
}

func TestScale_ZeroRejected(t *testing.T) {
	m := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})

	_, err := matrix.Scale(m, 0)
	require.ErrorIs(t, err, matrix.ErrZeroCoefficient)
	CompareExact(t, [][]float64{{1, 2}, {3, 4}}, m)

	_, err = matrix.Scale(nil, 2)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMul(t *testing.T) {
	a := MustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := MustFromRows(t, [][]float64{{7, 8}, {9, 10}, {11, 12}})

	p, err := matrix.Mul(a, b)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{58, 64}, {139, 154}}, p)

	_, err = matrix.Mul(a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	// Identity is neutral on both sides.
	left, err := matrix.Product(IdentityDense(t, 2), a)
	require.NoError(t, err)
	CompareExact(t, ToRows(t, a), left)
	right, err := matrix.Mul(a, IdentityDense(t, 3))
	require.NoError(t, err)
	CompareExact(t, ToRows(t, a), right)
}

func TestPower(t *testing.T) {
	m := MustFromRows(t, [][]float64{{1, 1}, {1, 0}})

	p0, err := matrix.Power(m, 0)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 0}, {0, 1}}, p0)

	p1, err := matrix.Power(m, 1)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 1}, {1, 0}}, p1)

	// Fibonacci matrix: M^5 = [[F6, F5], [F5, F4]].
	p5, err := matrix.Pow(m, 5)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{8, 5}, {5, 3}}, p5)

	// m itself is not mutated.
	CompareExact(t, [][]float64{{1, 1}, {1, 0}}, m)
}

func TestPower_Errors(t *testing.T) {
	_, err := matrix.Power(MustDense(t, 2, 3), 2)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Power(MustDense(t, 2, 2), -1)
	require.ErrorIs(t, err, matrix.ErrNegativeExponent)

	_, err = matrix.Power(nil, 1)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestAugment(t *testing.T) {
	left := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	right := MustFromRows(t, [][]float64{{5}, {6}})

	aug, err := matrix.Augment(left, right)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 2, 5}, {3, 4, 6}}, aug)

	// fresh storage
	MustSet(t, aug, 0, 0, -1)
	require.Equal(t, 1.0, MustAt(t, left, 0, 0))

	_, err = matrix.Augment(left, MustDense(t, 3, 1))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestColumns(t *testing.T) {
	m := MustFromRows(t, [][]float64{{1, 2, 3, 4}, {5, 6, 7, 8}})

	mid, err := matrix.Columns(m, 1, 3)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{2, 3}, {6, 7}}, mid)

	viaWrapper, err := matrix.Columns(hide{m}, 2, 4)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{3, 4}, {7, 8}}, viaWrapper)

	for _, r := range [][2]int{{-1, 2}, {2, 2}, {3, 1}, {0, 5}} {
		_, err = matrix.Columns(m, r[0], r[1])
		require.ErrorIs(t, err, matrix.ErrOutOfRange, "range %v", r)
	}
}

func TestZerosLikeAndClone(t *testing.T) {
	m := MustFromRows(t, [][]float64{{1, 2, 3}})

	z, err := matrix.ZerosLike(m)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{0, 0, 0}}, z)

	cp := matrix.CloneMatrix(m)
	MustSet(t, cp, 0, 0, 9)
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
}

// TestAddMul_OverflowRejected: results keep the finite-only policy on both paths.
func TestAddMul_OverflowRejected(t *testing.T) {
	big := MustFromRows(t, [][]float64{{math.MaxFloat64, 1}})

	_, err := matrix.Add(big, big)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	_, err = matrix.Add(hide{big}, big)
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	col := MustFromRows(t, [][]float64{{2}, {0}})
	_, err = matrix.Mul(big, col)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	_, err = matrix.Mul(hide{big}, hide{col})
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	// Power surfaces the same fault from its repeated products.
	sq := MustFromRows(t, [][]float64{{1e200}})
	_, err = matrix.Power(sq, 2)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}
