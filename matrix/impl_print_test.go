// SPDX-License-Identifier: MIT

package matrix_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AntiSocialSkynet/LinearAlgebraBasics/matrix"
)

func TestFprint_Layout(t *testing.T) {
	m := MustFromRows(t, [][]float64{{1, 2.5}, {-3, 0}})

	var buf bytes.Buffer
	require.NoError(t, matrix.Fprint(&buf, m))
	require.Equal(t, "1\t2.5\t\n-3\t0\t\n", buf.String())
}

func TestFprint_ShortestRoundTrip(t *testing.T) {
	m := MustFromRows(t, [][]float64{{0.1, 1e21, -1.0 / 3}})

	var buf bytes.Buffer
	require.NoError(t, matrix.Fprint(&buf, hide{m}))
	require.Equal(t, "0.1\t1e+21\t-0.3333333333333333\t\n", buf.String())
}

// failingWriter rejects every write.
type failingWriter struct{}

var errWrite = errors.New("write refused")

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestFprint_Errors(t *testing.T) {
	require.ErrorIs(t, matrix.Fprint(&bytes.Buffer{}, nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.Fprint(failingWriter{}, MustDense(t, 1, 1)), errWrite)
}
