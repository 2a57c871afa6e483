package yale_test

import (
	"bytes"
	"log"
	"math/rand"
	"testing"

	"github.com/arnegrau/newyale/yale"
	"github.com/stretchr/testify/require"
)

func TestMultiplyRejectsDimensionMismatch(t *testing.T) {
	l, err := yale.Create[int](2, 3)
	require.NoError(t, err)
	r, err := yale.Create[int](4, 2)
	require.NoError(t, err)

	_, err = yale.Multiply(l, r, false)
	require.ErrorIs(t, err, yale.ErrDimensionMismatch)
}

// L = [[1,2],[0,3]], R = [[4,0],[5,6]], L*R = [[14,12],[15,18]].
func TestMultiplyKnownSmallCase(t *testing.T) {
	l, err := yale.Create[int](2, 2)
	require.NoError(t, err)
	_, err = l.Set(0, 0, 1)
	require.NoError(t, err)
	_, err = l.Set(0, 1, 2)
	require.NoError(t, err)
	_, err = l.Set(1, 1, 3)
	require.NoError(t, err)

	r, err := yale.Create[int](2, 2)
	require.NoError(t, err)
	_, err = r.Set(0, 0, 4)
	require.NoError(t, err)
	_, err = r.Set(1, 0, 5)
	require.NoError(t, err)
	_, err = r.Set(1, 1, 6)
	require.NoError(t, err)

	out, err := yale.Multiply(l, r, false)
	require.NoError(t, err)
	require.Equal(t, 2, out.Rows())
	require.Equal(t, 2, out.Cols())

	want := [2][2]int{{14, 12}, {15, 18}}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			v, err := out.Get(i, j)
			require.NoError(t, err)
			require.Equal(t, want[i][j], v, "cell (%d,%d)", i, j)
		}
	}
}

func TestMultiplyRectangularShape(t *testing.T) {
	// L is 2x3, R is 3x2; L*R is 2x2.
	l, err := yale.Create[int](2, 3)
	require.NoError(t, err)
	_, err = l.Set(0, 2, 2) // row 0: only column 2 set
	require.NoError(t, err)
	_, err = l.Set(1, 0, 5)
	require.NoError(t, err)

	r, err := yale.Create[int](3, 2)
	require.NoError(t, err)
	_, err = r.Set(2, 1, 7)
	require.NoError(t, err)
	_, err = r.Set(0, 1, 3)
	require.NoError(t, err)

	out, err := yale.Multiply(l, r, false)
	require.NoError(t, err)
	require.Equal(t, 2, out.Rows())
	require.Equal(t, 2, out.Cols())

	// row 0: L[0,2]=2 times R[2,:] = [0,7] -> [0,14]
	v, err := out.Get(0, 0)
	require.NoError(t, err)
	require.Equal(t, 0, v)
	v, err = out.Get(0, 1)
	require.NoError(t, err)
	require.Equal(t, 14, v)

	// row 1: L[1,0]=5 times R[0,:] = [0,3] -> [0,15]
	v, err = out.Get(1, 0)
	require.NoError(t, err)
	require.Equal(t, 0, v)
	v, err = out.Get(1, 1)
	require.NoError(t, err)
	require.Equal(t, 15, v)
}

// TestMultiplyTallLeftOperand pins the case where L has more rows than
// columns, so the output row index walks past r.rows: L[i,i] for such i
// falls outside the shared dimension and must not be treated as a term.
func TestMultiplyTallLeftOperand(t *testing.T) {
	// L is 4x2, R is 2x2; L*R is 4x2.
	l, err := yale.Create[int](4, 2)
	require.NoError(t, err)
	_, err = l.Set(0, 0, 1)
	require.NoError(t, err)
	_, err = l.Set(1, 1, 2)
	require.NoError(t, err)
	_, err = l.Set(2, 0, 3)
	require.NoError(t, err)
	_, err = l.Set(3, 1, 4)
	require.NoError(t, err)

	r, err := yale.Create[int](2, 2)
	require.NoError(t, err)
	_, err = r.Set(0, 0, 5)
	require.NoError(t, err)
	_, err = r.Set(0, 1, 6)
	require.NoError(t, err)
	_, err = r.Set(1, 0, 7)
	require.NoError(t, err)
	_, err = r.Set(1, 1, 8)
	require.NoError(t, err)

	out, err := yale.Multiply(l, r, false)
	require.NoError(t, err)
	require.Equal(t, 4, out.Rows())
	require.Equal(t, 2, out.Cols())

	want := [4][2]int{{5, 6}, {14, 16}, {15, 18}, {28, 32}}
	for i := 0; i < 4; i++ {
		for j := 0; j < 2; j++ {
			v, err := out.Get(i, j)
			require.NoError(t, err)
			require.Equal(t, want[i][j], v, "cell (%d,%d)", i, j)
		}
	}
}

func TestMultiplyWritesOneTraceLineToTheLeftOperandsLogger(t *testing.T) {
	var buf bytes.Buffer
	l, err := yale.Create[int](2, 2, yale.WithTraceLogger(log.New(&buf, "", 0)))
	require.NoError(t, err)
	_, err = l.Set(0, 1, 2)
	require.NoError(t, err)

	r, err := yale.Create[int](2, 2)
	require.NoError(t, err)
	_, err = r.Set(1, 0, 5)
	require.NoError(t, err)

	_, err = yale.Multiply(l, r, false)
	require.NoError(t, err)
	require.Contains(t, buf.String(), "rows processed")
}

// dense multiplies two plain [][]int matrices, the reference this test
// checks Multiply's sparse result against.
func dense(a, b [][]int) [][]int {
	rows, mid, cols := len(a), len(b), len(b[0])
	out := make([][]int, rows)
	for i := range out {
		out[i] = make([]int, cols)
		for k := 0; k < mid; k++ {
			if a[i][k] == 0 {
				continue
			}
			for j := 0; j < cols; j++ {
				out[i][j] += a[i][k] * b[k][j]
			}
		}
	}
	return out
}

func TestMultiplyMatchesDenseReferenceOnRandomSparseInputs(t *testing.T) {
	rng := rand.New(rand.NewSource(20260806))

	for trial := 0; trial < 20; trial++ {
		rows, mid, cols := 1+rng.Intn(5), 1+rng.Intn(5), 1+rng.Intn(5)

		aDense := make([][]int, rows)
		l, err := yale.Create[int](rows, mid)
		require.NoError(t, err)
		for i := 0; i < rows; i++ {
			aDense[i] = make([]int, mid)
			for k := 0; k < mid; k++ {
				if rng.Intn(3) != 0 {
					continue
				}
				v := rng.Intn(9) - 4
				aDense[i][k] = v
				_, err := l.Set(i, k, v)
				require.NoError(t, err)
			}
		}

		bDense := make([][]int, mid)
		r, err := yale.Create[int](mid, cols)
		require.NoError(t, err)
		for k := 0; k < mid; k++ {
			bDense[k] = make([]int, cols)
			for j := 0; j < cols; j++ {
				if rng.Intn(3) != 0 {
					continue
				}
				v := rng.Intn(9) - 4
				bDense[k][j] = v
				_, err := r.Set(k, j, v)
				require.NoError(t, err)
			}
		}

		want := dense(aDense, bDense)
		out, err := yale.Multiply(l, r, false)
		require.NoError(t, err)
		require.Equal(t, rows, out.Rows())
		require.Equal(t, cols, out.Cols())

		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				v, err := out.Get(i, j)
				require.NoError(t, err)
				require.Equal(t, want[i][j], v, "trial %d, cell (%d,%d)", trial, i, j)
			}
		}
	}
}
