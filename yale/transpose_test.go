package yale_test

import (
	"testing"

	"github.com/arnegrau/newyale/yale"
	"github.com/stretchr/testify/require"
)

func TestTransposeSquare(t *testing.T) {
	m, err := yale.Create[int](3, 3)
	require.NoError(t, err)
	_, err = m.Set(0, 0, 1)
	require.NoError(t, err)
	_, err = m.Set(0, 2, 5)
	require.NoError(t, err)
	_, err = m.Set(1, 0, 6)
	require.NoError(t, err)

	tr := yale.Transpose(m)
	require.Equal(t, 3, tr.Rows())
	require.Equal(t, 3, tr.Cols())

	v, err := tr.Get(2, 0)
	require.NoError(t, err)
	require.Equal(t, 5, v)

	v, err = tr.Get(0, 1)
	require.NoError(t, err)
	require.Equal(t, 6, v)

	v, err = tr.Get(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1, v)
}

func TestTransposeRectangular(t *testing.T) {
	m, err := yale.Create[int](2, 4)
	require.NoError(t, err)
	_, err = m.Set(0, 3, 11)
	require.NoError(t, err)
	_, err = m.Set(1, 2, 22)
	require.NoError(t, err)

	tr := yale.Transpose(m)
	require.Equal(t, 4, tr.Rows())
	require.Equal(t, 2, tr.Cols())

	v, err := tr.Get(3, 0)
	require.NoError(t, err)
	require.Equal(t, 11, v)

	v, err = tr.Get(2, 1)
	require.NoError(t, err)
	require.Equal(t, 22, v)
}

func TestTransposeTwiceRecoversOriginal(t *testing.T) {
	m, err := yale.Create[int](3, 5)
	require.NoError(t, err)
	for _, rc := range [][2]int{{0, 4}, {1, 0}, {2, 2}, {0, 1}} {
		_, err := m.Set(rc[0], rc[1], rc[0]*10+rc[1])
		require.NoError(t, err)
	}

	back := yale.Transpose(yale.Transpose(m))
	require.True(t, yale.Equal(m, back))
}

func TestTransposeRowsRemainSorted(t *testing.T) {
	m, err := yale.Create[int](4, 4)
	require.NoError(t, err)
	for _, rc := range [][2]int{{0, 3}, {1, 3}, {2, 3}, {3, 0}} {
		_, err := m.Set(rc[0], rc[1], 1)
		require.NoError(t, err)
	}

	tr := yale.Transpose(m)
	var cols []int
	err = tr.Row(3, func(col int, _ int) bool {
		cols = append(cols, col)
		return true
	})
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2}, cols)
}
