package yale_test

import (
	"testing"

	"github.com/arnegrau/newyale/yale"
	"github.com/stretchr/testify/require"
)

func buildIntMatrix(t *testing.T, rows, cols int, cells map[[2]int]int) *yale.Matrix[int] {
	t.Helper()
	m, err := yale.Create[int](rows, cols)
	require.NoError(t, err)
	for rc, v := range cells {
		_, err := m.Set(rc[0], rc[1], v)
		require.NoError(t, err)
	}
	return m
}

func TestEqualRejectsShapeMismatch(t *testing.T) {
	a := buildIntMatrix(t, 2, 2, nil)
	b := buildIntMatrix(t, 3, 2, nil)
	require.False(t, yale.Equal(a, b))
}

func TestEqualTreatsExplicitZeroAsAbsent(t *testing.T) {
	a := buildIntMatrix(t, 2, 2, map[[2]int]int{{0, 1}: 0})
	b := buildIntMatrix(t, 2, 2, nil)
	require.True(t, yale.Equal(a, b))
}

func TestEqualDetectsDifferingValues(t *testing.T) {
	a := buildIntMatrix(t, 2, 2, map[[2]int]int{{0, 1}: 5})
	b := buildIntMatrix(t, 2, 2, map[[2]int]int{{0, 1}: 6})
	require.False(t, yale.Equal(a, b))
}

func TestEqualNumericAcrossElementTypes(t *testing.T) {
	i, err := yale.Create[int](2, 2)
	require.NoError(t, err)
	_, err = i.Set(0, 1, 3)
	require.NoError(t, err)

	f, err := yale.Create[float64](2, 2)
	require.NoError(t, err)
	_, err = f.Set(0, 1, 3.0)
	require.NoError(t, err)

	require.True(t, yale.EqualNumeric(i, f))

	_, err = f.Set(0, 1, 3.5)
	require.NoError(t, err)
	require.False(t, yale.EqualNumeric(i, f))
}
