package grid

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestFromRows_Errors verifies that FromRows rejects empty or ragged input.
func TestFromRows_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows [][]int
		err  error
	}{
		{"EmptyRows", [][]int{}, ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := FromRows(tc.rows)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

// TestNew_InvalidDimensions checks rejection of non-positive sizes.
func TestNew_InvalidDimensions(t *testing.T) {
	for _, wh := range [][2]int{{0, 3}, {3, 0}, {-1, 2}} {
		_, err := New[float64](wh[0], wh[1])
		require.ErrorIs(t, err, ErrInvalidDimensions)
	}
}

// TestAtSet exercises basic element access on a 3×2 grid.
func TestAtSet(t *testing.T) {
	g, err := New[float64](3, 2)
	require.NoError(t, err)

	g.Set(2, 1, 4.5)
	require.Equal(t, 4.5, g.At(2, 1))
	require.Equal(t, 0.0, g.At(0, 0))
	require.True(t, g.InBounds(2, 1))
	require.False(t, g.InBounds(3, 0))
	require.False(t, g.InBounds(0, -1))
}

// TestFromRows_DeepCopy ensures mutating the source does not affect the grid.
func TestFromRows_DeepCopy(t *testing.T) {
	rows := [][]int{{1, 2}, {3, 4}}
	g, err := FromRows(rows)
	require.NoError(t, err)

	rows[0][0] = 99
	require.Equal(t, 1, g.At(0, 0))
}

// TestFillRect clips to bounds and fills the inclusive rectangle.
func TestFillRect(t *testing.T) {
	g, err := New[int](4, 4)
	require.NoError(t, err)

	g.FillRect(1, 1, 2, 5, 7)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			want := 0
			if x >= 1 && x <= 2 && y >= 1 {
				want = 7
			}
			require.Equal(t, want, g.At(x, y), "at (%d,%d)", x, y)
		}
	}
}

// TestCloneEqual verifies Clone independence and Equal semantics.
func TestCloneEqual(t *testing.T) {
	g, err := NewFilled(2, 2, 1.0)
	require.NoError(t, err)

	c := g.Clone()
	require.True(t, Equal(g, c))

	c.Set(0, 0, 2.0)
	require.False(t, Equal(g, c))
}

// TestRowsRoundTrip checks Rows reproduces the original layout.
func TestRowsRoundTrip(t *testing.T) {
	rows := [][]int{{1, 2, 3}, {4, 5, 6}}
	g, err := FromRows(rows)
	require.NoError(t, err)
	require.Equal(t, rows, g.Rows())
}
