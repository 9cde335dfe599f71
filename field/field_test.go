package field

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestNew_Validation rejects non-positive time limits.
func TestNew_Validation(t *testing.T) {
	_, err := New(0)
	require.ErrorIs(t, err, ErrBadTimeLimit)
}

// TestFromRows_Shape rejects rows that are not (2T+1)×(2T+1).
func TestFromRows_Shape(t *testing.T) {
	rows := make([][]int, 21)
	for i := range rows {
		rows[i] = make([]int, 21)
	}

	_, err := FromRows(10, rows)
	require.NoError(t, err)

	_, err = FromRows(10, rows[:20])
	require.ErrorIs(t, err, ErrWrongShape)

	bad := make([][]int, 21)
	for i := range bad {
		bad[i] = make([]int, 20)
	}
	_, err = FromRows(10, bad)
	require.ErrorIs(t, err, ErrWrongShape)
}

// TestLabels exercises centred-coordinate get/set and bounds.
func TestLabels(t *testing.T) {
	m, err := New(5)
	require.NoError(t, err)

	lo, hi := m.Limits()
	require.Equal(t, -5, lo)
	require.Equal(t, 5, hi)

	require.NoError(t, m.SetLabel(-5, 5, 3))
	require.Equal(t, 3, m.LabelAt(-5, 5))
	require.Equal(t, 0, m.LabelAt(0, 0))

	require.ErrorIs(t, m.SetLabel(6, 0, 1), ErrOutOfRange)
	require.ErrorIs(t, m.SetLabel(0, -6, 1), ErrOutOfRange)
}

// TestFillRect fills inclusive rectangles and checks bounds.
func TestFillRect(t *testing.T) {
	m, err := New(5)
	require.NoError(t, err)

	require.NoError(t, m.FillRect(1, -2, 3, 2, 7))
	for y := -2; y <= 2; y++ {
		for x := 1; x <= 3; x++ {
			require.Equal(t, 7, m.LabelAt(x, y))
		}
	}
	require.Equal(t, 0, m.LabelAt(0, 0))
	require.Equal(t, 0, m.LabelAt(4, 0))

	require.ErrorIs(t, m.FillRect(4, 0, 6, 0, 1), ErrOutOfRange)
}

// TestRemap maps user labels onto a contiguous range.
func TestRemap(t *testing.T) {
	m, err := New(2)
	require.NoError(t, err)
	require.NoError(t, m.SetLabel(1, 1, 40))
	require.NoError(t, m.SetLabel(-1, 0, 7))

	m.Remap(map[int]int{40: 1, 7: 2, 0: 0})

	require.Equal(t, 1, m.LabelAt(1, 1))
	require.Equal(t, 2, m.LabelAt(-1, 0))
	require.Equal(t, 0, m.LabelAt(0, 0))
}

// TestCloneEqual verifies deep copies.
func TestCloneEqual(t *testing.T) {
	m, err := New(3)
	require.NoError(t, err)
	require.NoError(t, m.SetLabel(0, 0, 9))

	c := m.Clone()
	require.True(t, m.Equal(c))

	require.NoError(t, c.SetLabel(1, 1, 4))
	require.False(t, m.Equal(c))
}
