package cursor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAdjustForInsertSameLine(t *testing.T) {
	cs := NewCursors()
	cs.SetCursor(coord(0, 1), coord(0, 1))
	cs.AddCursor(coord(0, 4), coord(0, 6))
	cs.AddCursor(coord(1, 2), coord(1, 2))

	cs.AdjustForInsert(0, coord(0, 1), coord(0, 3))

	require.Equal(t, coord(0, 1), cs.At(0).End, "cursor at index 0 is not shifted")
	require.Equal(t, coord(0, 6), cs.At(1).Start)
	require.Equal(t, coord(0, 8), cs.At(1).End)
	require.Equal(t, coord(1, 2), cs.At(2).End)
}

func TestAdjustForInsertMultiline(t *testing.T) {
	cs := NewCursors()
	cs.SetCursor(coord(0, 2), coord(0, 2))
	cs.AddCursor(coord(0, 5), coord(0, 5))
	cs.AddCursor(coord(2, 1), coord(2, 1))

	// "xy\nz" inserted at (0,2) ends at (1,1).
	cs.AdjustForInsert(0, coord(0, 2), coord(1, 1))

	require.Equal(t, coord(1, 4), cs.At(1).End)
	require.Equal(t, coord(3, 1), cs.At(2).End)
}

func TestAdjustForDelete(t *testing.T) {
	cs := NewCursors()
	cs.SetCursor(coord(0, 1), coord(0, 1))
	cs.AddCursor(coord(1, 4), coord(1, 4))
	cs.AddCursor(coord(3, 2), coord(3, 2))

	// Deleting (0,1)..(1,2) joins line 1 onto line 0.
	cs.AdjustForDelete(0, coord(0, 1), coord(1, 2))

	require.Equal(t, coord(0, 3), cs.At(1).End)
	require.Equal(t, coord(2, 2), cs.At(2).End)
}

func TestAdjustInverse(t *testing.T) {
	cs := NewCursors()
	cs.SetCursor(coord(0, 0), coord(0, 0))
	cs.AddCursor(coord(0, 7), coord(2, 3))
	before := cs.Clone()

	cs.AdjustForInsert(0, coord(0, 2), coord(3, 4))
	cs.AdjustForDelete(0, coord(0, 2), coord(3, 4))

	require.True(t, cs.Equal(before))
}

func TestShiftLine(t *testing.T) {
	cs := NewCursors()
	cs.SetCursor(coord(1, 0), coord(1, 6))
	cs.AddCursor(coord(2, 3), coord(2, 3))

	cs.ShiftLine(1, 0, 4)
	require.Equal(t, coord(1, 4), cs.At(0).Start)
	require.Equal(t, coord(1, 10), cs.At(0).End)
	require.Equal(t, coord(2, 3), cs.At(1).End)

	cs.ShiftLine(1, 2, -20)
	require.Equal(t, coord(1, 2), cs.At(0).Start)
	require.Equal(t, coord(1, 2), cs.At(0).End)
}

func TestAdjustForReplace(t *testing.T) {
	cs := NewCursors()
	cs.SetCursor(coord(0, 1), coord(0, 1))
	cs.AddCursor(coord(0, 3), coord(0, 3))
	cs.AddCursor(coord(0, 5), coord(0, 7))
	cs.AddCursor(coord(1, 2), coord(1, 2))

	// (0,2)..(0,6) replaced by "x\ny".
	cs.AdjustForReplace(coord(0, 2), coord(0, 6), coord(1, 1))

	require.Equal(t, coord(0, 1), cs.At(0).End)
	require.Equal(t, coord(1, 1), cs.At(1).End)
	require.Equal(t, coord(1, 1), cs.At(2).Start)
	require.Equal(t, coord(1, 2), cs.At(2).End)
	require.Equal(t, coord(2, 2), cs.At(3).End)
}
