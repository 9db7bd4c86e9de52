package cursor

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/dshills/quill/internal/engine/document"
)

var coord = document.Coord

func TestNewCursors(t *testing.T) {
	cs := NewCursors()

	require.Equal(t, 1, cs.Len())
	require.True(t, cs.Main().Main)
	require.True(t, cs.Current().Current)
	require.Equal(t, coord(0, 0), cs.Current().End)
}

func TestCursorSelection(t *testing.T) {
	c := NewSelection(coord(2, 4), coord(1, 0))

	require.True(t, c.HasSelection())
	require.True(t, c.IsBackward())
	require.True(t, c.IsMultiline())
	require.Equal(t, coord(1, 0), c.SelectionStart())
	require.Equal(t, coord(2, 4), c.SelectionEnd())
	require.True(t, c.Contains(coord(1, 5)))
	require.False(t, c.Contains(coord(2, 4)))

	c.CollapseToStart()
	require.False(t, c.HasSelection())
	require.Equal(t, coord(1, 0), c.End)
}

func TestCursorUpdate(t *testing.T) {
	c := New(coord(0, 1))

	c.Update(coord(0, 5), true)
	require.Equal(t, coord(0, 1), c.Start)
	require.Equal(t, coord(0, 5), c.End)

	c.Update(coord(0, 2), false)
	require.False(t, c.HasSelection())
}

func TestSetCursor(t *testing.T) {
	cs := NewCursors()
	cs.AddCursor(coord(1, 0), coord(1, 0))
	cs.AddCursor(coord(2, 0), coord(2, 0))

	cs.SetCursor(coord(0, 1), coord(0, 3))

	require.Equal(t, 1, cs.Len())
	require.True(t, cs.At(0).Main)
	require.True(t, cs.At(0).Current)
	require.Equal(t, coord(0, 3), cs.At(0).End)
}

func TestAddCursor(t *testing.T) {
	cs := NewCursors()
	cs.AddCursor(coord(1, 0), coord(1, 2))

	require.Equal(t, 2, cs.Len())
	require.Equal(t, 1, cs.CurrentIndex())
	require.False(t, cs.At(0).Current)
	require.True(t, cs.At(0).Main)
	require.False(t, cs.At(1).Main)
	require.Equal(t, 0, cs.MainIndex())
}

func TestUpdateSortsAndMerges(t *testing.T) {
	cs := NewCursors()
	cs.SetCursor(coord(3, 0), coord(3, 0))
	cs.AddCursor(coord(0, 0), coord(0, 5))
	cs.AddCursor(coord(0, 3), coord(1, 0))
	cs.AddCursor(coord(2, 0), coord(2, 0))

	cs.Update()

	require.Equal(t, 3, cs.Len())
	require.Equal(t, coord(0, 0), cs.At(0).SelectionStart())
	require.Equal(t, coord(1, 0), cs.At(0).SelectionEnd())
	require.Equal(t, coord(2, 0), cs.At(1).End)
	require.True(t, cs.At(2).Main)
	require.True(t, cs.At(1).Current)
	require.Equal(t, 1, cs.CurrentIndex())
}

func TestUpdateMergesTouching(t *testing.T) {
	cs := NewCursors()
	cs.SetCursor(coord(0, 0), coord(0, 3))
	cs.AddCursor(coord(0, 3), coord(0, 6))

	cs.Update()

	require.Equal(t, 1, cs.Len())
	require.Equal(t, coord(0, 0), cs.At(0).Start)
	require.Equal(t, coord(0, 6), cs.At(0).End)
}

func TestUpdatePreservesBackwardDirection(t *testing.T) {
	cs := NewCursors()
	cs.SetCursor(coord(0, 0), coord(0, 4))
	cs.AddCursor(coord(0, 8), coord(0, 2))

	cs.Update()

	require.Equal(t, 1, cs.Len())
	c := cs.At(0)
	require.True(t, c.IsBackward())
	require.Equal(t, coord(0, 8), c.Start)
	require.Equal(t, coord(0, 0), c.End)
	require.True(t, c.Main)
	require.True(t, c.Current)
}

func TestUpdateCoincidentCarets(t *testing.T) {
	cs := NewCursors()
	cs.SetCursor(coord(0, 0), coord(0, 0))
	cs.AddCursor(coord(0, 0), coord(0, 0))

	cs.Update()

	require.Equal(t, 1, cs.Len())
	require.True(t, cs.At(0).Main)
	require.True(t, cs.At(0).Current)
}

func TestUpdateIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cs := NewCursors()
		n := rapid.IntRange(1, 8).Draw(t, "n")
		for i := 0; i < n; i++ {
			start := coord(rapid.IntRange(0, 3).Draw(t, "sl"), rapid.IntRange(0, 6).Draw(t, "sc"))
			end := coord(rapid.IntRange(0, 3).Draw(t, "el"), rapid.IntRange(0, 6).Draw(t, "ec"))
			if i == 0 {
				cs.SetCursor(start, end)
			} else {
				cs.AddCursor(start, end)
			}
		}

		cs.Update()
		once := cs.Clone()
		cs.Update()

		if !cs.Equal(once) {
			t.Fatalf("second update changed cursors: %v -> %v", once.All(), cs.All())
		}

		mains, currents := 0, 0
		for i := 0; i < cs.Len(); i++ {
			if cs.At(i).Main {
				mains++
			}
			if cs.At(i).Current {
				currents++
			}
			if i > 0 && !cs.At(i-1).SelectionEnd().Less(cs.At(i).SelectionStart()) {
				t.Fatalf("cursors %d and %d overlap", i-1, i)
			}
		}
		if mains != 1 || currents != 1 {
			t.Fatalf("want one main and one current, got %d and %d", mains, currents)
		}
		if !cs.Current().Current {
			t.Fatalf("current index does not point at the current cursor")
		}
	})
}

func TestClearAdditional(t *testing.T) {
	cs := NewCursors()
	cs.SetCursor(coord(0, 5), coord(0, 2))
	cs.AddCursor(coord(1, 0), coord(1, 0))

	clone := cs.Clone()
	clone.ClearAdditional(false)
	require.Equal(t, 1, clone.Len())
	require.Equal(t, coord(0, 5), clone.At(0).Start)
	require.True(t, clone.At(0).Current)

	cs.ClearAdditional(true)
	require.Equal(t, 1, cs.Len())
	require.False(t, cs.At(0).HasSelection())
	require.Equal(t, coord(0, 2), cs.At(0).End)
}

func TestCloneIsDeep(t *testing.T) {
	cs := NewCursors()
	clone := cs.Clone()

	cs.At(0).Update(coord(4, 4), false)

	require.Equal(t, coord(0, 0), clone.At(0).End)
	require.False(t, cs.Equal(clone))

	cs.Restore(clone)
	require.True(t, cs.Equal(clone))
}

func TestPredicates(t *testing.T) {
	cs := NewCursors()
	require.False(t, cs.AnyHasSelection())
	require.False(t, cs.HasMultiple())

	cs.AddCursor(coord(1, 0), coord(2, 0))
	require.True(t, cs.AnyHasSelection())
	require.False(t, cs.AllHaveSelection())
	require.True(t, cs.AnyMultiline())
	require.True(t, cs.HasMultiple())

	require.True(t, cs.AnyUpdated())
	cs.ClearUpdated()
	require.False(t, cs.AnyUpdated())
}
