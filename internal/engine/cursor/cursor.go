package cursor

import (
	"fmt"

	"github.com/dshills/quill/internal/engine/document"
)

// Coordinate is an alias for document.Coordinate for convenience.
type Coordinate = document.Coordinate

// Cursor is a caret or selection.
type Cursor struct {
	// Start is the anchor of the selection.
	Start Coordinate
	// End is the interactive end of the selection.
	End Coordinate

	Main    bool
	Current bool

	// Updated is set whenever the cursor moves and cleared by the
	// rendering layer once it has scrolled the cursor into view.
	Updated bool
}

// New creates a caret at pos.
func New(pos Coordinate) Cursor {
	return Cursor{Start: pos, End: pos, Updated: true}
}

// NewSelection creates a selection from start (anchor) to end.
func NewSelection(start, end Coordinate) Cursor {
	return Cursor{Start: start, End: end, Updated: true}
}

// SelectionStart returns the lower bound of the selection.
func (c Cursor) SelectionStart() Coordinate {
	return document.Min(c.Start, c.End)
}

// SelectionEnd returns the upper bound of the selection.
func (c Cursor) SelectionEnd() Coordinate {
	return document.Max(c.Start, c.End)
}

// HasSelection returns true if the cursor spans any text.
func (c Cursor) HasSelection() bool {
	return c.Start != c.End
}

// IsMultiline returns true if the selection spans more than one line.
func (c Cursor) IsMultiline() bool {
	return c.Start.Line != c.End.Line
}

// IsBackward returns true if the anchor follows the interactive end.
func (c Cursor) IsBackward() bool {
	return c.End.Less(c.Start)
}

// Contains reports whether pos lies inside the selection [start, end).
func (c Cursor) Contains(pos Coordinate) bool {
	return !pos.Less(c.SelectionStart()) && pos.Less(c.SelectionEnd())
}

// Update moves the interactive end to pos. Without keep the anchor moves
// along and the selection collapses.
func (c *Cursor) Update(pos Coordinate, keep bool) {
	if !keep {
		c.Start = pos
	}
	c.End = pos
	c.Updated = true
}

// SetSelection replaces both ends.
func (c *Cursor) SetSelection(start, end Coordinate) {
	c.Start = start
	c.End = end
	c.Updated = true
}

// CollapseToStart collapses the cursor to the start of its selection.
func (c *Cursor) CollapseToStart() {
	start := c.SelectionStart()
	c.SetSelection(start, start)
}

// CollapseToEnd collapses the cursor to the end of its selection.
func (c *Cursor) CollapseToEnd() {
	end := c.SelectionEnd()
	c.SetSelection(end, end)
}

// String returns a string representation of the cursor.
func (c Cursor) String() string {
	flags := ""
	if c.Main {
		flags += "*"
	}
	if c.Current {
		flags += "+"
	}
	if !c.HasSelection() {
		return fmt.Sprintf("Cursor%s%v", flags, c.End)
	}
	dir := "→"
	if c.IsBackward() {
		dir = "←"
	}
	return fmt.Sprintf("Selection%s(%v%s%v)", flags, c.Start, dir, c.End)
}
