package cursor

import "sort"

// Cursors is an ordered collection of cursors with one main and one current
// cursor. The collection is never empty.
type Cursors struct {
	cursors []Cursor
	current int
}

// NewCursors creates a collection with a single caret at the top of the
// document.
func NewCursors() *Cursors {
	cs := &Cursors{}
	cs.SetCursor(Coordinate{}, Coordinate{})
	return cs
}

// SetCursor discards every cursor and creates a single main, current one.
func (cs *Cursors) SetCursor(start, end Coordinate) {
	c := NewSelection(start, end)
	c.Main = true
	c.Current = true
	cs.cursors = append(cs.cursors[:0], c)
	cs.current = 0
}

// AddCursor appends a cursor and makes it current. The main cursor is left
// unchanged.
func (cs *Cursors) AddCursor(start, end Coordinate) {
	if cs.current < len(cs.cursors) {
		cs.cursors[cs.current].Current = false
	}
	c := NewSelection(start, end)
	c.Current = true
	cs.cursors = append(cs.cursors, c)
	cs.current = len(cs.cursors) - 1
}

// Len returns the number of cursors.
func (cs *Cursors) Len() int {
	return len(cs.cursors)
}

// HasMultiple returns true if there is more than one cursor.
func (cs *Cursors) HasMultiple() bool {
	return len(cs.cursors) > 1
}

// At returns the cursor at index i. The pointer stays valid until the
// collection is next restructured.
func (cs *Cursors) At(i int) *Cursor {
	return &cs.cursors[i]
}

// CurrentIndex returns the index of the current cursor.
func (cs *Cursors) CurrentIndex() int {
	return cs.current
}

// Current returns the current cursor.
func (cs *Cursors) Current() *Cursor {
	return &cs.cursors[cs.current]
}

// Main returns the main cursor.
func (cs *Cursors) Main() *Cursor {
	for i := range cs.cursors {
		if cs.cursors[i].Main {
			return &cs.cursors[i]
		}
	}
	return &cs.cursors[0]
}

// MainIndex returns the index of the main cursor.
func (cs *Cursors) MainIndex() int {
	for i := range cs.cursors {
		if cs.cursors[i].Main {
			return i
		}
	}
	return 0
}

// All returns a copy of every cursor.
func (cs *Cursors) All() []Cursor {
	out := make([]Cursor, len(cs.cursors))
	copy(out, cs.cursors)
	return out
}

// Clone returns a deep copy of the collection.
func (cs *Cursors) Clone() *Cursors {
	return &Cursors{cursors: cs.All(), current: cs.current}
}

// Restore replaces the contents with a deep copy of other.
func (cs *Cursors) Restore(other *Cursors) {
	cs.cursors = append(cs.cursors[:0], other.cursors...)
	cs.current = other.current
	for i := range cs.cursors {
		cs.cursors[i].Updated = true
	}
}

// Equal reports whether both collections hold the same selections with the
// same main and current flags.
func (cs *Cursors) Equal(other *Cursors) bool {
	if other == nil || len(cs.cursors) != len(other.cursors) || cs.current != other.current {
		return false
	}
	for i, c := range cs.cursors {
		o := other.cursors[i]
		if c.Start != o.Start || c.End != o.End || c.Main != o.Main || c.Current != o.Current {
			return false
		}
	}
	return true
}

// AnyHasSelection returns true if any cursor spans text.
func (cs *Cursors) AnyHasSelection() bool {
	for _, c := range cs.cursors {
		if c.HasSelection() {
			return true
		}
	}
	return false
}

// AllHaveSelection returns true if every cursor spans text.
func (cs *Cursors) AllHaveSelection() bool {
	for _, c := range cs.cursors {
		if !c.HasSelection() {
			return false
		}
	}
	return true
}

// AnyMultiline returns true if any selection spans several lines.
func (cs *Cursors) AnyMultiline() bool {
	for _, c := range cs.cursors {
		if c.IsMultiline() {
			return true
		}
	}
	return false
}

// AnyUpdated returns true if any cursor moved since ClearUpdated.
func (cs *Cursors) AnyUpdated() bool {
	for _, c := range cs.cursors {
		if c.Updated {
			return true
		}
	}
	return false
}

// ClearUpdated resets the Updated flag of every cursor.
func (cs *Cursors) ClearUpdated() {
	for i := range cs.cursors {
		cs.cursors[i].Updated = false
	}
}

// ClearAdditional drops every cursor except the main one, which becomes
// current. With resetToStart the survivor collapses to the start of its
// selection.
func (cs *Cursors) ClearAdditional(resetToStart bool) {
	main := *cs.Main()
	main.Main = true
	main.Current = true
	if resetToStart {
		main.CollapseToStart()
	}
	cs.cursors = append(cs.cursors[:0], main)
	cs.current = 0
}

// MapInPlace applies f to both ends of every cursor.
func (cs *Cursors) MapInPlace(f func(Coordinate) Coordinate) {
	for i := range cs.cursors {
		c := &cs.cursors[i]
		start, end := f(c.Start), f(c.End)
		if start != c.Start || end != c.End {
			c.SetSelection(start, end)
		}
	}
}

// Update sorts the cursors by selection start and merges any that overlap
// or touch. A merged cursor is main or current if either parent was, and is
// backward if either parent was.
func (cs *Cursors) Update() {
	if len(cs.cursors) <= 1 {
		return
	}

	sort.SliceStable(cs.cursors, func(i, j int) bool {
		si, sj := cs.cursors[i].SelectionStart(), cs.cursors[j].SelectionStart()
		if si != sj {
			return si.Less(sj)
		}
		return cs.cursors[i].SelectionEnd().Less(cs.cursors[j].SelectionEnd())
	})

	for i := len(cs.cursors) - 1; i > 0; i-- {
		prev := &cs.cursors[i-1]
		next := cs.cursors[i]
		if prev.SelectionEnd().Less(next.SelectionStart()) {
			continue
		}

		start := prev.SelectionStart()
		end := prev.SelectionEnd()
		if end.Less(next.SelectionEnd()) {
			end = next.SelectionEnd()
		}
		if prev.IsBackward() || next.IsBackward() {
			prev.SetSelection(end, start)
		} else {
			prev.SetSelection(start, end)
		}
		prev.Main = prev.Main || next.Main
		prev.Current = prev.Current || next.Current

		cs.cursors = append(cs.cursors[:i], cs.cursors[i+1:]...)
	}

	cs.current = 0
	for i, c := range cs.cursors {
		if c.Current {
			cs.current = i
			break
		}
	}
}
