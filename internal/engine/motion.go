package engine

import (
	"github.com/dshills/quill/internal/engine/document"
)

// Cursors returns a snapshot of every cursor in document order.
func (e *Editor) Cursors() []Cursor {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.cursors.All()
}

// MainCursor returns a copy of the main cursor.
func (e *Editor) MainCursor() Cursor {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return *e.cursors.Main()
}

// CursorCount returns the number of cursors.
func (e *Editor) CursorCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.cursors.Len()
}

// SetCursor discards every cursor and selects [start, end). start is the
// anchor; start after end is a backward selection.
func (e *Editor) SetCursor(start, end Coordinate) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	start, err := e.checkCoordinate(start)
	if err != nil {
		return err
	}
	end, err = e.checkCoordinate(end)
	if err != nil {
		return err
	}
	e.cursors.SetCursor(start, end)
	return nil
}

// AddCursor adds a cursor and makes it current. Overlapping cursors are
// merged.
func (e *Editor) AddCursor(start, end Coordinate) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	start, err := e.checkCoordinate(start)
	if err != nil {
		return err
	}
	end, err = e.checkCoordinate(end)
	if err != nil {
		return err
	}
	e.cursors.AddCursor(start, end)
	e.cursors.Update()
	return nil
}

// ClearAdditionalCursors keeps only the main cursor.
func (e *Editor) ClearAdditionalCursors() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cursors.ClearAdditional(false)
}

// SelectAll selects the whole document with a single cursor.
func (e *Editor) SelectAll() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cursors.SetCursor(e.doc.Top(), e.doc.EndCoordinate())
}

// SelectLine extends every cursor to whole lines, including the line
// break after the last one.
func (e *Editor) SelectLine() {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i := 0; i < e.cursors.Len(); i++ {
		c := e.cursors.At(i)
		first, last := c.SelectionStart().Line, c.SelectionEnd().Line
		end := Coordinate{Line: last + 1}
		if end.Line >= e.doc.LineCount() {
			end = e.doc.EndOfLine(Coordinate{Line: last})
		}
		c.SetSelection(Coordinate{Line: first}, end)
	}
	e.cursors.Update()
}

// SelectWord selects the word under every cursor.
func (e *Editor) SelectWord() {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i := 0; i < e.cursors.Len(); i++ {
		c := e.cursors.At(i)
		start, end := e.wordAt(c.End)
		c.SetSelection(start, end)
	}
	e.cursors.Update()
}

// wordAt returns the run of same-class glyphs at pos. A caret just after a
// word selects that word.
func (e *Editor) wordAt(pos Coordinate) (Coordinate, Coordinate) {
	if g, ok := e.doc.GlyphAt(pos); !ok || !document.IsWordChar(g.Codepoint) {
		if pos.Column > 0 {
			prev := e.doc.Left(pos, false)
			if g, ok := e.doc.GlyphAt(prev); ok && document.IsWordChar(g.Codepoint) {
				pos = prev
			}
		}
	}
	return e.doc.StartOfWord(pos), e.doc.EndOfWord(pos)
}

// ============================================================================
// Motion
// ============================================================================

// move applies f to the interactive end of every cursor. Without extend
// the selection collapses onto the new position.
func (e *Editor) move(extend bool, f func(c *Cursor) Coordinate) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i := 0; i < e.cursors.Len(); i++ {
		c := e.cursors.At(i)
		c.Update(f(c), extend)
	}
	e.cursors.Update()
}

// MoveLeft moves every cursor amount glyphs, or words in word mode, to
// the left. Without extend a selection first collapses to its start.
func (e *Editor) MoveLeft(amount int, extend, wordMode bool) {
	e.move(extend, func(c *Cursor) Coordinate {
		if !extend && c.HasSelection() {
			return c.SelectionStart()
		}
		return e.doc.LeftN(c.End, amount, wordMode)
	})
}

// MoveRight moves every cursor amount glyphs, or words in word mode, to
// the right. Without extend a selection first collapses to its end.
func (e *Editor) MoveRight(amount int, extend, wordMode bool) {
	e.move(extend, func(c *Cursor) Coordinate {
		if !extend && c.HasSelection() {
			return c.SelectionEnd()
		}
		return e.doc.RightN(c.End, amount, wordMode)
	})
}

// MoveUp moves every cursor amount lines up. In word mode the cursor goes
// to the top of the document.
func (e *Editor) MoveUp(amount int, extend, wordMode bool) {
	e.move(extend, func(c *Cursor) Coordinate {
		if wordMode {
			return e.doc.Top()
		}
		return e.doc.Up(c.End, amount)
	})
}

// MoveDown moves every cursor amount lines down. In word mode the cursor
// goes to the end of the document.
func (e *Editor) MoveDown(amount int, extend, wordMode bool) {
	e.move(extend, func(c *Cursor) Coordinate {
		if wordMode {
			return e.doc.Bottom()
		}
		return e.doc.Down(c.End, amount)
	})
}

// MoveToStartOfLine moves every cursor to the first non-blank glyph of its
// line, or to column 0 if it is already there.
func (e *Editor) MoveToStartOfLine(extend bool) {
	e.move(extend, func(c *Cursor) Coordinate {
		first := e.doc.FirstNonWhitespace(c.End.Line)
		if c.End == first {
			return e.doc.StartOfLine(c.End)
		}
		return first
	})
}

// MoveToEndOfLine moves every cursor to the end of its line.
func (e *Editor) MoveToEndOfLine(extend bool) {
	e.move(extend, func(c *Cursor) Coordinate {
		return e.doc.EndOfLine(c.End)
	})
}

// MoveTop moves every cursor to the start of the document.
func (e *Editor) MoveTop(extend bool) {
	e.move(extend, func(*Cursor) Coordinate {
		return e.doc.Top()
	})
}

// MoveBottom moves every cursor to the end of the document.
func (e *Editor) MoveBottom(extend bool) {
	e.move(extend, func(*Cursor) Coordinate {
		return e.doc.Bottom()
	})
}
