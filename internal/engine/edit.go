package engine

import (
	"sort"
	"strings"

	"github.com/dshills/quill/internal/engine/document"
	"github.com/dshills/quill/internal/engine/history"
)

// While an edit runs the cursors hold glyph-index coordinates: Column is
// the glyph index on the line rather than the visible column. Shifting in
// index space is exact even when tabs follow the edit on the same line.
//
// Recorded actions and cursor snapshots stay in index space too, so the
// history survives a tab size change. They are replayed through
// indexedDocument.

// edit runs f inside a transaction and commits the result. f receives the
// cursors already sorted, merged and converted to index space. If f
// returns an error nothing must have been mutated.
func (e *Editor) edit(name string, f func(tx *history.Transaction) error) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.readOnly {
		return ErrReadOnly
	}

	e.cursors.Update()
	e.cursors.MapInPlace(e.indexOf)
	tx := history.NewTransaction(e.cursors)

	err := f(tx)
	if err != nil {
		e.cursors.MapInPlace(e.columnOf)
		e.cursors.Update()
		return err
	}

	e.cursors.Update()
	tx.Close(e.cursors)
	e.cursors.MapInPlace(e.columnOf)
	if e.history.Add(tx) {
		e.logger.Debug("%s: committed %s with %d actions", name, tx.ID, len(tx.Actions))
		e.refresh()
	}
	return nil
}

// visible converts an index-space coordinate to a visible one.
func (e *Editor) visible(c Coordinate) Coordinate {
	return indexedDocument{e.doc}.visible(c)
}

// insertRaw inserts text at the index-space position pos and records the
// action. It returns the index-space end of the inserted text. No cursor
// is moved.
func (e *Editor) insertRaw(tx *history.Transaction, pos Coordinate, text string) Coordinate {
	if text == "" {
		return pos
	}
	end := e.indexOf(e.doc.InsertText(e.visible(pos), text))
	tx.AddInsert(pos, end, text)
	return end
}

// deleteRaw removes the index-space range [start, end) and records the
// action. No cursor is moved.
func (e *Editor) deleteRaw(tx *history.Transaction, start, end Coordinate) {
	if start == end {
		return
	}
	vs, ve := e.visible(start), e.visible(end)
	text := e.doc.SectionText(vs, ve)
	e.doc.DeleteText(vs, ve)
	tx.AddDelete(start, end, text)
}

// indexedDocument replays index-space actions against the document.
type indexedDocument struct {
	doc *document.Document
}

func (d indexedDocument) visible(c Coordinate) Coordinate {
	return Coordinate{Line: c.Line, Column: d.doc.Column(c.Line, c.Column)}
}

func (d indexedDocument) InsertText(start Coordinate, text string) Coordinate {
	end := d.doc.InsertText(d.visible(start), text)
	return Coordinate{Line: end.Line, Column: d.doc.Index(end.Line, end.Column)}
}

func (d indexedDocument) DeleteText(start, end Coordinate) {
	d.doc.DeleteText(d.visible(start), d.visible(end))
}

// insertAt inserts text on behalf of cursor i and shifts the cursors that
// follow it.
func (e *Editor) insertAt(tx *history.Transaction, i int, pos Coordinate, text string) Coordinate {
	end := e.insertRaw(tx, pos, text)
	e.cursors.AdjustForInsert(i, pos, end)
	return end
}

// deleteAt removes [start, end) on behalf of cursor i and shifts the
// cursors that follow it.
func (e *Editor) deleteAt(tx *history.Transaction, i int, start, end Coordinate) {
	e.deleteRaw(tx, start, end)
	e.cursors.AdjustForDelete(i, start, end)
}

// replaceSelection replaces the selection of cursor i with text and leaves
// a caret after it.
func (e *Editor) replaceSelection(tx *history.Transaction, i int, text string) {
	c := e.cursors.At(i)
	start := c.SelectionStart()
	e.deleteAt(tx, i, start, c.SelectionEnd())
	end := e.insertAt(tx, i, start, text)
	e.cursors.At(i).SetSelection(end, end)
}

// prevIndex returns the index-space position one glyph before c.
func (e *Editor) prevIndex(c Coordinate) Coordinate {
	switch {
	case c.Column > 0:
		c.Column--
		return c
	case c.Line == 0:
		return c
	}
	return Coordinate{Line: c.Line - 1, Column: e.doc.Line(c.Line - 1).Len()}
}

// nextIndex returns the index-space position one glyph after c.
func (e *Editor) nextIndex(c Coordinate) Coordinate {
	switch {
	case c.Column < e.doc.Line(c.Line).Len():
		c.Column++
		return c
	case c.Line == e.doc.LineCount()-1:
		return c
	}
	return Coordinate{Line: c.Line + 1}
}

// indentUnit returns the text inserted for one level of indentation at
// visible column col.
func (e *Editor) indentUnit(col int) string {
	if !e.insertSpaces {
		return "\t"
	}
	return strings.Repeat(" ", e.tabSize-col%e.tabSize)
}

// leadingIndent returns the whitespace that starts line n, up to glyph
// index limit.
func (e *Editor) leadingIndent(n, limit int) string {
	glyphs := e.doc.Line(n).Glyphs
	var b strings.Builder
	for i := 0; i < len(glyphs) && i < limit; i++ {
		r := glyphs[i].Codepoint
		if r != ' ' && r != '\t' {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}

// selectedLines returns the lines touched by any cursor, ascending and
// without duplicates. A multi-line selection ending at column 0 does not
// include its last line.
func (e *Editor) selectedLines() []int {
	seen := make(map[int]bool)
	var lines []int
	for _, c := range e.cursors.All() {
		first, last := c.SelectionStart().Line, c.SelectionEnd()
		if last.Line > first && last.Column == 0 {
			last.Line--
		}
		for n := first; n <= last.Line; n++ {
			if !seen[n] {
				seen[n] = true
				lines = append(lines, n)
			}
		}
	}
	sort.Ints(lines)
	return lines
}

// ============================================================================
// Edit operations
// ============================================================================

// InsertText types text at every cursor, replacing selections. With
// auto-indent a typed newline copies the indentation of the line it
// breaks.
func (e *Editor) InsertText(text string) error {
	return e.edit("insert", func(tx *history.Transaction) error {
		newline := e.autoIndent && strings.TrimSuffix(text, "\r") == "\n"
		for i := 0; i < e.cursors.Len(); i++ {
			t := text
			if newline {
				start := e.cursors.At(i).SelectionStart()
				t = "\n" + e.leadingIndent(start.Line, start.Column)
			}
			e.replaceSelection(tx, i, t)
		}
		return nil
	})
}

// InsertTab inserts a tab, or spaces up to the next tab stop when spaces
// are preferred, at every cursor.
func (e *Editor) InsertTab() error {
	return e.edit("tab", func(tx *history.Transaction) error {
		for i := 0; i < e.cursors.Len(); i++ {
			col := e.visible(e.cursors.At(i).SelectionStart()).Column
			e.replaceSelection(tx, i, e.indentUnit(col))
		}
		return nil
	})
}

// Backspace removes each selection, or the glyph before each caret.
func (e *Editor) Backspace() error {
	return e.edit("backspace", func(tx *history.Transaction) error {
		for i := 0; i < e.cursors.Len(); i++ {
			c := e.cursors.At(i)
			start, end := c.SelectionStart(), c.SelectionEnd()
			if start == end {
				start = e.prevIndex(end)
			}
			e.deleteAt(tx, i, start, end)
			e.cursors.At(i).SetSelection(start, start)
		}
		return nil
	})
}

// Delete removes each selection, or the glyph after each caret.
func (e *Editor) Delete() error {
	return e.edit("delete", func(tx *history.Transaction) error {
		for i := 0; i < e.cursors.Len(); i++ {
			c := e.cursors.At(i)
			start, end := c.SelectionStart(), c.SelectionEnd()
			if start == end {
				end = e.nextIndex(start)
			}
			e.deleteAt(tx, i, start, end)
			e.cursors.At(i).SetSelection(start, start)
		}
		return nil
	})
}

// DeleteSelections removes every selection. Carets are left alone.
func (e *Editor) DeleteSelections() error {
	return e.edit("delete selections", func(tx *history.Transaction) error {
		for i := 0; i < e.cursors.Len(); i++ {
			if e.cursors.At(i).HasSelection() {
				e.replaceSelection(tx, i, "")
			}
		}
		return nil
	})
}

// ReplaceText replaces [start, end) with text. Cursors after the range are
// shifted; cursors inside it move to the end of the new text.
func (e *Editor) ReplaceText(start, end Coordinate, text string) error {
	return e.edit("replace", func(tx *history.Transaction) error {
		s, en, err := e.checkRange(start, end)
		if err != nil {
			return err
		}
		is, ie := e.indexOf(s), e.indexOf(en)
		e.deleteRaw(tx, is, ie)
		ne := e.insertRaw(tx, is, text)
		e.cursors.AdjustForReplace(is, ie, ne)
		return nil
	})
}

// Indent adds one level of indentation to every selected line.
func (e *Editor) Indent() error {
	return e.edit("indent", func(tx *history.Transaction) error {
		unit := e.indentUnit(0)
		for _, n := range e.selectedLines() {
			if e.doc.Line(n).Len() == 0 {
				continue
			}
			e.insertRaw(tx, Coordinate{Line: n}, unit)
			e.cursors.ShiftLine(n, 0, len(unit))
		}
		return nil
	})
}

// Deindent removes one level of indentation from every selected line: a
// leading tab, or up to a tab size of leading spaces.
func (e *Editor) Deindent() error {
	return e.edit("deindent", func(tx *history.Transaction) error {
		for _, n := range e.selectedLines() {
			glyphs := e.doc.Line(n).Glyphs
			count := 0
			if len(glyphs) > 0 && glyphs[0].Codepoint == '\t' {
				count = 1
			} else {
				for count < len(glyphs) && count < e.tabSize && glyphs[count].Codepoint == ' ' {
					count++
				}
			}
			if count == 0 {
				continue
			}
			e.deleteRaw(tx, Coordinate{Line: n}, Coordinate{Line: n, Column: count})
			e.cursors.ShiftLine(n, 0, -count)
		}
		return nil
	})
}

// DeleteLines removes every line touched by a cursor. Each cursor ends up
// at the start of the line that follows its deleted block.
func (e *Editor) DeleteLines() error {
	return e.edit("delete lines", func(tx *history.Transaction) error {
		// Blocks of consecutive lines, top to bottom.
		type block struct{ first, last int }
		var blocks []block
		for _, n := range e.selectedLines() {
			if k := len(blocks) - 1; k >= 0 && blocks[k].last+1 == n {
				blocks[k].last = n
				continue
			}
			blocks = append(blocks, block{n, n})
		}

		removed := 0
		targets := make(map[int]int, len(blocks))
		for _, b := range blocks {
			first, last := b.first-removed, b.last-removed
			count := e.doc.LineCount()
			switch {
			case last+1 < count:
				e.deleteRaw(tx, Coordinate{Line: first}, Coordinate{Line: last + 1})
			case first > 0:
				e.deleteRaw(tx,
					Coordinate{Line: first - 1, Column: e.doc.Line(first - 1).Len()},
					Coordinate{Line: last, Column: e.doc.Line(last).Len()})
			default:
				e.deleteRaw(tx, Coordinate{}, Coordinate{Line: last, Column: e.doc.Line(last).Len()})
			}
			targets[b.first] = min(first, e.doc.LineCount()-1)
			removed += b.last - b.first + 1
		}

		for i := 0; i < e.cursors.Len(); i++ {
			c := e.cursors.At(i)
			line := c.SelectionStart().Line
			for k := len(blocks) - 1; k >= 0; k-- {
				if line >= blocks[k].first {
					line = targets[blocks[k].first]
					break
				}
			}
			pos := Coordinate{Line: line}
			c.SetSelection(pos, pos)
		}
		return nil
	})
}

// ToggleComment comments out the selected lines with the language's
// single-line comment marker, or uncomments them if every non-blank
// selected line is already commented. Without a marker nothing happens.
func (e *Editor) ToggleComment() error {
	return e.edit("toggle comment", func(tx *history.Transaction) error {
		lang := e.colorizer.Language()
		if lang == nil || lang.SingleLineComment() == "" {
			return nil
		}
		marker := []rune(lang.SingleLineComment())

		type target struct{ line, index int }
		var targets []target
		commented := true
		for _, n := range e.selectedLines() {
			index := e.doc.Index(n, e.doc.FirstNonWhitespace(n).Column)
			if index >= e.doc.Line(n).Len() {
				continue
			}
			targets = append(targets, target{n, index})
			if !e.hasRunesAt(n, index, marker) {
				commented = false
			}
		}

		for _, t := range targets {
			if !commented {
				text := string(marker) + " "
				e.insertRaw(tx, Coordinate{Line: t.line, Column: t.index}, text)
				e.cursors.ShiftLine(t.line, t.index, len(marker)+1)
				continue
			}
			count := len(marker)
			if e.hasRunesAt(t.line, t.index+count, []rune{' '}) {
				count++
			}
			e.deleteRaw(tx, Coordinate{Line: t.line, Column: t.index}, Coordinate{Line: t.line, Column: t.index + count})
			e.cursors.ShiftLine(t.line, t.index, -count)
		}
		return nil
	})
}

// hasRunesAt reports whether line n holds runes starting at glyph index.
func (e *Editor) hasRunesAt(n, index int, runes []rune) bool {
	glyphs := e.doc.Line(n).Glyphs
	if index+len(runes) > len(glyphs) {
		return false
	}
	for i, r := range runes {
		if glyphs[index+i].Codepoint != r {
			return false
		}
	}
	return true
}
