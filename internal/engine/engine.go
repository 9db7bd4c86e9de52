package engine

import (
	"strings"
	"sync"

	"github.com/dshills/quill/internal/engine/bracket"
	"github.com/dshills/quill/internal/engine/colorize"
	"github.com/dshills/quill/internal/engine/cursor"
	"github.com/dshills/quill/internal/engine/document"
	"github.com/dshills/quill/internal/engine/history"
	"github.com/dshills/quill/internal/engine/palette"
	"github.com/dshills/quill/internal/log"
)

// Re-export commonly used types for convenience.
type (
	// Coordinate is a line and visible column.
	Coordinate = document.Coordinate

	// Cursor is a caret or selection.
	Cursor = cursor.Cursor

	// Glyph is a codepoint plus its color.
	Glyph = document.Glyph

	// Pair is a matched bracket pair.
	Pair = bracket.Pair
)

// Editor is one editing session. It combines the document, cursors,
// undo history, colorizer and bracket index behind a single API.
//
// Every edit runs the same sequence: open a transaction, mutate the
// document, shift the cursors, close and record the transaction, recolor
// dirty lines and refresh the bracket index.
//
// All operations are safe for concurrent use. The editor never starts
// background work.
type Editor struct {
	mu sync.RWMutex

	// Core components
	doc       *document.Document
	cursors   *cursor.Cursors
	history   *history.Transactions
	colorizer *colorize.Colorizer
	brackets  *bracket.Bracketeer
	palette   *palette.Palette
	logger    *log.Logger

	// bracketsStale is set when the document changed since the bracket
	// index was last built.
	bracketsStale bool

	// Configuration
	tabSize        int
	maxUndoEntries int
	language       *colorize.Language
	alwaysBrackets bool
	insertSpaces   bool
	autoIndent     bool
	readOnly       bool

	// Initialization
	initText string
}

// New creates an Editor with the given options.
func New(opts ...Option) *Editor {
	e := &Editor{
		tabSize:        DefaultTabSize,
		maxUndoEntries: DefaultMaxUndoEntries,
	}

	for _, opt := range opts {
		opt(e)
	}

	if e.palette == nil {
		e.palette = palette.Dark()
	}
	if e.logger == nil {
		e.logger = log.Nop()
	}
	e.logger = e.logger.WithComponent("engine")

	e.doc = document.NewFromString(e.initText, e.tabSize)
	e.cursors = cursor.NewCursors()
	e.history = history.NewTransactions(e.maxUndoEntries)
	e.colorizer = colorize.New(e.language)
	e.brackets = bracket.New()
	e.bracketsStale = true
	e.initText = ""

	e.colorizer.UpdateEntireDocument(e.doc)
	e.refreshBrackets()
	return e
}

// ============================================================================
// Content
// ============================================================================

// LoadText replaces the content and resets the cursors, the undo history
// and the bracket index.
func (e *Editor) LoadText(text string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.readOnly {
		return ErrReadOnly
	}

	e.doc.SetText(text)
	e.cursors = cursor.NewCursors()
	e.history.Reset()
	e.brackets.Reset()
	e.bracketsStale = true
	e.colorizer.UpdateEntireDocument(e.doc)
	e.refreshBrackets()

	e.logger.Debug("loaded %d lines", e.doc.LineCount())
	return nil
}

// Text returns the full content.
func (e *Editor) Text() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.doc.Text()
}

// LineText returns the text of line n, or "" if n is out of range.
func (e *Editor) LineText(n int) string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if n < 0 || n >= e.doc.LineCount() {
		return ""
	}
	return e.doc.LineText(n)
}

// LineCount returns the number of lines.
func (e *Editor) LineCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.doc.LineCount()
}

// SectionText returns the text in [start, end).
func (e *Editor) SectionText(start, end Coordinate) (string, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	start, end, err := e.checkRange(start, end)
	if err != nil {
		return "", err
	}
	return e.doc.SectionText(start, end), nil
}

// SelectedText returns the text of every non-empty selection in document
// order, joined by newlines.
func (e *Editor) SelectedText() string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	var parts []string
	for _, c := range e.cursors.All() {
		if c.HasSelection() {
			parts = append(parts, e.doc.SectionText(c.SelectionStart(), c.SelectionEnd()))
		}
	}
	return strings.Join(parts, "\n")
}

// CursorText returns the text selected by cursor i, or "" if i is out of
// range.
func (e *Editor) CursorText(i int) string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if i < 0 || i >= e.cursors.Len() {
		return ""
	}
	c := e.cursors.At(i)
	return e.doc.SectionText(c.SelectionStart(), c.SelectionEnd())
}

// Glyphs returns a copy of the glyphs of line n, or nil if n is out of
// range.
func (e *Editor) Glyphs(n int) []Glyph {
	e.mu.Lock()
	defer e.mu.Unlock()
	if n < 0 || n >= e.doc.LineCount() {
		return nil
	}
	e.ensureBrackets()
	glyphs := e.doc.Line(n).Glyphs
	out := make([]Glyph, len(glyphs))
	copy(out, glyphs)
	return out
}

// ============================================================================
// Configuration
// ============================================================================

// SetLanguage switches the language and recolors the whole document.
func (e *Editor) SetLanguage(lang *colorize.Language) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.language = lang
	e.colorizer.SetLanguage(lang)
	e.colorizer.UpdateEntireDocument(e.doc)
	e.bracketsStale = true
	e.refreshBrackets()

	name := "none"
	if lang != nil {
		name = lang.Name
	}
	e.logger.Debug("language set to %s", name)
}

// Language returns the language passed to WithLanguage or SetLanguage, or
// nil.
func (e *Editor) Language() *colorize.Language {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.language
}

// TabSize returns the tab size.
func (e *Editor) TabSize() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.doc.TabSize()
}

// SetTabSize changes the tab size. Cursors keep their glyph positions and
// the undo history stays valid.
func (e *Editor) SetTabSize(size int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if size <= 0 {
		size = DefaultTabSize
	}
	e.cursors.MapInPlace(e.indexOf)
	e.doc.SetTabSize(size)
	e.cursors.MapInPlace(e.columnOf)
	e.tabSize = size
	e.bracketsStale = true
	e.refreshBrackets()
}

// Palette returns the palette of the session. The palette must not be
// modified.
func (e *Editor) Palette() *palette.Palette {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.palette
}

// IsReadOnly returns true if the editor is read-only.
func (e *Editor) IsReadOnly() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.readOnly
}

// ============================================================================
// Undo/Redo
// ============================================================================

// Undo reverts the most recent transaction.
func (e *Editor) Undo() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.readOnly {
		return ErrReadOnly
	}
	if !e.history.CanUndo() {
		return ErrNothingToUndo
	}

	t := e.history.Undo(indexedDocument{e.doc}, e.cursors)
	e.cursors.MapInPlace(e.columnOf)
	e.refresh()
	e.logger.Debug("undo %s: %d actions", t.ID, len(t.Actions))
	return nil
}

// Redo replays the most recently undone transaction.
func (e *Editor) Redo() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.readOnly {
		return ErrReadOnly
	}
	if !e.history.CanRedo() {
		return ErrNothingToRedo
	}

	t := e.history.Redo(indexedDocument{e.doc}, e.cursors)
	e.cursors.MapInPlace(e.columnOf)
	e.refresh()
	e.logger.Debug("redo %s: %d actions", t.ID, len(t.Actions))
	return nil
}

// CanUndo returns true if undo is available.
func (e *Editor) CanUndo() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.history.CanUndo()
}

// CanRedo returns true if redo is available.
func (e *Editor) CanRedo() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.history.CanRedo()
}

// UndoCount returns the number of undo operations available.
func (e *Editor) UndoCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.history.UndoCount()
}

// RedoCount returns the number of redo operations available.
func (e *Editor) RedoCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.history.RedoCount()
}

// LastTransaction returns a summary of the transaction Undo would revert.
func (e *Editor) LastTransaction() (history.Info, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.history.PeekUndo()
}

// ClearHistory removes all undo/redo history.
func (e *Editor) ClearHistory() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.history.Reset()
}

// ============================================================================
// Internal helpers
// ============================================================================

// refresh recolors dirty lines and brings the bracket index up to date.
func (e *Editor) refresh() {
	e.colorizer.UpdateChangedLines(e.doc)
	e.bracketsStale = true
	e.refreshBrackets()
}

// refreshBrackets rebuilds the bracket index when matching is always on.
func (e *Editor) refreshBrackets() {
	if e.alwaysBrackets {
		e.ensureBrackets()
	}
}

// ensureBrackets rebuilds a stale bracket index.
func (e *Editor) ensureBrackets() {
	if !e.bracketsStale {
		return
	}
	e.brackets.Update(e.doc)
	e.bracketsStale = false
}

// checkRange validates and normalizes a range.
func (e *Editor) checkRange(start, end Coordinate) (Coordinate, Coordinate, error) {
	start, err := e.checkCoordinate(start)
	if err != nil {
		return start, end, err
	}
	end, err = e.checkCoordinate(end)
	if err != nil {
		return start, end, err
	}
	if end.Less(start) {
		return start, end, ErrInvalidCoordinate
	}
	return start, end, nil
}

// checkCoordinate rejects coordinates outside the document and snaps the
// rest to a glyph boundary.
func (e *Editor) checkCoordinate(c Coordinate) (Coordinate, error) {
	if !c.IsValid() || c.Line >= e.doc.LineCount() {
		return c, ErrInvalidCoordinate
	}
	return e.doc.NormalizeCoordinate(c), nil
}

// indexOf converts a visible coordinate to glyph-index space.
func (e *Editor) indexOf(c Coordinate) Coordinate {
	return Coordinate{Line: c.Line, Column: e.doc.Index(c.Line, c.Column)}
}

// columnOf converts a glyph-index coordinate back to a visible one.
func (e *Editor) columnOf(c Coordinate) Coordinate {
	line := min(max(c.Line, 0), e.doc.LineCount()-1)
	return Coordinate{Line: line, Column: e.doc.Column(line, max(c.Column, 0))}
}
