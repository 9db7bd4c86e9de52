package engine

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dshills/quill/internal/engine/colorize"
	"github.com/dshills/quill/internal/engine/document"
	"github.com/dshills/quill/internal/engine/palette"
	"github.com/dshills/quill/internal/log"
)

var coord = document.Coord

// caret places a single caret.
func caret(t *testing.T, e *Editor, line, column int) {
	t.Helper()
	require.NoError(t, e.SetCursor(coord(line, column), coord(line, column)))
}

// positions returns the interactive end of every cursor.
func positions(e *Editor) []Coordinate {
	var out []Coordinate
	for _, c := range e.Cursors() {
		out = append(out, c.End)
	}
	return out
}

// ============================================================================
// Basic Operations
// ============================================================================

func TestNew(t *testing.T) {
	e := New()

	require.Equal(t, "", e.Text())
	require.Equal(t, 1, e.LineCount())
	require.Equal(t, []Coordinate{coord(0, 0)}, positions(e))
	require.True(t, e.MainCursor().Main)
	require.Equal(t, DefaultTabSize, e.TabSize())
	require.NotNil(t, e.Palette())
	require.Nil(t, e.Language())
}

func TestNewWithOptions(t *testing.T) {
	p := palette.Light()
	e := New(
		WithText("a\nb"),
		WithTabSize(8),
		WithLanguage(colorize.Go()),
		WithPalette(p),
		WithMaxUndoEntries(2),
	)

	require.Equal(t, "a\nb", e.Text())
	require.Equal(t, 2, e.LineCount())
	require.Equal(t, "b", e.LineText(1))
	require.Equal(t, "", e.LineText(5))
	require.Equal(t, 8, e.TabSize())
	require.Equal(t, "go", e.Language().Name)
	require.Same(t, p, e.Palette())
}

func TestInsertUndoRedo(t *testing.T) {
	e := New()

	require.NoError(t, e.InsertText("X"))
	require.Equal(t, "X", e.Text())

	require.NoError(t, e.Undo())
	require.Equal(t, "", e.Text())
	require.Equal(t, []Coordinate{coord(0, 0)}, positions(e))

	require.NoError(t, e.Redo())
	require.Equal(t, "X", e.Text())
	require.Equal(t, []Coordinate{coord(0, 1)}, positions(e))
}

func TestReplaceTextDeletesAcrossLines(t *testing.T) {
	e := New(WithText("ab\ncd"))

	require.NoError(t, e.ReplaceText(coord(0, 1), coord(1, 1), ""))
	require.Equal(t, "ad", e.Text())

	require.NoError(t, e.Undo())
	require.Equal(t, "ab\ncd", e.Text())
}

func TestReplaceTextShiftsCursors(t *testing.T) {
	e := New(WithText("one two three"))
	caret(t, e, 0, 1)
	require.NoError(t, e.AddCursor(coord(0, 9), coord(0, 9)))

	require.NoError(t, e.ReplaceText(coord(0, 4), coord(0, 7), "2"))
	require.Equal(t, "one 2 three", e.Text())
	require.Equal(t, []Coordinate{coord(0, 1), coord(0, 7)}, positions(e))
}

func TestReplaceTextInvalid(t *testing.T) {
	e := New(WithText("abc"))

	require.ErrorIs(t, e.ReplaceText(coord(0, 2), coord(0, 1), "x"), ErrInvalidCoordinate)
	require.ErrorIs(t, e.ReplaceText(coord(3, 0), coord(3, 0), "x"), ErrInvalidCoordinate)
	require.ErrorIs(t, e.ReplaceText(document.Invalid, coord(0, 0), "x"), ErrInvalidCoordinate)
	require.Equal(t, "abc", e.Text())
	require.False(t, e.CanUndo())
}

func TestSectionText(t *testing.T) {
	e := New(WithText("ab\ncd"))

	text, err := e.SectionText(coord(0, 1), coord(1, 1))
	require.NoError(t, err)
	require.Equal(t, "b\nc", text)

	_, err = e.SectionText(coord(1, 1), coord(0, 1))
	require.ErrorIs(t, err, ErrInvalidCoordinate)
}

func TestLoadTextResets(t *testing.T) {
	e := New()
	require.NoError(t, e.InsertText("abc"))
	require.NoError(t, e.AddCursor(coord(0, 1), coord(0, 1)))

	require.NoError(t, e.LoadText("new\ntext"))
	require.Equal(t, "new\ntext", e.Text())
	require.False(t, e.CanUndo())
	require.False(t, e.CanRedo())
	require.Equal(t, []Coordinate{coord(0, 0)}, positions(e))
}

func TestLoadTextSkipsByteOrderMark(t *testing.T) {
	e := New()
	require.NoError(t, e.LoadText("\uFEFFab\r\ncd"))
	require.Equal(t, "ab\ncd", e.Text())
}

func TestReadOnly(t *testing.T) {
	e := New(WithText("x"), WithReadOnly())

	require.True(t, e.IsReadOnly())
	require.ErrorIs(t, e.InsertText("y"), ErrReadOnly)
	require.ErrorIs(t, e.Backspace(), ErrReadOnly)
	require.ErrorIs(t, e.LoadText("y"), ErrReadOnly)
	require.ErrorIs(t, e.Undo(), ErrReadOnly)
	_, err := e.ReplaceAll("x", "y", true, false)
	require.ErrorIs(t, err, ErrReadOnly)
	require.Equal(t, "x", e.Text())

	e.SelectAll()
	require.Equal(t, "x", e.SelectedText())
}

// ============================================================================
// Undo/Redo
// ============================================================================

func TestUndoRedoWhenEmpty(t *testing.T) {
	e := New()

	require.False(t, e.CanUndo())
	require.False(t, e.CanRedo())
	require.ErrorIs(t, e.Undo(), ErrNothingToUndo)
	require.ErrorIs(t, e.Redo(), ErrNothingToRedo)
}

func TestRedoTruncation(t *testing.T) {
	e := New()
	require.NoError(t, e.InsertText("a"))
	require.NoError(t, e.InsertText("b"))

	require.NoError(t, e.Undo())
	require.True(t, e.CanRedo())

	require.NoError(t, e.InsertText("c"))
	require.False(t, e.CanRedo())
	require.Equal(t, "ac", e.Text())
	require.Equal(t, 2, e.UndoCount())
	require.Equal(t, 0, e.RedoCount())
}

func TestEmptyEditsAreDiscarded(t *testing.T) {
	e := New()

	require.NoError(t, e.InsertText(""))
	require.NoError(t, e.Backspace())
	require.NoError(t, e.Delete())
	require.NoError(t, e.DeleteSelections())
	require.False(t, e.CanUndo())
}

func TestUndoRestoresCursors(t *testing.T) {
	e := New(WithText("foo bar foo"))
	caret(t, e, 0, 0)
	require.NoError(t, e.AddCursor(coord(0, 8), coord(0, 8)))
	before := e.Cursors()

	require.NoError(t, e.InsertText("X"))
	require.Equal(t, "Xfoo bar Xfoo", e.Text())
	after := positions(e)
	require.Equal(t, []Coordinate{coord(0, 1), coord(0, 10)}, after)

	require.NoError(t, e.Undo())
	require.Equal(t, "foo bar foo", e.Text())
	require.Len(t, e.Cursors(), len(before))
	for i, c := range e.Cursors() {
		require.Equal(t, before[i].Start, c.Start)
		require.Equal(t, before[i].End, c.End)
		require.Equal(t, before[i].Main, c.Main)
	}

	require.NoError(t, e.Redo())
	require.Equal(t, after, positions(e))
}

func TestLastTransaction(t *testing.T) {
	e := New()
	_, ok := e.LastTransaction()
	require.False(t, ok)

	require.NoError(t, e.InsertText("ab"))
	info, ok := e.LastTransaction()
	require.True(t, ok)
	require.Equal(t, 1, info.Actions)

	e.ClearHistory()
	require.False(t, e.CanUndo())
}

func TestMaxUndoEntries(t *testing.T) {
	e := New(WithMaxUndoEntries(2))
	for _, s := range []string{"a", "b", "c"} {
		require.NoError(t, e.InsertText(s))
	}
	require.Equal(t, 2, e.UndoCount())
}

func TestEditsAreLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(log.Config{Level: log.LevelDebug, Output: &buf})
	e := New(WithLogger(logger))

	require.NoError(t, e.InsertText("x"))
	require.NoError(t, e.Undo())
	require.Contains(t, buf.String(), "insert: committed")
	require.Contains(t, buf.String(), "undo")
}

// ============================================================================
// Configuration
// ============================================================================

func TestSetLanguageRecolors(t *testing.T) {
	e := New(WithText("func"))
	require.Equal(t, document.ColorText, e.Glyphs(0)[0].Color)

	e.SetLanguage(colorize.Go())
	require.Equal(t, document.ColorDeclaration, e.Glyphs(0)[0].Color)

	e.SetLanguage(nil)
	require.Equal(t, document.ColorText, e.Glyphs(0)[0].Color)
	require.Nil(t, e.Language())
}

func TestEditsRecolor(t *testing.T) {
	e := New(WithText("x\ny"), WithLanguage(colorize.Go()))
	caret(t, e, 0, 0)

	require.NoError(t, e.InsertText("/*"))
	require.Equal(t, document.ColorComment, e.Glyphs(1)[0].Color)

	require.NoError(t, e.Undo())
	require.Equal(t, document.ColorIdentifier, e.Glyphs(1)[0].Color)
}

func TestGlyphsIsACopy(t *testing.T) {
	e := New(WithText("ab"))

	glyphs := e.Glyphs(0)
	glyphs[0].Codepoint = 'z'
	require.Equal(t, "ab", e.Text())
	require.Nil(t, e.Glyphs(3))
}

func TestSetTabSizeKeepsGlyphPositions(t *testing.T) {
	e := New(WithText("\tx"))
	caret(t, e, 0, 5)

	e.SetTabSize(8)
	require.Equal(t, 8, e.TabSize())
	require.Equal(t, []Coordinate{coord(0, 9)}, positions(e))
}

func TestUndoRedoAcrossTabSizeChange(t *testing.T) {
	e := New(WithText("\tab"), WithTabSize(4))
	caret(t, e, 0, 4)
	require.NoError(t, e.InsertText("X"))
	require.Equal(t, "\tXab", e.Text())

	e.SetTabSize(2)
	require.NoError(t, e.Undo())
	require.Equal(t, "\tab", e.Text())
	require.Equal(t, []Coordinate{coord(0, 2)}, positions(e))

	require.NoError(t, e.Redo())
	require.Equal(t, "\tXab", e.Text())
	require.Equal(t, []Coordinate{coord(0, 3)}, positions(e))

	e.SetTabSize(8)
	require.NoError(t, e.Undo())
	require.Equal(t, "\tab", e.Text())
	require.Equal(t, []Coordinate{coord(0, 8)}, positions(e))
}

func TestUndoDeleteAcrossTabSizeChange(t *testing.T) {
	e := New(WithText("\tab\n\tcd"), WithTabSize(4))
	require.NoError(t, e.SetCursor(coord(0, 5), coord(1, 5)))
	require.NoError(t, e.DeleteSelections())
	require.Equal(t, "\tad", e.Text())

	e.SetTabSize(3)
	require.NoError(t, e.Undo())
	require.Equal(t, "\tab\n\tcd", e.Text())

	require.NoError(t, e.Redo())
	require.Equal(t, "\tad", e.Text())
}

func TestLanguageReturnsConfiguredValue(t *testing.T) {
	lang := colorize.Go()
	e := New(WithLanguage(lang))
	require.Same(t, lang, e.Language())

	other := colorize.Go()
	e.SetLanguage(other)
	require.Same(t, other, e.Language())
}
