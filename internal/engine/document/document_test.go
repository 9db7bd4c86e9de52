package document

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestNewDocument(t *testing.T) {
	d := New(4)

	require.Equal(t, 1, d.LineCount())
	require.True(t, d.IsEmpty())
	require.Equal(t, "", d.Text())
}

func TestSetText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		lines int
	}{
		{"empty", "", "", 1},
		{"single", "hello", "hello", 1},
		{"multi", "a\nb\nc", "a\nb\nc", 3},
		{"crlf", "a\r\nb", "a\nb", 2},
		{"bom", "\uFEFFabc", "abc", 1},
		{"trailing newline", "a\n", "a\n", 2},
		{"unicode", "héllo\n世界", "héllo\n世界", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewFromString(tt.input, 4)
			require.Equal(t, tt.want, d.Text())
			require.Equal(t, tt.lines, d.LineCount())
			for i := 0; i < d.LineCount(); i++ {
				require.True(t, d.Line(i).Colorize, "line %d should be dirty", i)
			}
		})
	}
}

func TestSetTextRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		text := rapid.StringMatching(`[a-z \t{}()"'/*\n]{0,60}`).Draw(t, "text")
		d := NewFromString(text, 4)
		if got := d.Text(); got != text {
			t.Fatalf("round trip: got %q, want %q", got, text)
		}
	})
}

func TestMaxColumnTabs(t *testing.T) {
	d := NewFromString("\tab\na\tb\n\t\t", 4)

	require.Equal(t, 6, d.LineMaxColumn(0))
	require.Equal(t, 5, d.LineMaxColumn(1))
	require.Equal(t, 8, d.LineMaxColumn(2))
	require.Equal(t, 8, d.MaxColumn())
}

func TestIndexColumn(t *testing.T) {
	d := NewFromString("a\tbc", 4)

	tests := []struct {
		column int
		index  int
	}{
		{0, 0},
		{1, 1},
		{2, 1}, // inside the tab
		{3, 1},
		{4, 2},
		{5, 3},
		{6, 4},
		{99, 4},
	}
	for _, tt := range tests {
		require.Equal(t, tt.index, d.Index(0, tt.column), "column %d", tt.column)
	}

	require.Equal(t, 0, d.Column(0, 0))
	require.Equal(t, 1, d.Column(0, 1))
	require.Equal(t, 4, d.Column(0, 2))
	require.Equal(t, 6, d.Column(0, 4))
}

func TestIndexColumnInverse(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		line := rapid.StringMatching(`[ab\t]{0,20}`).Draw(t, "line")
		tabSize := rapid.IntRange(1, 8).Draw(t, "tabSize")
		d := NewFromString(line, tabSize)

		for index := 0; index <= d.Line(0).Len(); index++ {
			column := d.Column(0, index)
			if got := d.Index(0, column); got != index {
				t.Fatalf("Index(Column(%d)=%d) = %d", index, column, got)
			}
		}
		for column := 0; column <= d.LineMaxColumn(0); column++ {
			snapped := d.Column(0, d.Index(0, column))
			if snapped > column {
				t.Fatalf("column %d snapped forward to %d", column, snapped)
			}
		}
	})
}

func TestInsertText(t *testing.T) {
	tests := []struct {
		name    string
		initial string
		at      Coordinate
		insert  string
		want    string
		end     Coordinate
	}{
		{"into empty", "", Coord(0, 0), "X", "X", Coord(0, 1)},
		{"middle", "hello", Coord(0, 2), "XY", "heXYllo", Coord(0, 4)},
		{"newline", "hello", Coord(0, 2), "\n", "he\nllo", Coord(1, 0)},
		{"multi line", "ab", Coord(0, 1), "1\n2\n3", "a1\n2\n3b", Coord(2, 1)},
		{"drops carriage return", "ab", Coord(0, 1), "x\r\ny", "ax\nyb", Coord(1, 1)},
		{"after tab", "\tb", Coord(0, 4), "a", "\tab", Coord(0, 5)},
		{"empty text", "ab", Coord(0, 1), "", "ab", Coord(0, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewFromString(tt.initial, 4)
			clearDirty(d)

			end := d.InsertText(tt.at, tt.insert)

			require.Equal(t, tt.want, d.Text())
			require.Equal(t, tt.end, end)
			for line := tt.at.Line; line <= end.Line; line++ {
				require.True(t, d.Line(line).Colorize)
			}
			assertMaxColumns(t, d)
		})
	}
}

func TestDeleteText(t *testing.T) {
	tests := []struct {
		name    string
		initial string
		start   Coordinate
		end     Coordinate
		want    string
	}{
		{"same line", "hello", Coord(0, 1), Coord(0, 3), "hlo"},
		{"across lines", "ab\ncd", Coord(0, 1), Coord(1, 1), "ad"},
		{"join lines", "ab\ncd", Coord(0, 2), Coord(1, 0), "abcd"},
		{"remove middle lines", "a\nb\nc\nd", Coord(0, 1), Coord(3, 0), "ad"},
		{"everything", "a\nb", Coord(0, 0), Coord(1, 1), ""},
		{"empty range", "abc", Coord(0, 1), Coord(0, 1), "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewFromString(tt.initial, 4)
			clearDirty(d)

			d.DeleteText(tt.start, tt.end)

			require.Equal(t, tt.want, d.Text())
			require.True(t, d.Line(tt.start.Line).Colorize)
			assertMaxColumns(t, d)
		})
	}
}

func TestSectionText(t *testing.T) {
	d := NewFromString("one\ntwo\nthree", 4)

	require.Equal(t, "ne\ntw", d.SectionText(Coord(0, 1), Coord(1, 2)))
	require.Equal(t, "two", d.LineText(1))
	require.Equal(t, "", d.SectionText(Coord(2, 2), Coord(2, 2)))
	require.Equal(t, "one\ntwo\nthree", d.SectionText(Coord(0, 0), d.EndCoordinate()))
}

func TestNormalizeCoordinate(t *testing.T) {
	d := NewFromString("ab\n\tx", 4)

	tests := []struct {
		in   Coordinate
		want Coordinate
	}{
		{Coord(-1, -5), Coord(0, 0)},
		{Coord(0, 10), Coord(0, 2)},
		{Coord(5, 0), Coord(1, 0)},
		{Coord(1, 2), Coord(1, 0)},
		{Coord(1, 4), Coord(1, 4)},
		{Coord(1, 99), Coord(1, 5)},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, d.NormalizeCoordinate(tt.in), "input %v", tt.in)
	}
}

func TestMarkers(t *testing.T) {
	d := NewFromString("a\nb", 4)
	d.SetMarker(1, 3)
	require.Equal(t, 3, d.Line(1).Marker)

	d.ClearMarkers()
	require.Equal(t, 0, d.Line(1).Marker)
}

func TestGlyphAt(t *testing.T) {
	d := NewFromString("ab", 4)

	g, ok := d.GlyphAt(Coord(0, 1))
	require.True(t, ok)
	require.Equal(t, 'b', g.Codepoint)

	_, ok = d.GlyphAt(Coord(0, 2))
	require.False(t, ok)
	_, ok = d.GlyphAt(Coord(3, 0))
	require.False(t, ok)
}

func TestSetTabSize(t *testing.T) {
	d := NewFromString("\tx", 4)
	d.SetTabSize(8)
	require.Equal(t, 9, d.LineMaxColumn(0))
}

func clearDirty(d *Document) {
	for i := 0; i < d.LineCount(); i++ {
		d.Line(i).Colorize = false
	}
}

func assertMaxColumns(t *testing.T, d *Document) {
	t.Helper()
	for i := 0; i < d.LineCount(); i++ {
		require.Equal(t, d.Column(i, d.Line(i).Len()), d.LineMaxColumn(i), "line %d", i)
	}
}

func TestInsertDeleteInverse(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		text := rapid.StringMatching(`[a-c\n]{0,30}`).Draw(t, "text")
		d := NewFromString(text, 4)

		line := rapid.IntRange(0, d.LineCount()-1).Draw(t, "line")
		column := rapid.IntRange(0, d.LineMaxColumn(line)).Draw(t, "column")
		insert := rapid.StringMatching(`[x\n]{0,6}`).Draw(t, "insert")

		start := d.NormalizeCoordinate(Coord(line, column))
		end := d.InsertText(start, insert)
		if got := d.SectionText(start, end); got != insert {
			t.Fatalf("inserted %q, section reads %q", insert, got)
		}
		d.DeleteText(start, end)
		if got := d.Text(); got != text {
			t.Fatalf("after delete got %q, want %q", got, text)
		}
		if strings.Count(d.Text(), "\n")+1 != d.LineCount() {
			t.Fatalf("line count mismatch")
		}
	})
}
