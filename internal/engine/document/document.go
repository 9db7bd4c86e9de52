package document

import (
	"strings"
	"unicode/utf8"
)

// DefaultTabSize is the tab size used when none is configured.
const DefaultTabSize = 4

const byteOrderMark = '\uFEFF'

// Document is an ordered sequence of lines. It always holds at least one
// line; an empty document is a single empty line.
type Document struct {
	lines   []*Line
	tabSize int
}

// New creates an empty document with the given tab size.
func New(tabSize int) *Document {
	if tabSize <= 0 {
		tabSize = DefaultTabSize
	}
	return &Document{
		lines:   []*Line{{Colorize: true}},
		tabSize: tabSize,
	}
}

// NewFromString creates a document holding text.
func NewFromString(text string, tabSize int) *Document {
	d := New(tabSize)
	d.SetText(text)
	return d
}

// TabSize returns the tab size.
func (d *Document) TabSize() int {
	return d.tabSize
}

// SetTabSize changes the tab size and recomputes every line width.
func (d *Document) SetTabSize(tabSize int) {
	if tabSize <= 0 {
		tabSize = DefaultTabSize
	}
	d.tabSize = tabSize
	d.UpdateMaxColumns(0, len(d.lines)-1)
}

// LineCount returns the number of lines.
func (d *Document) LineCount() int {
	return len(d.lines)
}

// Line returns line n. The returned line is owned by the document.
func (d *Document) Line(n int) *Line {
	return d.lines[n]
}

// LineMaxColumn returns the visible width of line n.
func (d *Document) LineMaxColumn(n int) int {
	return d.lines[n].MaxColumn
}

// MaxColumn returns the width of the widest line.
func (d *Document) MaxColumn() int {
	width := 0
	for _, l := range d.lines {
		if l.MaxColumn > width {
			width = l.MaxColumn
		}
	}
	return width
}

// IsEmpty reports whether the document holds no glyphs at all.
func (d *Document) IsEmpty() bool {
	return len(d.lines) == 1 && len(d.lines[0].Glyphs) == 0
}

// EndCoordinate returns the position after the last glyph.
func (d *Document) EndCoordinate() Coordinate {
	last := len(d.lines) - 1
	return Coordinate{Line: last, Column: d.lines[last].MaxColumn}
}

// SetText replaces the whole content. A leading byte order mark is skipped
// and carriage returns are dropped. Every line is marked for colorizing.
func (d *Document) SetText(text string) {
	text = strings.TrimPrefix(text, string(byteOrderMark))

	d.lines = d.lines[:0]
	line := &Line{Colorize: true}
	for _, r := range text {
		switch r {
		case '\r':
		case '\n':
			d.lines = append(d.lines, line)
			line = &Line{Colorize: true}
		default:
			line.Glyphs = append(line.Glyphs, Glyph{Codepoint: r})
		}
	}
	d.lines = append(d.lines, line)
	d.UpdateMaxColumns(0, len(d.lines)-1)
}

// Text returns the whole document as UTF-8 with '\n' between lines.
func (d *Document) Text() string {
	return d.SectionText(Coordinate{}, d.EndCoordinate())
}

// LineText returns line n as UTF-8.
func (d *Document) LineText(n int) string {
	var b strings.Builder
	for _, g := range d.lines[n].Glyphs {
		b.WriteRune(g.Codepoint)
	}
	return b.String()
}

// SectionText returns the text in the half-open range [start, end).
func (d *Document) SectionText(start, end Coordinate) string {
	var b strings.Builder
	index := d.Index(start.Line, start.Column)
	endIndex := d.Index(end.Line, end.Column)

	for line := start.Line; line <= end.Line && line < len(d.lines); line++ {
		glyphs := d.lines[line].Glyphs
		stop := len(glyphs)
		if line == end.Line {
			stop = min(endIndex, len(glyphs))
		}
		for ; index < stop; index++ {
			b.WriteRune(glyphs[index].Codepoint)
		}
		if line < end.Line {
			b.WriteByte('\n')
		}
		index = 0
	}
	return b.String()
}

// InsertText inserts text at start and returns the coordinate immediately
// after it. Lines are split on '\n'; '\r' is dropped. Every line spanned by
// the insertion is marked for colorizing. Cursors are not touched.
func (d *Document) InsertText(start Coordinate, text string) Coordinate {
	segments := splitGlyphs(text)

	lineNo := start.Line
	line := d.lines[lineNo]
	index := d.Index(lineNo, start.Column)

	if len(segments) == 1 {
		line.Glyphs = insertGlyphs(line.Glyphs, index, segments[0])
		line.Colorize = true
		d.UpdateMaxColumns(lineNo, lineNo)
		return Coordinate{Line: lineNo, Column: d.Column(lineNo, index+len(segments[0]))}
	}

	tail := append([]Glyph(nil), line.Glyphs[index:]...)
	line.Glyphs = append(line.Glyphs[:index], segments[0]...)
	line.Colorize = true

	added := make([]*Line, 0, len(segments)-1)
	for _, seg := range segments[1:] {
		added = append(added, &Line{Glyphs: seg, State: line.State, Colorize: true})
	}
	last := added[len(added)-1]
	endIndex := len(last.Glyphs)
	last.Glyphs = append(last.Glyphs, tail...)

	d.lines = insertLines(d.lines, lineNo+1, added)
	endLine := lineNo + len(added)
	d.UpdateMaxColumns(lineNo, endLine)

	return Coordinate{Line: endLine, Column: d.Column(endLine, endIndex)}
}

// DeleteText removes the half-open range [start, end). end must not precede
// start. Deleting across lines joins the tail of the last line onto the
// first and removes the lines in between.
func (d *Document) DeleteText(start, end Coordinate) {
	startIndex := d.Index(start.Line, start.Column)
	endIndex := d.Index(end.Line, end.Column)
	first := d.lines[start.Line]

	if start.Line == end.Line {
		first.Glyphs = append(first.Glyphs[:startIndex], first.Glyphs[endIndex:]...)
	} else {
		tail := d.lines[end.Line].Glyphs[endIndex:]
		first.Glyphs = append(first.Glyphs[:startIndex], tail...)
		d.lines = append(d.lines[:start.Line+1], d.lines[end.Line+1:]...)
	}

	first.Colorize = true
	d.UpdateMaxColumns(start.Line, start.Line)
}

// UpdateMaxColumns recomputes MaxColumn for lines first through last.
func (d *Document) UpdateMaxColumns(first, last int) {
	last = min(last, len(d.lines)-1)
	for n := max(first, 0); n <= last; n++ {
		d.lines[n].MaxColumn = d.Column(n, len(d.lines[n].Glyphs))
	}
}

// MarkDirty flags lines first through last for colorizing.
func (d *Document) MarkDirty(first, last int) {
	last = min(last, len(d.lines)-1)
	for n := max(first, 0); n <= last; n++ {
		d.lines[n].Colorize = true
	}
}

// SetMarker attaches a 1-based external marker key to line n.
func (d *Document) SetMarker(n, marker int) {
	d.lines[n].Marker = marker
}

// ClearMarkers removes all markers.
func (d *Document) ClearMarkers() {
	for _, l := range d.lines {
		l.Marker = 0
	}
}

// Index maps a visible column on line to a glyph index. A column inside a
// tab maps to the index of that tab. Columns past the end map to the line
// length.
func (d *Document) Index(line, column int) int {
	glyphs := d.lines[line].Glyphs
	col := 0
	for i, g := range glyphs {
		next := d.advance(col, g.Codepoint)
		if next > column {
			return i
		}
		col = next
	}
	return len(glyphs)
}

// Column maps a glyph index on line to its visible column.
func (d *Document) Column(line, index int) int {
	glyphs := d.lines[line].Glyphs
	index = min(index, len(glyphs))
	col := 0
	for i := 0; i < index; i++ {
		col = d.advance(col, glyphs[i].Codepoint)
	}
	return col
}

// IndexOf is Index for a coordinate.
func (d *Document) IndexOf(c Coordinate) int {
	return d.Index(c.Line, c.Column)
}

func (d *Document) advance(col int, r rune) int {
	if r == '\t' {
		return (col/d.tabSize)*d.tabSize + d.tabSize
	}
	return col + 1
}

// NormalizeCoordinate clamps c into the document and snaps its column to a
// glyph boundary.
func (d *Document) NormalizeCoordinate(c Coordinate) Coordinate {
	line := min(max(c.Line, 0), len(d.lines)-1)
	column := min(max(c.Column, 0), d.lines[line].MaxColumn)
	return Coordinate{Line: line, Column: d.Column(line, d.Index(line, column))}
}

// GlyphAt returns the glyph at c, if any.
func (d *Document) GlyphAt(c Coordinate) (Glyph, bool) {
	if c.Line < 0 || c.Line >= len(d.lines) {
		return Glyph{}, false
	}
	glyphs := d.lines[c.Line].Glyphs
	index := d.Index(c.Line, c.Column)
	if index >= len(glyphs) {
		return Glyph{}, false
	}
	return glyphs[index], true
}

// splitGlyphs decodes text into one glyph slice per line.
func splitGlyphs(text string) [][]Glyph {
	segments := [][]Glyph{nil}
	for len(text) > 0 {
		r, size := utf8.DecodeRuneInString(text)
		text = text[size:]
		switch r {
		case '\r':
		case '\n':
			segments = append(segments, nil)
		default:
			last := len(segments) - 1
			segments[last] = append(segments[last], Glyph{Codepoint: r})
		}
	}
	return segments
}

func insertGlyphs(glyphs []Glyph, index int, add []Glyph) []Glyph {
	if len(add) == 0 {
		return glyphs
	}
	out := make([]Glyph, 0, len(glyphs)+len(add))
	out = append(out, glyphs[:index]...)
	out = append(out, add...)
	return append(out, glyphs[index:]...)
}

func insertLines(lines []*Line, at int, add []*Line) []*Line {
	out := make([]*Line, 0, len(lines)+len(add))
	out = append(out, lines[:at]...)
	out = append(out, add...)
	return append(out, lines[at:]...)
}
