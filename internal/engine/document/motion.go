package document

// Up returns the coordinate lines above from, keeping the column.
func (d *Document) Up(from Coordinate, lines int) Coordinate {
	return d.NormalizeCoordinate(Coordinate{Line: max(from.Line-lines, 0), Column: from.Column})
}

// Down returns the coordinate lines below from, keeping the column.
func (d *Document) Down(from Coordinate, lines int) Coordinate {
	return d.NormalizeCoordinate(Coordinate{Line: min(from.Line+lines, len(d.lines)-1), Column: from.Column})
}

// Left returns the coordinate one glyph (or one word in word mode) before
// from. At the start of a line it wraps to the end of the previous line; at
// the start of the document it returns from unchanged.
func (d *Document) Left(from Coordinate, wordMode bool) Coordinate {
	if from.Column == 0 {
		if from.Line == 0 {
			return from
		}
		return Coordinate{Line: from.Line - 1, Column: d.lines[from.Line-1].MaxColumn}
	}

	glyphs := d.lines[from.Line].Glyphs
	index := d.Index(from.Line, from.Column)
	if !wordMode {
		return Coordinate{Line: from.Line, Column: d.Column(from.Line, index-1)}
	}

	class := ClassOf(glyphs[index-1].Codepoint)
	for index > 0 && ClassOf(glyphs[index-1].Codepoint) == class {
		index--
	}
	return Coordinate{Line: from.Line, Column: d.Column(from.Line, index)}
}

// Right returns the coordinate one glyph (or one word in word mode) after
// from. At the end of a line it wraps to the start of the next line; at the
// end of the document it returns from unchanged.
func (d *Document) Right(from Coordinate, wordMode bool) Coordinate {
	line := d.lines[from.Line]
	index := d.Index(from.Line, from.Column)
	if index >= len(line.Glyphs) {
		if from.Line == len(d.lines)-1 {
			return Coordinate{Line: from.Line, Column: line.MaxColumn}
		}
		return Coordinate{Line: from.Line + 1}
	}

	if !wordMode {
		return Coordinate{Line: from.Line, Column: d.Column(from.Line, index+1)}
	}

	class := ClassOf(line.Glyphs[index].Codepoint)
	for index < len(line.Glyphs) && ClassOf(line.Glyphs[index].Codepoint) == class {
		index++
	}
	return Coordinate{Line: from.Line, Column: d.Column(from.Line, index)}
}

// LeftN applies Left n times.
func (d *Document) LeftN(from Coordinate, n int, wordMode bool) Coordinate {
	for ; n > 0; n-- {
		from = d.Left(from, wordMode)
	}
	return from
}

// RightN applies Right n times.
func (d *Document) RightN(from Coordinate, n int, wordMode bool) Coordinate {
	for ; n > 0; n-- {
		from = d.Right(from, wordMode)
	}
	return from
}

// Top returns the first coordinate of the document.
func (d *Document) Top() Coordinate {
	return Coordinate{}
}

// Bottom returns the last coordinate of the document.
func (d *Document) Bottom() Coordinate {
	return d.EndCoordinate()
}

// StartOfLine returns column 0 of from's line.
func (d *Document) StartOfLine(from Coordinate) Coordinate {
	return Coordinate{Line: from.Line}
}

// EndOfLine returns the last column of from's line.
func (d *Document) EndOfLine(from Coordinate) Coordinate {
	return Coordinate{Line: from.Line, Column: d.lines[from.Line].MaxColumn}
}

// FirstNonWhitespace returns the column of the first non-blank glyph on
// line, or the end of the line if it is blank.
func (d *Document) FirstNonWhitespace(line int) Coordinate {
	glyphs := d.lines[line].Glyphs
	index := 0
	for index < len(glyphs) && ClassOf(glyphs[index].Codepoint) == ClassWhitespace {
		index++
	}
	return Coordinate{Line: line, Column: d.Column(line, index)}
}

// StartOfWord returns the start of the run of same-class glyphs containing
// from.
func (d *Document) StartOfWord(from Coordinate) Coordinate {
	glyphs := d.lines[from.Line].Glyphs
	index := d.Index(from.Line, from.Column)
	if len(glyphs) == 0 {
		return Coordinate{Line: from.Line}
	}
	if index >= len(glyphs) {
		index = len(glyphs) - 1
	}

	class := ClassOf(glyphs[index].Codepoint)
	for index > 0 && ClassOf(glyphs[index-1].Codepoint) == class {
		index--
	}
	return Coordinate{Line: from.Line, Column: d.Column(from.Line, index)}
}

// EndOfWord returns the end of the run of same-class glyphs containing from.
func (d *Document) EndOfWord(from Coordinate) Coordinate {
	glyphs := d.lines[from.Line].Glyphs
	index := d.Index(from.Line, from.Column)
	if index >= len(glyphs) {
		return Coordinate{Line: from.Line, Column: d.lines[from.Line].MaxColumn}
	}

	class := ClassOf(glyphs[index].Codepoint)
	for index < len(glyphs) && ClassOf(glyphs[index].Codepoint) == class {
		index++
	}
	return Coordinate{Line: from.Line, Column: d.Column(from.Line, index)}
}

// IsWholeWord reports whether [start, end) is bounded by non-word glyphs
// or line edges on both sides.
func (d *Document) IsWholeWord(start, end Coordinate) bool {
	startGlyphs := d.lines[start.Line].Glyphs
	startIndex := d.Index(start.Line, start.Column)
	if startIndex > 0 && IsWordChar(startGlyphs[startIndex-1].Codepoint) {
		return false
	}

	endGlyphs := d.lines[end.Line].Glyphs
	endIndex := d.Index(end.Line, end.Column)
	if endIndex < len(endGlyphs) && IsWordChar(endGlyphs[endIndex].Codepoint) {
		return false
	}
	return true
}
