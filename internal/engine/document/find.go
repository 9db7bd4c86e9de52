package document

import "unicode"

// FindText searches forward from from for text, wrapping to the start of
// the document. A '\n' in text matches a line break. With wholeWord set the
// glyphs adjacent to a match must not be word characters. It returns the
// half-open range of the match.
func (d *Document) FindText(from Coordinate, text string, caseSensitive, wholeWord bool) (start, end Coordinate, ok bool) {
	pattern := splitGlyphs(text)
	if len(pattern) == 1 && len(pattern[0]) == 0 {
		return Invalid, Invalid, false
	}

	fromIndex := d.Index(from.Line, from.Column)
	n := len(d.lines)
	for step := 0; step <= n; step++ {
		line := (from.Line + step) % n
		first, last := 0, len(d.lines[line].Glyphs)
		switch step {
		case 0:
			first = fromIndex
		case n:
			last = fromIndex - 1
		}

		for index := first; index <= last; index++ {
			endLine, endIndex, matched := d.matchAt(line, index, pattern, caseSensitive)
			if !matched {
				continue
			}
			start = Coordinate{Line: line, Column: d.Column(line, index)}
			end = Coordinate{Line: endLine, Column: d.Column(endLine, endIndex)}
			if wholeWord && !d.IsWholeWord(start, end) {
				continue
			}
			return start, end, true
		}
	}
	return Invalid, Invalid, false
}

// FindAll returns every non-overlapping match of text in document order.
func (d *Document) FindAll(text string, caseSensitive, wholeWord bool) [][2]Coordinate {
	var matches [][2]Coordinate
	pos := Coordinate{}
	for {
		start, end, ok := d.FindText(pos, text, caseSensitive, wholeWord)
		if !ok || start.Less(pos) || (len(matches) > 0 && start == matches[0][0]) {
			return matches
		}
		matches = append(matches, [2]Coordinate{start, end})
		pos = end
		if end == start {
			return matches
		}
	}
}

// matchAt reports whether pattern occurs at glyph index on line. pattern
// holds one glyph run per line of the search text.
func (d *Document) matchAt(line, index int, pattern [][]Glyph, caseSensitive bool) (endLine, endIndex int, ok bool) {
	for i, seg := range pattern {
		if line >= len(d.lines) {
			return 0, 0, false
		}
		glyphs := d.lines[line].Glyphs
		if index+len(seg) > len(glyphs) {
			return 0, 0, false
		}
		for j, g := range seg {
			if !sameRune(glyphs[index+j].Codepoint, g.Codepoint, caseSensitive) {
				return 0, 0, false
			}
		}
		index += len(seg)

		if i < len(pattern)-1 {
			// The segment must run to the end of the line to match a break.
			if index != len(glyphs) {
				return 0, 0, false
			}
			line++
			index = 0
		}
	}
	return line, index, true
}

func sameRune(a, b rune, caseSensitive bool) bool {
	if caseSensitive {
		return a == b
	}
	return a == b || unicode.ToLower(a) == unicode.ToLower(b)
}
