package bracket

import (
	"sort"

	"github.com/dshills/quill/internal/engine/document"
)

// Coordinate is an alias for document.Coordinate for convenience.
type Coordinate = document.Coordinate

// Pair is a bracket pair. Start and End are the positions of the opening
// and closing glyphs. In error entries the missing side is
// document.Invalid.
type Pair struct {
	OpenChar  rune
	Start     Coordinate
	CloseChar rune
	End       Coordinate
	Level     int
}

// Contains reports whether c lies after the opener and no later than the
// closer.
func (p Pair) Contains(c Coordinate) bool {
	return p.Start.Less(c) && !p.End.Less(c)
}

// Inner returns the range between the brackets.
func (p Pair) Inner() (start, end Coordinate) {
	return document.Coord(p.Start.Line, p.Start.Column+1), p.End
}

// Outer returns the range including the brackets.
func (p Pair) Outer() (start, end Coordinate) {
	return p.Start, document.Coord(p.End.Line, p.End.Column+1)
}

// IsCurly reports whether the pair is a {} pair.
func (p Pair) IsCurly() bool {
	return p.OpenChar == '{'
}

// position returns the first valid coordinate of p.
func (p Pair) position() Coordinate {
	if p.Start.IsValid() {
		return p.Start
	}
	return p.End
}

// IsOpener reports whether r opens a bracket pair.
func IsOpener(r rune) bool {
	return r == '(' || r == '[' || r == '{'
}

// IsCloser reports whether r closes a bracket pair.
func IsCloser(r rune) bool {
	return r == ')' || r == ']' || r == '}'
}

// Partner returns the bracket that pairs with r, or 0.
func Partner(r rune) rune {
	switch r {
	case '(':
		return ')'
	case ')':
		return '('
	case '[':
		return ']'
	case ']':
		return '['
	case '{':
		return '}'
	case '}':
		return '{'
	}
	return 0
}

// IsBracketCandidate reports whether g may take part in matching.
func IsBracketCandidate(g document.Glyph) bool {
	if g.Color != document.ColorPunctuation && !g.Color.IsBracketMatch() {
		return false
	}
	return IsOpener(g.Codepoint) || IsCloser(g.Codepoint)
}

// LevelColor returns the color of a bracket at nesting level.
func LevelColor(level int) document.Color {
	return document.ColorMatchingBracketLevel1 + document.Color(level%3)
}

// Bracketeer holds the bracket-pair index of one document.
type Bracketeer struct {
	pairs  []Pair
	errors []Pair
}

// New creates an empty Bracketeer.
func New() *Bracketeer {
	return &Bracketeer{}
}

type open struct {
	pair  int
	glyph *document.Glyph
}

// Update rebuilds the index from doc and recolors every bracket glyph.
func (b *Bracketeer) Update(doc *document.Document) {
	b.pairs = b.pairs[:0]
	b.errors = b.errors[:0]

	var stack []open
	discarded := make(map[int]bool)

	for n := 0; n < doc.LineCount(); n++ {
		glyphs := doc.Line(n).Glyphs
		for i := range glyphs {
			g := &glyphs[i]
			if !IsBracketCandidate(*g) {
				continue
			}
			pos := document.Coord(n, doc.Column(n, i))

			if IsOpener(g.Codepoint) {
				level := len(stack)
				g.Color = LevelColor(level)
				b.pairs = append(b.pairs, Pair{
					OpenChar: g.Codepoint,
					Start:    pos,
					End:      document.Invalid,
					Level:    level,
				})
				stack = append(stack, open{pair: len(b.pairs) - 1, glyph: g})
				continue
			}

			if len(stack) == 0 {
				g.Color = document.ColorMatchingBracketError
				b.errors = append(b.errors, Pair{Start: document.Invalid, CloseChar: g.Codepoint, End: pos})
				continue
			}

			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			p := &b.pairs[top.pair]
			p.CloseChar = g.Codepoint
			p.End = pos

			if Partner(g.Codepoint) == p.OpenChar {
				g.Color = LevelColor(p.Level)
			} else {
				g.Color = document.ColorMatchingBracketError
				top.glyph.Color = document.ColorMatchingBracketError
				b.errors = append(b.errors, *p)
				discarded[top.pair] = true
			}
		}
	}

	for _, o := range stack {
		o.glyph.Color = document.ColorMatchingBracketError
		b.errors = append(b.errors, b.pairs[o.pair])
		discarded[o.pair] = true
	}

	if len(discarded) > 0 {
		kept := b.pairs[:0]
		for i, p := range b.pairs {
			if !discarded[i] {
				kept = append(kept, p)
			}
		}
		b.pairs = kept
	}

	sort.SliceStable(b.errors, func(i, j int) bool {
		return b.errors[i].position().Less(b.errors[j].position())
	})
}

// Reset clears the index.
func (b *Bracketeer) Reset() {
	b.pairs = nil
	b.errors = nil
}

// Pairs returns the matched pairs sorted by Start. The slice must not be
// modified.
func (b *Bracketeer) Pairs() []Pair {
	return b.pairs
}

// Errors returns mismatched pairs and unmatched brackets sorted by
// position.
func (b *Bracketeer) Errors() []Pair {
	return b.errors
}

// Len returns the number of matched pairs.
func (b *Bracketeer) Len() int {
	return len(b.pairs)
}

// PairAt returns the pair whose opener or closer is at c.
func (b *Bracketeer) PairAt(c Coordinate) (Pair, bool) {
	for _, p := range b.pairs {
		if p.Start == c || p.End == c {
			return p, true
		}
		if c.Less(p.Start) {
			break
		}
	}
	return Pair{}, false
}

// FindEnclosingBrackets returns the innermost pair containing c.
func (b *Bracketeer) FindEnclosingBrackets(c Coordinate) (Pair, bool) {
	var (
		found Pair
		ok    bool
	)
	for _, p := range b.pairs {
		if !p.Start.Less(c) {
			break
		}
		if p.Contains(c) {
			found, ok = p, true
		}
	}
	return found, ok
}

// FindEnclosingCurlyBrackets returns the innermost {} pair whose opener
// precedes start and whose closer is at or after end.
func (b *Bracketeer) FindEnclosingCurlyBrackets(start, end Coordinate) (Pair, bool) {
	var (
		found Pair
		ok    bool
	)
	for _, p := range b.pairs {
		if !p.Start.Less(start) {
			break
		}
		if p.IsCurly() && !p.End.Less(end) {
			found, ok = p, true
		}
	}
	return found, ok
}

// FindInnerCurlyBrackets returns the first {} pair lying entirely inside
// [start, end).
func (b *Bracketeer) FindInnerCurlyBrackets(start, end Coordinate) (Pair, bool) {
	for _, p := range b.pairs {
		if !p.Start.Less(end) {
			break
		}
		if p.IsCurly() && !p.Start.Less(start) && p.End.Less(end) {
			return p, true
		}
	}
	return Pair{}, false
}
