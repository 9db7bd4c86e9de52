package document

import "unicode"

// Color is the syntax-highlight class of a glyph.
type Color uint8

// Glyph colors. ColorText is the zero value.
const (
	ColorText Color = iota
	ColorKeyword
	ColorDeclaration
	ColorIdentifier
	ColorKnownIdentifier
	ColorNumber
	ColorString
	ColorPunctuation
	ColorPreprocessor
	ColorComment
	ColorMatchingBracketLevel1
	ColorMatchingBracketLevel2
	ColorMatchingBracketLevel3
	ColorMatchingBracketError

	colorCount
)

// ColorCount is the number of distinct glyph colors.
const ColorCount = int(colorCount)

var colorNames = [...]string{
	ColorText:                  "text",
	ColorKeyword:               "keyword",
	ColorDeclaration:           "declaration",
	ColorIdentifier:            "identifier",
	ColorKnownIdentifier:       "knownIdentifier",
	ColorNumber:                "number",
	ColorString:                "string",
	ColorPunctuation:           "punctuation",
	ColorPreprocessor:          "preprocessor",
	ColorComment:               "comment",
	ColorMatchingBracketLevel1: "matchingBracketLevel1",
	ColorMatchingBracketLevel2: "matchingBracketLevel2",
	ColorMatchingBracketLevel3: "matchingBracketLevel3",
	ColorMatchingBracketError:  "matchingBracketError",
}

// String returns the color name.
func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "unknown"
}

// ParseColor returns the color with the given name.
func ParseColor(name string) (Color, bool) {
	for c, n := range colorNames {
		if n == name {
			return Color(c), true
		}
	}
	return ColorText, false
}

// IsBracketMatch reports whether c is one of the bracket level/error colors.
func (c Color) IsBracketMatch() bool {
	return c >= ColorMatchingBracketLevel1 && c <= ColorMatchingBracketError
}

// State is the tokenizer state at a line boundary.
type State uint8

// Tokenizer states.
const (
	StateInText State = iota
	StateInComment
	StateInSingleQuotedString
	StateInDoubleQuotedString
	StateInOtherString
	StateInOtherStringAlt
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateInText:
		return "inText"
	case StateInComment:
		return "inComment"
	case StateInSingleQuotedString:
		return "inSingleQuotedString"
	case StateInDoubleQuotedString:
		return "inDoubleQuotedString"
	case StateInOtherString:
		return "inOtherString"
	case StateInOtherStringAlt:
		return "inOtherStringAlt"
	default:
		return "unknown"
	}
}

// Glyph is a codepoint plus its current color.
type Glyph struct {
	Codepoint rune
	Color     Color
}

// Line is one line of a Document.
type Line struct {
	// Glyphs holds the content of the line.
	Glyphs []Glyph

	// MaxColumn is the tab-expanded width of Glyphs.
	MaxColumn int

	// State is the tokenizer state carried in from the previous line.
	State State

	// Colorize is set when the line needs to be re-tokenized.
	Colorize bool

	// Marker is a 1-based key into an external marker list. 0 means none.
	Marker int
}

// Runes returns the codepoints of the line.
func (l *Line) Runes() []rune {
	runes := make([]rune, len(l.Glyphs))
	for i, g := range l.Glyphs {
		runes[i] = g.Codepoint
	}
	return runes
}

// Len returns the number of glyphs on the line.
func (l *Line) Len() int {
	return len(l.Glyphs)
}

// CharClass partitions codepoints for word-wise motion.
type CharClass uint8

// Character classes.
const (
	ClassWhitespace CharClass = iota
	ClassWord
	ClassOther
)

// ClassOf returns the class of r.
func ClassOf(r rune) CharClass {
	switch {
	case unicode.IsSpace(r):
		return ClassWhitespace
	case IsWordChar(r):
		return ClassWord
	default:
		return ClassOther
	}
}

// IsWordChar reports whether r is a letter or digit.
func IsWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
