package colorize

import (
	"unicode"

	"github.com/dshills/quill/internal/engine/document"
)

// Colorizer tokenizes document lines for one Language.
type Colorizer struct {
	lang *Language
}

// New creates a colorizer for lang. A nil lang colors everything as text.
func New(lang *Language) *Colorizer {
	c := &Colorizer{}
	c.SetLanguage(lang)
	return c
}

// SetLanguage switches the language. Callers must run UpdateEntireDocument
// afterwards.
func (c *Colorizer) SetLanguage(lang *Language) {
	if lang == nil {
		c.lang = nil
		return
	}
	c.lang = lang.normalized()
}

// Language returns the active language, or nil.
func (c *Colorizer) Language() *Language {
	return c.lang
}

// UpdateEntireDocument colors every line from the top, propagating state.
func (c *Colorizer) UpdateEntireDocument(doc *document.Document) {
	state := document.StateInText
	for n := 0; n < doc.LineCount(); n++ {
		state = c.ColorizeLine(doc.Line(n), state)
	}
}

// UpdateChangedLines colors every line marked dirty. When a line ends in a
// different state than the next line starts with, the next line is marked
// dirty too, so a change cascades until the state settles.
func (c *Colorizer) UpdateChangedLines(doc *document.Document) {
	count := doc.LineCount()
	for n := 0; n < count; n++ {
		line := doc.Line(n)
		if !line.Colorize {
			continue
		}

		in := line.State
		if n == 0 {
			in = document.StateInText
		}
		out := c.ColorizeLine(line, in)

		if n+1 < count {
			next := doc.Line(n + 1)
			if next.State != out {
				next.State = out
				next.Colorize = true
			}
		}
	}
}

// ColorizeLine colors line starting in state in, stores in as the line's
// incoming state, clears its dirty flag and returns the outgoing state.
func (c *Colorizer) ColorizeLine(line *document.Line, in document.State) document.State {
	line.State = in
	line.Colorize = false

	if c.lang == nil {
		for i := range line.Glyphs {
			line.Glyphs[i].Color = document.ColorText
		}
		return document.StateInText
	}

	t := tokenizer{lang: c.lang, glyphs: line.Glyphs, runes: line.Runes()}
	state := in
	i := 0
	for i < len(t.runes) {
		switch state {
		case document.StateInText:
			i, state = t.text(i)
		case document.StateInComment:
			i, state = t.delimited(i, state, c.lang.CommentEnd, 0, document.ColorComment)
		case document.StateInSingleQuotedString:
			i, state = t.delimited(i, state, "'", c.lang.StringEscape, document.ColorString)
		case document.StateInDoubleQuotedString:
			i, state = t.delimited(i, state, `"`, c.lang.StringEscape, document.ColorString)
		case document.StateInOtherString:
			i, state = t.delimited(i, state, c.lang.OtherStringEnd, c.lang.OtherStringEscape, document.ColorString)
		case document.StateInOtherStringAlt:
			i, state = t.delimited(i, state, c.lang.OtherStringAltEnd, c.lang.OtherStringEscape, document.ColorString)
		default:
			state = document.StateInText
		}
	}
	return state
}

// tokenizer holds one line while it is being colored.
type tokenizer struct {
	lang   *Language
	glyphs []document.Glyph
	runes  []rune
}

func (t *tokenizer) paint(from, to int, color document.Color) {
	for i := from; i < to && i < len(t.glyphs); i++ {
		t.glyphs[i].Color = color
	}
}

func (t *tokenizer) hasPrefix(i int, s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if i >= len(t.runes) || t.runes[i] != r {
			return false
		}
		i++
	}
	return true
}

// atLineStart reports whether only whitespace precedes index i.
func (t *tokenizer) atLineStart(i int) bool {
	for _, r := range t.runes[:i] {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// text consumes one token in the inText state.
func (t *tokenizer) text(i int) (int, document.State) {
	lang := t.lang
	n := len(t.runes)
	r := t.runes[i]

	if unicode.IsSpace(r) {
		t.paint(i, i+1, document.ColorText)
		return i + 1, document.StateInText
	}

	block := t.hasPrefix(i, lang.CommentStart)
	for _, marker := range lang.SingleLineComments {
		// A block opener that extends the marker, like Lua's "--[[", wins.
		if t.hasPrefix(i, marker) && !(block && len(lang.CommentStart) > len(marker)) {
			t.paint(i, n, document.ColorComment)
			return n, document.StateInText
		}
	}

	if tok := t.open(i); tok.size > 0 {
		t.paint(i, i+tok.size, tok.color)
		return i + tok.size, tok.state
	}

	if lang.Preprocessor != 0 && r == lang.Preprocessor && t.atLineStart(i) {
		t.paint(i, n, document.ColorPreprocessor)
		return n, document.StateInText
	}

	if size, color := lang.Tokenizer.Token(t.runes, i); size > 0 {
		t.paint(i, i+size, color)
		return i + size, document.StateInText
	}

	if size := lang.IdentifierMatcher.Identifier(t.runes, i); size > 0 {
		t.paint(i, i+size, lang.Classify(string(t.runes[i:i+size])))
		return i + size, document.StateInText
	}

	if size := lang.NumberMatcher.Number(t.runes, i); size > 0 {
		t.paint(i, i+size, document.ColorNumber)
		return i + size, document.StateInText
	}

	if lang.PunctuationMatcher.IsPunctuation(r) {
		t.paint(i, i+1, document.ColorPunctuation)
	} else {
		t.paint(i, i+1, document.ColorText)
	}
	return i + 1, document.StateInText
}

type openToken struct {
	size  int
	color document.Color
	state document.State
}

// open checks the comment and string openers in precedence order.
func (t *tokenizer) open(i int) openToken {
	lang := t.lang
	switch {
	case t.hasPrefix(i, lang.CommentStart):
		return openToken{runeLen(lang.CommentStart), document.ColorComment, document.StateInComment}
	case t.hasPrefix(i, lang.OtherStringStart):
		return openToken{runeLen(lang.OtherStringStart), document.ColorString, document.StateInOtherString}
	case t.hasPrefix(i, lang.OtherStringAltStart):
		return openToken{runeLen(lang.OtherStringAltStart), document.ColorString, document.StateInOtherStringAlt}
	case lang.HasSingleQuotedStrings && t.runes[i] == '\'':
		return openToken{1, document.ColorString, document.StateInSingleQuotedString}
	case lang.HasDoubleQuotedStrings && t.runes[i] == '"':
		return openToken{1, document.ColorString, document.StateInDoubleQuotedString}
	}
	return openToken{}
}

// delimited consumes glyphs verbatim in color until end is found. An escape
// glyph takes the following glyph with it. Reaching the end of the line
// keeps state so it carries into the next line.
func (t *tokenizer) delimited(i int, state document.State, end string, escape rune, color document.Color) (int, document.State) {
	n := len(t.runes)
	for i < n {
		if escape != 0 && t.runes[i] == escape {
			t.paint(i, i+2, color)
			i += 2
			continue
		}
		if t.hasPrefix(i, end) {
			size := runeLen(end)
			t.paint(i, i+size, color)
			return i + size, document.StateInText
		}
		t.paint(i, i+1, color)
		i++
	}
	return n, state
}

func runeLen(s string) int {
	return len([]rune(s))
}
