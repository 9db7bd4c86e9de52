package colorize

import (
	"strings"

	"github.com/dshills/quill/internal/engine/document"
)

// Set is a set of words.
type Set map[string]struct{}

// NewSet creates a set holding words.
func NewSet(words ...string) Set {
	s := make(Set, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

// Contains reports whether w is in the set.
func (s Set) Contains(w string) bool {
	_, ok := s[w]
	return ok
}

// lower returns a copy of s with every word lowercased.
func (s Set) lower() Set {
	out := make(Set, len(s))
	for w := range s {
		out[strings.ToLower(w)] = struct{}{}
	}
	return out
}

// Language describes how to tokenize one language. A Language is read-only
// once handed to a Colorizer.
type Language struct {
	// Name is the registry key, for example "go".
	Name string

	// Extensions lists file extensions including the leading dot.
	Extensions []string

	// SingleLineComments are markers that comment out the rest of a line.
	SingleLineComments []string

	// CommentStart and CommentEnd delimit block comments.
	CommentStart string
	CommentEnd   string

	// OtherStringStart/End and OtherStringAltStart/End delimit
	// language-specific strings such as raw or triple-quoted strings.
	OtherStringStart    string
	OtherStringEnd      string
	OtherStringAltStart string
	OtherStringAltEnd   string

	HasSingleQuotedStrings bool
	HasDoubleQuotedStrings bool

	// StringEscape makes the following glyph part of a quoted string.
	// OtherStringEscape does the same for other strings. Zero disables
	// escaping.
	StringEscape      rune
	OtherStringEscape rune

	// Preprocessor, when non-zero and the first non-blank glyph on a line,
	// colors the whole line as a preprocessor directive.
	Preprocessor rune

	// CaseSensitive controls keyword matching. Sets of case-insensitive
	// languages are matched against the lowercased word.
	CaseSensitive bool

	Keywords     Set
	Declarations Set
	Identifiers  Set

	Tokenizer          Tokenizer
	IdentifierMatcher  IdentifierMatcher
	NumberMatcher      NumberMatcher
	PunctuationMatcher PunctuationMatcher
}

// Classify returns the color of an identifier.
func (l *Language) Classify(word string) document.Color {
	if !l.CaseSensitive {
		word = strings.ToLower(word)
	}
	switch {
	case l.Keywords.Contains(word):
		return document.ColorKeyword
	case l.Declarations.Contains(word):
		return document.ColorDeclaration
	case l.Identifiers.Contains(word):
		return document.ColorKnownIdentifier
	default:
		return document.ColorIdentifier
	}
}

// SingleLineComment returns the first single-line comment marker, or "".
func (l *Language) SingleLineComment() string {
	if len(l.SingleLineComments) == 0 {
		return ""
	}
	return l.SingleLineComments[0]
}

// normalized returns a copy whose sets are ready for matching.
func (l Language) normalized() *Language {
	if !l.CaseSensitive {
		l.Keywords = l.Keywords.lower()
		l.Declarations = l.Declarations.lower()
		l.Identifiers = l.Identifiers.lower()
	}
	if l.Tokenizer == nil {
		l.Tokenizer = NoTokenizer{}
	}
	if l.IdentifierMatcher == nil {
		l.IdentifierMatcher = CStyleIdentifiers{}
	}
	if l.NumberMatcher == nil {
		l.NumberMatcher = CStyleNumbers{}
	}
	if l.PunctuationMatcher == nil {
		l.PunctuationMatcher = CStylePunctuation{}
	}
	return &l
}
