package colorize

import (
	"unicode"

	"github.com/dshills/quill/internal/engine/document"
)

// Tokenizer is a language hook that recognizes a custom token at
// line[start]. It returns the token length and color, or n == 0 when no
// token starts there.
type Tokenizer interface {
	Token(line []rune, start int) (n int, color document.Color)
}

// IdentifierMatcher returns the length of the identifier at line[start],
// or 0.
type IdentifierMatcher interface {
	Identifier(line []rune, start int) int
}

// NumberMatcher returns the length of the numeric literal at line[start],
// or 0.
type NumberMatcher interface {
	Number(line []rune, start int) int
}

// PunctuationMatcher reports whether r is punctuation.
type PunctuationMatcher interface {
	IsPunctuation(r rune) bool
}

// NoTokenizer never recognizes a token.
type NoTokenizer struct{}

// Token implements Tokenizer.
func (NoTokenizer) Token([]rune, int) (int, document.Color) {
	return 0, document.ColorText
}

// CStyleIdentifiers matches a letter or underscore followed by letters,
// digits and underscores.
type CStyleIdentifiers struct{}

// Identifier implements IdentifierMatcher.
func (CStyleIdentifiers) Identifier(line []rune, start int) int {
	r := line[start]
	if !unicode.IsLetter(r) && r != '_' {
		return 0
	}
	i := start + 1
	for i < len(line) && isIdentRune(line[i]) {
		i++
	}
	return i - start
}

func isIdentRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// CStyleNumbers matches decimal, hexadecimal and binary integers, decimal
// floats with an optional exponent, and trailing u/l/f suffixes.
type CStyleNumbers struct{}

// Number implements NumberMatcher.
func (CStyleNumbers) Number(line []rune, start int) int {
	n := len(line)
	i := start

	if !isDigit(line[i]) {
		if line[i] != '.' || i+1 >= n || !isDigit(line[i+1]) {
			return 0
		}
	}

	if line[i] == '0' && i+1 < n {
		switch line[i+1] {
		case 'x', 'X':
			if j := scan(line, i+2, isHexDigit); j > i+2 {
				return scan(line, j, isIntSuffix) - start
			}
		case 'b', 'B':
			if j := scan(line, i+2, isBinaryDigit); j > i+2 {
				return scan(line, j, isIntSuffix) - start
			}
		}
	}

	i = scan(line, i, isDigit)
	if i < n && line[i] == '.' {
		i = scan(line, i+1, isDigit)
	}
	if i < n && (line[i] == 'e' || line[i] == 'E') {
		j := i + 1
		if j < n && (line[j] == '+' || line[j] == '-') {
			j++
		}
		if j < n && isDigit(line[j]) {
			i = scan(line, j, isDigit)
		}
	}
	return scan(line, i, isFloatSuffix) - start
}

func scan(line []rune, i int, accept func(rune) bool) int {
	for i < len(line) && accept(line[i]) {
		i++
	}
	return i
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isBinaryDigit(r rune) bool { return r == '0' || r == '1' }

func isHexDigit(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func isIntSuffix(r rune) bool {
	return r == 'u' || r == 'U' || r == 'l' || r == 'L'
}

func isFloatSuffix(r rune) bool {
	return isIntSuffix(r) || r == 'f' || r == 'F'
}

// CStylePunctuation treats Unicode punctuation and symbols as punctuation.
type CStylePunctuation struct{}

// IsPunctuation implements PunctuationMatcher.
func (CStylePunctuation) IsPunctuation(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}
