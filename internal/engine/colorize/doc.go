// Package colorize implements the incremental per-line tokenizer that
// assigns a document.Color to every glyph.
//
// A Colorizer runs a small state machine over one line at a time. The state
// at the end of a line (inside a block comment, inside a string and so on)
// becomes the starting state of the next line, so only lines whose content
// or incoming state changed need to be tokenized again.
//
// Languages are plain data values:
//
//	c := colorize.New(colorize.Go())
//	c.UpdateEntireDocument(doc)
//
//	// after an edit marks lines dirty
//	c.UpdateChangedLines(doc)
//
// The hooks a language needs beyond delimiters and keyword sets are
// expressed as strategies (Tokenizer, IdentifierMatcher, NumberMatcher and
// PunctuationMatcher). The C-style implementations cover most built-in
// languages.
package colorize
