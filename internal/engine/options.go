package engine

import (
	"github.com/dshills/quill/internal/engine/colorize"
	"github.com/dshills/quill/internal/engine/document"
	"github.com/dshills/quill/internal/engine/history"
	"github.com/dshills/quill/internal/engine/palette"
	"github.com/dshills/quill/internal/log"
)

// Default configuration values.
const (
	DefaultTabSize        = document.DefaultTabSize
	DefaultMaxUndoEntries = history.DefaultMaxEntries
)

// Option configures an Editor during creation.
type Option func(*Editor)

// WithText sets the initial content of the editor.
func WithText(text string) Option {
	return func(e *Editor) {
		e.initText = text
	}
}

// WithTabSize sets the tab size.
func WithTabSize(size int) Option {
	return func(e *Editor) {
		if size > 0 {
			e.tabSize = size
		}
	}
}

// WithLanguage sets the language used for colorizing. A nil language
// colors everything as plain text.
func WithLanguage(lang *colorize.Language) Option {
	return func(e *Editor) {
		e.language = lang
	}
}

// WithPalette sets the palette handed to the rendering layer.
func WithPalette(p *palette.Palette) Option {
	return func(e *Editor) {
		if p != nil {
			e.palette = p
		}
	}
}

// WithBracketMatching rebuilds the bracket index after every edit when
// always is true. Otherwise it is rebuilt on demand.
func WithBracketMatching(always bool) Option {
	return func(e *Editor) {
		e.alwaysBrackets = always
	}
}

// WithMaxUndoEntries sets the maximum number of undo history entries.
func WithMaxUndoEntries(n int) Option {
	return func(e *Editor) {
		if n > 0 {
			e.maxUndoEntries = n
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(e *Editor) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithReadOnly creates a read-only editor.
// Edit operations will return ErrReadOnly.
func WithReadOnly() Option {
	return func(e *Editor) {
		e.readOnly = true
	}
}

// WithInsertSpaces makes tab insertion and indenting use spaces.
func WithInsertSpaces(on bool) Option {
	return func(e *Editor) {
		e.insertSpaces = on
	}
}

// WithAutoIndent copies the indentation of the current line when a newline
// is typed.
func WithAutoIndent(on bool) Option {
	return func(e *Editor) {
		e.autoIndent = on
	}
}
