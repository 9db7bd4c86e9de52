package config

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/dshills/quill/internal/engine"
	"github.com/dshills/quill/internal/engine/colorize"
	"github.com/dshills/quill/internal/engine/palette"
	"github.com/dshills/quill/internal/log"
	"github.com/dshills/quill/internal/script"
)

// ErrUnknownLanguage indicates editor.language names no registered language.
var ErrUnknownLanguage = errors.New("unknown language")

// Resolved is a validated configuration turned into live values. It owns
// the Lua interpreters behind script languages; call Close when done.
type Resolved struct {
	Config    *Config
	Logger    *log.Logger
	Palette   *palette.Palette
	Languages *colorize.Registry

	// Language is the configured language, nil when it is picked per file.
	Language *colorize.Language

	scripts []*script.Tokenizer
}

// Resolve validates c and builds its logger, palette and language
// registry. Log output goes to w.
func (c *Config) Resolve(w io.Writer) (*Resolved, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	r := &Resolved{
		Config: c.Clone(),
		Logger: log.New(log.Config{
			Level:  log.ParseLevel(c.Logging.Level),
			Output: w,
			Prefix: "quill",
		}),
		Languages: colorize.DefaultRegistry(),
	}
	r.Palette, _ = palette.Lookup(c.Palette)

	for _, path := range c.Scripts {
		if _, err := r.loadScript(path); err != nil {
			_ = r.Close()
			return nil, err
		}
	}

	if name := c.Editor.Language; name != "" {
		lang, err := r.language(name)
		if err != nil {
			_ = r.Close()
			return nil, err
		}
		r.Language = lang
	}
	return r, nil
}

func (r *Resolved) language(name string) (*colorize.Language, error) {
	if strings.EqualFold(filepath.Ext(name), ".lua") {
		return r.loadScript(name)
	}
	if lang, ok := r.Languages.Lookup(name); ok {
		return lang, nil
	}
	return nil, fmt.Errorf("%w: %s (known: %s)", ErrUnknownLanguage, name, strings.Join(r.Languages.Names(), ", "))
}

func (r *Resolved) loadScript(path string) (*colorize.Language, error) {
	tok, err := script.LoadFile(path, script.WithLogger(r.Logger))
	if err != nil {
		return nil, fmt.Errorf("loading language script: %w", err)
	}
	lang, err := tok.Language()
	if err != nil {
		_ = tok.Close()
		return nil, fmt.Errorf("loading language script %s: %w", path, err)
	}
	r.scripts = append(r.scripts, tok)
	r.Languages.Register(lang)
	r.Logger.Debug("registered language %s from %s", lang.Name, path)
	return lang, nil
}

// LanguageFor returns the configured language, or the one registered
// for the extension of path.
func (r *Resolved) LanguageFor(path string) *colorize.Language {
	if r.Language != nil {
		return r.Language
	}
	lang, _ := r.Languages.ForExtension(filepath.Ext(path))
	return lang
}

// EditorOptions returns the engine options for editing the file at path.
func (r *Resolved) EditorOptions(path string) []engine.Option {
	ed := r.Config.Editor
	return []engine.Option{
		engine.WithTabSize(ed.TabSize),
		engine.WithInsertSpaces(ed.InsertSpaces),
		engine.WithAutoIndent(ed.AutoIndent),
		engine.WithBracketMatching(ed.BracketMatching),
		engine.WithMaxUndoEntries(ed.MaxUndo),
		engine.WithLanguage(r.LanguageFor(path)),
		engine.WithPalette(r.Palette),
		engine.WithLogger(r.Logger),
	}
}

// Close shuts down the script interpreters.
func (r *Resolved) Close() error {
	var errs []error
	for _, tok := range r.scripts {
		errs = append(errs, tok.Close())
	}
	r.scripts = nil
	return errors.Join(errs...)
}
