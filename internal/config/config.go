package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/dshills/quill/internal/engine"
	"github.com/dshills/quill/internal/engine/palette"
	"github.com/dshills/quill/internal/log"
)

// Defaults for settings that have no zero-value meaning.
const (
	DefaultPalette  = "dark"
	DefaultLogLevel = "info"

	// MaxTabSize bounds editor.tabSize.
	MaxTabSize = 32
)

// Config is the complete quill configuration.
type Config struct {
	Editor  EditorConfig  `toml:"editor" yaml:"editor"`
	Palette string        `toml:"palette" yaml:"palette"`
	Logging LoggingConfig `toml:"logging" yaml:"logging"`

	// Scripts lists Lua language scripts to register next to the
	// built-in languages.
	Scripts []string `toml:"scripts" yaml:"scripts"`
}

// EditorConfig contains editing session settings.
type EditorConfig struct {
	TabSize         int  `toml:"tabSize" yaml:"tabSize"`
	InsertSpaces    bool `toml:"insertSpaces" yaml:"insertSpaces"`
	AutoIndent      bool `toml:"autoIndent" yaml:"autoIndent"`
	BracketMatching bool `toml:"bracketMatching" yaml:"bracketMatching"`
	MaxUndo         int  `toml:"maxUndo" yaml:"maxUndo"`

	// Language is a language name, a path to a Lua script, or empty to
	// pick the language from the file extension.
	Language string `toml:"language" yaml:"language"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level string `toml:"level" yaml:"level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Editor: EditorConfig{
			TabSize:    engine.DefaultTabSize,
			AutoIndent: true,
			MaxUndo:    engine.DefaultMaxUndoEntries,
		},
		Palette: DefaultPalette,
		Logging: LoggingConfig{Level: DefaultLogLevel},
	}
}

// Load reads the file at path over the defaults. The format is chosen
// by extension.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	cfg := Default()
	if err := cfg.Decode(path, data); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDefault loads the first file found on SearchPaths. When none
// exists it returns the defaults and an empty path.
func LoadDefault() (*Config, string, error) {
	for _, path := range SearchPaths() {
		cfg, err := Load(path)
		if errors.Is(err, ErrFileNotFound) {
			continue
		}
		if err != nil {
			return nil, path, err
		}
		return cfg, path, nil
	}
	return Default(), "", nil
}

// SearchPaths returns the locations LoadDefault tries, in order: the
// working directory first, then the user configuration directory.
func SearchPaths() []string {
	paths := []string{".quill.toml", ".quill.yaml", ".quill.yml"}
	if dir, err := os.UserConfigDir(); err == nil {
		for _, name := range []string{"config.toml", "config.yaml", "config.yml"} {
			paths = append(paths, filepath.Join(dir, "quill", name))
		}
	}
	return paths
}

// Decode parses data into c. Keys absent from data keep their current
// values; unknown keys are an error. name selects the format and is used
// in error messages.
func (c *Config) Decode(name string, data []byte) error {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(c); err != nil {
			return tomlError(name, err)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
			return yamlError(name, err)
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
	}
	return nil
}

func tomlError(path string, err error) error {
	pe := &ParseError{Path: path, Message: err.Error(), Err: err}

	var strict *toml.StrictMissingError
	var decode *toml.DecodeError
	switch {
	case errors.As(err, &strict) && len(strict.Errors) > 0:
		pe.Line, pe.Column = strict.Errors[0].Position()
		pe.Message = "unknown key " + strings.Join(strict.Errors[0].Key(), ".")
	case errors.As(err, &decode):
		pe.Line, pe.Column = decode.Position()
	}
	return pe
}

func yamlError(path string, err error) error {
	pe := &ParseError{Path: path, Message: err.Error(), Err: err}

	msg := err.Error()
	var typeErr *yaml.TypeError
	if errors.As(err, &typeErr) && len(typeErr.Errors) > 0 {
		msg = typeErr.Errors[0]
		pe.Message = msg
	}
	pe.Line = yamlLine(msg)
	return pe
}

// yamlLine extracts N from the "line N" yaml.v3 puts in its messages.
func yamlLine(msg string) int {
	i := strings.Index(msg, "line ")
	if i < 0 {
		return 0
	}
	rest := msg[i+len("line "):]
	end := strings.IndexFunc(rest, func(r rune) bool { return r < '0' || r > '9' })
	if end < 0 {
		end = len(rest)
	}
	n, err := strconv.Atoi(rest[:end])
	if err != nil {
		return 0
	}
	return n
}

// Validate checks every setting and reports all failures at once.
func (c *Config) Validate() error {
	var errs []error
	if c.Editor.TabSize < 1 || c.Editor.TabSize > MaxTabSize {
		errs = append(errs, &ValidationError{
			Path:    "editor.tabSize",
			Message: fmt.Sprintf("must be between 1 and %d", MaxTabSize),
			Value:   c.Editor.TabSize,
		})
	}
	if c.Editor.MaxUndo < 1 {
		errs = append(errs, &ValidationError{
			Path:    "editor.maxUndo",
			Message: "must be positive",
			Value:   c.Editor.MaxUndo,
		})
	}
	if _, ok := palette.Lookup(c.Palette); !ok {
		errs = append(errs, &ValidationError{
			Path:    "palette",
			Message: "must be one of " + strings.Join(palette.Names(), ", "),
			Value:   c.Palette,
		})
	}
	if !log.ValidLevel(c.Logging.Level) {
		errs = append(errs, &ValidationError{
			Path:    "logging.level",
			Message: "must be one of debug, info, warn, error",
			Value:   c.Logging.Level,
		})
	}
	return errors.Join(errs...)
}

// Clone returns a deep copy of c.
func (c *Config) Clone() *Config {
	out := *c
	out.Scripts = append([]string(nil), c.Scripts...)
	return &out
}
