package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// setting reads and writes one dotted path as text.
type setting struct {
	get func(*Config) string
	set func(*Config, string) error
}

var settings = map[string]setting{
	"editor.tabSize":         intSetting(func(c *Config) *int { return &c.Editor.TabSize }),
	"editor.insertSpaces":    boolSetting(func(c *Config) *bool { return &c.Editor.InsertSpaces }),
	"editor.autoIndent":      boolSetting(func(c *Config) *bool { return &c.Editor.AutoIndent }),
	"editor.bracketMatching": boolSetting(func(c *Config) *bool { return &c.Editor.BracketMatching }),
	"editor.maxUndo":         intSetting(func(c *Config) *int { return &c.Editor.MaxUndo }),
	"editor.language":        stringSetting(func(c *Config) *string { return &c.Editor.Language }),
	"palette":                stringSetting(func(c *Config) *string { return &c.Palette }),
	"logging.level":          stringSetting(func(c *Config) *string { return &c.Logging.Level }),
	"scripts":                listSetting(func(c *Config) *[]string { return &c.Scripts }),
}

// Paths returns every setting path in sorted order.
func Paths() []string {
	paths := make([]string, 0, len(settings))
	for p := range settings {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Get returns the value at path formatted as text.
func (c *Config) Get(path string) (string, error) {
	s, ok := settings[path]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownSetting, path)
	}
	return s.get(c), nil
}

// Set parses value and stores it at path.
func (c *Config) Set(path, value string) error {
	s, ok := settings[path]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSetting, path)
	}
	if err := s.set(c, value); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// SetPair applies a "path=value" assignment.
func (c *Config) SetPair(pair string) error {
	path, value, ok := strings.Cut(pair, "=")
	if !ok {
		return fmt.Errorf("%w: %q is not path=value", ErrInvalidValue, pair)
	}
	return c.Set(strings.TrimSpace(path), strings.TrimSpace(value))
}

func intSetting(field func(*Config) *int) setting {
	return setting{
		get: func(c *Config) string { return strconv.Itoa(*field(c)) },
		set: func(c *Config, s string) error {
			n, err := strconv.Atoi(strings.TrimSpace(s))
			if err != nil {
				return fmt.Errorf("%w: %q is not an integer", ErrInvalidValue, s)
			}
			*field(c) = n
			return nil
		},
	}
}

func boolSetting(field func(*Config) *bool) setting {
	return setting{
		get: func(c *Config) string { return strconv.FormatBool(*field(c)) },
		set: func(c *Config, s string) error {
			b, ok := parseBool(s)
			if !ok {
				return fmt.Errorf("%w: %q is not a boolean", ErrInvalidValue, s)
			}
			*field(c) = b
			return nil
		},
	}
}

func stringSetting(field func(*Config) *string) setting {
	return setting{
		get: func(c *Config) string { return *field(c) },
		set: func(c *Config, s string) error {
			*field(c) = s
			return nil
		},
	}
}

// listSetting stores a comma-separated list.
func listSetting(field func(*Config) *[]string) setting {
	return setting{
		get: func(c *Config) string { return strings.Join(*field(c), ",") },
		set: func(c *Config, s string) error {
			var items []string
			for _, item := range strings.Split(s, ",") {
				if item = strings.TrimSpace(item); item != "" {
					items = append(items, item)
				}
			}
			*field(c) = items
			return nil
		},
	}
}

// parseBool accepts the spellings people use in environment variables.
func parseBool(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "on", "1":
		return true, true
	case "false", "no", "off", "0":
		return false, true
	}
	return false, false
}
