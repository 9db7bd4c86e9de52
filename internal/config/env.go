package config

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// EnvPrefix is the prefix ApplyEnv uses when given an empty one.
const EnvPrefix = "QUILL_"

// envMapping maps variable names, without the prefix, to setting paths.
var envMapping = map[string]string{
	"TAB_SIZE":      "editor.tabSize",
	"INSERT_SPACES": "editor.insertSpaces",
	"AUTO_INDENT":   "editor.autoIndent",
	"BRACKETS":      "editor.bracketMatching",
	"MAX_UNDO":      "editor.maxUndo",
	"LANGUAGE":      "editor.language",
	"PALETTE":       "palette",
	"LOG_LEVEL":     "logging.level",
	"SCRIPTS":       "scripts",
}

// ApplyEnv overrides settings from environment variables. Besides the
// short names in the mapping (QUILL_TAB_SIZE), any variable spelling out
// a setting path is accepted (QUILL_EDITOR_AUTO_INDENT). Short names win
// when both are set. Prefixed variables naming no setting are ignored.
// Empty values are treated as set.
func (c *Config) ApplyEnv(prefix string) error {
	if prefix == "" {
		prefix = EnvPrefix
	}

	var generic []string
	for _, env := range os.Environ() {
		name, _, ok := strings.Cut(env, "=")
		if !ok || !strings.HasPrefix(name, prefix) {
			continue
		}
		if _, mapped := envMapping[strings.TrimPrefix(name, prefix)]; mapped {
			continue
		}
		generic = append(generic, name)
	}
	sort.Strings(generic)

	for _, name := range generic {
		path := envToPath(strings.TrimPrefix(name, prefix))
		if _, ok := settings[path]; !ok {
			continue
		}
		if err := c.Set(path, os.Getenv(name)); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}

	keys := make([]string, 0, len(envMapping))
	for key := range envMapping {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		name := prefix + key
		val, ok := os.LookupEnv(name)
		if !ok {
			continue
		}
		if err := c.Set(envMapping[key], val); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

// envToPath converts EDITOR_TAB_SIZE to editor.tabSize. A single word
// is a top-level setting.
func envToPath(name string) string {
	parts := strings.Split(strings.ToLower(name), "_")
	if len(parts) == 1 {
		return parts[0]
	}

	setting := parts[1]
	for _, part := range parts[2:] {
		if part != "" {
			setting += strings.ToUpper(part[:1]) + part[1:]
		}
	}
	return parts[0] + "." + setting
}
