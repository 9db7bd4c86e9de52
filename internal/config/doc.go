// Package config provides the configuration system for quill.
//
// Settings are resolved in layers, each overriding the one before:
//
//	┌─────────────────────────────┐
//	│  4. Command Line Flags      │  ← Highest priority
//	├─────────────────────────────┤
//	│  3. Environment Variables   │  ← QUILL_TAB_SIZE, QUILL_PALETTE, ...
//	├─────────────────────────────┤
//	│  2. Config File             │  ← .quill.toml or ~/.config/quill/config.toml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// Config files may be TOML or YAML; the extension decides. Keys use the
// same dotted paths as Get and Set:
//
//	palette = "light"
//	scripts = ["~/.config/quill/ini.lua"]
//
//	[editor]
//	tabSize = 4
//	insertSpaces = true
//	language = "go"
//
//	[logging]
//	level = "debug"
//
// # Basic Usage
//
//	cfg, path, err := config.LoadDefault()
//	if err != nil {
//	    return err
//	}
//	if err := cfg.ApplyEnv(config.EnvPrefix); err != nil {
//	    return err
//	}
//
//	res, err := cfg.Resolve(os.Stderr)
//	if err != nil {
//	    return err
//	}
//	defer res.Close()
//
//	ed := engine.New(res.EditorOptions("main.go")...)
//
// The watcher subpackage reports changes to the config file so callers
// can reload it.
package config
