package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/quill/internal/config"
	"github.com/dshills/quill/internal/engine"
)

// app holds the state shared by every subcommand.
type app struct {
	out    io.Writer
	errOut io.Writer

	// Global flags
	configPath string
	language   string
	palette    string
	logLevel   string
	tabSize    int
	sets       []string

	// Resolved in setup
	cfgFile string
	cfg     *config.Config
	res     *config.Resolved
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   "quill",
		Short: "Inspect source files with the quill editing engine",
		Long: `quill loads files into the multi-cursor editing engine and prints what it
sees: syntax colors, bracket pairs, search matches and replacements.

Settings come from built-in defaults, then the config file, then QUILL_*
environment variables, then command line flags.`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.close()
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	flags := root.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "",
		"config file (default: .quill.toml or ~/.config/quill/config.toml)")
	flags.StringVarP(&a.language, "language", "l", "",
		"language name or Lua script path (default: by file extension)")
	flags.StringVar(&a.palette, "palette", "", "color palette (dark, light)")
	flags.StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.IntVar(&a.tabSize, "tab-size", 0, "tab width in columns")
	flags.StringArrayVar(&a.sets, "set", nil,
		"override a setting, e.g. --set editor.insertSpaces=true (repeatable)")

	root.AddCommand(
		newColorizeCmd(a),
		newBracketsCmd(a),
		newFindCmd(a),
		newReplaceCmd(a),
		newWatchCmd(a),
		newConfigCmd(a),
		newLanguagesCmd(a),
		newVersionCmd(a),
	)
	return root
}

// setup layers the configuration and resolves it.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, path, err := a.loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.ApplyEnv(config.EnvPrefix); err != nil {
		return fmt.Errorf("environment: %w", err)
	}
	if err := a.applyFlags(cmd, cfg); err != nil {
		return err
	}

	res, err := cfg.Resolve(a.errOut)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	a.cfgFile, a.cfg, a.res = path, cfg, res

	if path != "" {
		res.Logger.Debug("loaded config %s", path)
	}
	return nil
}

func (a *app) loadConfig() (*config.Config, string, error) {
	path := a.configPath
	if path == "" {
		path = os.Getenv(config.EnvPrefix + "CONFIG")
	}
	if path == "" {
		return config.LoadDefault()
	}
	cfg, err := config.Load(path)
	return cfg, path, err
}

func (a *app) applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("language") {
		cfg.Editor.Language = a.language
	}
	if flags.Changed("palette") {
		cfg.Palette = a.palette
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = a.logLevel
	}
	if flags.Changed("tab-size") {
		cfg.Editor.TabSize = a.tabSize
	}
	for _, pair := range a.sets {
		if err := cfg.SetPair(pair); err != nil {
			return fmt.Errorf("--set: %w", err)
		}
	}
	return nil
}

func (a *app) close() error {
	if a.res == nil {
		return nil
	}
	err := a.res.Close()
	a.res = nil
	return err
}

// open loads the file at path into a new editor configured for it.
func (a *app) open(path string, opts ...engine.Option) (*engine.Editor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	opts = append(a.res.EditorOptions(path), opts...)
	opts = append(opts, engine.WithText(string(data)))
	return engine.New(opts...), nil
}
