package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/dshills/quill/internal/config/watcher"
	"github.com/dshills/quill/internal/engine"
)

const clearScreen = "\x1b[H\x1b[2J"

func newWatchCmd(a *app) *cobra.Command {
	var opts renderOptions
	var debounce time.Duration

	cmd := &cobra.Command{
		Use:   "watch FILE",
		Short: "Print FILE with syntax colors and again whenever it changes",
		Long: `Print FILE like colorize, then reprint it each time it is saved. Changes
to the config file in use are picked up as well. Stop with Ctrl-C.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := filepath.Abs(args[0])
			if err != nil {
				return err
			}

			w, err := watcher.New(watcher.WithDebounce(debounce), watcher.WithLogger(a.res.Logger))
			if err != nil {
				return err
			}
			defer func() { _ = w.Close() }()
			if err := w.Watch(path); err != nil {
				return err
			}
			var cfgPath string
			if a.cfgFile != "" {
				if cfgPath, err = filepath.Abs(a.cfgFile); err != nil {
					return err
				}
				if err := w.Watch(cfgPath); err != nil {
					return err
				}
			}

			show := func() {
				e, err := a.open(path, engine.WithReadOnly())
				if err != nil {
					a.res.Logger.Warn("%v", err)
					return
				}
				if !opts.plain {
					fmt.Fprint(a.out, clearScreen)
				}
				render(a.out, e, opts)
			}

			w.OnChange(func(ev watcher.Event) {
				a.res.Logger.Debug("%s: %s", ev.Path, ev.Op)
				if ev.Op == watcher.OpRemove || ev.Op == watcher.OpRename {
					return
				}
				if ev.Path == cfgPath {
					if err := a.reload(cmd); err != nil {
						a.res.Logger.Warn("keeping previous configuration: %v", err)
						return
					}
					a.res.Logger.Info("reloaded %s", cfgPath)
				}
				show()
			})

			show()
			return w.Run(cmd.Context())
		},
	}
	opts.register(cmd)
	cmd.Flags().DurationVar(&debounce, "debounce", watcher.DefaultDebounce, "quiet period before reprinting")
	return cmd
}

// reload rebuilds the configuration, keeping the current one on failure.
func (a *app) reload(cmd *cobra.Command) error {
	prev := a.res
	if err := a.setup(cmd); err != nil {
		a.res = prev
		return err
	}
	if prev != nil {
		_ = prev.Close()
	}
	return nil
}
