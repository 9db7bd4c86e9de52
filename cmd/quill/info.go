package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dshills/quill/internal/config"
)

func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config [PATH...]",
		Short: "Print the effective configuration",
		Long: `Print every setting after defaults, the config file, environment
variables and flags have been applied. With arguments, print only the
named settings.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				source := a.cfgFile
				if source == "" {
					source = "(defaults)"
				}
				fmt.Fprintf(a.out, "# %s\n", source)
				args = config.Paths()
			}
			for _, path := range args {
				v, err := a.cfg.Get(path)
				if err != nil {
					return err
				}
				fmt.Fprintf(a.out, "%s = %s\n", path, v)
			}
			return nil
		},
	}
}

func newLanguagesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List the languages available for colorizing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range a.res.Languages.Names() {
				lang, _ := a.res.Languages.Lookup(name)
				fmt.Fprintf(a.out, "%-8s %s\n", name, strings.Join(lang.Extensions, " "))
			}
			return nil
		},
	}
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		// Version needs no configuration.
		PersistentPreRunE:  func(*cobra.Command, []string) error { return nil },
		PersistentPostRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(a.out, "quill %s\n", version)
			fmt.Fprintf(a.out, "Commit: %s\n", commit)
			fmt.Fprintf(a.out, "Built: %s\n", date)
		},
	}
}
