package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dshills/quill/internal/engine"
	"github.com/dshills/quill/internal/engine/palette"
)

// renderOptions controls how a document is printed.
type renderOptions struct {
	lineNumbers bool
	plain       bool
}

func (o *renderOptions) register(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&o.lineNumbers, "line-numbers", "n", false, "prefix lines with their number")
	cmd.Flags().BoolVar(&o.plain, "plain", false, "print without escape sequences")
}

func newColorizeCmd(a *app) *cobra.Command {
	var opts renderOptions

	cmd := &cobra.Command{
		Use:     "colorize FILE...",
		Aliases: []string{"cat"},
		Short:   "Print files with syntax colors",
		Long: `Print files with ANSI 24-bit syntax colors from the configured palette.
Bracket pairs are colored by nesting depth; unmatched brackets are marked.

Examples:
  quill colorize main.go
  quill colorize -n --palette light query.sql
  quill colorize --language ./ini.lua settings.ini`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				e, err := a.open(path, engine.WithReadOnly())
				if err != nil {
					return err
				}
				render(a.out, e, opts)
			}
			return nil
		},
	}
	opts.register(cmd)
	return cmd
}

// render prints every line of e.
func render(w io.Writer, e *engine.Editor, opts renderOptions) {
	p := e.Palette()
	width := len(strconv.Itoa(e.LineCount()))

	for n := 0; n < e.LineCount(); n++ {
		if opts.lineNumbers {
			if opts.plain {
				fmt.Fprintf(w, "%*d ", width, n+1)
			} else {
				fmt.Fprintf(w, "%s%*d%s ", p.RoleSGR(palette.RoleLineNumber), width, n+1, palette.Reset)
			}
		}
		if opts.plain {
			fmt.Fprintln(w, e.LineText(n))
		} else {
			fmt.Fprintln(w, p.Render(e.Glyphs(n)))
		}
	}
}
