package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dshills/quill/internal/engine"
	"github.com/dshills/quill/internal/engine/document"
)

// errBracketsUnbalanced is returned by brackets --check.
var errBracketsUnbalanced = errors.New("unbalanced brackets")

func newBracketsCmd(a *app) *cobra.Command {
	var errorsOnly, check bool

	cmd := &cobra.Command{
		Use:   "brackets FILE...",
		Short: "List bracket pairs and bracket errors",
		Long: `List every matched bracket pair with its nesting level, followed by
unmatched and mismatched brackets. Brackets inside strings and comments
are ignored. Positions are line:column, both starting at 1, with tabs
expanded.

With --check the command fails when any file has bracket errors.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bad := 0
			for _, path := range args {
				e, err := a.open(path, engine.WithReadOnly())
				if err != nil {
					return err
				}
				if len(args) > 1 {
					fmt.Fprintf(a.out, "%s:\n", path)
				}
				if !errorsOnly {
					for _, p := range e.Brackets() {
						fmt.Fprintf(a.out, "%s %c %s %c level %d\n",
							pos(p.Start), p.OpenChar, pos(p.End), p.CloseChar, p.Level)
					}
				}
				errs := e.BracketErrors()
				printBracketErrors(a.out, errs)
				if len(errs) > 0 {
					bad++
				}
			}
			if check && bad > 0 {
				return fmt.Errorf("%w in %d file(s)", errBracketsUnbalanced, bad)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&errorsOnly, "errors", "e", false, "list only bracket errors")
	cmd.Flags().BoolVar(&check, "check", false, "fail if any bracket is unbalanced")
	return cmd
}

func printBracketErrors(w io.Writer, errs []engine.Pair) {
	for _, p := range errs {
		switch {
		case p.End == document.Invalid:
			fmt.Fprintf(w, "%s %c unmatched\n", pos(p.Start), p.OpenChar)
		case p.Start == document.Invalid:
			fmt.Fprintf(w, "%s %c unmatched\n", pos(p.End), p.CloseChar)
		default:
			fmt.Fprintf(w, "%s %c %s %c mismatched\n", pos(p.Start), p.OpenChar, pos(p.End), p.CloseChar)
		}
	}
}

// pos formats c for people: one-based line and column.
func pos(c engine.Coordinate) string {
	return fmt.Sprintf("%d:%d", c.Line+1, c.Column+1)
}
