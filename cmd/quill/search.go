package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/quill/internal/engine"
)

// searchOptions are the matching flags shared by find and replace.
type searchOptions struct {
	ignoreCase bool
	wholeWord  bool
}

func (o *searchOptions) register(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&o.ignoreCase, "ignore-case", "i", false, "match without regard to case")
	cmd.Flags().BoolVarP(&o.wholeWord, "word", "w", false, "match whole words only")
}

func newFindCmd(a *app) *cobra.Command {
	var opts searchOptions
	var count bool

	cmd := &cobra.Command{
		Use:   "find FILE TEXT",
		Short: "Print the position of every match of TEXT",
		Long: `Print every match of TEXT as line:column followed by the matching line.
TEXT is literal and may span lines with embedded newlines. The command
fails when nothing matches.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, text := args[0], args[1]
			e, err := a.open(path, engine.WithReadOnly())
			if err != nil {
				return err
			}

			matches := e.FindAll(text, !opts.ignoreCase, opts.wholeWord)
			if count {
				fmt.Fprintln(a.out, len(matches))
			} else {
				for _, m := range matches {
					fmt.Fprintf(a.out, "%s: %s\n", pos(m[0]), e.LineText(m[0].Line))
				}
			}
			if len(matches) == 0 {
				return fmt.Errorf("%q not found in %s", text, path)
			}
			return nil
		},
	}
	opts.register(cmd)
	cmd.Flags().BoolVar(&count, "count", false, "print only the number of matches")
	return cmd
}

func newReplaceCmd(a *app) *cobra.Command {
	var opts searchOptions
	var inPlace bool

	cmd := &cobra.Command{
		Use:   "replace FILE FIND REPLACEMENT",
		Short: "Replace every match of FIND",
		Long: `Replace every match of FIND with REPLACEMENT and print the result, or
write it back to FILE with --in-place. The number of replacements is
reported on stderr.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, find, replacement := args[0], args[1], args[2]
			e, err := a.open(path)
			if err != nil {
				return err
			}

			n, err := e.ReplaceAll(find, replacement, !opts.ignoreCase, opts.wholeWord)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.errOut, "%d replacement(s)\n", n)

			if !inPlace {
				fmt.Fprint(a.out, e.Text())
				return nil
			}
			if n == 0 {
				return nil
			}
			info, err := os.Stat(path)
			if err != nil {
				return err
			}
			if err := os.WriteFile(path, []byte(e.Text()), info.Mode().Perm()); err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}
			return nil
		},
	}
	opts.register(cmd)
	cmd.Flags().BoolVar(&inPlace, "in-place", false, "write the result back to FILE")
	return cmd
}
