// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command colorize colors a text file by the keywords and multi-line
// blocks of a syntax definition, printing the colored text to the
// terminal or the color ranges of each line.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"cogentcore.org/codetext/base/logx"
	"cogentcore.org/codetext/text/highlighting"
	"cogentcore.org/codetext/text/lines"
	"github.com/spf13/cobra"
)

// options are the command line options.
type options struct {

	// syntax files, merged in order over each other.
	syntax []string

	// chroma style to seed the color groups from.
	chroma string

	// ranges prints the color ranges instead of the colored text.
	ranges bool

	// blocks prints the multi-line blocks after the text.
	blocks bool

	// watch recolors whenever the last syntax file changes.
	watch bool

	vv, v, q bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:          "colorize [file]",
		Short:        "Color a text file by keywords and multi-line blocks",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logx.UserLevel = logx.LevelFromFlags(opts.vv, opts.v, opts.q)
			logx.SetDefaultLogger()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ls, err := openText(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			if opts.watch {
				return watch(cmd.Context(), cmd.OutOrStdout(), ls, opts)
			}
			hi, err := opts.highlighter()
			if err != nil {
				return err
			}
			ls.SetHighlighter(hi)
			return write(cmd.OutOrStdout(), ls, opts)
		},
	}
	pf := root.PersistentFlags()
	pf.StringArrayVarP(&opts.syntax, "syntax", "s", nil, "syntax file (TOML, YAML or JSON); repeat to merge several")
	pf.StringVar(&opts.chroma, "chroma", "", "chroma style to seed the color groups from")
	pf.BoolVar(&opts.vv, "vv", false, "show debug messages")
	pf.BoolVarP(&opts.v, "verbose", "v", false, "show info messages")
	pf.BoolVarP(&opts.q, "quiet", "q", false, "only show errors")
	f := root.Flags()
	f.BoolVarP(&opts.ranges, "ranges", "r", false, "print the color ranges of each line instead of the colored text")
	f.BoolVarP(&opts.blocks, "blocks", "b", false, "print the multi-line blocks")
	f.BoolVar(&opts.watch, "watch", false, "recolor whenever the last syntax file changes, until interrupted")
	root.AddCommand(newSyntaxCmd(opts))
	return root
}

func newSyntaxCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "syntax <output file>",
		Short: "Save the effective syntax, after merging, to a TOML, YAML or JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sy, err := opts.openSyntax()
			if err != nil {
				return err
			}
			if _, err := sy.Highlighter(); err != nil {
				return err
			}
			return sy.Save(args[0])
		},
	}
}

// openSyntax returns the merged syntax files, or the default syntax.
func (o *options) openSyntax() (*highlighting.Syntax, error) {
	var sy *highlighting.Syntax
	if len(o.syntax) == 0 {
		sy = highlighting.DefaultSyntax()
	} else {
		var err error
		sy, err = highlighting.OpenSyntaxFiles(o.syntax...)
		if err != nil {
			return nil, err
		}
	}
	if o.chroma != "" {
		sy.Chroma = o.chroma
	}
	return sy, nil
}

func (o *options) highlighter() (*highlighting.Highlighter, error) {
	sy, err := o.openSyntax()
	if err != nil {
		return nil, err
	}
	slog.Info("using syntax", "name", sy.Name, "groups", len(sy.Groups), "tags", len(sy.Tags))
	return sy.Highlighter()
}

// openText reads the file named in args, or standard input,
// into a new [lines.Lines] without a highlighter.
func openText(stdin io.Reader, args []string) (*lines.Lines, error) {
	var b []byte
	var err error
	if len(args) == 0 || args[0] == "-" {
		b, err = io.ReadAll(stdin)
	} else {
		b, err = os.ReadFile(args[0])
	}
	if err != nil {
		return nil, err
	}
	txt := strings.ReplaceAll(string(b), "\r\n", "\n")
	txt = strings.TrimSuffix(txt, "\n")
	return lines.NewLinesFromStrings(nil, strings.Split(txt, "\n")), nil
}

// watch writes the text each time the last syntax file changes,
// until the context is done or the process is interrupted.
func watch(ctx context.Context, w io.Writer, ls *lines.Lines, opts *options) error {
	if len(opts.syntax) == 0 {
		return fmt.Errorf("--watch needs a --syntax file")
	}
	hi, err := opts.highlighter()
	if err != nil {
		return err
	}
	ls.SetHighlighter(hi)
	if err := write(w, ls, opts); err != nil {
		return err
	}
	wt, err := highlighting.WatchSyntax(opts.syntax[len(opts.syntax)-1])
	if err != nil {
		return err
	}
	defer wt.Close()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-wt.Errors:
			slog.Error("watching syntax", "err", err)
		case <-wt.Changes:
			// reopen all files, so that the change is merged in order
			hi, err := opts.highlighter()
			if err != nil {
				slog.Error("reloading syntax", "err", err)
				continue
			}
			ls.SetHighlighter(hi)
			if err := write(w, ls, opts); err != nil {
				return err
			}
		}
	}
}
