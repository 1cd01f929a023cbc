/*
Command mdtree prints the render tree of a markdown file.

	mdtree [flags] file.md

Options are read from a YAML file (--config), styles from a CSS file
(--styles). With --dot the render tree is written in GraphViz format.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/mdrender"
	"github.com/npillmayer/mdrender/render/renderdbg"
	"github.com/npillmayer/mdrender/style/cssom/douceuradapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type flags struct {
	config     string
	styles     string
	dot        string
	scroll     bool
	selectable bool
	trace      string
}

func newRootCommand() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:   "mdtree [flags] file.md",
		Short: "Print the render tree of a markdown document",
		Long: `mdtree parses a markdown document, compiles it into a styled render tree
and prints the tree. Reading from stdin if the file argument is "-".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), args[0], f)
		},
	}
	cmd.Flags().StringVarP(&f.config, "config", "c", "", "YAML options file")
	cmd.Flags().StringVarP(&f.styles, "styles", "s", "", "CSS style sheet")
	cmd.Flags().StringVar(&f.dot, "dot", "", "write the render tree as GraphViz DOT to this file")
	cmd.Flags().BoolVar(&f.scroll, "scroll", false, "compose top-level blocks into a scrollable column")
	cmd.Flags().BoolVar(&f.selectable, "selectable", false, "make text spans tappable")
	cmd.Flags().StringVar(&f.trace, "trace", "", "trace level for mdrender (Debug, Info, Error)")
	return cmd
}

func run(out io.Writer, path string, f flags) error {
	if f.trace != "" {
		level := traceLevel(f.trace)
		for _, key := range []string{"mdrender", "mdrender.ast", "mdrender.markup", "mdrender.compiler",
			"mdrender.style", "mdrender.cssom", "mdrender.interact", "mdrender.render"} {
			tracing.Select(key).SetTraceLevel(level)
		}
	}
	var opts []mdrender.Option
	if f.config != "" {
		cf, err := os.Open(f.config)
		if err != nil {
			return fmt.Errorf("cannot open config: %w", err)
		}
		o, err := mdrender.LoadOptions(cf)
		cf.Close()
		if err != nil {
			return err
		}
		opts = append(opts, mdrender.WithOptions(o))
	}
	if f.styles != "" {
		css, err := os.ReadFile(f.styles)
		if err != nil {
			return fmt.Errorf("cannot read styles: %w", err)
		}
		sheet, err := douceuradapter.ParseSheet(string(css))
		if err != nil {
			return err
		}
		opts = append(opts, mdrender.WithSheet(sheet))
	}
	if f.scroll {
		opts = append(opts, mdrender.WithScrolling("16pt"))
	}
	if f.selectable {
		opts = append(opts, mdrender.WithSelectable(true))
	}
	source, err := readSource(path)
	if err != nil {
		return err
	}
	doc := mdrender.New(opts...)
	tree := doc.Render(source)
	fmt.Fprintln(out, renderdbg.Dump(tree))
	fmt.Fprintf(out, "%d interaction handles\n", doc.Registry().Len())
	if f.dot != "" {
		w, err := os.Create(f.dot)
		if err != nil {
			return fmt.Errorf("cannot create DOT file: %w", err)
		}
		defer w.Close()
		return renderdbg.ToGraphViz(tree, w, nil)
	}
	return nil
}

func readSource(path string) (string, error) {
	var b []byte
	var err error
	if path == "-" {
		b, err = io.ReadAll(os.Stdin)
	} else {
		b, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("cannot read markdown: %w", err)
	}
	return string(b), nil
}

func traceLevel(s string) tracing.TraceLevel {
	switch strings.ToLower(s) {
	case "debug":
		return tracing.LevelDebug
	case "info":
		return tracing.LevelInfo
	}
	return tracing.LevelError
}
