package main

import (
	"errors"

	"github.com/npillmayer/wavl"
	"github.com/npillmayer/wavl/formatter"
	"github.com/npillmayer/wavl/html"
	"github.com/npillmayer/wavl/textfile"
	"github.com/spf13/cobra"
)

type loadCmd struct {
	opts      *options
	dot       bool
	html      bool
	separator string
}

func newLoadCommand(opts *options) *cobra.Command {
	lc := &loadCmd{opts: opts}
	cmd := &cobra.Command{
		Use:   "load FILE",
		Short: "Load a file of key/value lines and print the resulting tree",
		Long: `Load reads a text file with one key/value pair per line, separated by
a TAB character. Blank lines and lines starting with '#' are skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: lc.run,
	}
	cmd.Flags().BoolVar(&lc.dot, "dot", false, "output the tree in GraphViz DOT format")
	cmd.Flags().BoolVar(&lc.html, "html", false, "output the entries as an HTML definition list")
	cmd.Flags().StringVarP(&lc.separator, "separator", "s", "\t", "separator between key and value")
	return cmd
}

func (lc *loadCmd) run(cmd *cobra.Command, args []string) error {
	if lc.dot && lc.html {
		return errors.New("flags --dot and --html are mutually exclusive")
	}
	tree, err := textfile.LoadStrings(args[0], &textfile.Options{Separator: lc.separator})
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	switch {
	case lc.dot:
		wavl.Tree2Dot(tree, w)
		return nil
	case lc.html:
		return html.Render(tree, w)
	}
	return formatter.Print(tree, w, lc.opts.formatConfig())
}
