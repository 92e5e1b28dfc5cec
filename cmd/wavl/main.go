// Command wavl demonstrates WAVL trees on the console.
//
// Usage:
//
//	wavl demo
//	wavl load [--dot | --html] FILE
package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/uax/uax11"
	"github.com/npillmayer/wavl/formatter"
	"github.com/spf13/cobra"
)

// options shared by all sub-commands
type options struct {
	debug   bool
	noColor bool
	width   int
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &options{}
	rootCmd := &cobra.Command{
		Use:   "wavl",
		Short: "Explore weak AVL trees",
		Long: `wavl builds rank-balanced (weak AVL) trees and prints them.

Commands:
  demo      insert a couple of keys and query the tree
  load      load key/value pairs from a text file`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			gtrace.CoreTracer = gologadapter.New()
			if opts.debug {
				gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
			} else {
				gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&opts.debug, "debug", "d", false, "trace rebalancing steps")
	rootCmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable highlighting of nodes")
	rootCmd.PersistentFlags().IntVarP(&opts.width, "width", "w", 0, "line width for printing trees (0 = from terminal)")
	rootCmd.AddCommand(newDemoCommand(opts))
	rootCmd.AddCommand(newLoadCommand(opts))
	return rootCmd
}

// formatConfig creates a configuration for printing trees, starting from
// the terminal's properties.
func (opts *options) formatConfig() *formatter.Config {
	config := formatter.ConfigFromTerminal()
	config.Context = uax11.ContextFromEnvironment()
	if opts.width > 0 {
		config.LineWidth = opts.width
	}
	if opts.noColor {
		config.NoColor = true
	}
	return config
}
