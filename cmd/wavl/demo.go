package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/npillmayer/wavl"
	"github.com/npillmayer/wavl/formatter"
	"github.com/spf13/cobra"
)

var demoKeys = []int{10, 5, 2, 12, 6}

func newDemoCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Insert keys 10, 5, 2, 12, 6 and query the tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd.OutOrStdout(), opts.formatConfig())
		},
	}
}

func runDemo(w io.Writer, config *formatter.Config) error {
	tree := wavl.NewOrdered[int, string]()
	fmt.Fprintf(w, "tree is empty: %v\n", tree.IsEmpty())
	for _, k := range demoKeys {
		steps, err := tree.Insert(k, strconv.Itoa(k))
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "insert %d: %d rebalancing steps\n", k, steps)
	}
	if err := formatter.Print(tree, w, config); err != nil {
		return err
	}
	fmt.Fprintf(w, "tree is empty: %v\n", tree.IsEmpty())
	lo, _ := tree.Min()
	hi, _ := tree.Max()
	fmt.Fprintf(w, "min is %s, max is %s\n", lo, hi)
	fmt.Fprintf(w, "keys:   %v\n", tree.Keys())
	fmt.Fprintf(w, "values: %v\n", tree.Values())
	fmt.Fprintf(w, "size:   %d\n", tree.Size())
	for _, i := range []int{0, 2, 4} {
		if v, ok := tree.Select(i); ok {
			fmt.Fprintf(w, "select(%d) = %s\n", i, v)
		} else {
			fmt.Fprintf(w, "select(%d) is out of range\n", i)
		}
	}
	for _, k := range []int{10, 7, 12} {
		if v, ok := tree.Search(k); ok {
			fmt.Fprintf(w, "search(%d) = %s\n", k, v)
		} else {
			fmt.Fprintf(w, "search(%d) not found\n", k)
		}
	}
	steps, err := tree.Delete(10)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "delete 10: %d rebalancing steps\n", steps)
	return formatter.Print(tree, w, config)
}
