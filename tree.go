package main

import (
	"fmt"
	"io"

	"github.com/heathj/domtree/parser"
	"github.com/spf13/cobra"
)

var treeHTML bool

func init() {
	cmd := newTreeCmd()
	cmd.Flags().BoolVar(&treeHTML, "html", false, "Print the serialized HTML instead of the tree")
	rootCmd.AddCommand(cmd)
}

func newTreeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tree <file>",
		Short: "Display the parsed tree",
		Long: `The tree command parses a document and prints its tree, one node per
line, in the format of the html5lib tree construction tests.

Example:
  domtree tree page.html
  domtree tree page.html --html
  curl -s https://example.com | domtree tree -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTree(cmd.OutOrStdout(), args)
		},
	}
}

func runTree(w io.Writer, args []string) error {
	doc, cfg, err := parseFile(args[0])
	if err != nil {
		return err
	}
	if treeHTML {
		_, err = fmt.Fprintln(w, parser.SerializeHTML(doc.Node, cfg.ScriptingEnabled))
		return err
	}
	_, err = fmt.Fprintln(w, doc.String())
	return err
}
