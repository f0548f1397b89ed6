package main

import (
	"fmt"
	"io"

	"github.com/heathj/domtree/parser/dom"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newOptionsCmd())
}

func newOptionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "options <file>",
		Short: "List the options of every datalist and select",
		Long: `The options command prints each <datalist> and <select> in the
document followed by the options its options collection holds. The
selected option of a select is marked with *.

Example:
  domtree options form.html`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOptions(cmd.OutOrStdout(), args)
		},
	}
}

var optionListsFilter = dom.FilterFunc(func(e *dom.Element, _ *dom.Node) bool {
	return dom.IsHTMLDataListElement(e.Node) || dom.IsHTMLSelectElement(e.Node)
})

func runOptions(w io.Writer, args []string) error {
	doc, _, err := parseFile(args[0])
	if err != nil {
		return err
	}

	lists := dom.CreateHTMLCollection(doc.Window(), doc.Node, optionListsFilter).Elements()
	for _, e := range lists {
		var (
			options  *dom.HTMLCollection
			selected = -1
		)
		if datalist, ok := dom.AsHTMLDataListElement(e.Node); ok {
			options = datalist.Options()
		} else if sel, ok := dom.AsHTMLSelectElement(e.Node); ok {
			options = sel.Options()
			selected = sel.SelectedIndex()
		}
		if options == nil {
			continue
		}

		if _, err := fmt.Fprintf(w, "%s (%d options)\n", describe(e), options.Length()); err != nil {
			return err
		}
		for i, o := range options.Elements() {
			mark := " "
			if i == selected {
				mark = "*"
			}
			option, ok := dom.AsHTMLOptionElement(o.Node)
			if !ok {
				continue
			}
			if _, err := fmt.Fprintf(w, "  %s %s\t%s\n", mark, option.Value(), option.Label()); err != nil {
				return err
			}
		}
	}
	return nil
}
