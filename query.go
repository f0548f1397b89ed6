package main

import (
	"fmt"
	"io"

	"github.com/heathj/domtree/parser/dom"
	"github.com/heathj/domtree/parser/webidl"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	queryTag    string
	queryKind   string
	queryClass  string
	queryWithin string
)

func init() {
	cmd := newQueryCmd()
	cmd.Flags().StringVar(&queryTag, "tag", "", "Match elements by qualified name, * for all")
	cmd.Flags().StringVar(&queryKind, "kind", "", "Match elements by interface, e.g. HTMLOptionElement or option")
	cmd.Flags().StringVar(&queryClass, "class", "", "Match elements carrying every listed class")
	cmd.Flags().StringVar(&queryWithin, "within", "", "Only search below the element with this id")
	rootCmd.AddCommand(cmd)
}

func newQueryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "query <file>",
		Short: "List the elements of a collection",
		Long: `The query command builds an HTMLCollection over the document, or over
the element named by --within, and prints its members in tree order.
Exactly one of --tag, --kind and --class selects the filter.

Example:
  domtree query page.html --tag a
  domtree query page.html --kind HTMLDataListElement
  domtree query page.html --class "card active" --within main`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd.OutOrStdout(), args)
		},
	}
}

// queryFilter picks the collection filter the flags ask for.
func queryFilter() (dom.CollectionFilter, error) {
	set := 0
	for _, f := range []string{queryTag, queryKind, queryClass} {
		if f != "" {
			set++
		}
	}
	if set != 1 {
		return nil, errors.New("exactly one of --tag, --kind and --class is required")
	}

	switch {
	case queryTag != "":
		return dom.LocalNameFilter(webidl.DOMString(queryTag)), nil
	case queryClass != "":
		return dom.ClassNameFilter(webidl.DOMString(queryClass)), nil
	}
	kind, ok := dom.ParseHTMLElementKind(queryKind)
	if !ok {
		kind = dom.HTMLElementKindForTag(queryKind)
	}
	if kind == dom.HTMLUnknownKind && !ok {
		return nil, errors.Errorf("unknown element kind %q", queryKind)
	}
	return dom.KindFilter(kind), nil
}

func runQuery(w io.Writer, args []string) error {
	filter, err := queryFilter()
	if err != nil {
		return err
	}
	doc, _, err := parseFile(args[0])
	if err != nil {
		return err
	}

	root := doc.Node
	if queryWithin != "" {
		e := doc.GetElementByID(webidl.DOMString(queryWithin))
		if e == nil {
			return errors.Wrapf(dom.ErrNotFound, "no element with id %q", queryWithin)
		}
		root = e.Node
	}

	c := dom.CreateHTMLCollection(doc.Window(), root, filter)
	for i, e := range c.Elements() {
		if _, err := fmt.Fprintf(w, "%d\t%s\t%s\n", i, e.TypeID(), describe(e)); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(w, "%d element(s)\n", c.Length())
	return err
}
