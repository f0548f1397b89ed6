package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/heathj/domtree/parser"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newMarkdownCmd())
}

func newMarkdownCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "markdown <file>",
		Short: "Convert the parsed document to markdown",
		Long: `The markdown command parses a document, serializes the resulting tree
back to HTML and converts that to CommonMark. Relative links resolve
against the url set in the config.

Example:
  domtree markdown article.html
  domtree markdown article.html --sanitize`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMarkdown(cmd.OutOrStdout(), args)
		},
	}
}

func newMarkdownConverter() *converter.Converter {
	return converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
}

func runMarkdown(w io.Writer, args []string) error {
	doc, cfg, err := parseFile(args[0])
	if err != nil {
		return err
	}
	html := parser.SerializeHTML(doc.Node, cfg.ScriptingEnabled)
	conv := newMarkdownConverter()
	var md string
	if cfg.URL != "" && cfg.URL != "about:blank" {
		md, err = conv.ConvertString(html, converter.WithDomain(cfg.URL))
	} else {
		md, err = conv.ConvertString(html)
	}
	if err != nil {
		return errors.Wrap(err, "convert to markdown")
	}
	_, err = fmt.Fprintln(w, strings.TrimSpace(md))
	return err
}
