package main

import (
	"fmt"
	"io"
	"os"

	"github.com/heathj/domtree/parser"
	"github.com/heathj/domtree/parser/dom"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	verbose    bool
	sanitize   bool
	scripting  bool
)

var rootCmd = &cobra.Command{
	Use:   "domtree",
	Short: "Parse HTML into typed DOM nodes and query live collections",
	Long: `domtree parses an HTML document into a tree of typed nodes, where
every element carries the type of its tag (a <datalist> is an
HTMLDataListElement, a <frameset> an HTMLFrameSetElement), and queries it
through live HTMLCollections.

Pass - as the file to read from standard input.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML parser config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log node registration to stderr")
	rootCmd.PersistentFlags().BoolVar(&sanitize, "sanitize", false, "Strip scripts and event handlers before parsing")
	rootCmd.PersistentFlags().BoolVar(&scripting, "scripting", false, "Parse as if scripting were enabled")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// loadConfig reads --config when given and applies the flags on top.
func loadConfig() (*parser.Config, error) {
	cfg := parser.DefaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = parser.LoadConfig(configPath); err != nil {
			return nil, err
		}
	}
	if verbose {
		cfg.LogLevel = "debug"
	}
	if sanitize {
		cfg.Sanitize = true
	}
	if scripting {
		cfg.ScriptingEnabled = true
	}
	return cfg, nil
}

// parseFile parses the HTML file at path, or standard input for "-".
func parseFile(path string) (*dom.Document, *parser.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	p, err := parser.NewParser(cfg)
	if err != nil {
		return nil, nil, err
	}

	var in io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, nil, errors.Wrap(err, "open input")
		}
		defer f.Close()
		in = f
	}
	doc, err := p.Parse(in)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "parse %s", path)
	}
	return doc, cfg, nil
}

// describe renders an element the way a CSS selector would name it.
func describe(e *dom.Element) string {
	s := string(e.LocalName)
	if id := e.ID(); id != "" {
		s += "#" + string(id)
	}
	for _, c := range e.ClassList() {
		s += "." + string(c)
	}
	return s
}
