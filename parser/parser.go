package parser

import (
	"io"
	"strings"

	"github.com/heathj/domtree/parser/dom"
	"github.com/heathj/domtree/parser/webidl"
	"github.com/microcosm-cc/bluemonday"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Parser turns HTML into documents of typed nodes.
type Parser struct {
	cfg    *Config
	log    *logrus.Entry
	policy *bluemonday.Policy
}

// NewParser creates a parser. A nil config means DefaultConfig.
func NewParser(cfg *Config) (*Parser, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	log, err := cfg.Logger()
	if err != nil {
		return nil, err
	}
	p := &Parser{cfg: cfg, log: log}
	if cfg.Sanitize {
		p.policy = bluemonday.UGCPolicy()
	}
	return p, nil
}

func (p *Parser) Config() *Config { return p.cfg }

func (p *Parser) input(r io.Reader) io.Reader {
	if p.policy == nil {
		return r
	}
	return p.policy.SanitizeReader(r)
}

func (p *Parser) parseOptions() []html.ParseOption {
	return []html.ParseOption{html.ParseOptionEnableScripting(p.cfg.ScriptingEnabled)}
}

// NewDocument creates an empty document that logs the way parsed
// documents do.
func (p *Parser) NewDocument() *dom.Document {
	return dom.NewDocument(
		dom.WithLogger(p.log),
		dom.WithURL(webidl.USVString(p.cfg.URL)),
	)
}

// Parse reads a complete HTML document.
func (p *Parser) Parse(r io.Reader) (*dom.Document, error) {
	root, err := html.ParseWithOptions(p.input(r), p.parseOptions()...)
	if err != nil {
		return nil, errors.Wrap(err, "parse html")
	}

	doc := p.NewDocument()
	b := &builder{doc: doc}
	if err := b.appendChildren(doc.Node, root); err != nil {
		return nil, err
	}
	doc.Log().WithField("nodes", doc.Len()).Debug("parsed document")
	return doc, nil
}

// ParseString is Parse over a string.
func (p *Parser) ParseString(s string) (*dom.Document, error) {
	return p.Parse(strings.NewReader(s))
}

// ParseFragment parses r as the contents of an HTML element named
// contextTag and returns the nodes in a fragment owned by doc. An empty
// contextTag uses the configured FragmentContext.
func (p *Parser) ParseFragment(r io.Reader, doc *dom.Document, contextTag string) (*dom.DocumentFragment, error) {
	if contextTag == "" {
		contextTag = p.cfg.FragmentContext
	}
	contextTag = strings.ToLower(contextTag)
	context := &html.Node{
		Type:     html.ElementNode,
		Data:     contextTag,
		DataAtom: atom.Lookup([]byte(contextTag)),
	}
	nodes, err := html.ParseFragmentWithOptions(p.input(r), context, p.parseOptions()...)
	if err != nil {
		return nil, errors.Wrapf(err, "parse fragment in <%s>", contextTag)
	}

	frag, err := doc.CreateDocumentFragment()
	if err != nil {
		return nil, err
	}
	b := &builder{doc: doc}
	for _, n := range nodes {
		if err := b.append(frag.Node, n); err != nil {
			return nil, err
		}
	}
	return frag, nil
}
