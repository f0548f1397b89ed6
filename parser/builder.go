package parser

import (
	"github.com/heathj/domtree/parser/dom"
	"github.com/heathj/domtree/parser/webidl"
	"github.com/pkg/errors"
	"golang.org/x/net/html"
)

// builder copies an x/net/html tree into a document, creating every
// element through the document so each one gets the type of its tag.
type builder struct {
	doc *dom.Document
}

func (b *builder) appendChildren(parent *dom.Node, src *html.Node) error {
	for c := src.FirstChild; c != nil; c = c.NextSibling {
		if err := b.append(parent, c); err != nil {
			return err
		}
	}
	return nil
}

func (b *builder) append(parent *dom.Node, src *html.Node) error {
	n, err := b.node(src)
	if err != nil {
		return err
	}
	if n == nil {
		return nil
	}
	if _, err := parent.AppendChild(n); err != nil {
		return errors.Wrapf(err, "append %s", n.TypeID())
	}
	return b.appendChildren(n, src)
}

// node creates the counterpart of src. Error and raw nodes have none.
func (b *builder) node(src *html.Node) (*dom.Node, error) {
	switch src.Type {
	case html.ElementNode:
		e, err := b.element(src)
		if err != nil {
			return nil, err
		}
		return e.Node, nil
	case html.TextNode:
		t, err := b.doc.CreateTextNode(webidl.DOMString(src.Data))
		if err != nil {
			return nil, err
		}
		return t.Node, nil
	case html.CommentNode:
		c, err := b.doc.CreateComment(webidl.DOMString(src.Data))
		if err != nil {
			return nil, err
		}
		return c.Node, nil
	case html.DoctypeNode:
		var public, system string
		for _, a := range src.Attr {
			switch a.Key {
			case "public":
				public = a.Val
			case "system":
				system = a.Val
			}
		}
		dt, err := dom.NewDocumentType(webidl.DOMString(src.Data), webidl.DOMString(public), webidl.DOMString(system), b.doc)
		if err != nil {
			return nil, err
		}
		return dt.Node, nil
	}
	return nil, nil
}

var elementNamespaces = map[string]dom.Namespace{
	"":     dom.Htmlns,
	"svg":  dom.Svgns,
	"math": dom.Mathmlns,
}

var attributeNamespaces = map[string]dom.Namespace{
	"":      dom.Nullns,
	"xlink": dom.Xlinkns,
	"xml":   dom.Xmlns,
	"xmlns": dom.Xmlnsns,
}

func (b *builder) element(src *html.Node) (*dom.Element, error) {
	ns, ok := elementNamespaces[src.Namespace]
	if !ok {
		ns = dom.Nullns
	}
	e, err := b.doc.CreateElementNS(ns, webidl.DOMString(src.Data), "")
	if err != nil {
		return nil, err
	}
	for _, a := range src.Attr {
		attrNS, ok := attributeNamespaces[a.Namespace]
		if !ok {
			attrNS = dom.Nullns
		}
		var prefix webidl.DOMString
		if attrNS != dom.Nullns {
			prefix = webidl.DOMString(a.Namespace)
		}
		e.SetAttributeNS(attrNS, prefix, webidl.DOMString(a.Key), webidl.DOMString(a.Val))
	}
	return e, nil
}
