package parser

import (
	"strings"

	"github.com/heathj/domtree/parser/dom"
)

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"\u00A0", "&nbsp;",
	"<", "&lt;",
	">", "&gt;",
)

var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"\u00A0", "&nbsp;",
	"\"", "&quot;",
)

// https://html.spec.whatwg.org/#void-elements
var voidElements = map[string]bool{
	"area": true, "base": true, "basefont": true, "bgsound": true, "br": true,
	"col": true, "embed": true, "frame": true, "hr": true, "img": true,
	"input": true, "keygen": true, "link": true, "meta": true, "param": true,
	"source": true, "track": true, "wbr": true,
}

// https://html.spec.whatwg.org/#serialising-html-fragments
var rawTextParents = map[string]bool{
	"style": true, "script": true, "xmp": true, "iframe": true,
	"noembed": true, "noframes": true, "plaintext": true,
}

// SerializeHTMLFragment is the HTML serialization of node's children.
// https://html.spec.whatwg.org/#serialising-html-fragments
func SerializeHTMLFragment(node *dom.Node, scriptingEnabled bool) string {
	var sb strings.Builder
	serializeChildren(&sb, node, scriptingEnabled)
	return sb.String()
}

// SerializeHTML is the HTML serialization of node itself followed by its
// children, what outerHTML returns for an element.
func SerializeHTML(node *dom.Node, scriptingEnabled bool) string {
	if node.NodeType() == dom.DocumentNode || node.NodeType() == dom.DocumentFragmentNode {
		return SerializeHTMLFragment(node, scriptingEnabled)
	}
	var sb strings.Builder
	serializeNode(&sb, node, scriptingEnabled)
	return sb.String()
}

func serializeChildren(sb *strings.Builder, node *dom.Node, scriptingEnabled bool) {
	if e := node.AsElement(); e != nil && e.NamespaceURI == dom.Htmlns && voidElements[string(e.LocalName)] {
		return
	}
	for _, child := range node.ChildNodes {
		serializeNode(sb, child, scriptingEnabled)
	}
}

func serializeNode(sb *strings.Builder, node *dom.Node, scriptingEnabled bool) {
	switch node.NodeType() {
	case dom.ElementNode:
		e := node.AsElement()
		tag := string(e.LocalName)
		if e.NamespaceURI != dom.Htmlns {
			tag = string(e.NodeName)
		}
		sb.WriteString("<" + tag)
		for _, a := range e.Attributes.All() {
			sb.WriteString(" " + attributeName(a) + "=\"" + attrEscaper.Replace(string(a.Value)) + "\"")
		}
		sb.WriteString(">")
		if e.NamespaceURI == dom.Htmlns && voidElements[tag] {
			return
		}
		serializeChildren(sb, node, scriptingEnabled)
		sb.WriteString("</" + tag + ">")
	case dom.TextNode:
		data := string(node.TextContent())
		if p := node.ParentElement(); p != nil && p.NamespaceURI == dom.Htmlns {
			name := string(p.LocalName)
			if rawTextParents[name] || (name == "noscript" && scriptingEnabled) {
				sb.WriteString(data)
				return
			}
		}
		sb.WriteString(escaper.Replace(data))
	case dom.CommentNode:
		sb.WriteString("<!--" + string(node.TextContent()) + "-->")
	case dom.DocumentTypeNode:
		sb.WriteString("<!DOCTYPE " + string(node.NodeName) + ">")
	}
}

// https://html.spec.whatwg.org/#attribute's-serialised-name
func attributeName(a *dom.Attr) string {
	switch a.Namespace {
	case dom.Xmlns:
		return "xml:" + string(a.LocalName)
	case dom.Xmlnsns:
		if a.LocalName == "xmlns" {
			return "xmlns"
		}
		return "xmlns:" + string(a.LocalName)
	case dom.Xlinkns:
		return "xlink:" + string(a.LocalName)
	}
	return string(a.Name)
}
