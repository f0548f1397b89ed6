package dom

import (
	"strings"

	"golang.org/x/net/html/atom"
)

// A type id records the exact kind of an event target through every level of
// the interface chain: EventTarget -> Node -> Element -> HTMLElement -> kind.
// Each level is a small closed enumeration and the levels nest as comparable
// structs, so two ids are the same kind exactly when they are ==. Levels
// below the one a value stops at are left zero.

// EventTargetKind is the outermost level of a type id.
type EventTargetKind uint8

const (
	EventTargetNode EventTargetKind = iota + 1
	EventTargetWindow
)

// NodeKind is https://dom.spec.whatwg.org/#node, one entry per concrete node interface.
type NodeKind uint8

const (
	NodeElement NodeKind = iota + 1
	NodeText
	NodeComment
	NodeDocument
	NodeDocumentType
	NodeDocumentFragment
)

// ElementKind separates elements by namespace.
type ElementKind uint8

const (
	ElementHTML ElementKind = iota + 1
	ElementSVG
	ElementMathML
	// ElementOther is an element in a namespace this package does not model.
	ElementOther
)

// HTMLElementKind is the closed catalog of HTML element interfaces.
type HTMLElementKind uint8

const (
	HTMLAnchorKind HTMLElementKind = iota + 1
	HTMLBodyKind
	HTMLBRKind
	HTMLButtonKind
	HTMLDataListKind
	HTMLDivKind
	HTMLFormKind
	HTMLFrameKind
	HTMLFrameSetKind
	HTMLHeadKind
	HTMLHeadingKind
	HTMLHtmlKind
	HTMLImageKind
	HTMLInputKind
	HTMLLabelKind
	HTMLLIKind
	HTMLLinkKind
	HTMLMetaKind
	HTMLOListKind
	HTMLOptGroupKind
	HTMLOptionKind
	HTMLParagraphKind
	HTMLScriptKind
	HTMLSelectKind
	HTMLSpanKind
	HTMLStyleKind
	HTMLTableKind
	HTMLTableCellKind
	HTMLTableRowKind
	HTMLTableSectionKind
	HTMLTemplateKind
	HTMLTextAreaKind
	HTMLTitleKind
	HTMLUListKind
	HTMLUnknownKind

	numHTMLElementKinds = iota + 1
)

var htmlElementKindNames = [numHTMLElementKinds]string{
	"",
	"HTMLAnchorElement",
	"HTMLBodyElement",
	"HTMLBRElement",
	"HTMLButtonElement",
	"HTMLDataListElement",
	"HTMLDivElement",
	"HTMLFormElement",
	"HTMLFrameElement",
	"HTMLFrameSetElement",
	"HTMLHeadElement",
	"HTMLHeadingElement",
	"HTMLHtmlElement",
	"HTMLImageElement",
	"HTMLInputElement",
	"HTMLLabelElement",
	"HTMLLIElement",
	"HTMLLinkElement",
	"HTMLMetaElement",
	"HTMLOListElement",
	"HTMLOptGroupElement",
	"HTMLOptionElement",
	"HTMLParagraphElement",
	"HTMLScriptElement",
	"HTMLSelectElement",
	"HTMLSpanElement",
	"HTMLStyleElement",
	"HTMLTableElement",
	"HTMLTableCellElement",
	"HTMLTableRowElement",
	"HTMLTableSectionElement",
	"HTMLTemplateElement",
	"HTMLTextAreaElement",
	"HTMLTitleElement",
	"HTMLUListElement",
	"HTMLUnknownElement",
}

func (k HTMLElementKind) String() string {
	if k == 0 || int(k) >= len(htmlElementKindNames) {
		return "HTMLElement"
	}
	return htmlElementKindNames[k]
}

// HTMLElementKinds returns every kind in the catalog, in declaration order.
func HTMLElementKinds() []HTMLElementKind {
	kinds := make([]HTMLElementKind, 0, numHTMLElementKinds-1)
	for k := HTMLElementKind(1); k < numHTMLElementKinds; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// ParseHTMLElementKind looks a kind up by interface name, e.g. "HTMLOptionElement".
func ParseHTMLElementKind(name string) (HTMLElementKind, bool) {
	for k := HTMLElementKind(1); k < numHTMLElementKinds; k++ {
		if strings.EqualFold(htmlElementKindNames[k], name) {
			return k, true
		}
	}
	return 0, false
}

var htmlElementKindsByAtom = map[atom.Atom]HTMLElementKind{
	atom.A:        HTMLAnchorKind,
	atom.Body:     HTMLBodyKind,
	atom.Br:       HTMLBRKind,
	atom.Button:   HTMLButtonKind,
	atom.Datalist: HTMLDataListKind,
	atom.Div:      HTMLDivKind,
	atom.Form:     HTMLFormKind,
	atom.Frame:    HTMLFrameKind,
	atom.Frameset: HTMLFrameSetKind,
	atom.Head:     HTMLHeadKind,
	atom.H1:       HTMLHeadingKind,
	atom.H2:       HTMLHeadingKind,
	atom.H3:       HTMLHeadingKind,
	atom.H4:       HTMLHeadingKind,
	atom.H5:       HTMLHeadingKind,
	atom.H6:       HTMLHeadingKind,
	atom.Html:     HTMLHtmlKind,
	atom.Img:      HTMLImageKind,
	atom.Input:    HTMLInputKind,
	atom.Label:    HTMLLabelKind,
	atom.Li:       HTMLLIKind,
	atom.Link:     HTMLLinkKind,
	atom.Meta:     HTMLMetaKind,
	atom.Ol:       HTMLOListKind,
	atom.Optgroup: HTMLOptGroupKind,
	atom.Option:   HTMLOptionKind,
	atom.P:        HTMLParagraphKind,
	atom.Script:   HTMLScriptKind,
	atom.Select:   HTMLSelectKind,
	atom.Span:     HTMLSpanKind,
	atom.Style:    HTMLStyleKind,
	atom.Table:    HTMLTableKind,
	atom.Td:       HTMLTableCellKind,
	atom.Th:       HTMLTableCellKind,
	atom.Tr:       HTMLTableRowKind,
	atom.Thead:    HTMLTableSectionKind,
	atom.Tbody:    HTMLTableSectionKind,
	atom.Tfoot:    HTMLTableSectionKind,
	atom.Template: HTMLTemplateKind,
	atom.Textarea: HTMLTextAreaKind,
	atom.Title:    HTMLTitleKind,
	atom.Ul:       HTMLUListKind,
}

// HTMLElementKindForTag maps an HTML local name to its interface. Names
// outside the catalog are HTMLUnknownKind.
func HTMLElementKindForTag(localName string) HTMLElementKind {
	if k, ok := htmlElementKindsByAtom[atom.Lookup([]byte(strings.ToLower(localName)))]; ok {
		return k
	}
	return HTMLUnknownKind
}

// ElementTypeID is the element level of a type id. HTML is only set when
// Kind is ElementHTML.
type ElementTypeID struct {
	Kind ElementKind
	HTML HTMLElementKind
}

// NodeTypeID is the node level of a type id. Element is only set when Kind
// is NodeElement.
type NodeTypeID struct {
	Kind    NodeKind
	Element ElementTypeID
}

// EventTargetTypeID is the full type id stored on every node.
type EventTargetTypeID struct {
	Kind EventTargetKind
	Node NodeTypeID
}

// NodeTypeIDOf is the id of a non-element node kind.
func NodeTypeIDOf(kind NodeKind) EventTargetTypeID {
	return EventTargetTypeID{Kind: EventTargetNode, Node: NodeTypeID{Kind: kind}}
}

// ElementTypeIDOf is the id of a non-HTML element kind.
func ElementTypeIDOf(kind ElementKind) EventTargetTypeID {
	return EventTargetTypeID{
		Kind: EventTargetNode,
		Node: NodeTypeID{Kind: NodeElement, Element: ElementTypeID{Kind: kind}},
	}
}

// HTMLElementTypeID is the id of an HTML element of the given kind.
func HTMLElementTypeID(kind HTMLElementKind) EventTargetTypeID {
	return EventTargetTypeID{
		Kind: EventTargetNode,
		Node: NodeTypeID{
			Kind:    NodeElement,
			Element: ElementTypeID{Kind: ElementHTML, HTML: kind},
		},
	}
}

func (t EventTargetTypeID) IsNode() bool {
	return t.Kind == EventTargetNode
}

func (t EventTargetTypeID) IsElement() bool {
	return t.IsNode() && t.Node.Kind == NodeElement
}

func (t EventTargetTypeID) IsHTMLElement() bool {
	return t.IsElement() && t.Node.Element.Kind == ElementHTML
}

// HTMLKind returns the catalog entry of an HTML element id.
func (t EventTargetTypeID) HTMLKind() (HTMLElementKind, bool) {
	if !t.IsHTMLElement() {
		return 0, false
	}
	return t.Node.Element.HTML, true
}

func (t EventTargetTypeID) String() string {
	switch t.Kind {
	case EventTargetWindow:
		return "Window"
	case EventTargetNode:
	default:
		return "EventTarget"
	}

	switch t.Node.Kind {
	case NodeText:
		return "Text"
	case NodeComment:
		return "Comment"
	case NodeDocument:
		return "Document"
	case NodeDocumentType:
		return "DocumentType"
	case NodeDocumentFragment:
		return "DocumentFragment"
	case NodeElement:
	default:
		return "Node"
	}

	switch t.Node.Element.Kind {
	case ElementHTML:
		return t.Node.Element.HTML.String()
	case ElementSVG:
		return "SVGElement"
	case ElementMathML:
		return "MathMLElement"
	default:
		return "Element"
	}
}

// IsKind reports whether n was constructed as the given kind. It compares
// the whole path, so a mismatch at any level is false. A nil node is no kind.
func IsKind(n *Node, want EventTargetTypeID) bool {
	return n != nil && n.typeID == want
}

// IsHTMLElementKind is IsKind for a catalog entry.
func IsHTMLElementKind(n *Node, kind HTMLElementKind) bool {
	return IsKind(n, HTMLElementTypeID(kind))
}
