package dom

import "github.com/heathj/domtree/parser/webidl"

// HTMLDataListElement is https://html.spec.whatwg.org/#htmldatalistelement
type HTMLDataListElement struct {
	*HTMLElement
}

// IsHTMLDataListElement reports whether n was constructed as a <datalist>.
func IsHTMLDataListElement(n *Node) bool {
	return IsKind(n, HTMLElementTypeID(HTMLDataListKind))
}

// AsHTMLDataListElement recovers the typed element behind n.
func AsHTMLDataListElement(n *Node) (*HTMLDataListElement, bool) {
	if !IsHTMLDataListElement(n) {
		return nil, false
	}
	e, ok := n.impl.(*HTMLDataListElement)
	return e, ok
}

func newInheritedHTMLDataListElement(localName, prefix webidl.DOMString, document *Document) *HTMLDataListElement {
	return &HTMLDataListElement{
		HTMLElement: newInheritedHTMLElement(HTMLDataListKind, localName, prefix, document),
	}
}

// NewHTMLDataListElement creates a <datalist> and reflects it into document.
// Registration errors are returned as the document reported them.
func NewHTMLDataListElement(localName, prefix webidl.DOMString, document *Document) (*HTMLDataListElement, error) {
	element := newInheritedHTMLDataListElement(localName, prefix, document)
	if _, err := document.ReflectNode(element); err != nil {
		return nil, err
	}
	return element, nil
}

// Options is https://html.spec.whatwg.org/#dom-datalist-options
// Every option descendant, recomputed on each access of the collection.
func (e *HTMLDataListElement) Options() *HTMLCollection {
	node := e.AsNode()
	return CreateHTMLCollection(WindowFromNode(node), node, KindFilter(HTMLOptionKind))
}
