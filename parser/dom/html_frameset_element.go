package dom

import "github.com/heathj/domtree/parser/webidl"

// HTMLFrameSetElement is https://html.spec.whatwg.org/#htmlframesetelement
type HTMLFrameSetElement struct {
	*HTMLElement
}

// IsHTMLFrameSetElement reports whether n was constructed as a <frameset>.
func IsHTMLFrameSetElement(n *Node) bool {
	return IsKind(n, HTMLElementTypeID(HTMLFrameSetKind))
}

// AsHTMLFrameSetElement recovers the typed element behind n.
func AsHTMLFrameSetElement(n *Node) (*HTMLFrameSetElement, bool) {
	if !IsHTMLFrameSetElement(n) {
		return nil, false
	}
	e, ok := n.impl.(*HTMLFrameSetElement)
	return e, ok
}

func newInheritedHTMLFrameSetElement(localName, prefix webidl.DOMString, document *Document) *HTMLFrameSetElement {
	return &HTMLFrameSetElement{
		HTMLElement: newInheritedHTMLElement(HTMLFrameSetKind, localName, prefix, document),
	}
}

// NewHTMLFrameSetElement creates a <frameset> and reflects it into document.
func NewHTMLFrameSetElement(localName, prefix webidl.DOMString, document *Document) (*HTMLFrameSetElement, error) {
	element := newInheritedHTMLFrameSetElement(localName, prefix, document)
	if _, err := document.ReflectNode(element); err != nil {
		return nil, err
	}
	return element, nil
}

func (e *HTMLFrameSetElement) Cols() webidl.DOMString { return e.GetAttribute("cols") }
func (e *HTMLFrameSetElement) Rows() webidl.DOMString { return e.GetAttribute("rows") }

func (e *HTMLFrameSetElement) SetCols(v webidl.DOMString) { e.SetAttribute("cols", v) }
func (e *HTMLFrameSetElement) SetRows(v webidl.DOMString) { e.SetAttribute("rows", v) }

// Frames is the live list of <frame> and nested <frameset> children.
func (e *HTMLFrameSetElement) Frames() *HTMLCollection {
	node := e.AsNode()
	return CreateHTMLCollection(WindowFromNode(node), node, FilterFunc(func(elem *Element, root *Node) bool {
		return elem.ParentNode == root &&
			(IsKind(elem.Node, HTMLElementTypeID(HTMLFrameKind)) || IsHTMLFrameSetElement(elem.Node))
	}))
}
