package dom

import "github.com/heathj/domtree/parser/webidl"

// HTMLElement is https://html.spec.whatwg.org/#htmlelement
// Interfaces with no members of their own, like <div> or <span>, are plain
// HTMLElements whose type id names the interface.
type HTMLElement struct {
	Title, Lang, Dir, AccessKey              webidl.DOMString
	Translate, Hidden, Draggable, Spellcheck bool

	*Element
}

func newInheritedHTMLElement(kind HTMLElementKind, localName, prefix webidl.DOMString, document *Document) *HTMLElement {
	return &HTMLElement{
		Translate: true,
		Element:   newInheritedElement(HTMLElementTypeID(kind), localName, prefix, Htmlns, document),
	}
}

// NewHTMLElement creates and reflects an element of a catalog kind that has
// no dedicated constructor.
func NewHTMLElement(kind HTMLElementKind, localName, prefix webidl.DOMString, document *Document) (*HTMLElement, error) {
	element := newInheritedHTMLElement(kind, localName, prefix, document)
	if _, err := document.ReflectNode(element); err != nil {
		return nil, err
	}
	return element, nil
}

// AsHTMLElement recovers the HTMLElement view of any HTML element node.
func AsHTMLElement(n *Node) (*HTMLElement, bool) {
	if n == nil || !n.typeID.IsHTMLElement() {
		return nil, false
	}
	r, ok := n.impl.(interface{ AsHTMLElement() *HTMLElement })
	if !ok {
		return nil, false
	}
	return r.AsHTMLElement(), true
}

// AsHTMLElement returns e. Typed wrappers expose their base through it.
func (e *HTMLElement) AsHTMLElement() *HTMLElement { return e }
