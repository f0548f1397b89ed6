package dom

import "github.com/heathj/domtree/parser/webidl"

// HTMLOptionElement is https://html.spec.whatwg.org/#htmloptionelement
type HTMLOptionElement struct {
	*HTMLElement
}

// IsHTMLOptionElement reports whether n was constructed as an <option>.
func IsHTMLOptionElement(n *Node) bool {
	return IsKind(n, HTMLElementTypeID(HTMLOptionKind))
}

// AsHTMLOptionElement recovers the typed element behind n.
func AsHTMLOptionElement(n *Node) (*HTMLOptionElement, bool) {
	if !IsHTMLOptionElement(n) {
		return nil, false
	}
	e, ok := n.impl.(*HTMLOptionElement)
	return e, ok
}

func newInheritedHTMLOptionElement(localName, prefix webidl.DOMString, document *Document) *HTMLOptionElement {
	return &HTMLOptionElement{
		HTMLElement: newInheritedHTMLElement(HTMLOptionKind, localName, prefix, document),
	}
}

// NewHTMLOptionElement creates an <option> and reflects it into document.
func NewHTMLOptionElement(localName, prefix webidl.DOMString, document *Document) (*HTMLOptionElement, error) {
	element := newInheritedHTMLOptionElement(localName, prefix, document)
	if _, err := document.ReflectNode(element); err != nil {
		return nil, err
	}
	return element, nil
}

// Text is https://html.spec.whatwg.org/#dom-option-text
func (e *HTMLOptionElement) Text() webidl.DOMString {
	return e.TextContent().StripAndCollapseWhitespace()
}

// Value is https://html.spec.whatwg.org/#dom-option-value
// Without a value attribute it falls back to the option's text.
func (e *HTMLOptionElement) Value() webidl.DOMString {
	if e.HasAttribute("value") {
		return e.GetAttribute("value")
	}
	return e.Text()
}

// Label is https://html.spec.whatwg.org/#dom-option-label
func (e *HTMLOptionElement) Label() webidl.DOMString {
	if e.HasAttribute("label") {
		return e.GetAttribute("label")
	}
	return e.Text()
}

// DefaultSelected reflects the selected content attribute.
func (e *HTMLOptionElement) DefaultSelected() bool {
	return e.HasAttribute("selected")
}

func (e *HTMLOptionElement) Disabled() bool {
	return e.HasAttribute("disabled")
}
