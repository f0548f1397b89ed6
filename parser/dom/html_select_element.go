package dom

import "github.com/heathj/domtree/parser/webidl"

// HTMLSelectElement is https://html.spec.whatwg.org/#htmlselectelement
type HTMLSelectElement struct {
	*HTMLElement
}

// IsHTMLSelectElement reports whether n was constructed as a <select>.
func IsHTMLSelectElement(n *Node) bool {
	return IsKind(n, HTMLElementTypeID(HTMLSelectKind))
}

// AsHTMLSelectElement recovers the typed element behind n.
func AsHTMLSelectElement(n *Node) (*HTMLSelectElement, bool) {
	if !IsHTMLSelectElement(n) {
		return nil, false
	}
	e, ok := n.impl.(*HTMLSelectElement)
	return e, ok
}

func newInheritedHTMLSelectElement(localName, prefix webidl.DOMString, document *Document) *HTMLSelectElement {
	return &HTMLSelectElement{
		HTMLElement: newInheritedHTMLElement(HTMLSelectKind, localName, prefix, document),
	}
}

// NewHTMLSelectElement creates a <select> and reflects it into document.
func NewHTMLSelectElement(localName, prefix webidl.DOMString, document *Document) (*HTMLSelectElement, error) {
	element := newInheritedHTMLSelectElement(localName, prefix, document)
	if _, err := document.ReflectNode(element); err != nil {
		return nil, err
	}
	return element, nil
}

// selectOptionsFilter is https://html.spec.whatwg.org/#concept-select-option-list
// Options that are children of the select, or children of an <optgroup>
// child of it.
type selectOptionsFilter struct{}

func (selectOptionsFilter) Filter(elem *Element, root *Node) bool {
	if !IsHTMLOptionElement(elem.Node) {
		return false
	}
	parent := elem.ParentNode
	if parent == root {
		return true
	}
	return parent != nil && parent.ParentNode == root &&
		IsKind(parent, HTMLElementTypeID(HTMLOptGroupKind))
}

// Options is https://html.spec.whatwg.org/#dom-select-options
func (e *HTMLSelectElement) Options() *HTMLCollection {
	node := e.AsNode()
	return CreateHTMLCollection(WindowFromNode(node), node, selectOptionsFilter{})
}

// Length is https://html.spec.whatwg.org/#dom-select-length
func (e *HTMLSelectElement) Length() int {
	return e.Options().Length()
}

// SelectedIndex is the index of the first option with the selected
// attribute, the first option when none has it, or -1 without options.
func (e *HTMLSelectElement) SelectedIndex() int {
	i, first := 0, -1
	for elem := range e.Options().All() {
		if first < 0 {
			first = i
		}
		if elem.HasAttribute("selected") {
			return i
		}
		i++
	}
	return first
}

// Value is https://html.spec.whatwg.org/#dom-select-value
func (e *HTMLSelectElement) Value() webidl.DOMString {
	i := e.SelectedIndex()
	if i < 0 {
		return ""
	}
	opt, ok := AsHTMLOptionElement(e.Options().Item(i).AsNode())
	if !ok {
		return ""
	}
	return opt.Value()
}

func (e *HTMLSelectElement) Multiple() bool {
	return e.HasAttribute("multiple")
}
