package dom

import (
	"slices"

	"github.com/heathj/domtree/parser/webidl"
)

// NamedNodeMap is https://dom.spec.whatwg.org/#namednodemap
// Attributes keep the order they were first set in.
type NamedNodeMap struct {
	attrs             []*Attr
	AssociatedElement *Element
}

func NewNamedNodeMap(oe *Element) *NamedNodeMap {
	return &NamedNodeMap{AssociatedElement: oe}
}

func (n *NamedNodeMap) Length() int {
	if n == nil {
		return 0
	}
	return len(n.attrs)
}

func (n *NamedNodeMap) Item(i int) *Attr {
	if i < 0 || i >= n.Length() {
		return nil
	}
	return n.attrs[i]
}

// All returns a copy of the attribute list.
func (n *NamedNodeMap) All() []*Attr {
	if n == nil {
		return nil
	}
	return slices.Clone(n.attrs)
}

func (n *NamedNodeMap) GetNamedItem(qn webidl.DOMString) *Attr {
	return n.getAttributeByName(qn)
}

// https://dom.spec.whatwg.org/#concept-element-attributes-get-by-name
func (n *NamedNodeMap) getAttributeByName(qn webidl.DOMString) *Attr {
	if n == nil {
		return nil
	}
	if oe := n.AssociatedElement; oe != nil && oe.NamespaceURI == Htmlns &&
		oe.document != nil && oe.document.IsHTML() {
		qn = qn.ASCIILowercase()
	}

	for _, a := range n.attrs {
		if a.Name == qn {
			return a
		}
	}
	return nil
}

func (n *NamedNodeMap) getAttributeByNSLocalName(ns Namespace, ln webidl.DOMString) *Attr {
	if n == nil {
		return nil
	}
	for _, a := range n.attrs {
		if a.Namespace == ns && a.LocalName == ln {
			return a
		}
	}
	return nil
}

func (n *NamedNodeMap) GetNamedItemNS(ns Namespace, ln webidl.DOMString) *Attr {
	return n.getAttributeByNSLocalName(ns, ln)
}

// SetNamedItem is https://dom.spec.whatwg.org/#dom-namednodemap-setnameditem
// It returns the attribute that was replaced, if any.
func (n *NamedNodeMap) SetNamedItem(s *Attr) *Attr {
	if s == nil {
		return nil
	}
	s.OwnerElement = n.AssociatedElement

	for i, old := range n.attrs {
		if old.Namespace == s.Namespace && old.LocalName == s.LocalName {
			if old == s {
				return nil
			}
			n.attrs[i] = s
			old.OwnerElement = nil
			return old
		}
	}
	n.attrs = append(n.attrs, s)
	return nil
}

// RemoveNamedItem removes the attribute with the given qualified name and
// returns it, or nil when there was none.
func (n *NamedNodeMap) RemoveNamedItem(qn webidl.DOMString) *Attr {
	a := n.getAttributeByName(qn)
	if a == nil {
		return nil
	}
	n.attrs = slices.DeleteFunc(n.attrs, func(o *Attr) bool { return o == a })
	a.OwnerElement = nil
	return a
}
