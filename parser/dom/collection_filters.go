package dom

import (
	"slices"

	"github.com/heathj/domtree/parser/webidl"
)

type kindFilter struct {
	want EventTargetTypeID
}

func (f kindFilter) Filter(elem *Element, _ *Node) bool {
	return IsKind(elem.Node, f.want)
}

// KindFilter matches HTML elements of one catalog kind.
func KindFilter(kind HTMLElementKind) CollectionFilter {
	return kindFilter{want: HTMLElementTypeID(kind)}
}

// TypeIDFilter matches elements whose type id is exactly want.
func TypeIDFilter(want EventTargetTypeID) CollectionFilter {
	return kindFilter{want: want}
}

// AllElementsFilter matches every element.
func AllElementsFilter() CollectionFilter {
	return FilterFunc(func(*Element, *Node) bool { return true })
}

// ChildrenFilter matches only direct element children of the root.
func ChildrenFilter() CollectionFilter {
	return FilterFunc(func(elem *Element, root *Node) bool {
		return elem.ParentNode == root
	})
}

// LocalNameFilter is https://dom.spec.whatwg.org/#concept-getelementsbyqualifiedname
// "*" matches every element. In an HTML document HTML elements are matched
// against the lowercased name.
func LocalNameFilter(qualifiedName webidl.DOMString) CollectionFilter {
	if qualifiedName == "*" {
		return AllElementsFilter()
	}
	lower := qualifiedName.ASCIILowercase()
	return FilterFunc(func(elem *Element, _ *Node) bool {
		if elem.NamespaceURI == Htmlns && elem.document != nil && elem.document.IsHTML() {
			return elem.NodeName == lower
		}
		return elem.NodeName == qualifiedName
	})
}

// ClassNameFilter is https://dom.spec.whatwg.org/#concept-getelementsbyclassname
// Elements must carry every class in classNames. An empty set matches nothing.
func ClassNameFilter(classNames webidl.DOMString) CollectionFilter {
	want := splitTokens(classNames)
	return FilterFunc(func(elem *Element, _ *Node) bool {
		if len(want) == 0 {
			return false
		}
		have := elem.ClassList()
		for _, c := range want {
			if !slices.Contains(have, c) {
				return false
			}
		}
		return true
	})
}

// GetElementsByTagName is https://dom.spec.whatwg.org/#dom-element-getelementsbytagname
func (n *Node) GetElementsByTagName(qualifiedName webidl.DOMString) *HTMLCollection {
	return CreateHTMLCollection(WindowFromNode(n), n, LocalNameFilter(qualifiedName))
}

// GetElementsByClassName is https://dom.spec.whatwg.org/#dom-element-getelementsbyclassname
func (n *Node) GetElementsByClassName(classNames webidl.DOMString) *HTMLCollection {
	return CreateHTMLCollection(WindowFromNode(n), n, ClassNameFilter(classNames))
}

// GetElementsByKind is the live collection of descendants of one kind.
func (n *Node) GetElementsByKind(kind HTMLElementKind) *HTMLCollection {
	return CreateHTMLCollection(WindowFromNode(n), n, KindFilter(kind))
}

// Children is https://dom.spec.whatwg.org/#dom-parentnode-children
func (n *Node) Children() *HTMLCollection {
	return CreateHTMLCollection(WindowFromNode(n), n, ChildrenFilter())
}
