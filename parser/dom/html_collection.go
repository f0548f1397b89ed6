package dom

import (
	"iter"

	"github.com/heathj/domtree/parser/webidl"
)

// CollectionFilter decides which descendants of a collection's root belong
// to it. Filters are called during traversal and must not mutate the tree.
// The root is passed so a filter can match relative to it.
type CollectionFilter interface {
	Filter(elem *Element, root *Node) bool
}

// FilterFunc adapts a function to CollectionFilter.
type FilterFunc func(elem *Element, root *Node) bool

func (f FilterFunc) Filter(elem *Element, root *Node) bool { return f(elem, root) }

// HTMLCollection is https://dom.spec.whatwg.org/#htmlcollection
//
// The collection is live: it stores only its root and filter, and every
// call walks the root's descendants again. Nothing is cached, so results
// always reflect the tree as it is at the time of the call.
type HTMLCollection struct {
	window *Window
	root   *Node
	filter CollectionFilter
}

// CreateHTMLCollection returns a collection over the element descendants of
// root that match filter. No traversal happens until the collection is read.
func CreateHTMLCollection(window *Window, root *Node, filter CollectionFilter) *HTMLCollection {
	return &HTMLCollection{
		window: window,
		root:   root,
		filter: filter,
	}
}

func (c *HTMLCollection) Window() *Window { return c.window }
func (c *HTMLCollection) Root() *Node     { return c.root }

// All yields the matching elements in tree order. The tree must not be
// mutated from inside the loop; use Elements to take a copy first.
// The document rejects mutation until the walk ends, so an iterator from
// iter.Pull must have its stop function called, or the document stays
// read-only.
func (c *HTMLCollection) All() iter.Seq[*Element] {
	return func(yield func(*Element) bool) {
		if c == nil || c.root == nil || c.filter == nil {
			return
		}
		for n := range c.root.Descendants() {
			elem := n.AsElement()
			if elem == nil || !c.filter.Filter(elem, c.root) {
				continue
			}
			if !yield(elem) {
				return
			}
		}
	}
}

// Length is https://dom.spec.whatwg.org/#dom-htmlcollection-length
func (c *HTMLCollection) Length() int {
	n := 0
	for range c.All() {
		n++
	}
	return n
}

// Item is https://dom.spec.whatwg.org/#dom-htmlcollection-item
// Out of range indexes return nil.
func (c *HTMLCollection) Item(index int) *Element {
	if index < 0 {
		return nil
	}
	i := 0
	for elem := range c.All() {
		if i == index {
			return elem
		}
		i++
	}
	return nil
}

// NamedItem is https://dom.spec.whatwg.org/#dom-htmlcollection-nameditem
// The first element whose id is key, or an HTML element whose name
// attribute is key.
func (c *HTMLCollection) NamedItem(key webidl.DOMString) *Element {
	if key == "" {
		return nil
	}
	for elem := range c.All() {
		if elem.ID() == key {
			return elem
		}
		if elem.NamespaceURI == Htmlns && elem.GetAttribute("name") == key {
			return elem
		}
	}
	return nil
}

// Elements copies the current matches into a slice.
func (c *HTMLCollection) Elements() []*Element {
	var elems []*Element
	for elem := range c.All() {
		elems = append(elems, elem)
	}
	return elems
}
