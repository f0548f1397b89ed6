package dom

import "slices"

// NodeList is https://dom.spec.whatwg.org/#nodelist
type NodeList []*Node

// Length is https://dom.spec.whatwg.org/#dom-nodelist-length
func (h NodeList) Length() int { return len(h) }

// Item is https://dom.spec.whatwg.org/#dom-nodelist-item
func (h NodeList) Item(i int) *Node {
	if i < 0 || i >= len(h) {
		return nil
	}
	return h[i]
}

func (h *NodeList) Contains(n *Node) int {
	for i := range *h {
		if n == (*h)[i] {
			return i
		}
	}
	return -1
}

func (h *NodeList) Remove(i int) *Node {
	if i < 0 {
		return nil
	}
	if i >= len(*h) {
		return nil
	}
	node := (*h)[i]
	*h = slices.Delete(*h, i, i+1)
	return node
}

func (h *NodeList) WedgeIn(i int, n *Node) {
	if i < 0 {
		return
	}
	if i >= len(*h) {
		*h = append(*h, n)
		return
	}
	*h = slices.Insert(*h, i, n)
}
