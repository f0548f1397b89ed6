package dom

// WhatToShow selects node types for a NodeIterator.
// https://dom.spec.whatwg.org/#interface-nodefilter
type WhatToShow uint32

const (
	ShowElement          WhatToShow = 1 << (ElementNode - 1)
	ShowText             WhatToShow = 1 << (TextNode - 1)
	ShowComment          WhatToShow = 1 << (CommentNode - 1)
	ShowDocument         WhatToShow = 1 << (DocumentNode - 1)
	ShowDocumentType     WhatToShow = 1 << (DocumentTypeNode - 1)
	ShowDocumentFragment WhatToShow = 1 << (DocumentFragmentNode - 1)
	ShowAll              WhatToShow = 0xFFFFFFFF
)

// NodeFilter accepts or skips a node. A nil NodeFilter accepts everything.
type NodeFilter func(*Node) bool

// NodeIterator walks the inclusive descendants of a root one step at a
// time. Unlike Descendants it does not hold the tree read only between
// steps, and it does not adjust for nodes removed under it.
// https://dom.spec.whatwg.org/#nodeiterator
type NodeIterator struct {
	root                       *Node
	referenceNode              *Node
	pointerBeforeReferenceNode bool
	whatToShow                 WhatToShow
	filter                     NodeFilter
}

// CreateNodeIterator is https://dom.spec.whatwg.org/#dom-document-createnodeiterator
func (d *Document) CreateNodeIterator(root *Node, whatToShow WhatToShow, filter NodeFilter) *NodeIterator {
	return &NodeIterator{
		root:                       root,
		referenceNode:              root,
		pointerBeforeReferenceNode: true,
		whatToShow:                 whatToShow,
		filter:                     filter,
	}
}

func (it *NodeIterator) Root() *Node          { return it.root }
func (it *NodeIterator) ReferenceNode() *Node { return it.referenceNode }

func (it *NodeIterator) NextNode() *Node     { return it.traverse(true) }
func (it *NodeIterator) PreviousNode() *Node { return it.traverse(false) }

// https://dom.spec.whatwg.org/#concept-nodeiterator-traverse
func (it *NodeIterator) traverse(next bool) *Node {
	if it.root == nil || it.root.released {
		return nil
	}
	node := it.referenceNode
	before := it.pointerBeforeReferenceNode
	for {
		if next {
			if !before {
				if node = following(node, it.root); node == nil {
					return nil
				}
			} else {
				before = false
			}
		} else {
			if before {
				if node = preceding(node, it.root); node == nil {
					return nil
				}
			} else {
				before = true
			}
		}
		if it.accept(node) {
			break
		}
	}
	it.referenceNode = node
	it.pointerBeforeReferenceNode = before
	return node
}

func (it *NodeIterator) accept(n *Node) bool {
	if it.whatToShow&(1<<(n.NodeType()-1)) == 0 {
		return false
	}
	return it.filter == nil || it.filter(n)
}

// preceding is the previous node in tree order that is still inside root.
func preceding(c, root *Node) *Node {
	if c == root {
		return nil
	}
	if p := c.PreviousSibling; p != nil {
		for p.LastChild != nil {
			p = p.LastChild
		}
		return p
	}
	return c.ParentNode
}
