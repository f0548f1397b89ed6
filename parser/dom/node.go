package dom

import (
	"iter"
	"slices"
	"sort"
	"strings"

	"github.com/heathj/domtree/parser/webidl"
	"github.com/pkg/errors"
)

type NodeType uint16

const (
	ElementNode NodeType = iota + 1
	AttrNode
	TextNode
	CDATASectionNode
	ProcessingInstructionNode
	CommentNode
	DocumentNode
	DocumentTypeNode
	DocumentFragmentNode
)

// NodeID identifies a node inside its owning document. Zero means the node
// has not been reflected yet.
type NodeID uint64

// Reflectable is anything that can be registered with a document: a Node
// or one of the typed wrappers composed around it.
type Reflectable interface {
	AsNode() *Node
}

// Node is https://dom.spec.whatwg.org/#node
//
// The tree links are owned by the document and maintained by AppendChild,
// InsertBefore and RemoveChild; callers should treat them as read only.
type Node struct {
	NodeName                                                        webidl.DOMString
	ParentNode, FirstChild, LastChild, PreviousSibling, NextSibling *Node
	ChildNodes                                                      NodeList

	typeID   EventTargetTypeID
	document *Document
	id       NodeID
	released bool
	impl     Reflectable

	// set for the node kinds that carry them
	element       *Element
	characterData *CharacterData
	doctype       *DocumentType
}

func newInheritedNode(typeID EventTargetTypeID, name webidl.DOMString, document *Document) *Node {
	return &Node{
		NodeName: name,
		typeID:   typeID,
		document: document,
	}
}

// AsNode implements Reflectable.
func (n *Node) AsNode() *Node { return n }

// TypeID is the node's type id, fixed when the node was constructed.
func (n *Node) TypeID() EventTargetTypeID { return n.typeID }

// NodeID is zero until the node is reflected into its document.
func (n *Node) NodeID() NodeID { return n.id }

// Released reports whether the owning document has let go of the node.
func (n *Node) Released() bool { return n.released }

// Reflector returns the value the node was reflected from, e.g. the
// *HTMLDataListElement that owns it.
func (n *Node) Reflector() Reflectable { return n.impl }

// AsElement returns the element view of n, or nil when n is not an element.
func (n *Node) AsElement() *Element {
	if n == nil {
		return nil
	}
	return n.element
}

// NodeType is https://dom.spec.whatwg.org/#dom-node-nodetype
func (n *Node) NodeType() NodeType {
	switch n.typeID.Node.Kind {
	case NodeElement:
		return ElementNode
	case NodeText:
		return TextNode
	case NodeComment:
		return CommentNode
	case NodeDocument:
		return DocumentNode
	case NodeDocumentType:
		return DocumentTypeNode
	case NodeDocumentFragment:
		return DocumentFragmentNode
	}
	return 0
}

// OwnerDocument is https://dom.spec.whatwg.org/#dom-node-ownerdocument
func (n *Node) OwnerDocument() *Document {
	if n.typeID.Node.Kind == NodeDocument {
		return nil
	}
	return n.document
}

// ParentElement is https://dom.spec.whatwg.org/#dom-node-parentelement
func (n *Node) ParentElement() *Element {
	return n.ParentNode.AsElement()
}

// GetRootNode is https://dom.spec.whatwg.org/#dom-node-getrootnode
func (n *Node) GetRootNode() *Node {
	var prev *Node
	for i := n; i != nil; i = i.ParentNode {
		prev = i
	}
	return prev
}

// IsConnected is https://dom.spec.whatwg.org/#dom-node-isconnected
func (n *Node) IsConnected() bool {
	root := n.GetRootNode()
	return n.document != nil && root == n.document.AsNode()
}

func (n *Node) HasChildNodes() bool {
	return len(n.ChildNodes) > 0
}

func (n *Node) IsSameNode(on *Node) bool { return n == on }

// Contains is https://dom.spec.whatwg.org/#dom-node-contains
func (n *Node) Contains(on *Node) bool {
	for i := on; i != nil; i = i.ParentNode {
		if i == n {
			return true
		}
	}
	return false
}

// TextContent is https://dom.spec.whatwg.org/#dom-node-textcontent
func (n *Node) TextContent() webidl.DOMString {
	switch n.typeID.Node.Kind {
	case NodeText, NodeComment:
		return n.characterData.Data
	case NodeElement, NodeDocumentFragment:
		var sb strings.Builder
		for d := range n.Descendants() {
			if d.typeID.Node.Kind == NodeText {
				sb.WriteString(string(d.characterData.Data))
			}
		}
		return webidl.DOMString(sb.String())
	}
	return ""
}

// Descendants yields every strict descendant of n in tree order. The tree
// is read as of each step, and mutating it from inside the loop fails with
// ErrMutationDuringTraversal. A released node has no descendants. The
// walk ends when the loop does; an iter.Pull caller must call stop.
func (n *Node) Descendants() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		if n == nil || n.released {
			return
		}
		if n.document != nil {
			defer n.document.beginTraversal()()
		}
		for c := n.FirstChild; c != nil; c = following(c, n) {
			if !yield(c) {
				return
			}
		}
	}
}

// following is the next node in tree order that is still inside root.
func following(c, root *Node) *Node {
	if c.FirstChild != nil {
		return c.FirstChild
	}
	for ; c != nil && c != root; c = c.ParentNode {
		if c.NextSibling != nil {
			return c.NextSibling
		}
	}
	return nil
}

// https://dom.spec.whatwg.org/#concept-node-ensure-pre-insertion-validity
func (n *Node) ensurePreInsertionValidity(node, child *Node) error {
	if node == nil {
		return errors.Wrap(ErrHierarchyRequest, "node is nil")
	}
	if n.released || node.released {
		return errors.Wrap(ErrNotFound, "node is released")
	}
	if node.document != n.document {
		return errors.Wrapf(ErrWrongDocument, "insert %s", node.typeID)
	}
	if node.id == 0 {
		return errors.Wrapf(ErrHierarchyRequest, "%s is not reflected", node.typeID)
	}
	switch n.typeID.Node.Kind {
	case NodeDocument, NodeDocumentFragment, NodeElement:
	default:
		return errors.Wrapf(ErrHierarchyRequest, "%s cannot have children", n.typeID)
	}
	if node.typeID.Node.Kind == NodeDocument {
		return errors.Wrap(ErrHierarchyRequest, "a document cannot be inserted")
	}
	if node.Contains(n) {
		return errors.Wrap(ErrHierarchyRequest, "node is an inclusive ancestor of the parent")
	}
	if child != nil && child.ParentNode != n {
		return errors.Wrap(ErrNotFound, "reference child is not a child of this node")
	}
	if err := n.ensureChildKind(node, child); err != nil {
		return err
	}
	return n.document.checkMutable()
}

// ensureChildKind is steps 5 and 6 of pre-insertion validity: doctypes
// only go under a document, and a document holds no text, at most one
// element and at most one doctype, the doctype first.
func (n *Node) ensureChildKind(node, child *Node) error {
	kind := node.typeID.Node.Kind
	if n.typeID.Node.Kind != NodeDocument {
		if kind == NodeDocumentType {
			return errors.Wrapf(ErrHierarchyRequest, "a doctype cannot be a child of %s", n.typeID)
		}
		return nil
	}

	switch kind {
	case NodeText:
		return errors.Wrap(ErrHierarchyRequest, "a document cannot hold text")
	case NodeDocumentFragment:
		var elements int
		for _, c := range node.ChildNodes {
			switch c.typeID.Node.Kind {
			case NodeText:
				return errors.Wrap(ErrHierarchyRequest, "a document cannot hold text")
			case NodeElement:
				elements++
			}
		}
		if elements > 1 {
			return errors.Wrap(ErrHierarchyRequest, "a document holds one element")
		}
		if elements == 1 {
			return n.ensureElementSlot(child)
		}
	case NodeElement:
		return n.ensureElementSlot(child)
	case NodeDocumentType:
		for i, c := range n.ChildNodes {
			switch c.typeID.Node.Kind {
			case NodeDocumentType:
				return errors.Wrap(ErrHierarchyRequest, "a document holds one doctype")
			case NodeElement:
				if child == nil || n.ChildNodes.Contains(child) > i {
					return errors.Wrap(ErrHierarchyRequest, "a doctype cannot follow the document element")
				}
			}
		}
	}
	return nil
}

// ensureElementSlot checks an element can go into document n before child.
func (n *Node) ensureElementSlot(child *Node) error {
	for _, c := range n.ChildNodes {
		if c.typeID.Node.Kind == NodeElement {
			return errors.Wrap(ErrHierarchyRequest, "a document holds one element")
		}
	}
	if child == nil {
		return nil
	}
	for _, c := range n.ChildNodes[n.ChildNodes.Contains(child):] {
		if c.typeID.Node.Kind == NodeDocumentType {
			return errors.Wrap(ErrHierarchyRequest, "the document element cannot precede the doctype")
		}
	}
	return nil
}

// InsertBefore is https://dom.spec.whatwg.org/#dom-node-insertbefore
// A nil child appends.
func (n *Node) InsertBefore(on, child *Node) (*Node, error) {
	if err := n.ensurePreInsertionValidity(on, child); err != nil {
		return nil, err
	}
	if child == on {
		child = on.NextSibling
	}

	// a fragment is replaced by its children
	nodes := NodeList{on}
	if on.typeID.Node.Kind == NodeDocumentFragment {
		nodes = slices.Clone(on.ChildNodes)
	}
	for _, c := range nodes {
		if c.ParentNode != nil {
			c.ParentNode.remove(c)
		}
	}

	i := len(n.ChildNodes)
	if child != nil {
		i = n.ChildNodes.Contains(child)
	}
	for j, c := range nodes {
		n.ChildNodes.WedgeIn(i+j, c)
		c.ParentNode = n
	}
	n.relink()
	return on, nil
}

// AppendChild is https://dom.spec.whatwg.org/#dom-node-appendchild
func (n *Node) AppendChild(on *Node) (*Node, error) {
	return n.InsertBefore(on, nil)
}

// RemoveChild is https://dom.spec.whatwg.org/#dom-node-removechild
func (n *Node) RemoveChild(child *Node) (*Node, error) {
	if child == nil || child.ParentNode != n {
		return nil, errors.Wrap(ErrNotFound, "not a child of this node")
	}
	if err := n.document.checkMutable(); err != nil {
		return nil, err
	}
	n.remove(child)
	return child, nil
}

func (n *Node) remove(child *Node) {
	n.ChildNodes.Remove(n.ChildNodes.Contains(child))
	child.ParentNode, child.PreviousSibling, child.NextSibling = nil, nil, nil
	n.relink()
}

// relink rebuilds the first/last and sibling pointers from ChildNodes.
func (n *Node) relink() {
	n.FirstChild, n.LastChild = nil, nil
	for i, c := range n.ChildNodes {
		c.PreviousSibling, c.NextSibling = nil, nil
		if i > 0 {
			c.PreviousSibling = n.ChildNodes[i-1]
			n.ChildNodes[i-1].NextSibling = c
		}
	}
	if len(n.ChildNodes) > 0 {
		n.FirstChild = n.ChildNodes[0]
		n.LastChild = n.ChildNodes[len(n.ChildNodes)-1]
	}
}

func serializeNodeType(node *Node, depth int) string {
	switch node.typeID.Node.Kind {
	case NodeElement:
		elem := node.element
		e := "<"
		switch elem.NamespaceURI {
		case Svgns:
			e += "svg "
		case Mathmlns:
			e += "math "
		}
		e += string(elem.LocalName) + ">"

		attrs := elem.Attributes.All()
		sort.Slice(attrs, func(i, j int) bool { return attrs[i].Name < attrs[j].Name })
		spaces := "| " + strings.Repeat("  ", depth)
		for _, attr := range attrs {
			var ns string
			switch attr.Namespace {
			case Xmlnsns:
				ns = "xmlns "
			case Xmlns:
				ns = "xml "
			case Xlinkns:
				ns = "xlink "
			}
			e += "\n" + spaces + ns + string(attr.LocalName) + "=\"" + string(attr.Value) + "\""
		}
		return e
	case NodeText:
		return "\"" + string(node.characterData.Data) + "\""
	case NodeComment:
		return "<!-- " + string(node.characterData.Data) + " -->"
	case NodeDocumentType:
		dt := node.doctype
		d := "<!DOCTYPE " + string(dt.Name)
		if len(dt.PublicID) != 0 || len(dt.SystemID) != 0 {
			d += " \"" + string(dt.PublicID) + "\" \"" + string(dt.SystemID) + "\""
		}
		return d + ">"
	case NodeDocument:
		return "#document"
	case NodeDocumentFragment:
		return "#document-fragment"
	}
	return ""
}

func (n *Node) serialize(sb *strings.Builder, depth int) {
	if depth > 0 {
		sb.WriteString("| " + strings.Repeat("  ", depth-1))
	}
	sb.WriteString(serializeNodeType(n, depth))
	sb.WriteByte('\n')
	for _, child := range n.ChildNodes {
		child.serialize(sb, depth+1)
	}
}

// String dumps the subtree rooted at n in the html5lib tree-construction
// test format.
func (n *Node) String() string {
	var sb strings.Builder
	n.serialize(&sb, 0)
	return strings.TrimRight(sb.String(), "\n")
}
