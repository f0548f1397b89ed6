package dom

import (
	"github.com/heathj/domtree/parser/webidl"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Document is https://dom.spec.whatwg.org/#interface-document
//
// A document owns every node created for it. Nodes are registered with
// ReflectNode and stay registered until Release. All access happens on one
// goroutine; the document does no locking.
type Document struct {
	URL         webidl.USVString
	ContentType string
	CompatMode  string

	*Node

	window     *Window
	nodes      map[NodeID]*Node
	nextID     NodeID
	finalized  bool
	traversals int
	log        *logrus.Entry
}

// DocumentOption configures NewDocument.
type DocumentOption func(*Document)

// WithLogger sets the logger the document and its window log through.
func WithLogger(log *logrus.Entry) DocumentOption {
	return func(d *Document) {
		d.log = log
	}
}

// WithURL sets the document's URL.
func WithURL(url webidl.USVString) DocumentOption {
	return func(d *Document) {
		d.URL = url
	}
}

// WithContentType sets the document's content type. Anything other than
// text/html makes it an XML document.
func WithContentType(contentType string) DocumentOption {
	return func(d *Document) {
		d.ContentType = contentType
	}
}

// NewDocument creates an empty HTML document together with its window.
func NewDocument(opts ...DocumentOption) *Document {
	d := &Document{
		URL:         "about:blank",
		ContentType: "text/html",
		CompatMode:  "CSS1Compat",
		nodes:       map[NodeID]*Node{},
		log:         logrus.NewEntry(logrus.StandardLogger()),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.window = newWindow(d)
	d.log = d.log.WithField("window", d.window.ID.String())

	d.Node = newInheritedNode(NodeTypeIDOf(NodeDocument), "#document", d)
	d.register(d.Node, d)
	return d
}

// IsHTML is https://dom.spec.whatwg.org/#html-document
func (d *Document) IsHTML() bool {
	return d.ContentType == "text/html"
}

// Window is the global object the document is displayed in.
func (d *Document) Window() *Window {
	return d.window
}

// Log is the document's logger.
func (d *Document) Log() *logrus.Entry {
	return d.log
}

// DocumentElement is https://dom.spec.whatwg.org/#dom-document-documentelement
func (d *Document) DocumentElement() *Element {
	for _, c := range d.ChildNodes {
		if e := c.AsElement(); e != nil {
			return e
		}
	}
	return nil
}

// Doctype is https://dom.spec.whatwg.org/#dom-document-doctype
func (d *Document) Doctype() *DocumentType {
	for _, c := range d.ChildNodes {
		if c.doctype != nil {
			return c.doctype
		}
	}
	return nil
}

// NodeByID returns a registered node, or nil when the id is unknown or
// the node has been released.
func (d *Document) NodeByID(id NodeID) *Node {
	return d.nodes[id]
}

// Len is the number of nodes currently registered, the document included.
func (d *Document) Len() int {
	return len(d.nodes)
}

// ReflectNode registers a constructed node with the document and returns
// the tree handle for it. The node's type id is queryable from the moment
// this returns.
func (d *Document) ReflectNode(r Reflectable) (*Node, error) {
	n := r.AsNode()
	if d.finalized {
		return nil, ErrDocumentFinalized
	}
	if d.traversals > 0 {
		d.log.WithField("type", n.typeID.String()).Warn("refusing to reflect node during traversal")
		return nil, ErrMutationDuringTraversal
	}
	if n.document != d {
		return nil, ErrWrongDocument
	}
	if n.id != 0 {
		return nil, ErrAlreadyReflected
	}

	d.register(n, r)
	return n, nil
}

func (d *Document) register(n *Node, r Reflectable) {
	d.nextID++
	n.id = d.nextID
	n.impl = r
	d.nodes[n.id] = n
	d.log.WithFields(logrus.Fields{
		"node": n.id,
		"type": n.typeID.String(),
	}).Debug("reflected node")
}

// Release detaches n from its parent and drops it and its subtree from the
// document. Released nodes have no descendants and cannot be inserted again.
func (d *Document) Release(n *Node) error {
	if n == nil || n.document != d || n.released {
		return errors.Wrap(ErrNotFound, "release")
	}
	if n == d.Node {
		return errors.Wrap(ErrHierarchyRequest, "the document node cannot be released")
	}
	if err := d.checkMutable(); err != nil {
		return err
	}
	if n.ParentNode != nil {
		n.ParentNode.remove(n)
	}

	released := 0
	var walk func(*Node)
	walk = func(c *Node) {
		for _, child := range c.ChildNodes {
			walk(child)
		}
		c.released = true
		delete(d.nodes, c.id)
		released++
	}
	walk(n)
	d.log.WithFields(logrus.Fields{
		"node":  n.id,
		"count": released,
	}).Debug("released subtree")
	return nil
}

// Finalize stops the document from accepting new nodes. Existing nodes and
// the tree stay queryable.
func (d *Document) Finalize() {
	d.finalized = true
	d.log.Debug("document finalized")
}

func (d *Document) Finalized() bool {
	return d.finalized
}

// beginTraversal marks a walk over the tree as running and returns the
// function that ends it.
func (d *Document) beginTraversal() func() {
	d.traversals++
	return func() {
		d.traversals--
	}
}

func (d *Document) checkMutable() error {
	if d == nil || d.traversals == 0 {
		return nil
	}
	d.log.Warn("refusing to mutate tree during traversal")
	return ErrMutationDuringTraversal
}

// CreateElement is https://dom.spec.whatwg.org/#dom-document-createelement
// The element is created through the constructor of its interface, so its
// type id matches the tag: <datalist> yields an *HTMLDataListElement.
func (d *Document) CreateElement(localName webidl.DOMString) (*Element, error) {
	if d.IsHTML() {
		localName = localName.ASCIILowercase()
	}
	return d.CreateElementNS(Htmlns, localName, "")
}

// CreateElementNS creates an element of the interface its namespace and
// local name select.
func (d *Document) CreateElementNS(namespace Namespace, localName, prefix webidl.DOMString) (*Element, error) {
	if namespace != Htmlns {
		return NewElement(localName, prefix, namespace, d)
	}

	var r interface {
		Reflectable
		AsElement() *Element
	}
	var err error
	switch kind := HTMLElementKindForTag(string(localName)); kind {
	case HTMLDataListKind:
		r, err = NewHTMLDataListElement(localName, prefix, d)
	case HTMLFrameSetKind:
		r, err = NewHTMLFrameSetElement(localName, prefix, d)
	case HTMLOptionKind:
		r, err = NewHTMLOptionElement(localName, prefix, d)
	case HTMLSelectKind:
		r, err = NewHTMLSelectElement(localName, prefix, d)
	default:
		r, err = NewHTMLElement(kind, localName, prefix, d)
	}
	if err != nil {
		return nil, err
	}
	return r.AsElement(), nil
}

// CreateTextNode is https://dom.spec.whatwg.org/#dom-document-createtextnode
func (d *Document) CreateTextNode(data webidl.DOMString) (*Text, error) {
	return NewText(data, d)
}

// CreateComment is https://dom.spec.whatwg.org/#dom-document-createcomment
func (d *Document) CreateComment(data webidl.DOMString) (*Comment, error) {
	return NewComment(data, d)
}

// CreateDocumentFragment is https://dom.spec.whatwg.org/#dom-document-createdocumentfragment
func (d *Document) CreateDocumentFragment() (*DocumentFragment, error) {
	return NewDocumentFragment(d)
}

// GetElementsByTagName is https://dom.spec.whatwg.org/#dom-document-getelementsbytagname
func (d *Document) GetElementsByTagName(qualifiedName webidl.DOMString) *HTMLCollection {
	return d.Node.GetElementsByTagName(qualifiedName)
}

// GetElementsByClassName is https://dom.spec.whatwg.org/#dom-document-getelementsbyclassname
func (d *Document) GetElementsByClassName(classNames webidl.DOMString) *HTMLCollection {
	return d.Node.GetElementsByClassName(classNames)
}

// GetElementByID returns the first element in tree order whose id is id.
func (d *Document) GetElementByID(id webidl.DOMString) *Element {
	if id == "" {
		return nil
	}
	for n := range d.Descendants() {
		if e := n.AsElement(); e != nil && e.ID() == id {
			return e
		}
	}
	return nil
}
