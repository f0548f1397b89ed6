package dom

import "github.com/heathj/domtree/parser/webidl"

// DOMImplementation creates documents that share the logger of the
// document it belongs to.
// https://dom.spec.whatwg.org/#domimplementation
type DOMImplementation struct {
	document *Document
}

// Implementation is https://dom.spec.whatwg.org/#dom-document-implementation
func (d *Document) Implementation() *DOMImplementation {
	return &DOMImplementation{document: d}
}

// CreateDocumentType creates a doctype owned by the implementation's document.
func (d *DOMImplementation) CreateDocumentType(qualifiedName, publicID, systemID webidl.DOMString) (*DocumentType, error) {
	return NewDocumentType(qualifiedName, publicID, systemID, d.document)
}

// CreateHTMLDocument is https://dom.spec.whatwg.org/#dom-domimplementation-createhtmldocument
// A non-nil title adds a <title> to the head.
func (d *DOMImplementation) CreateHTMLDocument(title *webidl.DOMString) (*Document, error) {
	doc := NewDocument(WithLogger(d.document.log))

	dt, err := NewDocumentType("html", "", "", doc)
	if err != nil {
		return nil, err
	}
	if _, err := doc.AppendChild(dt.Node); err != nil {
		return nil, err
	}

	parent := doc.Node
	for _, tag := range []webidl.DOMString{"html", "head"} {
		e, err := doc.CreateElement(tag)
		if err != nil {
			return nil, err
		}
		if _, err := parent.AppendChild(e.Node); err != nil {
			return nil, err
		}
		parent = e.Node
	}
	head := parent

	if title != nil {
		t, err := doc.CreateElement("title")
		if err != nil {
			return nil, err
		}
		text, err := doc.CreateTextNode(*title)
		if err != nil {
			return nil, err
		}
		if _, err := t.AppendChild(text.Node); err != nil {
			return nil, err
		}
		if _, err := head.AppendChild(t.Node); err != nil {
			return nil, err
		}
	}

	body, err := doc.CreateElement("body")
	if err != nil {
		return nil, err
	}
	if _, err := head.ParentNode.AppendChild(body.Node); err != nil {
		return nil, err
	}
	return doc, nil
}

// HasFeature always returns true.
func (d *DOMImplementation) HasFeature() bool { return true }
