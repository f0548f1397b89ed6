package dom

import "github.com/google/uuid"

// Window is the global scope a document's live collections are created in.
// https://html.spec.whatwg.org/#the-window-object
type Window struct {
	ID       uuid.UUID
	document *Document
}

func newWindow(document *Document) *Window {
	return &Window{
		ID:       uuid.New(),
		document: document,
	}
}

// TypeID is the window's type id. Windows are event targets but not nodes.
func (w *Window) TypeID() EventTargetTypeID {
	return EventTargetTypeID{Kind: EventTargetWindow}
}

// Document is https://html.spec.whatwg.org/#dom-document-2
func (w *Window) Document() *Document {
	return w.document
}

// WindowFromNode resolves the window of the document that owns n.
func WindowFromNode(n *Node) *Window {
	if n == nil || n.document == nil {
		return nil
	}
	return n.document.window
}
