package dom

import "github.com/pkg/errors"

// Registration and tree mutation failures. Queries never fail: a node that is
// not of a kind answers false and a collection without matches is empty.
var (
	// ErrDocumentFinalized is returned when registering into a document that
	// has been finalized.
	ErrDocumentFinalized = errors.New("dom: document is finalized")
	// ErrMutationDuringTraversal is returned when the tree is mutated while a
	// collection or descendant walk over the same document is in progress.
	ErrMutationDuringTraversal = errors.New("dom: tree mutated during traversal")
	// ErrWrongDocument is https://dom.spec.whatwg.org/#wrongdocumenterror
	ErrWrongDocument = errors.New("dom: node belongs to another document")
	// ErrAlreadyReflected is returned when a node is registered twice.
	ErrAlreadyReflected = errors.New("dom: node is already reflected")
	// ErrHierarchyRequest is https://dom.spec.whatwg.org/#hierarchyrequesterror
	ErrHierarchyRequest = errors.New("dom: hierarchy request error")
	// ErrNotFound is https://dom.spec.whatwg.org/#notfounderror
	ErrNotFound = errors.New("dom: node not found")
)
