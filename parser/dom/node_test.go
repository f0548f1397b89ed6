package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertSiblingLinks(t *testing.T, parent *Node) {
	t.Helper()
	var prev *Node
	for i, c := range parent.ChildNodes {
		assert.Same(t, parent, c.ParentNode)
		if i == 0 {
			assert.Same(t, c, parent.FirstChild)
			assert.Nil(t, c.PreviousSibling)
		} else {
			assert.Same(t, prev, c.PreviousSibling)
			assert.Same(t, c, prev.NextSibling)
		}
		prev = c
	}
	if prev == nil {
		assert.Nil(t, parent.FirstChild)
		assert.Nil(t, parent.LastChild)
		return
	}
	assert.Same(t, prev, parent.LastChild)
	assert.Nil(t, prev.NextSibling)
}

func TestAppendInsertRemove(t *testing.T) {
	doc := newTestDocument(t)
	root := appendElement(t, doc.Node, "div")
	a := appendElement(t, root.Node, "a")
	c := appendElement(t, root.Node, "p")
	assertSiblingLinks(t, root.Node)

	b, err := doc.CreateElement("span")
	require.NoError(t, err)
	got, err := root.InsertBefore(b.Node, c.Node)
	require.NoError(t, err)
	assert.Same(t, b.Node, got)
	assert.Equal(t, NodeList{a.Node, b.Node, c.Node}, root.ChildNodes)
	assertSiblingLinks(t, root.Node)

	// inserting a node before itself leaves it in place
	_, err = root.InsertBefore(b.Node, b.Node)
	require.NoError(t, err)
	assert.Equal(t, NodeList{a.Node, b.Node, c.Node}, root.ChildNodes)

	removed, err := root.RemoveChild(a.Node)
	require.NoError(t, err)
	assert.Same(t, a.Node, removed)
	assert.Nil(t, a.ParentNode)
	assert.Nil(t, a.NextSibling)
	assert.Equal(t, NodeList{b.Node, c.Node}, root.ChildNodes)
	assertSiblingLinks(t, root.Node)

	_, err = root.RemoveChild(b.Node)
	require.NoError(t, err)
	_, err = root.RemoveChild(c.Node)
	require.NoError(t, err)
	assertSiblingLinks(t, root.Node)
	assert.False(t, root.HasChildNodes())
}

func TestAppendMovesNode(t *testing.T) {
	doc := newTestDocument(t)
	left := appendElement(t, doc.Node, "div")
	right := appendElement(t, left.Node, "div")
	moved := appendElement(t, left.Node, "p")

	_, err := right.AppendChild(moved.Node)
	require.NoError(t, err)
	assert.Equal(t, NodeList{right.Node}, left.ChildNodes)
	assert.Equal(t, NodeList{moved.Node}, right.ChildNodes)
	assertSiblingLinks(t, left.Node)
	assertSiblingLinks(t, right.Node)
}

func TestInsertFragment(t *testing.T) {
	doc := newTestDocument(t)
	root := appendElement(t, doc.Node, "ul")
	last := appendElement(t, root.Node, "li")

	frag, err := doc.CreateDocumentFragment()
	require.NoError(t, err)
	one := appendElement(t, frag.Node, "li")
	two := appendElement(t, frag.Node, "li")

	_, err = root.InsertBefore(frag.Node, last.Node)
	require.NoError(t, err)
	assert.Equal(t, NodeList{one.Node, two.Node, last.Node}, root.ChildNodes)
	assert.False(t, frag.HasChildNodes())
	assertSiblingLinks(t, root.Node)
}

func TestInsertionErrors(t *testing.T) {
	doc := newTestDocument(t)
	other := newTestDocument(t)
	root := appendElement(t, doc.Node, "div")
	child := appendElement(t, root.Node, "p")
	text := appendText(t, root.Node, "x")
	foreign, err := other.CreateElement("p")
	require.NoError(t, err)
	stray, err := doc.CreateElement("p")
	require.NoError(t, err)
	doctype, err := NewDocumentType("html", "", "", doc)
	require.NoError(t, err)
	loose, err := doc.CreateTextNode("y")
	require.NoError(t, err)
	textFrag, err := doc.CreateDocumentFragment()
	require.NoError(t, err)
	appendText(t, textFrag.Node, "z")

	tests := []struct {
		name   string
		parent *Node
		node   *Node
		child  *Node
		want   error
	}{
		{"nil node", root.Node, nil, nil, ErrHierarchyRequest},
		{"other document", root.Node, foreign.Node, nil, ErrWrongDocument},
		{"into text", text.Node, stray.Node, nil, ErrHierarchyRequest},
		{"ancestor into descendant", child.Node, root.Node, nil, ErrHierarchyRequest},
		{"into itself", root.Node, root.Node, nil, ErrHierarchyRequest},
		{"document", root.Node, doc.Node, nil, ErrHierarchyRequest},
		{"foreign reference child", doc.Node, stray.Node, child.Node, ErrNotFound},
		{"doctype under element", root.Node, doctype.Node, nil, ErrHierarchyRequest},
		{"text under document", doc.Node, loose.Node, nil, ErrHierarchyRequest},
		{"second document element", doc.Node, stray.Node, nil, ErrHierarchyRequest},
		{"fragment with text under document", doc.Node, textFrag.Node, nil, ErrHierarchyRequest},
		{"doctype after document element", doc.Node, doctype.Node, nil, ErrHierarchyRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.parent.InsertBefore(tt.node, tt.child)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, err = root.RemoveChild(stray.Node)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, NodeList{root.Node}, doc.ChildNodes)
	assert.Nil(t, doctype.ParentNode)
}

func TestDocumentChildren(t *testing.T) {
	doc := newTestDocument(t)
	html := appendElement(t, doc.Node, "html")
	doctype, err := NewDocumentType("html", "", "", doc)
	require.NoError(t, err)
	_, err = doc.InsertBefore(doctype.Node, html.Node)
	require.NoError(t, err, "a doctype may precede the document element")

	second, err := NewDocumentType("html", "", "", doc)
	require.NoError(t, err)
	_, err = doc.InsertBefore(second.Node, doctype.Node)
	assert.ErrorIs(t, err, ErrHierarchyRequest, "one doctype per document")

	comment, err := doc.CreateComment("c")
	require.NoError(t, err)
	_, err = doc.AppendChild(comment.Node)
	require.NoError(t, err, "comments may sit beside the document element")

	one, err := doc.CreateDocumentFragment()
	require.NoError(t, err)
	appendElement(t, one.Node, "p")
	_, err = doc.AppendChild(one.Node)
	assert.ErrorIs(t, err, ErrHierarchyRequest, "the document element is taken")

	empty := newTestDocument(t)
	dt, err := NewDocumentType("html", "", "", empty)
	require.NoError(t, err)
	_, err = empty.AppendChild(dt.Node)
	require.NoError(t, err)
	elem, err := empty.CreateElement("html")
	require.NoError(t, err)
	_, err = empty.InsertBefore(elem.Node, dt.Node)
	assert.ErrorIs(t, err, ErrHierarchyRequest, "the document element cannot precede the doctype")

	two, err := empty.CreateDocumentFragment()
	require.NoError(t, err)
	appendElement(t, two.Node, "p")
	appendElement(t, two.Node, "p")
	_, err = empty.AppendChild(two.Node)
	assert.ErrorIs(t, err, ErrHierarchyRequest, "a fragment with two elements")

	_, err = empty.AppendChild(elem.Node)
	require.NoError(t, err)
	assert.Same(t, elem, empty.DocumentElement())
	assert.Same(t, dt, empty.Doctype())
	assert.Equal(t, NodeList{dt.Node, elem.Node}, empty.ChildNodes)
}

func TestTextContentAndConnection(t *testing.T) {
	doc := newTestDocument(t)
	p, err := doc.CreateElement("p")
	require.NoError(t, err)
	appendText(t, p.Node, "hello ")
	b := appendElement(t, p.Node, "b")
	appendText(t, b.Node, "world")
	comment, err := doc.CreateComment("skip")
	require.NoError(t, err)
	_, err = p.AppendChild(comment.Node)
	require.NoError(t, err)

	assert.Equal(t, "hello world", string(p.TextContent()))
	assert.Equal(t, "skip", string(comment.TextContent()))
	assert.False(t, p.IsConnected())
	assert.Same(t, p.Node, b.GetRootNode())

	_, err = doc.AppendChild(p.Node)
	require.NoError(t, err)
	assert.True(t, b.IsConnected())
	assert.Same(t, p, b.ParentElement())
	assert.Nil(t, p.ParentElement())
	assert.True(t, p.Contains(b.Node))
	assert.False(t, b.Contains(p.Node))
	assert.Same(t, p, doc.DocumentElement())
}

func TestNodeString(t *testing.T) {
	doc := newTestDocument(t)
	dt, err := NewDocumentType("html", "", "", doc)
	require.NoError(t, err)
	_, err = doc.AppendChild(dt.Node)
	require.NoError(t, err)
	html := appendElement(t, doc.Node, "html")
	body := appendElement(t, html.Node, "body")
	a := appendElement(t, body.Node, "a")
	a.SetAttribute("href", "/x")
	a.SetAttribute("class", "nav")
	appendText(t, a.Node, "go")
	svg, err := doc.CreateElementNS(Svgns, "svg", "")
	require.NoError(t, err)
	svg.SetAttributeNS(Xlinkns, "xlink", "href", "#y")
	_, err = body.AppendChild(svg.Node)
	require.NoError(t, err)
	comment, err := doc.CreateComment("end")
	require.NoError(t, err)
	_, err = body.AppendChild(comment.Node)
	require.NoError(t, err)

	want := `#document
| <!DOCTYPE html>
| <html>
|   <body>
|     <a>
|       class="nav"
|       href="/x"
|       "go"
|     <svg svg>
|       xlink href="#y"
|     <!-- end -->`
	assert.Equal(t, want, doc.String())
	assert.Same(t, dt, doc.Doctype())
	assert.Equal(t, DocumentTypeNode, dt.NodeType())
	assert.Equal(t, ElementNode, html.NodeType())
	assert.Equal(t, DocumentNode, doc.NodeType())
	assert.Nil(t, doc.OwnerDocument())
}
