package dom

import (
	"io"
	"testing"

	"github.com/heathj/domtree/parser/webidl"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func newTestDocument(t *testing.T) *Document {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewDocument(WithLogger(logrus.NewEntry(log)))
}

// appendElement creates an element for tag and appends it to parent.
func appendElement(t *testing.T, parent *Node, tag webidl.DOMString) *Element {
	t.Helper()
	doc := parent.document
	elem, err := doc.CreateElement(tag)
	require.NoError(t, err)
	_, err = parent.AppendChild(elem.Node)
	require.NoError(t, err)
	return elem
}

func appendText(t *testing.T, parent *Node, data webidl.DOMString) *Text {
	t.Helper()
	text, err := parent.document.CreateTextNode(data)
	require.NoError(t, err)
	_, err = parent.AppendChild(text.Node)
	require.NoError(t, err)
	return text
}

