package dom

import "github.com/heathj/domtree/parser/webidl"

// CharacterData is https://dom.spec.whatwg.org/#characterdata
type CharacterData struct {
	Data webidl.DOMString
}

func (c *CharacterData) Length() int { return len([]rune(string(c.Data))) }

// AppendData is https://dom.spec.whatwg.org/#dom-characterdata-appenddata
func (c *CharacterData) AppendData(data webidl.DOMString) { c.Data += data }

// Text is https://dom.spec.whatwg.org/#text
type Text struct {
	*CharacterData
	*Node
}

// NewText creates a text node owned by document.
func NewText(data webidl.DOMString, document *Document) (*Text, error) {
	t := &Text{
		CharacterData: &CharacterData{Data: data},
		Node:          newInheritedNode(NodeTypeIDOf(NodeText), "#text", document),
	}
	t.Node.characterData = t.CharacterData
	if _, err := document.ReflectNode(t); err != nil {
		return nil, err
	}
	return t, nil
}

// Comment is https://dom.spec.whatwg.org/#interface-comment
type Comment struct {
	*CharacterData
	*Node
}

// NewComment creates a comment node owned by document.
func NewComment(data webidl.DOMString, document *Document) (*Comment, error) {
	c := &Comment{
		CharacterData: &CharacterData{Data: data},
		Node:          newInheritedNode(NodeTypeIDOf(NodeComment), "#comment", document),
	}
	c.Node.characterData = c.CharacterData
	if _, err := document.ReflectNode(c); err != nil {
		return nil, err
	}
	return c, nil
}

// DocumentType is https://dom.spec.whatwg.org/#documenttype
type DocumentType struct {
	Name     webidl.DOMString
	PublicID webidl.DOMString
	SystemID webidl.DOMString

	*Node
}

// NewDocumentType creates a doctype node owned by document.
func NewDocumentType(name, publicID, systemID webidl.DOMString, document *Document) (*DocumentType, error) {
	dt := &DocumentType{
		Name:     name,
		PublicID: publicID,
		SystemID: systemID,
		Node:     newInheritedNode(NodeTypeIDOf(NodeDocumentType), name, document),
	}
	dt.Node.doctype = dt
	if _, err := document.ReflectNode(dt); err != nil {
		return nil, err
	}
	return dt, nil
}

// DocumentFragment is https://dom.spec.whatwg.org/#documentfragment
type DocumentFragment struct {
	*Node
}

// NewDocumentFragment creates an empty fragment owned by document.
func NewDocumentFragment(document *Document) (*DocumentFragment, error) {
	f := &DocumentFragment{
		Node: newInheritedNode(NodeTypeIDOf(NodeDocumentFragment), "#document-fragment", document),
	}
	if _, err := document.ReflectNode(f); err != nil {
		return nil, err
	}
	return f, nil
}
