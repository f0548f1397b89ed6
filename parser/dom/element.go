package dom

import (
	"strings"

	"github.com/heathj/domtree/parser/webidl"
)

type Namespace uint

const (
	Htmlns Namespace = iota
	Mathmlns
	Svgns
	Xlinkns
	Xmlns
	Xmlnsns
	// Nullns is an element or attribute without a namespace.
	Nullns
)

var namespaceURIs = map[Namespace]string{
	Htmlns:   "http://www.w3.org/1999/xhtml",
	Mathmlns: "http://www.w3.org/1998/Math/MathML",
	Svgns:    "http://www.w3.org/2000/svg",
	Xlinkns:  "http://www.w3.org/1999/xlink",
	Xmlns:    "http://www.w3.org/XML/1998/namespace",
	Xmlnsns:  "http://www.w3.org/2000/xmlns/",
}

func (n Namespace) String() string {
	return namespaceURIs[n]
}

// Element is an individual element in the tree.
// https://dom.spec.whatwg.org/#interface-element
type Element struct {
	NamespaceURI      Namespace
	Prefix, LocalName webidl.DOMString
	Attributes        *NamedNodeMap

	*Node
}

func newInheritedElement(typeID EventTargetTypeID, localName, prefix webidl.DOMString, namespace Namespace, document *Document) *Element {
	qualifiedName := localName
	if prefix != "" {
		qualifiedName = prefix + ":" + localName
	}
	e := &Element{
		NamespaceURI: namespace,
		Prefix:       prefix,
		LocalName:    localName,
		Node:         newInheritedNode(typeID, qualifiedName, document),
	}
	e.Attributes = NewNamedNodeMap(e)
	e.Node.element = e
	return e
}

// NewElement creates an element outside the HTML namespace.
func NewElement(localName, prefix webidl.DOMString, namespace Namespace, document *Document) (*Element, error) {
	kind := ElementOther
	switch namespace {
	case Svgns:
		kind = ElementSVG
	case Mathmlns:
		kind = ElementMathML
	}
	element := newInheritedElement(ElementTypeIDOf(kind), localName, prefix, namespace, document)
	if _, err := document.ReflectNode(element); err != nil {
		return nil, err
	}
	return element, nil
}

// AsElement returns e. It lets typed wrappers hand out their element view.
func (e *Element) AsElement() *Element { return e }

// TagName is https://dom.spec.whatwg.org/#dom-element-tagname
func (e *Element) TagName() webidl.DOMString {
	if e.NamespaceURI == Htmlns && e.document != nil && e.document.IsHTML() {
		return e.NodeName.ASCIIUppercase()
	}
	return e.NodeName
}

func (e *Element) ID() webidl.DOMString        { return e.GetAttribute("id") }
func (e *Element) ClassName() webidl.DOMString { return e.GetAttribute("class") }

// ClassList is the set of tokens in the class attribute.
func (e *Element) ClassList() []webidl.DOMString {
	return splitTokens(e.ClassName())
}

// https://infra.spec.whatwg.org/#split-on-ascii-whitespace
func splitTokens(s webidl.DOMString) []webidl.DOMString {
	fields := strings.FieldsFunc(string(s), webidl.IsASCIIWhitespace)
	tokens := make([]webidl.DOMString, 0, len(fields))
	for _, f := range fields {
		tokens = append(tokens, webidl.DOMString(f))
	}
	return tokens
}

func (e *Element) HasAttributes() bool { return e.Attributes.Length() > 0 }

func (e *Element) GetAttributeNames() []webidl.DOMString {
	var names []webidl.DOMString
	for _, a := range e.Attributes.All() {
		names = append(names, a.Name)
	}
	return names
}

// GetAttribute is https://dom.spec.whatwg.org/#dom-element-getattribute
func (e *Element) GetAttribute(qualifiedName webidl.DOMString) webidl.DOMString {
	if a := e.Attributes.GetNamedItem(qualifiedName); a != nil {
		return a.Value
	}
	return ""
}

func (e *Element) HasAttribute(qualifiedName webidl.DOMString) bool {
	return e.Attributes.GetNamedItem(qualifiedName) != nil
}

// SetAttribute is https://dom.spec.whatwg.org/#dom-element-setattribute
func (e *Element) SetAttribute(qualifiedName, value webidl.DOMString) {
	if e.NamespaceURI == Htmlns && e.document != nil && e.document.IsHTML() {
		qualifiedName = qualifiedName.ASCIILowercase()
	}
	if a := e.Attributes.GetNamedItem(qualifiedName); a != nil {
		a.Value = value
		return
	}
	e.Attributes.SetNamedItem(&Attr{
		Namespace: Nullns,
		LocalName: qualifiedName,
		Name:      qualifiedName,
		Value:     value,
	})
}

// SetAttributeNS sets an attribute in a namespace, keeping the prefix.
func (e *Element) SetAttributeNS(namespace Namespace, prefix, localName, value webidl.DOMString) {
	if a := e.Attributes.GetNamedItemNS(namespace, localName); a != nil {
		a.Value = value
		return
	}
	name := localName
	if prefix != "" {
		name = prefix + ":" + localName
	}
	e.Attributes.SetNamedItem(&Attr{
		Namespace: namespace,
		Prefix:    prefix,
		LocalName: localName,
		Name:      name,
		Value:     value,
	})
}

func (e *Element) RemoveAttribute(qualifiedName webidl.DOMString) {
	e.Attributes.RemoveNamedItem(qualifiedName)
}

// ToggleAttribute is https://dom.spec.whatwg.org/#dom-element-toggleattribute
func (e *Element) ToggleAttribute(qualifiedName webidl.DOMString, force ...bool) bool {
	has := e.HasAttribute(qualifiedName)
	want := !has
	if len(force) > 0 {
		want = force[0]
	}
	switch {
	case want && !has:
		e.SetAttribute(qualifiedName, "")
	case !want && has:
		e.RemoveAttribute(qualifiedName)
	}
	return want
}
