package webidl

import "strings"

// https://heycam.github.io/webidl/#idl-DOMString
type DOMString string

// https://heycam.github.io/webidl/#idl-USVString
type USVString string

// ASCIILowercase is https://infra.spec.whatwg.org/#ascii-lowercase
func (s DOMString) ASCIILowercase() DOMString {
	return DOMString(strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return r
	}, string(s)))
}

// ASCIIUppercase is https://infra.spec.whatwg.org/#ascii-uppercase
func (s DOMString) ASCIIUppercase() DOMString {
	return DOMString(strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' {
			return r - ('a' - 'A')
		}
		return r
	}, string(s)))
}

// StripAndCollapseWhitespace is https://infra.spec.whatwg.org/#strip-and-collapse-ascii-whitespace
func (s DOMString) StripAndCollapseWhitespace() DOMString {
	return DOMString(strings.Join(strings.FieldsFunc(string(s), IsASCIIWhitespace), " "))
}

// IsASCIIWhitespace is https://infra.spec.whatwg.org/#ascii-whitespace
func IsASCIIWhitespace(r rune) bool {
	switch r {
	case '\t', '\n', '\f', '\r', ' ':
		return true
	}
	return false
}
