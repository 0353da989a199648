package tagsoup

import "golang.org/x/net/html"

// Name returns the attribute name with character references decoded.
func (a Attribute) Name() string {
	return html.UnescapeString(a.name)
}

// Value returns the attribute value with character references decoded.
func (a Attribute) Value() string {
	return html.UnescapeString(a.value)
}

func (a Attribute) RawName() string {
	return a.name
}

func (a Attribute) RawValue() string {
	return a.value
}

// QuoteChar is the character that quoted the value, or 0 if the value was
// not quoted.
func (a Attribute) QuoteChar() rune {
	return a.quote
}

func (a Attribute) Line() int {
	return a.line
}

func (a Attribute) Column() int {
	return a.column
}
