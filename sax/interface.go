package sax

import "context"

// Handler receives the nodes of a document in source order.
type Handler interface {
	StartDocument(ctx context.Context) error
	EndDocument(ctx context.Context) error
	StartElement(ctx context.Context, elem *Element) error
	EndElement(ctx context.Context, name string) error
	Characters(ctx context.Context, ch []byte) error
	Comment(ctx context.Context, value []byte) error
	Identifier(ctx context.Context, name string, attrs []Attribute) error
}

type Attribute struct {
	Name  string
	Value string
}

// Element describes a start tag. URI is empty when the element's prefix
// is not bound.
type Element struct {
	Name       string
	LocalName  string
	Prefix     string
	URI        string
	Attributes []Attribute
	Empty      bool
}
