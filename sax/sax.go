// Package sax drives a tagsoup.Reader and reports what it finds to a set
// of callbacks.
package sax

import (
	"context"
	"errors"
)

// ErrHandlerUnspecified is returned when there is no handler registered
// for that particular event callback. Walk ignores it.
var ErrHandlerUnspecified = errors.New("handler unspecified")

// ErrSkip may be returned from a StartElement callback to skip the
// element's subtree. The matching EndElement is not reported.
var ErrSkip = errors.New("skip element")

// SAX is the callback based Handler.
type SAX struct {
	StartDocumentHandler StartDocumentFunc
	EndDocumentHandler   EndDocumentFunc
	StartElementHandler  StartElementFunc
	EndElementHandler    EndElementFunc
	CharactersHandler    CharactersFunc
	CommentHandler       CommentFunc
	IdentifierHandler    IdentifierFunc
}

// New creates a new instance of SAX. All callbacks are uninitialized.
func New() *SAX {
	return &SAX{}
}

func (s SAX) StartDocument(ctx context.Context) error {
	if h := s.StartDocumentHandler; h != nil {
		return h(ctx)
	}
	return ErrHandlerUnspecified
}

func (s SAX) EndDocument(ctx context.Context) error {
	if h := s.EndDocumentHandler; h != nil {
		return h(ctx)
	}
	return ErrHandlerUnspecified
}

func (s SAX) StartElement(ctx context.Context, elem *Element) error {
	if h := s.StartElementHandler; h != nil {
		return h(ctx, elem)
	}
	return ErrHandlerUnspecified
}

func (s SAX) EndElement(ctx context.Context, name string) error {
	if h := s.EndElementHandler; h != nil {
		return h(ctx, name)
	}
	return ErrHandlerUnspecified
}

func (s SAX) Characters(ctx context.Context, ch []byte) error {
	if h := s.CharactersHandler; h != nil {
		return h(ctx, ch)
	}
	return ErrHandlerUnspecified
}

func (s SAX) Comment(ctx context.Context, value []byte) error {
	if h := s.CommentHandler; h != nil {
		return h(ctx, value)
	}
	return ErrHandlerUnspecified
}

func (s SAX) Identifier(ctx context.Context, name string, attrs []Attribute) error {
	if h := s.IdentifierHandler; h != nil {
		return h(ctx, name, attrs)
	}
	return ErrHandlerUnspecified
}
