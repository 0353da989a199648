package sax

import "context"

// StartDocumentFunc defines the function type for SAX.StartDocumentHandler
type StartDocumentFunc func(ctx context.Context) error

// EndDocumentFunc defines the function type for SAX.EndDocumentHandler
type EndDocumentFunc func(ctx context.Context) error

// StartElementFunc defines the function type for SAX.StartElementHandler
type StartElementFunc func(ctx context.Context, elem *Element) error

// EndElementFunc defines the function type for SAX.EndElementHandler
type EndElementFunc func(ctx context.Context, name string) error

// CharactersFunc defines the function type for SAX.CharactersHandler
type CharactersFunc func(ctx context.Context, ch []byte) error

// CommentFunc defines the function type for SAX.CommentHandler
type CommentFunc func(ctx context.Context, value []byte) error

// IdentifierFunc defines the function type for SAX.IdentifierHandler
type IdentifierFunc func(ctx context.Context, name string, attrs []Attribute) error
