package tagsoup

import (
	"log/slog"
	"strings"

	"github.com/lestrrat-go/tagsoup/internal/stack/nsstack"
)

// updateScope opens a namespace scope on the scoping element and closes
// it on its end tag.
func (r *Reader) updateScope() error {
	switch r.tok.kind {
	case ElementNode:
		if !strings.EqualFold(r.tok.nodeName(), r.scoping) {
			return nil
		}
		attrs, err := r.tok.attributes()
		if err != nil {
			return err
		}
		r.scopes.PushScope()
		declareNamespaces(r.scopes, attrs)
		r.tlog.Debug("namespace scope pushed", slog.Int("depth", r.scopes.Depth()))
	case EndElementNode:
		if !strings.EqualFold(r.tok.nodeName(), r.scoping) {
			return nil
		}
		r.popScope()
	}
	return nil
}

func (r *Reader) popScope() {
	if r.scopes.PopScope() {
		r.tlog.Debug("namespace scope popped", slog.Int("depth", r.scopes.Depth()))
	}
}

// declareNamespaces binds "xmlns" and "xmlns:prefix" attributes in the
// innermost scope. The attribute name is matched case-insensitively.
func declareNamespaces(scopes *nsstack.Stack, attrs []Attribute) {
	for _, attr := range attrs {
		name := attr.Name()
		if prefix, local, found := strings.Cut(name, ":"); found {
			if strings.EqualFold(prefix, "xmlns") {
				_ = scopes.Declare(local, attr.Value())
			}
			continue
		}
		if strings.EqualFold(name, "xmlns") {
			_ = scopes.Declare("", attr.Value())
		}
	}
}

// NamespaceURI resolves the prefix of the current element. The element's
// own xmlns attributes are taken into account. It returns nil when the
// prefix is unbound or the node is not an element.
func (r *Reader) NamespaceURI() (*Atom, error) {
	if err := r.check(); err != nil {
		return nil, err
	}
	if r.tok.kind != ElementNode {
		return nil, nil
	}

	attrs, err := r.tok.attributes()
	if err != nil {
		return nil, err
	}
	prefix, _ := splitName(r.tok.nodeName())

	var uri string
	if len(attrs) > 0 {
		r.scopes.PushScope()
		declareNamespaces(r.scopes, attrs)
		uri, _ = r.scopes.Lookup(prefix)
		r.scopes.PopScope()
	} else {
		uri, _ = r.scopes.Lookup(prefix)
	}

	if uri == "" {
		return nil, nil
	}
	return r.names.Add(uri), nil
}

// AddNamespaceURI interns uri in the reader's name table.
func (r *Reader) AddNamespaceURI(uri string) (*Atom, error) {
	if r.state == ReadStateClosed {
		return nil, ErrClosed
	}
	return r.names.Add(uri), nil
}
