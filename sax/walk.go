package sax

import (
	"context"
	"errors"

	"github.com/lestrrat-go/tagsoup"
)

// Walk reads r to the end, calling h for every node. The context is
// checked between nodes.
func Walk(ctx context.Context, r *tagsoup.Reader, h Handler) error {
	if err := call(h.StartDocument(ctx)); err != nil {
		return err
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		ok, err := r.Read()
		if err != nil {
			return err
		}
		if !ok {
			break
		}

		if err := dispatch(ctx, r, h); err != nil {
			return err
		}
	}

	return call(h.EndDocument(ctx))
}

func call(err error) error {
	if errors.Is(err, ErrHandlerUnspecified) {
		return nil
	}
	return err
}

func dispatch(ctx context.Context, r *tagsoup.Reader, h Handler) error {
	typ, err := r.NodeType()
	if err != nil {
		return err
	}

	switch typ {
	case tagsoup.ElementNode:
		elem, err := element(r)
		if err != nil {
			return err
		}
		err = call(h.StartElement(ctx, elem))
		if errors.Is(err, ErrSkip) {
			if elem.Empty {
				return nil
			}
			return r.Skip()
		}
		return err
	case tagsoup.EndElementNode:
		name, err := r.Name()
		if err != nil {
			return err
		}
		return call(h.EndElement(ctx, name))
	case tagsoup.TextNode:
		v, err := r.Value()
		if err != nil {
			return err
		}
		return call(h.Characters(ctx, []byte(v)))
	case tagsoup.CommentNode:
		v, err := r.Value()
		if err != nil {
			return err
		}
		return call(h.Comment(ctx, []byte(v)))
	case tagsoup.IdentifierNode:
		name, err := r.Name()
		if err != nil {
			return err
		}
		attrs, err := attributes(r)
		if err != nil {
			return err
		}
		return call(h.Identifier(ctx, name, attrs))
	}
	return nil
}

func element(r *tagsoup.Reader) (*Element, error) {
	var elem Element
	var err error
	if elem.Name, err = r.Name(); err != nil {
		return nil, err
	}
	if elem.LocalName, err = r.LocalName(); err != nil {
		return nil, err
	}
	if elem.Prefix, err = r.Prefix(); err != nil {
		return nil, err
	}
	uri, err := r.NamespaceURI()
	if err != nil {
		return nil, err
	}
	elem.URI = uri.String()
	if elem.Attributes, err = attributes(r); err != nil {
		return nil, err
	}
	if elem.Empty, err = r.IsEmptyElement(); err != nil {
		return nil, err
	}
	return &elem, nil
}

func attributes(r *tagsoup.Reader) ([]Attribute, error) {
	attrs, err := r.Attributes()
	if err != nil {
		return nil, err
	}
	if len(attrs) == 0 {
		return nil, nil
	}
	list := make([]Attribute, len(attrs))
	for i, attr := range attrs {
		list[i] = Attribute{Name: attr.Name(), Value: attr.Value()}
	}
	return list, nil
}
