package tagsoup

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
	"github.com/lestrrat-go/tagsoup/internal/stack/nsstack"
	"github.com/pkg/errors"
)

// fragmentRootName is the element wrapped around a carved fragment so
// that the namespaces in scope can be declared on it.
const fragmentRootName = "tagsoup-fragment"

func newFragment(b []byte) *Fragment {
	return &Fragment{
		buf: b,
		rdr: bytes.NewReader(b),
	}
}

func (f *Fragment) Read(p []byte) (int, error) {
	if f.closed {
		return 0, ErrFragmentClosed
	}
	return f.rdr.Read(p)
}

func (f *Fragment) Seek(offset int64, whence int) (int64, error) {
	if f.closed {
		return 0, ErrFragmentClosed
	}
	return f.rdr.Seek(offset, whence)
}

// Bytes returns the carved markup. It returns nil after Close.
func (f *Fragment) Bytes() []byte {
	return f.buf
}

func (f *Fragment) String() string {
	return string(f.buf)
}

func (f *Fragment) Close() error {
	f.closed = true
	f.buf = nil
	return nil
}

func newFragmentReader(frag *Fragment, bindings []nsstack.Item, options ...FragmentOption) *FragmentReader {
	strict := true
	for _, option := range options {
		switch option.Ident() {
		case identStrictXML{}:
			strict = option.Value().(bool)
		}
	}
	return &FragmentReader{
		frag:     frag,
		bindings: bindings,
		strict:   strict,
	}
}

// Bytes returns the raw markup of the fragment.
func (fr *FragmentReader) Bytes() []byte {
	return fr.frag.Bytes()
}

// Bindings returns the namespace declarations the fragment is read with,
// keyed by prefix. The default namespace has the empty prefix.
func (fr *FragmentReader) Bindings() map[string]string {
	m := make(map[string]string, len(fr.bindings))
	for _, item := range fr.bindings {
		m[item.Prefix()] = item.URI()
	}
	return m
}

func (fr *FragmentReader) wrapped() io.Reader {
	var head bytes.Buffer
	head.WriteString("<" + fragmentRootName)
	for _, item := range fr.bindings {
		head.WriteString(" xmlns")
		if p := item.Prefix(); p != "" {
			head.WriteString(":" + p)
		}
		head.WriteString(`="`)
		_ = xml.EscapeText(&head, []byte(item.URI()))
		head.WriteByte('"')
	}
	head.WriteByte('>')

	return io.MultiReader(
		&head,
		bytes.NewReader(fr.frag.Bytes()),
		strings.NewReader("</"+fragmentRootName+">"),
	)
}

// Token returns the next XML token of the fragment. Names are resolved
// against the fragment's own declarations and the seeded bindings. It
// returns io.EOF after the fragment's last token.
func (fr *FragmentReader) Token() (xml.Token, error) {
	if fr.frag.closed {
		return nil, ErrFragmentClosed
	}
	if fr.done {
		return nil, io.EOF
	}
	if fr.dec == nil {
		fr.dec = xml.NewDecoder(fr.wrapped())
		fr.dec.Strict = fr.strict
	}

	for {
		tok, err := fr.dec.Token()
		if err != nil {
			if err == io.EOF {
				fr.done = true
				return nil, io.EOF
			}
			return nil, errors.Wrap(err, `failed to decode fragment`)
		}

		switch tok.(type) {
		case xml.StartElement:
			fr.depth++
			if fr.depth == 1 {
				continue
			}
		case xml.EndElement:
			fr.depth--
			if fr.depth == 0 {
				fr.done = true
				return nil, io.EOF
			}
		}
		return xml.CopyToken(tok), nil
	}
}

// Document parses the whole fragment into a tree. The returned document
// node's children are the fragment's top level nodes.
func (fr *FragmentReader) Document() (*xmlquery.Node, error) {
	if fr.frag.closed {
		return nil, ErrFragmentClosed
	}

	top, err := xmlquery.ParseWithOptions(fr.wrapped(), xmlquery.ParserOptions{
		Decoder: &xmlquery.DecoderOptions{Strict: fr.strict},
	})
	if err != nil {
		return nil, errors.Wrap(err, `failed to parse fragment`)
	}

	doc := &xmlquery.Node{Type: xmlquery.DocumentNode}
	for n := top.FirstChild; n != nil; n = n.NextSibling {
		if n.Type != xmlquery.ElementNode || n.Data != fragmentRootName {
			continue
		}
		doc.FirstChild = n.FirstChild
		doc.LastChild = n.LastChild
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			c.Parent = doc
		}
		break
	}
	return doc, nil
}

// Query evaluates an XPath expression against the fragment's document.
// Prefixes in expr resolve through the seeded bindings.
func (fr *FragmentReader) Query(expr string) ([]*xmlquery.Node, error) {
	doc, err := fr.Document()
	if err != nil {
		return nil, err
	}

	ns := make(map[string]string)
	for _, item := range fr.bindings {
		if item.Prefix() != "" {
			ns[item.Prefix()] = item.URI()
		}
	}
	compiled, err := xpath.CompileWithNS(expr, ns)
	if err != nil {
		return nil, errors.Wrapf(err, `failed to compile %q`, expr)
	}
	return xmlquery.QuerySelectorAll(doc, compiled), nil
}

func (fr *FragmentReader) Close() error {
	return fr.frag.Close()
}
