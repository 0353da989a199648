package tagsoup

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/lestrrat-go/tagsoup/encoding"
	"github.com/lestrrat-go/tagsoup/internal/stack/nsstack"
	"github.com/pkg/errors"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const defaultScopingElement = "html"

var nodeTypeNames = [...]string{
	NoneNode:       "None",
	CommentNode:    "Comment",
	IdentifierNode: "Identifier",
	ElementNode:    "Element",
	EndElementNode: "EndElement",
	TextNode:       "Text",
}

func (n NodeType) String() string {
	if n < 0 || int(n) >= len(nodeTypeNames) {
		return "Unknown"
	}
	return nodeTypeNames[n]
}

var readStateNames = [...]string{
	ReadStateInitial:     "Initial",
	ReadStateInteractive: "Interactive",
	ReadStateEndOfFile:   "EndOfFile",
	ReadStateError:       "Error",
	ReadStateClosed:      "Closed",
}

func (s ReadState) String() string {
	if s < 0 || int(s) >= len(readStateNames) {
		return "Unknown"
	}
	return readStateNames[s]
}

// NewReader creates a Reader over src. src must be seekable, although the
// reader itself never seeks backwards.
func NewReader(ctx context.Context, src io.ReadSeeker, options ...ReaderOption) (*Reader, error) {
	ctx, span := StartSpan(ctx, "tagsoup.NewReader")
	defer span.End()

	if src == nil {
		return nil, ErrNotSeekable
	}
	if _, err := src.Seek(0, io.SeekCurrent); err != nil {
		return nil, errors.Wrapf(ErrNotSeekable, `seek failed: %s`, err)
	}

	var encName string
	var names *NameTable
	scoping := defaultScopingElement
	captureCap := defaultCaptureCapacity
	for _, option := range options {
		switch option.Ident() {
		case identEncoding{}:
			encName = option.Value().(string)
		case identScopingElement{}:
			scoping = option.Value().(string)
		case identNameTable{}:
			names = option.Value().(*NameTable)
		case identCaptureCapacity{}:
			captureCap = option.Value().(int)
		}
	}

	var in io.Reader
	if encName == "" {
		in = transform.NewReader(src, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	} else {
		enc := encoding.Load(encName)
		if enc == nil {
			err := errors.Wrapf(ErrUnknownEncoding, `encoding %q`, encName)
			TraceError(ctx, err, "reader not created")
			return nil, err
		}
		in = enc.NewDecoder().Reader(src)
	}

	if names == nil {
		names = NewNameTable()
	}

	tlog := getTraceLogFromContext(ctx)
	tlog.Debug("reader created",
		slog.String("encoding", encName),
		slog.String("scoping_element", scoping),
	)

	return &Reader{
		src:     src,
		tok:     newTokenizer(in, captureCap),
		names:   names,
		scopes:  nsstack.New(),
		scoping: scoping,
		tlog:    tlog,
	}, nil
}

func (r *Reader) check() error {
	switch r.state {
	case ReadStateClosed:
		return ErrClosed
	case ReadStateError:
		return ErrReadError
	}
	return nil
}

// fail moves the reader to the error state.
func (r *Reader) fail(err error) error {
	r.state = ReadStateError
	r.tlog.Debug("read failed", slog.String("error", err.Error()))
	return err
}

func (r *Reader) ReadState() ReadState {
	return r.state
}

// Read advances to the next node. It returns false at the end of the
// source, and keeps returning false afterwards or once the reader is
// closed.
func (r *Reader) Read() (bool, error) {
	switch r.state {
	case ReadStateEndOfFile, ReadStateClosed:
		return false, nil
	case ReadStateError:
		return false, ErrReadError
	}

	ok, err := r.tok.nextNode(modeNormal)
	if err != nil {
		return false, r.fail(err)
	}
	if !ok {
		r.state = ReadStateEndOfFile
		r.tlog.Debug("end of file", slog.Int("line", r.tok.cur.LineNumber()))
		return false, nil
	}
	r.state = ReadStateInteractive

	if err := r.updateScope(); err != nil {
		return false, r.fail(err)
	}
	return true, nil
}

func (r *Reader) NodeType() (NodeType, error) {
	if err := r.check(); err != nil {
		return NoneNode, err
	}
	return r.tok.kind, nil
}

// Name returns the qualified name of an Element, EndElement or Identifier
// node, and the empty string for other nodes.
func (r *Reader) Name() (string, error) {
	if err := r.check(); err != nil {
		return "", err
	}
	switch r.tok.kind {
	case ElementNode, EndElementNode, IdentifierNode:
		return r.tok.nodeName(), nil
	}
	return "", nil
}

func (r *Reader) LocalName() (string, error) {
	name, err := r.Name()
	if err != nil {
		return "", err
	}
	_, local := splitName(name)
	return local, nil
}

func (r *Reader) Prefix() (string, error) {
	name, err := r.Name()
	if err != nil {
		return "", err
	}
	prefix, _ := splitName(name)
	return prefix, nil
}

func splitName(name string) (string, string) {
	if prefix, local, found := strings.Cut(name, ":"); found {
		return prefix, local
	}
	return "", name
}

// Value returns the content of a Text, Comment or Identifier node. For
// other node types it returns the empty string.
func (r *Reader) Value() (string, error) {
	if err := r.check(); err != nil {
		return "", err
	}
	switch r.tok.kind {
	case TextNode, CommentNode, IdentifierNode:
		return r.tok.nodeValue()
	}
	return "", nil
}

func (r *Reader) IsEmptyElement() (bool, error) {
	if err := r.check(); err != nil {
		return false, err
	}
	if r.tok.kind != ElementNode {
		return false, ErrNotElement
	}
	return r.tok.isEmpty()
}

func (r *Reader) AttributeCount() (int, error) {
	if err := r.check(); err != nil {
		return 0, err
	}
	attrs, err := r.tok.attributes()
	if err != nil {
		return 0, err
	}
	return len(attrs), nil
}

func (r *Reader) HasAttributes() (bool, error) {
	n, err := r.AttributeCount()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Attributes returns a copy of the attributes of the current node.
func (r *Reader) Attributes() ([]Attribute, error) {
	if err := r.check(); err != nil {
		return nil, err
	}
	attrs, err := r.tok.attributes()
	if err != nil {
		return nil, err
	}
	return append([]Attribute(nil), attrs...), nil
}

func (r *Reader) attributesOrError() ([]Attribute, error) {
	if err := r.check(); err != nil {
		return nil, err
	}
	if !r.tok.canHaveAttributes() {
		return nil, ErrNoAttributes
	}
	return r.tok.attributes()
}

// GetAttribute returns the value of the first attribute called name. The
// second return value reports whether such an attribute exists.
func (r *Reader) GetAttribute(name string, ignoreCase bool) (string, bool, error) {
	if name == "" {
		return "", false, errors.Wrap(ErrEmptyArgument, `attribute name`)
	}
	attrs, err := r.attributesOrError()
	if err != nil {
		return "", false, err
	}
	for _, attr := range attrs {
		n := attr.Name()
		if n == name || (ignoreCase && strings.EqualFold(n, name)) {
			return attr.Value(), true, nil
		}
	}
	return "", false, nil
}

func (r *Reader) AttributeAt(i int) (Attribute, error) {
	attrs, err := r.attributesOrError()
	if err != nil {
		return Attribute{}, err
	}
	if i < 0 || i >= len(attrs) {
		return Attribute{}, errors.Wrapf(ErrIndexOutOfRange, `attribute %d of %d`, i, len(attrs))
	}
	return attrs[i], nil
}

// Skip moves past the current element and its subtree.
func (r *Reader) Skip() error {
	frag, err := r.GetOuterHTML()
	if err != nil {
		return err
	}
	return frag.Close()
}

// GetOuterHTML returns the current element, from its start tag to its
// matching end tag, exactly as it appears in the source. Afterwards the
// reader is positioned on no node; call Read to continue.
func (r *Reader) GetOuterHTML() (*Fragment, error) {
	if err := r.check(); err != nil {
		return nil, err
	}
	scoping := r.tok.kind == ElementNode && strings.EqualFold(r.tok.nodeName(), r.scoping)

	frag, err := r.tok.outerHTML()
	if err != nil {
		if errors.Is(err, ErrNotElement) || errors.Is(err, ErrNodeCopied) {
			return nil, err
		}
		return nil, r.fail(err)
	}
	if scoping {
		r.popScope()
	}
	r.tlog.Debug("outer markup captured", slog.Int("bytes", len(frag.Bytes())))
	return frag, nil
}

// GetOuterXML is GetOuterHTML for markup that is known to be well formed
// XML. The namespace prefixes in scope at the current element are
// declared for the returned reader.
func (r *Reader) GetOuterXML(options ...FragmentOption) (*FragmentReader, error) {
	if err := r.check(); err != nil {
		return nil, err
	}
	bindings := r.scopes.InScope()
	frag, err := r.GetOuterHTML()
	if err != nil {
		return nil, err
	}
	return newFragmentReader(frag, bindings, options...), nil
}

// CopyNode writes the raw markup of the current node to w, then consumes
// the rest of the node. It can be called once per node. w is not flushed.
func (r *Reader) CopyNode(w io.Writer) error {
	return r.copyNode(w, modeSkip)
}

// TeeNode is CopyNode, but the node's name, value and attributes remain
// available afterwards.
func (r *Reader) TeeNode(w io.Writer) error {
	return r.copyNode(w, modeWrite)
}

func (r *Reader) copyNode(w io.Writer, mode parseMode) error {
	if err := r.check(); err != nil {
		return err
	}
	if r.tok.kind == NoneNode {
		return ErrNoCurrentNode
	}
	if err := r.tok.copyNode(w, mode); err != nil {
		if errors.Is(err, ErrNilWriter) || errors.Is(err, ErrNodeCopied) {
			return err
		}
		return r.fail(err)
	}
	return nil
}

// LineNumber is the 1-based line of the reader's position in the source.
func (r *Reader) LineNumber() int {
	return r.tok.cur.LineNumber()
}

// LinePosition is the number of characters consumed on the current line.
func (r *Reader) LinePosition() int {
	return r.tok.cur.Column()
}

// Close releases the reader and closes the source if it is an io.Closer.
// Closing a closed reader does nothing.
func (r *Reader) Close() error {
	if r.state == ReadStateClosed {
		return nil
	}
	r.state = ReadStateClosed
	r.tok.close()
	r.tlog.Debug("reader closed")

	if c, ok := r.src.(io.Closer); ok {
		if err := c.Close(); err != nil {
			return errors.Wrap(err, `failed to close source`)
		}
	}
	return nil
}
