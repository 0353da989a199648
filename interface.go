package tagsoup

import (
	"bufio"
	"encoding/xml"
	"io"
	"log/slog"
	"strings"

	"github.com/lestrrat-go/tagsoup/internal/stack/nsstack"
)

const Version = "v0.1.0"

// NodeType identifies the kind of node the reader is positioned on.
type NodeType int

const (
	NoneNode NodeType = iota
	CommentNode
	IdentifierNode
	ElementNode
	EndElementNode
	TextNode
)

// ReadState is the lifecycle state of a Reader.
type ReadState int

const (
	ReadStateInitial ReadState = iota
	ReadStateInteractive
	ReadStateEndOfFile
	ReadStateError
	ReadStateClosed
)

type parseState int

const (
	stBetweenNodes parseState = iota
	stBeginTag
	stBang
	stBangDash
	stText
	stTag
	stTagSlash
	stEndTag
	stBetweenAttributes
	stAttributeName
	stAttributeBeforeEquals
	stAttributeAfterEquals
	stAttributeValue
	stAttributeValueSlash
	stQuotedAttributeValue
	stCommentStart
	stComment
	stCommentDash
	stCommentDashes
	stIdentifier
)

// parseMode controls what the tokenizer keeps while it consumes a node.
// The node name is always kept.
type parseMode int

const (
	modeSkip parseMode = iota
	modeNormal
	modeWrite
)

// Attribute is a name/value pair found on an Element or Identifier node.
type Attribute struct {
	name   string
	value  string
	quote  rune
	line   int
	column int
}

// Atom is an interned string. Two atoms obtained from the same NameTable
// for equal strings are the same pointer.
type Atom struct {
	s string
}

// NameTable interns strings into atoms. It is not safe for concurrent use.
type NameTable struct {
	atoms map[string]*Atom
}

type cursor struct {
	in     *bufio.Reader
	line   int
	column int
}

// sink receives every character the tokenizer consumes.
type sink interface {
	writeRune(rune) error
}

// nodeBuffer holds the raw characters of the current node. Its storage
// comes from the byte slice pool.
type nodeBuffer struct {
	buf []byte
}

// outerCapture accumulates a carved element. Its bytes are handed to a
// Fragment exactly once.
type outerCapture struct {
	buf      []byte
	released bool
}

// passThrough forwards characters to a caller-supplied writer.
type passThrough struct {
	w *bufio.Writer
}

type transition struct {
	next  parseState
	start NodeType
	fx    effect
}

type tokenizer struct {
	cur *cursor

	state parseState
	mode  parseMode
	kind  NodeType
	empty bool
	prev  rune

	name  strings.Builder
	value strings.Builder

	attrs     []Attribute
	attrName  strings.Builder
	attrValue strings.Builder
	attrLine  int
	attrCol   int
	quote     rune
	dashes    int

	sink       sink
	capture    *nodeBuffer
	redirected bool
	captureCap int
}

// Reader is a forward-only reader over tag soup. Nodes are produced in
// source order and nothing before the current node is retained.
type Reader struct {
	src     io.ReadSeeker
	tok     *tokenizer
	state   ReadState
	names   *NameTable
	scopes  *nsstack.Stack
	scoping string
	tlog    *slog.Logger
}

// Fragment owns the markup carved out by GetOuterHTML.
type Fragment struct {
	buf    []byte
	rdr    io.ReadSeeker
	closed bool
}

// FragmentReader reads a carved element as XML. The prefixes that were in
// scope where the element was found are declared around it.
type FragmentReader struct {
	frag     *Fragment
	bindings []nsstack.Item
	strict   bool
	dec      *xml.Decoder
	depth    int
	done     bool
}
