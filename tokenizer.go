package tagsoup

import (
	"io"
	"strings"

	"github.com/lestrrat-go/pdebug/v3"
	"github.com/pkg/errors"
	"golang.org/x/net/html"
)

const defaultCaptureCapacity = 256

func newTokenizer(r io.Reader, captureCap int) *tokenizer {
	if captureCap <= 0 {
		captureCap = defaultCaptureCapacity
	}
	return &tokenizer{
		cur:        newCursor(r),
		state:      stBetweenNodes,
		mode:       modeNormal,
		captureCap: captureCap,
	}
}

func (t *tokenizer) readError(err error) error {
	if err == io.EOF {
		return errExhausted
	}
	return ErrPosition{
		Err:        errors.Wrap(err, `failed to read from source`),
		LineNumber: t.cur.LineNumber(),
		Column:     t.cur.Column(),
	}
}

// readChar consumes one character and hands it to the current sink. The
// first character of a node starts a fresh capture buffer unless the
// output is redirected.
func (t *tokenizer) readChar() (rune, error) {
	if t.state == stBetweenNodes && !t.redirected {
		t.beginCapture()
	}

	c, err := t.cur.next()
	if err != nil {
		return 0, t.readError(err)
	}

	if t.sink != nil {
		if err := t.sink.writeRune(c); err != nil {
			return 0, err
		}
	}
	return c, nil
}

func (t *tokenizer) beginCapture() {
	if t.capture != nil {
		t.capture.recycle()
	}
	t.capture = newNodeBuffer(t.captureCap)
	t.sink = t.capture
}

// advance consumes characters until the current node ends or until its
// type is known, whichever comes first.
func (t *tokenizer) advance() error {
	for {
		if t.state == stText {
			c, err := t.cur.peek()
			if err != nil {
				return t.readError(err)
			}
			if c == '<' {
				t.state = stBetweenNodes
				t.endNode()
				return nil
			}
		}

		c, err := t.readChar()
		if err != nil {
			return err
		}

		tr := step(t.state, c, t.quote)
		if pdebug.Enabled {
			pdebug.Printf("tokenizer: %s --%q--> %s", t.state, c, tr.next)
		}
		t.apply(tr, c)
		t.prev = c
		t.state = tr.next
		if tr.fx&(fxEnd|fxReturn) != 0 {
			return nil
		}
	}
}

func (t *tokenizer) apply(tr transition, c rune) {
	if tr.start != NoneNode {
		t.startNode(tr.start)
	}

	fx := tr.fx
	store := t.mode != modeSkip

	if fx&fxSlashName != 0 {
		t.name.WriteByte('/')
	}
	if fx&fxDashName != 0 {
		t.name.WriteByte('-')
	}
	if fx&fxName != 0 {
		t.name.WriteRune(c)
	}
	if fx&fxFlushDashes != 0 {
		t.flushDashes(t.dashes, store)
	}
	if fx&fxFlushExtraDashes != 0 {
		t.flushDashes(t.dashes-2, store)
	}
	if store {
		if fx&fxLtValue != 0 {
			t.value.WriteByte('<')
		}
		if fx&fxValue != 0 {
			t.value.WriteRune(c)
		}
		if fx&fxCommitAttr != 0 {
			t.commitAttribute()
		}
	}
	if fx&fxNewAttr != 0 {
		t.newAttribute()
	}
	if fx&fxQuote != 0 {
		t.quote = c
	}
	if store {
		if fx&fxSlashAttrValue != 0 {
			t.attrValue.WriteByte('/')
		}
		if fx&fxAttrName != 0 {
			t.attrName.WriteRune(c)
		}
		if fx&fxAttrValue != 0 {
			t.attrValue.WriteRune(c)
		}
	}
	if fx&fxCountDash != 0 {
		t.dashes++
	}
	if fx&fxEnd != 0 {
		t.endNode()
	}
}

func (t *tokenizer) startNode(kind NodeType) {
	t.kind = kind
	t.empty = false
	t.name.Reset()
	t.value.Reset()
	t.attrs = t.attrs[:0]
	t.quote = 0
	t.dashes = 0
}

func (t *tokenizer) endNode() {
	t.empty = t.kind == ElementNode && t.prev == '/'
}

func (t *tokenizer) flushDashes(n int, store bool) {
	if store {
		for range n {
			t.value.WriteByte('-')
		}
	}
	t.dashes = 0
}

func (t *tokenizer) newAttribute() {
	t.attrName.Reset()
	t.attrValue.Reset()
	t.quote = 0
	t.attrLine = t.cur.LineNumber()
	t.attrCol = t.cur.Column()
}

func (t *tokenizer) commitAttribute() {
	t.attrs = append(t.attrs, Attribute{
		name:   t.attrName.String(),
		value:  t.attrValue.String(),
		quote:  t.quote,
		line:   t.attrLine,
		column: t.attrCol,
	})
}

// finish consumes the rest of the current node in the given mode. It
// returns errExhausted if the source ends first.
func (t *tokenizer) finish(mode parseMode) error {
	t.mode = mode
	for t.state != stBetweenNodes {
		if err := t.advance(); err != nil {
			return err
		}
	}
	return nil
}

// nextNode skips whatever is left of the current node and starts the next
// one. It returns false once the source is exhausted.
func (t *tokenizer) nextNode(mode parseMode) (bool, error) {
	if err := t.finish(modeSkip); err != nil {
		return t.exhausted(err)
	}

	t.mode = mode
	if err := t.advance(); err != nil {
		return t.exhausted(err)
	}

	if pdebug.Enabled {
		pdebug.Printf("tokenizer: node %s %q at line %d", t.kind, t.name.String(), t.cur.LineNumber())
	}
	return true, nil
}

func (t *tokenizer) exhausted(err error) (bool, error) {
	if err != errExhausted {
		return false, err
	}
	t.kind = NoneNode
	return false, nil
}

func (t *tokenizer) nodeName() string {
	return html.UnescapeString(t.name.String())
}

func (t *tokenizer) nodeValue() (string, error) {
	if err := ignoreExhausted(t.finish(modeNormal)); err != nil {
		return "", err
	}
	return html.UnescapeString(t.value.String()), nil
}

func (t *tokenizer) canHaveAttributes() bool {
	return t.kind == ElementNode || t.kind == IdentifierNode
}

// attributes parses the rest of the current node and returns its
// attributes. The returned slice is owned by the tokenizer.
func (t *tokenizer) attributes() ([]Attribute, error) {
	if !t.canHaveAttributes() {
		return nil, nil
	}
	if err := ignoreExhausted(t.finish(modeNormal)); err != nil {
		return nil, err
	}
	return t.attrs, nil
}

func (t *tokenizer) isEmpty() (bool, error) {
	if err := ignoreExhausted(t.finish(modeNormal)); err != nil {
		return false, err
	}
	return t.empty, nil
}

func (t *tokenizer) redirect(s sink) {
	t.sink = s
	t.redirected = true
}

func (t *tokenizer) endRedirect() {
	t.sink = nil
	t.redirected = false
}

// copyNode writes the current node, read so far or not, to w. The node's
// capture buffer is consumed.
func (t *tokenizer) copyNode(w io.Writer, mode parseMode) error {
	if pdebug.Enabled {
		g := pdebug.FuncMarker()
		defer g.End()
	}

	if w == nil {
		return ErrNilWriter
	}
	if t.capture == nil {
		return ErrNodeCopied
	}

	pt := newPassThrough(w)
	buf := t.capture.buf
	err := pt.write(buf)
	t.capture.recycle()
	t.capture = nil
	t.sink = nil
	if err != nil {
		return errors.Wrap(err, `failed to copy node`)
	}

	if t.state != stBetweenNodes {
		t.redirect(pt)
		err := ignoreExhausted(t.finish(mode))
		t.endRedirect()
		if err != nil {
			return err
		}
	}

	if err := pt.flush(); err != nil {
		return errors.Wrap(err, `failed to copy node`)
	}
	return nil
}

// outerHTML carves the current element and everything up to its matching
// end tag out of the stream. Nesting is tracked by name only, compared
// case-insensitively.
func (t *tokenizer) outerHTML() (frag *Fragment, err error) {
	if pdebug.Enabled {
		g := pdebug.FuncMarker().BindError(&err)
		defer g.End()
	}

	name := t.nodeName()
	if t.kind != ElementNode || name == "" {
		return nil, ErrNotElement
	}
	if t.capture == nil {
		return nil, ErrNodeCopied
	}

	oc := &outerCapture{buf: t.capture.detach()}
	t.capture = nil
	t.redirect(oc)
	defer t.endRedirect()

	if err := t.carve(name); err != nil {
		return nil, err
	}

	t.kind = NoneNode
	return oc.release()
}

func (t *tokenizer) carve(name string) error {
	err := t.finish(modeSkip)
	if err != nil {
		return ignoreExhausted(err)
	}
	if t.empty {
		return nil
	}

	depth := 1
	for depth > 0 {
		ok, err := t.nextNode(modeSkip)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		switch t.kind {
		case ElementNode:
			if strings.EqualFold(t.nodeName(), name) {
				depth++
			}
		case EndElementNode:
			if strings.EqualFold(t.nodeName(), name) {
				depth--
			}
		}
	}
	return ignoreExhausted(t.finish(modeSkip))
}

func (t *tokenizer) close() {
	if t.capture != nil {
		t.capture.recycle()
		t.capture = nil
	}
	t.sink = nil
	t.redirected = false
}
