package tagsoup

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenizer(src string) *tokenizer {
	return newTokenizer(strings.NewReader(src), 0)
}

func TestTokenizerEarlyReturn(t *testing.T) {
	t.Run("element", func(t *testing.T) {
		tok := newTestTokenizer(`<div class="a">x</div>`)
		ok, err := tok.nextNode(modeNormal)
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, ElementNode, tok.kind)
		require.Equal(t, "div", tok.nodeName())
		require.Equal(t, stBetweenAttributes, tok.state, "attributes are not parsed yet")
		require.Equal(t, "<div ", string(tok.capture.buf))
	})
	t.Run("text", func(t *testing.T) {
		tok := newTestTokenizer(`hello<b>`)
		ok, err := tok.nextNode(modeNormal)
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, TextNode, tok.kind)
		require.Equal(t, stText, tok.state)
		require.Equal(t, "h", tok.value.String(), "only the first character is consumed")

		v, err := tok.nodeValue()
		require.NoError(t, err)
		require.Equal(t, "hello", v)
		require.Equal(t, stBetweenNodes, tok.state)
		require.Equal(t, "hello", string(tok.capture.buf), "the '<' is left for the next node")
	})
	t.Run("comment", func(t *testing.T) {
		tok := newTestTokenizer(`<!-- x -->`)
		ok, err := tok.nextNode(modeNormal)
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, CommentNode, tok.kind)
		require.Equal(t, stCommentStart, tok.state)
	})
}

func TestTokenizerComments(t *testing.T) {
	testcases := []struct {
		src  string
		kind NodeType
		name string
		want string
	}{
		{`<!-- a -->`, CommentNode, "", " a "},
		{`<!--a-b-->`, CommentNode, "", "a-b"},
		{`<!--a--b-->`, CommentNode, "", "a--b"},
		{`<!--a--->`, CommentNode, "", "a-"},
		{`<!--a->b-->`, CommentNode, "", "a->b"},
		{`<!---->`, CommentNode, "", ""},
		{`<!-->`, CommentNode, "", ""},
		{`<!>`, IdentifierNode, "", ""},
		{`<!->`, IdentifierNode, "-", ""},
		{`<!-x>`, IdentifierNode, "-x", ""},
		{`<!DOCTYPE html>`, IdentifierNode, "DOCTYPE", ""},
	}

	for _, tc := range testcases {
		t.Run(tc.src, func(t *testing.T) {
			tok := newTestTokenizer(tc.src + "<p>")
			ok, err := tok.nextNode(modeNormal)
			require.NoError(t, err)
			require.True(t, ok)
			require.Equal(t, tc.kind, tok.kind)

			v, err := tok.nodeValue()
			require.NoError(t, err)
			assert.Equal(t, tc.want, v)
			assert.Equal(t, tc.name, tok.nodeName())
			assert.Equal(t, tc.src, string(tok.capture.buf))

			ok, err = tok.nextNode(modeNormal)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, "p", tok.nodeName(), "the next node starts right after the delimiter")
		})
	}
}

func TestTokenizerEmptyElement(t *testing.T) {
	testcases := []struct {
		src   string
		empty bool
	}{
		{`<br/>`, true},
		{`<br />`, true},
		{`<img src=a.png />`, true},
		{`<img src=a.png/>`, true},
		{`<img src="a.png"/>`, true},
		{`<p>`, false},
		{`<p class=/x>`, false},
	}

	for _, tc := range testcases {
		t.Run(tc.src, func(t *testing.T) {
			tok := newTestTokenizer(tc.src)
			ok, err := tok.nextNode(modeNormal)
			require.NoError(t, err)
			require.True(t, ok)
			empty, err := tok.isEmpty()
			require.NoError(t, err)
			assert.Equal(t, tc.empty, empty)
		})
	}
}

func TestTokenizerSkipMode(t *testing.T) {
	tok := newTestTokenizer(`<a href="x" id=y>`)
	ok, err := tok.nextNode(modeNormal)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, tok.finish(modeSkip))
	require.Empty(t, tok.attrs, "attributes are dropped in skip mode")
	require.Equal(t, "a", tok.nodeName(), "the name is always kept")
}

func TestTokenizerExhausted(t *testing.T) {
	tok := newTestTokenizer(`<div class="a`)
	ok, err := tok.nextNode(modeNormal)
	require.NoError(t, err)
	require.True(t, ok)

	require.Equal(t, errExhausted, tok.finish(modeNormal))

	attrs, err := tok.attributes()
	require.NoError(t, err, "accessors swallow exhaustion")
	require.Empty(t, attrs, "an unterminated attribute is never committed")

	ok, err = tok.nextNode(modeNormal)
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, NoneNode, tok.kind)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk on fire")
}

func TestTokenizerReadError(t *testing.T) {
	tok := newTokenizer(failingReader{}, 0)
	_, err := tok.nextNode(modeNormal)
	require.Error(t, err)

	var perr ErrPosition
	require.True(t, errors.As(err, &perr))
	require.Equal(t, 1, perr.LineNumber)
	require.Contains(t, err.Error(), "disk on fire")
}

func TestTokenizerCopyNode(t *testing.T) {
	tok := newTestTokenizer(`<a href="x">link</a>`)
	ok, err := tok.nextNode(modeNormal)
	require.NoError(t, err)
	require.True(t, ok)

	var buf bytes.Buffer
	require.NoError(t, tok.copyNode(&buf, modeSkip))
	require.Equal(t, `<a href="x">`, buf.String())
	require.ErrorIs(t, tok.copyNode(&buf, modeSkip), ErrNodeCopied)
	require.ErrorIs(t, tok.copyNode(nil, modeSkip), ErrNilWriter)

	ok, err = tok.nextNode(modeNormal)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, TextNode, tok.kind)
	require.Equal(t, "l", string(tok.capture.buf), "a fresh buffer backs the next node")
}

func TestTokenizerOuterHTML(t *testing.T) {
	const src = `<div id=1><DIV>a</div><p>b</p></Div><span>`
	tok := newTestTokenizer(src)
	ok, err := tok.nextNode(modeNormal)
	require.NoError(t, err)
	require.True(t, ok)

	frag, err := tok.outerHTML()
	require.NoError(t, err)
	require.Equal(t, `<div id=1><DIV>a</div><p>b</p></Div>`, frag.String())
	require.Equal(t, NoneNode, tok.kind)

	_, err = tok.outerHTML()
	require.ErrorIs(t, err, ErrNotElement)

	ok, err = tok.nextNode(modeNormal)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "span", tok.nodeName())
}

func TestTokenizerOuterHTMLTruncated(t *testing.T) {
	tok := newTestTokenizer(`<ul><li>one<li>two`)
	ok, err := tok.nextNode(modeNormal)
	require.NoError(t, err)
	require.True(t, ok)

	frag, err := tok.outerHTML()
	require.NoError(t, err)
	require.Equal(t, `<ul><li>one<li>two`, frag.String(), "the rest of the source is captured")

	ok, err = tok.nextNode(modeNormal)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestOuterCaptureRelease(t *testing.T) {
	oc := &outerCapture{}
	require.NoError(t, oc.writeRune('x'))
	frag, err := oc.release()
	require.NoError(t, err)
	require.Equal(t, "x", frag.String())

	require.ErrorIs(t, oc.writeRune('y'), ErrFragmentReleased)
	_, err = oc.release()
	require.ErrorIs(t, err, ErrFragmentReleased)
}
