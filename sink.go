package tagsoup

import (
	"bufio"
	"io"
	"unicode/utf8"

	"github.com/lestrrat-go/tagsoup/internal/pool"
)

func newNodeBuffer(capacity int) *nodeBuffer {
	return &nodeBuffer{buf: pool.ByteSlice().GetCapacity(capacity)}
}

func (b *nodeBuffer) writeRune(r rune) error {
	b.buf = utf8.AppendRune(b.buf, r)
	return nil
}

// detach hands the captured bytes to the caller. The buffer is unusable
// afterwards.
func (b *nodeBuffer) detach() []byte {
	buf := b.buf
	b.buf = nil
	return buf
}

func (b *nodeBuffer) recycle() {
	pool.ByteSlice().Put(b.buf)
	b.buf = nil
}

func (c *outerCapture) writeRune(r rune) error {
	if c.released {
		return ErrFragmentReleased
	}
	c.buf = utf8.AppendRune(c.buf, r)
	return nil
}

func (c *outerCapture) release() (*Fragment, error) {
	if c.released {
		return nil, ErrFragmentReleased
	}
	f := newFragment(c.buf)
	c.buf = nil
	c.released = true
	return f, nil
}

func newPassThrough(w io.Writer) *passThrough {
	return &passThrough{w: bufio.NewWriter(w)}
}

func (p *passThrough) writeRune(r rune) error {
	_, err := p.w.WriteRune(r)
	return err
}

func (p *passThrough) write(b []byte) error {
	_, err := p.w.Write(b)
	return err
}

// flush pushes buffered characters to the underlying writer. The
// underlying writer itself is not flushed.
func (p *passThrough) flush() error {
	return p.w.Flush()
}
