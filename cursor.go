package tagsoup

import (
	"bufio"
	"io"
)

func newCursor(r io.Reader) *cursor {
	return &cursor{
		in:   bufio.NewReader(r),
		line: 1,
	}
}

// next consumes one character. A CR that is not followed by an LF, or an
// LF, ends the current line.
func (c *cursor) next() (rune, error) {
	r, _, err := c.in.ReadRune()
	if err != nil {
		return 0, err
	}

	switch r {
	case '\n':
		c.newline()
	case '\r':
		if p, err := c.peek(); err == nil && p == '\n' {
			c.column++
		} else {
			c.newline()
		}
	default:
		c.column++
	}
	return r, nil
}

// peek returns the next character without consuming it.
func (c *cursor) peek() (rune, error) {
	r, _, err := c.in.ReadRune()
	if err != nil {
		return 0, err
	}
	if err := c.in.UnreadRune(); err != nil {
		return 0, err
	}
	return r, nil
}

func (c *cursor) newline() {
	c.line++
	c.column = 0
}

func (c *cursor) LineNumber() int {
	return c.line
}

func (c *cursor) Column() int {
	return c.column
}
