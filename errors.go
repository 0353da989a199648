package tagsoup

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrClosed           = errors.New("reader is closed")
	ErrReadError        = errors.New("reader is in error state")
	ErrNotElement       = errors.New("current node is not an element")
	ErrNoAttributes     = errors.New("current node can not have attributes")
	ErrNodeCopied       = errors.New("current node has already been copied")
	ErrNoCurrentNode    = errors.New("reader is not positioned on a node")
	ErrNilWriter        = errors.New("nil writer")
	ErrEmptyArgument    = errors.New("empty argument")
	ErrIndexOutOfRange  = errors.New("index out of range")
	ErrNotSeekable      = errors.New("source is not seekable")
	ErrUnknownEncoding  = errors.New("unknown encoding")
	ErrFragmentReleased = errors.New("fragment has already been released")
	ErrFragmentClosed   = errors.New("fragment is closed")
)

// errExhausted signals that the source ran out of characters. It never
// escapes the package.
var errExhausted = errors.New("source exhausted")

func ignoreExhausted(err error) error {
	if err == errExhausted {
		return nil
	}
	return err
}

// ErrPosition annotates an error with the cursor position at which it
// happened.
type ErrPosition struct {
	Err        error
	LineNumber int
	Column     int
}

func (e ErrPosition) Error() string {
	return fmt.Sprintf("%s at line %d, column %d", e.Err, e.LineNumber, e.Column)
}

func (e ErrPosition) Unwrap() error {
	return e.Err
}
