package tagsoup

import "github.com/lestrrat-go/option"

type Option = option.Interface

type identEncoding struct{}
type identScopingElement struct{}
type identNameTable struct{}
type identCaptureCapacity struct{}
type identStrictXML struct{}

type ReaderOption interface {
	Option
	readerOption()
}

type readerOption struct{ Option }

func (*readerOption) readerOption() {}

type FragmentOption interface {
	Option
	fragmentOption()
}

type fragmentOption struct{ Option }

func (*fragmentOption) fragmentOption() {}

// WithEncoding names the character encoding of the source. Without it the
// source is read as UTF-8 unless it starts with a UTF-16 byte order mark.
func WithEncoding(v string) ReaderOption {
	return &readerOption{option.New(identEncoding{}, v)}
}

// WithScopingElement sets the element whose xmlns attributes open a new
// namespace scope. The default is "html".
func WithScopingElement(v string) ReaderOption {
	return &readerOption{option.New(identScopingElement{}, v)}
}

// WithNameTable shares an existing atom table with the reader.
func WithNameTable(v *NameTable) ReaderOption {
	return &readerOption{option.New(identNameTable{}, v)}
}

// WithCaptureCapacity is the initial capacity of the buffer that captures
// the raw markup of each node.
func WithCaptureCapacity(v int) ReaderOption {
	return &readerOption{option.New(identCaptureCapacity{}, v)}
}

// WithStrictXML controls whether the fragment is decoded with a strict
// XML decoder. The default is true.
func WithStrictXML(v bool) FragmentOption {
	return &fragmentOption{option.New(identStrictXML{}, v)}
}
