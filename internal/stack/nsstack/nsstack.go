// Package nsstack tracks namespace prefix bindings per element scope.
package nsstack

import (
	"github.com/lestrrat-go/tagsoup/internal/orderedmap"
	"github.com/lestrrat-go/tagsoup/internal/stack"
)

const (
	XMLPrefix      = "xml"
	XMLNamespace   = "http://www.w3.org/XML/1998/namespace"
	XMLNSPrefix    = "xmlns"
	XMLNSNamespace = "http://www.w3.org/2000/xmlns/"
)

type Item struct {
	prefix string
	href   string
}

func (i Item) Prefix() string {
	return i.prefix
}

func (i Item) URI() string {
	return i.href
}

type frame = orderedmap.Map[string, string]

// Stack is a stack of scopes. The bottom scope holds the predefined
// prefixes and can not be popped.
type Stack struct {
	frames stack.Stack[*frame]
}

func New() *Stack {
	var s Stack
	base := orderedmap.New[string, string]()
	_ = base.Set(XMLPrefix, XMLNamespace)
	_ = base.Set(XMLNSPrefix, XMLNSNamespace)
	s.frames.Push(base)
	return &s
}

func (s *Stack) PushScope() {
	s.frames.Push(orderedmap.New[string, string]())
}

// PopScope discards the innermost scope. It returns false, leaving the
// stack untouched, when only the predefined scope is left.
func (s *Stack) PopScope() bool {
	if s.frames.Len() <= 1 {
		return false
	}
	s.frames.Pop()
	return true
}

// Depth returns the number of pushed scopes, not counting the predefined one.
func (s *Stack) Depth() int {
	return s.frames.Len() - 1
}

// Declare binds prefix to uri in the innermost scope. The empty prefix
// is the default namespace. Redeclaring a prefix within the same scope
// keeps the first binding and returns orderedmap.ErrDuplicateEntry.
func (s *Stack) Declare(prefix, uri string) error {
	top, _ := s.frames.Peek()
	return top.Set(prefix, uri)
}

// Lookup resolves prefix from the innermost scope outwards.
func (s *Stack) Lookup(prefix string) (string, bool) {
	for f := range s.frames.Backward() {
		if uri, ok := f.Get(prefix); ok {
			return uri, true
		}
	}
	return "", false
}

// InScope returns the effective bindings, innermost declarations winning.
// Predefined prefixes and bindings to the empty URI are left out.
func (s *Stack) InScope() []Item {
	var items []Item
	index := make(map[string]int)
	for f := range s.frames.Forward() {
		for prefix, uri := range f.Range() {
			if prefix == XMLPrefix || prefix == XMLNSPrefix {
				continue
			}
			if i, ok := index[prefix]; ok {
				items[i].href = uri
				continue
			}
			index[prefix] = len(items)
			items = append(items, Item{prefix: prefix, href: uri})
		}
	}

	out := items[:0]
	for _, item := range items {
		if item.href != "" {
			out = append(out, item)
		}
	}
	return out
}
