// Package stack provides the LIFO container used by the namespace scope
// stack.
package stack

import "iter"

// Stack is a LIFO of T. The zero value is ready to use.
type Stack[T any] struct {
	items []T
}

func (s *Stack[T]) Push(v T) {
	s.items = append(s.items, v)
}

// Pop removes and returns the top item. The second return value is false
// if the stack was empty.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	l := len(s.items)
	if l == 0 {
		return zero, false
	}
	v := s.items[l-1]
	s.items[l-1] = zero
	s.items = s.items[:l-1]

	// give memory back once a deep document has been unwound
	if c := cap(s.items); c > 20 && c > len(s.items)*2 {
		s.items = append([]T(nil), s.items...)
	}
	return v, true
}

// Peek returns the top item without removing it.
func (s *Stack[T]) Peek() (T, bool) {
	var zero T
	if len(s.items) == 0 {
		return zero, false
	}
	return s.items[len(s.items)-1], true
}

func (s *Stack[T]) Len() int {
	return len(s.items)
}

// Backward iterates from the top of the stack to the bottom.
func (s *Stack[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := len(s.items) - 1; i >= 0; i-- {
			if !yield(s.items[i]) {
				return
			}
		}
	}
}

// Forward iterates from the bottom of the stack to the top.
func (s *Stack[T]) Forward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s.items {
			if !yield(v) {
				return
			}
		}
	}
}
