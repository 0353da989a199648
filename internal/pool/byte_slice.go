// Package pool recycles the byte slices that back per-node capture buffers.
package pool

import "sync"

const defaultCapacity = 64

type ByteSlicePool struct {
	pool sync.Pool
}

var byteSlice = &ByteSlicePool{}

func ByteSlice() *ByteSlicePool {
	return byteSlice
}

func (p *ByteSlicePool) Get() []byte {
	return p.GetCapacity(defaultCapacity)
}

// GetCapacity returns an empty slice whose capacity is at least n.
func (p *ByteSlicePool) GetCapacity(n int) []byte {
	if v, ok := p.pool.Get().(*[]byte); ok {
		if b := *v; cap(b) >= n {
			return b[:0]
		}
	}
	return make([]byte, 0, max(n, defaultCapacity))
}

func (p *ByteSlicePool) Put(b []byte) {
	if b == nil {
		return
	}
	b = b[:0]
	p.pool.Put(&b)
}
