// Package blockpool provides reusable scratch buffers for transient
// block-aligned message copies, reducing allocations on the tag path.
package blockpool

import "sync"

const defaultCap = 512

var pool = sync.Pool{
	New: func() any {
		return make([]byte, 0, defaultCap)
	},
}

// Get returns a zeroed buffer of length n. The buffer may be reused pool
// memory; callers own it until they hand it back with Put.
func Get(n int) []byte {
	b, _ := pool.Get().([]byte)
	if cap(b) < n {
		return make([]byte, n)
	}

	b = b[:n]
	for i := range b {
		b[i] = 0
	}

	return b
}

// Put wipes buf and returns it to the pool. Buffers on the tag path carry
// keyed material, so the wipe happens before the memory can be reused.
func Put(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
	pool.Put(buf[:0]) //nolint:staticcheck // slices are what the pool stores.
}
