package contract

import (
	"bytes"
	"sync"
)

// Tiered buffer sizes, picked by the number of exports plus routes.
const (
	smallBufferSize  = 8 * 1024  // <20 declarations
	mediumBufferSize = 32 * 1024 // 20-100 declarations
	largeBufferSize  = 64 * 1024 // 100+ declarations

	maxPooledBufferSize = 1 << 20
)

var smallBufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, smallBufferSize))
	},
}

var mediumBufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, mediumBufferSize))
	},
}

var largeBufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, largeBufferSize))
	},
}

func poolFor(declarations int) *sync.Pool {
	switch {
	case declarations < 20:
		return &smallBufferPool
	case declarations < 100:
		return &mediumBufferPool
	default:
		return &largeBufferPool
	}
}

// getModuleBuffer returns an empty buffer sized for the declaration count.
func getModuleBuffer(declarations int) *bytes.Buffer {
	buf := poolFor(declarations).Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

// putModuleBuffer returns a buffer to the pool it was taken from.
func putModuleBuffer(buf *bytes.Buffer, declarations int) {
	if buf == nil || buf.Cap() > maxPooledBufferSize {
		return
	}
	poolFor(declarations).Put(buf)
}
