package handler

import (
	"bytes"
	"sync"
)

const (
	initialBufferSize = 512
	// Buffers that grew past this (large recaps, history pages) are dropped, not pooled
	maxPooledBufferSize = 64 << 10
)

// bufferPool reuses JSON encoding buffers across responses
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, initialBufferSize))
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > maxPooledBufferSize {
		return
	}
	buf.Reset()
	bufferPool.Put(buf)
}
