package handler

import (
	"bytes"
	"sync"
)

const initialBufferSize = 4096

// bufferPool recycles response encoding buffers. Dataset listings are large
// and served often, so buffers start bigger than a typical small payload.
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, initialBufferSize))
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

func putBuffer(buf *bytes.Buffer) {
	buf.Reset()
	bufferPool.Put(buf)
}
