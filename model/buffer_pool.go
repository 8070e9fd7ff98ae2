package model

import "sync"

// BufferPool recycles the per-generation result buffers used by Step.
type BufferPool struct {
	pool sync.Pool
}

func NewBufferPool() *BufferPool {
	return &BufferPool{
		pool: sync.Pool{
			New: func() interface{} {
				return new([]uint8)
			},
		},
	}
}

// Get returns a zeroed buffer of length n
func (p *BufferPool) Get(n int) *[]uint8 {
	buf := p.pool.Get().(*[]uint8)
	if cap(*buf) < n {
		*buf = make([]uint8, n)
		return buf
	}
	*buf = (*buf)[:n]
	clear(*buf)
	return buf
}

// Put hands a buffer back for reuse
func (p *BufferPool) Put(buf *[]uint8) {
	p.pool.Put(buf)
}

func getBuffer(pool *BufferPool, n int) *[]uint8 {
	if pool == nil {
		buf := make([]uint8, n)
		return &buf
	}
	return pool.Get(n)
}

func putBuffer(pool *BufferPool, buf *[]uint8) {
	if pool == nil {
		return
	}
	pool.Put(buf)
}
