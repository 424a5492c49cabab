package image

import "sync"

// Pool is a thread-safe pool for reusing pixel buffers.
//
// Pool groups buffers by length, so textures of the same size share a
// bucket. Decoded pixels only live until the upload finishes, which makes
// loading many equally sized textures allocation-free after the first.
//
// Thread safety: All methods are safe for concurrent use.
type Pool struct {
	mu      sync.Mutex
	buckets map[int][][]byte
	maxSize int // max buffers per bucket
}

// NewPool creates a new pixel buffer pool with the given maximum buffers per bucket.
// A maxPerBucket of 0 or less means unlimited.
func NewPool(maxPerBucket int) *Pool {
	return &Pool{
		buckets: make(map[int][][]byte),
		maxSize: maxPerBucket,
	}
}

// Get returns a buffer of exactly n bytes. Reused buffers are not cleared;
// callers overwrite every byte.
func (p *Pool) Get(n int) []byte {
	p.mu.Lock()
	bucket := p.buckets[n]
	if len(bucket) > 0 {
		buf := bucket[len(bucket)-1]
		p.buckets[n] = bucket[:len(bucket)-1]
		p.mu.Unlock()
		return buf
	}
	p.mu.Unlock()

	return make([]byte, n)
}

// Put returns buf to the pool. Empty buffers and buffers beyond the bucket
// limit are dropped.
func (p *Pool) Put(buf []byte) {
	n := len(buf)
	if n == 0 {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[n]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.buckets[n] = append(bucket, buf[:n:n])
}

// Len returns the number of idle buffers of n bytes.
func (p *Pool) Len(n int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.buckets[n])
}

var defaultPool = NewPool(4)

// Release returns pixels obtained from Flatten for reuse. pix must not be
// used afterwards.
func Release(pix []byte) {
	defaultPool.Put(pix)
}
