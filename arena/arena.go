package arena

import "github.com/pkg/errors"

// DefaultChunkSize is the default chunk size for new arenas (64 KiB).
const DefaultChunkSize = 1 << 16

// allocAlign is the alignment of every returned allocation.
const allocAlign = 8

// chunk is a single page-rounded memory region owned by an arena.
type chunk struct {
	buf  []byte // backing memory reserved from the OS
	top  int    // allocation offset within buf
	next *chunk // older chunk in the chain
}

// Arena is a chunked bump allocator. The chain of chunks grows only at
// head; first is fixed at construction and is the sole chunk preserved
// across Reset. Not goroutine-safe.
type Arena struct {
	head        *chunk // current allocation target, most recently added
	first       *chunk // initial chunk, kept by Reset
	chunkSize   int    // capacity for follow-up chunks
	totalAllocs int
	totalBytes  int
}

// New creates an Arena with one chunk of at least initialCapacity
// bytes, rounded up to a page boundary. If initialCapacity <= 0,
// DefaultChunkSize is used. The initial capacity also becomes the
// capacity of follow-up chunks.
func New(initialCapacity int) (*Arena, error) {
	if initialCapacity <= 0 {
		initialCapacity = DefaultChunkSize
	}
	c, err := newChunk(initialCapacity)
	if err != nil {
		return nil, errors.Wrap(err, "arena: reserve initial chunk")
	}
	return &Arena{head: c, first: c, chunkSize: initialCapacity}, nil
}

func newChunk(capacity int) (*chunk, error) {
	buf, err := reservePages(capacity)
	if err != nil {
		return nil, err
	}
	return &chunk{buf: buf}, nil
}

// Alloc returns an 8-byte-aligned slice of size bytes backed by the
// arena. Returns nil if size <= 0, if the arena has been freed, or if
// a needed chunk cannot be reserved from the OS (prior allocations
// stay intact). The memory is not zeroed.
func (a *Arena) Alloc(size int) []byte {
	if a.head == nil || size <= 0 {
		return nil
	}
	aligned := alignUp(size)
	a.totalAllocs++
	a.totalBytes += aligned

	// Fast path: room in the current head chunk.
	c := a.head
	if c.top+aligned <= len(c.buf) {
		p := c.buf[c.top : c.top+size : c.top+aligned]
		c.top += aligned
		return p
	}
	return a.allocSlow(size, aligned)
}

// allocSlow pushes a fresh head chunk and allocates from it. An
// oversized request gets a chunk of twice its size so it does not
// under-provision subsequent small requests.
func (a *Arena) allocSlow(size, aligned int) []byte {
	capacity := a.chunkSize
	if aligned > capacity {
		capacity = 2 * aligned
	}
	c, err := newChunk(capacity)
	if err != nil {
		return nil
	}
	c.next = a.head
	a.head = c
	c.top = aligned
	return c.buf[0:size:aligned]
}

// AllocZeroed is Alloc with the returned region zero-filled.
func (a *Arena) AllocZeroed(size int) []byte {
	p := a.Alloc(size)
	if p != nil {
		clear(p)
	}
	return p
}

// Reset releases every chunk except the first back to the OS, rewinds
// the first chunk's cursor and makes it the head again. Counters are
// zeroed. Cost is proportional to the number of extra chunks, not to
// bytes allocated.
func (a *Arena) Reset() {
	if a.head == nil {
		return
	}
	for c := a.head; c != a.first; {
		next := c.next
		releasePages(c.buf)
		c = next
	}
	a.first.top = 0
	a.first.next = nil
	a.head = a.first
	a.totalAllocs = 0
	a.totalBytes = 0
}

// Free releases every chunk including the first and clears the arena's
// state. A freed arena observably rejects further use: Alloc returns
// nil and Restore returns an error.
func (a *Arena) Free() {
	for c := a.head; c != nil; {
		next := c.next
		releasePages(c.buf)
		c = next
	}
	*a = Arena{}
}

// alignUp rounds n up to the allocation alignment.
func alignUp(n int) int {
	return (n + allocAlign - 1) &^ (allocAlign - 1)
}
