package arena

import (
	"fmt"
	"io"
)

// Stats is a read-only snapshot of arena counters.
type Stats struct {
	ChunkCount    int // chunks currently in the chain
	TotalCapacity int // sum of all chunk capacities in bytes
	TotalAllocs   int // allocations since construction or last Reset
	TotalBytes    int // aligned bytes requested since construction or last Reset
}

// Stats walks the chunk chain and returns a snapshot. A freed arena
// reports all zeros.
func (a *Arena) Stats() Stats {
	s := Stats{TotalAllocs: a.totalAllocs, TotalBytes: a.totalBytes}
	for c := a.head; c != nil; c = c.next {
		s.ChunkCount++
		s.TotalCapacity += len(c.buf)
	}
	return s
}

// SizeInUse returns the bytes currently allocated across all chunks,
// including alignment padding.
func (a *Arena) SizeInUse() int {
	sum := 0
	for c := a.head; c != nil; c = c.next {
		sum += c.top
	}
	return sum
}

// NumChunks returns the number of chunks currently in the chain.
func (a *Arena) NumChunks() int {
	n := 0
	for c := a.head; c != nil; c = c.next {
		n++
	}
	return n
}

// Capacity returns the total capacity in bytes of all chunks.
func (a *Arena) Capacity() int {
	return a.Stats().TotalCapacity
}

// ChunkSize returns the capacity used for follow-up chunks.
func (a *Arena) ChunkSize() int {
	return a.chunkSize
}

// Dump writes a one-line diagnostic summary to w, tagged with name.
// Purely observational; never affects arena state.
func (a *Arena) Dump(w io.Writer, name string) {
	if name == "" {
		name = "?"
	}
	s := a.Stats()
	fmt.Fprintf(w, "[Arena:%s] allocs=%d  bytes=%d KB  chunks=%d  cap=%d KB\n",
		name, s.TotalAllocs, s.TotalBytes/1024, s.ChunkCount, s.TotalCapacity/1024)
}
