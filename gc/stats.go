package gc

import (
	"fmt"
	"io"
)

// counters are the collector's running totals, incremented by
// allocation and collection operations only.
type counters struct {
	minorCount     uint64
	majorCount     uint64
	promoted       uint64
	totalAllocs    uint64
	youngReclaimed uint64
	oldReclaimed   uint64
}

// Stats is a read-only snapshot of the collector's counters and live
// usage.
type Stats struct {
	MinorCount     uint64 // minor collections run
	MajorCount     uint64 // major collections run
	Promoted       uint64 // objects tenured into the old generation
	TotalAllocs    uint64 // nursery-path allocations
	YoungReclaimed uint64 // young objects dropped by minor passes
	OldReclaimed   uint64 // old nodes released by major passes
	OldLiveBytes   int    // old live bytes incl. header overhead
	OldLiveObjects int    // old live node count
	YoungUsedBytes int    // nursery bytes in use
}

// Stats returns a snapshot of the running counters.
func (g *GC) Stats() Stats {
	return Stats{
		MinorCount:     g.stats.minorCount,
		MajorCount:     g.stats.majorCount,
		Promoted:       g.stats.promoted,
		TotalAllocs:    g.stats.totalAllocs,
		YoungReclaimed: g.stats.youngReclaimed,
		OldReclaimed:   g.stats.oldReclaimed,
		OldLiveBytes:   g.oldUsed,
		OldLiveObjects: g.oldCount,
		YoungUsedBytes: g.top,
	}
}

// DumpStats writes a multi-line diagnostic summary to w. Purely
// observational; never affects collector state.
func (g *GC) DumpStats(w io.Writer) {
	s := g.Stats()
	fmt.Fprintf(w, "[GC] allocs=%d  minor=%d  major=%d\n",
		s.TotalAllocs, s.MinorCount, s.MajorCount)
	fmt.Fprintf(w, "     promoted=%d  collected(y=%d o=%d)\n",
		s.Promoted, s.YoungReclaimed, s.OldReclaimed)
	fmt.Fprintf(w, "     old_live=%d KB  young=%d/%d KB\n",
		s.OldLiveBytes/1024, s.YoungUsedBytes/1024, len(g.young)/1024)
}
