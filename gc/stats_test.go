package gc

import (
	"strings"
	"testing"
)

func TestStatsSnapshot(t *testing.T) {
	g := New(Config{NurserySize: 1024})

	g.Alloc(100)
	g.Alloc(50)
	g.AllocOld(64)

	s := g.Stats()
	if s.TotalAllocs != 2 {
		t.Errorf("TotalAllocs = %d, want 2", s.TotalAllocs)
	}
	if s.YoungUsedBytes != 104+56 {
		t.Errorf("YoungUsedBytes = %d, want %d", s.YoungUsedBytes, 104+56)
	}
	if s.OldLiveBytes != headerOverhead+64 {
		t.Errorf("OldLiveBytes = %d, want %d", s.OldLiveBytes, headerOverhead+64)
	}

	// Snapshots are copies; mutating one does not touch the counters.
	s.TotalAllocs = 999
	if g.Stats().TotalAllocs != 2 {
		t.Errorf("snapshot mutation leaked into the collector")
	}
}

func TestDumpStats(t *testing.T) {
	g := New(Config{})
	g.Alloc(100)
	g.Sweep()

	var sb strings.Builder
	g.DumpStats(&sb)
	out := sb.String()

	for _, want := range []string{"[GC]", "allocs=1", "minor=1", "major=0", "promoted=0"} {
		if !strings.Contains(out, want) {
			t.Errorf("DumpStats output %q missing %q", out, want)
		}
	}

	// Observational only.
	before := g.Stats()
	g.DumpStats(&sb)
	if g.Stats() != before {
		t.Errorf("DumpStats changed collector state")
	}
}
