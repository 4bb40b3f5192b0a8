package gc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// A mutator cycle against the default 64 KiB nursery: fill it with
// 100-byte payloads, keep every other one reachable, sweep, and expect
// the survivor and reclaim counts to split evenly.
func TestHalfLiveNurseryCycle(t *testing.T) {
	g := New(Config{})

	const payload = 100
	aligned := alignUp(payload) // 104

	var refs []Ref
	for g.top+aligned <= len(g.young) {
		refs = append(refs, g.Alloc(payload))
	}
	require.Equal(t, uint64(0), g.Stats().MinorCount, "filling the nursery must not collect")
	require.Equal(t, DefaultNurserySize/aligned, len(refs))

	marked := 0
	for i, r := range refs {
		if i%2 == 0 {
			g.Mark(r)
			marked++
		}
	}

	g.Sweep()

	s := g.Stats()
	require.Equal(t, uint64(1), s.MinorCount)
	require.Equal(t, uint64(len(refs)-marked), s.YoungReclaimed)
	require.Equal(t, marked*aligned, s.YoungUsedBytes)
	require.Equal(t, uint64(0), s.Promoted, "first survival must age, not promote")

	for i, r := range refs {
		if i%2 == 0 {
			require.NotNil(t, g.Bytes(r), "marked object %d lost", i)
		} else {
			require.Nil(t, g.Bytes(r), "unmarked object %d kept", i)
		}
	}
}

// Old-generation pressure: unmarked direct-old allocations past the
// threshold, then one sweep, leaves the old list empty.
func TestOldPressureSweep(t *testing.T) {
	g := New(Config{})

	n := 0
	for g.Stats().OldLiveBytes <= DefaultOldThreshold {
		g.AllocOld(4096)
		n++
	}

	g.Sweep()

	s := g.Stats()
	require.Equal(t, uint64(1), s.MajorCount)
	require.Equal(t, 0, s.OldLiveBytes)
	require.Equal(t, 0, s.OldLiveObjects)
	require.Equal(t, uint64(n), s.OldReclaimed)
}

// A longer mutator run mixing promotion tiers: root objects stay
// marked across every cycle and end up old, per-cycle temporaries die
// young.
func TestGenerationalLifecycle(t *testing.T) {
	g := New(Config{NurserySize: 8192, TenuringAge: 2})

	roots := []Ref{g.Alloc(128), g.Alloc(128)}
	temps := 0

	for cycle := 0; cycle < 4; cycle++ {
		for i := 0; i < 8; i++ {
			g.Alloc(64)
			temps++
		}
		g.UnmarkAll()
		for _, r := range roots {
			g.Mark(r)
		}
		g.Sweep()
	}

	s := g.Stats()
	require.Equal(t, uint64(len(roots)), s.Promoted)
	require.Equal(t, uint64(temps), s.YoungReclaimed)
	require.Equal(t, len(roots), s.OldLiveObjects)
	require.Equal(t, 0, s.YoungUsedBytes)
	for _, r := range roots {
		require.NotNil(t, g.Bytes(r))
		require.Equal(t, genOld, g.objects[r].gen)
	}
}
