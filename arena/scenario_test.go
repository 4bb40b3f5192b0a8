package arena

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Ten 500-byte requests against a 4 KiB arena: 5040 aligned bytes in
// total, so the allocation that would overflow the first chunk forces
// exactly one more.
func TestChunkGrowthScenario(t *testing.T) {
	a := mustNew(t, 4096)
	defer a.Free()
	if len(a.first.buf) != 4096 {
		t.Skip("page size larger than 4 KiB")
	}

	for i := 0; i < 10; i++ {
		require.NotNil(t, a.Alloc(500), "allocation %d failed", i)
	}

	s := a.Stats()
	require.Equal(t, 2, s.ChunkCount)
	require.Equal(t, 10, s.TotalAllocs)
	require.Equal(t, 10*504, s.TotalBytes)
}

// A phase worth of allocations, a reset, and an in-capacity replay:
// the replay must fit the retained first chunk without reserving
// anything new.
func TestResetAvoidsReservation(t *testing.T) {
	a := mustNew(t, 4096)
	defer a.Free()

	capacity := a.Capacity()
	for i := 0; i < 8; i++ {
		a.Alloc(400)
	}
	a.Reset()

	require.Equal(t, 1, a.Stats().ChunkCount)
	require.Equal(t, capacity, a.Capacity())

	a.Alloc(capacity / 2)
	require.Equal(t, 1, a.Stats().ChunkCount, "in-capacity alloc must not reserve a chunk")
}
