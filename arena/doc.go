// Package arena implements a chunked bump allocator (memory arena) for
// phase-scoped allocation. Typical usage: create one arena per
// compilation phase, allocate many temporary objects from it, then
// Reset() at the end of the phase for O(1) cleanup.
//
// # Basic Usage
//
//	a, err := arena.New(0) // Use default chunk size
//	if err != nil {
//		return err
//	}
//	defer a.Free() // Return all chunks to the OS
//
//	// Allocate raw bytes
//	buf := a.Alloc(1024)
//
//	// Allocate typed values
//	node := arena.NewOf[AstNode](a)
//	toks := arena.Slice[Token](a, 100)
//
//	// Intern strings
//	name := a.Strdup("identifier")
//
//	// Reset between phases (keeps the first chunk)
//	a.Reset()
//
// # Speculative Allocation
//
// Save captures the current allocation position and Restore rolls the
// arena back to it, discarding every chunk and byte allocated in
// between. This supports backtracking parsers: attempt a tentative
// parse, and on failure throw away everything it allocated without
// tearing down the whole arena.
//
//	sp := a.Save()
//	if !tryParse(a) {
//		a.Restore(sp)
//	}
//
// # Memory Layout
//
// Chunks are page-aligned regions obtained directly from the operating
// system (64KB by default). When a chunk fills up, a new chunk is
// pushed at the head of the chain; an oversized request gets a chunk of
// twice its size so follow-up small requests are not starved. Memory
// within chunks is handed out sequentially with 8-byte alignment.
//
// # Important Notes
//
//   - An Arena is not goroutine-safe; one mutator per arena.
//   - No individual deallocation - use Reset() or Free() for bulk cleanup
//   - Memory is not zeroed unless using AllocZeroed, NewOf or SliceZeroed
//   - Allocation failure (OS out of memory) is reported as a nil return,
//     never a panic; prior arena state stays intact
//   - After Free(), every allocation deterministically returns nil
package arena
