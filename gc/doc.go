// Package gc implements a generational mark-sweep garbage collector
// for a managed-language runtime: a fixed-capacity bump-pointer
// nursery for new objects and an intrusive linked list for objects
// that survive enough minor collections to be promoted.
//
// The collector performs no root scanning. Before a collection the
// caller marks every object it still considers reachable:
//
//	g := gc.New(gc.Config{})
//	r := g.Alloc(64)
//	// ... mutator runs ...
//	g.UnmarkAll()
//	g.Mark(r)
//	g.Sweep() // minor pass; major pass only past the old threshold
//
// Objects are addressed by opaque Ref handles rather than raw
// pointers. A handle stays valid across collections while the object
// is kept marked; slices returned by Bytes do not - young storage
// compacts and promotion re-homes the payload, so Bytes must be
// re-fetched after any collection.
//
// A GC instance is a self-contained heap; independent instances never
// share state. Not goroutine-safe: one mutator per instance.
package gc
