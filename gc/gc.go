package gc

// Defaults: the nursery fits in L2, the old threshold bounds major
// pass frequency, and two survived minors tenure an object.
const (
	DefaultNurserySize  = 64 << 10
	DefaultOldThreshold = 2 << 20
	DefaultTenuringAge  = 2
)

// headerOverhead is the per-object metadata charge counted into
// old-generation live bytes, so the old threshold trips at the same
// load whether payloads are large or small.
const headerOverhead = 16

// allocAlign is the alignment every payload size is rounded up to.
const allocAlign = 8

// Ref is an opaque handle to a collector-owned object. The zero value
// is NilRef and refers to nothing.
type Ref uint64

// NilRef is the null handle. Mark(NilRef) is a no-op and
// Bytes(NilRef) returns nil.
const NilRef Ref = 0

const (
	genYoung uint8 = 0
	genOld   uint8 = 1
)

// object is the per-allocation record: metadata plus the location of
// the payload (nursery offset while young, owned buffer once old).
type object struct {
	ref    Ref
	size   int // aligned payload bytes
	age    int // minor collections survived while marked
	marked bool
	gen    uint8
	offset int     // young: payload offset in the nursery
	data   []byte  // old: payload storage
	next   *object // old: intrusive list link
}

// Config holds the collector tuning knobs. Zero or negative fields
// fall back to the package defaults.
type Config struct {
	NurserySize  int // nursery capacity in bytes
	OldThreshold int // old live bytes above which Sweep runs a major pass
	TenuringAge  int // survived minors before promotion
}

// GC is one self-contained generational heap.
type GC struct {
	cfg Config

	young   []byte // nursery payload region
	scratch []byte // survivor copy destination, same capacity
	top     int    // nursery bump cursor

	youngObjs []*object // young records in address order
	oldHead   *object   // old list, newest first
	oldUsed   int       // old live bytes incl. header overhead
	oldCount  int       // old live objects

	objects map[Ref]*object // handle table
	lastRef Ref

	stats counters
}

// New constructs a collector, allocating the nursery and an
// equal-capacity survivor scratch buffer up front.
func New(cfg Config) *GC {
	if cfg.NurserySize <= 0 {
		cfg.NurserySize = DefaultNurserySize
	}
	if cfg.OldThreshold <= 0 {
		cfg.OldThreshold = DefaultOldThreshold
	}
	if cfg.TenuringAge <= 0 {
		cfg.TenuringAge = DefaultTenuringAge
	}
	return &GC{
		cfg:     cfg,
		young:   make([]byte, cfg.NurserySize),
		scratch: make([]byte, cfg.NurserySize),
		objects: make(map[Ref]*object),
	}
}

// Alloc allocates size payload bytes, rounded up to 8. Size <= 0 is
// treated as 1. Fast path is a nursery bump; on overflow one minor
// collection runs and the allocation is retried, falling back to a
// direct old-generation allocation if the nursery still cannot hold
// it.
func (g *GC) Alloc(size int) Ref {
	if size <= 0 {
		size = 1
	}
	aligned := alignUp(size)
	g.stats.totalAllocs++

	if g.top+aligned <= len(g.young) {
		return g.allocYoung(aligned)
	}
	g.collectMinor()
	if g.top+aligned <= len(g.young) {
		return g.allocYoung(aligned)
	}
	return g.allocOld(aligned)
}

// AllocOld bypasses the nursery and allocates directly in the old
// generation, age preset to the tenuring threshold. Intended for data
// whose lifetime policy requires immediate old residency, e.g. objects
// handed across a foreign-language boundary.
func (g *GC) AllocOld(size int) Ref {
	if size <= 0 {
		size = 1
	}
	return g.allocOld(alignUp(size))
}

func (g *GC) allocYoung(aligned int) Ref {
	obj := &object{ref: g.nextRef(), size: aligned, offset: g.top}
	g.top += aligned
	g.youngObjs = append(g.youngObjs, obj)
	g.objects[obj.ref] = obj
	return obj.ref
}

// Bytes returns the payload of ref, length equal to the aligned
// allocation size, or nil for NilRef and reclaimed handles. The slice
// is invalidated by any collection: young storage compacts and
// promotion moves the payload to a new buffer.
func (g *GC) Bytes(ref Ref) []byte {
	obj := g.objects[ref]
	if obj == nil {
		return nil
	}
	if obj.gen == genOld {
		return obj.data
	}
	return g.young[obj.offset : obj.offset+obj.size]
}

// Mark flags ref as reachable for the next collection. No-op for
// NilRef and handles this collector does not own.
func (g *GC) Mark(ref Ref) {
	if obj := g.objects[ref]; obj != nil {
		obj.marked = true
	}
}

// UnmarkAll clears every mark bit in both generations. Idempotent.
func (g *GC) UnmarkAll() {
	for _, obj := range g.youngObjs {
		obj.marked = false
	}
	for obj := g.oldHead; obj != nil; obj = obj.next {
		obj.marked = false
	}
}

// Sweep always runs a minor collection and additionally a major one
// when old live bytes exceed the configured threshold.
func (g *GC) Sweep() {
	g.collectMinor()
	if g.oldUsed > g.cfg.OldThreshold {
		g.collectMajor()
	}
}

// CollectFull unconditionally runs a minor and a major collection and
// then empties the nursery; young survivors of the minor pass are
// discarded with it and their handles die.
func (g *GC) CollectFull() {
	g.collectMinor()
	g.collectMajor()
	for _, obj := range g.youngObjs {
		delete(g.objects, obj.ref)
	}
	g.youngObjs = g.youngObjs[:0]
	g.top = 0
}

func (g *GC) nextRef() Ref {
	g.lastRef++
	return g.lastRef
}

func alignUp(n int) int {
	return (n + allocAlign - 1) &^ (allocAlign - 1)
}
