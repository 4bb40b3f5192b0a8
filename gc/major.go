package gc

// allocOld inserts a freshly allocated node at the head of the old
// list. aligned is the already-rounded payload size. Never called from
// a collection trigger; the major pass is driven only by Sweep and
// CollectFull.
func (g *GC) allocOld(aligned int) Ref {
	obj := &object{
		ref:  g.nextRef(),
		size: aligned,
		age:  g.cfg.TenuringAge,
		gen:  genOld,
		data: make([]byte, aligned),
		next: g.oldHead,
	}
	g.oldHead = obj
	g.oldUsed += headerOverhead + aligned
	g.oldCount++
	g.objects[obj.ref] = obj
	return obj.ref
}

// collectMajor is the non-moving mark-sweep pass over the old list:
// unmarked nodes are unlinked and released, marked survivors stay in
// place with the mark bit cleared. No compaction; the old generation
// may fragment over time.
func (g *GC) collectMajor() {
	g.stats.majorCount++

	pp := &g.oldHead
	for *pp != nil {
		obj := *pp
		if !obj.marked {
			*pp = obj.next
			obj.next = nil
			g.oldUsed -= headerOverhead + obj.size
			g.oldCount--
			g.stats.oldReclaimed++
			delete(g.objects, obj.ref)
			continue
		}
		obj.marked = false
		pp = &obj.next
	}
}
