package gc

// collectMinor is the copying pass over the nursery: a single linear
// walk in address order. Marked objects age; those at the tenuring
// threshold take a promoting copy into their own old-generation node,
// the rest take a compacting copy into the scratch buffer. Unmarked
// objects are dropped and their handles die. Afterward the compacted
// survivors become the nursery contents and the cursor rewinds to the
// survivor byte count.
//
// Mark bits of young survivors are deliberately left set; only
// UnmarkAll clears them. Cost is proportional to live nursery bytes.
func (g *GC) collectMinor() {
	g.stats.minorCount++

	survivors := g.youngObjs[:0]
	top := 0
	for _, obj := range g.youngObjs {
		if !obj.marked {
			g.stats.youngReclaimed++
			delete(g.objects, obj.ref)
			continue
		}
		payload := g.young[obj.offset : obj.offset+obj.size]
		obj.age++
		if obj.age >= g.cfg.TenuringAge {
			data := make([]byte, obj.size)
			copy(data, payload)
			obj.data = data
			obj.gen = genOld
			obj.offset = 0
			obj.next = g.oldHead
			g.oldHead = obj
			g.oldUsed += headerOverhead + obj.size
			g.oldCount++
			g.stats.promoted++
			continue
		}
		// The scratch buffer never overlaps the unread nursery tail.
		copy(g.scratch[top:], payload)
		obj.offset = top
		top += obj.size
		survivors = append(survivors, obj)
	}

	copy(g.young, g.scratch[:top])
	g.top = top
	g.youngObjs = survivors
}
