package inlinedhash

// hopscotchStrategy implements the per-bucket leaf-bitmap probe engine,
// ported from
// _examples/original_source/inlined_hash_table.h's InsertInArray,
// FindCloserFreeBucket, and ExpandTable.
type hopscotchStrategy[K comparable, E any] struct {
	meta storage[bucketMetadata]
}

func (h *hopscotchStrategy[K, E]) name() string { return "hopscotch" }

func (h *hopscotchStrategy[K, E]) freshLike() probeStrategy[K, E] {
	return &hopscotchStrategy[K, E]{}
}

func (h *hopscotchStrategy[K, E]) cloneState() probeStrategy[K, E] {
	clone := &hopscotchStrategy[K, E]{meta: newStorage[bucketMetadata](h.meta.capacity)}
	for i := 0; i < h.meta.capacity; i++ {
		*clone.meta.at(i) = *h.meta.at(i)
	}
	return clone
}

func (h *hopscotchStrategy[K, E]) reset(t *Table[K, E]) {
	h.meta = newStorage[bucketMetadata](t.elems.capacity)
}

func (h *hopscotchStrategy[K, E]) clear(t *Table[K, E]) {
	for i := 0; i < t.elems.capacity; i++ {
		if h.meta.at(i).live() {
			zeroElem(t.elems.at(i))
		}
	}
	h.meta = newStorage[bucketMetadata](t.elems.capacity)
}

func (h *hopscotchStrategy[K, E]) isLive(t *Table[K, E], index int) bool {
	return h.meta.at(index).live()
}

func (h *hopscotchStrategy[K, E]) find(t *Table[K, E], key K, hh uint64) (int, bool) {
	capacity := t.elems.capacity
	if capacity == 0 {
		return 0, false
	}
	mask := capacity - 1
	origin := int(hh) & mask
	it := newLeafIterator(*h.meta.at(origin))
	for {
		delta := it.next()
		if delta < 0 {
			return 0, false
		}
		idx := (origin + delta) & mask
		if t.equal(t.keyOf(t.elems.at(idx)), key) {
			return idx, true
		}
	}
}

func (h *hopscotchStrategy[K, E]) insert(t *Table[K, E], key K, hh uint64) (int, insertOutcome) {
	capacity := t.elems.capacity
	if capacity == 0 {
		return 0, outcomeArrayFull
	}
	mask := capacity - 1
	origin := int(hh) & mask

	if idx, found := h.find(t, key, hh); found {
		return idx, outcomeKeyFound
	}

	limit := scanDistance
	if limit > capacity {
		limit = capacity
	}
	free := -1
	for i := 0; i < limit; i++ {
		idx := (origin + i) & mask
		if !h.meta.at(idx).live() {
			free = idx
			break
		}
	}
	if free < 0 {
		return 0, outcomeArrayFull
	}

	for wrapDist(mask, origin, free) >= hopDistance {
		next := h.findCloserFreeBucket(t, free)
		if next < 0 {
			return 0, outcomeArrayFull
		}
		free = next
	}

	delta := wrapDist(mask, origin, free)
	h.meta.at(origin).SetLeaf(delta)
	h.meta.at(free).SetOrigin(delta)
	return free, outcomeEmptySlotFound
}

// findCloserFreeBucket tries to drag the free slot at "free" closer to its
// eventual origin by relocating an element that is itself within hop
// distance of some bucket m between origin and free. The candidate leaf's
// distance must be strictly less than d, the distance from m to free;
// otherwise the swap would not reduce anything and the hop invariant
// breaks (see DESIGN.md). Matches
// FindCloserFreeBucket in
// _examples/original_source/inlined_hash_table.h, including its choice to
// look only at the first (smallest-distance) leaf of each candidate bucket
// rather than scanning all of them.
func (h *hopscotchStrategy[K, E]) findCloserFreeBucket(t *Table[K, E], free int) int {
	capacity := t.elems.capacity
	mask := capacity - 1
	for d := hopDistance - 1; d >= 1; d-- {
		m := (free - d) & mask
		md := h.meta.at(m)
		it := newLeafIterator(*md)
		delta := it.next()
		if delta < 0 || delta >= d {
			continue
		}
		n := (m + delta) & mask
		*t.elems.at(free) = *t.elems.at(n)
		zeroElem(t.elems.at(n))
		md.SetLeaf(d)
		md.ClearLeaf(delta)
		h.meta.at(free).SetOrigin(d)
		h.meta.at(n).ClearOrigin()
		return n
	}
	return -1
}

func (h *hopscotchStrategy[K, E]) erase(t *Table[K, E], index int) {
	capacity := t.elems.capacity
	mask := capacity - 1
	md := h.meta.at(index)
	delta := md.GetOrigin()
	origin := (index - delta) & mask
	h.meta.at(origin).ClearLeaf(delta)
	md.ClearOrigin()
	zeroElem(t.elems.at(index))
}

// wrapDist returns the forward distance from a to b modulo capacity
// (mask+1), using a bitwise AND rather than "%" so it stays correct
// regardless of operand sign; capacity is always a power of two here, so
// "& mask" is both correct and faster than a true modulo.
func wrapDist(mask, a, b int) int {
	return (b - a) & mask
}
