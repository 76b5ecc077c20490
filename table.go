package inlinedhash

import (
	"fmt"
	"math"
	"strings"

	"github.com/sanity-io/litter"
)

// Table is the shared engine behind Map and Set: it owns element storage
// and delegates occupancy decisions to a probeStrategy. Callers normally
// reach it through Map or Set rather than directly, mirroring how
// _examples/cockroachdb-swiss's Map wraps its internal bucket/directory
// machinery.
type Table[K comparable, E any] struct {
	hash     Hasher[K]
	equal    Equaler[K]
	keyOf    func(*E) K
	makeElem func(K) E

	maxLoadFactor float64

	elems storage[E]
	probe probeStrategy[K, E]
	size  int
}

func newTable[K comparable, E any](bucketCountHint int, keyOf func(*E) K, makeElem func(K) E, cfg config[K, E]) *Table[K, E] {
	t := &Table[K, E]{
		hash:          cfg.hash,
		equal:         cfg.equal,
		keyOf:         keyOf,
		makeElem:      makeElem,
		maxLoadFactor: cfg.maxLoadFactor,
	}
	if cfg.sentinel {
		if !cfg.hasEmptyKey {
			panic("inlinedhash: the sentinel strategy requires WithSentinel(emptyKey)")
		}
		t.probe = &sentinelStrategy[K, E]{
			emptyKey:      cfg.emptyKey,
			deletedKey:    cfg.deletedKey,
			hasDeletedKey: cfg.hasDeletedKey,
		}
	} else {
		t.probe = &hopscotchStrategy[K, E]{}
	}
	hint := int(math.Ceil(float64(bucketCountHint) / cfg.maxLoadFactor))
	t.elems = newStorage[E](computeCapacity(hint))
	t.probe.reset(t)
	return t
}

func (t *Table[K, E]) Empty() bool { return t.size == 0 }
func (t *Table[K, E]) Len() int    { return t.size }
func (t *Table[K, E]) Cap() int    { return t.elems.capacity }

// Find locates key and returns an iterator to it, or an end iterator if
// key is absent.
func (t *Table[K, E]) Find(key K) Iterator[K, E] {
	h := t.hash(key)
	idx, found := t.probe.find(t, key, h)
	if !found {
		return t.End()
	}
	return Iterator[K, E]{t: t, index: idx}
}

// Insert adds elem if its key is absent, growing the table as needed.
// If the key is already present, elem is discarded and Insert returns an
// iterator to the existing element with ok=false, matching
// _examples/original_source/inlined_hash_table.h's non-overwriting insert
// semantics.
func (t *Table[K, E]) Insert(elem E) (it Iterator[K, E], ok bool) {
	key := t.keyOf(&elem)
	h := t.hash(key)
	for attempt := 0; attempt < 4; attempt++ {
		idx, outcome := t.probe.insert(t, key, h)
		switch outcome {
		case outcomeKeyFound:
			return Iterator[K, E]{t: t, index: idx}, false
		case outcomeEmptySlotFound:
			*t.elems.at(idx) = elem
			t.size++
			trace("insert: key=%v placed at slot %d (size=%d cap=%d)", key, idx, t.size, t.elems.capacity)
			t.checkInvariants()
			return Iterator[K, E]{t: t, index: idx}, true
		case outcomeArrayFull:
			trace("insert: key=%v hit ArrayFull at capacity %d, expanding", key, t.elems.capacity)
			t.expand(1)
		}
	}
	panic("inlinedhash: insert made no progress after bounded resize retries")
}

// EraseKey removes key if present and returns 1, or 0 if it was absent.
func (t *Table[K, E]) EraseKey(key K) int {
	h := t.hash(key)
	idx, found := t.probe.find(t, key, h)
	if !found {
		return 0
	}
	t.eraseAt(idx)
	return 1
}

// EraseAt removes the element it refers to and returns an iterator to the
// next live element.
func (t *Table[K, E]) EraseAt(it Iterator[K, E]) Iterator[K, E] {
	if it.t != t {
		panic("inlinedhash: iterator does not belong to this table")
	}
	idx := it.index
	t.eraseAt(idx)
	return Iterator[K, E]{t: t, index: t.scanForward(idx + 1)}
}

func (t *Table[K, E]) eraseAt(idx int) {
	t.probe.erase(t, idx)
	t.size--
	t.checkInvariants()
}

// Clear removes every element without shrinking capacity.
func (t *Table[K, E]) Clear() {
	t.probe.clear(t)
	t.size = 0
}

// All calls yield once per live element, in slot order, stopping early if
// yield returns false. Mirrors _examples/cockroachdb-swiss's Map.All.
func (t *Table[K, E]) All(yield func(K, *E) bool) {
	for i := 0; i < t.elems.capacity; i++ {
		if t.probe.isLive(t, i) {
			e := t.elems.at(i)
			if !yield(t.keyOf(e), e) {
				return
			}
		}
	}
}

func (t *Table[K, E]) Begin() Iterator[K, E] {
	return Iterator[K, E]{t: t, index: t.scanForward(0)}
}

func (t *Table[K, E]) End() Iterator[K, E] {
	return Iterator[K, E]{t: t, index: iterEnd}
}

func (t *Table[K, E]) scanForward(from int) int {
	for i := from; i < t.elems.capacity; i++ {
		if t.probe.isLive(t, i) {
			return i
		}
	}
	return iterEnd
}

// Clone returns a deep copy: an independent Table with the same elements,
// strategy configuration, and occupancy state. Go's pointer-based Map/Set
// have no implicit copy semantics the way the C++ origin's copy
// constructor does, so Clone is the explicit stand-in (see DESIGN.md).
func (t *Table[K, E]) Clone() *Table[K, E] {
	clone := &Table[K, E]{
		hash:          t.hash,
		equal:         t.equal,
		keyOf:         t.keyOf,
		makeElem:      t.makeElem,
		maxLoadFactor: t.maxLoadFactor,
		size:          t.size,
	}
	clone.elems = newStorage[E](t.elems.capacity)
	for i := 0; i < t.elems.capacity; i++ {
		*clone.elems.at(i) = *t.elems.at(i)
	}
	clone.probe = t.probe.cloneState()
	return clone
}

// expand grows the table to hold at least delta more elements than its
// current capacity and re-inserts every live element into fresh storage.
// Grounded on _examples/cockroachdb-swiss's bucket.resize and
// _examples/original_source/inlined_hash_table.h's ExpandTable.
func (t *Table[K, E]) expand(delta int) {
	oldElems := t.elems
	oldProbe := t.probe
	old := &Table[K, E]{
		hash: t.hash, equal: t.equal, keyOf: t.keyOf, makeElem: t.makeElem,
		maxLoadFactor: t.maxLoadFactor, elems: oldElems, probe: oldProbe, size: t.size,
	}

	newCapacity := computeCapacity(oldElems.capacity + delta)
	trace("expand: capacity %d -> %d (size=%d)", oldElems.capacity, newCapacity, t.size)
	t.elems = newStorage[E](newCapacity)
	t.probe = oldProbe.freshLike()
	t.probe.reset(t)
	t.size = 0

	for i := 0; i < oldElems.capacity; i++ {
		if !oldProbe.isLive(old, i) {
			continue
		}
		elem := *oldElems.at(i)
		key := t.keyOf(&elem)
		h := t.hash(key)
		idx, outcome := t.probe.insert(t, key, h)
		if outcome != outcomeEmptySlotFound {
			panic(fmt.Sprintf("inlinedhash: resize invariant violated re-inserting key %v: %v", key, outcome))
		}
		*t.elems.at(idx) = elem
		t.size++
	}
	t.checkInvariants()
}

func (t *Table[K, E]) checkInvariants() {
	if !invariants {
		return
	}
	live := 0
	for i := 0; i < t.elems.capacity; i++ {
		if !t.probe.isLive(t, i) {
			continue
		}
		live++
		key := t.keyOf(t.elems.at(i))
		if idx, found := t.probe.find(t, key, t.hash(key)); !found || idx != i {
			panic(fmt.Sprintf("inlinedhash: invariant violated: live slot %d (key %v) not found by find (found=%v idx=%d)\n%s", i, key, found, idx, t.DebugString()))
		}
	}
	if live != t.size {
		panic(fmt.Sprintf("inlinedhash: invariant violated: counted %d live slots, size is %d\n%s", live, t.size, t.DebugString()))
	}
}

// DebugString renders the table's slot-by-slot occupancy, for use in test
// failures and the traceEnabled logging path. Grounded on
// _examples/cockroachdb-swiss's bucket.debugString, enriched with
// litter.Sdump for structural element dumps.
func (t *Table[K, E]) DebugString() string {
	var b strings.Builder
	fmt.Fprintf(&b, "capacity=%d size=%d strategy=%s\n", t.elems.capacity, t.size, t.probe.name())
	for i := 0; i < t.elems.capacity; i++ {
		if t.probe.isLive(t, i) {
			fmt.Fprintf(&b, "  [%d] live %s\n", i, litter.Sdump(*t.elems.at(i)))
		} else {
			fmt.Fprintf(&b, "  [%d] empty\n", i)
		}
	}
	return b.String()
}
