package inlinedhash

// Map is a hash map built on Table with Pair[K,V] as its element type. It
// plays the role _examples/original_source/inlined_hash_table.h's
// InlinedHashMap plays over the shared InlinedHashTable core, and the role
// _examples/homier-stablemap's StableMap plays over its shared table type.
type Map[K comparable, V any] struct {
	t *Table[K, Pair[K, V]]
}

// NewMap constructs a Map with room for at least bucketCountHint elements
// without growing (subject to rounding up to a power of two and at least
// the inline capacity).
func NewMap[K comparable, V any](bucketCountHint int, opts ...Option[K, Pair[K, V]]) *Map[K, V] {
	cfg := newConfig(opts)
	t := newTable[K, Pair[K, V]](bucketCountHint,
		func(e *Pair[K, V]) K { return e.Key },
		func(k K) Pair[K, V] { return Pair[K, V]{Key: k} },
		cfg)
	return &Map[K, V]{t: t}
}

func (m *Map[K, V]) Empty() bool { return m.t.Empty() }
func (m *Map[K, V]) Len() int    { return m.t.Len() }
func (m *Map[K, V]) Cap() int    { return m.t.Cap() }

// Find returns an iterator to key's entry, or an end iterator if absent.
func (m *Map[K, V]) Find(key K) Iterator[K, Pair[K, V]] {
	return m.t.Find(key)
}

// Get is a convenience wrapper around Find in the style of a builtin Go
// map lookup, mirroring _examples/cockroachdb-swiss's Map.Get.
func (m *Map[K, V]) Get(key K) (V, bool) {
	it := m.t.Find(key)
	if it.Done() {
		var zero V
		return zero, false
	}
	return it.Value().Value, true
}

// Insert adds key/value if key is absent. It does not overwrite an
// existing entry; use At for that.
func (m *Map[K, V]) Insert(key K, value V) (Iterator[K, Pair[K, V]], bool) {
	return m.t.Insert(Pair[K, V]{Key: key, Value: value})
}

// At returns a mutable pointer to key's value, inserting a
// default-constructed value first if key is absent, mirroring the C++
// origin's operator[].
func (m *Map[K, V]) At(key K) *V {
	it, _ := m.t.Insert(Pair[K, V]{Key: key})
	return &it.Value().Value
}

// Erase removes key's entry if present, returning 1, or 0 if absent.
func (m *Map[K, V]) Erase(key K) int {
	return m.t.EraseKey(key)
}

// EraseAt removes the entry it refers to and returns an iterator to the
// next live entry.
func (m *Map[K, V]) EraseAt(it Iterator[K, Pair[K, V]]) Iterator[K, Pair[K, V]] {
	return m.t.EraseAt(it)
}

func (m *Map[K, V]) Clear() { m.t.Clear() }

func (m *Map[K, V]) Begin() Iterator[K, Pair[K, V]] { return m.t.Begin() }
func (m *Map[K, V]) End() Iterator[K, Pair[K, V]]   { return m.t.End() }

// All calls yield once per entry, stopping early if yield returns false.
func (m *Map[K, V]) All(yield func(key K, value V) bool) {
	m.t.All(func(k K, e *Pair[K, V]) bool { return yield(k, e.Value) })
}

// Clone returns a deep, independent copy of m.
func (m *Map[K, V]) Clone() *Map[K, V] { return &Map[K, V]{t: m.t.Clone()} }

func (m *Map[K, V]) DebugString() string { return m.t.DebugString() }
