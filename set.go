package inlinedhash

// Set is a hash set built on Table with the key itself as the element
// type, sharing the same engine Map uses. It plays the role
// _examples/original_source/inlined_hash_table.h's InlinedHashSet plays
// over the shared InlinedHashTable core.
type Set[K comparable] struct {
	t *Table[K, K]
}

// NewSet constructs a Set with room for at least bucketCountHint elements
// without growing.
func NewSet[K comparable](bucketCountHint int, opts ...Option[K, K]) *Set[K] {
	cfg := newConfig(opts)
	t := newTable[K, K](bucketCountHint,
		func(e *K) K { return *e },
		func(k K) K { return k },
		cfg)
	return &Set[K]{t: t}
}

func (s *Set[K]) Empty() bool { return s.t.Empty() }
func (s *Set[K]) Len() int    { return s.t.Len() }
func (s *Set[K]) Cap() int    { return s.t.Cap() }

// Has reports whether key is a member of the set.
func (s *Set[K]) Has(key K) bool {
	return !s.t.Find(key).Done()
}

func (s *Set[K]) Find(key K) Iterator[K, K] {
	return s.t.Find(key)
}

// Insert adds key if absent, reporting whether it was newly added.
func (s *Set[K]) Insert(key K) (Iterator[K, K], bool) {
	return s.t.Insert(key)
}

// Erase removes key if present, returning 1, or 0 if absent.
func (s *Set[K]) Erase(key K) int {
	return s.t.EraseKey(key)
}

func (s *Set[K]) EraseAt(it Iterator[K, K]) Iterator[K, K] {
	return s.t.EraseAt(it)
}

func (s *Set[K]) Clear() { s.t.Clear() }

func (s *Set[K]) Begin() Iterator[K, K] { return s.t.Begin() }
func (s *Set[K]) End() Iterator[K, K]   { return s.t.End() }

// All calls yield once per member, stopping early if yield returns false.
func (s *Set[K]) All(yield func(key K) bool) {
	s.t.All(func(k K, _ *K) bool { return yield(k) })
}

// Clone returns a deep, independent copy of s.
func (s *Set[K]) Clone() *Set[K] { return &Set[K]{t: s.t.Clone()} }

func (s *Set[K]) DebugString() string { return s.t.DebugString() }
