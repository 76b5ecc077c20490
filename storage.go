package inlinedhash

// inlineCapacity is the number of slots embedded directly in storage,
// standing in for the C++ origin's NumInlinedBuckets template parameter;
// Go has no const-generic array lengths, so this is a fixed package
// constant instead (see DESIGN.md). It mirrors the groupSize=8 convention
// _examples/cockroachdb-swiss, _examples/homier-stablemap, and
// _examples/thepudds-swisstable all converge on.
const inlineCapacity = 8

// storage holds a table's element or metadata array: the first
// inlineCapacity entries live in an embedded Go array, and anything beyond
// that spills into a heap-allocated overflow slice. It is reused for two
// different element types: E (table slots) and bucketMetadata (hopscotch
// strategy metadata), generalized to whatever needs a capacity-indexed
// array with an inline/overflow split.
type storage[T any] struct {
	inline   [inlineCapacity]T
	overflow []T
	capacity int
}

func newStorage[T any](capacity int) storage[T] {
	var s storage[T]
	s.capacity = capacity
	if capacity > inlineCapacity {
		s.overflow = make([]T, capacity-inlineCapacity)
	}
	return s
}

func (s *storage[T]) at(i int) *T {
	if i < inlineCapacity {
		return &s.inline[i]
	}
	return &s.overflow[i-inlineCapacity]
}
