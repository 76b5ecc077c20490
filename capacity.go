package inlinedhash

import "math/bits"

// computeCapacity returns the smallest power of two at least as large as
// both desired and inlineCapacity. Matches
// _examples/original_source/inlined_hash_table.h's ComputeCapacity
// exactly: desired is clamped up to the inline capacity and then rounded
// to a power of two, with no division by MaxLoadFactor (see DESIGN.md).
func computeCapacity(desired int) int {
	if desired < inlineCapacity {
		desired = inlineCapacity
	}
	return nextPowerOfTwo(desired)
}

func nextPowerOfTwo(v int) int {
	if v <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(v-1))
}
