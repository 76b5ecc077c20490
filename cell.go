package inlinedhash

// zeroElem drops any references an element holds. The hopscotch strategy
// tracks occupancy entirely in its metadata array, separately from the
// element storage, so erasing or clearing a slot must explicitly overwrite
// it; otherwise a freed slot would keep pinning whatever it used to
// reference. This is the Go stand-in for the manual-constructor "Delete"
// half of the lifetime contract
// _examples/original_source/inlined_hash_table.h's
// InlinedHashTableManualConstructor enforces explicitly; Go's zero value
// plus the garbage collector cover the rest.
func zeroElem[E any](e *E) {
	var zero E
	*e = zero
}
