package inlinedhash

import (
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

// Hasher computes a 64-bit digest for a key. Table never assumes anything
// about the distribution of the result beyond "uniform enough to keep probe
// chains short". Under the sentinel strategy a bad Hasher only degrades
// performance. Under the hopscotch strategy every key must sit within
// hopDistance slots of its origin, so a Hasher that sends too many keys to
// nearby origins makes Insert panic once growing the table stops helping.
type Hasher[K comparable] func(key K) uint64

// Equaler reports whether two keys are interchangeable. It must agree with
// the Hasher in use: equal keys must hash identically.
type Equaler[K comparable] func(a, b K) bool

// defaultHasher builds a process-local, randomly seeded hasher over any
// comparable key using hash/maphash.Comparable, mirroring the seeded
// default _examples/homier-stablemap installs via MakeDefaultHashFunc.
func defaultHasher[K comparable]() Hasher[K] {
	seed := maphash.MakeSeed()
	return func(k K) uint64 {
		return maphash.Comparable(seed, k)
	}
}

// XXHashString is a ready-made Hasher for string keys backed by
// github.com/cespare/xxhash/v2. It trades the default hasher's per-process
// random seed for speed and determinism across runs.
func XXHashString() Hasher[string] {
	return func(k string) uint64 {
		return xxhash.Sum64String(k)
	}
}

// XXHashUint64 hashes the eight little-endian bytes of a pre-computed
// 64-bit key with xxhash, for callers who already reduced their key to a uint64 (hashes,
// IDs) and want better bit mixing than the identity function.
func XXHashUint64() Hasher[uint64] {
	return func(k uint64) uint64 {
		var buf [8]byte
		for i := 0; i < 8; i++ {
			buf[i] = byte(k >> (8 * i))
		}
		return xxhash.Sum64(buf[:])
	}
}
