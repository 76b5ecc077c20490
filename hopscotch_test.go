package inlinedhash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBucketMetadataLeafBits(t *testing.T) {
	var md bucketMetadata
	require.False(t, md.live())
	md.SetOrigin(5)
	require.True(t, md.live())
	require.Equal(t, 5, md.GetOrigin())
	md.ClearOrigin()
	require.False(t, md.live())

	md.SetLeaf(0)
	md.SetLeaf(10)
	md.SetLeaf(26)
	require.True(t, md.HasLeaf(0))
	require.True(t, md.HasLeaf(10))
	require.True(t, md.HasLeaf(26))
	require.False(t, md.HasLeaf(1))

	it := newLeafIterator(md)
	require.Equal(t, 0, it.next())
	require.Equal(t, 10, it.next())
	require.Equal(t, 26, it.next())
	require.Equal(t, -1, it.next())
}

func TestLeafIteratorEmpty(t *testing.T) {
	it := newLeafIterator(bucketMetadata(0))
	require.Equal(t, -1, it.next())
}

// TestHopscotchForcedCollisionChain hashes keys to just two origin
// buckets, forcing the two chains to interleave in slot order. That
// density drives scan distances past hopDistance well before either
// chain alone would, exercising FindCloserFreeBucket's relocation path
// and repeated table growth without ever exceeding the 27-key-per-origin
// ceiling a single hopscotch origin bucket can hold.
func TestHopscotchForcedCollisionChain(t *testing.T) {
	s := NewSet[int](0, WithHasher[int, int](func(k int) uint64 { return uint64(k % 2) }))
	for i := 0; i < 40; i++ {
		_, inserted := s.Insert(i)
		require.True(t, inserted, "insert of %d should succeed", i)
	}
	require.Equal(t, 40, s.Len())
	for i := 0; i < 40; i++ {
		require.True(t, s.Has(i), "missing key %d", i)
	}

	for i := 0; i < 40; i += 3 {
		require.Equal(t, 1, s.Erase(i))
	}
	for i := 0; i < 40; i++ {
		require.Equal(t, i%3 != 0, s.Has(i))
	}
	require.NotEmpty(t, s.DebugString())
}

func TestHopscotchReinsertAfterEraseReusesSpace(t *testing.T) {
	s := NewSet[int](0, WithHasher[int, int](func(int) uint64 { return 0 }))
	for i := 0; i < 8; i++ {
		s.Insert(i)
	}
	capBefore := s.Cap()
	for i := 0; i < 8; i++ {
		s.Erase(i)
	}
	for i := 100; i < 108; i++ {
		_, inserted := s.Insert(i)
		require.True(t, inserted)
	}
	require.Equal(t, capBefore, s.Cap(), "reusing freed slots should not force growth")
}
