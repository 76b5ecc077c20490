package inlinedhash

import (
	"fmt"
	"testing"
)

// Benchmarks mirror _examples/cockroachdb-swiss's bench_test.go pattern of
// wrapping the same workload over several implementations (there:
// runtimeMap vs swissMap; here: the two probe strategies vs Go's builtin
// map) across a range of sizes.
func BenchmarkMapInsert(b *testing.B) {
	for _, n := range []int{16, 256, 4096} {
		b.Run(fmt.Sprintf("n=%d/hopscotch", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				m := NewMap[int, int](n)
				for k := 0; k < n; k++ {
					m.Insert(k, k)
				}
			}
		})
		b.Run(fmt.Sprintf("n=%d/sentinel", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				m := NewMap[int, int](n, WithSentinel[int, Pair[int, int]](-1))
				for k := 0; k < n; k++ {
					m.Insert(k, k)
				}
			}
		})
		b.Run(fmt.Sprintf("n=%d/builtin", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				mp := make(map[int]int, n)
				for k := 0; k < n; k++ {
					mp[k] = k
				}
			}
		})
	}
}

func BenchmarkMapGet(b *testing.B) {
	const n = 4096
	hop := NewMap[int, int](n)
	sentinel := NewMap[int, int](n, WithSentinel[int, Pair[int, int]](-1))
	builtin := make(map[int]int, n)
	for k := 0; k < n; k++ {
		hop.Insert(k, k)
		sentinel.Insert(k, k)
		builtin[k] = k
	}

	b.Run("hopscotch", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			hop.Get(i % n)
		}
	})
	b.Run("sentinel", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			sentinel.Get(i % n)
		}
	})
	b.Run("builtin", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = builtin[i%n]
		}
	})
}
