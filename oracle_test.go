package inlinedhash

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/google/btree"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// TestSetRandomizedAgainstOracle drives a long randomized sequence of
// Insert/Erase calls against both a Set and a github.com/google/btree
// BTreeG[int] used purely as an independent, trusted ordered-set oracle,
// then checks their final membership agrees exactly.
func TestSetRandomizedAgainstOracle(t *testing.T) {
	for _, strategy := range []struct {
		name string
		opts []Option[int, int]
	}{
		{"hopscotch", nil},
		{"sentinel", []Option[int, int]{WithSentinel[int, int](-1), WithDeletedKey[int, int](-2)}},
	} {
		t.Run(strategy.name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(42))
			oracle := btree.NewG(8, func(a, b int) bool { return a < b })
			s := NewSet[int](0, strategy.opts...)

			for i := 0; i < 5000; i++ {
				key := rng.Intn(500)
				if rng.Intn(3) == 0 {
					oracle.Delete(key)
					s.Erase(key)
				} else {
					oracle.ReplaceOrInsert(key)
					s.Insert(key)
				}
			}

			var want []int
			oracle.Ascend(func(item int) bool {
				want = append(want, item)
				return true
			})

			var got []int
			s.All(func(k int) bool {
				got = append(got, k)
				return true
			})
			sort.Ints(got)

			require.Equal(t, oracle.Len(), s.Len())
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("set diverged from oracle (-want +got):\n%s", diff)
			}
		})
	}
}

// TestMapRandomizedAgainstOracle is the Map analog, checking both
// membership and value fidelity.
func TestMapRandomizedAgainstOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	type entry struct {
		key, value int
	}
	oracleKeys := btree.NewG(8, func(a, b int) bool { return a < b })
	oracleValues := map[int]int{}
	m := NewMap[int, int](0)

	for i := 0; i < 5000; i++ {
		key := rng.Intn(500)
		switch rng.Intn(4) {
		case 0:
			oracleKeys.Delete(key)
			delete(oracleValues, key)
			m.Erase(key)
		default:
			value := rng.Intn(1 << 20)
			if _, exists := oracleValues[key]; !exists {
				oracleKeys.ReplaceOrInsert(key)
				oracleValues[key] = value
			}
			m.Insert(key, value)
		}
	}

	var want []entry
	oracleKeys.Ascend(func(key int) bool {
		want = append(want, entry{key, oracleValues[key]})
		return true
	})

	var got []entry
	m.All(func(k, v int) bool {
		got = append(got, entry{k, v})
		return true
	})
	sort.Slice(got, func(i, j int) bool { return got[i].key < got[j].key })

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("map diverged from oracle (-want +got):\n%s", diff)
	}
}
