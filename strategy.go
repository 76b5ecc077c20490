package inlinedhash

// insertOutcome is the three-way result of a single probe attempt: the
// key was already present, an empty slot was claimed for it, or the probe
// could not make progress and the table must grow.
type insertOutcome int

const (
	outcomeKeyFound insertOutcome = iota
	outcomeEmptySlotFound
	outcomeArrayFull
)

// probeStrategy is the pluggable probe engine a Table delegates occupancy
// decisions to. The two concrete strategies, sentinelStrategy and
// hopscotchStrategy, encode slot occupancy in mutually incompatible ways
// and must never be mixed within one Table.
type probeStrategy[K comparable, E any] interface {
	name() string

	// freshLike returns a new strategy instance carrying over this one's
	// static configuration (e.g. sentinel/deleted keys) but none of its
	// occupancy state, for use when a Table grows into fresh storage.
	freshLike() probeStrategy[K, E]

	// cloneState returns a deep copy of this strategy, including
	// occupancy state, for Table.Clone.
	cloneState() probeStrategy[K, E]

	// reset (re)initializes the strategy's own storage for an empty table
	// sized to t.elems.capacity. t.elems is already sized when reset is
	// called.
	reset(t *Table[K, E])

	// clear marks every slot not live, tearing down whatever payload the
	// occupied slots held.
	clear(t *Table[K, E])

	find(t *Table[K, E], key K, h uint64) (index int, found bool)
	insert(t *Table[K, E], key K, h uint64) (index int, outcome insertOutcome)

	// erase removes the live element at index, including tearing down its
	// payload.
	erase(t *Table[K, E], index int)

	isLive(t *Table[K, E], index int) bool
}
