package inlinedhash

// config holds everything an Option can set before a Table is built. It is
// parameterized over the same (K, E) pair as the Table it configures so
// that sentinel/deleted keys and hash/equal functions are type-checked
// against the right key type at the call site.
type config[K comparable, E any] struct {
	hash          Hasher[K]
	equal         Equaler[K]
	maxLoadFactor float64

	sentinel      bool
	emptyKey      K
	hasEmptyKey   bool
	deletedKey    K
	hasDeletedKey bool
}

// Option configures a Map or Set at construction time, following the
// functional-options pattern _examples/cockroachdb-swiss's option[K,V] and
// _examples/homier-stablemap's Option[K,V] both use. The default
// configuration (no options at all) selects the hopscotch strategy, which
// needs no sentinel key, matching
// _examples/original_source/inlined_hash_table.h's InlinedHashMap/
// InlinedHashSet defaults.
type Option[K comparable, E any] func(*config[K, E])

// WithHasher overrides the default hash/maphash-based hasher.
func WithHasher[K comparable, E any](h Hasher[K]) Option[K, E] {
	return func(c *config[K, E]) { c.hash = h }
}

// WithEqual overrides the default, Go built-in "==" equality.
func WithEqual[K comparable, E any](eq Equaler[K]) Option[K, E] {
	return func(c *config[K, E]) { c.equal = eq }
}

// WithMaxLoadFactor overrides the default 0.75 maximum load factor. Both
// strategies divide the constructor's bucket-count hint by it to size the
// initial table. Under the sentinel strategy it also directly bounds size
// via numFree; under hopscotch it plays no part in growth, which only hop
// or scan failure triggers there.
func WithMaxLoadFactor[K comparable, E any](factor float64) Option[K, E] {
	return func(c *config[K, E]) { c.maxLoadFactor = factor }
}

// WithSentinel selects the sentinel (linear/quadratic) probe strategy and
// supplies its required EmptyKey. EmptyKey must never equal a key that
// will actually be inserted.
func WithSentinel[K comparable, E any](emptyKey K) Option[K, E] {
	return func(c *config[K, E]) {
		c.sentinel = true
		c.emptyKey = emptyKey
		c.hasEmptyKey = true
	}
}

// WithDeletedKey supplies the sentinel strategy's tombstone key. It is
// only required if Erase is used, and is ignored entirely under the
// hopscotch strategy.
func WithDeletedKey[K comparable, E any](deletedKey K) Option[K, E] {
	return func(c *config[K, E]) {
		c.deletedKey = deletedKey
		c.hasDeletedKey = true
	}
}

func newConfig[K comparable, E any](opts []Option[K, E]) config[K, E] {
	c := config[K, E]{
		hash:          defaultHasher[K](),
		equal:         func(a, b K) bool { return a == b },
		maxLoadFactor: 0.75,
	}
	for _, opt := range opts {
		opt(&c)
	}
	if c.maxLoadFactor <= 0 || c.maxLoadFactor > 1 {
		panic("inlinedhash: max load factor must be in (0, 1]")
	}
	return c
}
