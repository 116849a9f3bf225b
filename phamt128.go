package phamt

import "iter"

// Map128 is a persistent associative container keyed by Key128, with the
// key serving directly as its own hash. Go has no native 128-bit
// integer, so the key is the two-word Key128 struct instead of a bare
// integer. Its zero value is the owning empty trie; use EmptyRaw128 for
// a raw one.
type Map128[V any] struct {
	core mapCore[Key128, V]
}

// Empty128 returns the owning empty trie.
func Empty128[V any]() Map128[V] {
	return Map128[V]{}
}

// EmptyRaw128 returns the raw empty trie.
func EmptyRaw128[V any]() Map128[V] {
	return Map128[V]{core: newMapCore[Key128, V](shape128, false)}
}

// Size returns the number of entries, an O(1) field read.
func (m Map128[V]) Size() uint64 {
	return m.core.size()
}

// Lookup returns the value associated with k and whether it was present.
func (m Map128[V]) Lookup(k Key128) (V, bool) {
	return m.core.lookup(shape128, k)
}

// Assoc returns a new trie with k bound to v, sharing every unaffected
// subtree with m.
func (m Map128[V]) Assoc(k Key128, v V) Map128[V] {
	return Map128[V]{core: m.core.assoc(shape128, k, v)}
}

// Dissoc returns a new trie with k removed, or m unchanged if k was not
// present.
func (m Map128[V]) Dissoc(k Key128) Map128[V] {
	return Map128[V]{core: m.core.dissoc(shape128, k)}
}

// Apply performs an atomic read-modify-write on k: fn receives whether k
// was present and its current value (the zero value if not), and
// returns the value to store plus whether to keep it.
func (m Map128[V]) Apply(k Key128, fn func(found bool, v V) (newV V, keep bool)) Map128[V] {
	return Map128[V]{core: m.core.apply(shape128, k, fn)}
}

// All returns a range-over-func iterator over every (key, value) pair.
func (m Map128[V]) All() iter.Seq2[Key128, V] {
	return m.core.all(shape128)
}

// CloneValues returns a trie with the same shape as m but with every
// value cell deep-copied via c.
func (m Map128[V]) CloneValues(c CloneFunc[V]) Map128[V] {
	return Map128[V]{core: m.core.cloneValues(shape128, c)}
}
