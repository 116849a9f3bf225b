package phamt

import "iter"

// Map64 is a persistent associative container keyed by uint64, with the
// key serving directly as its own hash. Its zero value is the owning
// empty trie; use EmptyRaw64 for a raw one.
type Map64[V any] struct {
	core mapCore[Key64, V]
}

// Empty64 returns the owning empty trie. Equivalent to the Map64[V]
// zero value; provided for symmetry with EmptyRaw64 and parity with the
// other widths.
func Empty64[V any]() Map64[V] {
	return Map64[V]{}
}

// EmptyRaw64 returns the raw empty trie.
func EmptyRaw64[V any]() Map64[V] {
	return Map64[V]{core: newMapCore[Key64, V](shape64, false)}
}

// Size returns the number of entries, an O(1) field read.
func (m Map64[V]) Size() uint64 {
	return m.core.size()
}

// Lookup returns the value associated with k and whether it was present.
func (m Map64[V]) Lookup(k uint64) (V, bool) {
	return m.core.lookup(shape64, Key64(k))
}

// Assoc returns a new trie with k bound to v, sharing every unaffected
// subtree with m.
func (m Map64[V]) Assoc(k uint64, v V) Map64[V] {
	return Map64[V]{core: m.core.assoc(shape64, Key64(k), v)}
}

// Dissoc returns a new trie with k removed, or m unchanged if k was not
// present.
func (m Map64[V]) Dissoc(k uint64) Map64[V] {
	return Map64[V]{core: m.core.dissoc(shape64, Key64(k))}
}

// Apply performs an atomic read-modify-write on k: fn receives whether k
// was present and its current value (the zero value if not), and
// returns the value to store plus whether to keep it.
func (m Map64[V]) Apply(k uint64, fn func(found bool, v V) (newV V, keep bool)) Map64[V] {
	return Map64[V]{core: m.core.apply(shape64, Key64(k), fn)}
}

// All returns a range-over-func iterator over every (key, value) pair,
// in bit-index tree order rather than numeric key order. It is
// stateless aside from the cursor it builds internally and safe to
// restart any number of times.
func (m Map64[V]) All() iter.Seq2[uint64, V] {
	return func(yield func(uint64, V) bool) {
		for k, v := range m.core.all(shape64) {
			if !yield(uint64(k), v) {
				return
			}
		}
	}
}

// CloneValues returns a trie with the same shape as m but with every
// value cell deep-copied via c (or via V's own Clone method if c is nil
// and V implements Cloner[V]).
func (m Map64[V]) CloneValues(c CloneFunc[V]) Map64[V] {
	return Map64[V]{core: m.core.cloneValues(shape64, c)}
}
