package phamt

import "iter"

// Map16 is a persistent associative container keyed by uint16, with the
// key serving directly as its own hash. Its zero value is the owning
// empty trie; use EmptyRaw16 for a raw one.
type Map16[V any] struct {
	core mapCore[Key16, V]
}

// Empty16 returns the owning empty trie.
func Empty16[V any]() Map16[V] {
	return Map16[V]{}
}

// EmptyRaw16 returns the raw empty trie.
func EmptyRaw16[V any]() Map16[V] {
	return Map16[V]{core: newMapCore[Key16, V](shape16, false)}
}

// Size returns the number of entries, an O(1) field read.
func (m Map16[V]) Size() uint64 {
	return m.core.size()
}

// Lookup returns the value associated with k and whether it was present.
func (m Map16[V]) Lookup(k uint16) (V, bool) {
	return m.core.lookup(shape16, Key16(k))
}

// Assoc returns a new trie with k bound to v, sharing every unaffected
// subtree with m.
func (m Map16[V]) Assoc(k uint16, v V) Map16[V] {
	return Map16[V]{core: m.core.assoc(shape16, Key16(k), v)}
}

// Dissoc returns a new trie with k removed, or m unchanged if k was not
// present.
func (m Map16[V]) Dissoc(k uint16) Map16[V] {
	return Map16[V]{core: m.core.dissoc(shape16, Key16(k))}
}

// Apply performs an atomic read-modify-write on k: fn receives whether k
// was present and its current value (the zero value if not), and
// returns the value to store plus whether to keep it.
func (m Map16[V]) Apply(k uint16, fn func(found bool, v V) (newV V, keep bool)) Map16[V] {
	return Map16[V]{core: m.core.apply(shape16, Key16(k), fn)}
}

// All returns a range-over-func iterator over every (key, value) pair.
func (m Map16[V]) All() iter.Seq2[uint16, V] {
	return func(yield func(uint16, V) bool) {
		for k, v := range m.core.all(shape16) {
			if !yield(uint16(k), v) {
				return
			}
		}
	}
}

// CloneValues returns a trie with the same shape as m but with every
// value cell deep-copied via c.
func (m Map16[V]) CloneValues(c CloneFunc[V]) Map16[V] {
	return Map16[V]{core: m.core.cloneValues(shape16, c)}
}
