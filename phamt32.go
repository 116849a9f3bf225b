package phamt

import "iter"

// Map32 is a persistent associative container keyed by uint32, with the
// key serving directly as its own hash. Its zero value is the owning
// empty trie; use EmptyRaw32 for a raw one.
type Map32[V any] struct {
	core mapCore[Key32, V]
}

// Empty32 returns the owning empty trie.
func Empty32[V any]() Map32[V] {
	return Map32[V]{}
}

// EmptyRaw32 returns the raw empty trie.
func EmptyRaw32[V any]() Map32[V] {
	return Map32[V]{core: newMapCore[Key32, V](shape32, false)}
}

// Size returns the number of entries, an O(1) field read.
func (m Map32[V]) Size() uint64 {
	return m.core.size()
}

// Lookup returns the value associated with k and whether it was present.
func (m Map32[V]) Lookup(k uint32) (V, bool) {
	return m.core.lookup(shape32, Key32(k))
}

// Assoc returns a new trie with k bound to v, sharing every unaffected
// subtree with m.
func (m Map32[V]) Assoc(k uint32, v V) Map32[V] {
	return Map32[V]{core: m.core.assoc(shape32, Key32(k), v)}
}

// Dissoc returns a new trie with k removed, or m unchanged if k was not
// present.
func (m Map32[V]) Dissoc(k uint32) Map32[V] {
	return Map32[V]{core: m.core.dissoc(shape32, Key32(k))}
}

// Apply performs an atomic read-modify-write on k: fn receives whether k
// was present and its current value (the zero value if not), and
// returns the value to store plus whether to keep it.
func (m Map32[V]) Apply(k uint32, fn func(found bool, v V) (newV V, keep bool)) Map32[V] {
	return Map32[V]{core: m.core.apply(shape32, Key32(k), fn)}
}

// All returns a range-over-func iterator over every (key, value) pair.
func (m Map32[V]) All() iter.Seq2[uint32, V] {
	return func(yield func(uint32, V) bool) {
		for k, v := range m.core.all(shape32) {
			if !yield(uint32(k), v) {
				return
			}
		}
	}
}

// CloneValues returns a trie with the same shape as m but with every
// value cell deep-copied via c.
func (m Map32[V]) CloneValues(c CloneFunc[V]) Map32[V] {
	return Map32[V]{core: m.core.cloneValues(shape32, c)}
}
