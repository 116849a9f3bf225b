package phamt

import (
	"iter"
	"reflect"
	"sync"
)

// mapCore is the generic implementation backing Map16/32/64/128; each
// width wraps it with its own key type and fixed shape. A nil root
// stands for the owning empty sentinel so that a zero-valued Map*[V] is
// already a usable empty trie, with no constructor call needed.
type mapCore[K addr[K], V any] struct {
	root *node[K, V]
}

func newMapCore[K addr[K], V any](s shape, owning bool) mapCore[K, V] {
	return mapCore[K, V]{root: emptySingleton[K, V](s, owning)}
}

func (m mapCore[K, V]) rootOrEmpty(s shape) *node[K, V] {
	if m.root == nil {
		return emptySingleton[K, V](s, true)
	}
	return m.root
}

func (m mapCore[K, V]) size() uint64 {
	if m.root == nil {
		return 0
	}
	return m.root.numel
}

func (m mapCore[K, V]) lookup(s shape, k K) (V, bool) {
	return lookup(s, m.rootOrEmpty(s), k)
}

func (m mapCore[K, V]) assoc(s shape, k K, v V) mapCore[K, V] {
	root := m.rootOrEmpty(s)
	p, _, _ := find(s, root, k)
	return mapCore[K, V]{root: assocPath(s, &p, k, v, root.owning)}
}

func (m mapCore[K, V]) dissoc(s shape, k K) mapCore[K, V] {
	root := m.rootOrEmpty(s)
	p, _, found := find(s, root, k)
	if !found {
		return m
	}
	newRoot := dissocPath(s, &p)
	if newRoot.numel == 0 {
		newRoot = emptySingleton[K, V](s, root.owning)
	}
	return mapCore[K, V]{root: newRoot}
}

func (m mapCore[K, V]) apply(s shape, k K, fn func(found bool, v V) (V, bool)) mapCore[K, V] {
	root := m.rootOrEmpty(s)
	wrapped := func(found bool, v *V, _ any) bool {
		newV, keep := fn(found, *v)
		*v = newV
		return keep
	}
	newRoot := applyNode(s, root, k, wrapped, nil, root.owning)
	if newRoot.numel == 0 {
		newRoot = emptySingleton[K, V](s, root.owning)
	}
	return mapCore[K, V]{root: newRoot}
}

func (m mapCore[K, V]) all(s shape) iter.Seq2[K, V] {
	return allSeq(s, m.rootOrEmpty(s))
}

func (m mapCore[K, V]) cloneValues(s shape, c CloneFunc[V]) mapCore[K, V] {
	root := m.rootOrEmpty(s)
	if root.numel == 0 {
		return mapCore[K, V]{root: emptySingleton[K, V](s, root.owning)}
	}
	return mapCore[K, V]{root: cloneNode(s, root, c)}
}

// emptyKey identifies one (K, V, owning) instantiation for the empty
// sentinel cache below. K and V are always concrete at any one call site
// (generics are monomorphized), so this only needs to disambiguate
// distinct instantiations sharing the one package-level cache.
type emptyKey struct {
	k, v   reflect.Type
	owning bool
}

var emptyCache sync.Map // emptyKey -> any (*node[K, V])

// emptySingleton returns the process-wide empty sentinel for (K, V,
// owning), building it once per instantiation. sync.Map plays the role a
// package-level sync.OnceValue per type would if Go let a package
// variable itself be generic.
func emptySingleton[K addr[K], V any](s shape, owning bool) *node[K, V] {
	key := emptyKey{
		k:      reflect.TypeOf((*K)(nil)).Elem(),
		v:      reflect.TypeOf((*V)(nil)).Elem(),
		owning: owning,
	}
	if cached, ok := emptyCache.Load(key); ok {
		return cached.(*node[K, V])
	}
	fresh := newEmpty[K, V](s, owning)
	actual, _ := emptyCache.LoadOrStore(key, fresh)
	return actual.(*node[K, V])
}
