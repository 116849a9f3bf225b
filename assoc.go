package phamt

import "reflect"

// assocPath binds k to v given a path produced by find for key k,
// rebuilding only the ancestors along that path and sharing everything
// else. owning is the flag new nodes (twigs, join-disjoint ancestors) are
// built with; it must match the trie's existing flag, which the Map
// wrapper enforces.
func assocPath[K addr[K], V any](s shape, p *path[K, V], k K, v V, owning bool) *node[K, V] {
	L := p.steps[p.maxDepth]

	var u *node[K, V]
	var dnumel int64

	switch {
	case p.valueFound:
		// Value already present at L: replace it in place, or return m
		// unchanged if the new value is equal to the old one.
		old := L.node.value(L.cellIndex)
		if reflect.DeepEqual(old, v) {
			return p.steps[p.minDepth].node
		}
		u = L.node.copyWithChange(L.cellIndex, v)
		dnumel = 0

	case L.node.bitmap == 0:
		// Starting root is the empty sentinel: the result is a
		// freshly built one-entry twig, nothing to rebuild above it.
		return fromSingleKV(s, k, v, owning)

	case p.maxDepth != p.editDepth:
		// k's prefix diverges from L's own prefix: splice in a new
		// common ancestor covering both L and a fresh twig for k.
		twig := fromSingleKV(s, k, v, owning)
		u = joinDisjoint(s, L.node, twig)
		dnumel = 1

	case L.node.depth == s.twigDepth:
		// L is a twig with an empty slot for k: insert directly.
		u = L.node.copyWithInsert(L.bitIndex, L.cellIndex, v)
		u.numel++
		dnumel = 1

	default:
		// L is interior, k falls inside its prefix, and its slot is
		// empty: insert a fresh one-entry twig as a new child.
		twig := fromSingleKV(s, k, v, owning)
		u = L.node.copyWithInsert(L.bitIndex, L.cellIndex, twig)
		u.numel++
		dnumel = 1
	}

	for depth := L.parentDepth; depth != noParent; {
		a := p.steps[depth]
		u = a.node.copyWithChange(a.cellIndex, u)
		u.numel += uint64(dnumel)
		depth = a.parentDepth
	}
	return u
}
