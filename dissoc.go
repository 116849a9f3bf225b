package phamt

// dissocPath removes k given a path produced by find for key k, then
// simplifies the trie structure (collapsing singleton twigs and bubbling
// up lone siblings) so the result still satisfies the shape invariants.
// It assumes the path was built against the same root it simplifies.
func dissocPath[K addr[K], V any](s shape, p *path[K, V]) *node[K, V] {
	if !p.valueFound {
		return p.steps[p.minDepth].node
	}

	L := p.steps[p.maxDepth]

	var u *node[K, V]
	var walkFrom uint8

	switch {
	case L.node.numel == 1 && p.maxDepth == p.minDepth:
		// Twig with one element, and it is also the starting root.
		return newEmpty[K, V](s, L.node.owning)

	case L.node.numel == 1:
		// Twig with one element: ascend to the parent and simplify.
		parent := p.steps[L.parentDepth]
		if parent.node.cellCount() == 2 {
			siblingIndex := 1 - parent.cellIndex
			sibling := parent.node.child(siblingIndex)
			if L.parentDepth == p.minDepth {
				return sibling
			}
			u = sibling
			walkFrom = parent.parentDepth
		} else {
			u = parent.node.copyWithDelete(parent.bitIndex, parent.cellIndex)
			u.numel--
			walkFrom = parent.parentDepth
		}

	default:
		// Twig with more than one element.
		u = L.node.copyWithDelete(L.bitIndex, L.cellIndex)
		u.numel--
		walkFrom = L.parentDepth
	}

	for depth := walkFrom; depth != noParent; {
		a := p.steps[depth]
		u = a.node.copyWithChange(a.cellIndex, u)
		u.numel--
		depth = a.parentDepth
	}
	return u
}
