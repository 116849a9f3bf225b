package phamt

import "iter"

// digFirst descends always into cells[0], recording each step, until it
// reaches a twig's cell 0. parentDepth is the depth of the step cur was
// reached from, or noParent if cur is the root of the whole walk.
func digFirst[K addr[K], V any](s shape, cur *node[K, V], p *path[K, V], parentDepth uint8) V {
	for {
		depth := cur.depth
		bitIndex := uint32(ctz32(cur.bitmap))
		p.steps[depth] = pathStep[K, V]{
			node:        cur,
			bitIndex:    bitIndex,
			cellIndex:   0,
			isFound:     true,
			parentDepth: parentDepth,
		}
		if depth == s.twigDepth {
			p.maxDepth = depth
			return cur.value(0)
		}
		parentDepth = depth
		cur = cur.child(0)
	}
}

// first begins an iteration over root. An empty trie yields no path and
// found == false.
func first[K addr[K], V any](s shape, root *node[K, V]) (path[K, V], V, bool) {
	var p path[K, V]
	if root.numel == 0 {
		var zero V
		return p, zero, false
	}
	p.minDepth = root.depth
	v := digFirst(s, root, &p, noParent)
	p.valueFound = true
	return p, v, true
}

// next advances a path produced by first or a prior next. It ascends
// from the deepest step via parent links until it finds a step with an
// unvisited cell, then descends back to a leaf if necessary.
//
// The masking is done with highmask32(bitIndex+1) rather than
// highmask32(bitIndex): ctz of the bitmap masked at the *current* bit
// would find the current bit again (or loop on it) instead of the next
// one. Masking strictly above the visited bit is what makes next()
// advance instead of repeat.
func next[K addr[K], V any](s shape, p *path[K, V]) (V, bool) {
	for depth := p.maxDepth; ; {
		step := p.steps[depth]
		count := popcount32(step.node.bitmap)
		if step.cellIndex+1 < count {
			newBitIndex := uint32(ctz32(step.node.bitmap & highmask32(uint(step.bitIndex+1))))
			newCellIndex := step.cellIndex + 1
			p.steps[depth] = pathStep[K, V]{
				node:        step.node,
				bitIndex:    newBitIndex,
				cellIndex:   newCellIndex,
				isFound:     true,
				parentDepth: step.parentDepth,
			}
			if depth == s.twigDepth {
				p.maxDepth = depth
				return step.node.value(newCellIndex), true
			}
			child := step.node.child(newCellIndex)
			v := digFirst(s, child, p, depth)
			return v, true
		}
		if depth == p.minDepth {
			p.valueFound = false
			var zero V
			return zero, false
		}
		depth = step.parentDepth
	}
}

// currentKey reconstructs the full key at the twig step of p. A twig's
// address already carries every bit above its own stride (its low bits
// are always zero), so the key is just that address with the visited
// slot folded into the low bits.
func currentKey[K addr[K], V any](p *path[K, V]) K {
	leaf := p.steps[p.maxDepth]
	return leaf.node.address.WithLowBits(leaf.bitIndex)
}

// allSeq builds the iter.Seq2 that backs every width's All method.
func allSeq[K addr[K], V any](s shape, root *node[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		p, v, ok := first(s, root)
		for ok {
			if !yield(currentKey(&p), v) {
				return
			}
			v, ok = next(s, &p)
		}
	}
}
