package phamt

// maxLevels is the deepest level count across all supported widths
// (W=128 has the most: 24 interior node levels plus root and twig). Cursor
// arrays are sized to this constant for every width so one generic path
// type serves all four tries; the unused tail entries for narrower
// widths are simply never touched.
const maxLevels = 26

// noParent marks a path step with no parent: the root of the walk.
const noParent uint8 = 0xFF

// pathStep is one recorded step of a find or iteration descent. Whether
// the key's prefix still matches the node at this step is consumed
// immediately by find to decide isFound/editDepth, so the step only
// needs to remember the parent link afterward.
type pathStep[K addr[K], V any] struct {
	node        *node[K, V]
	bitIndex    uint32
	cellIndex   int
	isFound     bool
	parentDepth uint8
}

// path is a find or iteration cursor. It is sized to the worst-case
// depth across all widths and reused by value; there is no separate
// iterator state type.
type path[K addr[K], V any] struct {
	steps      [maxLevels]pathStep[K, V]
	minDepth   uint8
	maxDepth   uint8
	editDepth  uint8
	valueFound bool
}

// find descends from start toward key, recording every step along the
// way. It returns the populated path together with the value and found
// flag lookup would give.
func find[K addr[K], V any](s shape, start *node[K, V], key K) (path[K, V], V, bool) {
	var p path[K, V]
	p.minDepth = start.depth

	n := start
	parentDepth := noParent
	for {
		slot := n.locate(s, key)
		depth := n.depth
		p.steps[depth] = pathStep[K, V]{
			node:        n,
			bitIndex:    slot.bitIndex,
			cellIndex:   slot.cellIndex,
			isFound:     slot.isFound,
			parentDepth: parentDepth,
		}

		if !slot.isFound {
			p.maxDepth = depth
			if slot.isBeneath {
				p.editDepth = depth
			} else {
				p.editDepth = parentDepth
			}
			p.valueFound = false
			var zero V
			return p, zero, false
		}

		if depth == s.twigDepth {
			p.maxDepth = depth
			p.editDepth = depth
			p.valueFound = true
			return p, n.value(slot.cellIndex), true
		}

		parentDepth = depth
		n = n.child(slot.cellIndex)
	}
}

// lookup is find without the path, for callers that only need the value.
func lookup[K addr[K], V any](s shape, start *node[K, V], key K) (V, bool) {
	_, v, found := find(s, start, key)
	return v, found
}
