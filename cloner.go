package phamt

// Cloner is implemented by value types that know how to deep-copy
// themselves. Map.CloneValues uses it, when V implements it, to rebuild a
// trie whose value cells are independent of the original's — useful when
// V is itself mutable and the two tries must not alias it. The rebuilt
// trie keeps the original's owning flag.
type Cloner[V any] interface {
	Clone() V
}

// CloneFunc is an explicit clone hook for value types that don't implement
// Cloner, e.g. a value type from another package. Map.CloneValues takes
// one of these directly.
type CloneFunc[V any] func(V) V

// cloneValue applies c if non-nil, otherwise falls back to v's own
// Clone method when it implements Cloner[V], otherwise returns v
// unchanged (a shallow "clone" — correct for immutable value types).
func cloneValue[V any](v V, c CloneFunc[V]) V {
	if c != nil {
		return c(v)
	}
	if cl, ok := any(v).(Cloner[V]); ok {
		return cl.Clone()
	}
	return v
}

// cloneNode rebuilds n's whole subtree, cloning every value cell with
// cloneValue. Structure (bitmap, address, depth, numel) is copied as-is;
// only the leaves differ from the original.
func cloneNode[K addr[K], V any](s shape, n *node[K, V], c CloneFunc[V]) *node[K, V] {
	cp := *n
	cp.cells = make([]any, len(n.cells))
	if n.depth == s.twigDepth {
		for i, cell := range n.cells {
			cp.cells[i] = cloneValue(cell.(V), c)
		}
	} else {
		for i, cell := range n.cells {
			cp.cells[i] = cloneNode(s, cell.(*node[K, V]), c)
		}
	}
	return &cp
}
