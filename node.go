package phamt

// node is the immutable trie node. K is the key type for this trie's
// width, V the value type. A node represents the root, an interior
// branch, or a twig (depth == shape.twigDepth).
//
// cells holds exactly popcount(bitmap) entries: for a twig, each cell is
// a V; for everything else, each cell is a *node[K, V]. Go has no tagged
// union, so cells is untyped (any) and interpreted by depth — a node's
// depth relative to its shape's twig depth, together with owning, is
// enough to know how to read its cells back out.
type node[K addr[K], V any] struct {
	address  K
	numel    uint64
	bitmap   uint32
	startBit uint8
	shift    uint8
	depth    uint8
	owning   bool // true if values are owned and may be cloned/dropped freely
	firstn   bool // cached: bitmap == lowmask32(popcount(bitmap))
	// transient is always false; reserved for a future mutable
	// bulk-update builder not implemented here.
	transient bool
	cells     []any
}

func (n *node[K, V]) isTwig(s shape) bool {
	return n.depth == s.twigDepth
}

func (n *node[K, V]) cellCount() int {
	return popcount32(n.bitmap)
}

// cellSlot locates key within n: which bit of the bitmap it addresses,
// which cell index that bit packs down to, and whether n actually holds
// an entry for it.
type cellSlot struct {
	bitIndex  uint32
	cellIndex int
	isBeneath bool
	isFound   bool
}

func (n *node[K, V]) locate(s shape, key K) cellSlot {
	startBit := uint(n.startBit)
	shift := uint(n.shift)
	bitIndex := key.SlotIndex(startBit, shift)
	isBeneath := key.ClearBelow(s.depthmaskBits(n.depth)) == n.address

	var cellIndex int
	if n.firstn && n.bitmap&(uint32(1)<<bitIndex) != 0 {
		cellIndex = int(bitIndex)
	} else {
		cellIndex = popcount32(n.bitmap & lowmask32(uint(bitIndex)))
	}
	isFound := isBeneath && n.bitmap&(uint32(1)<<bitIndex) != 0
	return cellSlot{bitIndex: bitIndex, cellIndex: cellIndex, isBeneath: isBeneath, isFound: isFound}
}

// child returns the cell at cellIndex as a child node pointer. Panics if
// this node is a twig; callers must check depth first.
func (n *node[K, V]) child(cellIndex int) *node[K, V] {
	return n.cells[cellIndex].(*node[K, V])
}

// value returns the cell at cellIndex as a stored value. Panics if this
// node is not a twig.
func (n *node[K, V]) value(cellIndex int) V {
	return n.cells[cellIndex].(V)
}

// newEmpty constructs one of the two static empty sentinels, root-shaped
// with zero cells.
func newEmpty[K addr[K], V any](s shape, owning bool) *node[K, V] {
	return &node[K, V]{
		address:  *new(K),
		numel:    0,
		bitmap:   0,
		startBit: uint8(s.rootFirstbit),
		shift:    uint8(s.rootShift),
		depth:    0,
		owning:   owning,
		firstn:   true, // lowmask32(popcount(0)) == lowmask32(0) == 0 == bitmap
		cells:    nil,
	}
}

// fromSingleKV builds a one-entry twig holding (k, v). A twig's depth is
// always s.twigDepth regardless of where in the trie it ends up attached:
// a singleton twig is a path-compressed leaf, the same way copy-with-
// insert and join-disjoint splice it in directly under any ancestor
// without materializing the skipped intermediate levels.
func fromSingleKV[K addr[K], V any](s shape, k K, v V, owning bool) *node[K, V] {
	address := k.ClearBelow(twigShift)
	bitIndex := k.SlotIndex(0, twigShift)
	return &node[K, V]{
		address:  address,
		numel:    1,
		bitmap:   uint32(1) << bitIndex,
		startBit: 0,
		shift:    twigShift,
		depth:    s.twigDepth,
		owning:   owning,
		firstn:   bitIndex == 0,
		cells:    []any{v},
	}
}

// copyWithChange returns a shallow copy of n with the cell at cellIndex
// replaced by newCell. Shape (bitmap/address/depth) is unchanged.
func (n *node[K, V]) copyWithChange(cellIndex int, newCell any) *node[K, V] {
	cp := *n
	cp.cells = make([]any, len(n.cells))
	copy(cp.cells, n.cells)
	cp.cells[cellIndex] = newCell
	return &cp
}

// copyWithInsert returns a shallow copy of n with a new cell inserted at
// bitIndex/cellIndex. numel is left unchanged; callers adjust it.
func (n *node[K, V]) copyWithInsert(bitIndex uint32, cellIndex int, newCell any) *node[K, V] {
	cp := *n
	cp.bitmap = n.bitmap | (uint32(1) << bitIndex)
	cp.cells = make([]any, len(n.cells)+1)
	copy(cp.cells, n.cells[:cellIndex])
	cp.cells[cellIndex] = newCell
	copy(cp.cells[cellIndex+1:], n.cells[cellIndex:])
	cp.firstn = firstnBits(cp.bitmap)
	return &cp
}

// copyWithDelete returns a shallow copy of n with the cell at
// bitIndex/cellIndex removed. numel is left unchanged; callers adjust it.
func (n *node[K, V]) copyWithDelete(bitIndex uint32, cellIndex int) *node[K, V] {
	cp := *n
	cp.bitmap = n.bitmap &^ (uint32(1) << bitIndex)
	cp.cells = make([]any, len(n.cells)-1)
	copy(cp.cells, n.cells[:cellIndex])
	copy(cp.cells[cellIndex:], n.cells[cellIndex+1:])
	cp.firstn = firstnBits(cp.bitmap)
	return &cp
}

// joinDisjoint builds a new common-ancestor node covering both a and b,
// whose address prefixes must be disjoint. a and b must share the same
// owning flag.
func joinDisjoint[K addr[K], V any](s shape, a, b *node[K, V]) *node[K, V] {
	h := s.width - a.address.Xor(b.address).LeadingZeros() - 1

	// The divergence bit decides the join level. A bit at or above
	// rootFirstbit lies inside the root's own slot range, so only the
	// root shape can discriminate it; everything below lands on the
	// interior level whose slot range spans the bit.
	var startBit, shift uint
	var depth uint8
	if h < s.width-int(s.rootShift) {
		steps := (h - twigShift) / nodeShift
		startBit = uint(steps)*nodeShift + twigShift
		shift = nodeShift
		depth = uint8(s.levels - 2 - steps)
	} else {
		startBit = s.rootFirstbit
		shift = s.rootShift
		depth = 0
	}

	address := a.address.ClearBelow(startBit + shift)

	aSlot := a.address.SlotIndex(startBit, shift)
	bSlot := b.address.SlotIndex(startBit, shift)

	lo, hi := a, b
	if aSlot > bSlot {
		lo, hi = b, a
		aSlot, bSlot = bSlot, aSlot
	}

	return &node[K, V]{
		address:  address,
		numel:    a.numel + b.numel,
		bitmap:   (uint32(1) << aSlot) | (uint32(1) << bSlot),
		startBit: uint8(startBit),
		shift:    uint8(shift),
		depth:    depth,
		owning:   a.owning,
		firstn:   firstnBits((uint32(1) << aSlot) | (uint32(1) << bSlot)),
		cells:    []any{lo, hi},
	}
}

