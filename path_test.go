package phamt

import "testing"

func TestFindOnEmptyRootMissesAtRoot(t *testing.T) {
	root := newEmpty[Key64, string](shape64, true)
	p, _, found := find(shape64, root, Key64(42))
	if found {
		t.Fatalf("find on empty root reported found")
	}
	if p.maxDepth != p.minDepth {
		t.Fatalf("maxDepth/minDepth = %d/%d, want equal on a one-node empty root", p.maxDepth, p.minDepth)
	}
	if p.steps[p.maxDepth].node.bitmap != 0 {
		t.Fatalf("expected to land on the empty root itself")
	}
}

func TestFindHitAfterAssoc(t *testing.T) {
	root := newEmpty[Key64, string](shape64, true)
	p0, _, _ := find(shape64, root, Key64(7))
	root = assocPath(shape64, &p0, Key64(7), "seven", true)

	_, v, found := find(shape64, root, Key64(7))
	if !found || v != "seven" {
		t.Fatalf("find(7) = (%q, %v), want (seven, true)", v, found)
	}

	_, _, found = find(shape64, root, Key64(8))
	if found {
		t.Fatalf("find(8) unexpectedly found a value in a single-entry trie")
	}
}

func TestFindMissDisjointVsMissBeneath(t *testing.T) {
	root := newEmpty[Key64, string](shape64, true)
	p0, _, _ := find(shape64, root, Key64(0))
	root = assocPath(shape64, &p0, Key64(0), "a", true)

	// 1 shares the same twig range as 0 (both < 32): miss-beneath.
	p1, _, found1 := find(shape64, root, Key64(1))
	if found1 {
		t.Fatalf("unexpected hit for key 1")
	}
	if p1.editDepth != p1.maxDepth {
		t.Fatalf("key 1 should be miss-beneath (editDepth == maxDepth), got editDepth=%d maxDepth=%d", p1.editDepth, p1.maxDepth)
	}

	// 1<<40 is far outside the twig's prefix: miss-disjoint.
	p2, _, found2 := find(shape64, root, Key64(1)<<40)
	if found2 {
		t.Fatalf("unexpected hit for key 1<<40")
	}
	if p2.editDepth == p2.maxDepth {
		t.Fatalf("key 1<<40 should be miss-disjoint (editDepth != maxDepth), got both %d", p2.maxDepth)
	}
}
