package wavl

import "iter"

// ForEach walks entries in key order.
//
// Iteration stops early if fn returns false.
func (t *Tree[K, V]) ForEach(fn func(key K, value V) bool) {
	if t.IsEmpty() || fn == nil {
		return
	}
	t.forEachNode(t.root, fn)
}

func (t *Tree[K, V]) forEachNode(x ref, fn func(key K, value V) bool) bool {
	if x == none {
		return true
	}
	if !t.forEachNode(t.nodes[x].left, fn) {
		return false
	}
	if !fn(t.nodes[x].key, t.nodes[x].value) {
		return false
	}
	return t.forEachNode(t.nodes[x].right, fn)
}

// All returns an iterator over all entries in key order.
// The tree must not be modified during iteration.
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		t.ForEach(yield)
	}
}

// NodeInfo is a read-only view of a node, as seen during Inspect.
type NodeInfo[K, V any] struct {
	Key       K
	Value     V
	Rank      int
	Size      int
	Depth     int // distance from the root, which has depth 0
	LeftDiff  int // rank difference to the left child
	RightDiff int // rank difference to the right child
}

// IsLeaf is true if the node has no children, i.e. both rank differences
// refer to external nodes of rank -1.
func (n NodeInfo[K, V]) IsLeaf() bool {
	return n.Rank == 0 && n.LeftDiff == 1 && n.RightDiff == 1
}

// Inspect walks the nodes of the tree in key order, exposing their
// structural information. It is intended for formatting and debugging.
//
// Iteration stops early if fn returns false.
func (t *Tree[K, V]) Inspect(fn func(n NodeInfo[K, V]) bool) {
	if t.IsEmpty() || fn == nil {
		return
	}
	t.each(func(x ref, depth int) bool {
		n := &t.nodes[x]
		dl, dr := t.diffs(x)
		return fn(NodeInfo[K, V]{
			Key:       n.key,
			Value:     n.value,
			Rank:      n.rank,
			Size:      n.size,
			Depth:     depth,
			LeftDiff:  dl,
			RightDiff: dr,
		})
	})
}

// each walks node handles in-order, together with their depth.
func (t *Tree[K, V]) each(fn func(x ref, depth int) bool) {
	var walk func(x ref, depth int) bool
	walk = func(x ref, depth int) bool {
		if x == none {
			return true
		}
		return walk(t.nodes[x].left, depth+1) &&
			fn(x, depth) &&
			walk(t.nodes[x].right, depth+1)
	}
	walk(t.root, 0)
}
