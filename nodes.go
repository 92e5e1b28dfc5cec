package wavl

// ref is a handle to a node within the arena of a tree.
type ref int32

// none is the external node. It has rank -1 and size 0 and is never
// stored in the arena.
const none ref = -1

type node[K, V any] struct {
	key    K
	value  V
	rank   int
	size   int // number of real nodes in the subtree, including this one
	parent ref
	left   ref
	right  ref
}

// alloc creates a fresh leaf, re-using a released slot if possible.
// alloc may move the arena, so no node pointers may be held across a call.
func (t *Tree[K, V]) alloc(key K, value V) ref {
	n := node[K, V]{
		key:    key,
		value:  value,
		size:   1,
		parent: none,
		left:   none,
		right:  none,
	}
	if l := len(t.free); l > 0 {
		x := t.free[l-1]
		t.free = t.free[:l-1]
		t.nodes[x] = n
		return x
	}
	t.nodes = append(t.nodes, n)
	return ref(len(t.nodes) - 1)
}

// release returns an unlinked node to the free list.
func (t *Tree[K, V]) release(x ref) {
	assert(x != none, "release called for external node")
	t.nodes[x] = node[K, V]{parent: none, left: none, right: none, rank: -1}
	t.free = append(t.free, x)
}

func (t *Tree[K, V]) rank(x ref) int {
	if x == none {
		return -1
	}
	return t.nodes[x].rank
}

func (t *Tree[K, V]) size(x ref) int {
	if x == none {
		return 0
	}
	return t.nodes[x].size
}

func (t *Tree[K, V]) left(x ref) ref {
	return t.nodes[x].left
}

func (t *Tree[K, V]) right(x ref) ref {
	return t.nodes[x].right
}

func (t *Tree[K, V]) parent(x ref) ref {
	return t.nodes[x].parent
}

func (t *Tree[K, V]) isLeaf(x ref) bool {
	return t.nodes[x].left == none && t.nodes[x].right == none
}

func (t *Tree[K, V]) isUnary(x ref) bool {
	return (t.nodes[x].left == none) != (t.nodes[x].right == none)
}

func (t *Tree[K, V]) promote(x ref) {
	t.nodes[x].rank++
}

func (t *Tree[K, V]) demote(x ref) {
	t.nodes[x].rank--
}

// diffs returns the rank differences of x to its left and right child.
func (t *Tree[K, V]) diffs(x ref) (int, int) {
	r := t.nodes[x].rank
	return r - t.rank(t.nodes[x].left), r - t.rank(t.nodes[x].right)
}

// isLegal is true if both rank differences of x are 1 or 2.
func (t *Tree[K, V]) isLegal(x ref) bool {
	l, r := t.diffs(x)
	return (l == 1 || l == 2) && (r == 1 || r == 2)
}

// isZeroOne is true for rank differences {0,1} or {1,0}, which after an
// insertion are fixed by promoting x.
func (t *Tree[K, V]) isZeroOne(x ref) bool {
	l, r := t.diffs(x)
	return (l == 0 && r == 1) || (l == 1 && r == 0)
}

func (t *Tree[K, V]) isTwoTwo(x ref) bool {
	if x == none {
		return false
	}
	l, r := t.diffs(x)
	return l == 2 && r == 2
}

func (t *Tree[K, V]) updateSize(x ref) {
	t.nodes[x].size = 1 + t.size(t.nodes[x].left) + t.size(t.nodes[x].right)
}

// replaceChild makes y take the place of old as a child of p. If p is the
// external node, y becomes the root. The parent link of y is not touched.
func (t *Tree[K, V]) replaceChild(p, old, y ref) {
	switch {
	case p == none:
		t.root = y
	case t.nodes[p].left == old:
		t.nodes[p].left = y
	case t.nodes[p].right == old:
		t.nodes[p].right = y
	default:
		panic("replaceChild: node is not a child of its parent")
	}
}

func (t *Tree[K, V]) leftmost(x ref) ref {
	for t.nodes[x].left != none {
		x = t.nodes[x].left
	}
	return x
}

func (t *Tree[K, V]) rightmost(x ref) ref {
	for t.nodes[x].right != none {
		x = t.nodes[x].right
	}
	return x
}
