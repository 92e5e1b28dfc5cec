package wavl

// Rotations move a node x one level up, taking the place of its parent p.
// p is demoted as part of the rotation. Links are re-assigned in a fixed
// order, then subtree sizes of p and x are recomputed bottom-up.
//
//	      p              x
//	     / \            / \
//	    x   c    =>    a   p
//	   / \                / \
//	  a   b              b   c
//
// rotateRight(x) shown; rotateLeft is the mirror image.

// rotateRight lifts x, a left child, above its parent.
func (t *Tree[K, V]) rotateRight(x ref) {
	p := t.nodes[x].parent
	assert(p != none && t.nodes[p].left == x, "rotateRight: node is not a left child")
	g := t.nodes[p].parent
	b := t.nodes[x].right
	t.nodes[p].left = b
	if b != none {
		t.nodes[b].parent = p
	}
	t.nodes[x].right = p
	t.nodes[p].parent = x
	t.replaceChild(g, p, x)
	t.nodes[x].parent = g
	t.updateSize(p)
	t.updateSize(x)
	t.demote(p)
}

// rotateLeft lifts x, a right child, above its parent.
func (t *Tree[K, V]) rotateLeft(x ref) {
	p := t.nodes[x].parent
	assert(p != none && t.nodes[p].right == x, "rotateLeft: node is not a right child")
	g := t.nodes[p].parent
	b := t.nodes[x].left
	t.nodes[p].right = b
	if b != none {
		t.nodes[b].parent = p
	}
	t.nodes[x].left = p
	t.nodes[p].parent = x
	t.replaceChild(g, p, x)
	t.nodes[x].parent = g
	t.updateSize(p)
	t.updateSize(x)
	t.demote(p)
}

// doubleRotateRight lifts the right child of x, x being a left child,
// two levels up and promotes it. It returns the new subtree root.
func (t *Tree[K, V]) doubleRotateRight(x ref) ref {
	y := t.nodes[x].right
	assert(y != none, "doubleRotateRight: inner child missing")
	t.rotateLeft(y)
	t.rotateRight(y)
	t.promote(y)
	return y
}

// doubleRotateLeft lifts the left child of x, x being a right child,
// two levels up and promotes it. It returns the new subtree root.
func (t *Tree[K, V]) doubleRotateLeft(x ref) ref {
	y := t.nodes[x].left
	assert(y != none, "doubleRotateLeft: inner child missing")
	t.rotateRight(y)
	t.rotateLeft(y)
	t.promote(y)
	return y
}
