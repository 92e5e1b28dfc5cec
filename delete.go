package wavl

const (
	demoteSteps          = 1
	deleteRotationSteps  = 3
	deleteDoubleRotSteps = 7
)

// Delete removes key from the tree. It returns the number of rebalancing
// steps performed, which is for diagnostic purposes only. Deleting a key
// which is not present fails with ErrNotFound and leaves the tree unchanged.
func (t *Tree[K, V]) Delete(key K) (int, error) {
	if t.IsEmpty() {
		return 0, ErrNotFound
	}
	x := t.find(key)
	if x == none {
		return 0, ErrNotFound
	}
	if t.Size() == 1 {
		t.release(x)
		t.root = none
		t.verify("delete")
		return 0, nil
	}
	target := x
	if t.nodes[x].left != none && t.nodes[x].right != none {
		target = t.leftmost(t.nodes[x].right)
		t.swapPayload(x, target)
	}
	steps := t.unlink(target)
	t.verify("delete")
	return steps, nil
}

// swapPayload exchanges key and value of two nodes; links stay in place.
func (t *Tree[K, V]) swapPayload(x, y ref) {
	nx, ny := &t.nodes[x], &t.nodes[y]
	nx.key, ny.key = ny.key, nx.key
	nx.value, ny.value = ny.value, nx.value
}

// unlink structurally removes x, which has at most one real child, and
// rebalances the tree.
func (t *Tree[K, V]) unlink(x ref) int {
	assert(!(t.nodes[x].left != none && t.nodes[x].right != none), "unlink called for binary node")
	p := t.nodes[x].parent
	for a := p; a != none; a = t.nodes[a].parent {
		t.nodes[a].size--
	}
	if t.isUnary(x) {
		child := t.nodes[x].left
		if child == none {
			child = t.nodes[x].right
		}
		t.replaceChild(p, x, child)
		t.nodes[child].parent = p
		t.release(x)
		if p == none || t.isLegal(p) {
			return 0
		}
		return t.rebalanceDelete(p)
	}
	assert(p != none, "unlink called for single root leaf")
	t.replaceChild(p, x, none)
	t.release(x)
	steps := 0
	start := p
	if t.isLeaf(p) {
		// a node without children must have rank 0
		t.nodes[p].rank = 0
		steps += demoteSteps
		start = t.nodes[p].parent
		if start == none {
			return steps
		}
	}
	if t.isLegal(start) {
		return steps
	}
	return steps + t.rebalanceDelete(start)
}

// rebalanceDelete walks up from x, which has a rank difference of 3 to a
// child, demoting nodes until the rank rule holds. It performs at most one
// single or double rotation.
func (t *Tree[K, V]) rebalanceDelete(x ref) int {
	steps := 0
	for {
		dl, dr := t.diffs(x)
		if (dl == 2 && dr == 3) || (dl == 3 && dr == 2) {
			t.demote(x)
			steps += demoteSteps
			if t.settled(x) {
				return steps
			}
			x = t.nodes[x].parent
			continue
		}
		c, isLeft := t.nodes[x].left, true
		if dl != 1 {
			c, isLeft = t.nodes[x].right, false
		}
		assert(c != none && t.rank(x)-t.rank(c) == 1, "rebalanceDelete: no child with rank difference 1")
		if t.isTwoTwo(c) {
			t.demote(x)
			t.demote(c)
			steps += 2 * demoteSteps
			if t.settled(x) {
				return steps
			}
			x = t.nodes[x].parent
			continue
		}
		cl, cr := t.diffs(c)
		if isLeft {
			if cl == 1 {
				T().Debugf("wavl delete: rotate right")
				t.rotateRight(c)
				t.promote(c)
				steps += deleteRotationSteps
				if z := t.nodes[c].right; t.isTwoTwo(z) {
					t.demote(z)
					steps += demoteSteps
				}
				return steps
			}
			T().Debugf("wavl delete: double rotate right")
			t.demote(x)
			y := t.doubleRotateRight(c)
			t.promote(y)
			return steps + deleteDoubleRotSteps
		}
		if cr == 1 {
			T().Debugf("wavl delete: rotate left")
			t.rotateLeft(c)
			t.promote(c)
			steps += deleteRotationSteps
			if z := t.nodes[c].left; t.isTwoTwo(z) {
				t.demote(z)
				steps += demoteSteps
			}
			return steps
		}
		T().Debugf("wavl delete: double rotate left")
		t.demote(x)
		y := t.doubleRotateLeft(c)
		t.promote(y)
		return steps + deleteDoubleRotSteps
	}
}

// settled is true if the rank rule holds above x.
func (t *Tree[K, V]) settled(x ref) bool {
	p := t.nodes[x].parent
	return p == none || t.isLegal(p)
}
