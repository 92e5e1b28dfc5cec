package wavl

import "fmt"

// Weights of rebalancing steps, as reported by Insert and Delete.
const (
	promoteSteps        = 1
	rotationSteps       = 2
	doubleRotationSteps = 5
)

// Insert adds key with value to the tree. It returns the number of
// rebalancing steps performed, which is for diagnostic purposes only.
// Inserting a key which is already present fails with ErrDuplicateKey and
// leaves the tree unchanged.
func (t *Tree[K, V]) Insert(key K, value V) (int, error) {
	if t == nil {
		return 0, fmt.Errorf("%w: insert into nil tree", ErrIllegalArguments)
	}
	if t.Contains(key) {
		return 0, ErrDuplicateKey
	}
	x := t.alloc(key, value)
	if t.root == none {
		t.root = x
		t.verify("insert")
		return 0, nil
	}
	p := t.insertionParent(key)
	if t.cfg.Compare(key, t.nodes[p].key) < 0 {
		t.nodes[p].left = x
	} else {
		t.nodes[p].right = x
	}
	t.nodes[x].parent = p
	if t.isLegal(p) {
		t.verify("insert")
		return 0, nil
	}
	steps := t.rebalanceInsert(p)
	t.verify("insert")
	return steps, nil
}

// insertionParent descends to the node which will receive key as a new
// leaf. Every node on the way accounts for the new leaf in its size.
func (t *Tree[K, V]) insertionParent(key K) ref {
	x := t.root
	for {
		t.nodes[x].size++
		next := t.nodes[x].right
		if t.cfg.Compare(key, t.nodes[x].key) < 0 {
			next = t.nodes[x].left
		}
		if next == none {
			return x
		}
		x = next
	}
}

// rebalanceInsert walks up from x, which has a rank difference of 0 to a
// child, promoting nodes until the rank rule holds. It performs at most
// one single or double rotation.
func (t *Tree[K, V]) rebalanceInsert(x ref) int {
	steps := 0
	for {
		t.promote(x)
		steps += promoteSteps
		p := t.nodes[x].parent
		if p == none || t.isLegal(p) {
			return steps
		}
		if t.isZeroOne(p) {
			x = p
			continue
		}
		// p has rank differences {0,2} or {2,0}
		if x == t.nodes[p].left {
			if t.rank(x)-t.rank(t.nodes[x].left) == 1 {
				T().Debugf("wavl insert: rotate right")
				t.rotateRight(x)
				return steps + rotationSteps
			}
			T().Debugf("wavl insert: double rotate right")
			t.doubleRotateRight(x)
			return steps + doubleRotationSteps
		}
		if t.rank(x)-t.rank(t.nodes[x].right) == 1 {
			T().Debugf("wavl insert: rotate left")
			t.rotateLeft(x)
			return steps + rotationSteps
		}
		T().Debugf("wavl insert: double rotate left")
		t.doubleRotateLeft(x)
		return steps + doubleRotationSteps
	}
}
