package wavl

import "fmt"

// Check validates the structural invariants of the tree:
//
//   - keys are strictly increasing in-order,
//   - rank differences between a node and its children are 1 or 2,
//   - leaves have rank 0,
//   - subtree sizes are consistent,
//   - parent links mirror child links,
//   - every arena slot is either reachable or on the free list.
//
// A tree returned by any public operation is expected to pass Check; an
// error (wrapping ErrCorruptTree) always indicates a programming error.
func (t *Tree[K, V]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrIllegalArguments)
	}
	live := len(t.nodes) - len(t.free)
	if t.root == none {
		if live != 0 {
			return fmt.Errorf("%w: empty tree holds %d arena nodes", ErrCorruptTree, live)
		}
		return nil
	}
	if t.nodes[t.root].parent != none {
		return fmt.Errorf("%w: root has a parent", ErrCorruptTree)
	}
	count, err := t.checkNode(t.root, nil, nil)
	if err != nil {
		return err
	}
	if count != live {
		return fmt.Errorf("%w: %d nodes reachable, %d allocated", ErrCorruptTree, count, live)
	}
	return nil
}

// checkNode validates the subtree at x, whose keys have to lie strictly
// between lo and hi (nil meaning unbounded). It returns the subtree size.
func (t *Tree[K, V]) checkNode(x ref, lo, hi *K) (int, error) {
	if x == none {
		return 0, nil
	}
	if x < 0 || int(x) >= len(t.nodes) {
		return 0, fmt.Errorf("%w: dangling handle %d", ErrCorruptTree, x)
	}
	n := &t.nodes[x]
	if lo != nil && t.cfg.Compare(*lo, n.key) >= 0 {
		return 0, fmt.Errorf("%w: key %v not greater than %v", ErrCorruptTree, n.key, *lo)
	}
	if hi != nil && t.cfg.Compare(n.key, *hi) >= 0 {
		return 0, fmt.Errorf("%w: key %v not less than %v", ErrCorruptTree, n.key, *hi)
	}
	for _, child := range [2]ref{n.left, n.right} {
		if child == none {
			continue
		}
		if t.nodes[child].parent != x {
			return 0, fmt.Errorf("%w: child of %v has broken parent link", ErrCorruptTree, n.key)
		}
	}
	dl, dr := t.diffs(x)
	if dl < 1 || dl > 2 || dr < 1 || dr > 2 {
		return 0, fmt.Errorf("%w: node %v has rank differences (%d,%d)", ErrCorruptTree, n.key, dl, dr)
	}
	if t.isLeaf(x) && n.rank != 0 {
		return 0, fmt.Errorf("%w: leaf %v has rank %d", ErrCorruptTree, n.key, n.rank)
	}
	ls, err := t.checkNode(n.left, lo, &n.key)
	if err != nil {
		return 0, err
	}
	rs, err := t.checkNode(n.right, &n.key, hi)
	if err != nil {
		return 0, err
	}
	if n.size != 1+ls+rs {
		return 0, fmt.Errorf("%w: node %v has size %d, expected %d", ErrCorruptTree, n.key, n.size, 1+ls+rs)
	}
	return n.size, nil
}
