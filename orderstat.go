package wavl

// Min returns the value of the smallest key, or false for an empty tree.
func (t *Tree[K, V]) Min() (V, bool) {
	var zero V
	if t.IsEmpty() {
		return zero, false
	}
	return t.nodes[t.leftmost(t.root)].value, true
}

// Max returns the value of the largest key, or false for an empty tree.
func (t *Tree[K, V]) Max() (V, bool) {
	var zero V
	if t.IsEmpty() {
		return zero, false
	}
	return t.nodes[t.rightmost(t.root)].value, true
}

// MinKey returns the smallest key, or false for an empty tree.
func (t *Tree[K, V]) MinKey() (K, bool) {
	var zero K
	if t.IsEmpty() {
		return zero, false
	}
	return t.nodes[t.leftmost(t.root)].key, true
}

// MaxKey returns the largest key, or false for an empty tree.
func (t *Tree[K, V]) MaxKey() (K, bool) {
	var zero K
	if t.IsEmpty() {
		return zero, false
	}
	return t.nodes[t.rightmost(t.root)].key, true
}

// Select returns the value of the i-th smallest key, counting from 1.
// For i outside of [1, Size()], Select returns false.
//
// Select(1) equals Min(), Select(Size()) equals Max().
func (t *Tree[K, V]) Select(i int) (V, bool) {
	var zero V
	x := t.selectNode(i)
	if x == none {
		return zero, false
	}
	return t.nodes[x].value, true
}

// SelectKey returns the i-th smallest key, counting from 1.
func (t *Tree[K, V]) SelectKey(i int) (K, bool) {
	var zero K
	x := t.selectNode(i)
	if x == none {
		return zero, false
	}
	return t.nodes[x].key, true
}

func (t *Tree[K, V]) selectNode(i int) ref {
	if i < 1 || i > t.Size() {
		return none
	}
	i-- // 0-based from here
	x := t.root
	for x != none {
		r := t.size(t.nodes[x].left)
		switch {
		case i == r:
			return x
		case i < r:
			x = t.nodes[x].left
		default:
			i -= r + 1
			x = t.nodes[x].right
		}
	}
	assert(false, "selectNode index routing exceeded subtree size")
	return none
}

// Rank returns the position of key in key order, counting from 1, i.e.
// Select(Rank(k)) is the value of k. Rank returns false if key is not present.
func (t *Tree[K, V]) Rank(key K) (int, bool) {
	if t.IsEmpty() {
		return 0, false
	}
	pos := 0
	x := t.root
	for x != none {
		c := t.cfg.Compare(key, t.nodes[x].key)
		switch {
		case c == 0:
			return pos + t.size(t.nodes[x].left) + 1, true
		case c < 0:
			x = t.nodes[x].left
		default:
			pos += t.size(t.nodes[x].left) + 1
			x = t.nodes[x].right
		}
	}
	return 0, false
}

// Keys returns all keys in ascending order. For an empty tree the result is
// an empty (non-nil) slice.
func (t *Tree[K, V]) Keys() []K {
	keys := make([]K, 0, t.Size())
	t.ForEach(func(k K, _ V) bool {
		keys = append(keys, k)
		return true
	})
	return keys
}

// Values returns all values, ordered by their keys.
func (t *Tree[K, V]) Values() []V {
	values := make([]V, 0, t.Size())
	t.ForEach(func(_ K, v V) bool {
		values = append(values, v)
		return true
	})
	return values
}
