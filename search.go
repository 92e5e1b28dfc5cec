package wavl

// Search returns the value stored for key. If key is not present, Search
// returns the zero value and false.
func (t *Tree[K, V]) Search(key K) (V, bool) {
	var zero V
	if t.IsEmpty() {
		return zero, false
	}
	x := t.find(key)
	if x == none {
		return zero, false
	}
	return t.nodes[x].value, true
}

// Contains reports whether key is present.
func (t *Tree[K, V]) Contains(key K) bool {
	return !t.IsEmpty() && t.find(key) != none
}

func (t *Tree[K, V]) find(key K) ref {
	x := t.root
	for x != none {
		c := t.cfg.Compare(key, t.nodes[x].key)
		switch {
		case c == 0:
			return x
		case c < 0:
			x = t.nodes[x].left
		default:
			x = t.nodes[x].right
		}
	}
	return none
}
