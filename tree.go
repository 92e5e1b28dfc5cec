package wavl

import (
	"cmp"
	"fmt"
)

// Tree is an ordered map from keys K to values V, balanced as a WAVL tree.
//
// Trees have to be created with New or NewOrdered. Keys are unique; their
// order is defined by the comparison function of the tree's configuration.
type Tree[K, V any] struct {
	cfg   Config[K]
	nodes []node[K, V] // arena of nodes, addressed by ref
	free  []ref        // released arena slots
	root  ref
}

// New creates an empty tree with a validated configuration.
func New[K, V any](cfg Config[K]) (*Tree[K, V], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	return &Tree[K, V]{
		cfg:   cfg,
		nodes: make([]node[K, V], 0, cfg.Capacity),
		root:  none,
	}, nil
}

// NewOrdered creates an empty tree for keys with a natural order.
func NewOrdered[K cmp.Ordered, V any]() *Tree[K, V] {
	t, err := New[K, V](OrderedConfig[K]())
	assert(err == nil, "ordered configuration did not validate")
	return t
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[K, V]) Config() Config[K] {
	return t.cfg
}

// IsEmpty reports whether the tree has no entries.
func (t *Tree[K, V]) IsEmpty() bool {
	return t == nil || t.root == none
}

// Size returns the number of entries in the tree.
func (t *Tree[K, V]) Size() int {
	if t.IsEmpty() {
		return 0
	}
	return t.nodes[t.root].size
}

// RootRank returns the rank of the root node, or -1 for an empty tree.
func (t *Tree[K, V]) RootRank() int {
	if t.IsEmpty() {
		return -1
	}
	return t.nodes[t.root].rank
}

// Height returns the number of nodes on the longest path from the root to
// a leaf, where 0 means an empty tree.
func (t *Tree[K, V]) Height() int {
	if t.IsEmpty() {
		return 0
	}
	return t.height(t.root)
}

func (t *Tree[K, V]) height(x ref) int {
	if x == none {
		return 0
	}
	return 1 + max(t.height(t.nodes[x].left), t.height(t.nodes[x].right))
}

// Clear removes all entries, keeping the allocated arena.
func (t *Tree[K, V]) Clear() {
	if t == nil {
		return
	}
	clear(t.nodes)
	t.nodes = t.nodes[:0]
	t.free = t.free[:0]
	t.root = none
}

// verify runs the invariant checker after a mutation, if configured.
func (t *Tree[K, V]) verify(op string) {
	if !t.cfg.CheckInvariants {
		return
	}
	if err := t.Check(); err != nil {
		panic(fmt.Sprintf("wavl: %s left tree in corrupt state: %v", op, err))
	}
}
