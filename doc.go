/*
Package wavl offers an ordered associative container with order statistics,
organized as a rank-balanced binary search tree.

WAVL Trees

WAVL trees ("weak AVL trees") have been introduced by Bernhard Haeupler,
Siddhartha Sen and Robert E. Tarjan in 2015. Every node carries an integer
rank, approximating the height of its subtree. The difference between the
rank of a node and the rank of any of its children has to be 1 or 2, and
leaves have rank 0. Missing children are represented by external nodes of
rank -1.

From the paper "Rank-Balanced Trees" (ACM Transactions on Algorithms, 2015):

	[…] The weak AVL tree, or wavl tree, is a new kind of balanced tree that
	combines some of the best features of AVL trees and red-black trees. With
	insertions only, a wavl tree is an AVL tree; with insertions and deletions,
	its height is at most that of a red-black tree. Rebalancing after an
	insertion or deletion takes O(1) rotations worst-case and O(1) rank
	changes amortized. […]

_________________________________________________________________________

Usage

Trees are created with New or NewOrdered and hold unique keys:

	tree := wavl.NewOrdered[int, string]()
	tree.Insert(10, "ten")
	tree.Insert(5, "five")
	v, ok := tree.Search(5)   // "five", true
	v, ok = tree.Select(2)    // "ten", true

Besides search, insertion and deletion, trees maintain subtree sizes, thus
supporting order-statistic queries (Select, Rank) in logarithmic time.

Nodes live in an arena owned by the tree and refer to each other by integer
handles. The external node is the reserved handle `none`.

Trees are not safe for concurrent use. Clients have to serialize mutating
operations; concurrent reads are fine as long as no mutation is in flight.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Please refer to the License file for details.

*/
package wavl

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// TreeError is an error type for the wavl module.
type TreeError string

func (e TreeError) Error() string {
	return string(e)
}

// ErrDuplicateKey is flagged when inserting a key which is already present.
// The tree is left unchanged.
const ErrDuplicateKey = TreeError("wavl: duplicate key")

// ErrNotFound is flagged when deleting a key which is not present.
// The tree is left unchanged.
const ErrNotFound = TreeError("wavl: key not found")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = TreeError("wavl: illegal arguments")

// ErrInvalidConfig signals an invalid tree configuration.
const ErrInvalidConfig = TreeError("wavl: invalid configuration")

// ErrCorruptTree is reported by Check if a structural invariant is violated.
// This always indicates a programming error.
const ErrCorruptTree = TreeError("wavl: tree invariant violated")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
