package intervals

/*
BSD 3-Clause License

Copyright (c) 2021, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"iter"
)

// Tree is an AVL-balanced interval tree. V is the type of the stored values,
// I is an introspector type extracting positions from values of type V.
//
// A tree created by
//
//	Tree[V, I]{}
//
// is a valid object and behaves like an empty tree, using the zero value of I
// as its introspector.
//
// Trees must be handled by reference; a tree must not be copied after its
// first use.
//
//	Operation     |   Cost
//	--------------+----------------------
//	Insert        |   O(log n)
//	Query         |   O(log n + k) typical, O(n) worst case
//	Exists        |   O(log n) typical, O(n) worst case
//	Iterate       |   O(n)
type Tree[V any, I Introspector[V]] struct {
	root   *node[V, I]
	in     I
	size   int
	stacks stackPool[V, I]
}

// Empty returns a new tree without any values. The zero value of I is used
// as the introspector.
func Empty[V any, I Introspector[V]]() *Tree[V, I] {
	return &Tree[V, I]{}
}

// New creates a tree from a sequence of values. Values are inserted one by one
// in argument order. The order determines the shape of the tree, but not the
// results of queries.
func New[V any, I Introspector[V]](in I, values ...V) *Tree[V, I] {
	t := &Tree[V, I]{in: in}
	for _, v := range values {
		t.Insert(v)
	}
	T().Debugf("intervals: created tree with %d values, height %d", t.size, t.Height())
	return t
}

// FromSeq creates a tree from the values of an iterator. Values are inserted
// in iteration order.
func FromSeq[V any, I Introspector[V]](in I, seq iter.Seq[V]) *Tree[V, I] {
	t := &Tree[V, I]{in: in}
	if seq == nil {
		return t
	}
	for v := range seq {
		t.Insert(v)
	}
	T().Debugf("intervals: created tree with %d values, height %d", t.size, t.Height())
	return t
}

// Introspector returns the introspector of the tree.
func (t *Tree[V, I]) Introspector() I {
	return t.in
}

// IsEmpty reports whether the tree has no values.
func (t *Tree[V, I]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Len returns the number of values in the tree.
func (t *Tree[V, I]) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// Height returns the height of the tree, where 0 means empty and 1 means a
// single value.
func (t *Tree[V, I]) Height() int {
	if t == nil {
		return 0
	}
	return t.root.nodeHeight()
}

// Insert adds a value to the tree. Values with equal start are kept in
// insertion order. Insert is not safe for concurrent use.
func (t *Tree[V, I]) Insert(value V) {
	t.root = t.insert(t.root, newNode[V, I](value))
	t.size++
}

func (t *Tree[V, I]) insert(root, n *node[V, I]) *node[V, I] {
	if root == nil {
		return n
	}
	if t.in.Start(n.value) < t.in.Start(root.value) {
		root.setChildren(t.in, t.insert(root.left, n), root.right)
	} else { // ties go right
		root.setChildren(t.in, root.left, t.insert(root.right, n))
	}
	return t.balance(root)
}

// balance restores the AVL property at n, assuming both subtrees of n are
// balanced and differ in height by at most 2.
func (t *Tree[V, I]) balance(n *node[V, I]) *node[V, I] {
	bf := n.balanceFactor()
	assert(bf >= -2 && bf <= 2, "intervals: balance factor out of range")
	var r *node[V, I]
	switch bf {
	case -2:
		if n.right.balanceFactor() <= 0 {
			r = n.rotateLeft(t.in)
		} else {
			r = n.rotateRightLeft(t.in)
		}
	case 2:
		if n.left.balanceFactor() >= 0 {
			r = n.rotateRight(t.in)
		} else {
			r = n.rotateLeftRight(t.in)
		}
	default:
		return n
	}
	T().Debugf("intervals: rotated at start %d (balance %d), new subtree root starts at %d",
		t.in.Start(n.value), bf, t.in.Start(r.value))
	bf = r.balanceFactor()
	assert(bf >= -1 && bf <= 1, "intervals: rebalancing failed")
	return r
}
