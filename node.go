package intervals

// node is the storage unit of a tree. The value of a node never changes;
// height and maxEnd are recomputed whenever the children change.
type node[V any, I Introspector[V]] struct {
	value  V
	height int
	left   *node[V, I]
	right  *node[V, I]
	maxEnd *node[V, I] // node with the greatest end in this subtree, possibly n itself
}

func newNode[V any, I Introspector[V]](value V) *node[V, I] {
	n := &node[V, I]{value: value, height: 1}
	n.maxEnd = n
	return n
}

func (n *node[V, I]) nodeHeight() int {
	if n == nil {
		return 0
	}
	return n.height
}

func (n *node[V, I]) balanceFactor() int {
	if n == nil {
		return 0
	}
	return n.left.nodeHeight() - n.right.nodeHeight()
}

// setChildren links left and right as the children of n and recomputes the
// height and the max-end augmentation of n. Ancestors of n are not touched.
func (n *node[V, I]) setChildren(in I, left, right *node[V, I]) {
	n.left, n.right = left, right
	n.height = max(left.nodeHeight(), right.nodeHeight()) + 1
	n.maxEnd = n
	maxEnd := endOf(in, n.value)
	if left != nil {
		if e := endOf(in, left.maxEnd.value); e > maxEnd {
			n.maxEnd, maxEnd = left.maxEnd, e
		}
	}
	if right != nil {
		if e := endOf(in, right.maxEnd.value); e > maxEnd {
			n.maxEnd = right.maxEnd
		}
	}
}

// --- Rotations -------------------------------------------------------------
//
// Rotations re-link existing nodes and return the new local subtree root.
// Nodes are updated bottom-up, so the augmentation of the new root sees
// up-to-date children.

//	  n              r
//	 / \            / \
//	a   r    =>    n   c
//	   / \        / \
//	  b   c      a   b
func (n *node[V, I]) rotateLeft(in I) *node[V, I] {
	r := n.right
	n.setChildren(in, n.left, r.left)
	r.setChildren(in, n, r.right)
	return r
}

//	    n          l
//	   / \        / \
//	  l   c  =>  a   n
//	 / \            / \
//	a   b          b   c
func (n *node[V, I]) rotateRight(in I) *node[V, I] {
	l := n.left
	n.setChildren(in, l.right, n.right)
	l.setChildren(in, l.left, n)
	return l
}

// rotateRightLeft resolves a right-heavy node whose right child is left-heavy:
// a right rotation of the right child followed by a left rotation of n.
func (n *node[V, I]) rotateRightLeft(in I) *node[V, I] {
	r := n.right
	rl := r.left
	n.setChildren(in, n.left, rl.left)
	r.setChildren(in, rl.right, r.right)
	rl.setChildren(in, n, r)
	return rl
}

// rotateLeftRight resolves a left-heavy node whose left child is right-heavy:
// a left rotation of the left child followed by a right rotation of n.
func (n *node[V, I]) rotateLeftRight(in I) *node[V, I] {
	l := n.left
	lr := l.right
	l.setChildren(in, l.left, lr.left)
	n.setChildren(in, lr.right, n.right)
	lr.setChildren(in, l, n)
	return lr
}
