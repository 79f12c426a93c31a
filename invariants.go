package intervals

import "fmt"

// Check validates the structural invariants of a tree:
//
//   - values in a left subtree start no later than their parent, values in
//     a right subtree start no earlier; rotations may move values of equal
//     start to either side,
//   - the heights of sibling subtrees differ by at most one,
//   - the stored height of each node is correct,
//   - each node tracks a node of its subtree with the greatest end.
//
// Check is intended for tests and debugging; it visits every node.
func (t *Tree[V, I]) Check() error {
	if t == nil || t.root == nil {
		if t != nil && t.size != 0 {
			return fmt.Errorf("%w: empty tree has size %d", ErrInvalidTree, t.size)
		}
		return nil
	}
	count, _, err := t.checkNode(t.root, bound{}, bound{})
	if err != nil {
		return err
	}
	if count != t.size {
		return fmt.Errorf("%w: size mismatch (%d != %d)", ErrInvalidTree, count, t.size)
	}
	return nil
}

// bound is an optional limit for the start of the values of a subtree.
type bound struct {
	pos int
	set bool
}

// checkNode validates the subtree at n, where all starts have to be in
// [lo, hi]. It returns the number of values and the height of the subtree.
func (t *Tree[V, I]) checkNode(n *node[V, I], lo, hi bound) (count int, height int, err error) {
	if n == nil {
		return 0, 0, nil
	}
	start := t.in.Start(n.value)
	if lo.set && start < lo.pos {
		return 0, 0, fmt.Errorf("%w: start %d in right subtree of %d", ErrInvalidTree, start, lo.pos)
	}
	if hi.set && start > hi.pos {
		return 0, 0, fmt.Errorf("%w: start %d in left subtree of %d", ErrInvalidTree, start, hi.pos)
	}
	lcount, lheight, err := t.checkNode(n.left, lo, bound{pos: start, set: true})
	if err != nil {
		return 0, 0, err
	}
	rcount, rheight, err := t.checkNode(n.right, bound{pos: start, set: true}, hi)
	if err != nil {
		return 0, 0, err
	}
	height = max(lheight, rheight) + 1
	if n.height != height {
		return 0, 0, fmt.Errorf("%w: node %d has height %d, expected %d",
			ErrInvalidTree, start, n.height, height)
	}
	if bf := lheight - rheight; bf < -1 || bf > 1 {
		return 0, 0, fmt.Errorf("%w: node %d has balance factor %d", ErrInvalidTree, start, bf)
	}
	if err = t.checkMaxEnd(n); err != nil {
		return 0, 0, err
	}
	return lcount + rcount + 1, height, nil
}

// checkMaxEnd validates the augmentation of n, given that its children have
// been validated already. Ties between candidates may be resolved either way.
func (t *Tree[V, I]) checkMaxEnd(n *node[V, I]) error {
	if n.maxEnd == nil {
		return fmt.Errorf("%w: node %d has no max-end node", ErrInvalidTree, t.in.Start(n.value))
	}
	want := t.endOf(n)
	if n.left != nil {
		want = max(want, t.endOf(n.left.maxEnd))
	}
	if n.right != nil {
		want = max(want, t.endOf(n.right.maxEnd))
	}
	if got := t.endOf(n.maxEnd); got != want {
		return fmt.Errorf("%w: node %d tracks max end %d, expected %d",
			ErrInvalidTree, t.in.Start(n.value), got, want)
	}
	if n.maxEnd != n && (n.left == nil || n.maxEnd != n.left.maxEnd) &&
		(n.right == nil || n.maxEnd != n.right.maxEnd) {
		return fmt.Errorf("%w: max-end node of %d is not part of its subtree",
			ErrInvalidTree, t.in.Start(n.value))
	}
	return nil
}
