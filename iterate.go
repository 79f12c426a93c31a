package intervals

import "iter"

// All returns an iterator over all values of the tree in ascending order of
// start. Values with equal start are yielded in insertion order.
//
// Every iteration works on its own traversal state, so the iterator may be
// used more than once. The tree must not be modified during iteration.
func (t *Tree[V, I]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		if t == nil || t.root == nil {
			return
		}
		// not pooled: the lifetime of an iteration is up to the caller
		s := &stack[V, I]{entries: make([]visit[V, I], 0, 2*t.root.height+2)}
		s.push(t.root, false)
		for !s.isEmpty() {
			e := s.pop()
			if e.second {
				if !yield(e.n.value) {
					return
				}
				continue
			}
			if e.n.right != nil {
				s.push(e.n.right, false)
			}
			s.push(e.n, true)
			if e.n.left != nil {
				s.push(e.n.left, false)
			}
		}
	}
}

// ForEach calls fn for all values of the tree in ascending order of start.
//
// Iteration stops early if fn returns false.
func (t *Tree[V, I]) ForEach(fn func(value V) bool) {
	if fn == nil {
		return
	}
	for v := range t.All() {
		if !fn(v) {
			return
		}
	}
}

// Values returns all values of the tree in a fresh slice, in ascending order
// of start.
func (t *Tree[V, I]) Values() []V {
	values := make([]V, 0, t.Len())
	for v := range t.All() {
		values = append(values, v)
	}
	return values
}
