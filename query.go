package intervals

// --- Queries ---------------------------------------------------------------

// Overlapping returns all values which overlap [start, start+length), in
// ascending order of start. Touching end points do not count as overlap.
// If length is 0, values are returned which strictly enclose position start.
func (t *Tree[V, I]) Overlapping(start, length int) []V {
	return t.AppendQuery(nil, Overlaps, start, length)
}

// AppendOverlapping appends all values overlapping [start, start+length) to
// dst and returns the extended slice.
func (t *Tree[V, I]) AppendOverlapping(dst []V, start, length int) []V {
	return t.AppendQuery(dst, Overlaps, start, length)
}

// AnyOverlapping reports whether at least one value overlaps
// [start, start+length).
func (t *Tree[V, I]) AnyOverlapping(start, length int) bool {
	return t.Any(Overlaps, start, length)
}

// Intersecting returns all values which intersect [start, start+length), in
// ascending order of start. Intervals touching the query at an end point are
// included.
func (t *Tree[V, I]) Intersecting(start, length int) []V {
	return t.AppendQuery(nil, Intersects, start, length)
}

// AppendIntersecting appends all values intersecting [start, start+length)
// to dst and returns the extended slice.
func (t *Tree[V, I]) AppendIntersecting(dst []V, start, length int) []V {
	return t.AppendQuery(dst, Intersects, start, length)
}

// AnyIntersecting reports whether at least one value intersects
// [start, start+length).
func (t *Tree[V, I]) AnyIntersecting(start, length int) bool {
	return t.Any(Intersects, start, length)
}

// Containing returns all values which contain [start, start+length), in
// ascending order of start.
func (t *Tree[V, I]) Containing(start, length int) []V {
	return t.AppendQuery(nil, Contains, start, length)
}

// AppendContaining appends all values containing [start, start+length) to
// dst and returns the extended slice.
func (t *Tree[V, I]) AppendContaining(dst []V, start, length int) []V {
	return t.AppendQuery(dst, Contains, start, length)
}

// AnyContaining reports whether at least one value contains
// [start, start+length).
func (t *Tree[V, I]) AnyContaining(start, length int) bool {
	return t.Any(Contains, start, length)
}

// Query returns all values standing in relation rel to [start, start+length),
// in ascending order of start. The result is nil if no value matches.
func (t *Tree[V, I]) Query(rel Relation, start, length int) []V {
	return t.AppendQuery(nil, rel, start, length)
}

// AppendQuery appends all values standing in relation rel to
// [start, start+length) to dst, in ascending order of start, and returns the
// extended slice.
func (t *Tree[V, I]) AppendQuery(dst []V, rel Relation, start, length int) []V {
	t.search(rel, start, length, func(v V) bool {
		dst = append(dst, v)
		return true
	})
	return dst
}

// Any reports whether at least one value stands in relation rel to
// [start, start+length). The search stops at the first match.
func (t *Tree[V, I]) Any(rel Relation, start, length int) bool {
	found := false
	t.search(rel, start, length, func(V) bool {
		found = true
		return false
	})
	return found
}

// search walks the tree in-order, calling emit for every value matching the
// query, until emit returns false.
//
// The walk uses an explicit stack. Every node is pushed for a first visit,
// which schedules its children, and for a second visit, which tests the
// node's value after its left subtree has been handled. A subtree is skipped
// if its greatest end lies before the query start. A right subtree is skipped
// if its parent already starts after the query end. As every relation implies
// Intersects, no match is lost.
func (t *Tree[V, I]) search(rel Relation, start, length int, emit func(V) bool) {
	if t == nil || t.root == nil {
		return
	}
	end := start + length
	s := t.stacks.lease(t.root.height)
	defer t.stacks.release(s)
	s.push(t.root, false)
	for !s.isEmpty() {
		e := s.pop()
		n := e.n
		if e.second {
			nstart := t.in.Start(n.value)
			if rel.Matches(start, length, nstart, nstart+t.in.Length(n.value)) {
				if !emit(n.value) {
					return
				}
			}
			continue
		}
		if n.right != nil && t.in.Start(n.value) <= end && t.endOf(n.right.maxEnd) >= start {
			s.push(n.right, false)
		}
		s.push(n, true)
		if n.left != nil && t.endOf(n.left.maxEnd) >= start {
			s.push(n.left, false)
		}
	}
}

func (t *Tree[V, I]) endOf(n *node[V, I]) int {
	return endOf(t.in, n.value)
}
