package intervals

import "sync"

// visit is an entry of a traversal stack. A node is pushed twice: once for
// descending into its children and a second time for visiting the node
// itself after its left subtree.
type visit[V any, I Introspector[V]] struct {
	n      *node[V, I]
	second bool
}

type stack[V any, I Introspector[V]] struct {
	entries []visit[V, I]
}

func (s *stack[V, I]) push(n *node[V, I], second bool) {
	s.entries = append(s.entries, visit[V, I]{n: n, second: second})
}

func (s *stack[V, I]) pop() visit[V, I] {
	last := len(s.entries) - 1
	v := s.entries[last]
	s.entries[last] = visit[V, I]{}
	s.entries = s.entries[:last]
	return v
}

func (s *stack[V, I]) isEmpty() bool {
	return len(s.entries) == 0
}

// reset drops all entries, keeping the capacity.
func (s *stack[V, I]) reset() {
	clear(s.entries)
	s.entries = s.entries[:0]
}

// stackPool hands out traversal stacks to queries. Stacks are leased for the
// duration of a single query and are never shared between callers.
// The zero value is ready to use.
type stackPool[V any, I Introspector[V]] struct {
	pool sync.Pool
}

func (p *stackPool[V, I]) lease(height int) *stack[V, I] {
	if s, ok := p.pool.Get().(*stack[V, I]); ok {
		return s
	}
	// a traversal never holds more than about two entries per level
	return &stack[V, I]{entries: make([]visit[V, I], 0, 2*height+2)}
}

func (p *stackPool[V, I]) release(s *stack[V, I]) {
	s.reset()
	p.pool.Put(s)
}
