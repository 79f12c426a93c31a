/*
Package intervals offers a self-balancing, augmented binary search tree which
indexes half-open intervals over integer coordinates.

Interval Trees

An interval tree stores values which occupy a range [start, start+length) and
answers range queries without scanning all stored values. Clients keep their own
value types; the tree learns about positions through an Introspector, a
stateless strategy which extracts start and length from a value:

	type Span struct{ Pos, Len int }
	type SpanPositions struct{}

	func (SpanPositions) Start(s Span) int  { return s.Pos }
	func (SpanPositions) Length(s Span) int { return s.Len }

	tree := intervals.New(SpanPositions{}, Span{0, 5}, Span{3, 5}, Span{10, 2})
	hits := tree.Overlapping(4, 4) // [0,5) and [3,8)

Values are ordered by start. Ties are kept in insertion order. The tree is an
AVL tree, and every node tracks the node of its subtree with the greatest end
coordinate. Queries use this augmentation to skip subtrees which cannot
possibly contain a match.

Three relations between a query [s, s+l) and a stored interval are supported:

	Overlaps     strict overlap of positive length; a point query (l=0)
	             must lie strictly inside the interval
	Intersects   like Overlaps, but touching end points count
	Contains     the stored interval contains the query; a point query
	             must lie in [start, end)

Each relation is available as a query returning a fresh slice, as an
append-style query filling a caller-owned slice, and as an existence check.

Concurrency

Trees are not synchronized. Insertion must not run concurrently with any other
operation on the same tree. Read-only queries and iteration may run
concurrently with each other.

Intervals cannot be removed from a tree.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2021, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package intervals

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// IntervalError is an error type for the intervals module
type IntervalError string

func (e IntervalError) Error() string {
	return string(e)
}

// ErrInvalidTree is flagged by Check whenever a structural invariant of a
// tree does not hold.
const ErrInvalidTree = IntervalError("interval tree invariant violated")

// ErrUnknownRelation is flagged when parsing an unknown relation name.
const ErrUnknownRelation = IntervalError("unknown interval relation")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
