package intervals

import (
	"fmt"
	"strings"
)

// Relation is a relation between a query interval and a stored interval.
type Relation int8

const (
	// Overlaps holds if the query and the stored interval share a range of
	// positive length. A point query overlaps if it lies strictly inside the
	// stored interval.
	Overlaps Relation = iota
	// Intersects holds if the query and the stored interval overlap or touch.
	Intersects
	// Contains holds if the stored interval contains the query. A point query
	// is contained if it lies in [start, end) of the stored interval.
	Contains
)

var relationNames = [...]string{
	Overlaps:   "overlaps",
	Intersects: "intersects",
	Contains:   "contains",
}

func (r Relation) String() string {
	if r < 0 || int(r) >= len(relationNames) {
		return fmt.Sprintf("Relation(%d)", int(r))
	}
	return relationNames[r]
}

// ParseRelation returns the relation for a name as produced by Relation.String.
// Case is ignored.
func ParseRelation(name string) (Relation, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for r, n := range relationNames {
		if n == name {
			return Relation(r), nil
		}
	}
	return Overlaps, fmt.Errorf("%w: %q", ErrUnknownRelation, name)
}

// Matches reports whether a query [start, start+length) stands in relation r
// to a stored interval [nstart, nend).
//
// Every relation implies Intersects; queries rely on this for pruning.
func (r Relation) Matches(start, length, nstart, nend int) bool {
	end := start + length
	switch r {
	case Overlaps:
		if length == 0 {
			return nstart < start && start < nend
		}
		return max(nstart, start) < min(nend, end)
	case Intersects:
		return start <= nend && end >= nstart
	case Contains:
		if length == 0 {
			return nstart <= start && start < nend
		}
		return nstart <= start && end <= nend
	}
	return false
}
