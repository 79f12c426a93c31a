package intervals

import (
	"errors"
	"testing"
)

func TestRelationMatches(t *testing.T) {
	// stored interval is [10,20)
	cases := []struct {
		start, length                int
		overlaps, intersects, contains bool
	}{
		{0, 5, false, false, false},
		{5, 5, false, true, false}, // touches start
		{5, 6, true, true, false},
		{10, 10, true, true, true},
		{12, 3, true, true, true},
		{15, 10, true, true, false},
		{20, 5, false, true, false}, // touches end
		{21, 5, false, false, false},
		{10, 0, false, true, true}, // point at start
		{15, 0, true, true, true},
		{20, 0, false, true, false}, // point at end
		{9, 0, false, false, false},
		{0, 30, true, true, false},
	}
	for _, c := range cases {
		if got := Overlaps.Matches(c.start, c.length, 10, 20); got != c.overlaps {
			t.Errorf("overlaps [%d,+%d): got %v", c.start, c.length, got)
		}
		if got := Intersects.Matches(c.start, c.length, 10, 20); got != c.intersects {
			t.Errorf("intersects [%d,+%d): got %v", c.start, c.length, got)
		}
		if got := Contains.Matches(c.start, c.length, 10, 20); got != c.contains {
			t.Errorf("contains [%d,+%d): got %v", c.start, c.length, got)
		}
	}
}

func TestRelationsOnEmptyInterval(t *testing.T) {
	// stored interval [10,10) has no interior
	if Overlaps.Matches(10, 0, 10, 10) || Contains.Matches(10, 0, 10, 10) {
		t.Errorf("empty interval must not overlap or contain a point")
	}
	if !Intersects.Matches(10, 0, 10, 10) {
		t.Errorf("empty interval should intersect a point at its position")
	}
}

func TestParseRelation(t *testing.T) {
	for _, rel := range []Relation{Overlaps, Intersects, Contains} {
		r, err := ParseRelation(" " + rel.String() + " ")
		if err != nil || r != rel {
			t.Errorf("cannot parse %q: %v %v", rel.String(), r, err)
		}
	}
	if r, err := ParseRelation("CONTAINS"); err != nil || r != Contains {
		t.Errorf("expected case-insensitive parsing, got %v %v", r, err)
	}
	if _, err := ParseRelation("touches"); !errors.Is(err, ErrUnknownRelation) {
		t.Errorf("expected ErrUnknownRelation, got %v", err)
	}
	if s := Relation(7).String(); s != "Relation(7)" {
		t.Errorf("unexpected string for invalid relation: %q", s)
	}
}
