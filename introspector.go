package intervals

// Introspector extracts the position of a value stored in an interval tree.
//
// Implementations must be pure: for a given value, Start and Length always
// return the same results. Length must not be negative. The end coordinate of
// a value v is Start(v)+Length(v) and is not part of the interval.
//
// Introspectors are usually empty structs. This lets a tree index value types
// which are defined elsewhere and cannot be changed.
type Introspector[V any] interface {
	Start(value V) int
	Length(value V) int
}

func endOf[V any, I Introspector[V]](in I, value V) int {
	return in.Start(value) + in.Length(value)
}
