package traverse

// Position is the optional-value state of a cursor:
// it either holds a current value or it is undefined.
// The zero Position is undefined.
//
// Within a traversal a Position moves from defined to undefined only through
// an Advance policy clearing it, and never back.
type Position[T any] struct {
	value   T
	defined bool
}

// At returns a defined Position holding the given value.
func At[T any](v T) Position[T] {
	return Position[T]{value: v, defined: true}
}

// Lookup returns the held value and whether the position is defined.
func (p Position[T]) Lookup() (T, bool) {
	return p.value, p.defined
}

// IsDefined reports whether the position currently holds a value.
func (p Position[T]) IsDefined() bool { return p.defined }

// Set makes the position defined with the given value.
func (p *Position[T]) Set(v T) {
	p.value, p.defined = v, true
}

// Clear marks the position as undefined.
// An Advance policy uses it to signal that the traversal is exhausted.
func (p *Position[T]) Clear() {
	var zero T
	p.value, p.defined = zero, false
}
