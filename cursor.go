package traverse

// Cursor is a value-semantics traversal position bound to its three policies.
// The stepping behaviour is injected as an Advance policy value at
// construction time, so a new traversal kind needs new policy values,
// not a new cursor type.
//
// Each Cursor owns its Position exclusively; copying a Cursor copies the
// position, while the policies are shared read-only between the copies.
type Cursor[T, V any] struct {
	position Position[T]
	advance  Advance[T]
	deref    Dereference[T, V]
	compare  Compare[T]
}

// NewCursor returns a Cursor standing on the given starting position.
// All three policies must be supplied.
func NewCursor[T, V any](start Position[T], advance Advance[T], deref Dereference[T, V], compare Compare[T]) Cursor[T, V] {
	if advance == nil {
		panic("traverse: NewCursor requires an Advance policy")
	}
	if deref == nil {
		panic("traverse: NewCursor requires a Dereference policy")
	}
	if compare == nil {
		panic("traverse: NewCursor requires a Compare policy")
	}
	return Cursor[T, V]{
		position: start,
		advance:  advance,
		deref:    deref,
		compare:  compare,
	}
}

// Advance moves the cursor to its next position.
// It cannot fail; an exhausted traversal is expressed
// by the position becoming undefined.
func (c *Cursor[T, V]) Advance() {
	c.advance.Next(&c.position)
}

// Value projects the current position into the visible value.
// It returns ErrUndefinedPosition when the cursor stands past the end
// or was constructed without a starting value. Reading never mutates.
func (c Cursor[T, V]) Value() (V, error) {
	v, ok := c.position.Lookup()
	if !ok {
		var zero V
		return zero, ErrUndefinedPosition
	}
	return c.deref.Deref(v)
}

// IsValid reports whether the cursor currently stands on a value.
func (c Cursor[T, V]) IsValid() bool {
	return c.position.IsDefined()
}

// Equal reports whether two cursors stand on equivalent positions.
//
// Undefined-ness decides first: two exhausted cursors are always equal
// regardless of how they were exhausted, and a defined position never equals
// an undefined one. Only when both are defined is the compare policy asked.
// This lets an Advance policy terminate a traversal by clearing the position,
// without requiring a comparable sentinel value for every held type.
func (c Cursor[T, V]) Equal(oth Cursor[T, V]) bool {
	a, aok := c.position.Lookup()
	b, bok := oth.position.Lookup()
	if !aok {
		return !bok
	}
	if !bok {
		return false
	}
	return c.compare.Equal(a, b)
}
