package traverse

// Slice returns a front-to-back Range over the elements of the given slice.
// The visible values are pointers into the slice, so a traversal can both
// read the elements and update them in place.
func Slice[V any](vs []V) Range[int, *V] {
	return Wrap(
		NewCursor(At(0), Step(1), elementAt(vs), SameValue[int]()),
		NewCursor(At(len(vs)), Step(1), elementAt(vs), SameValue[int]()),
	)
}

// Reverse returns a back-to-front Range over the elements of the given slice.
func Reverse[V any](vs []V) Range[int, *V] {
	return Wrap(
		NewCursor(At(len(vs)-1), Step(-1), elementAt(vs), SameValue[int]()),
		NewCursor(At(-1), Step(-1), elementAt(vs), SameValue[int]()),
	)
}

// elementAt projects an index position to a pointer of the indexed element.
// An index outside the slice reports ErrUndefinedPosition; this is reachable
// when a zipped operand shorter than the terminating operand is read past its
// own end.
func elementAt[V any](vs []V) Dereference[int, *V] {
	return DerefFunc[int, *V](func(i int) (*V, error) {
		if i < 0 || len(vs) <= i {
			return nil, ErrUndefinedPosition
		}
		return &vs[i], nil
	})
}
