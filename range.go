package traverse

import "iter"

// Range pairs a begin and an end cursor into a single traversable unit.
// It is a passive carrier: it owns both cursors by value and never mutates them.
type Range[T, V any] struct {
	begin, end Cursor[T, V]
}

// Wrap pairs two cursors of the same configuration into a Range.
func Wrap[T, V any](begin, end Cursor[T, V]) Range[T, V] {
	return Range[T, V]{begin: begin, end: end}
}

// Begin returns a copy of the starting cursor.
func (r Range[T, V]) Begin() Cursor[T, V] { return r.begin }

// End returns a copy of the terminal cursor.
func (r Range[T, V]) End() Cursor[T, V] { return r.end }

// All drives the range from begin towards end and yields each visible value.
// A projection failure is yielded as the error of the last pair,
// after which the sequence stops.
//
// The returned sequence is re-iterable: every call to it starts over
// from a fresh copy of the begin cursor.
func (r Range[T, V]) All() iter.Seq2[V, error] {
	return func(yield func(V, error) bool) {
		end := r.end
		for c := r.begin; !c.Equal(end); c.Advance() {
			v, err := c.Value()
			if !yield(v, err) || err != nil {
				return
			}
		}
	}
}

// Collect drains the range into a slice.
// On a projection failure it returns the values gathered so far along the error.
func Collect[T, V any](r Range[T, V]) ([]V, error) {
	var vs []V
	for v, err := range r.All() {
		if err != nil {
			return vs, err
		}
		vs = append(vs, v)
	}
	return vs, nil
}
