package traverse

import "golang.org/x/exp/constraints"

// Compare decides whether two held position values are equivalent.
// Cursor.Equal consults it only when both positions are defined.
type Compare[T any] interface {
	Equal(a, b T) bool
}

// CompareFunc turns an ordinary function into a Compare policy.
type CompareFunc[T any] func(a, b T) bool

func (fn CompareFunc[T]) Equal(a, b T) bool { return fn(a, b) }

// SameValue compares held values structurally.
func SameValue[T comparable]() Compare[T] {
	return CompareFunc[T](func(a, b T) bool { return a == b })
}

// SameAddress compares pointer handles by identity:
// two positions are equivalent only when they refer to the same storage.
func SameAddress[T any]() Compare[*T] {
	return CompareFunc[*T](func(a, b *T) bool { return a == b })
}

// Never reports every pair of held values as different.
// It is meant for open-ended positions such as an unbounded counter,
// where termination is decided by a co-traversed cursor instead.
func Never[T any]() Compare[T] {
	return CompareFunc[T](func(T, T) bool { return false })
}

// Dereference projects a held position value into the externally visible value.
//
// Projection can fail with ErrUndefinedPosition when the held value refers to
// something that is no longer readable, such as an exhausted operand inside a
// zipped position; plain projections always return a nil error.
type Dereference[T, V any] interface {
	Deref(T) (V, error)
}

// DerefFunc turns an ordinary function into a Dereference policy.
type DerefFunc[T, V any] func(T) (V, error)

func (fn DerefFunc[T, V]) Deref(v T) (V, error) { return fn(v) }

// Itself exposes the held value as-is.
func Itself[T any]() Dereference[T, T] {
	return DerefFunc[T, T](func(v T) (T, error) { return v, nil })
}

// Indirect treats the held value as a pointer handle and follows it once.
func Indirect[T any]() Dereference[*T, T] {
	return DerefFunc[*T, T](func(v *T) (T, error) {
		if v == nil {
			var zero T
			return zero, ErrUndefinedPosition
		}
		return *v, nil
	})
}

// Advance computes the next held value from the current one, mutating the
// position in place. Advancing never fails; clearing the position is how an
// Advance policy signals that the traversal is exhausted.
type Advance[T any] interface {
	Next(*Position[T])
}

// AdvanceFunc turns an ordinary function into an Advance policy.
// Injecting an arbitrary AdvanceFunc is how custom stepping rules are
// expressed without introducing a new cursor type per traversal kind.
type AdvanceFunc[T any] func(*Position[T])

func (fn AdvanceFunc[T]) Next(p *Position[T]) { fn(p) }

// Step advances a numeric position by a constant amount.
// An already undefined position is left untouched.
func Step[T constraints.Integer](step T) Advance[T] {
	return AdvanceFunc[T](func(p *Position[T]) {
		if v, ok := p.Lookup(); ok {
			p.Set(v + step)
		}
	})
}
