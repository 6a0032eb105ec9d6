package traverse

import "golang.org/x/exp/constraints"

// Span returns a Range stepping from begin towards end by the given step,
// which defaults to 1.
//
// The traversal yields every value reachable from begin by whole steps
// without passing end, so a step that does not evenly divide end-begin still
// stops at the last reachable value rather than overshooting:
//
//	traverse.Span(2, 10, 3) // yields 2, 5, 8
//
// A zero step is programmer error.
func Span[T constraints.Integer](begin, end T, step ...T) Range[T, T] {
	inc := T(1)
	if 0 < len(step) {
		inc = step[0]
	}
	if inc == 0 {
		panic("traverse: Span requires a non-zero step")
	}
	// the end sentinel must itself be reachable by whole steps from begin,
	// one step past the last yielded value
	actualEnd := end
	if rem := (end - begin) % inc; rem != 0 {
		actualEnd = end + (inc - rem)
	}
	return Wrap(
		NewCursor(At(begin), Step(inc), Itself[T](), SameValue[T]()),
		NewCursor(At(actualEnd), Step(inc), Itself[T](), SameValue[T]()),
	)
}

// Count returns a Range over 0, 1, ... n-1.
func Count[T constraints.Integer](n T) Range[T, T] {
	return Span(0, n)
}

// openCount is an unbounded zero-based counter.
// Its cursors never compare equal, so on its own it never terminates;
// it is meant to be zipped with a finite traversal placed after it.
func openCount() Range[int, int] {
	counter := func() Cursor[int, int] {
		return NewCursor(At(0), Step(1), Itself[int](), Never[int]())
	}
	return Wrap(counter(), counter())
}
