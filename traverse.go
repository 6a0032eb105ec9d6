// Package traverse lets you assemble custom sequence traversals out of small,
// swappable policies instead of writing a new iterator type for every data shape.
//
// # Summary
//
// A traversal is described by three independent concerns:
// how to tell that two positions are equivalent, which is how reaching the end is detected (Compare),
// how to project the held position into the externally visible value (Dereference),
// and how to step from the current position to the next one (Advance).
// A Cursor binds one policy of each family to an optional-value Position,
// and a Range pairs a begin and an end Cursor into a single traversable unit.
// The combinators (Span, Count, Slice, Reverse, Zip, Enumerate) are nothing more
// than pre-selected policy bundles wrapped this way.
//
// The package manages no external resources, provides no thread-safety
// and persists nothing; it is a traversal-composition mechanism, not a container.
package traverse

// Error is an implementation for the error interface that allows declaring exported error constants.
type Error string

// Error implement the error interface
func (err Error) Error() string { return string(err) }

// ErrUndefinedPosition is returned when the value of a cursor is read
// while its position is undefined, either because the cursor was constructed
// without a starting value or because advancing exhausted it.
//
// The condition is a caller contract violation rather than a recoverable fault:
// check Cursor.IsValid or compare against the end cursor before reading.
const ErrUndefinedPosition Error = "traverse: attempt to read an undefined cursor position"
