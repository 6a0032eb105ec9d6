package traverse

// Pair is a fixed-size composite of two values.
type Pair[A, B any] struct {
	A A
	B B
}

// Triple is a fixed-size composite of three values.
type Triple[A, B, C any] struct {
	A A
	B B
	C C
}

// Zip returns a Range traversing both operands simultaneously:
// every overall step advances each operand cursor once,
// and every read repackages the operands' current values as a Pair.
//
// Termination is governed solely by the LAST operand: the zipped position
// equals the zipped end as soon as b's cursor equals b's end, no matter where
// a stands. Order the shortest-known operand last; reading an earlier operand
// past its own end fails with ErrUndefinedPosition.
func Zip[TA, VA, TB, VB any](a Range[TA, VA], b Range[TB, VB]) Range[Pair[Cursor[TA, VA], Cursor[TB, VB]], Pair[VA, VB]] {
	advance := AdvanceFunc[Pair[Cursor[TA, VA], Cursor[TB, VB]]](func(p *Position[Pair[Cursor[TA, VA], Cursor[TB, VB]]]) {
		cs, ok := p.Lookup()
		if !ok {
			return
		}
		cs.A.Advance()
		cs.B.Advance()
		p.Set(cs)
	})
	deref := DerefFunc[Pair[Cursor[TA, VA], Cursor[TB, VB]], Pair[VA, VB]](func(cs Pair[Cursor[TA, VA], Cursor[TB, VB]]) (Pair[VA, VB], error) {
		var out Pair[VA, VB]
		var err error
		if out.A, err = cs.A.Value(); err != nil {
			return out, err
		}
		if out.B, err = cs.B.Value(); err != nil {
			return out, err
		}
		return out, nil
	})
	// only the last operand decides equivalence
	compare := CompareFunc[Pair[Cursor[TA, VA], Cursor[TB, VB]]](func(x, y Pair[Cursor[TA, VA], Cursor[TB, VB]]) bool {
		return x.B.Equal(y.B)
	})
	return Wrap(
		NewCursor(At(Pair[Cursor[TA, VA], Cursor[TB, VB]]{A: a.Begin(), B: b.Begin()}), advance, deref, compare),
		NewCursor(At(Pair[Cursor[TA, VA], Cursor[TB, VB]]{A: a.End(), B: b.End()}), advance, deref, compare),
	)
}

// Zip3 is Zip for three operands; the last operand governs termination.
func Zip3[TA, VA, TB, VB, TC, VC any](a Range[TA, VA], b Range[TB, VB], c Range[TC, VC]) Range[Triple[Cursor[TA, VA], Cursor[TB, VB], Cursor[TC, VC]], Triple[VA, VB, VC]] {
	advance := AdvanceFunc[Triple[Cursor[TA, VA], Cursor[TB, VB], Cursor[TC, VC]]](func(p *Position[Triple[Cursor[TA, VA], Cursor[TB, VB], Cursor[TC, VC]]]) {
		cs, ok := p.Lookup()
		if !ok {
			return
		}
		cs.A.Advance()
		cs.B.Advance()
		cs.C.Advance()
		p.Set(cs)
	})
	deref := DerefFunc[Triple[Cursor[TA, VA], Cursor[TB, VB], Cursor[TC, VC]], Triple[VA, VB, VC]](func(cs Triple[Cursor[TA, VA], Cursor[TB, VB], Cursor[TC, VC]]) (Triple[VA, VB, VC], error) {
		var out Triple[VA, VB, VC]
		var err error
		if out.A, err = cs.A.Value(); err != nil {
			return out, err
		}
		if out.B, err = cs.B.Value(); err != nil {
			return out, err
		}
		if out.C, err = cs.C.Value(); err != nil {
			return out, err
		}
		return out, nil
	})
	compare := CompareFunc[Triple[Cursor[TA, VA], Cursor[TB, VB], Cursor[TC, VC]]](func(x, y Triple[Cursor[TA, VA], Cursor[TB, VB], Cursor[TC, VC]]) bool {
		return x.C.Equal(y.C)
	})
	return Wrap(
		NewCursor(At(Triple[Cursor[TA, VA], Cursor[TB, VB], Cursor[TC, VC]]{A: a.Begin(), B: b.Begin(), C: c.Begin()}), advance, deref, compare),
		NewCursor(At(Triple[Cursor[TA, VA], Cursor[TB, VB], Cursor[TC, VC]]{A: a.End(), B: b.End(), C: c.End()}), advance, deref, compare),
	)
}

// Enumerate returns a Range yielding (index, element pointer) pairs over the
// given slice, the index starting at zero. It is Zip of an unbounded counter
// and the slice traversal, the slice placed last so that its exhaustion alone
// terminates the traversal.
func Enumerate[V any](vs []V) Range[Pair[Cursor[int, int], Cursor[int, *V]], Pair[int, *V]] {
	return Zip(openCount(), Slice(vs))
}
