package traverse_test

import (
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/traverse"
)

func counting(start traverse.Position[int]) traverse.Cursor[int, int] {
	return traverse.NewCursor(start, traverse.Step(1), traverse.Itself[int](), traverse.SameValue[int]())
}

func TestNewCursor(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("it starts on the given position", func(t *testcase.T) {
		n := t.Random.Int()
		c := counting(traverse.At(n))
		assert.True(t, c.IsValid())
		got, err := c.Value()
		assert.NoError(t, err)
		assert.Equal(t, n, got)
	})

	s.Test("a missing policy is programmer error", func(t *testcase.T) {
		assert.Panic(t, func() {
			traverse.NewCursor[int, int](traverse.At(0), nil, traverse.Itself[int](), traverse.SameValue[int]())
		})
		assert.Panic(t, func() {
			traverse.NewCursor[int, int](traverse.At(0), traverse.Step(1), nil, traverse.SameValue[int]())
		})
		assert.Panic(t, func() {
			traverse.NewCursor[int, int](traverse.At(0), traverse.Step(1), traverse.Itself[int](), nil)
		})
	})
}

func TestCursor_Advance(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("it applies the injected stepping rule", func(t *testcase.T) {
		c := counting(traverse.At(0))
		n := t.Random.IntB(1, 10)
		for i := 0; i < n; i++ {
			c.Advance()
		}
		got, err := c.Value()
		assert.NoError(t, err)
		assert.Equal(t, n, got)
	})

	s.Test("an arbitrary callback can exhaust the traversal", func(t *testcase.T) {
		doubleUpTo8 := traverse.AdvanceFunc[int](func(p *traverse.Position[int]) {
			v, ok := p.Lookup()
			if !ok {
				return
			}
			if 8 < v*2 {
				p.Clear()
				return
			}
			p.Set(v * 2)
		})
		c := traverse.NewCursor(traverse.At(1), doubleUpTo8, traverse.Itself[int](), traverse.SameValue[int]())

		var got []int
		for c.IsValid() {
			v, err := c.Value()
			assert.NoError(t, err)
			got = append(got, v)
			c.Advance()
		}
		assert.Equal(t, []int{1, 2, 4, 8}, got)
		assert.False(t, c.IsValid())
	})

	s.Test("advancing never moves an exhausted counting cursor back to defined", func(t *testcase.T) {
		c := counting(traverse.Position[int]{})
		t.Random.Repeat(1, 5, func() { c.Advance() })
		assert.False(t, c.IsValid())
	})
}

func TestCursor_Value(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("reading an undefined position fails with ErrUndefinedPosition", func(t *testcase.T) {
		c := counting(traverse.Position[int]{})
		_, err := c.Value()
		assert.ErrorIs(t, err, traverse.ErrUndefinedPosition)
	})

	s.Test("reading applies the dereference policy", func(t *testcase.T) {
		exp := t.Random.Int()
		c := traverse.NewCursor(traverse.At(&exp), traverse.AdvanceFunc[*int](func(p *traverse.Position[*int]) { p.Clear() }), traverse.Indirect[int](), traverse.SameAddress[int]())
		got, err := c.Value()
		assert.NoError(t, err)
		assert.Equal(t, exp, got)
	})

	s.Test("reading does not mutate the cursor", func(t *testcase.T) {
		c := counting(traverse.At(7))
		t.Random.Repeat(2, 5, func() {
			got, err := c.Value()
			assert.NoError(t, err)
			assert.Equal(t, 7, got)
		})
	})
}

func TestCursor_Equal(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("two undefined positions are equal regardless of how they became undefined", func(t *testcase.T) {
		a := counting(traverse.Position[int]{})
		exhaust := traverse.AdvanceFunc[int](func(p *traverse.Position[int]) { p.Clear() })
		b := traverse.NewCursor(traverse.At(t.Random.Int()), exhaust, traverse.Itself[int](), traverse.SameValue[int]())
		b.Advance()
		assert.True(t, a.Equal(b))
		assert.True(t, b.Equal(a))
	})

	s.Test("a defined and an undefined position are never equal", func(t *testcase.T) {
		a := counting(traverse.At(t.Random.Int()))
		b := counting(traverse.Position[int]{})
		assert.False(t, a.Equal(b))
		assert.False(t, b.Equal(a))
	})

	s.Test("two defined positions delegate to the compare policy", func(t *testcase.T) {
		n := t.Random.Int()
		assert.True(t, counting(traverse.At(n)).Equal(counting(traverse.At(n))))
		assert.False(t, counting(traverse.At(n)).Equal(counting(traverse.At(n+1))))
	})

	s.Test("with the Never policy defined positions are never equal, not even to themselves", func(t *testcase.T) {
		mk := func(v int) traverse.Cursor[int, int] {
			return traverse.NewCursor(traverse.At(v), traverse.Step(1), traverse.Itself[int](), traverse.Never[int]())
		}
		n := t.Random.Int()
		assert.False(t, mk(n).Equal(mk(n)))
	})

	s.Test("with the SameAddress policy identity decides, not the pointed value", func(t *testcase.T) {
		v1, v2 := 42, 42
		mk := func(p *int) traverse.Cursor[*int, int] {
			exhaust := traverse.AdvanceFunc[*int](func(p *traverse.Position[*int]) { p.Clear() })
			return traverse.NewCursor(traverse.At(p), exhaust, traverse.Indirect[int](), traverse.SameAddress[int]())
		}
		assert.True(t, mk(&v1).Equal(mk(&v1)))
		assert.False(t, mk(&v1).Equal(mk(&v2)))
	})
}

func TestCursor_copySemantics(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("copies advance independently", func(t *testcase.T) {
		a := counting(traverse.At(0))
		b := a
		b.Advance()
		av, _ := a.Value()
		bv, _ := b.Value()
		assert.Equal(t, 0, av)
		assert.Equal(t, 1, bv)
	})
}
