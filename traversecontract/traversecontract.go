// Package traversecontract provides a reusable specification suite asserting
// the behavioural laws every finite Range made by this module must honour.
package traversecontract

import (
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/traverse"
)

// Make func meant to create a new instance of the testing subject.
type Make[Subject any] = func(tb testing.TB) Subject

// Contract represents an executable behavioural specification.
type Contract interface {
	testcase.Suite
	Test(*testing.T)
	Benchmark(*testing.B)
}

// Range returns a suite verifying the traversal laws of ranges made by mk.
// The made range must be finite and must yield at least one value.
func Range[T, V any](mk Make[traverse.Range[T, V]]) Contract {
	s := testcase.NewSpec(nil)

	subject := testcase.Let(s, func(t *testcase.T) traverse.Range[T, V] {
		return mk(t)
	})

	s.Then("the begin cursor starts on a valid position", func(t *testcase.T) {
		assert.True(t, subject.Get(t).Begin().IsValid())
	})

	s.Then("values can be collected from the range", func(t *testcase.T) {
		vs, err := traverse.Collect(subject.Get(t))
		assert.NoError(t, err)
		assert.NotEmpty(t, vs)
	})

	s.Then("the traversal terminates", func(t *testcase.T) {
		c, end := subject.Get(t).Begin(), subject.Get(t).End()
		for i := 0; !c.Equal(end); i++ {
			assert.True(t, i < 1<<20, "expected the range to reach its end")
			c.Advance()
		}
	})

	s.Then("a manual begin-equal-advance drive matches the sequence bridge", func(t *testcase.T) {
		var manual []V
		end := subject.Get(t).End()
		for c := subject.Get(t).Begin(); !c.Equal(end); c.Advance() {
			v, err := c.Value()
			assert.NoError(t, err)
			manual = append(manual, v)
		}
		collected, err := traverse.Collect(subject.Get(t))
		assert.NoError(t, err)
		assert.Equal(t, manual, collected)
	})

	s.Then("the range can be traversed repeatedly with identical results", func(t *testcase.T) {
		vs1, err := traverse.Collect(subject.Get(t))
		assert.NoError(t, err)
		vs2, err := traverse.Collect(subject.Get(t))
		assert.NoError(t, err)
		assert.Equal(t, vs1, vs2)
	})

	s.Then("begin and end accessors hand out copies", func(t *testcase.T) {
		r := subject.Get(t)
		c := r.Begin()
		c.Advance()
		assert.False(t, c.Equal(r.Begin()), "advancing a returned cursor must not move the stored one")
	})

	return s.AsSuite("Range")
}
