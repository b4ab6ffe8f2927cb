// SPDX-License-Identifier: GPL-3.0-or-later

package pipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThenInjectChains(t *testing.T) {
	double := Wrap[int, int](doublerLeaf{})
	chain := Then(double, double)
	assert.Equal(t, 20, chain.Inject(5))
}

// doublerLeaf implements Inject and ExitCast identically.
type doublerLeaf struct{}

func (doublerLeaf) Inject(in int) int   { return in * 2 }
func (doublerLeaf) ExitCast(in int) int { return in * 2 }

func TestIdentityInsertionProducesEquivalentInject(t *testing.T) {
	plain := Entry[int]()
	withIdentity := Then(Entry[int](), NewIdentity[int]())
	assert.Equal(t, plain.Inject(5), withIdentity.Inject(5))
}

func TestExtractDecayRule(t *testing.T) {
	t.Run("borrow survives through an identity tail", func(t *testing.T) {
		buf := NewBuffer(0)
		chain := Then(buf, NewIdentity[int]())
		node := asNode2(chain)
		buf.Inject(11)
		v, ok := node.extractInfo()
		require.True(t, ok)
		assert.Equal(t, 11, v.Get())
		assert.True(t, v.IsBorrowed())
	})

	t.Run("borrow decays to owned through a non-identity tail", func(t *testing.T) {
		buf := NewBuffer(0)
		chain := Then(buf, Wrap[int, int](doublerLeaf{}))
		node := asNode2(chain)
		buf.Inject(11)
		v, ok := node.extractInfo()
		require.True(t, ok)
		assert.Equal(t, 22, v.Get())
		assert.False(t, v.IsBorrowed())
	})
}

func TestTriggerPropagation(t *testing.T) {
	trig := NewTriggeredEqual(0)
	chain := Then(trig, Wrap[int, int](doublerLeaf{}))

	trig.Inject(5)
	out, triggered := chain.Trigger()
	assert.True(t, triggered)
	assert.Equal(t, 10, out)

	out, triggered = chain.Trigger()
	assert.False(t, triggered, "no new value was injected since the last trigger")
	assert.Equal(t, 10, out, "untriggered path still forwards the held value through exit_cast")
}

func TestAsNode2PanicsOnForeignSegment(t *testing.T) {
	require.Panics(t, func() {
		asNode2[int, int](fakeSegment{})
	})
}

// fakeSegment satisfies Segment but not the unexported compositionNode
// contract, exercising asNode2's guard.
type fakeSegment struct{}

func (fakeSegment) Inject(in int) int     { return in }
func (fakeSegment) Extract() int          { return 0 }
func (fakeSegment) EntryCast(out int) int { return out }
func (fakeSegment) ExitCast(in int) int   { return in }
func (fakeSegment) Trigger() (int, bool)  { return 0, false }
