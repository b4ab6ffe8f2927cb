// SPDX-License-Identifier: GPL-3.0-or-later

package pipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupAddRejectsDoubleOwnership(t *testing.T) {
	p := Cap(NewBuffer(0), nil)
	g1 := NewGroup()
	g2 := NewGroup()

	require.NoError(t, g1.Add(p))
	err := g2.Add(p)
	assert.Error(t, err)
	assert.Equal(t, 1, g1.Size())
	assert.Equal(t, 0, g2.Size())
}

func TestGroupRemoveAllowsReownership(t *testing.T) {
	p := Cap(NewBuffer(0), nil)
	g1 := NewGroup()
	g2 := NewGroup()

	require.NoError(t, g1.Add(p))
	g1.Remove(p)
	assert.NoError(t, g2.Add(p))
	assert.Equal(t, 1, g2.Size())
}

func TestGroupTriggerAggregatesMembers(t *testing.T) {
	g := NewGroup()
	trig := Cap(NewTriggeredEqual(0), nil)
	plain := Cap(NewBuffer(0), nil)
	require.NoError(t, g.Add(trig))
	require.NoError(t, g.Add(plain))

	assert.False(t, g.Trigger(), "nothing injected yet")

	trig.Inject(1)
	assert.True(t, g.Trigger())
}

func TestGroupDestroyAllClearsMembers(t *testing.T) {
	g := NewGroup()
	p := Cap(NewBuffer(0), nil)
	require.NoError(t, g.Add(p))
	require.Equal(t, 1, g.Size())

	g.DestroyAll()
	assert.Equal(t, 0, g.Size())
	assert.Empty(t, g.Members())
}

func TestDefaultGroupIsSingleton(t *testing.T) {
	assert.Same(t, DefaultGroup(), DefaultGroup())
}
