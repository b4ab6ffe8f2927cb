// SPDX-License-Identifier: GPL-3.0-or-later

package pipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtendInsertsBetweenAndReExtracts(t *testing.T) {
	p := Exit(NewBuffer(42), nil)

	var downstream []int
	oldSink := &captureEntry[int]{out: &downstream}
	p.Connect(oldSink)
	downstream = nil // clear the snapshot forwarded by Connect itself

	next := Exit(NewIdentity[int](), nil)
	Extend(p, next)

	conn, ok := next.Connection()
	assert.True(t, ok, "next inherits p's previous connection")
	assert.Same(t, oldSink, conn)

	connP, ok := p.Connection()
	assert.True(t, ok)
	assert.Same(t, next, connP)

	assert.Equal(t, []int{42}, downstream, "p's buffered value is re-extracted through next to the old downstream")

	downstream = nil
	p.Inject(7)
	assert.Equal(t, []int{7}, downstream, "subsequent injects flow p -> next -> old downstream")
}

func TestExtendWithNoPriorConnectionLeavesNextDisconnected(t *testing.T) {
	p := Exit(NewBuffer(1), nil)
	next := Exit(NewIdentity[int](), nil)

	Extend(p, next)

	_, ok := next.Connection()
	assert.False(t, ok, "next has no prior connection to inherit")

	connP, ok := p.Connection()
	assert.True(t, ok)
	assert.Same(t, next, connP)
}
