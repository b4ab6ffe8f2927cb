// SPDX-License-Identifier: GPL-3.0-or-later

package pipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCastSaturatesOutOfRange(t *testing.T) {
	c := NewCast[int, int8]()
	assert.Equal(t, int8(127), c.Inject(1000))
	assert.Equal(t, int8(-128), c.Inject(-1000))
}

func TestCastRoundTripsInRange(t *testing.T) {
	c := NewCast[int, int8]()
	out := c.ExitCast(42)
	back := c.EntryCast(out)
	assert.Equal(t, 42, back)
}

func TestCastPanicsOnIllegalConversion(t *testing.T) {
	c := NewCast[string, chan int]()
	require.Panics(t, func() {
		c.Inject("x")
	})
}
