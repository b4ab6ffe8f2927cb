// SPDX-License-Identifier: GPL-3.0-or-later

package pipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitValueOwned(t *testing.T) {
	v := OwnedExitValue(42)
	assert.False(t, v.IsBorrowed())
	assert.Equal(t, 42, v.Get())

	var dst int
	v.MoveInto(&dst)
	assert.Equal(t, 42, dst)
}

func TestExitValueBorrowed(t *testing.T) {
	cell := 7
	v := BorrowedExitValue(&cell)
	assert.True(t, v.IsBorrowed())
	assert.Equal(t, 7, v.Get())

	cell = 99
	assert.Equal(t, 99, v.Get(), "a borrowed ExitValue reflects live mutation of the cell until moved out")

	var dst int
	v.MoveInto(&dst)
	assert.Equal(t, 99, dst)
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(OwnedExitValue("x"), "x"))
	assert.False(t, Equal(OwnedExitValue("x"), "y"))
}

func TestNotEqual(t *testing.T) {
	assert.True(t, NotEqual(OwnedExitValue("x"), "y"))
	assert.False(t, NotEqual(OwnedExitValue("x"), "x"))
}

func TestOrderingRelations(t *testing.T) {
	v := OwnedExitValue(5)

	assert.True(t, Less(v, 6))
	assert.False(t, Less(v, 5))

	assert.True(t, LessOrEqual(v, 5))
	assert.True(t, LessOrEqual(v, 6))
	assert.False(t, LessOrEqual(v, 4))

	assert.True(t, Greater(v, 4))
	assert.False(t, Greater(v, 5))

	assert.True(t, GreaterOrEqual(v, 5))
	assert.True(t, GreaterOrEqual(v, 4))
	assert.False(t, GreaterOrEqual(v, 6))
}
