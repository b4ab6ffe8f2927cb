// SPDX-License-Identifier: GPL-3.0-or-later

package pipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCastValueIdentity(t *testing.T) {
	out, ok := castValue[int, int](5)
	require.True(t, ok)
	assert.Equal(t, 5, out)
}

func TestCastValueSaturatingNarrowing(t *testing.T) {
	cases := []struct {
		name string
		in   int
		want int8
	}{
		{"in range", 10, 10},
		{"saturates high", 1000, 127},
		{"saturates low", -1000, -128},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, ok := castValue[int, int8](tc.in)
			require.True(t, ok)
			assert.Equal(t, tc.want, out)
		})
	}
}

func TestCastValueSignedToUnsignedClampsNegative(t *testing.T) {
	out, ok := castValue[int, uint8](-5)
	require.True(t, ok)
	assert.Equal(t, uint8(0), out)
}

func TestCastValueFloatToInt(t *testing.T) {
	out, ok := castValue[float64, int](3.9)
	require.True(t, ok)
	assert.Equal(t, 3, out)
}

func TestCastValueNoLegalConversion(t *testing.T) {
	_, ok := castValue[string, chan int]("x")
	assert.False(t, ok)
}

func TestCastValueStaticStringConversion(t *testing.T) {
	type myString string
	out, ok := castValue[string, myString]("hi")
	require.True(t, ok)
	assert.Equal(t, myString("hi"), out)
}
