// SPDX-License-Identifier: GPL-3.0-or-later

package pipe

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertRoundTrip(t *testing.T) {
	conv := ConverterFunc[int, string]{
		ToFunc:   strconv.Itoa,
		FromFunc: func(s string) int { n, _ := strconv.Atoi(s); return n },
	}
	c := NewConvert[int, string](conv)

	out := c.Inject(42)
	assert.Equal(t, "42", out)
	assert.Equal(t, "42", c.ExitCast(42))
	assert.Equal(t, 42, c.EntryCast("42"))
}

func TestConverterFuncSatisfiesConverter(t *testing.T) {
	var _ Converter[int, string] = ConverterFunc[int, string]{
		ToFunc:   strconv.Itoa,
		FromFunc: func(string) int { return 0 },
	}
	require.True(t, true)
}
