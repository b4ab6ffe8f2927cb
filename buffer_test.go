// SPDX-License-Identifier: GPL-3.0-or-later

package pipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBufferIdempotence(t *testing.T) {
	b := NewBuffer(0)
	assert.Equal(t, 5, b.Inject(5))
	assert.Equal(t, 5, b.Extract())
	assert.Equal(t, 5, b.Extract(), "extract does not consume")
}

func TestBufferInitialValue(t *testing.T) {
	b := NewBuffer("seed")
	assert.Equal(t, "seed", b.Extract())
}
