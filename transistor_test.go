// SPDX-License-Identifier: GPL-3.0-or-later

package pipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransistorGatesOnExternalPipe(t *testing.T) {
	gate := Cap(NewBuffer(false), nil)
	tr := NewTransistor[int](gate, false)

	assert.Equal(t, 0, tr.Inject(5), "gate closed: yields zero value")

	gate.Inject(true)
	assert.Equal(t, 5, tr.Inject(5), "gate open: forwards value")
}

func TestTransistorInverted(t *testing.T) {
	gate := Cap(NewBuffer(true), nil)
	tr := NewTransistor[int](gate, true)

	assert.Equal(t, 0, tr.Inject(5), "inverted + gate true: closed")

	gate.Inject(false)
	assert.Equal(t, 5, tr.Inject(5), "inverted + gate false: open")
}
