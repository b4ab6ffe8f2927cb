// SPDX-License-Identifier: GPL-3.0-or-later

package pipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetReadsExternalSource(t *testing.T) {
	cell := NewExternalCell(42)
	g := NewGet[int]("cell", cell, nil)

	assert.Equal(t, 42, g.Inject(0), "input is ignored")
	assert.Equal(t, 42, g.Extract())

	cell.Write(99)
	assert.Equal(t, 99, g.Extract(), "re-reads on every call")
}

func TestDecodingObjectDecodesMap(t *testing.T) {
	type config struct {
		Name string
		Port int
	}
	obj := NewDecodingObject[config](map[string]any{"name": "svc", "port": 8080})
	g := NewGet[config]("config", obj, nil)

	got := g.Extract()
	assert.Equal(t, "svc", got.Name)
	assert.Equal(t, 8080, got.Port)
}

func TestSetWritesAndReadsBack(t *testing.T) {
	cell := NewExternalCell(0)
	s := NewSet[int]("cell", cell, cell, nil)

	assert.Equal(t, 5, s.Inject(5))
	assert.Equal(t, 5, s.Extract())
}
