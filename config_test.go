// SPDX-License-Identifier: GPL-3.0-or-later

package pipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	cfg := NewConfig()
	require.NotNil(t, cfg)

	assert.NotNil(t, cfg.TimeNow)
	assert.False(t, cfg.TimeNow().IsZero())

	assert.Equal(t, DefaultSLogger(), cfg.Logger)
	assert.NotNil(t, cfg.ErrorSink)
	assert.NotNil(t, cfg.IDGen)
	assert.NotEmpty(t, cfg.IDGen())
	assert.Nil(t, cfg.Tracer)
}

func TestConfigOrDefault(t *testing.T) {
	t.Run("nil returns defaults", func(t *testing.T) {
		cfg := configOrDefault(nil)
		require.NotNil(t, cfg)
		assert.NotNil(t, cfg.TimeNow)
	})

	t.Run("non-nil is passed through unchanged", func(t *testing.T) {
		custom := &Config{TimeNow: NewConfig().TimeNow}
		got := configOrDefault(custom)
		assert.Same(t, custom, got)
	})
}

type panicLeaf struct{}

func (panicLeaf) Inject(in int) int {
	panic("boom")
}

func TestCappedPipeRecoversPanicThroughConfig(t *testing.T) {
	var reported []string
	logger := &recordingSLogger{}
	cfg := &Config{
		TimeNow: NewConfig().TimeNow,
		Logger:  logger,
		ErrorSink: ObservabilitySinkFunc(func(segment, name string, err error) {
			reported = append(reported, segment+":"+err.Error())
		}),
		IDGen: NewConfig().IDGen,
	}

	p := Cap(Wrap[int, int](panicLeaf{}), cfg)
	out := p.Inject(5)

	assert.Equal(t, 0, out.Get(), "a recovered panic surfaces as the zero value")
	require.Len(t, reported, 1)
	assert.Contains(t, reported[0], "CappedPipe")
	assert.NotEmpty(t, logger.debugged, "every inject logs through cfg.Logger regardless of outcome")
}
