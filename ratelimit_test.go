// SPDX-License-Identifier: GPL-3.0-or-later

package pipe

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fakeClock is a manually advanced clock for deterministic RateLimit tests.
type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

func (f *fakeClock) Advance(d time.Duration) { f.now = f.now.Add(d) }

func TestRateLimitBound(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	rl := NewRateLimitEqual(0, 10*time.Second, clock.Now, nil)

	// first distinct value forwards immediately (deadline starts at zero time)
	assert.Equal(t, 1, rl.Inject(1))

	// within the interval: suppressed, buffered as pending
	assert.Equal(t, 1, rl.Inject(2))
	assert.Equal(t, 1, rl.Extract())

	// trigger called before the deadline stays deferred, even though a
	// value is pending
	out, triggered := rl.Trigger()
	assert.False(t, triggered)
	assert.Equal(t, 1, out)
	assert.Equal(t, 1, rl.Extract(), "pending value not yet flushed")

	// once the deadline passes, trigger flushes the pending value
	clock.Advance(10 * time.Second)
	out, triggered = rl.Trigger()
	assert.True(t, triggered)
	assert.Equal(t, 2, out)

	_, triggered = rl.Trigger()
	assert.False(t, triggered, "nothing pending after a successful trigger")

	clock.Advance(11 * time.Second)
	assert.Equal(t, 3, rl.Inject(3), "deadline has passed, forwards immediately")
}
