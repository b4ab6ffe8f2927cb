// SPDX-License-Identifier: GPL-3.0-or-later

package pipe

import "time"

// RateLimitMetrics receives suppression/forward counts from
// [NewRateLimit], letting the caller wire them to a metrics backend
// (see [PrometheusSink] in metrics.go).
type RateLimitMetrics interface {
	IncForwarded()
	IncSuppressed()
}

type discardRateLimitMetrics struct{}

func (discardRateLimitMetrics) IncForwarded()  {}
func (discardRateLimitMetrics) IncSuppressed() {}

// rateLimitSeg is the leaf behind [NewRateLimit]: buffers at most one
// pending, differing value. Inject forwards immediately (and resets the
// deadline) if now has passed the suppression deadline; otherwise it
// marks the pending value changed and defers it. Trigger forwards the
// pending value, clears changed, and reports triggered=true only once
// both a value is pending and the deadline has passed; a trigger called
// before the deadline stays deferred and reports triggered=false.
type rateLimitSeg[T any] struct {
	now      func() time.Time
	compare  func(a, b T) bool
	interval time.Duration
	metrics  RateLimitMetrics

	last     T
	pending  T
	changed  bool
	deadline time.Time
}

var (
	_ Injector[int, int] = (*rateLimitSeg[int])(nil)
	_ Extractor[int]     = (*rateLimitSeg[int])(nil)
	_ Triggerer[int]     = (*rateLimitSeg[int])(nil)
)

func (r *rateLimitSeg[T]) Inject(in T) T {
	if r.compare(r.last, in) {
		return r.last
	}
	now := r.now()
	if !now.Before(r.deadline) {
		r.last = in
		r.changed = false
		r.deadline = now.Add(r.interval)
		r.metrics.IncForwarded()
		return r.last
	}
	r.pending = in
	r.changed = true
	r.metrics.IncSuppressed()
	return r.last
}

func (r *rateLimitSeg[T]) Extract() T {
	return r.last
}

func (r *rateLimitSeg[T]) Trigger() (T, bool) {
	if !r.changed || r.now().Before(r.deadline) {
		return r.last, false
	}
	r.last = r.pending
	r.changed = false
	r.deadline = r.now().Add(r.interval)
	r.metrics.IncForwarded()
	return r.last, true
}

// NewRateLimit returns a segment that forwards an injected value
// immediately if interval has elapsed since the last forward, and
// otherwise buffers it as pending (dropping any earlier pending value)
// until [Segment.Trigger] is called. now is the clock to use (pass
// [time.Now], or a fake clock for testing). Pass a nil metrics to
// discard suppression/forward counts.
func NewRateLimit[T any](initial T, compare func(a, b T) bool, interval time.Duration, now func() time.Time, metrics RateLimitMetrics) Segment[T, T] {
	if metrics == nil {
		metrics = discardRateLimitMetrics{}
	}
	return Wrap[T, T](&rateLimitSeg[T]{
		now:      now,
		compare:  compare,
		interval: interval,
		metrics:  metrics,
		last:     initial,
	})
}

// NewRateLimitEqual is [NewRateLimit] for comparable T, using == as
// compare.
func NewRateLimitEqual[T comparable](initial T, interval time.Duration, now func() time.Time, metrics RateLimitMetrics) Segment[T, T] {
	return NewRateLimit(initial, func(a, b T) bool { return a == b }, interval, now, metrics)
}
