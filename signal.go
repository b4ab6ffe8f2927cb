// SPDX-License-Identifier: GPL-3.0-or-later

package pipe

import "github.com/flowlib/pipe/bus"

// signalSeg is the leaf behind [NewSignal]: on both Inject and
// ExitCast, publishes the value to an external [bus.Bus] under key,
// then returns the value unchanged. A publish failure is reported to
// sink rather than propagated, since inject/exit_cast must be total.
type signalSeg[T any] struct {
	b    bus.Bus[T]
	key  string
	sink ObservabilitySink
	name string
}

var (
	_ Injector[int, int]  = (*signalSeg[int])(nil)
	_ ExitCaster[int, int] = (*signalSeg[int])(nil)
)

func (s *signalSeg[T]) publish(v T) T {
	if err := s.b.Publish(s.key, v); err != nil {
		s.sink.SegmentError("Signal", s.name, err)
	}
	return v
}

func (s *signalSeg[T]) Inject(in T) T {
	return s.publish(in)
}

func (s *signalSeg[T]) ExitCast(in T) T {
	return s.publish(in)
}

// NewSignal returns a segment that publishes every injected (or
// exit-cast) value to b under key, then returns it unchanged. key may
// be "" when the bus implementation treats that as a default topic
// (see [bus.MemBus]'s wildcard subscription). Pass a nil sink to use
// [DefaultObservabilitySink].
func NewSignal[T any](name string, b bus.Bus[T], key string, sink ObservabilitySink) Segment[T, T] {
	if sink == nil {
		sink = DefaultObservabilitySink
	}
	return Wrap[T, T](&signalSeg[T]{b: b, key: key, sink: sink, name: name})
}
