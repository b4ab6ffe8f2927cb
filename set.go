// SPDX-License-Identifier: GPL-3.0-or-later

package pipe

// ExternalSink is the external-object contract Set writes to.
type ExternalSink[T any] interface {
	Write(T) error
}

// ExternalCell is a simple in-process [ExternalSource]/[ExternalSink]
// implementation: a mutable box shared between a [NewSet] segment and,
// typically, a paired [NewGet] segment or another Set's read-back.
type ExternalCell[T any] struct {
	value T
}

var (
	_ ExternalSource[int] = (*ExternalCell[int])(nil)
	_ ExternalSink[int]   = (*ExternalCell[int])(nil)
)

// NewExternalCell returns an [ExternalCell] initialized to initial.
func NewExternalCell[T any](initial T) *ExternalCell[T] {
	return &ExternalCell[T]{value: initial}
}

// Read implements [ExternalSource].
func (c *ExternalCell[T]) Read() (T, error) {
	return c.value, nil
}

// Write implements [ExternalSink].
func (c *ExternalCell[T]) Write(v T) error {
	c.value = v
	return nil
}

// setSeg is the leaf behind [NewSet]: on Inject, writes the injected
// value to sink and forwards it; on Extract, reads back from source.
type setSeg[T any] struct {
	sink    ExternalSink[T]
	source  ExternalSource[T]
	errSink ObservabilitySink
	name    string
}

var (
	_ Injector[int, int] = (*setSeg[int])(nil)
	_ Extractor[int]     = (*setSeg[int])(nil)
)

func (s *setSeg[T]) Inject(in T) T {
	if err := s.sink.Write(in); err != nil {
		s.errSink.SegmentError("Set", s.name, err)
	}
	return in
}

func (s *setSeg[T]) Extract() T {
	v, err := s.source.Read()
	if err != nil {
		s.errSink.SegmentError("Set", s.name, err)
	}
	return v
}

// NewSet returns a segment that writes each injected value to sink and
// forwards it unchanged; Extract reads the current value back from
// source (typically the same backing object, e.g. an [ExternalCell]).
// Pass a nil errSink to use [DefaultObservabilitySink].
func NewSet[T any](name string, sink ExternalSink[T], source ExternalSource[T], errSink ObservabilitySink) Segment[T, T] {
	if errSink == nil {
		errSink = DefaultObservabilitySink
	}
	return Wrap[T, T](&setSeg[T]{sink: sink, source: source, errSink: errSink, name: name})
}
