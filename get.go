// SPDX-License-Identifier: GPL-3.0-or-later

package pipe

import "github.com/mitchellh/mapstructure"

// ExternalSource is the external-object contract Get reads from.
type ExternalSource[T any] interface {
	Read() (T, error)
}

// DecodingObject is an [ExternalSource] backed by a loosely typed
// map[string]any, decoded into T on each Read via mapstructure. This is
// the shape an external config store, request body, or message payload
// typically takes before it is given a concrete Go type.
type DecodingObject[T any] struct {
	data map[string]any
}

var _ ExternalSource[int] = (*DecodingObject[int])(nil)

// NewDecodingObject returns a [DecodingObject] initialized with data.
func NewDecodingObject[T any](data map[string]any) *DecodingObject[T] {
	return &DecodingObject[T]{data: data}
}

// SetData replaces the backing map, affecting subsequent Read calls.
func (d *DecodingObject[T]) SetData(data map[string]any) {
	d.data = data
}

// Read decodes the backing map into T.
func (d *DecodingObject[T]) Read() (T, error) {
	var v T
	err := mapstructure.Decode(d.data, &v)
	return v, err
}

// getSeg is the leaf behind [NewGet]: ignores its injected input and,
// on both Inject and Extract, re-reads source and returns its current
// value. A read failure is reported to sink and yields the last
// successfully read value.
type getSeg[T any] struct {
	source ExternalSource[T]
	sink   ObservabilitySink
	name   string
	last   T
}

var (
	_ Injector[int, int] = (*getSeg[int])(nil)
	_ Extractor[int]     = (*getSeg[int])(nil)
)

func (g *getSeg[T]) read() T {
	v, err := g.source.Read()
	if err != nil {
		g.sink.SegmentError("Get", g.name, err)
		return g.last
	}
	g.last = v
	return v
}

func (g *getSeg[T]) Inject(T) T {
	return g.read()
}

func (g *getSeg[T]) Extract() T {
	return g.read()
}

// NewGet returns a segment that ignores its injected input and, on
// either Inject or Extract, returns source's current value. Pass a nil
// sink to use [DefaultObservabilitySink].
func NewGet[T any](name string, source ExternalSource[T], sink ObservabilitySink) Segment[T, T] {
	if sink == nil {
		sink = DefaultObservabilitySink
	}
	return Wrap[T, T](&getSeg[T]{source: source, sink: sink, name: name})
}
