// SPDX-License-Identifier: GPL-3.0-or-later

package pipe

// transistorSeg is the leaf behind [NewTransistor] and
// [NewTransistorFunc]: on each inject, reads gate's current extract and
// forwards the injected value only when truthy(gate value) holds (or
// its negation, when invert is set); otherwise returns the zero value
// of T.
type transistorSeg[T, Gate any] struct {
	gate   PipeExit[Gate]
	truthy func(Gate) bool
	invert bool
}

var _ Injector[int, int] = (*transistorSeg[int, bool])(nil)

func (t *transistorSeg[T, Gate]) Inject(in T) T {
	open := t.truthy(t.gate.Extract().Get())
	if t.invert {
		open = !open
	}
	if open {
		return in
	}
	var zero T
	return zero
}

// NewTransistor returns a segment that forwards its injected value only
// while gate's current extracted value is true (or false, when invert
// is set); otherwise it yields the zero value of T. gate is an external
// pipe shared across segments, per spec.md §5's "cross-segment state
// sharing is only via explicit external references."
func NewTransistor[T any](gate PipeExit[bool], invert bool) Segment[T, T] {
	return NewTransistorFunc[T, bool](gate, func(b bool) bool { return b }, invert)
}

// NewTransistorFunc generalizes [NewTransistor] to a non-bool gate type,
// with truthy deciding whether a given gate value opens the transistor.
func NewTransistorFunc[T, Gate any](gate PipeExit[Gate], truthy func(Gate) bool, invert bool) Segment[T, T] {
	return Wrap[T, T](&transistorSeg[T, Gate]{gate: gate, truthy: truthy, invert: invert})
}
