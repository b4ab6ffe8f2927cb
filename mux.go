// SPDX-License-Identifier: GPL-3.0-or-later

package pipe

// muxSeg is the leaf behind [NewMux]: holds a fixed set of pipe exits;
// Inject selects one by index and returns its current extract; Extract
// re-reads the selected exit; Trigger delegates to the selected exit.
type muxSeg[T any] struct {
	exits    []PipeExit[T]
	selected int
}

var (
	_ Injector[int, int] = (*muxSeg[int])(nil)
	_ Extractor[int]     = (*muxSeg[int])(nil)
	_ Triggerer[int]     = (*muxSeg[int])(nil)
)

func (m *muxSeg[T]) Inject(index int) T {
	if index < 0 || index >= len(m.exits) {
		var zero T
		return zero
	}
	m.selected = index
	return m.exits[m.selected].Extract().Get()
}

func (m *muxSeg[T]) Extract() T {
	return m.exits[m.selected].Extract().Get()
}

func (m *muxSeg[T]) Trigger() (T, bool) {
	v, triggered := m.exits[m.selected].Trigger()
	return v.Get(), triggered
}

// NewMux returns a segment whose input is a selection index and whose
// output is the currently selected exit's value. Injecting an
// out-of-range index returns the zero value of T and does not change
// the selection. NewMux panics if exits is empty.
func NewMux[T any](exits ...PipeExit[T]) Segment[int, T] {
	if len(exits) == 0 {
		panic("pipe: Mux requires at least one exit")
	}
	return Wrap[int, T](&muxSeg[T]{exits: exits})
}
