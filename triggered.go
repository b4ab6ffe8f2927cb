// SPDX-License-Identifier: GPL-3.0-or-later

package pipe

// triggeredSeg is the leaf behind [NewTriggered]: a buffer plus a tee.
// Inject updates the stored value and marks it changed when it differs
// from the previous value under compare. Trigger flushes to the tee
// entries iff changed, clears the flag, and returns the current value.
type triggeredSeg[T any] struct {
	value   T
	changed bool
	compare func(a, b T) bool
	entries []PipeEntry[T]
}

var (
	_ Injector[int, int]     = (*triggeredSeg[int])(nil)
	_ Extractor[int]         = (*triggeredSeg[int])(nil)
	_ BorrowedExtractor[int] = (*triggeredSeg[int])(nil)
	_ Triggerer[int]         = (*triggeredSeg[int])(nil)
)

func (t *triggeredSeg[T]) Inject(in T) T {
	if !t.compare(t.value, in) {
		t.changed = true
	}
	t.value = in
	return t.value
}

func (t *triggeredSeg[T]) Extract() T {
	return t.value
}

func (t *triggeredSeg[T]) ExtractRef() *T {
	return &t.value
}

func (t *triggeredSeg[T]) Trigger() (T, bool) {
	if !t.changed {
		return t.value, false
	}
	for _, entry := range t.entries {
		entry.InjectEntry(t.value)
	}
	t.changed = false
	return t.value, true
}

// NewTriggered returns a segment that remembers the last injected
// value, considers itself "dirty" whenever an injected value differs
// from the previous one under compare, and on [Segment.Trigger] flushes
// the current value to entries (in order) exactly when dirty, clearing
// the dirty flag and reporting triggered=true.
func NewTriggered[T any](initial T, compare func(a, b T) bool, entries ...PipeEntry[T]) Segment[T, T] {
	return Wrap[T, T](&triggeredSeg[T]{value: initial, compare: compare, entries: entries})
}

// NewTriggeredEqual is [NewTriggered] for comparable T, using == as the
// compare function.
func NewTriggeredEqual[T comparable](initial T, entries ...PipeEntry[T]) Segment[T, T] {
	return NewTriggered(initial, func(a, b T) bool { return a == b }, entries...)
}
