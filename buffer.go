// SPDX-License-Identifier: GPL-3.0-or-later

package pipe

// bufferSeg is the leaf behind [NewBuffer]: stores the last injected
// value; Extract (and the zero-copy [ExtractRef]) return it.
type bufferSeg[T any] struct {
	value T
}

var (
	_ Injector[int, int]     = (*bufferSeg[int])(nil)
	_ Extractor[int]         = (*bufferSeg[int])(nil)
	_ BorrowedExtractor[int] = (*bufferSeg[int])(nil)
)

func (b *bufferSeg[T]) Inject(in T) T {
	b.value = in
	return b.value
}

func (b *bufferSeg[T]) Extract() T {
	return b.value
}

// ExtractRef returns a pointer to the buffer's stored cell, letting the
// facade report extraction as Borrowed rather than copying (spec.md
// "Buffer<T>: ... extract returns the stored value").
func (b *bufferSeg[T]) ExtractRef() *T {
	return &b.value
}

// NewBuffer returns a segment that stores the last injected value of T,
// initialized to initial. Extract returns the stored value without
// copying it (see [BorrowedExtractor]).
func NewBuffer[T any](initial T) Segment[T, T] {
	return Wrap[T, T](&bufferSeg[T]{value: initial})
}
