// SPDX-License-Identifier: GPL-3.0-or-later

package pipe

import "cmp"

// boundedSeg is the leaf behind [NewBounded]: clamps every value to
// [low, high] on both inject and exit_cast.
type boundedSeg[T cmp.Ordered] struct {
	low, high T
}

var (
	_ Injector[int, int]   = (*boundedSeg[int])(nil)
	_ ExitCaster[int, int] = (*boundedSeg[int])(nil)
)

func (b *boundedSeg[T]) clamp(v T) T {
	if v < b.low {
		return b.low
	}
	if v > b.high {
		return b.high
	}
	return v
}

func (b *boundedSeg[T]) Inject(in T) T {
	return b.clamp(in)
}

func (b *boundedSeg[T]) ExitCast(in T) T {
	return b.clamp(in)
}

// NewBounded returns a segment that clamps every value to [low, high].
// Panics if low > high.
func NewBounded[T cmp.Ordered](low, high T) Segment[T, T] {
	if low > high {
		panic("pipe: Bounded requires low <= high")
	}
	return Wrap[T, T](&boundedSeg[T]{low: low, high: high})
}
