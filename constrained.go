// SPDX-License-Identifier: GPL-3.0-or-later

package pipe

// constrainedSeg is the leaf behind [NewConstrained]: wraps a stateless
// constraint function applied identically on inject and exit_cast.
type constrainedSeg[T any] struct {
	constraint func(T) T
}

var (
	_ Injector[int, int]   = (*constrainedSeg[int])(nil)
	_ ExitCaster[int, int] = (*constrainedSeg[int])(nil)
)

func (c *constrainedSeg[T]) Inject(in T) T {
	return c.constraint(in)
}

func (c *constrainedSeg[T]) ExitCast(in T) T {
	return c.constraint(in)
}

// NewConstrained returns a segment wrapping a stateless constraint
// function, applied the same way on inject and exit_cast. See
// [NewExprConstraint] for a dynamically configured alternative.
func NewConstrained[T any](constraint func(T) T) Segment[T, T] {
	return Wrap[T, T](&constrainedSeg[T]{constraint: constraint})
}
