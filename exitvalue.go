// SPDX-License-Identifier: GPL-3.0-or-later

package pipe

import "cmp"

// ExitValue carries exactly one extraction result: either a borrowed
// read-only view of a value cell living inside a segment, or an owned
// value produced by the chain. It is the return type of every
// [CappedPipe.Inject], [CappedPipe.Extract], and [CappedPipe.Trigger]
// call.
//
// Unlike the C++ origin this design is adapted from, Go's garbage
// collector makes a borrowed pointer intrinsically safe to hold past
// the call that produced it — there is no dangling-reference hazard to
// guard against. The Borrowed/Owned distinction is kept anyway because
// it is part of the documented contract (a borrowed [ExitValue] is a
// live view of the segment's cell: [ExitValue.Get] reflects later
// changes to that cell, while [ExitValue.MoveInto] copies the current
// value out), and because it lets zero-copy extraction (e.g. the
// ExtractRef of the segment built by [NewBuffer]) avoid a copy when the
// caller only needs to compare or read the value once.
type ExitValue[T any] struct {
	ptr   *T
	val   T
	owned bool
}

// OwnedExitValue wraps a value produced by computation.
func OwnedExitValue[T any](v T) ExitValue[T] {
	return ExitValue[T]{val: v, owned: true}
}

// BorrowedExitValue wraps a read-only view of a value living inside a
// segment. ptr must not be nil.
func BorrowedExitValue[T any](ptr *T) ExitValue[T] {
	return ExitValue[T]{ptr: ptr}
}

// IsBorrowed reports whether this ExitValue wraps a borrowed reference
// rather than an owned value.
func (e ExitValue[T]) IsBorrowed() bool {
	return !e.owned
}

// Get dereferences the ExitValue as read-only.
func (e ExitValue[T]) Get() T {
	if e.owned {
		return e.val
	}
	return *e.ptr
}

// MoveInto consumes the ExitValue into dst: it copies from the borrow
// or moves from owned storage. After this call the ExitValue should not
// be used again.
func (e ExitValue[T]) MoveInto(dst *T) {
	*dst = e.Get()
}

// Equal reports whether the ExitValue's value equals other under ==.
// T must be comparable; use this only for comparable T (numeric,
// string, pointer, and similarly simple types), matching spec.md's
// "comparable with the raw value type via all six ordering relations"
// for the subset of T where that is meaningful in Go.
func Equal[T comparable](e ExitValue[T], other T) bool {
	return e.Get() == other
}

// NotEqual reports whether the ExitValue's value differs from other
// under !=. See [Equal] for the T constraint.
func NotEqual[T comparable](e ExitValue[T], other T) bool {
	return e.Get() != other
}

// Less reports whether the ExitValue's value orders before other.
// T must be ordered ([cmp.Ordered]): numeric and string types.
func Less[T cmp.Ordered](e ExitValue[T], other T) bool {
	return e.Get() < other
}

// LessOrEqual reports whether the ExitValue's value orders before or
// equal to other. See [Less] for the T constraint.
func LessOrEqual[T cmp.Ordered](e ExitValue[T], other T) bool {
	return e.Get() <= other
}

// Greater reports whether the ExitValue's value orders after other.
// See [Less] for the T constraint.
func Greater[T cmp.Ordered](e ExitValue[T], other T) bool {
	return e.Get() > other
}

// GreaterOrEqual reports whether the ExitValue's value orders after or
// equal to other. See [Less] for the T constraint.
func GreaterOrEqual[T cmp.Ordered](e ExitValue[T], other T) bool {
	return e.Get() >= other
}
