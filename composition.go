// SPDX-License-Identifier: GPL-3.0-or-later

package pipe

// compositionNode is the internal interface every node of a built
// composition satisfies: a [Segment] plus the bookkeeping
// [Composition]'s facade needs to implement spec.md §4.2's extract and
// trigger propagation rules without re-deriving them at every level of
// nesting. It is unexported; callers only ever see it through
// [Segment] and the [Then] builder.
type compositionNode[I, O any] interface {
	Segment[I, O]

	// extractInfo returns the result of feeding the value produced by
	// the last extract-capable segment in this subtree forward through
	// every subsequent segment's ExitCast, and whether any segment in
	// this subtree supports Extract at all. When supported is false the
	// returned ExitValue is a meaningless zero value.
	extractInfo() (value ExitValue[O], supported bool)

	// triggerInfo returns the result of running the first
	// trigger-capable segment in this subtree and feeding its output
	// forward (via Inject if it fired, via ExitCast if it did not)
	// through every subsequent segment, and whether any segment in this
	// subtree supports Trigger at all.
	triggerInfo() (out O, triggered bool, supported bool)

	// isIdentityNode reports whether this subtree is exactly one
	// [NewIdentity] leaf — the only case in which a borrowed extraction
	// can be forwarded through an ExitCast without decaying to an
	// owned value, because an identity ExitCast never runs a
	// transformation.
	isIdentityNode() bool
}

// identityLeaf is implemented by the leaf built by [NewIdentity].
type identityLeaf interface {
	isIdentitySegment()
}

func (f *facade[I, O]) extractInfo() (ExitValue[O], bool) {
	if ptr, ok := f.extractRef(); ok {
		return BorrowedExitValue(ptr), true
	}
	if _, ok := f.leaf.(Extractor[O]); ok {
		return OwnedExitValue(f.Extract()), true
	}
	var zero ExitValue[O]
	return zero, false
}

func (f *facade[I, O]) triggerInfo() (O, bool, bool) {
	if _, ok := f.leaf.(Triggerer[O]); ok {
		out, triggered := f.Trigger()
		return out, triggered, true
	}
	var zero O
	return zero, false, false
}

func (f *facade[I, O]) isIdentityNode() bool {
	_, ok := f.leaf.(identityLeaf)
	return ok
}

// reinterpretExitValue converts an ExitValue[M] into an ExitValue[O]
// without copying, valid only when M and O are, at this call site, the
// same concrete type (guaranteed by the caller having checked
// isIdentityNode on the M->O segment).
func reinterpretExitValue[M, O any](in ExitValue[M]) (ExitValue[O], bool) {
	if in.IsBorrowed() {
		if ptr, ok := any(in.ptr).(*O); ok {
			return BorrowedExitValue(ptr), true
		}
		return ExitValue[O]{}, false
	}
	if v, ok := any(in.Get()).(O); ok {
		return OwnedExitValue(v), true
	}
	return ExitValue[O]{}, false
}

// chain2 composes head (Segment[I, M]) and tail (Segment[M, O]) into a
// Segment[I, O], exactly mirroring the teacher's compose2[A, B, C]
// recursion (see Compose2/Compose3/... in nop's compose.go), generalized
// from wrapping a single Call method to wrapping the full five-operation
// facade and its extract/trigger propagation bookkeeping.
type chain2[I, M, O any] struct {
	head compositionNode[I, M]
	tail compositionNode[M, O]
}

// Then chains next after seg, producing a [Segment] over the outer
// input/output types. The compiler enforces that seg's output type is
// exactly next's input type: an ill-typed composition simply does not
// compile, which is the static adjacency check spec.md §4.2 requires.
func Then[I, M, O any](seg Segment[I, M], next Segment[M, O]) Segment[I, O] {
	return asNode(asNode2(seg), asNode2(next))
}

// asNode joins head and tail into a chain2 node.
func asNode[I, M, O any](head compositionNode[I, M], tail compositionNode[M, O]) Segment[I, O] {
	return &chain2[I, M, O]{head: head, tail: tail}
}

// asNode2 upgrades any [Segment] into a compositionNode. Segments built
// by [Wrap] and by [Then] already satisfy compositionNode directly;
// this only needs a type assertion, never a wrapper allocation, because
// every Segment constructor in this package returns a compositionNode
// under the hood.
func asNode2[I, O any](seg Segment[I, O]) compositionNode[I, O] {
	node, ok := seg.(compositionNode[I, O])
	if !ok {
		panic("pipe: segment does not implement the internal compositionNode contract; build it with Wrap or Then")
	}
	return node
}

func (c *chain2[I, M, O]) Inject(in I) O {
	return c.tail.Inject(c.head.Inject(in))
}

func (c *chain2[I, M, O]) Extract() O {
	v, ok := c.extractInfo()
	if !ok {
		var zero O
		return zero
	}
	return v.Get()
}

func (c *chain2[I, M, O]) EntryCast(out O) I {
	return c.head.EntryCast(c.tail.EntryCast(out))
}

func (c *chain2[I, M, O]) ExitCast(in I) O {
	return c.tail.ExitCast(c.head.ExitCast(in))
}

func (c *chain2[I, M, O]) Trigger() (O, bool) {
	out, triggered, _ := c.triggerInfo()
	return out, triggered
}

func (c *chain2[I, M, O]) extractInfo() (ExitValue[O], bool) {
	if v, ok := c.tail.extractInfo(); ok {
		return v, true
	}
	headVal, ok := c.head.extractInfo()
	if !ok {
		var zero ExitValue[O]
		return zero, false
	}
	if c.tail.isIdentityNode() {
		if rv, ok := reinterpretExitValue[M, O](headVal); ok {
			return rv, true
		}
	}
	return OwnedExitValue(c.tail.ExitCast(headVal.Get())), true
}

func (c *chain2[I, M, O]) triggerInfo() (O, bool, bool) {
	if headOut, headTriggered, headSupported := c.head.triggerInfo(); headSupported {
		if headTriggered {
			return c.tail.Inject(headOut), true, true
		}
		return c.tail.ExitCast(headOut), false, true
	}
	return c.tail.triggerInfo()
}

func (c *chain2[I, M, O]) isIdentityNode() bool {
	return false
}
