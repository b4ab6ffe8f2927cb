// SPDX-License-Identifier: GPL-3.0-or-later

package pipe

// Segment is a uniform facade over any leaf value, exposing all five
// pipe operations regardless of which subset the leaf itself
// implements. Build one from a leaf with [Wrap].
//
// Every Segment is total: none of its methods may fail. A leaf that
// wraps a user callback capable of failing (e.g. [NewCall],
// [NewSignal]) must contain that failure internally and report it
// through an [ObservabilitySink] rather than propagate it.
type Segment[I, O any] interface {
	// Inject runs the segment forward on in and returns its output.
	Inject(in I) O

	// Extract returns the segment's currently held or computed output
	// without consuming new input.
	Extract() O

	// EntryCast projects an output value back to an input value. A
	// chain applies its segments' EntryCasts in reverse order.
	EntryCast(out O) I

	// ExitCast projects an input value forward to an output value
	// without running Inject's side effects.
	ExitCast(in I) O

	// Trigger asks the segment to emit a buffered, deferred, or polled
	// value. triggered reports whether the segment actually had
	// something to emit.
	Trigger() (out O, triggered bool)
}

// Injector is the capability interface for a leaf that implements
// Inject. Required: every facade built by [Wrap] must find at least
// one leaf in its composition implementing this, directly or via
// Extractor (see [Wrap]'s defaulting rule).
type Injector[I, O any] interface {
	Inject(in I) O
}

// Extractor is the capability interface for a leaf that implements
// Extract.
type Extractor[O any] interface {
	Extract() O
}

// BorrowedExtractor is an optional refinement of [Extractor] for leaves
// whose extracted value is a live view into internal state (e.g. the
// stored cell of the segment built by [NewBuffer]) rather than a freshly computed value. A
// facade built over such a leaf can report its extraction as Borrowed
// in an [ExitValue] instead of Owned, avoiding a copy.
type BorrowedExtractor[O any] interface {
	ExtractRef() *O
}

// EntryCaster is the capability interface for a leaf that implements
// EntryCast.
type EntryCaster[I, O any] interface {
	EntryCast(out O) I
}

// ExitCaster is the capability interface for a leaf that implements
// ExitCast.
type ExitCaster[I, O any] interface {
	ExitCast(in I) O
}

// Triggerer is the capability interface for a leaf that implements
// Trigger.
type Triggerer[O any] interface {
	Trigger() (O, bool)
}

// Wrap takes any leaf value and returns a [Segment] presenting the full
// five-operation interface, synthesizing defaults for whichever
// operations the leaf does not itself implement:
//
//   - Inject: if the leaf has no [Injector], its Inject reduces to
//     Extract (some segments, such as [NewGet]'s, ignore their input
//     and always re-read an external value).
//   - Extract: if the leaf has no [Extractor], returns the zero value
//     of O.
//   - EntryCast: if the leaf has no [EntryCaster], identity when I and
//     O are the same type, otherwise a saturating-or-static cast (see
//     [castValue]); panics when called if no legal cast exists for the
//     value. Wrap itself does not check castability.
//   - ExitCast: symmetric to EntryCast.
//   - Trigger: if the leaf has no [Triggerer], reports triggered=false
//     and the zero value of O.
//
// Wrap panics if the leaf implements neither [Injector] nor
// [Extractor]: a segment that can never produce output from either
// path cannot accept an input (spec: "at least one inject
// implementation across the chain").
func Wrap[I, O any](leaf any) Segment[I, O] {
	_, hasInject := leaf.(Injector[I, O])
	_, hasExtract := leaf.(Extractor[O])
	if !hasInject && !hasExtract {
		panic("pipe: leaf implements neither Inject nor Extract")
	}
	return &facade[I, O]{leaf: leaf}
}

// facade is the default [Segment] implementation produced by [Wrap].
type facade[I, O any] struct {
	leaf any
}

func (f *facade[I, O]) Inject(in I) O {
	if inj, ok := f.leaf.(Injector[I, O]); ok {
		return inj.Inject(in)
	}
	return f.Extract()
}

func (f *facade[I, O]) Extract() O {
	if ext, ok := f.leaf.(Extractor[O]); ok {
		return ext.Extract()
	}
	var zero O
	return zero
}

// extractRef reports whether the wrapped leaf supports zero-copy
// extraction, and if so returns a pointer to its internal cell.
func (f *facade[I, O]) extractRef() (*O, bool) {
	if be, ok := f.leaf.(BorrowedExtractor[O]); ok {
		return be.ExtractRef(), true
	}
	return nil, false
}

func (f *facade[I, O]) EntryCast(out O) I {
	if ec, ok := f.leaf.(EntryCaster[I, O]); ok {
		return ec.EntryCast(out)
	}
	in, ok := castValue[O, I](out)
	if !ok {
		panic("pipe: no legal entry_cast between these types")
	}
	return in
}

func (f *facade[I, O]) ExitCast(in I) O {
	if ec, ok := f.leaf.(ExitCaster[I, O]); ok {
		return ec.ExitCast(in)
	}
	out, ok := castValue[I, O](in)
	if !ok {
		panic("pipe: no legal exit_cast between these types")
	}
	return out
}

func (f *facade[I, O]) Trigger() (O, bool) {
	if tr, ok := f.leaf.(Triggerer[O]); ok {
		return tr.Trigger()
	}
	var zero O
	return zero, false
}
