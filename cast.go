// SPDX-License-Identifier: GPL-3.0-or-later

package pipe

// castSeg is the leaf behind [NewCast]: Inject/ExitCast/EntryCast all
// go through [castValue], which performs a saturating conversion when
// both types are numeric and a static conversion otherwise (identity
// when In and Out are the same type).
type castSeg[In, Out any] struct{}

var (
	_ Injector[int, int64]    = castSeg[int, int64]{}
	_ ExitCaster[int, int64]  = castSeg[int, int64]{}
	_ EntryCaster[int, int64] = castSeg[int, int64]{}
)

func (castSeg[In, Out]) Inject(in In) Out {
	out, ok := castValue[In, Out](in)
	if !ok {
		panic("pipe: no legal exit_cast between these types")
	}
	return out
}

func (castSeg[In, Out]) ExitCast(in In) Out {
	out, ok := castValue[In, Out](in)
	if !ok {
		panic("pipe: no legal exit_cast between these types")
	}
	return out
}

func (castSeg[In, Out]) EntryCast(out Out) In {
	in, ok := castValue[Out, In](out)
	if !ok {
		panic("pipe: no legal entry_cast between these types")
	}
	return in
}

// NewCast returns a segment converting between In and Out: a saturating
// numeric conversion when both are numeric kinds, a plain static
// conversion otherwise, and identity when In == Out. Construction
// itself never fails; a value outside any legal conversion panics at
// the point of use, matching every other segment's "fail at build time
// if no legal cast exists, abort at runtime on a genuine programmer
// error" rule (the legality check here is necessarily per-value since
// castValue works over arbitrary reflect-backed types).
func NewCast[In, Out any]() Segment[In, Out] {
	return Wrap[In, Out](castSeg[In, Out]{})
}
