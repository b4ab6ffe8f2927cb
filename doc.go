// SPDX-License-Identifier: GPL-3.0-or-later

// Package pipe implements typed, composable dataflow chains of
// "segments." A segment is a uniform façade over any leaf value,
// exposing up to five operations — inject, extract, entry_cast,
// exit_cast, trigger — and synthesizing whichever of them the leaf
// doesn't itself implement.
//
// Segments compose into a [Segment] chain with [Then], and a chain is
// finalized into a runtime pipe with one of three terminators:
//
//	p := Cap(Then(Entry[int](), NewBuffer(0)), nil)
//	out := p.Inject(42)
//	fmt.Println(out.Get()) // 42
//
// [Cap] produces a terminal [CappedPipe]; [Exit] produces a forwardable
// [OpenPipe] that can later [OpenPipe.Connect] to a downstream entry;
// [Ref] produces a [CappedPipe] owned by a [Group], which can trigger
// or destroy all its members together.
//
// The package ships a library of stock segments — [NewIdentity],
// [NewCast], [NewBuffer], [NewTee], [NewTriggered], [NewLog],
// [NewTransistor], [NewCall], [NewGet], [NewSet], [NewMux],
// [NewChanges], [NewRateLimit], [NewBounded], [NewConstrained],
// [NewScale], [NewConvert], [NewMapped], [NewSignal] — covering the
// common cases of buffering, fan-out, change detection, rate limiting,
// numeric conversion, and external-object/bus integration.
package pipe
