// SPDX-License-Identifier: GPL-3.0-or-later

package pipe

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// callSeg is the leaf behind [NewCall]: invokes fn on each injected
// value in one of four shapes (observe by value, observe by const ref,
// mutate through mutable ref, or transform) and forwards the resulting
// value. A shape that can fail contains the failure internally and
// reports it through sink, per [Segment]'s totality requirement.
type callSeg[T any] struct {
	fn   any
	sink ObservabilitySink
	name string
}

var _ Injector[int, int] = (*callSeg[int])(nil)

func (c *callSeg[T]) Inject(in T) T {
	switch f := c.fn.(type) {
	case func(T):
		f(in)
		return in
	case func(T) T:
		return f(in)
	case func(*T):
		f(&in)
		return in
	case func(T) error:
		if err := f(in); err != nil {
			c.sink.SegmentError("Call", c.name, err)
		}
		return in
	case func(*T) error:
		if err := f(&in); err != nil {
			c.sink.SegmentError("Call", c.name, err)
		}
		return in
	case func(T) (T, error):
		out, err := f(in)
		if err != nil {
			c.sink.SegmentError("Call", c.name, err)
			return in
		}
		return out
	default:
		panic("pipe: unsupported Call function shape")
	}
}

// NewCall returns a segment that invokes fn on each injected value and
// forwards the resulting value. fn must be one of:
//
//   - func(T): observe by value, value unchanged
//   - func(*T): mutate through a mutable reference (Go has no
//     enforced-const reference, so "observe by const ref" and "observe
//     by value" collapse to the same func(T) shape)
//   - func(T) T: transform, returns the new value
//   - func(T) error / func(*T) error / func(T) (T, error): as above,
//     with a failure reported to sink (see [ObservabilitySink]) instead
//     of propagated, since Inject must be total.
//
// NewCall panics at construction if fn is not one of these shapes. Pass
// a nil sink to use [DefaultObservabilitySink].
func NewCall[T any](name string, fn any, sink ObservabilitySink) Segment[T, T] {
	if sink == nil {
		sink = DefaultObservabilitySink
	}
	switch fn.(type) {
	case func(T), func(*T), func(T) T, func(T) error, func(*T) error, func(T) (T, error):
	default:
		panic("pipe: unsupported Call function shape")
	}
	return Wrap[T, T](&callSeg[T]{fn: fn, sink: sink, name: name})
}

// NewExprCall compiles script once at construction time and returns a
// transform-shaped [NewCall] that binds the injected value to "x" and
// replaces it with script's result, converting back to T via
// [castValue] when the result isn't already T. An evaluation error, or
// a result not convertible to T, is reported to sink and the injected
// value passes through unchanged. Panics at construction if script
// fails to compile.
func NewExprCall[T any](name, script string, sink ObservabilitySink) Segment[T, T] {
	var zero T
	program, err := expr.Compile(script, expr.Env(map[string]any{"x": zero}))
	if err != nil {
		panic(fmt.Sprintf("pipe: ExprCall compile error: %v", err))
	}
	transform := func(in T) (T, error) {
		out, err := vm.Run(program, map[string]any{"x": in})
		if err != nil {
			return in, fmt.Errorf("pipe: ExprCall evaluation error: %w", err)
		}
		if result, ok := out.(T); ok {
			return result, nil
		}
		converted, ok := castValue[any, T](out)
		if !ok {
			return in, fmt.Errorf("pipe: ExprCall result is not convertible to the segment type")
		}
		return converted, nil
	}
	return NewCall[T](name, transform, sink)
}
