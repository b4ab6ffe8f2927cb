// SPDX-License-Identifier: GPL-3.0-or-later

package pipe

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// NewExprConstraint compiles script once at construction time and
// returns a [NewConstrained] segment that evaluates it on every value,
// binding the injected value to the variable "x" in the expression
// environment. script must evaluate to a value convertible to T (see
// [castValue]); NewExprConstraint panics if script fails to compile.
//
// Example: NewExprConstraint[int]("x < 0 ? 0 : x") clamps to
// non-negative.
func NewExprConstraint[T any](script string) Segment[T, T] {
	var zero T
	program, err := expr.Compile(script, expr.Env(map[string]any{"x": zero}))
	if err != nil {
		panic(fmt.Sprintf("pipe: ExprConstraint compile error: %v", err))
	}
	return NewConstrained(exprConstraintFunc[T](program))
}

func exprConstraintFunc[T any](program *vm.Program) func(T) T {
	return func(in T) T {
		out, err := vm.Run(program, map[string]any{"x": in})
		if err != nil {
			panic(fmt.Sprintf("pipe: ExprConstraint evaluation error: %v", err))
		}
		result, ok := out.(T)
		if ok {
			return result
		}
		converted, ok := castValue[any, T](out)
		if !ok {
			panic("pipe: ExprConstraint result is not convertible to the segment type")
		}
		return converted
	}
}
