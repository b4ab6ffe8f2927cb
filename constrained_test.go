// SPDX-License-Identifier: GPL-3.0-or-later

package pipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstrainedAppliesSameFunctionBothWays(t *testing.T) {
	nonNegative := func(v int) int {
		if v < 0 {
			return 0
		}
		return v
	}
	c := NewConstrained(nonNegative)

	assert.Equal(t, 0, c.Inject(-5))
	assert.Equal(t, 5, c.Inject(5))
	assert.Equal(t, 0, c.ExitCast(-1))
}

func TestExprConstraintEvaluatesScript(t *testing.T) {
	c := NewExprConstraint[int]("x < 0 ? 0 : x")
	assert.Equal(t, 0, c.Inject(-3))
	assert.Equal(t, 7, c.Inject(7))
}
