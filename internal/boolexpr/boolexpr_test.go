package boolexpr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollectVariableOrderFirstOccurrence(t *testing.T) {
	// (b && c) || a -> order [b, c, a]
	expr := Or{
		Left:  And{Left: Var{Name: "b"}, Right: Var{Name: "c"}},
		Right: Var{Name: "a"},
	}
	assert.Equal(t, []string{"b", "c", "a"}, CollectVariableOrder(expr))
}

func TestCollectVariableOrderDeduplicates(t *testing.T) {
	// a && a -> order [a]
	expr := And{Left: Var{Name: "a"}, Right: Var{Name: "a"}}
	assert.Equal(t, []string{"a"}, CollectVariableOrder(expr))
}

func TestCollectVariableOrderDescendsThroughNot(t *testing.T) {
	// !a && b -> order [a, b]
	expr := And{Left: Not{Operand: Var{Name: "a"}}, Right: Var{Name: "b"}}
	assert.Equal(t, []string{"a", "b"}, CollectVariableOrder(expr))
}

func TestIsDecision(t *testing.T) {
	assert.False(t, IsDecision(Var{Name: "a"}), "a bare Var must not be a decision")
	assert.False(t, IsDecision(Not{Operand: Var{Name: "a"}}), "Not(Var) alone must not be a decision")
	assert.True(t, IsDecision(And{Left: Var{Name: "a"}, Right: Var{Name: "b"}}))
	assert.True(t, IsDecision(Or{Left: Var{Name: "a"}, Right: Var{Name: "b"}}))
}
