package tableau

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchBindsMetavariables(t *testing.T) {
	p := MustAtom("p")
	q := MustAtom("q")
	conj, err := NewCompound("&", 2, p, q)
	require.NoError(t, err)

	A, B := Var("A"), Var("B")
	premise := SignedPattern{Sign: "T", Formula: App("&", A, B)}

	b, ok := Match(premise, SignedFormula{Sign: "T", Formula: conj})
	require.True(t, ok)
	assert.True(t, b["A"].Equal(p))
	assert.True(t, b["B"].Equal(q))
}

func TestMatchFailsOnWrongSign(t *testing.T) {
	p := MustAtom("p")
	A := Var("A")
	premise := SignedPattern{Sign: "T", Formula: A}
	_, ok := Match(premise, SignedFormula{Sign: "F", Formula: p})
	assert.False(t, ok)
}

func TestMatchFailsOnShapeMismatch(t *testing.T) {
	p := MustAtom("p")
	A, B := Var("A"), Var("B")
	premise := SignedPattern{Sign: "T", Formula: App("&", A, B)}
	_, ok := Match(premise, SignedFormula{Sign: "T", Formula: p})
	assert.False(t, ok)
}

func TestMatchRequiresConsistentRepeatedMetavariable(t *testing.T) {
	p := MustAtom("p")
	q := MustAtom("q")
	same, err := NewCompound("&", 2, p, p)
	require.NoError(t, err)
	diff, err := NewCompound("&", 2, p, q)
	require.NoError(t, err)

	A := Var("A")
	premise := SignedPattern{Sign: "T", Formula: App("&", A, A)}

	_, ok := Match(premise, SignedFormula{Sign: "T", Formula: same})
	assert.True(t, ok)

	_, ok = Match(premise, SignedFormula{Sign: "T", Formula: diff})
	assert.False(t, ok)
}

func TestInstantiateProducesGroundFormula(t *testing.T) {
	p := MustAtom("p")
	A := Var("A")
	pattern := SignedPattern{Sign: "F", Formula: A}

	sf, err := Instantiate(pattern, Binding{"A": p})
	require.NoError(t, err)
	assert.Equal(t, Sign("F"), sf.Sign)
	assert.True(t, sf.Formula.Equal(p))
}

func TestInstantiateUnboundMetavariableErrors(t *testing.T) {
	A := Var("A")
	pattern := SignedPattern{Sign: "F", Formula: A}
	_, err := Instantiate(pattern, Binding{})
	assert.Error(t, err)
}
