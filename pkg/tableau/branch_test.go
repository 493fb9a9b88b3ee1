package tableau

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBranchAddAndClosure(t *testing.T) {
	logic, err := DefaultRegistry.Lookup("classical")
	require.NoError(t, err)
	p := MustAtom("p")

	root := NewRootBranch()
	root.attachLogic(logic)
	root.Add(SignedFormula{Sign: "T", Formula: p})
	assert.False(t, root.Closed())

	root.Add(SignedFormula{Sign: "F", Formula: p})
	assert.True(t, root.Closed())
}

func TestBranchChildSharesAncestorEntries(t *testing.T) {
	logic, err := DefaultRegistry.Lookup("classical")
	require.NoError(t, err)
	p := MustAtom("p")
	q := MustAtom("q")

	root := NewRootBranch()
	root.attachLogic(logic)
	root.Add(SignedFormula{Sign: "T", Formula: p})

	left := root.Child(SignedFormula{Sign: "T", Formula: q})
	right := root.Child(SignedFormula{Sign: "F", Formula: q})

	assert.Len(t, left.Entries(), 2)
	assert.Len(t, right.Entries(), 2)
	assert.False(t, left.Closed())
	assert.False(t, right.Closed())

	// Splitting must not retroactively mutate the parent or the sibling.
	assert.Len(t, root.Entries(), 1)
}

func TestBranchSiblingClosureIsIndependent(t *testing.T) {
	logic, err := DefaultRegistry.Lookup("classical")
	require.NoError(t, err)
	p := MustAtom("p")
	q := MustAtom("q")

	root := NewRootBranch()
	root.attachLogic(logic)
	root.Add(SignedFormula{Sign: "T", Formula: p})

	closes := root.Child(SignedFormula{Sign: "F", Formula: p})
	opens := root.Child(SignedFormula{Sign: "T", Formula: q})

	assert.True(t, closes.Closed())
	assert.False(t, opens.Closed())
}

func TestBranchNextUnprocessed(t *testing.T) {
	logic, err := DefaultRegistry.Lookup("classical")
	require.NoError(t, err)
	p := MustAtom("p")
	q := MustAtom("q")

	root := NewRootBranch()
	root.attachLogic(logic)
	e1 := root.Add(SignedFormula{Sign: "T", Formula: p})
	root.Add(SignedFormula{Sign: "T", Formula: q})

	next := root.NextUnprocessed()
	require.NotNil(t, next)
	assert.True(t, next.Formula.Equal(p))

	e1.processed = true
	next = root.NextUnprocessed()
	require.NotNil(t, next)
	assert.True(t, next.Formula.Equal(q))
}
