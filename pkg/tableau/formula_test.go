package tableau

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewAtomInterning(t *testing.T) {
	a1, err := NewAtom("p")
	require.NoError(t, err)
	a2, err := NewAtom("p")
	require.NoError(t, err)
	require.True(t, a1 == a2, "identical atoms must be interned to the same pointer")
}

func TestNewAtomRejectsInvalidNames(t *testing.T) {
	cases := []string{"", "1p", "p q", "-p"}
	for _, name := range cases {
		_, err := NewAtom(name)
		require.Error(t, err, "name %q should be rejected", name)
	}
}

func TestNewCompoundInterning(t *testing.T) {
	p := MustAtom("p")
	q := MustAtom("q")
	c1, err := NewCompound("&", 2, p, q)
	require.NoError(t, err)
	c2, err := NewCompound("&", 2, p, q)
	require.NoError(t, err)
	require.True(t, c1 == c2)
}

func TestNewCompoundArityError(t *testing.T) {
	p := MustAtom("p")
	_, err := NewCompound("~", 1, p, p)
	require.Error(t, err)
	var arityErr *ArityError
	require.ErrorAs(t, err, &arityErr)
}

func TestFormulaEqual(t *testing.T) {
	p := MustAtom("p")
	q := MustAtom("q")
	c1, _ := NewCompound("&", 2, p, q)
	c2, _ := NewCompound("&", 2, p, q)
	require.True(t, c1.Equal(c2))

	c3, _ := NewCompound("&", 2, q, p)
	require.False(t, c1.Equal(c3))
}

func TestSortedAtoms(t *testing.T) {
	p := MustAtom("zeta")
	q := MustAtom("alpha")
	f, err := NewCompound("&", 2, p, q)
	require.NoError(t, err)
	require.Equal(t, []string{"alpha", "zeta"}, f.SortedAtoms())
}
