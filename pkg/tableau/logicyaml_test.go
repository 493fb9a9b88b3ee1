package tableau

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalLogicYAML = `
name: mini-classical
signs: ["T", "F"]
default: "T"
designated: ["T"]
contradictions:
  - ["T", "F"]
connectives:
  - symbol: "~"
    arity: 1
    precedence: 2
    fixity: prefix
  - symbol: "&"
    arity: 2
    precedence: 1
    associativity: left
    fixity: infix
sign_values:
  T: "true"
  F: "false"
rules:
  - name: T-neg
    kind: alpha
    premise_sign: "T"
    premise: "~ A"
    branches:
      - - sign: "F"
          formula: "A"
  - name: F-neg
    kind: alpha
    premise_sign: "F"
    premise: "~ A"
    branches:
      - - sign: "T"
          formula: "A"
  - name: T-and
    kind: alpha
    premise_sign: "T"
    premise: "& A B"
    branches:
      - - sign: "T"
          formula: "A"
        - sign: "T"
          formula: "B"
  - name: F-and
    kind: beta
    premise_sign: "F"
    premise: "& A B"
    branches:
      - - sign: "F"
          formula: "A"
      - - sign: "F"
          formula: "B"
`

func TestLoadLogicDefinitionRoundTrip(t *testing.T) {
	def, err := LoadLogicDefinition(strings.NewReader(minimalLogicYAML))
	require.NoError(t, err)
	assert.Equal(t, "mini-classical", def.Name)
	assert.Len(t, def.Rules, 4)

	r := NewLogicRegistry()
	require.NoError(t, r.Register(def))

	registered, err := r.Lookup("mini-classical")
	require.NoError(t, err)

	f, err := ParseFormula(registered, "p & ~p")
	require.NoError(t, err)
	res, err := runSolve(context.Background(), registered, []SignedFormula{{Sign: "T", Formula: f}}, f.SortedAtoms())
	require.NoError(t, err)
	assert.False(t, res.Satisfiable)

	p := MustAtom("p")
	res, err = runSolve(context.Background(), registered, []SignedFormula{{Sign: "T", Formula: p}}, p.SortedAtoms())
	require.NoError(t, err)
	require.True(t, res.Satisfiable)
	assert.ElementsMatch(t, []Model{{"p": "true"}}, res.Models)
}

func TestLoadLogicDefinitionRejectsUnknownFields(t *testing.T) {
	_, err := LoadLogicDefinition(strings.NewReader("name: x\nbogus_field: 1\n"))
	assert.Error(t, err)
}
