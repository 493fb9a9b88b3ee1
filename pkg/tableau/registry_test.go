package tableau

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistryHasBuiltins(t *testing.T) {
	for _, name := range []string{"classical", "weak-kleene", "four-valued"} {
		logic, err := DefaultRegistry.Lookup(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, logic.Name)
		assert.NotEmpty(t, logic.Rules)
	}
}

func TestLookupUnknownLogic(t *testing.T) {
	_, err := DefaultRegistry.Lookup("nonexistent")
	require.Error(t, err)
	var unk *UnknownLogicError
	require.ErrorAs(t, err, &unk)
}

func TestRegisterRejectsDuplicateName(t *testing.T) {
	r := NewLogicRegistry()
	def := classicalLogic()
	require.NoError(t, r.Register(def))
	err := r.Register(classicalLogic())
	assert.Error(t, err)
}

func TestRegisterRejectsEmptyDesignatedSet(t *testing.T) {
	signs, err := NewSignSystem([]Sign{"T", "F"}, "T", nil, [][2]Sign{{"T", "F"}})
	require.NoError(t, err)
	truth, err := NewTruthSystem([]TruthValue{"true", "false"}, []TruthValue{"true"}, map[string]TruthFunc{})
	require.NoError(t, err)

	def := &LogicDefinition{
		Name:        "broken",
		Connectives: NewConnectiveTable(),
		Signs:       signs,
		Truth:       truth,
	}
	r := NewLogicRegistry()
	err = r.Register(def)
	assert.Error(t, err)
}

func TestRegisterRejectsIncompleteRuleSet(t *testing.T) {
	connectives := NewConnectiveTable(ConnectiveSpec{Symbol: "~", Arity: 1, Precedence: 1, Fixity: FixityPrefix})
	signs, err := NewSignSystem([]Sign{"T", "F"}, "T", []Sign{"T"}, [][2]Sign{{"T", "F"}})
	require.NoError(t, err)
	truth, err := NewTruthSystem([]TruthValue{"true", "false"}, []TruthValue{"true"}, map[string]TruthFunc{})
	require.NoError(t, err)

	A := Var("A")
	def := &LogicDefinition{
		Name:        "partial",
		Connectives: connectives,
		Signs:       signs,
		Truth:       truth,
		Rules: []*TableauRule{
			{Name: "T-neg", Kind: Alpha, Premise: SignedPattern{"T", App("~", A)},
				Conclusions: [][]SignedPattern{{{"F", A}}}},
			// F-neg is missing: incomplete.
		},
	}
	r := NewLogicRegistry()
	err = r.Register(def)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no rule decomposing sign")
}

func TestRulesSortedAlphaBeforeBeta(t *testing.T) {
	logic, err := DefaultRegistry.Lookup("classical")
	require.NoError(t, err)
	sawBeta := false
	for _, r := range logic.Rules {
		if r.Kind == Beta {
			sawBeta = true
		}
		if sawBeta {
			assert.Equal(t, Beta, r.Kind, "alpha rule %q found after a beta rule", r.Name)
		}
	}
}
