package tableau

// RuleKind distinguishes non-branching (α) rules from branching (β) ones.
type RuleKind int

const (
	Alpha RuleKind = iota
	Beta
)

func (k RuleKind) String() string {
	if k == Beta {
		return "beta"
	}
	return "alpha"
}

// Metavar names a pattern metavariable ("A", "B", ...) bound during
// matching to an actual subformula of the matched premise.
type Metavar string

// FormulaPattern is a signed-formula pattern's formula half: either a bare
// metavariable (Metavar != "") or a connective application over
// subpatterns (Symbol/Args).
type FormulaPattern struct {
	Metavar Metavar
	Symbol  string
	Args    []*FormulaPattern
}

// Var builds a metavariable pattern.
func Var(name string) *FormulaPattern { return &FormulaPattern{Metavar: Metavar(name)} }

// App builds a compound pattern over symbol.
func App(symbol string, args ...*FormulaPattern) *FormulaPattern {
	return &FormulaPattern{Symbol: symbol, Args: args}
}

// SignedPattern is one signed-formula pattern: a sign together with a
// formula pattern, used both as a rule's premise and, instantiated, in
// its conclusions.
type SignedPattern struct {
	Sign    Sign
	Formula *FormulaPattern
}

// TableauRule is one tableau expansion rule: a premise pattern and the
// branch extensions ("conclusions") produced when it matches. Conclusions
// is a list of branch extensions; exactly one entry means the rule is
// non-branching (Kind == Alpha), more than one makes it branching
// (Kind == Beta).
type TableauRule struct {
	Name        string
	Kind        RuleKind
	Premise     SignedPattern
	Conclusions [][]SignedPattern
	Priority    int
}

// tuple orders rules the way the engine's expansion-loop scheduler does:
// α before β, then ascending Priority.
type ruleTuple struct {
	kindOrd  int
	priority int
}

func (r *TableauRule) tuple() ruleTuple {
	kindOrd := 0
	if r.Kind == Beta {
		kindOrd = 1
	}
	return ruleTuple{kindOrd: kindOrd, priority: r.Priority}
}

func (t ruleTuple) less(o ruleTuple) bool {
	if t.kindOrd != o.kindOrd {
		return t.kindOrd < o.kindOrd
	}
	return t.priority < o.priority
}
