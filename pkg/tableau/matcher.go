package tableau

import "fmt"

// SignedFormula is the atomic unit flowing through the engine: a sign
// paired with a formula.
type SignedFormula struct {
	Sign    Sign
	Formula *Formula
}

// Binding is the substitution produced by a successful match: it maps
// each pattern metavariable to the (interned) subformula it bound to.
type Binding map[Metavar]*Formula

// Match attempts to match rule against sf. On success it returns the
// binding of the rule's metavariables to sf's subformulas; on failure it
// returns (nil, false). Matching succeeds iff the premise sign equals
// sf.Sign, the premise shape and sf.Formula share the same connective (or
// are both the same metavariable/atom case), and metavariables unify
// consistently.
func Match(premise SignedPattern, sf SignedFormula) (Binding, bool) {
	if premise.Sign != sf.Sign {
		return nil, false
	}
	b := Binding{}
	if !matchFormula(premise.Formula, sf.Formula, b) {
		return nil, false
	}
	return b, true
}

func matchFormula(pat *FormulaPattern, f *Formula, b Binding) bool {
	if pat.Metavar != "" {
		if existing, ok := b[pat.Metavar]; ok {
			return existing.Equal(f)
		}
		b[pat.Metavar] = f
		return true
	}
	if pat.Symbol != f.Symbol() || len(pat.Args) != len(f.Args()) {
		return false
	}
	for i, sub := range pat.Args {
		if !matchFormula(sub, f.Args()[i], b) {
			return false
		}
	}
	return true
}

// Instantiate applies b to pattern, producing a ground signed formula
// ready to add to a branch. Every metavariable in pattern must be bound in
// b (conclusions may only reference metavariables that occur in the rule's
// premise).
func Instantiate(pattern SignedPattern, b Binding) (SignedFormula, error) {
	f, err := instantiateFormula(pattern.Formula, b)
	if err != nil {
		return SignedFormula{}, err
	}
	return SignedFormula{Sign: pattern.Sign, Formula: f}, nil
}

func instantiateFormula(pat *FormulaPattern, b Binding) (*Formula, error) {
	if pat.Metavar != "" {
		f, ok := b[pat.Metavar]
		if !ok {
			return nil, fmt.Errorf("tableau: unbound metavariable %q in rule conclusion", pat.Metavar)
		}
		return f, nil
	}
	args := make([]*Formula, len(pat.Args))
	for i, sub := range pat.Args {
		a, err := instantiateFormula(sub, b)
		if err != nil {
			return nil, err
		}
		args[i] = a
	}
	return NewCompound(pat.Symbol, len(args), args...)
}
