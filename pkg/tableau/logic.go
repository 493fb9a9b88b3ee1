package tableau

import (
	"fmt"
	"sort"

	"github.com/hashicorp/go-multierror"
)

// LogicDefinition is the immutable bundle that parameterises the tableau
// engine: connectives, signs, truth values, and rules.
type LogicDefinition struct {
	Name        string
	Connectives *ConnectiveTable
	Signs       *SignSystem
	Truth       *TruthSystem
	Rules       []*TableauRule // kept pre-sorted by (kind, priority, declaration order)

	// SignValue maps a sign to the truth value assigned to an atom that
	// carries exactly that sign and no other.
	SignValue map[Sign]TruthValue

	// Join computes the truth value assigned to an atom that carries
	// several non-contradicting signs at once (possible in multi-valued
	// systems). May be nil for logics where this can never happen (e.g.
	// classical, whose only two signs always contradict).
	Join func(signs []Sign) (TruthValue, error)
}

// sortRules orders rules α-before-β, then ascending Priority, then
// declaration order (stable sort preserves the input order for ties).
func sortRules(rules []*TableauRule) []*TableauRule {
	out := append([]*TableauRule(nil), rules...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].tuple().less(out[j].tuple())
	})
	return out
}

// checkContracts validates a logic definition's registration-time
// contracts, aggregating every violation it finds via go-multierror
// instead of failing at the first one, so a logic author sees the whole
// list in one registration attempt.
func checkContracts(def *LogicDefinition) error {
	var result *multierror.Error

	if def.Name == "" {
		result = multierror.Append(result, fmt.Errorf("logic definition has no name"))
	}
	if def.Connectives == nil {
		result = multierror.Append(result, fmt.Errorf("logic %q: connective table is nil", def.Name))
	}
	if def.Signs == nil {
		result = multierror.Append(result, fmt.Errorf("logic %q: sign system is nil", def.Name))
		return result.ErrorOrNil()
	}
	if def.Truth == nil {
		result = multierror.Append(result, fmt.Errorf("logic %q: truth-value system is nil", def.Name))
	}

	// Designated signs non-empty.
	if len(def.Signs.Designated()) == 0 {
		result = multierror.Append(result, fmt.Errorf("logic %q: designated sign set must be non-empty", def.Name))
	}

	// Contradiction relation has at least one pair (symmetry is enforced
	// structurally by NewSignSystem, which always inserts both directions).
	if !def.Signs.HasAnyContradiction() {
		result = multierror.Append(result, fmt.Errorf("logic %q: contradiction relation must contain at least one pair, else closure is impossible", def.Name))
	}

	// Every rule's premise sign is in the sign alphabet.
	for _, r := range def.Rules {
		if !def.Signs.Contains(r.Premise.Sign) {
			result = multierror.Append(result, fmt.Errorf("logic %q: rule %q premise sign %q is not in the sign alphabet", def.Name, r.Name, r.Premise.Sign))
		}
		if r.Kind == Alpha && len(r.Conclusions) != 1 {
			result = multierror.Append(result, fmt.Errorf("logic %q: alpha rule %q must have exactly one conclusion (branch extension), got %d", def.Name, r.Name, len(r.Conclusions)))
		}
		if r.Kind == Beta && len(r.Conclusions) < 2 {
			result = multierror.Append(result, fmt.Errorf("logic %q: beta rule %q must have at least two conclusions (branch extensions), got %d", def.Name, r.Name, len(r.Conclusions)))
		}
	}

	// Completeness: for every connective and every sign, at least one
	// rule's premise matches s : c(A1...An).
	if def.Connectives != nil {
		for _, spec := range def.Connectives.Ordered() {
			for _, s := range def.Signs.Signs() {
				if !hasDecomposingRule(def.Rules, s, spec) {
					result = multierror.Append(result, &RuleSetIncompleteError{Logic: def.Name, Sign: string(s), Connective: spec.Symbol})
				}
			}
		}
	}

	return result.ErrorOrNil()
}

func hasDecomposingRule(rules []*TableauRule, s Sign, spec ConnectiveSpec) bool {
	for _, r := range rules {
		if r.Premise.Sign != s {
			continue
		}
		fp := r.Premise.Formula
		if fp.Metavar != "" {
			continue // a bare metavariable premise cannot be said to decompose this specific connective
		}
		if fp.Symbol == spec.Symbol && len(fp.Args) == spec.Arity {
			return true
		}
	}
	return false
}
