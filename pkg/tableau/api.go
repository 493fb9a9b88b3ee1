package tableau

import "context"

// OpenLogic looks up a registered logic by name, e.g. "classical",
// "weak-kleene", "four-valued", or any name a caller has registered via
// LoadLogicDefinition and DefaultRegistry.Register.
func OpenLogic(name string) (*LogicDefinition, error) {
	return DefaultRegistry.Lookup(name)
}

// Atom builds an atomic formula named name.
func Atom(name string) (*Formula, error) {
	return NewAtom(name)
}

// ParseFormula parses src against logic's connective grammar.
func ParseFormula(logic *LogicDefinition, src string) (*Formula, error) {
	return Parse(src, logic.Connectives)
}

// Solve runs the tableau method on f signed with sign, returning
// satisfiability, any extracted models, and search telemetry. Pass an
// empty sign to seed with logic's default (designated) sign — the
// ordinary "is f satisfiable" query.
func Solve(ctx context.Context, logic *LogicDefinition, f *Formula, sign Sign, opts ...EngineOption) (*Result, error) {
	if sign == "" {
		sign = logic.Signs.Default()
	}
	if !logic.Signs.Contains(sign) {
		return nil, &UnknownSignError{Logic: logic.Name, Sign: string(sign)}
	}
	return runSolve(ctx, logic, []SignedFormula{{Sign: sign, Formula: f}}, f.SortedAtoms(), opts...)
}

// Entails decides whether conclusion follows from premises under logic,
// returning a tri-state result since a search that exhausts its bounds
// without finding a countermodel can neither confirm nor refute
// entailment.
func Entails(ctx context.Context, logic *LogicDefinition, premises []*Formula, conclusion *Formula, opts ...EngineOption) (*EntailmentResult, error) {
	return runEntails(ctx, logic, premises, conclusion, opts...)
}
