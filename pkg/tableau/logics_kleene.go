package tableau

// Weak (external) three-valued Kleene logic: signs T, F, U ("undefined"),
// where any connective applied to a U operand yields U regardless of the
// other operand — as opposed to strong Kleene, where e.g. true-or-U is
// still true. Twelve rules total: three for negation, three each for
// conjunction, disjunction, and implication.

func init() {
	if err := DefaultRegistry.Register(weakKleeneLogic()); err != nil {
		panic(err)
	}
}

func weakKleeneLogic() *LogicDefinition {
	connectives := NewConnectiveTable(
		ConnectiveSpec{Symbol: "~", Arity: 1, Precedence: 4, Fixity: FixityPrefix},
		ConnectiveSpec{Symbol: "&", Arity: 2, Precedence: 3, Associativity: AssocLeft, Fixity: FixityInfix},
		ConnectiveSpec{Symbol: "|", Arity: 2, Precedence: 2, Associativity: AssocLeft, Fixity: FixityInfix},
		ConnectiveSpec{Symbol: "->", Arity: 2, Precedence: 1, Associativity: AssocRight, Fixity: FixityInfix},
	)

	signs, err := NewSignSystem(
		[]Sign{"T", "F", "U"},
		"T",
		[]Sign{"T"},
		[][2]Sign{{"T", "F"}, {"T", "U"}, {"F", "U"}},
	)
	if err != nil {
		panic(err)
	}

	weak := func(classical func(a, b TruthValue) TruthValue) TruthFunc {
		return func(a ...TruthValue) (TruthValue, error) {
			if a[0] == "undefined" || a[1] == "undefined" {
				return "undefined", nil
			}
			return classical(a[0], a[1]), nil
		}
	}

	truth, err := NewTruthSystem(
		[]TruthValue{"true", "false", "undefined"},
		[]TruthValue{"true"},
		map[string]TruthFunc{
			"~": func(a ...TruthValue) (TruthValue, error) {
				switch a[0] {
				case "true":
					return "false", nil
				case "false":
					return "true", nil
				default:
					return "undefined", nil
				}
			},
			"&": weak(func(a, b TruthValue) TruthValue {
				if a == "true" && b == "true" {
					return "true"
				}
				return "false"
			}),
			"|": weak(func(a, b TruthValue) TruthValue {
				if a == "true" || b == "true" {
					return "true"
				}
				return "false"
			}),
			"->": weak(func(a, b TruthValue) TruthValue {
				if a == "true" && b == "false" {
					return "false"
				}
				return "true"
			}),
		},
	)
	if err != nil {
		panic(err)
	}

	A, B := Var("A"), Var("B")

	rules := []*TableauRule{
		// Negation: α, one premise value determines the other directly.
		{Name: "T-neg", Kind: Alpha, Premise: SignedPattern{"T", App("~", A)},
			Conclusions: [][]SignedPattern{{{"F", A}}}},
		{Name: "F-neg", Kind: Alpha, Premise: SignedPattern{"F", App("~", A)},
			Conclusions: [][]SignedPattern{{{"T", A}}}},
		{Name: "U-neg", Kind: Alpha, Premise: SignedPattern{"U", App("~", A)},
			Conclusions: [][]SignedPattern{{{"U", A}}}},

		// Conjunction: T only from (T,T); F from any non-U combination
		// with at least one F; U whenever either operand is U.
		{Name: "T-and", Kind: Alpha, Premise: SignedPattern{"T", App("&", A, B)},
			Conclusions: [][]SignedPattern{{{"T", A}, {"T", B}}}},
		{Name: "F-and", Kind: Beta, Premise: SignedPattern{"F", App("&", A, B)},
			Conclusions: [][]SignedPattern{
				{{"T", A}, {"F", B}},
				{{"F", A}, {"T", B}},
				{{"F", A}, {"F", B}},
			}},
		{Name: "U-and", Kind: Beta, Premise: SignedPattern{"U", App("&", A, B)},
			Conclusions: [][]SignedPattern{{{"U", A}}, {{"U", B}}}},

		// Disjunction: dual of conjunction.
		{Name: "F-or", Kind: Alpha, Premise: SignedPattern{"F", App("|", A, B)},
			Conclusions: [][]SignedPattern{{{"F", A}, {"F", B}}}},
		{Name: "T-or", Kind: Beta, Premise: SignedPattern{"T", App("|", A, B)},
			Conclusions: [][]SignedPattern{
				{{"T", A}, {"T", B}},
				{{"T", A}, {"F", B}},
				{{"F", A}, {"T", B}},
			}},
		{Name: "U-or", Kind: Beta, Premise: SignedPattern{"U", App("|", A, B)},
			Conclusions: [][]SignedPattern{{{"U", A}}, {{"U", B}}}},

		// Implication: weak Kleene A->B behaves as ~A|B.
		{Name: "F-implies", Kind: Alpha, Premise: SignedPattern{"F", App("->", A, B)},
			Conclusions: [][]SignedPattern{{{"T", A}, {"F", B}}}},
		{Name: "T-implies", Kind: Beta, Premise: SignedPattern{"T", App("->", A, B)},
			Conclusions: [][]SignedPattern{
				{{"T", A}, {"T", B}},
				{{"F", A}, {"T", B}},
				{{"F", A}, {"F", B}},
			}},
		{Name: "U-implies", Kind: Beta, Premise: SignedPattern{"U", App("->", A, B)},
			Conclusions: [][]SignedPattern{{{"U", A}}, {{"U", B}}}},
	}

	return &LogicDefinition{
		Name:        "weak-kleene",
		Connectives: connectives,
		Signs:       signs,
		Truth:       truth,
		Rules:       rules,
		SignValue:   map[Sign]TruthValue{"T": "true", "F": "false", "U": "undefined"},
	}
}
