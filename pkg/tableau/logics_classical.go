package tableau

// Classical propositional logic: two signs (T, F), the usual connectives
// ~ & | ->, and the standard eight signed-tableau expansion rules
// (Smullyan's uniform notation, α/β split).

func init() {
	if err := DefaultRegistry.Register(classicalLogic()); err != nil {
		panic(err)
	}
}

func classicalLogic() *LogicDefinition {
	connectives := NewConnectiveTable(
		ConnectiveSpec{Symbol: "~", Arity: 1, Precedence: 4, Fixity: FixityPrefix},
		ConnectiveSpec{Symbol: "&", Arity: 2, Precedence: 3, Associativity: AssocLeft, Fixity: FixityInfix},
		ConnectiveSpec{Symbol: "|", Arity: 2, Precedence: 2, Associativity: AssocLeft, Fixity: FixityInfix},
		ConnectiveSpec{Symbol: "->", Arity: 2, Precedence: 1, Associativity: AssocRight, Fixity: FixityInfix},
	)

	signs, err := NewSignSystem(
		[]Sign{"T", "F"},
		"T",
		[]Sign{"T"},
		[][2]Sign{{"T", "F"}},
	)
	if err != nil {
		panic(err)
	}

	truth, err := NewTruthSystem(
		[]TruthValue{"true", "false"},
		[]TruthValue{"true"},
		map[string]TruthFunc{
			"~": func(a ...TruthValue) (TruthValue, error) {
				if a[0] == "true" {
					return "false", nil
				}
				return "true", nil
			},
			"&": func(a ...TruthValue) (TruthValue, error) {
				if a[0] == "true" && a[1] == "true" {
					return "true", nil
				}
				return "false", nil
			},
			"|": func(a ...TruthValue) (TruthValue, error) {
				if a[0] == "true" || a[1] == "true" {
					return "true", nil
				}
				return "false", nil
			},
			"->": func(a ...TruthValue) (TruthValue, error) {
				if a[0] == "true" && a[1] == "false" {
					return "false", nil
				}
				return "true", nil
			},
		},
	)
	if err != nil {
		panic(err)
	}

	A, B := Var("A"), Var("B")

	rules := []*TableauRule{
		{Name: "T-neg", Kind: Alpha, Premise: SignedPattern{"T", App("~", A)},
			Conclusions: [][]SignedPattern{{{"F", A}}}},
		{Name: "F-neg", Kind: Alpha, Premise: SignedPattern{"F", App("~", A)},
			Conclusions: [][]SignedPattern{{{"T", A}}}},
		{Name: "T-and", Kind: Alpha, Premise: SignedPattern{"T", App("&", A, B)},
			Conclusions: [][]SignedPattern{{{"T", A}, {"T", B}}}},
		{Name: "F-or", Kind: Alpha, Premise: SignedPattern{"F", App("|", A, B)},
			Conclusions: [][]SignedPattern{{{"F", A}, {"F", B}}}},
		{Name: "F-implies", Kind: Alpha, Premise: SignedPattern{"F", App("->", A, B)},
			Conclusions: [][]SignedPattern{{{"T", A}, {"F", B}}}},
		{Name: "F-and", Kind: Beta, Premise: SignedPattern{"F", App("&", A, B)},
			Conclusions: [][]SignedPattern{{{"F", A}}, {{"F", B}}}},
		{Name: "T-or", Kind: Beta, Premise: SignedPattern{"T", App("|", A, B)},
			Conclusions: [][]SignedPattern{{{"T", A}}, {{"T", B}}}},
		{Name: "T-implies", Kind: Beta, Premise: SignedPattern{"T", App("->", A, B)},
			Conclusions: [][]SignedPattern{{{"F", A}}, {{"T", B}}}},
	}

	return &LogicDefinition{
		Name:        "classical",
		Connectives: connectives,
		Signs:       signs,
		Truth:       truth,
		Rules:       rules,
		SignValue:   map[Sign]TruthValue{"T": "true", "F": "false"},
	}
}
