package tableau

// Four-valued paraconsistent (First Degree Entailment / Belnap-Dunn
// style) logic: signs T, F, M ("both"), N ("neither"), ordered by the
// truth lattice F < N < T and F < M < T with N, M incomparable.
// Conjunction/disjunction are lattice meet/join; negation swaps T/F and
// fixes M/N; implication is material (~A|B). Sixteen rules total, one
// per (sign, connective) pair. Every sign pair is mutually
// exclusive — an atom carries exactly one of the four values on a given
// branch — so, as with the other built-in logics, no Join function is
// needed for model extraction.

func init() {
	if err := DefaultRegistry.Register(fourValuedLogic()); err != nil {
		panic(err)
	}
}

func fourValuedLogic() *LogicDefinition {
	connectives := NewConnectiveTable(
		ConnectiveSpec{Symbol: "~", Arity: 1, Precedence: 4, Fixity: FixityPrefix},
		ConnectiveSpec{Symbol: "&", Arity: 2, Precedence: 3, Associativity: AssocLeft, Fixity: FixityInfix},
		ConnectiveSpec{Symbol: "|", Arity: 2, Precedence: 2, Associativity: AssocLeft, Fixity: FixityInfix},
		ConnectiveSpec{Symbol: "->", Arity: 2, Precedence: 1, Associativity: AssocRight, Fixity: FixityInfix},
	)

	signs, err := NewSignSystem(
		[]Sign{"T", "F", "M", "N"},
		"T",
		[]Sign{"T", "M"},
		[][2]Sign{{"T", "F"}, {"T", "M"}, {"T", "N"}, {"F", "M"}, {"F", "N"}, {"M", "N"}},
	)
	if err != nil {
		panic(err)
	}

	meet := func(a, b TruthValue) TruthValue {
		if a == b {
			return a
		}
		if a == "false" || b == "false" {
			return "false"
		}
		if a == "true" {
			return b
		}
		if b == "true" {
			return a
		}
		return "false" // meet(both, neither) = false: the lattice's two incomparable points
	}
	join := func(a, b TruthValue) TruthValue {
		if a == b {
			return a
		}
		if a == "true" || b == "true" {
			return "true"
		}
		if a == "false" {
			return b
		}
		if b == "false" {
			return a
		}
		return "true" // join(both, neither) = true
	}
	negate := func(v TruthValue) TruthValue {
		switch v {
		case "true":
			return "false"
		case "false":
			return "true"
		default:
			return v // both and neither are self-dual under negation
		}
	}

	truth, err := NewTruthSystem(
		[]TruthValue{"true", "false", "both", "neither"},
		[]TruthValue{"true", "both"},
		map[string]TruthFunc{
			"~": func(a ...TruthValue) (TruthValue, error) { return negate(a[0]), nil },
			"&": func(a ...TruthValue) (TruthValue, error) { return meet(a[0], a[1]), nil },
			"|": func(a ...TruthValue) (TruthValue, error) { return join(a[0], a[1]), nil },
			"->": func(a ...TruthValue) (TruthValue, error) { return join(negate(a[0]), a[1]), nil },
		},
	)
	if err != nil {
		panic(err)
	}

	A, B := Var("A"), Var("B")

	rules := []*TableauRule{
		// Negation: self-inverse pair plus two fixed points, one branch each.
		{Name: "T-neg", Kind: Alpha, Premise: SignedPattern{"T", App("~", A)},
			Conclusions: [][]SignedPattern{{{"F", A}}}},
		{Name: "F-neg", Kind: Alpha, Premise: SignedPattern{"F", App("~", A)},
			Conclusions: [][]SignedPattern{{{"T", A}}}},
		{Name: "M-neg", Kind: Alpha, Premise: SignedPattern{"M", App("~", A)},
			Conclusions: [][]SignedPattern{{{"M", A}}}},
		{Name: "N-neg", Kind: Alpha, Premise: SignedPattern{"N", App("~", A)},
			Conclusions: [][]SignedPattern{{{"N", A}}}},

		// Conjunction is the lattice meet of its operands.
		{Name: "T-and", Kind: Alpha, Premise: SignedPattern{"T", App("&", A, B)},
			Conclusions: [][]SignedPattern{{{"T", A}, {"T", B}}}},
		{Name: "F-and", Kind: Beta, Premise: SignedPattern{"F", App("&", A, B)},
			Conclusions: [][]SignedPattern{
				{{"F", A}},
				{{"F", B}},
				{{"M", A}, {"N", B}},
				{{"N", A}, {"M", B}},
			}},
		{Name: "M-and", Kind: Beta, Premise: SignedPattern{"M", App("&", A, B)},
			Conclusions: [][]SignedPattern{
				{{"M", A}, {"M", B}},
				{{"M", A}, {"T", B}},
				{{"T", A}, {"M", B}},
			}},
		{Name: "N-and", Kind: Beta, Premise: SignedPattern{"N", App("&", A, B)},
			Conclusions: [][]SignedPattern{
				{{"N", A}, {"N", B}},
				{{"N", A}, {"T", B}},
				{{"T", A}, {"N", B}},
			}},

		// Disjunction is the dual lattice join.
		{Name: "F-or", Kind: Alpha, Premise: SignedPattern{"F", App("|", A, B)},
			Conclusions: [][]SignedPattern{{{"F", A}, {"F", B}}}},
		{Name: "T-or", Kind: Beta, Premise: SignedPattern{"T", App("|", A, B)},
			Conclusions: [][]SignedPattern{
				{{"T", A}},
				{{"T", B}},
				{{"M", A}, {"N", B}},
				{{"N", A}, {"M", B}},
			}},
		{Name: "M-or", Kind: Beta, Premise: SignedPattern{"M", App("|", A, B)},
			Conclusions: [][]SignedPattern{
				{{"M", A}, {"M", B}},
				{{"M", A}, {"F", B}},
				{{"F", A}, {"M", B}},
			}},
		{Name: "N-or", Kind: Beta, Premise: SignedPattern{"N", App("|", A, B)},
			Conclusions: [][]SignedPattern{
				{{"N", A}, {"N", B}},
				{{"N", A}, {"F", B}},
				{{"F", A}, {"N", B}},
			}},

		// Implication is material: A->B = ~A|B.
		{Name: "F-implies", Kind: Alpha, Premise: SignedPattern{"F", App("->", A, B)},
			Conclusions: [][]SignedPattern{{{"T", A}, {"F", B}}}},
		{Name: "T-implies", Kind: Beta, Premise: SignedPattern{"T", App("->", A, B)},
			Conclusions: [][]SignedPattern{
				{{"F", A}},
				{{"T", A}, {"T", B}},
				{{"M", A}, {"T", B}},
				{{"M", A}, {"N", B}},
				{{"N", A}, {"T", B}},
				{{"N", A}, {"M", B}},
			}},
		{Name: "M-implies", Kind: Beta, Premise: SignedPattern{"M", App("->", A, B)},
			Conclusions: [][]SignedPattern{
				{{"T", A}, {"M", B}},
				{{"M", A}, {"M", B}},
				{{"M", A}, {"F", B}},
			}},
		{Name: "N-implies", Kind: Beta, Premise: SignedPattern{"N", App("->", A, B)},
			Conclusions: [][]SignedPattern{
				{{"T", A}, {"N", B}},
				{{"N", A}, {"N", B}},
				{{"N", A}, {"F", B}},
			}},
	}

	return &LogicDefinition{
		Name:        "four-valued",
		Connectives: connectives,
		Signs:       signs,
		Truth:       truth,
		Rules:       rules,
		SignValue:   map[Sign]TruthValue{"T": "true", "F": "false", "M": "both", "N": "neither"},
	}
}
