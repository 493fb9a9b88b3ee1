package tableau

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// LogicSpec is the YAML-facing shape of a logic definition: a declarative
// description that LoadLogicDefinition turns into a *LogicDefinition.
// Registering that result runs the same registration contract checks as
// for the built-in logics.
type LogicSpec struct {
	Name       string                `yaml:"name"`
	Signs      []string              `yaml:"signs"`
	Default    string                `yaml:"default"`
	Designated []string              `yaml:"designated"`
	Contradict [][2]string           `yaml:"contradictions"`
	Connectives []ConnectiveSpecYAML `yaml:"connectives"`
	Rules      []RuleSpecYAML        `yaml:"rules"`
	SignValue  map[string]string     `yaml:"sign_values"`
}

// ConnectiveSpecYAML is one connective entry in a LogicSpec.
type ConnectiveSpecYAML struct {
	Symbol        string `yaml:"symbol"`
	Arity         int    `yaml:"arity"`
	Precedence    int    `yaml:"precedence"`
	Associativity string `yaml:"associativity"` // "left", "right", or "" for none
	Fixity        string `yaml:"fixity"`         // "prefix" or "infix"
}

// RuleSpecYAML is one tableau rule entry. A premise/conclusion formula is
// written as an S-expression string ("A", "& A B", "~ A") parsed by
// parsePatternSExpr.
type RuleSpecYAML struct {
	Name        string       `yaml:"name"`
	Kind        string       `yaml:"kind"` // "alpha" or "beta"
	PremiseSign string       `yaml:"premise_sign"`
	Premise     string       `yaml:"premise"`
	Priority    int          `yaml:"priority"`
	Branches    [][]SignedPatternYAML `yaml:"branches"`
}

// SignedPatternYAML is one signed-formula pattern in a rule's branch list.
type SignedPatternYAML struct {
	Sign    string `yaml:"sign"`
	Formula string `yaml:"formula"`
}

// LoadLogicDefinition reads a LogicSpec from r and builds the
// *LogicDefinition it describes. It does not register the result; call
// DefaultRegistry.Register (or a private registry's Register) to do
// that, which is also where registration-time contract checking happens.
func LoadLogicDefinition(r io.Reader) (*LogicDefinition, error) {
	var spec LogicSpec
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&spec); err != nil {
		return nil, fmt.Errorf("tableau: decoding logic YAML: %w", err)
	}

	specs := make([]ConnectiveSpec, 0, len(spec.Connectives))
	for _, c := range spec.Connectives {
		assoc := AssocNone
		switch c.Associativity {
		case "left":
			assoc = AssocLeft
		case "right":
			assoc = AssocRight
		}
		fixity := FixityInfix
		if c.Fixity == "prefix" {
			fixity = FixityPrefix
		}
		specs = append(specs, ConnectiveSpec{
			Symbol: c.Symbol, Arity: c.Arity, Precedence: c.Precedence,
			Associativity: assoc, Fixity: fixity,
		})
	}
	connectives := NewConnectiveTable(specs...)

	signs := make([]Sign, len(spec.Signs))
	for i, s := range spec.Signs {
		signs[i] = Sign(s)
	}
	designated := make([]Sign, len(spec.Designated))
	for i, s := range spec.Designated {
		designated[i] = Sign(s)
	}
	contradictions := make([][2]Sign, len(spec.Contradict))
	for i, pair := range spec.Contradict {
		contradictions[i] = [2]Sign{Sign(pair[0]), Sign(pair[1])}
	}
	signSystem, err := NewSignSystem(signs, Sign(spec.Default), designated, contradictions)
	if err != nil {
		return nil, err
	}

	signValue := make(map[Sign]TruthValue, len(spec.SignValue))
	values := make([]TruthValue, 0, len(spec.SignValue))
	for s, v := range spec.SignValue {
		signValue[Sign(s)] = TruthValue(v)
		values = append(values, TruthValue(v))
	}
	truth, err := NewTruthSystem(values, values, nil)
	if err != nil {
		return nil, err
	}

	rules := make([]*TableauRule, 0, len(spec.Rules))
	for _, rs := range spec.Rules {
		premisePat, err := parsePatternSExpr(rs.Premise)
		if err != nil {
			return nil, fmt.Errorf("tableau: rule %q: premise: %w", rs.Name, err)
		}
		kind := Alpha
		if rs.Kind == "beta" {
			kind = Beta
		}
		conclusions := make([][]SignedPattern, 0, len(rs.Branches))
		for _, branch := range rs.Branches {
			sps := make([]SignedPattern, 0, len(branch))
			for _, sp := range branch {
				fp, err := parsePatternSExpr(sp.Formula)
				if err != nil {
					return nil, fmt.Errorf("tableau: rule %q: conclusion: %w", rs.Name, err)
				}
				sps = append(sps, SignedPattern{Sign: Sign(sp.Sign), Formula: fp})
			}
			conclusions = append(conclusions, sps)
		}
		rules = append(rules, &TableauRule{
			Name:        rs.Name,
			Kind:        kind,
			Premise:     SignedPattern{Sign: Sign(rs.PremiseSign), Formula: premisePat},
			Conclusions: conclusions,
			Priority:    rs.Priority,
		})
	}

	return &LogicDefinition{
		Name:        spec.Name,
		Connectives: connectives,
		Signs:       signSystem,
		Truth:       truth,
		Rules:       rules,
		SignValue:   signValue,
	}, nil
}

// parsePatternSExpr parses a formula pattern written as a prefix
// S-expression, e.g. "A", "~ A", "& A B". Only the symbols in sexprArity
// (~ & | ->) are read as connectives, each applied to the next
// whitespace-separated sub-patterns, recursively; any other token is a
// metavariable.
func parsePatternSExpr(src string) (*FormulaPattern, error) {
	toks := tokenizeSExpr(src)
	if len(toks) == 0 {
		return nil, fmt.Errorf("empty pattern")
	}
	pat, rest, err := parseSExprTokens(toks)
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		return nil, fmt.Errorf("trailing tokens in pattern %q", src)
	}
	return pat, nil
}

func tokenizeSExpr(src string) []string {
	var toks []string
	cur := ""
	for _, r := range src {
		if r == ' ' || r == '\t' || r == '\n' {
			if cur != "" {
				toks = append(toks, cur)
				cur = ""
			}
			continue
		}
		cur += string(r)
	}
	if cur != "" {
		toks = append(toks, cur)
	}
	return toks
}

// sexprArity fixes how many subpattern tokens follow each connective
// symbol, so the recursive-descent parser below knows when to stop
// consuming arguments without needing explicit parentheses.
var sexprArity = map[string]int{"~": 1, "&": 2, "|": 2, "->": 2}

func parseSExprTokens(toks []string) (*FormulaPattern, []string, error) {
	if len(toks) == 0 {
		return nil, nil, fmt.Errorf("unexpected end of pattern")
	}
	head, rest := toks[0], toks[1:]

	arity, isConnective := sexprArity[head]
	if !isConnective {
		return Var(head), rest, nil
	}

	args := make([]*FormulaPattern, 0, arity)
	for i := 0; i < arity; i++ {
		var arg *FormulaPattern
		var err error
		arg, rest, err = parseSExprTokens(rest)
		if err != nil {
			return nil, nil, err
		}
		args = append(args, arg)
	}
	return App(head, args...), rest, nil
}
