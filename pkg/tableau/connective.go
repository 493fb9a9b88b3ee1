package tableau

import "sort"

// Associativity resolves grouping among connectives sharing a precedence.
type Associativity int

const (
	AssocNone Associativity = iota
	AssocLeft
	AssocRight
)

// Fixity distinguishes prefix (unary) connectives from infix (binary) ones.
type Fixity int

const (
	FixityPrefix Fixity = iota
	FixityInfix
)

// ConnectiveSpec describes one connective: its surface symbol, arity,
// parsing precedence, associativity, and fixity. Connectives of equal
// precedence are disambiguated by associativity; the parser in parser.go
// is driven entirely by a ConnectiveTable built from these records.
type ConnectiveSpec struct {
	Symbol        string
	Arity         int
	Precedence    int
	Associativity Associativity
	Fixity        Fixity
}

// ConnectiveTable is the ordered, precedence-sorted table of connectives
// for one logic. It is immutable once built by NewConnectiveTable.
type ConnectiveTable struct {
	bySymbol map[string]ConnectiveSpec
	ordered  []ConnectiveSpec // sorted by precedence ascending, ties by symbol
}

// NewConnectiveTable builds a table from specs, sorted by precedence and
// indexed by symbol. Symbols must be unique; duplicate symbols are a
// programmer error and the last one wins (mirrors a simple map literal).
func NewConnectiveTable(specs ...ConnectiveSpec) *ConnectiveTable {
	t := &ConnectiveTable{bySymbol: map[string]ConnectiveSpec{}}
	for _, s := range specs {
		t.bySymbol[s.Symbol] = s
	}
	for _, s := range t.bySymbol {
		t.ordered = append(t.ordered, s)
	}
	sort.Slice(t.ordered, func(i, j int) bool {
		if t.ordered[i].Precedence != t.ordered[j].Precedence {
			return t.ordered[i].Precedence < t.ordered[j].Precedence
		}
		return t.ordered[i].Symbol < t.ordered[j].Symbol
	})
	return t
}

// Lookup returns the spec registered for symbol, reporting false if the
// symbol is unknown or its declared arity differs from arity. The table
// is keyed by symbol alone, so one symbol never has specs for two arities.
func (t *ConnectiveTable) Lookup(symbol string, arity int) (ConnectiveSpec, bool) {
	s, ok := t.bySymbol[symbol]
	if !ok || s.Arity != arity {
		return ConnectiveSpec{}, false
	}
	return s, true
}

// Get returns the spec registered for symbol regardless of arity.
func (t *ConnectiveTable) Get(symbol string) (ConnectiveSpec, bool) {
	s, ok := t.bySymbol[symbol]
	return s, ok
}

// Symbols returns every connective symbol, longest first, so the
// tokenizer can longest-match ("->" before "-").
func (t *ConnectiveTable) Symbols() []string {
	out := make([]string, 0, len(t.bySymbol))
	for s := range t.bySymbol {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return len(out[i]) > len(out[j]) })
	return out
}

// Ordered returns the table in ascending-precedence order.
func (t *ConnectiveTable) Ordered() []ConnectiveSpec { return t.ordered }
