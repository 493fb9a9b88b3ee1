package tableau

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/mitchellh/hashstructure/v2"
)

// Formula is an immutable (unsigned) formula term: either an atom (Arity()==0)
// or a compound consisting of a connective symbol and an ordered tuple of
// subformulas. Formulas are hash-consed: two structurally identical
// formulas built through NewAtom/NewCompound share the same *Formula, so
// equality reduces to pointer identity.
type Formula struct {
	symbol string
	args   []*Formula

	atomsOnce sync.Once
	atomSet   map[string]struct{}
}

// Symbol returns the atom's name, or the compound's connective symbol.
func (f *Formula) Symbol() string { return f.symbol }

// Args returns the ordered subformulas. Empty for an atom.
func (f *Formula) Args() []*Formula { return f.args }

// Arity returns len(Args()).
func (f *Formula) Arity() int { return len(f.args) }

// IsAtom reports whether this formula is an atomic formula.
func (f *Formula) IsAtom() bool { return len(f.args) == 0 }

// Equal reports structural identity. Interned formulas compare by pointer;
// the structural fallback only matters for formulas built outside the
// intern arena, which normal use of NewAtom/NewCompound never produces.
func (f *Formula) Equal(other *Formula) bool {
	if f == other {
		return true
	}
	if f == nil || other == nil {
		return false
	}
	if f.symbol != other.symbol || len(f.args) != len(other.args) {
		return false
	}
	for i := range f.args {
		if !f.args[i].Equal(other.args[i]) {
			return false
		}
	}
	return true
}

// String renders f in fully parenthesised prefix form, e.g. "&(p, ~(q))";
// use PrintWithTable for infix output driven by a connective table.
func (f *Formula) String() string {
	return f.print(nil, 0)
}

// PrintWithTable renders f using table's precedence/associativity/fixity
// information, omitting parentheses wherever the connective's own
// precedence and associativity already force the intended grouping.
func (f *Formula) PrintWithTable(table *ConnectiveTable) string {
	return f.print(table, 0)
}

func (f *Formula) print(table *ConnectiveTable, parentPrec int) string {
	if f.IsAtom() {
		return f.symbol
	}
	if table == nil {
		parts := make([]string, len(f.args))
		for i, a := range f.args {
			parts[i] = a.print(table, 0)
		}
		return fmt.Sprintf("%s(%s)", f.symbol, strings.Join(parts, ", "))
	}
	spec, ok := table.Lookup(f.symbol, len(f.args))
	if !ok {
		parts := make([]string, len(f.args))
		for i, a := range f.args {
			parts[i] = a.print(table, 0)
		}
		return fmt.Sprintf("%s(%s)", f.symbol, strings.Join(parts, ", "))
	}

	var rendered string
	switch spec.Fixity {
	case FixityPrefix:
		rendered = spec.Symbol + f.args[0].print(table, spec.Precedence)
	case FixityInfix:
		leftPrec, rightPrec := spec.Precedence, spec.Precedence+1
		if spec.Associativity == AssocRight {
			leftPrec, rightPrec = spec.Precedence+1, spec.Precedence
		}
		rendered = fmt.Sprintf("%s %s %s",
			f.args[0].print(table, leftPrec),
			spec.Symbol,
			f.args[1].print(table, rightPrec))
	default:
		rendered = fmt.Sprintf("%s(%s)", f.symbol, f.args[0].print(table, 0))
	}

	if spec.Precedence < parentPrec {
		return "(" + rendered + ")"
	}
	return rendered
}

// Atoms returns the set of atom names occurring in f, computed lazily and
// cached on first use.
func (f *Formula) Atoms() map[string]struct{} {
	f.atomsOnce.Do(func() {
		set := map[string]struct{}{}
		var walk func(*Formula)
		walk = func(n *Formula) {
			if n.IsAtom() {
				set[n.symbol] = struct{}{}
				return
			}
			for _, a := range n.args {
				walk(a)
			}
		}
		walk(f)
		f.atomSet = set
	})
	return f.atomSet
}

// SortedAtoms returns Atoms() as a sorted slice, used wherever output must
// be deterministic (model field ordering, etc.)
func (f *Formula) SortedAtoms() []string {
	set := f.Atoms()
	out := make([]string, 0, len(set))
	for name := range set {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// --- hash-consing arena ---

var (
	internMu    sync.Mutex
	internArena = map[uint64][]*Formula{}
)

type internKey struct {
	Symbol string
	Args   []uint64
}

func formulaHandle(symbol string, args []*Formula) uint64 {
	childHandles := make([]uint64, len(args))
	for i, a := range args {
		childHandles[i] = a.handle()
	}
	h, err := hashstructure.Hash(internKey{Symbol: symbol, Args: childHandles}, hashstructure.FormatV2, nil)
	if err != nil {
		// hashstructure only fails on unsupported types; internKey is
		// composed entirely of strings/uint64, so this is unreachable.
		panic(fmt.Sprintf("tableau: hashing formula key: %v", err))
	}
	return h
}

// handle returns f's structural hash, used both as the intern key and as
// a cheap identity surrogate for logging/tracing.
func (f *Formula) handle() uint64 {
	return formulaHandle(f.symbol, f.args)
}

func intern(candidate *Formula) *Formula {
	h := candidate.handle()
	internMu.Lock()
	defer internMu.Unlock()
	for _, existing := range internArena[h] {
		if existing.Equal(candidate) {
			return existing
		}
	}
	internArena[h] = append(internArena[h], candidate)
	return candidate
}

// NewAtom creates (or returns the interned copy of) an atomic formula.
// name must be a letter followed by letters, digits, or underscores.
func NewAtom(name string) (*Formula, error) {
	if !isValidAtomName(name) {
		return nil, &ParseError{Kind: "UnknownSymbol", Expected: "atom", Got: name}
	}
	return intern(&Formula{symbol: name}), nil
}

// MustAtom is NewAtom but panics on error, for use with compile-time-known
// literal atom names (tests, built-in rule tables).
func MustAtom(name string) *Formula {
	f, err := NewAtom(name)
	if err != nil {
		panic(err)
	}
	return f
}

func isValidAtomName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z':
		case i > 0 && (r >= '0' && r <= '9' || r == '_'):
		default:
			return false
		}
	}
	return true
}

// NewCompound creates (or returns the interned copy of) a compound formula
// over symbol with the given subformulas. wantArity is the arity declared
// for symbol by the active connective table; it is a caller-supplied
// parameter (rather than looked up here) because the formula model itself
// carries no connective table — only the parser and logic definition do.
func NewCompound(symbol string, wantArity int, args ...*Formula) (*Formula, error) {
	if len(args) != wantArity {
		return nil, &ArityError{Symbol: symbol, Want: wantArity, Got: len(args)}
	}
	for i, a := range args {
		if a == nil {
			return nil, fmt.Errorf("tableau: NewCompound(%s): nil argument at index %d", symbol, i)
		}
	}
	cp := make([]*Formula, len(args))
	copy(cp, args)
	return intern(&Formula{symbol: symbol, args: cp}), nil
}
