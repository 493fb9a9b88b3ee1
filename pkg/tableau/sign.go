package tableau

import "fmt"

// Sign is a symbol drawn from an active logic's finite, closed sign
// alphabet (e.g. classical: {T,F}; weak-Kleene: {T,F,U}).
type Sign string

// SignSystem bundles a logic's sign alphabet, its default sign, the
// subset of signs that are "designated" (count as satisfaction), and the
// symmetric, irreflexive contradiction relation between signs.
type SignSystem struct {
	signs        map[Sign]bool
	order        []Sign // declaration order, for deterministic iteration
	deflt        Sign
	designated   map[Sign]bool
	contradicts  map[Sign]map[Sign]bool
}

// NewSignSystem validates and builds a SignSystem. It does not perform
// the full registration-time contract checking (empty designated set,
// missing contradiction pairs) — that belongs to LogicRegistry.Register,
// which can aggregate every violation across the whole LogicDefinition
// into one error.
func NewSignSystem(signs []Sign, deflt Sign, designated []Sign, contradictions [][2]Sign) (*SignSystem, error) {
	if len(signs) == 0 {
		return nil, fmt.Errorf("tableau: sign alphabet must be non-empty")
	}
	set := make(map[Sign]bool, len(signs))
	for _, s := range signs {
		set[s] = true
	}
	if !set[deflt] {
		return nil, fmt.Errorf("tableau: default sign %q is not in the sign alphabet", deflt)
	}
	des := map[Sign]bool{}
	for _, s := range designated {
		if !set[s] {
			return nil, fmt.Errorf("tableau: designated sign %q is not in the sign alphabet", s)
		}
		des[s] = true
	}
	contra := map[Sign]map[Sign]bool{}
	for _, pair := range contradictions {
		a, b := pair[0], pair[1]
		if !set[a] || !set[b] {
			return nil, fmt.Errorf("tableau: contradiction pair (%q,%q) references an unknown sign", a, b)
		}
		if a == b {
			return nil, fmt.Errorf("tableau: contradiction relation must be irreflexive, got (%q,%q)", a, b)
		}
		if contra[a] == nil {
			contra[a] = map[Sign]bool{}
		}
		if contra[b] == nil {
			contra[b] = map[Sign]bool{}
		}
		contra[a][b] = true
		contra[b][a] = true
	}
	return &SignSystem{
		signs:       set,
		order:       append([]Sign(nil), signs...),
		deflt:       deflt,
		designated:  des,
		contradicts: contra,
	}, nil
}

// Contains reports whether s is in the sign alphabet.
func (ss *SignSystem) Contains(s Sign) bool { return ss.signs[s] }

// Default returns the logic's default (seed) sign.
func (ss *SignSystem) Default() Sign { return ss.deflt }

// Signs returns the alphabet in declaration order.
func (ss *SignSystem) Signs() []Sign { return append([]Sign(nil), ss.order...) }

// Designated returns the designated signs in declaration order.
func (ss *SignSystem) Designated() []Sign {
	out := make([]Sign, 0, len(ss.designated))
	for _, s := range ss.order {
		if ss.designated[s] {
			out = append(out, s)
		}
	}
	return out
}

// NonDesignated returns the non-designated signs in declaration order.
func (ss *SignSystem) NonDesignated() []Sign {
	out := make([]Sign, 0, len(ss.signs)-len(ss.designated))
	for _, s := range ss.order {
		if !ss.designated[s] {
			out = append(out, s)
		}
	}
	return out
}

// IsDesignated reports whether s counts as true for satisfaction/entailment.
func (ss *SignSystem) IsDesignated(s Sign) bool { return ss.designated[s] }

// Contradicts reports whether a and b may never be jointly asserted about
// the same formula on one branch.
func (ss *SignSystem) Contradicts(a, b Sign) bool {
	m := ss.contradicts[a]
	return m != nil && m[b]
}

// HasAnyContradiction reports whether the relation has at least one
// pair; a logic with none could never close a branch, so registration
// rejects it.
func (ss *SignSystem) HasAnyContradiction() bool {
	for _, m := range ss.contradicts {
		if len(m) > 0 {
			return true
		}
	}
	return false
}
