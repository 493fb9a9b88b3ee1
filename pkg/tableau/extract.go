package tableau

import "sort"

// extractModels converts every open branch into one or more models over
// queryAtoms, then deduplicates the result: two branches that produce
// literally the same atom assignment are a redundant witness of the same
// model, kept once in first-discovery order.
func extractModels(def *LogicDefinition, branches []*Branch, queryAtoms []string) []Model {
	var models []Model
	for _, b := range branches {
		models = append(models, modelsForBranch(def, b, queryAtoms)...)
	}
	return dedupeModels(models)
}

func modelsForBranch(def *LogicDefinition, b *Branch, queryAtoms []string) []Model {
	signsByAtom := map[string][]Sign{}
	for _, e := range b.Entries() {
		if !e.Formula.IsAtom() {
			continue
		}
		name := e.Formula.Symbol()
		dup := false
		for _, s := range signsByAtom[name] {
			if s == e.Sign {
				dup = true
				break
			}
		}
		if !dup {
			signsByAtom[name] = append(signsByAtom[name], e.Sign)
		}
	}

	base := Model{}
	var free []string
	for _, atom := range queryAtoms {
		signs, ok := signsByAtom[atom]
		if !ok || len(signs) == 0 {
			free = append(free, atom)
			continue
		}
		v, err := valueForSigns(def, signs)
		if err != nil {
			// The branch's closure index would already have flagged this
			// as closed for any sign pair the logic declares
			// contradictory; surviving here means a custom (e.g.
			// YAML-loaded) logic left the atom under-constrained. Treat
			// it as free rather than fail the whole extraction.
			free = append(free, atom)
			continue
		}
		base[atom] = v
	}

	if len(free) == 0 {
		return []Model{base}
	}
	return expandFreeAtoms(def, base, free)
}

// valueForSigns resolves the truth value an atom takes on given the set
// of signs a branch assigned it. A single sign maps directly; more than
// one non-contradicting sign (possible only for a custom logic whose
// contradiction relation doesn't cover every sign pair) is resolved via
// the logic's Join function.
func valueForSigns(def *LogicDefinition, signs []Sign) (TruthValue, error) {
	if len(signs) == 1 {
		v, ok := def.SignValue[signs[0]]
		if !ok {
			return "", &UnknownSignError{Logic: def.Name, Sign: string(signs[0])}
		}
		return v, nil
	}
	if def.Join == nil {
		return "", &InternalInvariantError{Detail: "atom carries multiple signs but logic defines no Join function"}
	}
	return def.Join(signs)
}

// expandFreeAtoms enumerates one model per assignment of each of the
// logic's truth values to every atom the branch never mentioned: such an
// atom is wholly unconstrained by the seed formula, so every value it
// could take yields a distinct, equally valid model. For example, a
// branch seeded by "T p" alone still admits q=false as well as q=true.
func expandFreeAtoms(def *LogicDefinition, base Model, free []string) []Model {
	all := def.Signs.Signs()
	if len(all) == 0 {
		return []Model{base}
	}
	models := []Model{base}
	for _, atom := range free {
		var next []Model
		for _, m := range models {
			for _, s := range all {
				cp := make(Model, len(m)+1)
				for k, v := range m {
					cp[k] = v
				}
				cp[atom] = def.SignValue[s]
				next = append(next, cp)
			}
		}
		models = next
	}
	return models
}

func dedupeModels(models []Model) []Model {
	seen := map[string]bool{}
	var out []Model
	for _, m := range models {
		key := modelKey(m)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, m)
	}
	return out
}

func modelKey(m Model) string {
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	sort.Strings(names)
	key := ""
	for _, n := range names {
		key += n + "=" + string(m[n]) + ";"
	}
	return key
}
