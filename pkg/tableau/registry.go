package tableau

import "sync"

// LogicRegistry is an append-only, concurrency-safe catalogue of
// LogicDefinitions, keyed by name. Registration is the only way a logic
// enters the registry, and once registered it is immutable: it can never
// be replaced or removed.
type LogicRegistry struct {
	mu   sync.RWMutex
	defs map[string]*LogicDefinition
}

// NewLogicRegistry returns an empty registry.
func NewLogicRegistry() *LogicRegistry {
	return &LogicRegistry{defs: map[string]*LogicDefinition{}}
}

// Register validates def's registration-time contracts and, if they all
// hold, adds it to the registry under def.Name. Rules are sorted into
// canonical scheduling order before storage, so callers of Lookup never
// need to re-sort. Registering a name that already exists is an error:
// registration is append-only, not replace-in-place.
func (r *LogicRegistry) Register(def *LogicDefinition) error {
	sorted := sortRules(def.Rules)
	candidate := *def
	candidate.Rules = sorted

	if err := checkContracts(&candidate); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.defs[candidate.Name]; exists {
		return &InternalInvariantError{Detail: "logic \"" + candidate.Name + "\" is already registered"}
	}
	r.defs[candidate.Name] = &candidate
	return nil
}

// Lookup returns the registered logic named name.
func (r *LogicRegistry) Lookup(name string) (*LogicDefinition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.defs[name]
	if !ok {
		return nil, &UnknownLogicError{Name: name}
	}
	return def, nil
}

// Names returns every registered logic's name.
func (r *LogicRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.defs))
	for n := range r.defs {
		out = append(out, n)
	}
	return out
}

// DefaultRegistry is the process-wide registry pre-populated with the
// built-in logics (classical, weak-Kleene, four-valued) by their
// respective init() functions.
var DefaultRegistry = NewLogicRegistry()
