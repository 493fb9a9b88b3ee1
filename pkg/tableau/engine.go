package tableau

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// EngineOption configures a Solve or Entails call.
type EngineOption func(*engineConfig)

type engineConfig struct {
	maxBranches int
	maxDepth    int
	timeout     time.Duration
	logger      *zap.Logger
}

func defaultEngineConfig() engineConfig {
	return engineConfig{
		maxBranches: 100_000,
		maxDepth:    500,
		timeout:     30 * time.Second,
		logger:      zap.NewNop(),
	}
}

// WithMaxBranches bounds the total number of branches a search may
// create before it reports StatusExhausted.
func WithMaxBranches(n int) EngineOption {
	return func(c *engineConfig) { c.maxBranches = n }
}

// WithMaxDepth bounds the deepest branch a search may create before it
// reports StatusExhausted.
func WithMaxDepth(n int) EngineOption {
	return func(c *engineConfig) { c.maxDepth = n }
}

// WithTimeout bounds how long a search may run before it reports
// StatusTimeout.
func WithTimeout(d time.Duration) EngineOption {
	return func(c *engineConfig) { c.timeout = d }
}

// WithLogger attaches a zap.Logger for structured per-rule-application
// tracing; the default is a no-op logger, so a zero-config call never
// logs.
func WithLogger(l *zap.Logger) EngineOption {
	return func(c *engineConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// worklistEntry is one branch pending expansion, carried on the DFS
// stack that drives the search loop.
type worklistEntry struct {
	branch *Branch
}

// runSolve drives the core tableau search: it seeds a root branch with
// seeds, then repeatedly picks the next unprocessed entry on the branch
// at the top of a LIFO worklist, applies the first matching rule, and
// either extends that branch in place (α) or splits it into its children
// (β), until the worklist is empty or a bound/cancellation/timeout
// triggers early termination.
func runSolve(ctx context.Context, def *LogicDefinition, seeds []SignedFormula, queryAtoms []string, opts ...EngineOption) (*Result, error) {
	cfg := defaultEngineConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	queryID := uuid.New()
	start := time.Now()
	deadline := start.Add(cfg.timeout)
	log := cfg.logger.With(zap.String("query_id", queryID.String()), zap.String("logic", def.Name))

	root := NewRootBranch()
	root.attachLogic(def)
	for _, sf := range seeds {
		root.Add(sf)
	}

	stats := Stats{QueryID: queryID, BranchesExplored: 1}
	var openBranches []*Branch
	status := StatusOK

	worklist := []*worklistEntry{{branch: root}}

expand:
	for len(worklist) > 0 {
		if ctx.Err() != nil {
			status = StatusCancelled
			break
		}
		if time.Now().After(deadline) {
			status = StatusTimeout
			break
		}
		if stats.BranchesExplored > cfg.maxBranches {
			status = StatusExhausted
			break
		}

		top := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		branch := top.branch

		if branch.Closed() {
			stats.BranchesClosed++
			continue
		}
		if branch.Depth() > cfg.maxDepth {
			status = StatusExhausted
			break
		}
		if branch.Depth() > stats.MaxDepthReached {
			stats.MaxDepthReached = branch.Depth()
		}

		for {
			e := branch.NextUnprocessed()
			if e == nil {
				openBranches = append(openBranches, branch)
				continue expand
			}
			if e.Formula.IsAtom() {
				e.processed = true
				continue
			}

			rule, binding, ok := firstMatchingRule(def.Rules, e.SignedFormula)
			if !ok {
				status = StatusRuleSetIncomplete
				break expand
			}
			e.processed = true
			stats.RulesApplied++
			log.Debug("apply rule", zap.String("rule", rule.Name), zap.String("kind", rule.Kind.String()))

			switch rule.Kind {
			case Alpha:
				for _, pattern := range rule.Conclusions[0] {
					sf, err := Instantiate(pattern, binding)
					if err != nil {
						return nil, err
					}
					branch.Add(sf)
				}
				if branch.Closed() {
					stats.BranchesClosed++
					continue expand
				}
			case Beta:
				// Pending entries go to each child as fresh copies, so one
				// sibling's expansion cannot hide them from another.
				var pending []SignedFormula
				chain := branch.chainToRoot()
				for i := len(chain) - 1; i >= 0; i-- {
					for _, pe := range chain[i].own {
						if !pe.processed {
							pending = append(pending, pe.SignedFormula)
							pe.processed = true
						}
					}
				}
				children := make([]*Branch, 0, len(rule.Conclusions))
				for _, conclusionBranch := range rule.Conclusions {
					child := branch.Child(mustInstantiate(conclusionBranch[0], binding))
					for _, pattern := range conclusionBranch[1:] {
						sf, err := Instantiate(pattern, binding)
						if err != nil {
							return nil, err
						}
						child.Add(sf)
					}
					for _, sf := range pending {
						child.Add(sf)
					}
					stats.BranchesExplored++
					children = append(children, child)
				}
				// Children are created left-to-right (so branch ids and
				// discovery order follow the rule's declared conclusion
				// order) but pushed onto the LIFO worklist in reverse, so
				// the leftmost child is the next one popped and explored.
				for i := len(children) - 1; i >= 0; i-- {
					worklist = append(worklist, &worklistEntry{branch: children[i]})
				}
				continue expand
			}
		}
	}

	stats.Elapsed = time.Since(start)
	models := extractModels(def, openBranches, queryAtoms)
	return &Result{
		Satisfiable: len(openBranches) > 0,
		Models:      models,
		Status:      status,
		Stats:       stats,
	}, nil
}

func mustInstantiate(pattern SignedPattern, b Binding) SignedFormula {
	sf, err := Instantiate(pattern, b)
	if err != nil {
		panic(&InternalInvariantError{Detail: err.Error()})
	}
	return sf
}

// firstMatchingRule returns the first rule (in the logic's canonical
// (kind, priority, declaration) order) whose premise matches sf. The
// registration-time completeness contract (logic.go's checkContracts)
// guarantees at least one rule per sign/connective pair; the built-in
// logics declare exactly one, so only one can match there. For a
// hand-authored YAML logic with overlapping premises, the
// earliest-scheduled rule wins.
func firstMatchingRule(rules []*TableauRule, sf SignedFormula) (*TableauRule, Binding, bool) {
	for _, r := range rules {
		if b, ok := Match(r.Premise, sf); ok {
			return r, b, true
		}
	}
	return nil, nil, false
}

// runEntails decides whether conclusion is entailed by premises under
// def. A premise only asserts "this holds", not "this carries the
// logic's single default sign" — in a multi-valued logic a designated
// value other than the default can also make a premise true (e.g.
// four-valued's M is designated alongside T). So every combination of a
// designated sign per premise, paired with a non-designated sign for the
// conclusion, is its own candidate countermodel search; entailment holds
// iff every combination's search closes. Finding even one open branch in
// any combination exhibits a countermodel and settles the answer as
// False immediately — this is what keeps a paraconsistent logic's
// explosion principle from silently validating. An inconclusive
// sub-search (bound/timeout/cancellation) that never finds a
// countermodel makes the overall answer Unknown rather than a guessed
// True.
func runEntails(ctx context.Context, def *LogicDefinition, premises []*Formula, conclusion *Formula, opts ...EngineOption) (*EntailmentResult, error) {
	queryID := uuid.New()
	start := time.Now()

	atomSet := map[string]struct{}{}
	for _, f := range premises {
		for a := range f.Atoms() {
			atomSet[a] = struct{}{}
		}
	}
	for a := range conclusion.Atoms() {
		atomSet[a] = struct{}{}
	}
	atoms := make([]string, 0, len(atomSet))
	for a := range atomSet {
		atoms = append(atoms, a)
	}

	var aggStats Stats
	inconclusive := false
	designated := def.Signs.Designated()

	for _, premiseSigns := range cartesianSigns(designated, len(premises)) {
		for _, cs := range def.Signs.NonDesignated() {
			seeds := make([]SignedFormula, 0, len(premises)+1)
			for i, p := range premises {
				seeds = append(seeds, SignedFormula{Sign: premiseSigns[i], Formula: p})
			}
			seeds = append(seeds, SignedFormula{Sign: cs, Formula: conclusion})

			res, err := runSolve(ctx, def, seeds, atoms, opts...)
			if err != nil {
				return nil, err
			}
			aggStats.BranchesExplored += res.Stats.BranchesExplored
			aggStats.BranchesClosed += res.Stats.BranchesClosed
			aggStats.RulesApplied += res.Stats.RulesApplied
			if res.Stats.MaxDepthReached > aggStats.MaxDepthReached {
				aggStats.MaxDepthReached = res.Stats.MaxDepthReached
			}

			if res.Satisfiable {
				aggStats.QueryID = queryID
				aggStats.Elapsed = time.Since(start)
				return &EntailmentResult{Holds: False, Status: StatusOK, Stats: aggStats}, nil
			}
			if res.Status != StatusOK {
				inconclusive = true
			}
		}
	}

	aggStats.QueryID = queryID
	aggStats.Elapsed = time.Since(start)
	if inconclusive {
		return &EntailmentResult{Holds: Unknown, Status: StatusExhausted, Stats: aggStats}, nil
	}
	return &EntailmentResult{Holds: True, Status: StatusOK, Stats: aggStats}, nil
}

// cartesianSigns returns every length-n sequence drawn from signs (n =
// number of premises), used to enumerate which designated sign each
// premise might individually carry.
func cartesianSigns(signs []Sign, n int) [][]Sign {
	if n == 0 {
		return [][]Sign{{}}
	}
	rest := cartesianSigns(signs, n-1)
	out := make([][]Sign, 0, len(signs)*len(rest))
	for _, s := range signs {
		for _, r := range rest {
			seq := append(append([]Sign{}, s), r...)
			out = append(out, seq)
		}
	}
	return out
}
