package tableau

import (
	"time"

	"github.com/google/uuid"
)

// Status reports how a Solve/Entails call terminated.
type Status int

const (
	// StatusOK means the search ran to completion: either every branch
	// closed (unsatisfiable) or at least one branch saturated open
	// (satisfiable), with no bound exceeded.
	StatusOK Status = iota
	// StatusTimeout means the wall-clock timeout elapsed before the
	// search finished.
	StatusTimeout
	// StatusExhausted means a max-branches or max-depth bound was hit
	// before the search finished.
	StatusExhausted
	// StatusRuleSetIncomplete means the search reached a saturated branch
	// that still holds an unprocessed compound signed formula no rule in
	// the active logic can decompose — a logic-definition bug that
	// registration-time checking should have caught.
	StatusRuleSetIncomplete
	// StatusCancelled means the caller's context was cancelled.
	StatusCancelled
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusTimeout:
		return "timeout"
	case StatusExhausted:
		return "exhausted"
	case StatusRuleSetIncomplete:
		return "rule_set_incomplete"
	case StatusCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Stats reports search telemetry for one Solve/Entails call.
type Stats struct {
	QueryID          uuid.UUID
	BranchesExplored int
	BranchesClosed   int
	RulesApplied     int
	MaxDepthReached  int
	Elapsed          time.Duration
}

// Model maps atom names to the truth value assigned to them by one open
// branch.
type Model map[string]TruthValue

// Result is the outcome of a Solve call.
type Result struct {
	Satisfiable bool
	Models      []Model
	Status      Status
	Stats       Stats
}

// Tristate is the three-valued outcome of an Entails call, resolving the
// spec's entailment Open Question: a tableau can neither prove nor
// refute entailment within the given bounds, which is distinct from
// either a confirmed "yes" or "no".
type Tristate int

const (
	Unknown Tristate = iota
	True
	False
)

func (t Tristate) String() string {
	switch t {
	case True:
		return "true"
	case False:
		return "false"
	default:
		return "unknown"
	}
}

// EntailmentResult is the outcome of an Entails call.
type EntailmentResult struct {
	Holds Tristate
	Status Status
	Stats  Stats
}
