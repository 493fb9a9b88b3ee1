// Package batch fans independent tableau queries out across a fixed
// worker pool while preserving input order in the returned results,
// regardless of which job finishes first.
package batch

import (
	"context"
	"runtime"
	"sync"

	"github.com/gitrdm/tableaux/internal/parallel"
	"github.com/gitrdm/tableaux/pkg/tableau"
)

// Job is one unit of batch work: solve f (signed with Sign, or the
// logic's default sign if Sign is empty) under Logic.
type Job struct {
	Logic   *tableau.LogicDefinition
	Formula *tableau.Formula
	Sign    tableau.Sign
	Options []tableau.EngineOption
}

// Outcome pairs a Job's result with any error Solve returned for it.
type Outcome struct {
	Result *tableau.Result
	Err    error
}

// Run solves every job concurrently on a pool of workers (sized to
// runtime.NumCPU() if workers <= 0) and returns one Outcome per job, in
// the same order jobs were given — the concurrency is invisible to the
// caller except in wall-clock time.
func Run(ctx context.Context, jobs []Job, workers int) []Outcome {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	pool := parallel.NewWorkerPool(workers)
	defer pool.Shutdown()

	results := make([]Outcome, len(jobs))
	var wg sync.WaitGroup
	wg.Add(len(jobs))

	for i, job := range jobs {
		i, job := i, job
		err := pool.Submit(ctx, func() {
			defer wg.Done()
			res, err := tableau.Solve(ctx, job.Logic, job.Formula, job.Sign, job.Options...)
			results[i] = Outcome{Result: res, Err: err}
		})
		if err != nil {
			results[i] = Outcome{Err: err}
			wg.Done()
		}
	}

	wg.Wait()
	return results
}
