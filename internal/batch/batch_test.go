package batch_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gitrdm/tableaux/internal/batch"
	"github.com/gitrdm/tableaux/pkg/tableau"
)

func TestRunPreservesInputOrder(t *testing.T) {
	logic, err := tableau.OpenLogic("classical")
	require.NoError(t, err)

	var jobs []batch.Job
	var want []bool
	var wantModels []tableau.Model
	for i := 0; i < 20; i++ {
		name := "p"
		if i%2 == 0 {
			name = "q"
		}
		atom, err := tableau.Atom(name)
		require.NoError(t, err)

		f := atom
		sign := tableau.Sign("T")
		value := tableau.TruthValue("true")
		if i%3 == 0 {
			sign = "F"
			value = "false"
		}
		jobs = append(jobs, batch.Job{Logic: logic, Formula: f, Sign: sign})
		want = append(want, true) // an atom is satisfiable under either sign
		// The single model names the job's own atom and sign, so a result
		// returned in the wrong slot would not match.
		wantModels = append(wantModels, tableau.Model{name: value})
	}

	results := batch.Run(context.Background(), jobs, 4)
	require.Len(t, results, len(jobs))
	for i, r := range results {
		require.NoError(t, r.Err, "job %d", i)
		require.Equal(t, want[i], r.Result.Satisfiable, "job %d", i)
		require.Equal(t, []tableau.Model{wantModels[i]}, r.Result.Models, "job %d", i)
	}
}

func TestRunEmpty(t *testing.T) {
	results := batch.Run(context.Background(), nil, 2)
	require.Empty(t, results)
}

func TestRunSingleWorker(t *testing.T) {
	logic, err := tableau.OpenLogic("classical")
	require.NoError(t, err)
	p, err := tableau.Atom("p")
	require.NoError(t, err)

	jobs := []batch.Job{
		{Logic: logic, Formula: p, Sign: "T"},
		{Logic: logic, Formula: p, Sign: "F"},
	}
	results := batch.Run(context.Background(), jobs, 1)
	require.Len(t, results, 2)
	for _, r := range results {
		require.NoError(t, r.Err)
		require.True(t, r.Result.Satisfiable)
	}
}
