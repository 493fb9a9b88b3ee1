// Command tableauctl is a thin CLI wrapper over pkg/tableau's public
// API. It carries no tableau logic of its own: parsing, solving, and
// model extraction are all pkg/tableau calls.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/gitrdm/tableaux/internal/batch"
	"github.com/gitrdm/tableaux/pkg/tableau"
)

// Exit codes per the CLI contract.
const (
	exitSatisfiable   = 0
	exitUnsatisfiable = 1
	exitUsageError    = 2
	exitBoundExceeded = 3
)

type cliResult struct {
	Formula     string          `json:"formula"`
	Logic       string          `json:"logic"`
	Satisfiable bool            `json:"satisfiable"`
	Models      []tableau.Model `json:"models,omitempty"`
	Status      string          `json:"status"`
}

// outputFormat is a pflag.Value restricting --format to "text" or
// "json" at parse time, so an unrecognized value is rejected by cobra's
// own flag-parsing error path rather than by an ad-hoc check later.
type outputFormat string

var _ pflag.Value = (*outputFormat)(nil)

func (f *outputFormat) String() string { return string(*f) }

func (f *outputFormat) Set(v string) error {
	switch v {
	case "text", "json":
		*f = outputFormat(v)
		return nil
	default:
		return fmt.Errorf("format must be %q or %q, got %q", "text", "json", v)
	}
}

func (f *outputFormat) Type() string { return "format" }

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var logicName, signName string
	var showModels bool
	var timeoutSecs int
	format := outputFormat("text")

	exitCode := exitSatisfiable
	root := &cobra.Command{
		Use:           "tableauctl (formula | -)",
		Short:         "Decide satisfiability of a propositional formula via the analytic tableau method",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var code int
			var err error
			if args[0] == "-" {
				code, err = executeBatch(stdin, logicName, signName, string(format), showModels, timeoutSecs, stdout)
			} else {
				code, err = execute(args[0], logicName, signName, string(format), showModels, timeoutSecs, stdout)
			}
			exitCode = code
			return err
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.Flags()
	flags.StringVar(&logicName, "logic", "classical", "logic to use: classical, weak-kleene, four-valued")
	flags.StringVar(&signName, "sign", "", "sign to seed the formula with (default: logic's default sign)")
	flags.BoolVar(&showModels, "models", false, "include extracted models in the output")
	flags.Var(&format, "format", "output format: text or json")
	flags.IntVar(&timeoutSecs, "timeout", 30, "search timeout in seconds")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(stderr, "tableauctl:", err)
		if exitCode == exitSatisfiable {
			exitCode = exitUsageError
		}
	}
	return exitCode
}

func execute(formula, logicName, signName, format string, showModels bool, timeoutSecs int, stdout io.Writer) (int, error) {
	logic, err := tableau.OpenLogic(logicName)
	if err != nil {
		return exitUsageError, err
	}

	f, err := tableau.ParseFormula(logic, formula)
	if err != nil {
		return exitUsageError, err
	}

	sign := tableau.Sign(signName)
	if sign != "" && !logic.Signs.Contains(sign) {
		return exitUsageError, fmt.Errorf("sign %q is not in logic %q's alphabet", signName, logicName)
	}

	ctx, cancel := contextWithTimeout(timeoutSecs)
	defer cancel()

	res, err := tableau.Solve(ctx, logic, f, sign)
	if err != nil {
		return exitUsageError, err
	}

	out := cliResult{
		Formula:     formula,
		Logic:       logicName,
		Satisfiable: res.Satisfiable,
		Status:      res.Status.String(),
	}
	if showModels {
		out.Models = res.Models
	}

	if format == "json" {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return exitUsageError, err
		}
	} else {
		printText(stdout, out)
	}

	if res.Status != tableau.StatusOK {
		return exitBoundExceeded, nil
	}
	if res.Satisfiable {
		return exitSatisfiable, nil
	}
	return exitUnsatisfiable, nil
}

// executeBatch solves one formula per non-blank line of stdin, fanned
// out across internal/batch's worker pool, and writes the results back
// as a single JSON array in input order. It requires --format=json:
// text output has no natural multi-result shape, so a plainer contract
// (reject rather than guess) applies here.
func executeBatch(stdin io.Reader, logicName, signName, format string, showModels bool, timeoutSecs int, stdout io.Writer) (int, error) {
	if format != "json" {
		return exitUsageError, fmt.Errorf("reading formulas from stdin requires --format=json")
	}

	logic, err := tableau.OpenLogic(logicName)
	if err != nil {
		return exitUsageError, err
	}

	sign := tableau.Sign(signName)
	if sign != "" && !logic.Signs.Contains(sign) {
		return exitUsageError, fmt.Errorf("sign %q is not in logic %q's alphabet", signName, logicName)
	}

	var formulas []string
	var jobs []batch.Job
	scanner := bufio.NewScanner(stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		f, err := tableau.ParseFormula(logic, line)
		if err != nil {
			return exitUsageError, fmt.Errorf("line %q: %w", line, err)
		}
		formulas = append(formulas, line)
		jobs = append(jobs, batch.Job{Logic: logic, Formula: f, Sign: sign})
	}
	if err := scanner.Err(); err != nil {
		return exitUsageError, err
	}

	ctx, cancel := contextWithTimeout(timeoutSecs)
	defer cancel()

	outcomes := batch.Run(ctx, jobs, 0)

	results := make([]cliResult, len(outcomes))
	worstCode := exitSatisfiable
	sawUnsatisfiable := false
	for i, oc := range outcomes {
		if oc.Err != nil {
			return exitUsageError, oc.Err
		}
		out := cliResult{
			Formula:     formulas[i],
			Logic:       logicName,
			Satisfiable: oc.Result.Satisfiable,
			Status:      oc.Result.Status.String(),
		}
		if showModels {
			out.Models = oc.Result.Models
		}
		results[i] = out

		switch {
		case oc.Result.Status != tableau.StatusOK:
			worstCode = exitBoundExceeded
		case !oc.Result.Satisfiable:
			sawUnsatisfiable = true
		}
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(results); err != nil {
		return exitUsageError, err
	}

	if worstCode == exitBoundExceeded {
		return exitBoundExceeded, nil
	}
	if sawUnsatisfiable {
		return exitUnsatisfiable, nil
	}
	return exitSatisfiable, nil
}

func printText(stdout io.Writer, out cliResult) {
	if out.Satisfiable {
		fmt.Fprintln(stdout, "SATISFIABLE")
	} else {
		fmt.Fprintln(stdout, "UNSATISFIABLE")
	}
	if out.Status != "ok" {
		fmt.Fprintln(stdout, "status:", out.Status)
	}
	for _, m := range out.Models {
		fmt.Fprintln(stdout, modelLine(m))
	}
}

func modelLine(m tableau.Model) string {
	atoms := make([]string, 0, len(m))
	for atom := range m {
		atoms = append(atoms, atom)
	}
	sort.Strings(atoms)

	line := ""
	for _, atom := range atoms {
		if line != "" {
			line += ", "
		}
		line += fmt.Sprintf("%s=%s", atom, m[atom])
	}
	return line
}

func contextWithTimeout(secs int) (context.Context, context.CancelFunc) {
	if secs <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), time.Duration(secs)*time.Second)
}
