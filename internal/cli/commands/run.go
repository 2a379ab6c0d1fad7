package commands

import (
	"errors"
	"fmt"

	"github.com/leapstack-labs/tablecheck/internal/cli/output"
	"github.com/leapstack-labs/tablecheck/pkg/engine"
	"github.com/leapstack-labs/tablecheck/pkg/report"
	"github.com/spf13/cobra"
)

// ErrChecksFailed signals a run with at least one failed check. The run
// command reports the failure itself; callers only need the non-zero exit.
var ErrChecksFailed = errors.New("checks failed")

// NewRunCommand creates the run command.
func NewRunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run checks against a data file",
		Long: `Compile the checks file and evaluate every check against the data.

Every row of every check is evaluated; missing columns and predicate
errors are reported as check failures, never as run aborts. The command
exits non-zero when any check failed.`,
		Example: `  # Run checks.hcl against a CSV file
  tablecheck run --data orders.csv

  # Run a YAML checkset against a SQLite table, in parallel
  tablecheck run --checks checks.yaml --data state.db --table orders --concurrent

  # JSON output for CI
  tablecheck run --data orders.csv --output json`,
		Args: cobra.NoArgs,
		RunE: runRun,
	}
	return cmd
}

func runRun(cmd *cobra.Command, _ []string) error {
	cfg := getConfig(cmd)
	r := getRenderer(cmd)
	logger := getLogger(cmd)

	set, err := loadCheckSet(cfg.ChecksFile)
	if err != nil {
		return err
	}
	src, err := loadSource(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	summary := engine.Run(src, set, engine.Options{
		Concurrent: cfg.Concurrent,
		Workers:    cfg.Workers,
		Logger:     logger,
	})

	failed := summary.FailedChecks()

	if r.EffectiveMode() == output.ModeJSON {
		if err := r.JSON(buildRunOutput(summary)); err != nil {
			return err
		}
		if len(failed) > 0 {
			return ErrChecksFailed
		}
		return nil
	}

	r.Printf("%s", report.Render(summary))
	if len(failed) > 0 {
		r.Failure(fmt.Sprintf("%d of %d checks failed", len(failed), len(summary.Results)))
		return ErrChecksFailed
	}
	r.Success("all checks passed")
	return nil
}

// RunOutput is the JSON shape of a run.
type RunOutput struct {
	Checkset  string        `json:"checkset"`
	Passed    int           `json:"passed"`
	Failed    int           `json:"failed"`
	PassRate  float64       `json:"pass_rate"`
	ElapsedMS int64         `json:"elapsed_ms"`
	Checks    []CheckOutput `json:"checks"`
}

// CheckOutput is the JSON shape of one check result.
type CheckOutput struct {
	Name        string  `json:"name"`
	Passed      bool    `json:"passed"`
	Message     string  `json:"message"`
	TotalRows   int     `json:"total_rows"`
	FailingRows []int   `json:"failing_rows,omitempty"`
	PassRate    float64 `json:"pass_rate"`
}

func buildRunOutput(s *engine.CheckSummary) RunOutput {
	out := RunOutput{
		Checkset:  s.CheckSetName,
		Passed:    len(s.PassedChecks()),
		Failed:    len(s.FailedChecks()),
		PassRate:  s.PassRate(),
		ElapsedMS: s.Elapsed.Milliseconds(),
	}
	for _, name := range append(s.FailedChecks(), s.PassedChecks()...) {
		r := s.Results[name]
		rate, _ := s.PassRateFor(name)
		out.Checks = append(out.Checks, CheckOutput{
			Name:        name,
			Passed:      r.Passed,
			Message:     r.Message,
			TotalRows:   r.TotalRows,
			FailingRows: r.FailingRows,
			PassRate:    rate,
		})
	}
	return out
}
