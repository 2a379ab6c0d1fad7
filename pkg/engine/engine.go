// Package engine evaluates compiled check sets against tabular data
// sources, sequentially or across a bounded worker pool.
package engine

import (
	"fmt"
	"log/slog"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/leapstack-labs/tablecheck/pkg/check"
	"github.com/leapstack-labs/tablecheck/pkg/source"
)

// Options configures a run.
type Options struct {
	// Concurrent distributes checks across a worker pool. The unit of
	// parallel work is one check; rows are always evaluated sequentially
	// within a check. Output is content-identical to a sequential run.
	Concurrent bool
	// Workers bounds the worker pool in concurrent mode. Defaults to the
	// available hardware parallelism, capped at the number of checks.
	Workers int
	// Logger is the structured logger (optional, uses discard if nil).
	Logger *slog.Logger
}

// Run evaluates every check in the set against the source and returns a
// fresh CheckSummary owned by the caller. Data-quality conditions
// (missing columns, failed predicates, predicate errors) never abort the
// run; they are represented in the per-check results.
func Run(src source.Source, set *check.CheckSet, opts Options) *CheckSummary {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	start := time.Now()
	checks := set.Checks()
	logger.Debug("starting run", "checkset", set.Name(), "checks", len(checks), "concurrent", opts.Concurrent)

	// One pre-sized slot per check; workers write by index, so no result
	// locking is needed.
	results := make([]*CheckResult, len(checks))

	if opts.Concurrent && len(checks) > 1 {
		workers := opts.Workers
		if workers <= 0 {
			workers = runtime.NumCPU()
		}
		if workers > len(checks) {
			workers = len(checks)
		}

		jobs := make(chan int)
		var wg sync.WaitGroup
		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := range jobs {
					results[i] = runCheck(src, checks[i], logger)
				}
			}()
		}
		for i := range checks {
			jobs <- i
		}
		close(jobs)
		wg.Wait()
	} else {
		for i, c := range checks {
			results[i] = runCheck(src, c, logger)
		}
	}

	byName := make(map[string]*CheckResult, len(results))
	for i, c := range checks {
		byName[c.Name()] = results[i]
	}

	elapsed := time.Since(start)
	logger.Debug("run completed", "checkset", set.Name(), "elapsed", elapsed)

	return &CheckSummary{
		CheckSetName: set.Name(),
		Results:      byName,
		Elapsed:      elapsed,
	}
}

// runCheck evaluates a single check over the source.
func runCheck(src source.Source, c *check.Check, logger *slog.Logger) *CheckResult {
	columns := c.Columns()
	result := &CheckResult{Columns: columns}

	// Column precondition: missing columns short-circuit to a failed
	// result with no row evaluation.
	available := make(map[string]bool)
	for _, name := range src.ColumnNames() {
		available[name] = true
	}
	var missing []string
	for _, col := range columns {
		if !available[col] {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		result.Message = fmt.Sprintf("missing columns: %s", strings.Join(missing, ", "))
		logger.Debug("check short-circuited", "check", c.Name(), "missing_columns", missing)
		return result
	}

	values := make([][]any, len(columns))
	totalRows := -1
	for i, col := range columns {
		vals, _ := src.Column(col)
		values[i] = vals
		if totalRows < 0 || len(vals) < totalRows {
			totalRows = len(vals)
		}
	}
	result.TotalRows = totalRows

	pred := c.Predicate()
	args := make([]any, len(columns))
	// Every row is evaluated, even after earlier failures, so the full
	// failure set is captured.
	for row := 0; row < totalRows; row++ {
		for i := range columns {
			args[i] = values[i][row]
		}
		ok, err := evalRow(pred, args)
		if ok && err == nil {
			continue
		}
		snapshot := make(map[string]any, len(columns))
		for i, col := range columns {
			snapshot[col] = values[i][row]
		}
		result.FailingRows = append(result.FailingRows, row+1)
		result.FailingValues = append(result.FailingValues, snapshot)
	}

	result.Passed = len(result.FailingRows) == 0
	if result.Passed {
		result.Message = "All rows passed"
	} else {
		result.Message = fmt.Sprintf("%d rows failed", len(result.FailingRows))
	}
	logger.Debug("check evaluated",
		"check", c.Name(),
		"total_rows", result.TotalRows,
		"failed_rows", len(result.FailingRows))
	return result
}

// evalRow invokes the predicate, converting a panic into an error so a
// misbehaving predicate counts as a row failure instead of aborting the run.
func evalRow(pred check.Predicate, args []any) (ok bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
			err = fmt.Errorf("predicate panicked: %v", r)
		}
	}()
	return pred(args)
}
