package engine

import (
	"math"
	"sort"
	"time"

	"github.com/leapstack-labs/tablecheck/pkg/check"
)

// CheckSummary is the aggregate outcome of running a check set. It is
// created fresh per run and never mutated after construction.
type CheckSummary struct {
	CheckSetName string
	// Results maps check name to its result; keys are the check names.
	Results map[string]*CheckResult
	// Elapsed is the measured wall-clock time for the whole run.
	Elapsed time.Duration
}

// Result returns the result of the named check, or a NotFoundError if the
// summary has no such check.
func (s *CheckSummary) Result(name string) (*CheckResult, error) {
	r, ok := s.Results[name]
	if !ok {
		return nil, &check.NotFoundError{Kind: "check", Name: name, Scope: s.CheckSetName}
	}
	return r, nil
}

// FailedChecks returns the names of checks that failed, sorted.
func (s *CheckSummary) FailedChecks() []string {
	return s.partition(false)
}

// PassedChecks returns the names of checks that passed, sorted.
func (s *CheckSummary) PassedChecks() []string {
	return s.partition(true)
}

func (s *CheckSummary) partition(passed bool) []string {
	var names []string
	for name, r := range s.Results {
		if r.Passed == passed {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// TotalFailures returns the number of failing rows summed over all checks.
func (s *CheckSummary) TotalFailures() int {
	total := 0
	for _, r := range s.Results {
		total += len(r.FailingRows)
	}
	return total
}

// PassRate returns the aggregate percentage of evaluated rows that passed,
// across all checks, rounded to one decimal. With no evaluated rows it
// returns 100 if every check passed and 0 otherwise.
func (s *CheckSummary) PassRate() float64 {
	evaluated, failures := 0, 0
	for _, r := range s.Results {
		evaluated += r.TotalRows
		failures += len(r.FailingRows)
	}
	if evaluated == 0 {
		if len(s.FailedChecks()) > 0 {
			return 0
		}
		return 100
	}
	return round1(100 * float64(evaluated-failures) / float64(evaluated))
}

// PassRateFor returns the percentage of rows that passed the named check,
// rounded to one decimal. A check that short-circuited on missing columns
// has no evaluated rows and rates 0.
func (s *CheckSummary) PassRateFor(name string) (float64, error) {
	r, err := s.Result(name)
	if err != nil {
		return 0, err
	}
	if r.TotalRows == 0 {
		if r.Passed {
			return 100, nil
		}
		return 0, nil
	}
	return round1(100 * float64(r.TotalRows-len(r.FailingRows)) / float64(r.TotalRows)), nil
}

// FailingRowsFor returns the failing row positions of the named check.
func (s *CheckSummary) FailingRowsFor(name string) ([]int, error) {
	r, err := s.Result(name)
	if err != nil {
		return nil, err
	}
	rows := make([]int, len(r.FailingRows))
	copy(rows, r.FailingRows)
	return rows, nil
}

// FailingRows returns the sorted, deduplicated union of failing row
// positions across all checks.
func (s *CheckSummary) FailingRows() []int {
	seen := make(map[int]bool)
	var rows []int
	for _, r := range s.Results {
		for _, row := range r.FailingRows {
			if !seen[row] {
				seen[row] = true
				rows = append(rows, row)
			}
		}
	}
	sort.Ints(rows)
	return rows
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
