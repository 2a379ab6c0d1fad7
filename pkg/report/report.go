// Package report renders check summaries and check sets as deterministic
// plain text, with a failure-first display ordering.
package report

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/leapstack-labs/tablecheck/pkg/check"
	"github.com/leapstack-labs/tablecheck/pkg/engine"
)

const (
	glyphPass = "✓"
	glyphFail = "✗"

	// Failure listings show the first and last sampleEdge rows and elide
	// the middle once the total exceeds 2*sampleEdge.
	sampleEdge = 5
)

// Less is the display ordering for results: a failed result sorts before a
// passed one; among equal status, the one with more failing rows sorts
// first. It governs report layout only.
func Less(a, b *engine.CheckResult) bool {
	if a.Passed != b.Passed {
		return !a.Passed
	}
	return len(a.FailingRows) > len(b.FailingRows)
}

// Render renders a full text report for one run.
func Render(s *engine.CheckSummary) string {
	var b strings.Builder
	WriteSummary(&b, s)
	return b.String()
}

// WriteSummary writes the text report to w: a header naming the checkset,
// one line per check in failure-first order, per-row failure listings, and
// a footer with the pass counts, percentage, and elapsed time.
func WriteSummary(w io.Writer, s *engine.CheckSummary) {
	fmt.Fprintf(w, "Checkset: %s\n", s.CheckSetName)

	names := sortedNames(s)
	nameWidth := 0
	for _, name := range names {
		if len(name) > nameWidth {
			nameWidth = len(name)
		}
	}

	for _, name := range names {
		r := s.Results[name]
		glyph := glyphPass
		if !r.Passed {
			glyph = glyphFail
		}
		fmt.Fprintf(w, "  %s %-*s  %s\n", glyph, nameWidth, name, r.Message)
		writeFailures(w, r)
	}

	passed := len(s.PassedChecks())
	total := len(s.Results)
	pct := 100.0
	if total > 0 {
		pct = math.Round(1000*float64(passed)/float64(total)) / 10
	}
	fmt.Fprintf(w, "\n%d/%d checks passed (%.1f%%) in %s\n",
		passed, total, pct, s.Elapsed.Round(time.Millisecond))
}

// sortedNames orders check names failure-first, ties broken by name so the
// report is deterministic.
func sortedNames(s *engine.CheckSummary) []string {
	names := make([]string, 0, len(s.Results))
	for name := range s.Results {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := s.Results[names[i]], s.Results[names[j]]
		if a.Passed != b.Passed || len(a.FailingRows) != len(b.FailingRows) {
			return Less(a, b)
		}
		return names[i] < names[j]
	})
	return names
}

func writeFailures(w io.Writer, r *engine.CheckResult) {
	total := len(r.FailingRows)
	if total == 0 {
		return
	}

	if total <= 2*sampleEdge {
		for i := range r.FailingRows {
			writeFailureRow(w, r, i)
		}
		return
	}

	for i := 0; i < sampleEdge; i++ {
		writeFailureRow(w, r, i)
	}
	fmt.Fprintf(w, "      ... %d more failures\n", total-2*sampleEdge)
	for i := total - sampleEdge; i < total; i++ {
		writeFailureRow(w, r, i)
	}
}

func writeFailureRow(w io.Writer, r *engine.CheckResult, i int) {
	snapshot := r.FailingValues[i]
	parts := make([]string, 0, len(r.Columns))
	for _, col := range r.Columns {
		parts = append(parts, fmt.Sprintf("%s=%s", col, formatValue(snapshot[col])))
	}
	fmt.Fprintf(w, "      row %d: %s\n", r.FailingRows[i], strings.Join(parts, ", "))
}

// RenderCheckSet renders a run-independent listing of a check set: each
// check's name and declared columns.
func RenderCheckSet(set *check.CheckSet) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Checkset: %s (%d checks)\n", set.Name(), set.Len())

	checks := set.Checks()
	nameWidth := 0
	for _, c := range checks {
		if len(c.Name()) > nameWidth {
			nameWidth = len(c.Name())
		}
	}
	for _, c := range checks {
		fmt.Fprintf(&b, "  %-*s  [%s]\n", nameWidth, c.Name(), strings.Join(c.Columns(), ", "))
	}
	return b.String()
}

func formatValue(v any) string {
	if v == nil {
		return "null"
	}
	if f, ok := v.(float64); ok && f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprintf("%v", v)
}
