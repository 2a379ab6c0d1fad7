package engine

// CheckResult is the outcome of evaluating one check against a source.
// Invariants: len(FailingRows) == len(FailingValues), every row position
// lies in [1, TotalRows], and Passed == (len(FailingRows) == 0).
type CheckResult struct {
	// Passed is true iff no row failed.
	Passed bool
	// FailingRows holds 1-based row positions, ascending.
	FailingRows []int
	// FailingValues holds one snapshot per failing row, aligned
	// positionally with FailingRows, mapping column identifier to value.
	FailingValues []map[string]any
	// Columns is the check's declared column order, kept so snapshots can
	// be rendered deterministically.
	Columns []string
	// Message is a short diagnostic text.
	Message string
	// TotalRows is the number of rows actually evaluated; 0 when required
	// columns were missing.
	TotalRows int
}

// FailureCount returns the number of failing rows.
func (r *CheckResult) FailureCount() int {
	return len(r.FailingRows)
}
