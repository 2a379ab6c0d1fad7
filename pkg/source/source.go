// Package source provides tabular data sources for check execution.
// A source exposes named columns as fixed-length, randomly addressable
// value slices; the check engine requires nothing else from it.
package source

// Source is the minimal capability the engine needs from tabular data:
// enumerate column names and fetch one column as an ordered value slice.
// Sources are treated as immutable for the duration of a run.
type Source interface {
	// ColumnNames returns the identifiers of all available columns.
	ColumnNames() []string

	// Column returns the values of the named column and whether it exists.
	// The returned slice must not be mutated by the caller.
	Column(name string) ([]any, bool)
}
