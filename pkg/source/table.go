package source

import "fmt"

// Table is an in-memory Source. Columns keep their insertion order and
// must all have the same length.
type Table struct {
	names []string
	cols  map[string][]any
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{cols: make(map[string][]any)}
}

// AddColumn appends a named column. It fails on duplicate names and on
// length mismatch with columns added earlier.
func (t *Table) AddColumn(name string, values []any) error {
	if name == "" {
		return fmt.Errorf("column name is required")
	}
	if _, exists := t.cols[name]; exists {
		return fmt.Errorf("duplicate column %q", name)
	}
	if len(t.names) > 0 {
		if have := len(t.cols[t.names[0]]); have != len(values) {
			return fmt.Errorf("column %q has %d values, expected %d", name, len(values), have)
		}
	}
	t.names = append(t.names, name)
	t.cols[name] = values
	return nil
}

// ColumnNames returns the column identifiers in insertion order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.names))
	copy(names, t.names)
	return names
}

// Column returns the values of the named column.
func (t *Table) Column(name string) ([]any, bool) {
	values, ok := t.cols[name]
	return values, ok
}

// RowCount returns the number of rows in the table.
func (t *Table) RowCount() int {
	if len(t.names) == 0 {
		return 0
	}
	return len(t.cols[t.names[0]])
}
