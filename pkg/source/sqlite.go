package source

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // sqlite driver
)

// FromSQLite loads one table from a SQLite database file into a Table.
func FromSQLite(ctx context.Context, path, tableName string) (*Table, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	defer func() { _ = db.Close() }()

	return FromQuery(ctx, db, fmt.Sprintf(`SELECT * FROM %q`, tableName))
}

// FromQuery materializes the result of a SQL query into a Table.
// []byte values are converted to strings for readability.
func FromQuery(ctx context.Context, db *sql.DB, query string) (*Table, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	columns := make([][]any, len(cols))
	for rows.Next() {
		values := make([]any, len(cols))
		valuePtrs := make([]any, len(cols))
		for i := range values {
			valuePtrs[i] = &values[i]
		}
		if err := rows.Scan(valuePtrs...); err != nil {
			return nil, err
		}
		for i, val := range values {
			if b, ok := val.([]byte); ok {
				val = string(b)
			}
			columns[i] = append(columns[i], val)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	t := NewTable()
	for i, name := range cols {
		if err := t.AddColumn(name, columns[i]); err != nil {
			return nil, err
		}
	}
	return t, nil
}
