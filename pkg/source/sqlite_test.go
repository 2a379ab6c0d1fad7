package source

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestDB(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE orders (id INTEGER, customer TEXT, amount REAL)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO orders VALUES (1, 'alice', 10.5), (2, 'bob', -3.0), (3, NULL, 7.0)`)
	require.NoError(t, err)
	return path
}

func TestFromSQLite(t *testing.T) {
	path := writeTestDB(t)

	tbl, err := FromSQLite(context.Background(), path, "orders")
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "customer", "amount"}, tbl.ColumnNames())
	assert.Equal(t, 3, tbl.RowCount())

	ids, ok := tbl.Column("id")
	require.True(t, ok)
	assert.Equal(t, []any{int64(1), int64(2), int64(3)}, ids)

	customers, ok := tbl.Column("customer")
	require.True(t, ok)
	assert.Equal(t, []any{"alice", "bob", nil}, customers)

	amounts, ok := tbl.Column("amount")
	require.True(t, ok)
	assert.Equal(t, []any{10.5, -3.0, 7.0}, amounts)
}

func TestFromSQLiteMissingTable(t *testing.T) {
	path := writeTestDB(t)

	_, err := FromSQLite(context.Background(), path, "ghost")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "query")
}

func TestFromQuery(t *testing.T) {
	path := writeTestDB(t)

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	tbl, err := FromQuery(context.Background(), db, `SELECT id, amount FROM orders WHERE amount > 0 ORDER BY id`)
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "amount"}, tbl.ColumnNames())
	assert.Equal(t, 2, tbl.RowCount())

	amounts, _ := tbl.Column("amount")
	assert.Equal(t, []any{10.5, 7.0}, amounts)
}
