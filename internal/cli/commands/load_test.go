package commands

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/tablecheck/internal/cli/config"
)

func TestLoadCheckSet(t *testing.T) {
	dir := t.TempDir()

	hclPath := filepath.Join(dir, "checks.hcl")
	require.NoError(t, os.WriteFile(hclPath, []byte(`
checkset "orders" {
  check "amount_positive" {
    expr = positive(amount)
  }
}
`), 0o644))

	yamlPath := filepath.Join(dir, "checks.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(`
checkset:
  name: orders
  checks:
    - name: amount_positive
      predicate: positive
      columns: [amount]
`), 0o644))

	for _, path := range []string{hclPath, yamlPath} {
		set, err := loadCheckSet(path)
		require.NoError(t, err, path)
		assert.Equal(t, "orders", set.Name())
		assert.Equal(t, 1, set.Len())
	}

	_, err := loadCheckSet(filepath.Join(dir, "checks.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported checks file")
}

func TestLoadSource(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "data.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("amount\n1\n2\n"), 0o644))

	tests := []struct {
		name    string
		cfg     config.Config
		wantErr string
	}{
		{
			name: "csv",
			cfg:  config.Config{DataFile: csvPath},
		},
		{
			name:    "missing data file",
			cfg:     config.Config{},
			wantErr: "data file is required",
		},
		{
			name:    "sqlite without table",
			cfg:     config.Config{DataFile: filepath.Join(dir, "state.db")},
			wantErr: "table name is required",
		},
		{
			name:    "unsupported extension",
			cfg:     config.Config{DataFile: filepath.Join(dir, "data.parquet")},
			wantErr: "unsupported data file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := loadSource(context.Background(), &tt.cfg)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, []string{"amount"}, src.ColumnNames())
		})
	}
}
