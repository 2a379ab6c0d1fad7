package commands

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/leapstack-labs/tablecheck/internal/cli/config"
	"github.com/leapstack-labs/tablecheck/pkg/check"
	"github.com/leapstack-labs/tablecheck/pkg/source"
)

// loadCheckSet compiles a checks file, picking the frontend by extension.
func loadCheckSet(path string) (*check.CheckSet, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		return check.CompileHCLFile(path, check.Default())
	case ".yaml", ".yml":
		return check.LoadYAMLFile(path, check.Default())
	default:
		return nil, fmt.Errorf("unsupported checks file %q: want .hcl, .yaml or .yml", path)
	}
}

// loadSource opens the configured data file, picking the loader by
// extension.
func loadSource(ctx context.Context, cfg *config.Config) (source.Source, error) {
	if cfg.DataFile == "" {
		return nil, fmt.Errorf("data file is required (--data)")
	}
	switch strings.ToLower(filepath.Ext(cfg.DataFile)) {
	case ".csv":
		return source.LoadCSV(cfg.DataFile)
	case ".db", ".sqlite", ".sqlite3":
		if cfg.DataTable == "" {
			return nil, fmt.Errorf("table name is required for SQLite data (--table)")
		}
		return source.FromSQLite(ctx, cfg.DataFile, cfg.DataTable)
	default:
		return nil, fmt.Errorf("unsupported data file %q: want .csv or a SQLite database", cfg.DataFile)
	}
}
