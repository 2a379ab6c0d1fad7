package commands

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/leapstack-labs/tablecheck/internal/cli/output"
	"github.com/leapstack-labs/tablecheck/pkg/report"
	"github.com/spf13/cobra"
)

// ChecksOptions holds options for the checks command.
type ChecksOptions struct {
	Format string
}

// NewChecksCommand creates the checks command.
func NewChecksCommand() *cobra.Command {
	opts := &ChecksOptions{}
	cmd := &cobra.Command{
		Use:   "checks",
		Short: "List the compiled checkset",
		Long: `Compile the checks file and list each check with its declared columns.

This is static introspection: no data is read and no checks run.`,
		Example: `  # List checks from checks.hcl
  tablecheck checks

  # Tabular view with predicates and descriptions
  tablecheck checks --format table`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runChecks(cmd, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "text", "Listing format: text, table")
	return cmd
}

func runChecks(cmd *cobra.Command, opts *ChecksOptions) error {
	cfg := getConfig(cmd)
	r := getRenderer(cmd)

	set, err := loadCheckSet(cfg.ChecksFile)
	if err != nil {
		return err
	}

	if r.EffectiveMode() == output.ModeJSON {
		type checkInfo struct {
			Name        string   `json:"name"`
			Predicate   string   `json:"predicate"`
			Columns     []string `json:"columns"`
			Description string   `json:"description,omitempty"`
		}
		infos := make([]checkInfo, 0, set.Len())
		for _, c := range set.Checks() {
			infos = append(infos, checkInfo{
				Name:        c.Name(),
				Predicate:   c.PredicateName(),
				Columns:     c.Columns(),
				Description: c.Description(),
			})
		}
		return r.JSON(map[string]any{"checkset": set.Name(), "checks": infos})
	}

	if opts.Format != "table" {
		r.Printf("%s", report.RenderCheckSet(set))
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.Out())
	t.SetStyle(table.StyleLight)
	t.SetTitle(set.Name())
	t.AppendHeader(table.Row{"Check", "Predicate", "Columns", "Description"})
	for _, c := range set.Checks() {
		t.AppendRow(table.Row{c.Name(), c.PredicateName(), strings.Join(c.Columns(), ", "), c.Description()})
	}
	t.Render()
	return nil
}
