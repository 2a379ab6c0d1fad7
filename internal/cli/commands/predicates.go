package commands

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/leapstack-labs/tablecheck/internal/cli/output"
	"github.com/leapstack-labs/tablecheck/pkg/check"
	"github.com/spf13/cobra"
)

// NewPredicatesCommand creates the predicates command.
func NewPredicatesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "predicates",
		Short: "List available predicates",
		Long:  `List every predicate that checks files can reference, with its column count.`,
		Args:  cobra.NoArgs,
		RunE:  runPredicates,
	}
}

func runPredicates(cmd *cobra.Command, _ []string) error {
	r := getRenderer(cmd)
	defs := check.Default().Defs()

	if r.EffectiveMode() == output.ModeJSON {
		type predInfo struct {
			Name        string `json:"name"`
			Arity       int    `json:"arity"`
			Description string `json:"description"`
		}
		infos := make([]predInfo, 0, len(defs))
		for _, def := range defs {
			infos = append(infos, predInfo{Name: def.Name, Arity: def.Arity, Description: def.Description})
		}
		return r.JSON(infos)
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.Out())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Predicate", "Columns", "Description"})
	for _, def := range defs {
		arity := strconv.Itoa(def.Arity)
		if def.Arity < 0 {
			arity = "any"
		}
		t.AppendRow(table.Row{def.Name, arity, def.Description})
	}
	t.Render()
	return nil
}
