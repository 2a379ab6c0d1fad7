// Package cli provides the command-line interface for tablecheck.
package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/leapstack-labs/tablecheck/internal/cli/commands"
	"github.com/leapstack-labs/tablecheck/internal/cli/config"
	"github.com/leapstack-labs/tablecheck/internal/cli/output"
	"github.com/spf13/cobra"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
)

var cfgFile string

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tablecheck",
		Short: "tablecheck - Tabular Data Quality Checks",
		Long: `tablecheck validates tabular datasets against named boolean checks.

Checks are declared in an HCL or YAML file, compiled once, and evaluated
against CSV files or SQLite tables with row-level failure diagnostics.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			ctx := commands.WithConfig(cmd.Context(), cfg)

			renderer := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.Output))
			ctx = commands.WithRenderer(ctx, renderer)
			ctx = commands.WithLogger(ctx, newLogger(cfg.Verbose))
			cmd.SetContext(ctx)

			if cfg.Verbose {
				if used := config.FileUsed(); used != "" {
					fmt.Fprintf(os.Stderr, "Using config file: %s\n", used)
				}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
`)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./tablecheck.yaml)")
	rootCmd.PersistentFlags().StringP("checks", "c", "", "Path to the checks file (.hcl, .yaml)")
	rootCmd.PersistentFlags().StringP("data", "d", "", "Path to the data file (.csv or SQLite db)")
	rootCmd.PersistentFlags().String("table", "", "Table to load when data is a SQLite db")
	rootCmd.PersistentFlags().Bool("concurrent", false, "Run checks across a worker pool")
	rootCmd.PersistentFlags().Int("workers", 0, "Worker pool size (0 = hardware parallelism)")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output format (auto|text|json)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"auto", "text", "json"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(commands.NewVersionCommand(Version))
	rootCmd.AddCommand(commands.NewRunCommand())
	rootCmd.AddCommand(commands.NewChecksCommand())
	rootCmd.AddCommand(commands.NewPredicatesCommand())

	return rootCmd
}

// Execute runs the root command. Failed checks are reported by the run
// command itself, so only other errors get an Error line here.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, commands.ErrChecksFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return err
	}
	return nil
}

// newLogger builds the structured logger for a command invocation.
// Non-verbose runs discard logs; render output goes through the renderer.
func newLogger(verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}
