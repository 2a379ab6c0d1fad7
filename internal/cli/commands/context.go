package commands

import (
	"context"
	"log/slog"

	"github.com/leapstack-labs/tablecheck/internal/cli/config"
	"github.com/leapstack-labs/tablecheck/internal/cli/output"
	"github.com/spf13/cobra"
)

// Context keys for values the root command installs before a subcommand
// runs.
type (
	configKey   struct{}
	rendererKey struct{}
	loggerKey   struct{}
)

// WithConfig stores the resolved config in the context.
func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// WithRenderer stores the output renderer in the context.
func WithRenderer(ctx context.Context, r *output.Renderer) context.Context {
	return context.WithValue(ctx, rendererKey{}, r)
}

// WithLogger stores the structured logger in the context.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

func getConfig(cmd *cobra.Command) *config.Config {
	if cfg, ok := cmd.Context().Value(configKey{}).(*config.Config); ok {
		return cfg
	}
	return &config.Config{
		ChecksFile: config.DefaultChecksFile,
		Output:     config.DefaultOutput,
	}
}

func getRenderer(cmd *cobra.Command) *output.Renderer {
	if r, ok := cmd.Context().Value(rendererKey{}).(*output.Renderer); ok {
		return r
	}
	return output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.ModeAuto)
}

func getLogger(cmd *cobra.Command) *slog.Logger {
	if l, ok := cmd.Context().Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	return slog.New(slog.DiscardHandler)
}
