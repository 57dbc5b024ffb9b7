package commands

import (
	"log/slog"
	"os"

	"github.com/langatlas/langdb/internal/cli/config"
	"github.com/langatlas/langdb/internal/cli/output"
	"github.com/langatlas/langdb/internal/dataset"
	"github.com/langatlas/langdb/internal/reset"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Store    *dataset.Store
	Renderer *output.Renderer
}

// NewCommandContext builds the dataset store and renderer for cmd from the
// loaded configuration.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Store:    dataset.NewOSStore(cfg.DatasetPath, logger),
		Renderer: output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.OutputFormat)),
	}
}

// Resetter returns a reset.Resetter over the context's store.
func (c *CommandContext) Resetter() *reset.Resetter {
	return reset.New(c.Store, c.Logger)
}

// Helper functions shared across commands

// getConfig returns the current configuration.
// It uses config.GetCurrentConfig() if available, otherwise falls back to environment variables.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}

	return &config.Config{
		DatasetPath:  getEnvOrDefault(config.EnvPrefix+"DATASET", config.DefaultDatasetPath),
		Verbose:      os.Getenv(config.EnvPrefix+"VERBOSE") == "true",
		OutputFormat: getEnvOrDefault(config.EnvPrefix+"OUTPUT", config.DefaultOutput),
		LogLevel:     getEnvOrDefault(config.EnvPrefix+"LOG_LEVEL", config.DefaultLogLevel),
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
