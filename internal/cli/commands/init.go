package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/langatlas/langdb/internal/cli/config"
	"github.com/langatlas/langdb/internal/cli/output"
	"github.com/langatlas/langdb/internal/dataset"
	"github.com/langatlas/langdb/internal/reset"
	"github.com/spf13/cobra"
)

const defaultConfigYAML = `# langdb configuration
# Paths are relative to this file.
dataset: ` + dataset.DefaultPath + `

# auto | text | markdown | json
output: auto

# debug | info | warn | error
log_level: warn
`

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new langdb project",
		Long: `Initialize a new langdb project with a configuration file and an empty dataset.

This creates:
  - langdb.yaml configuration file
  - ` + dataset.DefaultPath + ` with empty collections and a zero-dimension
    adjacency matrix

An existing dataset is never overwritten unless --force is given.`,
		Example: `  # Initialize in current directory
  langdb init

  # Initialize in a new directory
  langdb init my-project

  # Force overwrite existing config and dataset
  langdb init --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			cfg := getConfig()
			r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.OutputFormat))

			return runInit(cmd, r, dir, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing configuration and dataset")

	return cmd
}

func runInit(cmd *cobra.Command, r *output.Renderer, dir string, force bool) error {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	configPath := filepath.Join(dir, config.ConfigFileName)
	datasetPath := filepath.Join(dir, filepath.FromSlash(dataset.DefaultPath))

	if !force {
		for _, p := range []string{configPath, datasetPath} {
			if _, err := os.Stat(p); err == nil {
				return fmt.Errorf("%s already exists. Use --force to overwrite", p)
			}
		}
	}

	if err := os.WriteFile(configPath, []byte(defaultConfigYAML), 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", configPath, err)
	}

	if err := os.MkdirAll(filepath.Dir(datasetPath), 0750); err != nil {
		return fmt.Errorf("failed to create dataset directory: %w", err)
	}
	doc := dataset.NewDocument()
	if err := reset.ClearAll(doc); err != nil {
		return err
	}
	store := dataset.NewOSStore(datasetPath, config.GetLogger(cmd.Context()))
	if err := store.Save(doc); err != nil {
		return err
	}

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(map[string]string{
			"config":  configPath,
			"dataset": datasetPath,
		})
	}

	r.StatusLine(config.ConfigFileName, true, "")
	r.StatusLine(dataset.DefaultPath, true, "")
	r.Println("")
	r.Success("langdb project initialized!")
	r.Println("")
	r.Println("Next steps:")
	r.Println("  langdb status            Summarize the dataset")
	r.Println("  langdb clear-adjacency   Rebuild the matrix after editing languages")

	return nil
}
