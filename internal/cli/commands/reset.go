package commands

import (
	"github.com/langatlas/langdb/internal/cli/output"
	"github.com/langatlas/langdb/internal/reset"
	"github.com/spf13/cobra"
)

// NewClearAdjacencyCommand creates the clear-adjacency command.
func NewClearAdjacencyCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "clear-adjacency",
		Aliases: []string{"clear-adjacency-matrix"},
		Short:   "Rebuild the adjacency matrix with null entries",
		Long: `Rebuild the adjacencyMatrix of the dataset as an all-null matrix sized to
the current languages. Each language is labelled by its id, or by its name
when it has no id.

Languages, references, separating functions and any other keys are left
untouched.`,
		Example: `  # Reset the matrix of the project dataset
  langdb clear-adjacency

  # Reset a specific file
  langdb clear-adjacency --dataset ./fixtures/database.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReset(cmd, reset.OpClearAdjacency)
		},
	}
}

// NewClearDatabaseCommand creates the clear-database command.
func NewClearDatabaseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear-database",
		Short: "Empty every dataset collection",
		Long: `Empty the languages, references and separatingFunctions collections and
reset the adjacencyMatrix to its zero-dimension form. Keys outside these
four are preserved.`,
		Example: `  # Start the dataset over
  langdb clear-database

  # Machine-readable result
  langdb clear-database -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReset(cmd, reset.OpClearDatabase)
		},
	}
}

func runReset(cmd *cobra.Command, op reset.Operation) error {
	cc := NewCommandContext(cmd)

	result, err := cc.Resetter().Run(op)
	if err != nil {
		return err
	}

	r := cc.Renderer
	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(result)
	case output.ModeMarkdown:
		r.Println(result.Message)
	default:
		r.Success(result.Message)
		if cc.Cfg.Verbose {
			r.Muted(result.Path)
		}
	}
	return nil
}
