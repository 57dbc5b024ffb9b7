package commands

import (
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/langatlas/langdb/internal/cli/output"
	"github.com/langatlas/langdb/internal/dataset"
	"github.com/spf13/cobra"
)

// StatusOptions holds options for the status command.
type StatusOptions struct {
	Strict bool // Fail when the matrix disagrees with the languages
}

// StatusOutput is the JSON output for the status command.
type StatusOutput struct {
	Path       string `json:"path"`
	Consistent bool   `json:"consistent"`
	*dataset.Report
}

// NewStatusCommand creates the status command.
func NewStatusCommand() *cobra.Command {
	opts := &StatusOptions{}
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Summarize the dataset and check matrix consistency",
		Long: `Read the dataset without modifying it and report how many languages,
references and separating functions it holds, the size of the adjacency
matrix and the number of recorded relations.

The matrix is checked against the language list: it must be square, labelled
with one entry per language in the same order, and free of duplicate ids.

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format
  - JSON: Machine-readable format`,
		Example: `  # Show dataset status
  langdb status

  # Fail in CI when the matrix is out of date
  langdb status --strict

  # Output as JSON
  langdb status -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStatus(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "Exit with an error when consistency issues are found")

	return cmd
}

func runStatus(cmd *cobra.Command, opts *StatusOptions) error {
	cc := NewCommandContext(cmd)

	doc, err := cc.Store.Load()
	if err != nil {
		return err
	}
	report, err := dataset.Inspect(doc)
	if err != nil {
		return fmt.Errorf("%s: %w", cc.Store.Path(), err)
	}

	out := &StatusOutput{
		Path:       cc.Store.Path(),
		Consistent: report.Consistent(),
		Report:     report,
	}

	r := cc.Renderer
	if r.EffectiveMode() == output.ModeJSON {
		if err := r.JSON(out); err != nil {
			return err
		}
	} else {
		renderStatus(r, out)
	}

	if opts.Strict && !out.Consistent {
		return fmt.Errorf("dataset has %d consistency issue(s)", len(out.Issues))
	}
	return nil
}

func renderStatus(r *output.Renderer, out *StatusOutput) {
	r.Header(1, "Dataset")
	if r.EffectiveMode() == output.ModeMarkdown {
		r.Println(output.FormatKeyValue("Path", out.Path))
	} else {
		r.Muted(out.Path)
	}
	r.Println("")

	r.Table(table.Row{"Field", "Entries"}, []table.Row{
		{dataset.KeyLanguages, out.Languages},
		{dataset.KeyReferences, out.References},
		{dataset.KeySeparatingFunctions, out.SeparatingFunctions},
		{dataset.KeyAdjacencyMatrix, matrixDimensions(out.MatrixSize)},
		{"relations", out.Relations},
	})
	r.Println("")

	r.Header(2, "Consistency")
	if out.Consistent {
		r.StatusLine(dataset.KeyAdjacencyMatrix, true, "matches languages")
		return
	}
	for _, issue := range out.Issues {
		r.StatusLine(dataset.KeyAdjacencyMatrix, false, issue)
	}
}

func matrixDimensions(n int) string {
	s := strconv.Itoa(n)
	return s + " x " + s
}
