package commands

import (
	"bytes"
	"testing"

	"github.com/langatlas/langdb/internal/cli/config"
	"github.com/langatlas/langdb/internal/testutil"
	"github.com/spf13/cobra"
)

// useDataset points commands at a fresh copy of content through the
// environment fallback used when no configuration was loaded.
func useDataset(t *testing.T, content, mode string) string {
	t.Helper()
	config.ResetConfig()
	t.Cleanup(config.ResetConfig)

	_, path := testutil.WriteDataset(t, content)
	t.Setenv(config.EnvPrefix+"DATASET", path)
	t.Setenv(config.EnvPrefix+"OUTPUT", mode)
	return path
}

func execute(cmd *cobra.Command, args ...string) (stdout, stderr string, err error) {
	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)

	err = cmd.Execute()
	return out.String(), errOut.String(), err
}
