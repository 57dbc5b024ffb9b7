// Command clear-database empties every collection of the dataset. It is
// shorthand for "langdb clear-database" and accepts the same flags.
package main

import (
	"os"

	"github.com/langatlas/langdb/internal/cli"
)

func main() {
	if err := cli.ExecuteArgs(append([]string{"clear-database"}, os.Args[1:]...)); err != nil {
		os.Exit(1)
	}
}
