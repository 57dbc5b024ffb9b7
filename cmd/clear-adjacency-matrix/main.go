// Command clear-adjacency-matrix rebuilds the dataset's adjacency matrix with
// null entries for every language. It is shorthand for
// "langdb clear-adjacency" and accepts the same flags.
package main

import (
	"os"

	"github.com/langatlas/langdb/internal/cli"
)

func main() {
	if err := cli.ExecuteArgs(append([]string{"clear-adjacency"}, os.Args[1:]...)); err != nil {
		os.Exit(1)
	}
}
