// Package main provides the langdb CLI.
package main

import (
	"os"

	"github.com/langatlas/langdb/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
