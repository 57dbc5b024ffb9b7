// Package config provides configuration management for the langdb CLI.
//
// Configuration is layered with koanf. From lowest to highest precedence:
// built-in defaults, a langdb.yaml file, LANGDB_ environment variables, and
// explicitly set command-line flags.
package config

import "github.com/langatlas/langdb/internal/dataset"

// Config holds all CLI configuration options.
type Config struct {
	// DatasetPath is the JSON dataset file. Relative values from the config
	// file or environment resolve against ProjectRoot.
	DatasetPath  string `koanf:"dataset"`
	Verbose      bool   `koanf:"verbose"`
	OutputFormat string `koanf:"output"`
	LogLevel     string `koanf:"log_level"`

	// ProjectRoot is inferred at load time, never read from a source.
	ProjectRoot string `koanf:"-"`
}

// Default configuration values.
const (
	DefaultDatasetPath = dataset.DefaultPath
	DefaultOutput      = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	DefaultLogLevel    = "warn"
)

// Config file names, in lookup order.
const (
	ConfigFileName    = "langdb.yaml"
	ConfigFileNameAlt = "langdb.yml"
)

// EnvPrefix prefixes every environment variable the loader reads.
const EnvPrefix = "LANGDB_"
