package config

import (
	"fmt"
	"log/slog"
	"strings"
)

// OutputFormats lists the accepted values of the output setting.
var OutputFormats = []string{"auto", "text", "markdown", "json"}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.DatasetPath == "" {
		return fmt.Errorf("dataset is required")
	}

	if !isOutputFormat(c.OutputFormat) {
		return fmt.Errorf("invalid output format %q (expected one of: %s)",
			c.OutputFormat, strings.Join(OutputFormats, ", "))
	}

	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level returns the slog level for the configuration. Verbose forces debug.
func (c *Config) Level() (slog.Level, error) {
	if c.Verbose {
		return slog.LevelDebug, nil
	}
	if c.LogLevel == "" {
		return slog.LevelWarn, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log_level %q (expected debug, info, warn or error)", c.LogLevel)
	}
	return level, nil
}

func isOutputFormat(s string) bool {
	if s == "" {
		return true
	}
	for _, f := range OutputFormats {
		if s == f {
			return true
		}
	}
	return false
}
