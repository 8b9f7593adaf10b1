package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const DefaultGlob = "**/*.csv"

// Config stores runtime options for one merge run.
type Config struct {
	In   string
	Glob string

	OutCSV      string
	SummaryJSON string

	KindManifest string

	Strict  bool
	Verbose bool
}

// Default returns baseline configuration values used by CLI flags.
func Default() Config {
	return Config{
		Glob: DefaultGlob,
	}
}

// Validate normalizes and checks the configuration before execution.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.In) == "" {
		return fmt.Errorf("--in is required")
	}
	if strings.TrimSpace(c.Glob) == "" {
		c.Glob = DefaultGlob
	}
	if strings.TrimSpace(c.OutCSV) == "" && strings.TrimSpace(c.SummaryJSON) == "" {
		return fmt.Errorf("at least one of --out or --summary-json is required")
	}

	c.In = filepath.Clean(c.In)
	if c.OutCSV != "" {
		c.OutCSV = filepath.Clean(c.OutCSV)
	}
	if c.SummaryJSON != "" {
		c.SummaryJSON = filepath.Clean(c.SummaryJSON)
	}
	if c.KindManifest != "" {
		c.KindManifest = filepath.Clean(c.KindManifest)
	}

	info, err := os.Stat(c.In)
	if err != nil {
		return fmt.Errorf("input path %q is not accessible: %w", c.In, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("input path %q must be a directory", c.In)
	}

	return nil
}
