package config

import (
	"fmt"
	"os"
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.ThemesDir == "" {
		return fmt.Errorf("themes_dir is required")
	}
	switch c.OutputFormat {
	case "table", "json":
	default:
		return fmt.Errorf("invalid output format %q (expected table or json)", c.OutputFormat)
	}
	return nil
}

// ValidateDirectories checks if the themes directory exists. Split from
// Validate so help-style commands work without a workspace.
func (c *Config) ValidateDirectories() error {
	if _, err := os.Stat(c.ThemesDir); os.IsNotExist(err) {
		return fmt.Errorf("themes directory does not exist: %s\nHint: Create it or use --themes-dir to point at your workspace", c.ThemesDir)
	}
	return nil
}
