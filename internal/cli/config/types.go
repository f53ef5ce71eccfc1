// Package config provides configuration management for the themeflat CLI.
// Configuration is layered with koanf: defaults, then the themeflat.yaml
// project file, then THEMEFLAT_ environment variables, then CLI flags.
package config

// Config holds all CLI configuration options.
type Config struct {
	// ThemesDir is the directory containing one subdirectory per theme.
	ThemesDir string `koanf:"themes_dir"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `koanf:"log_level"`
	// OutputFormat selects list/chain output: table or json.
	OutputFormat string `koanf:"output"`
	// Verbose enables debug logging regardless of LogLevel.
	Verbose bool `koanf:"verbose"`

	// ProjectRoot is the inferred workspace root; not read from config.
	ProjectRoot string `koanf:"-"`
}

// Default configuration values.
const (
	DefaultThemesDir = "themes"
	DefaultLogLevel  = "info"
	DefaultOutput    = "table"
)
