// Package commands implements the themeflat CLI subcommands.
package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/stackbound/themeflat/internal/cli/config"
	"github.com/stackbound/themeflat/internal/compiler"
	"github.com/stackbound/themeflat/internal/resolver"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Resolver *resolver.DirResolver
	Compiler *compiler.Compiler
}

// NewCommandContext creates a CommandContext wired to the configured
// themes directory.
func NewCommandContext(cmd *cobra.Command) (*CommandContext, error) {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())

	if err := cfg.ValidateDirectories(); err != nil {
		return nil, err
	}

	res := resolver.NewDirResolver(cfg.ThemesDir, logger)
	comp, err := compiler.New(compiler.Config{Resolver: res, Logger: logger})
	if err != nil {
		return nil, err
	}

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Resolver: res,
		Compiler: comp,
	}, nil
}

// getConfig returns the current configuration, falling back to environment
// variables with defaults when no config was loaded (e.g. in tests that
// call command run functions directly).
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}

	return &config.Config{
		ThemesDir:    getEnvOrDefault("THEMEFLAT_THEMES_DIR", config.DefaultThemesDir),
		LogLevel:     getEnvOrDefault("THEMEFLAT_LOG_LEVEL", config.DefaultLogLevel),
		OutputFormat: getEnvOrDefault("THEMEFLAT_OUTPUT", config.DefaultOutput),
		Verbose:      os.Getenv("THEMEFLAT_VERBOSE") == "true",
	}
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
