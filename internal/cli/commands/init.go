package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new themeflat workspace",
		Long: `Initialize a new themeflat workspace with a starter theme.

This creates:
  - themes/ directory with a "default" base theme
  - themeflat.yaml configuration file`,
		Example: `  # Initialize in the current directory
  themeflat init

  # Initialize in a new directory
  themeflat init my-site

  # Overwrite an existing configuration
  themeflat init --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			return runInit(cmd.OutOrStdout(), dir, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing configuration")
	return cmd
}

func runInit(w io.Writer, dir string, force bool) error {
	if dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	configPath := filepath.Join(dir, "themeflat.yaml")
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("themeflat.yaml already exists. Use --force to overwrite")
	}

	if err := copyTemplate("workspace", dir, force); err != nil {
		return fmt.Errorf("failed to initialize workspace: %w", err)
	}

	files, _ := listTemplateFiles("workspace")
	for _, f := range files {
		fmt.Fprintf(w, "  created %s\n", f)
	}

	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Workspace initialized!")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Next steps:")
	fmt.Fprintln(w, "  1. Add asset files to themes/default/")
	fmt.Fprintln(w, "  2. Create a derived theme with 'extends: default' in its theme.yaml")
	fmt.Fprintln(w, "  3. Run 'themeflat compile <theme> <target>' to flatten it")
	return nil
}
