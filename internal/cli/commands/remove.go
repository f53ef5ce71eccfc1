package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRemoveCommand creates the remove command.
func NewRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <theme>",
		Short: "Delete a theme directory from the workspace",
		Long: `Remove recursively deletes the named theme's directory under the themes
directory. It is typically used to clean up compiled themes.`,
		Example: `  # Remove a previously compiled theme
  themeflat remove flat`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			if err := cmdCtx.Compiler.Remove(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed theme %s\n", args[0])
			return nil
		},
	}
}
