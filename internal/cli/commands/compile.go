package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// NewCompileCommand creates the compile command.
func NewCompileCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "compile <source> <target>",
		Short: "Flatten a theme and its inheritance chain into a standalone theme",
		Long: `Compile resolves the source theme's full inheritance chain (parents and
mixins), overlays every layer's files into a new theme directory named
<target>, and writes a merged theme.yaml with no parent reference.

Layers are applied base first. The first layer to supply a file path or a
non-list config value wins; list-valued config keys union with existing
entries taking precedence.`,
		Example: `  # Flatten the "child" theme into a standalone "flat" theme
  themeflat compile child flat

  # Replace an existing compiled theme
  themeflat compile child flat --force`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompile(cmd, args[0], args[1], force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite the target directory if it exists")
	return cmd
}

func runCompile(cmd *cobra.Command, source, target string, force bool) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	result, err := cmdCtx.Compiler.Compile(source, target, force)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Compiled %s -> %s\n", source, result.Target)
	fmt.Fprintf(out, "  layers: %s\n", strings.Join(result.Layers, " -> "))
	fmt.Fprintf(out, "  files:  %d\n", result.FilesPlaced)
	return nil
}
