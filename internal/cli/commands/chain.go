package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/stackbound/themeflat/internal/resolver"
)

// NewChainCommand creates the chain command.
func NewChainCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "chain <theme>",
		Short: "Show a theme's resolved inheritance chain",
		Long: `Chain prints the ordered overlay chain the compiler would apply for the
named theme: base first, mixins folded in before the layer that declares
them. The first layer to supply a file or config value wins.`,
		Example: `  # Show the chain that "child" flattens from
  themeflat chain child`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChain(cmd, args[0])
		},
	}
}

func runChain(cmd *cobra.Command, name string) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	chain, err := cmdCtx.Resolver.ResolveChain(name)
	if err != nil {
		return err
	}

	if cmdCtx.Cfg.OutputFormat == "json" {
		return chainJSON(cmd.OutOrStdout(), chain)
	}
	return chainTable(cmd.OutOrStdout(), name, chain)
}

func chainTable(w io.Writer, name string, chain []resolver.Layer) error {
	fmt.Fprintf(w, "Chain for %s (%d layers, base first)\n", name, len(chain))

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"#", "Layer", "Location"})
	for i, layer := range chain {
		t.AppendRow(table.Row{i + 1, layer.Name, layer.Location})
	}
	t.SetStyle(table.StyleLight)
	t.Render()
	return nil
}

func chainJSON(w io.Writer, chain []resolver.Layer) error {
	type layerInfo struct {
		Name     string `json:"name"`
		Location string `json:"location"`
	}

	infos := make([]layerInfo, 0, len(chain))
	for _, layer := range chain {
		infos = append(infos, layerInfo{Name: layer.Name, Location: layer.Location})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(infos)
}
