package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/stackbound/themeflat/internal/resolver"
)

// NewListCommand creates the list command.
func NewListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all themes in the workspace",
		Long: `List all discovered themes with their parent, mixins, and location.

Use --output json for machine-readable output.`,
		Example: `  # List themes as a table
  themeflat list

  # List themes as JSON
  themeflat list --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd)
		},
	}
}

func runList(cmd *cobra.Command) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	themes, err := cmdCtx.Resolver.Themes()
	if err != nil {
		return fmt.Errorf("failed to discover themes: %w", err)
	}

	if cmdCtx.Cfg.OutputFormat == "json" {
		return listJSON(cmd.OutOrStdout(), themes)
	}
	return listTable(cmd.OutOrStdout(), themes)
}

func listTable(w io.Writer, themes []*resolver.Entry) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Theme", "Extends", "Mixins", "Location"})
	for _, entry := range themes {
		extends := entry.Reserved.Extends
		if extends == "" {
			extends = "-"
		}
		mixins := strings.Join(entry.Reserved.Mixins, ", ")
		if mixins == "" {
			mixins = "-"
		}
		t.AppendRow(table.Row{entry.Name, extends, mixins, entry.Location})
	}
	t.SetStyle(table.StyleLight)
	t.Render()
	return nil
}

func listJSON(w io.Writer, themes []*resolver.Entry) error {
	type themeInfo struct {
		Name     string   `json:"name"`
		Extends  string   `json:"extends,omitempty"`
		Mixins   []string `json:"mixins,omitempty"`
		Location string   `json:"location"`
	}

	infos := make([]themeInfo, 0, len(themes))
	for _, entry := range themes {
		infos = append(infos, themeInfo{
			Name:     entry.Name,
			Extends:  entry.Reserved.Extends,
			Mixins:   entry.Reserved.Mixins,
			Location: entry.Location,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(infos)
}
