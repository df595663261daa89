package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/scriptdeck/scriptdeck/internal/app"
	"github.com/scriptdeck/scriptdeck/internal/catalog"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the catalog as an indented tree",
	RunE: func(cmd *cobra.Command, args []string) error {
		tree, err := app.LoadCatalog(cfg.App)
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}
		out := cmd.OutOrStdout()
		tree.Walk(func(id catalog.NodeID, depth int) {
			item := tree.Item(id)
			marker := ""
			if tree.HasChildren(id) {
				marker = "/"
			}
			fmt.Fprintf(out, "%s%s%s\n", strings.Repeat("  ", depth-1), item.Name, marker)
		})
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
