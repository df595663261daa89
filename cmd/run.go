package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/scriptdeck/scriptdeck/internal/app"
	"github.com/scriptdeck/scriptdeck/internal/catalog"
	"github.com/scriptdeck/scriptdeck/internal/executor"
	"github.com/scriptdeck/scriptdeck/internal/menu"
)

var runDry bool

var runCmd = &cobra.Command{
	Use:   "run <name>",
	Short: "Run a catalog entry by name without the menu",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tree, err := app.LoadCatalog(cfg.App)
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}
		item, err := findEntry(tree, args[0])
		if err != nil {
			return err
		}
		runner := executor.New(cfg.App.ScriptDir, runDry, cfg.App.Verbose)
		return app.RunAction(cmd.Context(), runner, item.Action, cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

// findEntry resolves a command by exact name, falling back to a unique
// substring match.
func findEntry(tree *catalog.Tree, name string) (catalog.Item, error) {
	matches := menu.Filter(tree, name)
	if len(matches) == 0 {
		return catalog.Item{}, fmt.Errorf("no entry matches %q", name)
	}
	for _, item := range matches {
		if strings.EqualFold(item.Name, name) {
			return item, nil
		}
	}
	if len(matches) == 1 {
		return matches[0], nil
	}
	names := make([]string, len(matches))
	for i, item := range matches {
		names[i] = item.Name
	}
	return catalog.Item{}, fmt.Errorf("%q is ambiguous: %s", name, strings.Join(names, ", "))
}

func init() {
	runCmd.Flags().BoolVar(&runDry, "dry-run", false, "print the command without executing it")
	rootCmd.AddCommand(runCmd)
}
