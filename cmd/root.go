package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/scriptdeck/scriptdeck/internal/app"
	"github.com/scriptdeck/scriptdeck/internal/config"
	"github.com/scriptdeck/scriptdeck/internal/logging"
)

var cfg = config.FromEnv()

var rootCmd = &cobra.Command{
	Use:   "scriptdeck",
	Short: "scriptdeck is a hierarchical terminal menu for shell scripts",
	Long: "scriptdeck presents a catalog of shell scripts as a navigable menu\n" +
		"with filtering and script previews, and runs the selected script on exit.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Validate(cfg); err != nil {
			return err
		}
		logging.Configure(cfg.Logging.FilePath)
		logging.SetTraceEnabled(cfg.Logging.Trace)
		traceStartup(cfg, args)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Run(cmd.Context(), cfg.App)
	},
}

// Execute executes the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfg.App.ScriptDir, "script-dir", cfg.App.ScriptDir, "base directory script paths resolve against")
	flags.StringVar(&cfg.App.CatalogPath, "catalog", cfg.App.CatalogPath, "path to a catalog file (built-in catalog when empty)")
	flags.IntVar(&cfg.App.Width, "width", cfg.App.Width, "desired viewport width in cells (0 uses terminal width)")
	flags.IntVar(&cfg.App.Height, "height", cfg.App.Height, "desired viewport height in rows (0 uses terminal height)")
	flags.BoolVar(&cfg.App.ShowFooter, "footer", cfg.App.ShowFooter, "enable footer hint row (disabled by default)")
	flags.BoolVar(&cfg.App.Verbose, "verbose", cfg.App.Verbose, "print the command line before running the selected script")
	flags.BoolVar(&cfg.Logging.Trace, "trace", cfg.Logging.Trace, "enable verbose JSON trace logging")
	flags.StringVar(&cfg.Logging.FilePath, "log-file", cfg.Logging.FilePath, "path to the log file")
}
