package cmd

import (
	"fmt"
	"os"

	"github.com/olprint/backoffice/internal/config"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string

	// app is built once per invocation; tests inject their own.
	app *application
)

var rootCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "OLPrint back office - catalog, orders, reports and AI copy",
	Long: `OLPrint back office manages the product catalog and the order lifecycle of
the print shop, renders the management PDF report and asks a text-generation
provider for product copy and business insights.

State lives in memory and is seeded from fixture data on every start. Run
"serve" for the JSON API, or use the other commands for one-off tasks.`,
	SilenceUsage:      true,
	PersistentPreRunE: setupApp,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: search ./deploy, ./, $HOME/.olprint, /etc/olprint)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level override (debug|info|warn|error)")
}

func setupApp(cmd *cobra.Command, args []string) error {
	if app != nil {
		return nil
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}

	app, err = newApp(cfg, cmd.ErrOrStderr())
	return err
}

func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.LoadFile(configPath)
	}
	return config.LoadConfig()
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
