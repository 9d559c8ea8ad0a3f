package cmd

import (
	"fmt"

	"github.com/olprint/backoffice/internal/server"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"run"},
	Short:   "Start the back-office API server",
	Long: `Start the back-office API server which provides:
- REST API for products, categories and orders
- Dashboard stats, AI product copy and business insights
- PDF report download and Prometheus metrics on /metrics`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides server.addr)")
}

func runServer(cmd *cobra.Command, args []string) error {
	fmt.Fprintln(cmd.OutOrStdout(), "🚀 OLPrint back office starting...")

	addr := app.cfg.Server.Addr
	if serveAddr != "" {
		addr = serveAddr
	}

	if app.assistant.Available() {
		fmt.Fprintln(cmd.OutOrStdout(), "🤖 Text generation enabled")
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), "⚠️  Text generation disabled (no API key)")
	}

	fmt.Fprintln(cmd.OutOrStdout(), "⚙️  Setting up server...")
	srv := server.NewServer(server.Deps{
		Catalog:   app.catalog,
		Orders:    app.orders,
		Assistant: app.assistant,
		Reports:   app.reports,
		Metrics:   app.metrics,
		Logger:    app.logger,
	})

	fmt.Fprintf(cmd.OutOrStdout(), "🌐 Starting server on %s...\n", addr)
	if err := srv.Start(addr); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}
