package cmd

import (
	"fmt"

	"github.com/olprint/backoffice/internal/dashboard"
	"github.com/olprint/backoffice/internal/report"
	"github.com/spf13/cobra"
)

var reportOut string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate the management PDF report",
	Long: `Generate the management report: summary stats, latest orders and products
with low stock. The file is named <Brand>_Relatorio_<date>.pdf.`,
	Args: cobra.NoArgs,
	RunE: generateReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringVar(&reportOut, "out", "", "output directory (overrides report.output_dir)")
}

func generateReport(cmd *cobra.Command, args []string) error {
	dir := app.cfg.Report.OutputDir
	if reportOut != "" {
		dir = reportOut
	}

	products, list := app.catalog.Snapshot(), app.orders.Snapshot()
	doc, err := app.reports.Generate(report.Input{
		Orders:   list,
		Products: products,
		Stats:    dashboard.Summary(products, list),
	})
	if err != nil {
		return err
	}

	path, err := app.reports.Save(dir, doc)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "📄 Report saved to %s (%d pages)\n", path, doc.Layout.PageCount())
	return nil
}
