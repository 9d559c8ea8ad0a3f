package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/olprint/backoffice/internal/models"
	"github.com/olprint/backoffice/internal/report"
)

const (
	outputTable = "table"
	outputJSON  = "json"
)

func checkOutput(format string) error {
	if format != outputTable && format != outputJSON {
		return fmt.Errorf("unknown output format %q (table|json)", format)
	}
	return nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printProducts(w io.Writer, format string, products []models.Product) error {
	if format == outputJSON {
		return printJSON(w, products)
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tPRODUTO\tMARCA\tCATEGORIA\tPREÇO\tSTOCK")
	for _, p := range products {
		stock := strconv.Itoa(p.Stock)
		if p.IsCritical() {
			stock += " !"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", p.ID, p.Name, p.Brand, p.Category, report.FormatCurrency(p.Price), stock)
	}
	return tw.Flush()
}

func printOrders(w io.Writer, format string, list []models.Order) error {
	if format == outputJSON {
		return printJSON(w, list)
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCLIENTE\tDATA\tSTATUS\tITENS\tTOTAL")
	for _, o := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%s\n", o.ID, o.CustomerName, report.FormatDate(o.Date), o.Status, o.Items, report.FormatCurrency(o.Total))
	}
	return tw.Flush()
}
