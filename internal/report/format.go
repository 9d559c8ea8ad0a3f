package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/olprint/backoffice/internal/models"
	"github.com/shopspring/decimal"
)

// FormatCurrency renders an amount with the euro prefix and two decimals.
func FormatCurrency(d decimal.Decimal) string {
	return "€ " + d.StringFixed(2)
}

// FormatDate renders an ISO date as dd/mm/yyyy. Values that are not ISO dates
// are returned unchanged.
func FormatDate(iso string) string {
	t, err := time.Parse(models.DateLayout, iso)
	if err != nil {
		return iso
	}
	return t.Format("02/01/2006")
}

// FormatTimestamp renders the generation time the way the report title block shows it.
func FormatTimestamp(t time.Time) string {
	return fmt.Sprintf("%s às %s", t.Format("02/01/2006"), t.Format("15:04:05"))
}

// Filename returns <Brand>_Relatorio_<YYYY-MM-DD>.pdf.
func Filename(brand string, t time.Time) string {
	clean := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, strings.TrimSpace(brand))
	return fmt.Sprintf("%s_Relatorio_%s.pdf", clean, t.Format(models.DateLayout))
}
