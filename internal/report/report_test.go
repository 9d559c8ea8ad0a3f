package report

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/olprint/backoffice/internal/dashboard"
	"github.com/olprint/backoffice/internal/fixtures"
	"github.com/olprint/backoffice/internal/metrics"
	"github.com/olprint/backoffice/internal/models"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func makeOrders(n int) []models.Order {
	orders := make([]models.Order, n)
	for i := range orders {
		orders[i] = models.Order{
			ID:           fmt.Sprintf("ORD-%03d", i+1),
			CustomerName: "Cliente Teste",
			Date:         "2025-03-01",
			Total:        decimal.NewFromInt(int64(10 + i)),
			Status:       models.StatusPending,
			Items:        1,
		}
	}
	return orders
}

func twoStats() []models.Stat {
	return []models.Stat{
		{Label: "Receita Total", Value: "€ 100.00"},
		{Label: "Pedidos Ativos", Value: "2"},
	}
}

func TestGenerateSmallReport(t *testing.T) {
	products := []models.Product{
		{ID: "1", Name: "Papel A4", Brand: "Navigator", Category: "Papéis", Price: decimal.NewFromFloat(4.5), Stock: 120},
		{ID: "2", Name: "Toner 85A", Brand: "HP", Category: "Toners", Price: decimal.NewFromFloat(59.9), Stock: 3},
	}
	m := metrics.New()
	g := NewGenerator("OLPrint", WithClock(fixedClock), WithMetrics(m))

	doc, err := g.Generate(Input{Orders: makeOrders(2), Products: products, Stats: twoStats()})
	require.NoError(t, err)

	assert.Equal(t, 1, doc.Layout.PageCount())
	assert.Equal(t, 2, doc.Layout.RowCount(TableOrders))
	assert.Equal(t, 1, doc.Layout.RowCount(TableLowStock))
	assert.Equal(t, "Página 1 de 1 - Documento Confidencial OLPrint", doc.Layout.Pages[0].Footer)
	assert.Equal(t, "OLPrint_Relatorio_2025-03-14.pdf", doc.Filename)
	assert.True(t, bytes.HasPrefix(doc.PDF, []byte("%PDF-")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ReportsGenerated))

	var values []string
	for _, txt := range doc.Layout.Pages[0].Texts {
		values = append(values, txt.Value)
	}
	assert.Contains(t, values, "Gerado em: 14/03/2025 às 10:30:00")
	assert.Contains(t, values, "Receita Total:")
	assert.Contains(t, values, "Produtos com Stock Baixo (< 10 un)")
}

func TestLayoutPaginatesLongOrderTable(t *testing.T) {
	g := NewGenerator("OLPrint", WithClock(fixedClock))
	layout := g.Layout(Input{Orders: makeOrders(80), Stats: twoStats()})

	require.Greater(t, layout.PageCount(), 1)
	assert.Equal(t, 80, layout.RowCount(TableOrders))

	n := layout.PageCount()
	seen := 0
	for i, page := range layout.Pages {
		assert.Equal(t, i+1, page.Number)
		assert.Equal(t, fmt.Sprintf("Página %d de %d - Documento Confidencial OLPrint", i+1, n), page.Footer)
		for _, seg := range page.Tables {
			assert.LessOrEqual(t, seg.HeaderY+HeaderHeight, BottomLimit)
			for _, row := range seg.Rows {
				assert.LessOrEqual(t, row.Y+RowHeight, BottomLimit)
				if seg.Table == TableOrders {
					assert.Equal(t, seen, row.Index)
					seen++
				}
			}
		}
	}
}

func TestLowStockPlacement(t *testing.T) {
	g := NewGenerator("OLPrint", WithClock(fixedClock))

	tests := []struct {
		name      string
		orders    int
		wantPages int
		titleY    float64
	}{
		// Orders table ends at 237, under the break threshold.
		{name: "same page", orders: 20, wantPages: 1, titleY: 252},
		// Orders table ends at 244, past the threshold.
		{name: "new page", orders: 21, wantPages: 2, titleY: TopMargin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout := g.Layout(Input{Orders: makeOrders(tt.orders), Stats: twoStats()})
			require.Equal(t, tt.wantPages, layout.PageCount())

			last := layout.Pages[len(layout.Pages)-1]
			var titleY float64 = -1
			for _, txt := range last.Texts {
				if txt.Value == "Produtos com Stock Baixo (< 10 un)" {
					titleY = txt.Y
				}
			}
			assert.Equal(t, tt.titleY, titleY)

			require.NotEmpty(t, last.Tables)
			seg := last.Tables[len(last.Tables)-1]
			assert.Equal(t, TableLowStock, seg.Table)
			assert.Equal(t, tt.titleY+5, seg.HeaderY)
		})
	}
}

func TestSeedReport(t *testing.T) {
	products, orders := fixtures.Products(), fixtures.Orders()
	g := NewGenerator("OLPrint", WithClock(fixedClock))

	doc, err := g.Generate(Input{Orders: orders, Products: products, Stats: dashboard.Summary(products, orders)})
	require.NoError(t, err)

	assert.Equal(t, 1, doc.Layout.PageCount())
	assert.Equal(t, 5, doc.Layout.RowCount(TableOrders))
	assert.Equal(t, 1, doc.Layout.RowCount(TableLowStock))
}

func TestGenerateSnapshotsInput(t *testing.T) {
	orders := makeOrders(1)
	g := NewGenerator("OLPrint", WithClock(fixedClock))
	layout := g.Layout(Input{Orders: orders})
	orders[0].ID = "changed"

	seg := layout.Pages[0].Tables[0]
	assert.Equal(t, "ORD-001", seg.Rows[0].Cells[0])
}

func TestSave(t *testing.T) {
	g := NewGenerator("OLPrint", WithClock(fixedClock))
	doc, err := g.Generate(Input{Orders: makeOrders(1), Stats: twoStats()})
	require.NoError(t, err)

	dir := filepath.Join(t.TempDir(), "reports")
	path, err := g.Save(dir, doc)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "OLPrint_Relatorio_2025-03-14.pdf"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, doc.PDF, data)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "€ 1234.50", FormatCurrency(decimal.RequireFromString("1234.5")))
	assert.Equal(t, "€ 0.00", FormatCurrency(decimal.Zero))

	assert.Equal(t, "25/10/2023", FormatDate("2023-10-25"))
	assert.Equal(t, "ontem", FormatDate("ontem"))

	assert.Equal(t, "14/03/2025 às 10:30:00", FormatTimestamp(fixedNow))
	assert.Equal(t, "Print_Shop_Relatorio_2025-03-14.pdf", Filename(" Print Shop ", fixedNow))
}

func TestCP1252(t *testing.T) {
	assert.Equal(t, "Pre\xe7o \x80", cp1252("Preço €"))

	out := cp1252("a世b")
	assert.Len(t, out, 3)
	assert.Equal(t, byte('a'), out[0])
	assert.Equal(t, byte('b'), out[2])
}
