// Package fixtures holds the static data the in-memory stores are seeded with.
package fixtures

import (
	"github.com/olprint/backoffice/internal/models"
	"github.com/shopspring/decimal"
)

// Categories returns the initial category set in display order.
func Categories() []string {
	return []string{"Impressoras", "Tinteiros", "Toners", "Papéis", "Acessórios"}
}

// Products returns the initial catalog.
func Products() []models.Product {
	return []models.Product{
		{
			ID:          "1",
			Name:        "Epson EcoTank L3250",
			Brand:       "Epson",
			Category:    "Impressoras",
			Price:       decimal.RequireFromString("249.90"),
			Stock:       12,
			Description: "Impressora multifuncional com tanque de tinta, conexão Wi-Fi Direct e alta economia.",
			ImageURL:    "https://images.unsplash.com/photo-1612815154858-60aa4c59eaa6?auto=format&fit=crop&w=300&q=80",
		},
		{
			ID:          "2",
			Name:        "Kit Tinta Epson 664 (CMYK)",
			Brand:       "Epson",
			Category:    "Tinteiros",
			Price:       decimal.RequireFromString("39.90"),
			Stock:       45,
			Description: "Kit completo de tintas originais Epson T664 para linha EcoTank.",
			ImageURL:    "https://images.unsplash.com/photo-1585351065103-89f772420bb8?auto=format&fit=crop&w=300&q=80",
		},
		{
			ID:          "3",
			Name:        "Papel Fotográfico Glossy A4 180g",
			Brand:       "Outras",
			Category:    "Papéis",
			Price:       decimal.RequireFromString("12.50"),
			Stock:       100,
			Description: "Pacote com 50 folhas de papel fotográfico alto brilho, secagem instantânea.",
			ImageURL:    "https://images.unsplash.com/photo-1586075010923-2dd4570fb338?auto=format&fit=crop&w=300&q=80",
		},
		{
			ID:          "4",
			Name:        "Canon Mega Tank G3110",
			Brand:       "Canon",
			Category:    "Impressoras",
			Price:       decimal.RequireFromString("189.00"),
			Stock:       5,
			Description: "Multifuncional tanque de tinta com LCD e conexão sem fio.",
			ImageURL:    "https://images.unsplash.com/photo-1562254492-377a3ac576f4?auto=format&fit=crop&w=300&q=80",
		},
	}
}

// Orders returns the recent orders shown on a fresh session.
func Orders() []models.Order {
	return []models.Order{
		{ID: "ORD-001", CustomerName: "Carlos Silva", Date: "2024-05-20", Total: decimal.RequireFromString("249.90"), Status: models.StatusInProduction, Items: 1},
		{ID: "ORD-002", CustomerName: "Escritório Contábil Ltda", Date: "2024-05-19", Total: decimal.RequireFromString("85.00"), Status: models.StatusShipped, Items: 10},
		{ID: "ORD-003", CustomerName: "Ana Maria", Date: "2024-05-18", Total: decimal.RequireFromString("12.50"), Status: models.StatusDelivered, Items: 1},
		{ID: "ORD-004", CustomerName: "João Pedro", Date: "2024-05-18", Total: decimal.RequireFromString("45.50"), Status: models.StatusPending, Items: 3},
		{ID: "ORD-005", CustomerName: "Studio Design", Date: "2024-05-17", Total: decimal.RequireFromString("350.00"), Status: models.StatusInProduction, Items: 2},
	}
}

// DashboardStats are the headline figures of the dashboard cards.
func DashboardStats() []models.Stat {
	return []models.Stat{
		{Label: "Receita Total", Value: "€ 28.500", Change: "+12%"},
		{Label: "Pedidos Ativos", Value: "45", Change: "+5%"},
		{Label: "Novos Clientes", Value: "120", Change: "+18%"},
		{Label: "Estoque Crítico", Value: "3", Change: "-2"},
	}
}

// InsightSummary is the sales digest the dashboard banner asks an insight for.
const InsightSummary = "Vendas altas de multifuncionais no fim de semana. Estoque de tinta preta 664 baixo."
