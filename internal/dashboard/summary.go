// Package dashboard derives the headline figures of the back office from store snapshots.
package dashboard

import (
	"fmt"
	"sort"
	"strings"

	"github.com/olprint/backoffice/internal/models"
	"github.com/shopspring/decimal"
)

// Revenue sums the totals of every order that was not cancelled.
func Revenue(orders []models.Order) decimal.Decimal {
	sum := decimal.Zero
	for _, o := range orders {
		if o.Status != models.StatusCancelled {
			sum = sum.Add(o.Total)
		}
	}
	return sum
}

// Summary computes the executive summary lines from live snapshots.
func Summary(products []models.Product, orders []models.Order) []models.Stat {
	active := 0
	customers := map[string]struct{}{}
	for _, o := range orders {
		if o.Status.Active() {
			active++
		}
		customers[strings.ToLower(strings.TrimSpace(o.CustomerName))] = struct{}{}
	}

	critical := 0
	for _, p := range products {
		if p.IsCritical() {
			critical++
		}
	}

	return []models.Stat{
		{Label: "Receita Total", Value: "€ " + Revenue(orders).StringFixed(2)},
		{Label: "Pedidos Ativos", Value: fmt.Sprint(active)},
		{Label: "Clientes", Value: fmt.Sprint(len(customers))},
		{Label: "Estoque Crítico", Value: fmt.Sprint(critical)},
	}
}

// Digest builds the one-line data summary handed to the insight prompt.
func Digest(products []models.Product, orders []models.Order) string {
	byStatus := map[models.OrderStatus]int{}
	for _, o := range orders {
		byStatus[o.Status]++
	}
	var parts []string
	for _, s := range models.OrderStatuses() {
		if n := byStatus[s]; n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, s))
		}
	}

	var low []string
	for _, p := range products {
		if p.IsCritical() {
			low = append(low, fmt.Sprintf("%s (%d un)", p.Name, p.Stock))
		}
	}
	sort.Strings(low)

	digest := fmt.Sprintf("%d pedidos, receita € %s", len(orders), Revenue(orders).StringFixed(2))
	if len(parts) > 0 {
		digest += " [" + strings.Join(parts, ", ") + "]"
	}
	digest += "."
	if len(low) > 0 {
		digest += " Stock baixo: " + strings.Join(low, "; ") + "."
	}
	return digest
}
