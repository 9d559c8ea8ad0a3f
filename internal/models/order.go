package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the ISO calendar date format orders are stored and filtered with.
const DateLayout = "2006-01-02"

// OrderStatus is the closed set of states an order can be in. The value is the
// label shown to the shop staff.
type OrderStatus string

const (
	StatusPending      OrderStatus = "Pendente"
	StatusInProduction OrderStatus = "Em Produção"
	StatusShipped      OrderStatus = "Enviado"
	StatusDelivered    OrderStatus = "Entregue"
	StatusCancelled    OrderStatus = "Cancelado"

	// StatusAll is the filter sentinel matching every status. It is never a valid order status.
	StatusAll OrderStatus = "all"
)

var statusKeys = map[OrderStatus]string{
	StatusPending:      "pending",
	StatusInProduction: "in_production",
	StatusShipped:      "shipped",
	StatusDelivered:    "delivered",
	StatusCancelled:    "cancelled",
}

// OrderStatuses lists the enumeration in display order.
func OrderStatuses() []OrderStatus {
	return []OrderStatus{StatusPending, StatusInProduction, StatusShipped, StatusDelivered, StatusCancelled}
}

// Key returns the stable identifier of the status (e.g. "in_production").
func (s OrderStatus) Key() string {
	return statusKeys[s]
}

// Valid reports whether s belongs to the enumeration.
func (s OrderStatus) Valid() bool {
	_, ok := statusKeys[s]
	return ok
}

// Active reports whether the order is still being worked on.
func (s OrderStatus) Active() bool {
	return s == StatusPending || s == StatusInProduction || s == StatusShipped
}

// ParseOrderStatus accepts either the label or the key of a status, case-insensitively.
func ParseOrderStatus(v string) (OrderStatus, error) {
	v = strings.TrimSpace(v)
	for s, key := range statusKeys {
		if strings.EqualFold(v, string(s)) || strings.EqualFold(v, key) {
			return s, nil
		}
	}
	return "", NewInvalidStatusError(v)
}

// ParseStatusFilter is ParseOrderStatus plus the "all" sentinel; an empty value means all.
func ParseStatusFilter(v string) (OrderStatus, error) {
	v = strings.TrimSpace(v)
	if v == "" || strings.EqualFold(v, string(StatusAll)) || strings.EqualFold(v, "Todos") {
		return StatusAll, nil
	}
	return ParseOrderStatus(v)
}

// Order represents a customer order
type Order struct {
	ID           string          `json:"id"`
	CustomerName string          `json:"customerName"`
	Date         string          `json:"date"`
	Total        decimal.Decimal `json:"total"`
	Status       OrderStatus     `json:"status"`
	Items        int             `json:"items"`
}

// LineItem is a synthetic row of an order detail view. It is derived from the
// order total and never stored.
type LineItem struct {
	Index  int             `json:"index"`
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

// ItemBreakdown splits the order total evenly across its item count, rounded
// to cents. The last row absorbs the rounding remainder.
func (o Order) ItemBreakdown() []LineItem {
	if o.Items <= 0 {
		return []LineItem{}
	}
	n := decimal.NewFromInt(int64(o.Items))
	share := o.Total.Div(n).Round(2)
	out := make([]LineItem, o.Items)
	allocated := decimal.Zero
	for i := range out {
		amount := share
		if i == o.Items-1 {
			amount = o.Total.Sub(allocated)
		}
		allocated = allocated.Add(amount)
		out[i] = LineItem{
			Index:  i + 1,
			Label:  fmt.Sprintf("Item de Impressão #%d", i+1),
			Amount: amount,
		}
	}
	return out
}

// ParseDate validates an ISO calendar date.
func ParseDate(v string) (time.Time, error) {
	t, err := time.Parse(DateLayout, v)
	if err != nil {
		return time.Time{}, NewValidationError("date", "must be an ISO date (YYYY-MM-DD)", v)
	}
	return t, nil
}
