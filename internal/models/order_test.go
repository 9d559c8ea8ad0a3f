package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrderStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    OrderStatus
		wantErr bool
	}{
		{in: "Pendente", want: StatusPending},
		{in: "em produção", want: StatusInProduction},
		{in: "in_production", want: StatusInProduction},
		{in: "SHIPPED", want: StatusShipped},
		{in: " Entregue ", want: StatusDelivered},
		{in: "cancelled", want: StatusCancelled},
		{in: "all", wantErr: true},
		{in: "Arquivado", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseOrderStatus(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsInvalidStatus(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseStatusFilter(t *testing.T) {
	for _, v := range []string{"", "all", "ALL", "Todos"} {
		got, err := ParseStatusFilter(v)
		require.NoError(t, err)
		assert.Equal(t, StatusAll, got)
	}

	got, err := ParseStatusFilter("delivered")
	require.NoError(t, err)
	assert.Equal(t, StatusDelivered, got)

	_, err = ParseStatusFilter("nope")
	assert.True(t, IsInvalidStatus(err))
}

func TestOrderStatusEnumeration(t *testing.T) {
	statuses := OrderStatuses()
	require.Len(t, statuses, 5)
	for _, s := range statuses {
		assert.True(t, s.Valid(), s)
		assert.NotEmpty(t, s.Key())
	}
	assert.False(t, StatusAll.Valid())
	assert.True(t, StatusShipped.Active())
	assert.False(t, StatusDelivered.Active())
	assert.False(t, StatusCancelled.Active())
}

func TestItemBreakdown(t *testing.T) {
	t.Run("even split", func(t *testing.T) {
		o := Order{Total: decimal.RequireFromString("350.00"), Items: 2}
		rows := o.ItemBreakdown()
		require.Len(t, rows, 2)
		assert.True(t, rows[0].Amount.Equal(decimal.RequireFromString("175")))
		assert.True(t, rows[1].Amount.Equal(decimal.RequireFromString("175")))
		assert.Equal(t, 1, rows[0].Index)
	})

	t.Run("remainder on last row", func(t *testing.T) {
		o := Order{Total: decimal.RequireFromString("10.00"), Items: 3}
		rows := o.ItemBreakdown()
		require.Len(t, rows, 3)
		sum := decimal.Zero
		for _, r := range rows {
			sum = sum.Add(r.Amount)
		}
		assert.True(t, sum.Equal(o.Total))
		assert.True(t, rows[0].Amount.Equal(decimal.RequireFromString("3.33")))
		assert.True(t, rows[2].Amount.Equal(decimal.RequireFromString("3.34")))
	})

	t.Run("no items", func(t *testing.T) {
		assert.Empty(t, Order{Total: decimal.NewFromInt(5)}.ItemBreakdown())
	})
}

func TestParseDate(t *testing.T) {
	_, err := ParseDate("2024-05-20")
	require.NoError(t, err)

	_, err = ParseDate("20/05/2024")
	assert.True(t, IsValidation(err))
}
