package services_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/yeremiapane/sangem-ordering/services"
)

func TestComputeTotals(t *testing.T) {
	lines := []services.CartLine{
		{ID: "1", Name: "Mutton Biryani", Quantity: 1, Price: decimal.NewFromInt(1000)},
		{ID: "2", Name: "Gulab Jamun", Quantity: 2, Price: decimal.NewFromInt(200), Discount: decimal.NewFromInt(25)},
	}
	totals := services.ComputeTotals(lines)

	assert.True(t, totals.Subtotal.Equal(decimal.NewFromInt(1300)), totals.Subtotal.String())
	assert.True(t, totals.Tax.Equal(decimal.NewFromInt(65)), totals.Tax.String())
	assert.True(t, totals.Total.Equal(decimal.NewFromInt(1365)), totals.Total.String())
	assert.Equal(t, services.TotalsView{Subtotal: 1300, Tax: 65, Total: 1365}, totals.View())
}

func TestComputeTotalsRounding(t *testing.T) {
	lines := []services.CartLine{
		{ID: "1", Quantity: 3, Price: decimal.RequireFromString("99.99"), Discount: decimal.NewFromInt(10)},
	}
	totals := services.ComputeTotals(lines)

	assert.Equal(t, "269.97", totals.Subtotal.StringFixed(2))
	assert.Equal(t, "13.50", totals.Tax.StringFixed(2))
	assert.Equal(t, "283.47", totals.Total.StringFixed(2))
}

func TestComputeTotalsEmptyCart(t *testing.T) {
	totals := services.ComputeTotals(nil)
	assert.True(t, totals.Total.IsZero())
	assert.True(t, totals.Tax.IsZero())
}

func TestUnitPrice(t *testing.T) {
	line := services.CartLine{Price: decimal.NewFromInt(400), Discount: decimal.NewFromInt(50)}
	assert.True(t, line.UnitPrice().Equal(decimal.NewFromInt(200)))

	full := services.CartLine{Price: decimal.NewFromInt(400)}
	assert.True(t, full.UnitPrice().Equal(decimal.NewFromInt(400)))
}
