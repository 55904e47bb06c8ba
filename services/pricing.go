package services

import (
	"github.com/shopspring/decimal"
)

var (
	TaxRate = decimal.RequireFromString("0.05")
	hundred = decimal.NewFromInt(100)
)

// CartLine is one cart entry. Discount is a percentage off Price.
type CartLine struct {
	ID       string
	Name     string
	Quantity int
	Price    decimal.Decimal
	Discount decimal.Decimal
}

// UnitPrice is the price after discount.
func (l CartLine) UnitPrice() decimal.Decimal {
	if l.Discount.IsZero() {
		return l.Price
	}
	return l.Price.Sub(l.Price.Mul(l.Discount).Div(hundred))
}

type CartTotals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// ComputeTotals applies the flat 5% tax on the discounted subtotal.
func ComputeTotals(lines []CartLine) CartTotals {
	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(l.UnitPrice().Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	subtotal = subtotal.Round(2)
	tax := subtotal.Mul(TaxRate).Round(2)
	return CartTotals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}

// TotalsView is the JSON shape of CartTotals.
type TotalsView struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

func (t CartTotals) View() TotalsView {
	return TotalsView{
		Subtotal: t.Subtotal.InexactFloat64(),
		Tax:      t.Tax.InexactFloat64(),
		Total:    t.Total.InexactFloat64(),
	}
}
