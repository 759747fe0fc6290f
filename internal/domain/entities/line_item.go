package entities

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// LineItem is one product row of a purchase order. Amount is derived from
// Quantity and UnitPrice and is overwritten whenever totals are calculated.
type LineItem struct {
	ID            string
	ProductID     string
	Quantity      decimal.Decimal
	UnitPrice     decimal.Decimal
	TaxPercentage decimal.Decimal
	Amount        decimal.Decimal
}

func (li LineItem) net() decimal.Decimal {
	return li.Quantity.Mul(li.UnitPrice)
}

func (li LineItem) tax() decimal.Decimal {
	return li.net().Mul(li.TaxPercentage).Div(hundred)
}

// Validate checks a single line; prefix scopes the field names (e.g. "items[0].").
func (li LineItem) validate(v *validator, prefix string) {
	v.required(prefix+"productId", li.ProductID)
	v.positive(prefix+"quantity", li.Quantity)
	v.nonNegative(prefix+"unitPrice", li.UnitPrice)
	v.nonNegative(prefix+"taxPercentage", li.TaxPercentage)
}

func (li LineItem) Validate() error {
	var v validator
	li.validate(&v, "")
	return v.err()
}

// Totals are the derived amounts of a sequence of line items.
type Totals struct {
	Subtotal  decimal.Decimal
	TaxAmount decimal.Decimal
	Total     decimal.Decimal
}

// CalculateTotals derives subtotal, tax and total from the items. Tax is
// computed per line from the line's own percentage; sums are rounded to cents.
func CalculateTotals(items []LineItem) Totals {
	subtotal := decimal.Zero
	tax := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.net())
		tax = tax.Add(it.tax())
	}
	subtotal = subtotal.Round(2)
	tax = tax.Round(2)
	return Totals{Subtotal: subtotal, TaxAmount: tax, Total: subtotal.Add(tax)}
}
