package entities

import "github.com/shopspring/decimal"

type TaxComputation string

const (
	TaxComputationPercentage TaxComputation = "Percentage"
	TaxComputationFixed      TaxComputation = "Fixed"
)

type TaxScope string

const (
	TaxScopeSales    TaxScope = "Sales"
	TaxScopePurchase TaxScope = "Purchase"
	TaxScopeBoth     TaxScope = "Both"
)

// Tax is a tax master entry. Rate is not bounded to [0,100].
type Tax struct {
	Record
	Name              string
	Rate              decimal.Decimal
	ComputationMethod TaxComputation
	AppliesOn         TaxScope
	Description       string
}

func NewTaxDraft() Tax {
	return Tax{ComputationMethod: TaxComputationPercentage, AppliesOn: TaxScopeBoth}
}

func (t Tax) WithMeta(r Record) Tax {
	t.Record = r
	return t
}

func (t Tax) Validate() error {
	var v validator
	v.required("name", t.Name)
	v.nonNegative("rate", t.Rate)
	v.oneOf("computationMethod", string(t.ComputationMethod), string(TaxComputationPercentage), string(TaxComputationFixed))
	v.oneOf("appliesOn", string(t.AppliesOn), string(TaxScopeSales), string(TaxScopePurchase), string(TaxScopeBoth))
	return v.err()
}

func (t Tax) SearchFields() []string {
	return []string{t.Name, string(t.AppliesOn)}
}
