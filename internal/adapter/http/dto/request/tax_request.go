package request

import (
	"shiv_accounts/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type TaxRequest struct {
	Name              *string          `json:"name"`
	Rate              *decimal.Decimal `json:"rate"`
	ComputationMethod *string          `json:"computationMethod"`
	AppliesOn         *string          `json:"appliesOn"`
	Description       *string          `json:"description"`
}

func (r TaxRequest) ApplyTo(t entities.Tax) entities.Tax {
	setString(&t.Name, r.Name)
	setDecimal(&t.Rate, r.Rate)
	if r.ComputationMethod != nil {
		t.ComputationMethod = entities.TaxComputation(*r.ComputationMethod)
	}
	if r.AppliesOn != nil {
		t.AppliesOn = entities.TaxScope(*r.AppliesOn)
	}
	setString(&t.Description, r.Description)
	return t
}
