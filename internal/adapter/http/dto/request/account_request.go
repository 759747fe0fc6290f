package request

import (
	"shiv_accounts/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type AccountRequest struct {
	Name     *string          `json:"name"`
	Type     *string          `json:"type"`
	Code     *string          `json:"code"`
	Balance  *decimal.Decimal `json:"balance"`
	ParentID *string          `json:"parentId"`
}

func (r AccountRequest) ApplyTo(a entities.Account) entities.Account {
	setString(&a.Name, r.Name)
	if r.Type != nil {
		a.Type = entities.AccountType(*r.Type)
	}
	setString(&a.Code, r.Code)
	setDecimal(&a.Balance, r.Balance)
	setString(&a.ParentID, r.ParentID)
	return a
}
