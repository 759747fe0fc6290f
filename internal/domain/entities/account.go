package entities

import "github.com/shopspring/decimal"

type AccountType string

const (
	AccountTypeAsset     AccountType = "Asset"
	AccountTypeLiability AccountType = "Liability"
	AccountTypeIncome    AccountType = "Income"
	AccountTypeExpense   AccountType = "Expense"
	AccountTypeEquity    AccountType = "Equity"
)

var accountTypes = []string{
	string(AccountTypeAsset),
	string(AccountTypeLiability),
	string(AccountTypeIncome),
	string(AccountTypeExpense),
	string(AccountTypeEquity),
}

// Account is a chart-of-accounts entry. ParentID is informational only.
type Account struct {
	Record
	Name     string
	Type     AccountType
	Code     string
	Balance  decimal.Decimal
	ParentID string
}

func NewAccountDraft() Account {
	return Account{Type: AccountTypeAsset}
}

func (a Account) WithMeta(r Record) Account {
	a.Record = r
	return a
}

func (a Account) Validate() error {
	var v validator
	v.required("name", a.Name)
	v.oneOf("type", string(a.Type), accountTypes...)
	v.required("code", a.Code)
	if a.ParentID != "" && a.ParentID == a.ID {
		v.add("parentId", "must not reference the account itself")
	}
	return v.err()
}

func (a Account) SearchFields() []string {
	return []string{a.Name, string(a.Type), a.Code}
}
