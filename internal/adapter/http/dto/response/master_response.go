package response

import (
	"time"

	"shiv_accounts/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type ContactResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Email     string    `json:"email"`
	Mobile    string    `json:"mobile"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	Address   string    `json:"address,omitempty"`
	GSTNumber string    `json:"gstNumber,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromContact(c entities.Contact) ContactResponse {
	return ContactResponse{
		ID:        c.ID,
		Name:      c.Name,
		Type:      string(c.Kind),
		Email:     c.Email,
		Mobile:    c.Mobile,
		City:      c.City,
		State:     c.State,
		Address:   c.Address,
		GSTNumber: c.TaxID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

type ProductResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Type          string          `json:"type"`
	SalesPrice    decimal.Decimal `json:"salesPrice"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	TaxPercentage decimal.Decimal `json:"taxPercentage"`
	HSNCode       string          `json:"hsnCode"`
	Category      string          `json:"category"`
	Description   string          `json:"description,omitempty"`
	Unit          string          `json:"unit"`
	OpeningStock  decimal.Decimal `json:"openingStock"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

func FromProduct(p entities.Product) ProductResponse {
	return ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Type:          string(p.Kind),
		SalesPrice:    p.SalesPrice,
		PurchasePrice: p.PurchasePrice,
		TaxPercentage: p.TaxPercentage,
		HSNCode:       p.HSNCode,
		Category:      p.Category,
		Description:   p.Description,
		Unit:          p.Unit,
		OpeningStock:  p.OpeningStock,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

type TaxResponse struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Rate              decimal.Decimal `json:"rate"`
	ComputationMethod string          `json:"computationMethod"`
	AppliesOn         string          `json:"appliesOn"`
	Description       string          `json:"description,omitempty"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

func FromTax(t entities.Tax) TaxResponse {
	return TaxResponse{
		ID:                t.ID,
		Name:              t.Name,
		Rate:              t.Rate,
		ComputationMethod: string(t.ComputationMethod),
		AppliesOn:         string(t.AppliesOn),
		Description:       t.Description,
		CreatedAt:         t.CreatedAt,
		UpdatedAt:         t.UpdatedAt,
	}
}

type AccountResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Type      string          `json:"type"`
	Code      string          `json:"code"`
	Balance   decimal.Decimal `json:"balance"`
	ParentID  string          `json:"parentId,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

func FromAccount(a entities.Account) AccountResponse {
	return AccountResponse{
		ID:        a.ID,
		Name:      a.Name,
		Type:      string(a.Type),
		Code:      a.Code,
		Balance:   a.Balance,
		ParentID:  a.ParentID,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// List maps every record with fn. The result is never nil so empty lists
// encode as [].
func List[T, R any](records []T, fn func(T) R) []R {
	out := make([]R, 0, len(records))
	for _, r := range records {
		out = append(out, fn(r))
	}
	return out
}
