package request

import (
	"shiv_accounts/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type ProductRequest struct {
	Name          *string          `json:"name"`
	Type          *string          `json:"type"`
	SalesPrice    *decimal.Decimal `json:"salesPrice"`
	PurchasePrice *decimal.Decimal `json:"purchasePrice"`
	TaxPercentage *decimal.Decimal `json:"taxPercentage"`
	HSNCode       *string          `json:"hsnCode"`
	Category      *string          `json:"category"`
	Description   *string          `json:"description"`
	Unit          *string          `json:"unit"`
	OpeningStock  *decimal.Decimal `json:"openingStock"`
}

func (r ProductRequest) ApplyTo(p entities.Product) entities.Product {
	setString(&p.Name, r.Name)
	if r.Type != nil {
		p.Kind = entities.ProductKind(*r.Type)
	}
	setDecimal(&p.SalesPrice, r.SalesPrice)
	setDecimal(&p.PurchasePrice, r.PurchasePrice)
	setDecimal(&p.TaxPercentage, r.TaxPercentage)
	setString(&p.HSNCode, r.HSNCode)
	setString(&p.Category, r.Category)
	setString(&p.Description, r.Description)
	setString(&p.Unit, r.Unit)
	setDecimal(&p.OpeningStock, r.OpeningStock)
	return p
}
