package entities

import "github.com/shopspring/decimal"

type ProductKind string

const (
	ProductKindGoods   ProductKind = "Goods"
	ProductKindService ProductKind = "Service"
)

// Product is a sellable/purchasable item. Prices are in the company currency.
//
// OpeningStock is the on-hand quantity when the product was registered; the
// stock report adds quantities received through completed purchase orders.
type Product struct {
	Record
	Name          string
	Kind          ProductKind
	SalesPrice    decimal.Decimal
	PurchasePrice decimal.Decimal
	TaxPercentage decimal.Decimal
	HSNCode       string
	Category      string
	Description   string
	Unit          string
	OpeningStock  decimal.Decimal
}

func NewProductDraft() Product {
	return Product{Kind: ProductKindGoods, Unit: "Piece"}
}

func (p Product) WithMeta(r Record) Product {
	p.Record = r
	return p
}

func (p Product) Validate() error {
	var v validator
	v.required("name", p.Name)
	v.oneOf("type", string(p.Kind), string(ProductKindGoods), string(ProductKindService))
	v.nonNegative("salesPrice", p.SalesPrice)
	v.nonNegative("purchasePrice", p.PurchasePrice)
	v.nonNegative("taxPercentage", p.TaxPercentage)
	v.nonNegative("openingStock", p.OpeningStock)
	v.required("hsnCode", p.HSNCode)
	v.required("category", p.Category)
	v.required("unit", p.Unit)
	return v.err()
}

func (p Product) SearchFields() []string {
	return []string{p.Name, p.Category, string(p.Kind)}
}
