package repository

import (
	"shiv_accounts/internal/domain/entities"
	"shiv_accounts/internal/usecase/interfaces"
)

const DefaultProductsTableName = "products"

type productItem struct {
	ID            string `dynamodbav:"id"`
	Name          string `dynamodbav:"name"`
	Kind          string `dynamodbav:"type"`
	SalesPrice    string `dynamodbav:"sales_price"`
	PurchasePrice string `dynamodbav:"purchase_price"`
	TaxPercentage string `dynamodbav:"tax_percentage"`
	HSNCode       string `dynamodbav:"hsn_code"`
	Category      string `dynamodbav:"category"`
	Description   string `dynamodbav:"description,omitempty"`
	Unit          string `dynamodbav:"unit"`
	OpeningStock  string `dynamodbav:"opening_stock"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

type ProductDynamoRepository struct {
	*dynamoRepository[entities.Product, productItem]
}

var _ interfaces.IProductRepository = (*ProductDynamoRepository)(nil)

func NewProductDynamoRepository(ddb DynamoAPI, tableName string) *ProductDynamoRepository {
	if tableName == "" {
		tableName = DefaultProductsTableName
	}
	return &ProductDynamoRepository{&dynamoRepository[entities.Product, productItem]{
		ddb:       ddb,
		tableName: tableName,
		encode:    toProductItem,
		decode:    fromProductItem,
	}}
}

func toProductItem(p entities.Product) productItem {
	return productItem{
		ID:            p.ID,
		Name:          p.Name,
		Kind:          string(p.Kind),
		SalesPrice:    formatDecimal(p.SalesPrice),
		PurchasePrice: formatDecimal(p.PurchasePrice),
		TaxPercentage: formatDecimal(p.TaxPercentage),
		HSNCode:       p.HSNCode,
		Category:      p.Category,
		Description:   p.Description,
		Unit:          p.Unit,
		OpeningStock:  formatDecimal(p.OpeningStock),
		CreatedAt:     formatTime(p.CreatedAt),
		UpdatedAt:     formatTime(p.UpdatedAt),
	}
}

func fromProductItem(it productItem) (entities.Product, error) {
	rec, err := parseRecord(it.ID, it.CreatedAt, it.UpdatedAt)
	if err != nil {
		return entities.Product{}, err
	}
	p := entities.Product{
		Record:      rec,
		Name:        it.Name,
		Kind:        entities.ProductKind(it.Kind),
		HSNCode:     it.HSNCode,
		Category:    it.Category,
		Description: it.Description,
		Unit:        it.Unit,
	}
	if p.SalesPrice, err = parseDecimal("sales_price", it.SalesPrice); err != nil {
		return entities.Product{}, err
	}
	if p.PurchasePrice, err = parseDecimal("purchase_price", it.PurchasePrice); err != nil {
		return entities.Product{}, err
	}
	if p.TaxPercentage, err = parseDecimal("tax_percentage", it.TaxPercentage); err != nil {
		return entities.Product{}, err
	}
	if p.OpeningStock, err = parseDecimal("opening_stock", it.OpeningStock); err != nil {
		return entities.Product{}, err
	}
	return p, nil
}
