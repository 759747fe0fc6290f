// Package seed loads the demo company into empty stores.
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"shiv_accounts/internal/domain/entities"
	"shiv_accounts/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultData []byte

// baseTime stamps records that carry no creation date in the dataset.
var baseTime = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

type Dataset struct {
	Contacts       []contactRow       `yaml:"contacts"`
	Products       []productRow       `yaml:"products"`
	Taxes          []taxRow           `yaml:"taxes"`
	Accounts       []accountRow       `yaml:"accounts"`
	PurchaseOrders []purchaseOrderRow `yaml:"purchase_orders"`
}

type contactRow struct {
	Name      string    `yaml:"name"`
	Type      string    `yaml:"type"`
	Email     string    `yaml:"email"`
	Mobile    string    `yaml:"mobile"`
	City      string    `yaml:"city"`
	State     string    `yaml:"state"`
	Address   string    `yaml:"address"`
	GSTNumber string    `yaml:"gst_number"`
	CreatedAt time.Time `yaml:"created_at"`
}

type productRow struct {
	Name          string          `yaml:"name"`
	Type          string          `yaml:"type"`
	SalesPrice    decimal.Decimal `yaml:"sales_price"`
	PurchasePrice decimal.Decimal `yaml:"purchase_price"`
	TaxPercentage decimal.Decimal `yaml:"tax_percentage"`
	HSNCode       string          `yaml:"hsn_code"`
	Category      string          `yaml:"category"`
	Description   string          `yaml:"description"`
	Unit          string          `yaml:"unit"`
	OpeningStock  decimal.Decimal `yaml:"opening_stock"`
	CreatedAt     time.Time       `yaml:"created_at"`
}

type taxRow struct {
	Name              string          `yaml:"name"`
	Rate              decimal.Decimal `yaml:"rate"`
	ComputationMethod string          `yaml:"computation_method"`
	AppliesOn         string          `yaml:"applies_on"`
	Description       string          `yaml:"description"`
}

type accountRow struct {
	Name    string          `yaml:"name"`
	Type    string          `yaml:"type"`
	Code    string          `yaml:"code"`
	Balance decimal.Decimal `yaml:"balance"`
	Parent  string          `yaml:"parent"`
}

type purchaseOrderRow struct {
	PONumber string        `yaml:"po_number"`
	Vendor   string        `yaml:"vendor"`
	Date     time.Time     `yaml:"date"`
	DueDate  time.Time     `yaml:"due_date"`
	Status   string        `yaml:"status"`
	Notes    string        `yaml:"notes"`
	Items    []lineItemRow `yaml:"items"`
}

type lineItemRow struct {
	Product       string          `yaml:"product"`
	Quantity      decimal.Decimal `yaml:"quantity"`
	UnitPrice     decimal.Decimal `yaml:"unit_price"`
	TaxPercentage decimal.Decimal `yaml:"tax_percentage"`
}

// Stores are the repositories the dataset is written to.
type Stores struct {
	Contacts       interfaces.IContactRepository
	Products       interfaces.IProductRepository
	Taxes          interfaces.ITaxRepository
	Accounts       interfaces.IAccountRepository
	PurchaseOrders interfaces.IPurchaseOrderRepository
}

// Summary counts the records written per store.
type Summary struct {
	Contacts       int
	Products       int
	Taxes          int
	Accounts       int
	PurchaseOrders int
}

// Default returns the embedded dataset.
func Default() (*Dataset, error) {
	return Parse(defaultData)
}

func Parse(data []byte) (*Dataset, error) {
	var ds Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("parse seed data: %w", err)
	}
	return &ds, nil
}

// Apply writes the dataset into every store that is still empty. Stores that
// already hold records are left untouched, so Apply is safe to run on every
// start. Purchase order vendors and products are resolved by name against
// the contacts and products now in the stores.
func (ds *Dataset) Apply(ctx context.Context, s Stores) (Summary, error) {
	var sum Summary
	log := logrus.WithField("component", "seed")

	var err error
	if sum.Contacts, err = seedStore(ctx, s.Contacts, ds.Contacts, contactRow.toEntity); err != nil {
		return sum, fmt.Errorf("seed contacts: %w", err)
	}
	if sum.Products, err = seedStore(ctx, s.Products, ds.Products, productRow.toEntity); err != nil {
		return sum, fmt.Errorf("seed products: %w", err)
	}
	if sum.Taxes, err = seedStore(ctx, s.Taxes, ds.Taxes, taxRow.toEntity); err != nil {
		return sum, fmt.Errorf("seed taxes: %w", err)
	}
	if sum.Accounts, err = seedStore(ctx, s.Accounts, ds.Accounts, accountRow.toEntity); err != nil {
		return sum, fmt.Errorf("seed accounts: %w", err)
	}

	vendors, err := indexByName(ctx, s.Contacts, func(c entities.Contact) string { return c.Name })
	if err != nil {
		return sum, err
	}
	products, err := indexByName(ctx, s.Products, func(p entities.Product) string { return p.Name })
	if err != nil {
		return sum, err
	}
	toOrder := func(row purchaseOrderRow, i int) (entities.PurchaseOrder, error) {
		return row.toEntity(i, vendors, products)
	}
	if sum.PurchaseOrders, err = seedStore(ctx, s.PurchaseOrders, ds.PurchaseOrders, toOrder); err != nil {
		return sum, fmt.Errorf("seed purchase orders: %w", err)
	}

	log.WithFields(logrus.Fields{
		"contacts":        sum.Contacts,
		"products":        sum.Products,
		"taxes":           sum.Taxes,
		"accounts":        sum.Accounts,
		"purchase_orders": sum.PurchaseOrders,
	}).Info("seed applied")
	return sum, nil
}

// seedStore creates rows oldest first so newest-first listings match the
// dataset's dates.
func seedStore[T entities.Entity[T], R any](ctx context.Context, repo interfaces.IRepository[T], rows []R, convert func(R, int) (T, error)) (int, error) {
	existing, err := repo.List(ctx)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, nil
	}
	for i, row := range rows {
		e, err := convert(row, i)
		if err != nil {
			return i, err
		}
		if err := e.Validate(); err != nil {
			return i, fmt.Errorf("row %d: %w", i, err)
		}
		if _, err := repo.Create(ctx, e); err != nil {
			return i, err
		}
	}
	return len(rows), nil
}

func indexByName[T entities.Identifiable](ctx context.Context, repo interfaces.IRepository[T], name func(T) string) (map[string]string, error) {
	records, err := repo.List(ctx)
	if err != nil {
		return nil, err
	}
	idx := make(map[string]string, len(records))
	for _, r := range records {
		idx[name(r)] = r.Meta().ID
	}
	return idx, nil
}

func record(created time.Time, i int) entities.Record {
	if created.IsZero() {
		created = baseTime.Add(time.Duration(i) * time.Minute)
	}
	created = created.UTC()
	return entities.Record{ID: uuid.NewString(), CreatedAt: created, UpdatedAt: created}
}

func (r contactRow) toEntity(i int) (entities.Contact, error) {
	return entities.Contact{
		Record:  record(r.CreatedAt, i),
		Name:    r.Name,
		Kind:    entities.ContactKind(r.Type),
		Email:   r.Email,
		Mobile:  r.Mobile,
		City:    r.City,
		State:   r.State,
		Address: r.Address,
		TaxID:   r.GSTNumber,
	}, nil
}

func (r productRow) toEntity(i int) (entities.Product, error) {
	return entities.Product{
		Record:        record(r.CreatedAt, i),
		Name:          r.Name,
		Kind:          entities.ProductKind(r.Type),
		SalesPrice:    r.SalesPrice,
		PurchasePrice: r.PurchasePrice,
		TaxPercentage: r.TaxPercentage,
		HSNCode:       r.HSNCode,
		Category:      r.Category,
		Description:   r.Description,
		Unit:          r.Unit,
		OpeningStock:  r.OpeningStock,
	}, nil
}

func (r taxRow) toEntity(i int) (entities.Tax, error) {
	return entities.Tax{
		Record:            record(time.Time{}, i),
		Name:              r.Name,
		Rate:              r.Rate,
		ComputationMethod: entities.TaxComputation(r.ComputationMethod),
		AppliesOn:         entities.TaxScope(r.AppliesOn),
		Description:       r.Description,
	}, nil
}

func (r accountRow) toEntity(i int) (entities.Account, error) {
	return entities.Account{
		Record:   record(time.Time{}, i),
		Name:     r.Name,
		Type:     entities.AccountType(r.Type),
		Code:     r.Code,
		Balance:  r.Balance,
		ParentID: r.Parent,
	}, nil
}

func (r purchaseOrderRow) toEntity(i int, vendors, products map[string]string) (entities.PurchaseOrder, error) {
	vendorID, ok := vendors[r.Vendor]
	if !ok {
		return entities.PurchaseOrder{}, fmt.Errorf("%s: unknown vendor %q", r.PONumber, r.Vendor)
	}
	items := make([]entities.LineItem, 0, len(r.Items))
	for _, it := range r.Items {
		productID, ok := products[it.Product]
		if !ok {
			return entities.PurchaseOrder{}, fmt.Errorf("%s: unknown product %q", r.PONumber, it.Product)
		}
		items = append(items, entities.LineItem{
			ID:            uuid.NewString(),
			ProductID:     productID,
			Quantity:      it.Quantity,
			UnitPrice:     it.UnitPrice,
			TaxPercentage: it.TaxPercentage,
		})
	}
	po := entities.PurchaseOrder{
		Record:   record(r.Date, i),
		PONumber: r.PONumber,
		VendorID: vendorID,
		Date:     r.Date.UTC(),
		DueDate:  r.DueDate.UTC(),
		Items:    items,
		Status:   entities.PurchaseOrderStatus(r.Status),
		Notes:    r.Notes,
	}
	return po.Normalize(), nil
}
