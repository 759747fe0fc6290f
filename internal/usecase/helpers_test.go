package usecase

import (
	"context"
	"testing"
	"time"

	"shiv_accounts/internal/adapter/persistence/memory"
	"shiv_accounts/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type patchFunc[T any] func(T) T

func (f patchFunc[T]) ApplyTo(draft T) T { return f(draft) }

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

var fixedNow = time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

func testCoPatch() patchFunc[entities.Contact] {
	return func(c entities.Contact) entities.Contact {
		c.Name = "Test Co"
		c.Email = "test@co.example"
		c.Mobile = "+91 90000 00000"
		c.City = "Mumbai"
		c.State = "Maharashtra"
		return c
	}
}

type fixture struct {
	contacts *memory.Repository[entities.Contact]
	products *memory.Repository[entities.Product]
	accounts *memory.Repository[entities.Account]
	orders   *memory.Repository[entities.PurchaseOrder]
	vendor   entities.Contact
	table    entities.Product
	chair    entities.Product
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	f := &fixture{
		contacts: memory.NewRepository[entities.Contact](),
		products: memory.NewRepository[entities.Product](),
		accounts: memory.NewRepository[entities.Account](),
		orders:   memory.NewRepository[entities.PurchaseOrder](),
	}
	var err error
	f.vendor, err = f.contacts.Create(ctx, entities.Contact{
		Record: entities.Record{ID: "vendor-1"}, Name: "Wood Suppliers Inc", Kind: entities.ContactKindVendor,
	})
	require.NoError(t, err)
	f.table, err = f.products.Create(ctx, entities.Product{
		Record: entities.Record{ID: "prod-table"}, Name: "Office Table", Kind: entities.ProductKindGoods,
		SalesPrice: d("15000"), PurchasePrice: d("10000"), TaxPercentage: d("18"), Unit: "Piece",
	})
	require.NoError(t, err)
	f.chair, err = f.products.Create(ctx, entities.Product{
		Record: entities.Record{ID: "prod-chair"}, Name: "Office Chair", Kind: entities.ProductKindGoods,
		SalesPrice: d("5000"), PurchasePrice: d("3000"), TaxPercentage: d("18"), Unit: "Piece", OpeningStock: d("10"),
	})
	require.NoError(t, err)
	return f
}

func (f *fixture) purchaseOrders() *PurchaseOrderUseCase {
	uc := NewPurchaseOrderUseCase(f.orders, f.contacts, f.products)
	uc.now = func() time.Time { return fixedNow }
	return uc
}

func (f *fixture) reports() *ReportUseCase {
	uc := NewReportUseCase(f.contacts, f.products, f.accounts, f.orders)
	uc.now = func() time.Time { return fixedNow }
	return uc
}

// tablesOrder is PO-001 from the demo data: 5 tables at 10000 with 18% tax.
func (f *fixture) tablesOrder() patchFunc[entities.PurchaseOrder] {
	return func(po entities.PurchaseOrder) entities.PurchaseOrder {
		po.VendorID = f.vendor.ID
		po.Items = []entities.LineItem{{
			ProductID: f.table.ID, Quantity: d("5"), UnitPrice: d("10000"), TaxPercentage: d("18"),
		}}
		return po
	}
}
