package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDashboard(t *testing.T) {
	contacts := []Contact{
		{Name: "Modern Furniture Co.", Kind: ContactKindCustomer},
		{Name: "Wood Supply Ltd.", Kind: ContactKindVendor},
		{Name: "Royal Furniture House", Kind: ContactKindBoth},
	}
	products := []Product{{Name: "Chair"}, {Name: "Table"}}

	var orders []PurchaseOrderView
	base := time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)
	statuses := []PurchaseOrderStatus{
		PurchaseOrderStatusDraft, PurchaseOrderStatusSent, PurchaseOrderStatusApproved,
		PurchaseOrderStatusCompleted, PurchaseOrderStatusCancelled, PurchaseOrderStatusApproved,
	}
	for i, st := range statuses {
		po := samplePurchaseOrder().Normalize()
		po.Status = st
		po.Date = base.AddDate(0, 0, i)
		orders = append(orders, PurchaseOrderView{Order: po})
	}

	m := BuildDashboard(contacts, products, sampleAccounts(), orders, time.Now())

	assert.Equal(t, 2, m.TotalCustomers)
	assert.Equal(t, 2, m.TotalVendors)
	assert.Equal(t, 2, m.TotalProducts)
	assert.True(t, m.TotalSales.Equal(d("850000")))
	assert.True(t, m.TotalPurchases.Equal(d("450000")))
	assert.True(t, m.OutstandingPayables.Equal(d("120000")))
	assert.True(t, m.OpenPurchaseOrderValue.Equal(d("177000")))
	assert.Equal(t, 2, m.PurchaseOrdersByStatus[PurchaseOrderStatusApproved])
	assert.Equal(t, 1, m.PurchaseOrdersByStatus[PurchaseOrderStatusDraft])
	require.Len(t, m.RecentPurchaseOrders, 5)
	assert.Equal(t, base.AddDate(0, 0, 5), m.RecentPurchaseOrders[0].Order.Date)
}
