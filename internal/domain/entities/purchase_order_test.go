package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePurchaseOrder() PurchaseOrder {
	date := time.Date(2024, 9, 15, 0, 0, 0, 0, time.UTC)
	return PurchaseOrder{
		PONumber: "PO-001",
		VendorID: "vendor-1",
		Date:     date,
		DueDate:  date.AddDate(0, 0, 15),
		Status:   PurchaseOrderStatusDraft,
		Items: []LineItem{
			{ID: "li-1", ProductID: "prod-1", Quantity: d("5"), UnitPrice: d("10000"), TaxPercentage: d("18")},
		},
	}
}

func TestPurchaseOrderStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from, to PurchaseOrderStatus
		ok       bool
	}{
		{PurchaseOrderStatusDraft, PurchaseOrderStatusSent, true},
		{PurchaseOrderStatusSent, PurchaseOrderStatusApproved, true},
		{PurchaseOrderStatusApproved, PurchaseOrderStatusCompleted, true},
		{PurchaseOrderStatusDraft, PurchaseOrderStatusCancelled, true},
		{PurchaseOrderStatusSent, PurchaseOrderStatusCancelled, true},
		{PurchaseOrderStatusApproved, PurchaseOrderStatusCancelled, true},
		{PurchaseOrderStatusDraft, PurchaseOrderStatusCompleted, false},
		{PurchaseOrderStatusDraft, PurchaseOrderStatusApproved, false},
		{PurchaseOrderStatusSent, PurchaseOrderStatusDraft, false},
		{PurchaseOrderStatusApproved, PurchaseOrderStatusApproved, false},
		{PurchaseOrderStatusCompleted, PurchaseOrderStatusCancelled, false},
		{PurchaseOrderStatusCancelled, PurchaseOrderStatusDraft, false},
	}
	for _, tc := range cases {
		t.Run(string(tc.from)+"->"+string(tc.to), func(t *testing.T) {
			assert.Equal(t, tc.ok, tc.from.CanTransitionTo(tc.to))
		})
	}
}

func TestPurchaseOrder_TransitionRejectsDraftToCompleted(t *testing.T) {
	po := samplePurchaseOrder()

	_, err := po.Transition(PurchaseOrderStatusCompleted)

	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
}

func TestPurchaseOrder_TransitionUnknownStatus(t *testing.T) {
	_, err := samplePurchaseOrder().Transition("Shipped")
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
}

func TestPurchaseOrder_Normalize(t *testing.T) {
	po := samplePurchaseOrder()
	po.Subtotal = d("1")
	po.Total = d("1")

	n := po.Normalize()

	assert.True(t, n.Items[0].Amount.Equal(d("50000")))
	assert.True(t, n.Subtotal.Equal(d("50000")))
	assert.True(t, n.TaxAmount.Equal(d("9000")))
	assert.True(t, n.Total.Equal(d("59000")))
	assert.True(t, po.Items[0].Amount.IsZero(), "original items must not be mutated")

	t.Run("quantity edit changes totals", func(t *testing.T) {
		edited := n.Clone()
		edited.Items[0].Quantity = d("6")

		again := edited.Normalize()

		assert.True(t, again.Subtotal.Equal(d("60000")))
		assert.True(t, again.TaxAmount.Equal(d("10800")))
		assert.True(t, again.Total.Equal(d("70800")))
		assert.True(t, n.Total.Equal(d("59000")))
	})
}

func TestPurchaseOrder_Validate(t *testing.T) {
	require.NoError(t, samplePurchaseOrder().Normalize().Validate())

	t.Run("stale totals", func(t *testing.T) {
		po := samplePurchaseOrder().Normalize()
		po.Total = d("1")

		var verr *ValidationError
		require.ErrorAs(t, po.Validate(), &verr)
		assert.Contains(t, verr.Fields, "total")
	})

	t.Run("missing fields", func(t *testing.T) {
		po := PurchaseOrder{Status: "bogus", Date: time.Now(), DueDate: time.Now().Add(-48 * time.Hour)}

		var verr *ValidationError
		require.ErrorAs(t, po.Validate(), &verr)
		for _, f := range []string{"poNumber", "vendorId", "dueDate", "status", "items"} {
			assert.Contains(t, verr.Fields, f)
		}
	})

	t.Run("bad line item", func(t *testing.T) {
		po := samplePurchaseOrder()
		po.Items = append(po.Items, LineItem{ID: "li-2", ProductID: "p", Quantity: d("-1")})
		po = po.Normalize()

		var verr *ValidationError
		require.ErrorAs(t, po.Validate(), &verr)
		assert.Contains(t, verr.Fields, "items[1].quantity")
	})

	t.Run("duplicate line item id", func(t *testing.T) {
		po := samplePurchaseOrder()
		dup := po.Items[0]
		po.Items = append(po.Items, dup)
		po = po.Normalize()

		var verr *ValidationError
		require.ErrorAs(t, po.Validate(), &verr)
		assert.Contains(t, verr.Fields, "items[1].id")
		assert.NotContains(t, verr.Fields, "items[0].id")
	})
}

func TestPurchaseOrderView_SearchFields(t *testing.T) {
	v := PurchaseOrderView{Order: samplePurchaseOrder(), VendorName: "Wood Supply Ltd."}
	assert.Equal(t, []string{"PO-001", "Wood Supply Ltd.", "Draft"}, v.SearchFields())
}
