package request

import (
	"shiv_accounts/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// LineItemRequest is one product row. Amount is never accepted; it is derived
// from quantity and unit price.
type LineItemRequest struct {
	ID            string           `json:"id"`
	ProductID     *string          `json:"productId"`
	Quantity      *decimal.Decimal `json:"quantity"`
	UnitPrice     *decimal.Decimal `json:"unitPrice"`
	TaxPercentage *decimal.Decimal `json:"taxPercentage"`
}

func (r LineItemRequest) ApplyTo(li entities.LineItem) entities.LineItem {
	setString(&li.ProductID, r.ProductID)
	setDecimal(&li.Quantity, r.Quantity)
	setDecimal(&li.UnitPrice, r.UnitPrice)
	setDecimal(&li.TaxPercentage, r.TaxPercentage)
	return li
}

// PurchaseOrderRequest creates or edits an order header. When Items is
// present it replaces the whole item list; rows carrying the id of an existing
// item are merged onto it. Subtotal, tax and total are always recomputed, and
// the status only changes through the lifecycle actions.
type PurchaseOrderRequest struct {
	PONumber *string            `json:"poNumber"`
	VendorID *string            `json:"vendorId"`
	Date     *Date              `json:"date"`
	DueDate  *Date              `json:"dueDate"`
	Items    *[]LineItemRequest `json:"items"`
	Notes    *string            `json:"notes"`
}

func (r PurchaseOrderRequest) ApplyTo(po entities.PurchaseOrder) entities.PurchaseOrder {
	setString(&po.PONumber, r.PONumber)
	setString(&po.VendorID, r.VendorID)
	if r.Date != nil {
		po.Date = r.Date.Time
	}
	if r.DueDate != nil {
		po.DueDate = r.DueDate.Time
	}
	if r.Items != nil {
		items := make([]entities.LineItem, 0, len(*r.Items))
		for _, row := range *r.Items {
			var base entities.LineItem
			if i := po.LineItemIndex(row.ID); row.ID != "" && i >= 0 {
				base = po.Items[i]
			}
			item := row.ApplyTo(base)
			item.ID = row.ID
			items = append(items, item)
		}
		po.Items = items
	}
	setString(&po.Notes, r.Notes)
	return po
}
