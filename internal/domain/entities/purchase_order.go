package entities

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseOrderStatus is the lifecycle of a purchase order.
//
//	Draft -> Sent -> Approved -> Completed
//	any non-terminal state -> Cancelled
type PurchaseOrderStatus string

const (
	PurchaseOrderStatusDraft     PurchaseOrderStatus = "Draft"
	PurchaseOrderStatusSent      PurchaseOrderStatus = "Sent"
	PurchaseOrderStatusApproved  PurchaseOrderStatus = "Approved"
	PurchaseOrderStatusCompleted PurchaseOrderStatus = "Completed"
	PurchaseOrderStatusCancelled PurchaseOrderStatus = "Cancelled"
)

// PurchaseOrderStatuses lists every status in lifecycle order.
var PurchaseOrderStatuses = []PurchaseOrderStatus{
	PurchaseOrderStatusDraft,
	PurchaseOrderStatusSent,
	PurchaseOrderStatusApproved,
	PurchaseOrderStatusCompleted,
	PurchaseOrderStatusCancelled,
}

var (
	ErrInvalidStatusTransition = errors.New("invalid purchase order status transition")
	ErrOrderLocked             = errors.New("purchase order is closed for changes")
)

var nextStatus = map[PurchaseOrderStatus]PurchaseOrderStatus{
	PurchaseOrderStatusDraft:    PurchaseOrderStatusSent,
	PurchaseOrderStatusSent:     PurchaseOrderStatusApproved,
	PurchaseOrderStatusApproved: PurchaseOrderStatusCompleted,
}

func (s PurchaseOrderStatus) Valid() bool {
	for _, st := range PurchaseOrderStatuses {
		if s == st {
			return true
		}
	}
	return false
}

func (s PurchaseOrderStatus) IsTerminal() bool {
	return s == PurchaseOrderStatusCompleted || s == PurchaseOrderStatusCancelled
}

// CanTransitionTo enforces the linear progression. Skipping steps and
// re-entering the current state are both rejected.
func (s PurchaseOrderStatus) CanTransitionTo(target PurchaseOrderStatus) bool {
	if s.IsTerminal() || s == target {
		return false
	}
	if target == PurchaseOrderStatusCancelled {
		return true
	}
	return nextStatus[s] == target
}

// PurchaseOrder is an order placed with a vendor. The vendor and product names
// are not stored; they are joined on read.
type PurchaseOrder struct {
	Record
	PONumber  string
	VendorID  string
	Date      time.Time
	DueDate   time.Time
	Items     []LineItem
	Subtotal  decimal.Decimal
	TaxAmount decimal.Decimal
	Total     decimal.Decimal
	Status    PurchaseOrderStatus
	Notes     string
}

func NewPurchaseOrderDraft(now time.Time) PurchaseOrder {
	day := now.UTC().Truncate(24 * time.Hour)
	return PurchaseOrder{
		Date:    day,
		DueDate: day.AddDate(0, 0, 15),
		Status:  PurchaseOrderStatusDraft,
	}
}

func (po PurchaseOrder) WithMeta(r Record) PurchaseOrder {
	po.Record = r
	return po
}

// Normalize recomputes every line amount and the order totals.
func (po PurchaseOrder) Normalize() PurchaseOrder {
	po = po.Clone()
	for i := range po.Items {
		po.Items[i].Amount = po.Items[i].net()
	}
	t := CalculateTotals(po.Items)
	po.Subtotal, po.TaxAmount, po.Total = t.Subtotal, t.TaxAmount, t.Total
	return po
}

func (po PurchaseOrder) Clone() PurchaseOrder {
	if po.Items != nil {
		items := make([]LineItem, len(po.Items))
		copy(items, po.Items)
		po.Items = items
	}
	return po
}

// Transition moves the order to target when the lifecycle allows it.
func (po PurchaseOrder) Transition(target PurchaseOrderStatus) (PurchaseOrder, error) {
	if !target.Valid() {
		return po, fmt.Errorf("%w: unknown status %q", ErrInvalidStatusTransition, target)
	}
	if !po.Status.CanTransitionTo(target) {
		return po, fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, po.Status, target)
	}
	po.Status = target
	return po, nil
}

// LineItemIndex returns the position of the item with the given id, or -1.
func (po PurchaseOrder) LineItemIndex(itemID string) int {
	for i, it := range po.Items {
		if it.ID == itemID {
			return i
		}
	}
	return -1
}

func (po PurchaseOrder) Validate() error {
	var v validator
	v.required("poNumber", po.PONumber)
	v.required("vendorId", po.VendorID)
	if po.Date.IsZero() {
		v.add("date", "is required")
	}
	if po.DueDate.IsZero() {
		v.add("dueDate", "is required")
	} else if po.DueDate.Before(po.Date) {
		v.add("dueDate", "must not be before date")
	}
	if !po.Status.Valid() {
		v.add("status", "is not a valid status")
	}
	if len(po.Items) == 0 {
		v.add("items", "must contain at least one line item")
	}
	seen := make(map[string]bool, len(po.Items))
	for i, it := range po.Items {
		prefix := fmt.Sprintf("items[%d].", i)
		it.validate(&v, prefix)
		if it.ID != "" && seen[it.ID] {
			v.add(prefix+"id", "duplicates another line item")
		}
		seen[it.ID] = true
	}
	if !po.Total.Equal(po.Subtotal.Add(po.TaxAmount)) {
		v.add("total", "must equal subtotal plus tax amount")
	}
	return v.err()
}

func (po PurchaseOrder) SearchFields() []string {
	return []string{po.PONumber, string(po.Status)}
}

// PurchaseOrderView is a purchase order joined with its vendor and product names.
type PurchaseOrderView struct {
	Order        PurchaseOrder
	VendorName   string
	ProductNames map[string]string
}

func (v PurchaseOrderView) SearchFields() []string {
	return []string{v.Order.PONumber, v.VendorName, string(v.Order.Status)}
}
