package repository

import (
	"fmt"

	"shiv_accounts/internal/domain/entities"
	"shiv_accounts/internal/usecase/interfaces"
)

const DefaultPurchaseOrdersTableName = "purchase_orders"

type lineItemItem struct {
	ID            string `dynamodbav:"id"`
	ProductID     string `dynamodbav:"product_id"`
	Quantity      string `dynamodbav:"quantity"`
	UnitPrice     string `dynamodbav:"unit_price"`
	TaxPercentage string `dynamodbav:"tax_percentage"`
	Amount        string `dynamodbav:"amount"`
}

type purchaseOrderItem struct {
	ID        string         `dynamodbav:"id"`
	PONumber  string         `dynamodbav:"po_number"`
	VendorID  string         `dynamodbav:"vendor_id"`
	Date      string         `dynamodbav:"date"`
	DueDate   string         `dynamodbav:"due_date"`
	Items     []lineItemItem `dynamodbav:"items"`
	Subtotal  string         `dynamodbav:"subtotal"`
	TaxAmount string         `dynamodbav:"tax_amount"`
	Total     string         `dynamodbav:"total"`
	Status    string         `dynamodbav:"status"`
	Notes     string         `dynamodbav:"notes,omitempty"`
	CreatedAt string         `dynamodbav:"created_at"`
	UpdatedAt string         `dynamodbav:"updated_at"`
}

// PurchaseOrderDynamoRepository persists purchase orders with their line items
// embedded as a list attribute. Vendor and product names are not stored.
type PurchaseOrderDynamoRepository struct {
	*dynamoRepository[entities.PurchaseOrder, purchaseOrderItem]
}

var _ interfaces.IPurchaseOrderRepository = (*PurchaseOrderDynamoRepository)(nil)

func NewPurchaseOrderDynamoRepository(ddb DynamoAPI, tableName string) *PurchaseOrderDynamoRepository {
	if tableName == "" {
		tableName = DefaultPurchaseOrdersTableName
	}
	return &PurchaseOrderDynamoRepository{&dynamoRepository[entities.PurchaseOrder, purchaseOrderItem]{
		ddb:       ddb,
		tableName: tableName,
		encode:    toPurchaseOrderItem,
		decode:    fromPurchaseOrderItem,
	}}
}

func toPurchaseOrderItem(po entities.PurchaseOrder) purchaseOrderItem {
	items := make([]lineItemItem, 0, len(po.Items))
	for _, li := range po.Items {
		items = append(items, lineItemItem{
			ID:            li.ID,
			ProductID:     li.ProductID,
			Quantity:      formatDecimal(li.Quantity),
			UnitPrice:     formatDecimal(li.UnitPrice),
			TaxPercentage: formatDecimal(li.TaxPercentage),
			Amount:        formatDecimal(li.Amount),
		})
	}
	return purchaseOrderItem{
		ID:        po.ID,
		PONumber:  po.PONumber,
		VendorID:  po.VendorID,
		Date:      formatDate(po.Date),
		DueDate:   formatDate(po.DueDate),
		Items:     items,
		Subtotal:  formatDecimal(po.Subtotal),
		TaxAmount: formatDecimal(po.TaxAmount),
		Total:     formatDecimal(po.Total),
		Status:    string(po.Status),
		Notes:     po.Notes,
		CreatedAt: formatTime(po.CreatedAt),
		UpdatedAt: formatTime(po.UpdatedAt),
	}
}

func fromPurchaseOrderItem(it purchaseOrderItem) (entities.PurchaseOrder, error) {
	rec, err := parseRecord(it.ID, it.CreatedAt, it.UpdatedAt)
	if err != nil {
		return entities.PurchaseOrder{}, err
	}
	po := entities.PurchaseOrder{
		Record:   rec,
		PONumber: it.PONumber,
		VendorID: it.VendorID,
		Status:   entities.PurchaseOrderStatus(it.Status),
		Notes:    it.Notes,
	}

	if po.Date, err = parseDate(it.Date); err != nil {
		return entities.PurchaseOrder{}, fmt.Errorf("decode date: %w", err)
	}
	if po.DueDate, err = parseDate(it.DueDate); err != nil {
		return entities.PurchaseOrder{}, fmt.Errorf("decode due_date: %w", err)
	}
	if po.Subtotal, err = parseDecimal("subtotal", it.Subtotal); err != nil {
		return entities.PurchaseOrder{}, err
	}
	if po.TaxAmount, err = parseDecimal("tax_amount", it.TaxAmount); err != nil {
		return entities.PurchaseOrder{}, err
	}
	if po.Total, err = parseDecimal("total", it.Total); err != nil {
		return entities.PurchaseOrder{}, err
	}

	po.Items = make([]entities.LineItem, 0, len(it.Items))
	for _, row := range it.Items {
		li := entities.LineItem{ID: row.ID, ProductID: row.ProductID}
		if li.Quantity, err = parseDecimal("quantity", row.Quantity); err != nil {
			return entities.PurchaseOrder{}, err
		}
		if li.UnitPrice, err = parseDecimal("unit_price", row.UnitPrice); err != nil {
			return entities.PurchaseOrder{}, err
		}
		if li.TaxPercentage, err = parseDecimal("tax_percentage", row.TaxPercentage); err != nil {
			return entities.PurchaseOrder{}, err
		}
		if li.Amount, err = parseDecimal("amount", row.Amount); err != nil {
			return entities.PurchaseOrder{}, err
		}
		po.Items = append(po.Items, li)
	}
	return po, nil
}
