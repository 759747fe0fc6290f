package response

import (
	"time"

	"shiv_accounts/internal/domain/entities"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

type LineItemResponse struct {
	ID            string          `json:"id"`
	ProductID     string          `json:"productId"`
	ProductName   string          `json:"productName"`
	Quantity      decimal.Decimal `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	TaxPercentage decimal.Decimal `json:"taxPercentage"`
	Amount        decimal.Decimal `json:"amount"`
}

type PurchaseOrderResponse struct {
	ID         string             `json:"id"`
	PONumber   string             `json:"poNumber"`
	VendorID   string             `json:"vendorId"`
	VendorName string             `json:"vendorName"`
	Date       string             `json:"date"`
	DueDate    string             `json:"dueDate"`
	Items      []LineItemResponse `json:"items"`
	Subtotal   decimal.Decimal    `json:"subtotal"`
	TaxAmount  decimal.Decimal    `json:"taxAmount"`
	Total      decimal.Decimal    `json:"total"`
	Status     string             `json:"status"`
	Notes      string             `json:"notes,omitempty"`
	CreatedAt  time.Time          `json:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt"`
}

func FromPurchaseOrderView(v entities.PurchaseOrderView) PurchaseOrderResponse {
	po := v.Order
	items := make([]LineItemResponse, 0, len(po.Items))
	for _, li := range po.Items {
		items = append(items, LineItemResponse{
			ID:            li.ID,
			ProductID:     li.ProductID,
			ProductName:   v.ProductNames[li.ProductID],
			Quantity:      li.Quantity,
			UnitPrice:     li.UnitPrice,
			TaxPercentage: li.TaxPercentage,
			Amount:        li.Amount,
		})
	}
	return PurchaseOrderResponse{
		ID:         po.ID,
		PONumber:   po.PONumber,
		VendorID:   po.VendorID,
		VendorName: v.VendorName,
		Date:       formatDate(po.Date),
		DueDate:    formatDate(po.DueDate),
		Items:      items,
		Subtotal:   po.Subtotal,
		TaxAmount:  po.TaxAmount,
		Total:      po.Total,
		Status:     string(po.Status),
		Notes:      po.Notes,
		CreatedAt:  po.CreatedAt,
		UpdatedAt:  po.UpdatedAt,
	}
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}
