package routes

import (
	"shiv_accounts/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathTransactions   = "/transactions"
	PathPurchaseOrders = "/purchase-orders"
)

// comingSoon lists the transaction screens that only answer with 501.
var comingSoon = map[string]string{
	"/vendor-bills": "Vendor Bills",
	"/sales-orders": "Sales Orders",
	"/invoices":     "Customer Invoices",
	"/payments":     "Payments",
}

func addTransactionRoutes(rg *gin.RouterGroup, purchaseOrders *handlers.PurchaseOrderHandler) {
	tx := rg.Group(PathTransactions)

	po := tx.Group(PathPurchaseOrders)
	{
		addCRUD(po, purchaseOrders)

		po.POST("/:id/items", purchaseOrders.AddLineItem)
		po.PUT("/:id/items/:itemId", purchaseOrders.UpdateLineItem)
		po.DELETE("/:id/items/:itemId", purchaseOrders.RemoveLineItem)

		po.PATCH("/:id/send", purchaseOrders.Send)
		po.PATCH("/:id/approve", purchaseOrders.Approve)
		po.PATCH("/:id/complete", purchaseOrders.Complete)
		po.PATCH("/:id/cancel", purchaseOrders.Cancel)
	}

	for path, feature := range comingSoon {
		h := handlers.ComingSoon(feature)
		tx.Any(path, h)
		tx.Any(path+"/*rest", h)
	}
}
