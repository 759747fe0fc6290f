package response

import (
	"time"

	"shiv_accounts/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type DashboardResponse struct {
	GeneratedAt            time.Time               `json:"generatedAt"`
	TotalSales             decimal.Decimal         `json:"totalSales"`
	TotalPurchases         decimal.Decimal         `json:"totalPurchases"`
	OutstandingPayables    decimal.Decimal         `json:"outstandingPayables"`
	OpenPurchaseOrderValue decimal.Decimal         `json:"openPurchaseOrderValue"`
	TotalCustomers         int                     `json:"totalCustomers"`
	TotalVendors           int                     `json:"totalVendors"`
	TotalProducts          int                     `json:"totalProducts"`
	PurchaseOrdersByStatus map[string]int          `json:"purchaseOrdersByStatus"`
	RecentPurchaseOrders   []PurchaseOrderResponse `json:"recentPurchaseOrders"`
}

func FromDashboard(m entities.DashboardMetrics) DashboardResponse {
	byStatus := make(map[string]int, len(m.PurchaseOrdersByStatus))
	for st, n := range m.PurchaseOrdersByStatus {
		byStatus[string(st)] = n
	}
	return DashboardResponse{
		GeneratedAt:            m.GeneratedAt,
		TotalSales:             m.TotalSales,
		TotalPurchases:         m.TotalPurchases,
		OutstandingPayables:    m.OutstandingPayables,
		OpenPurchaseOrderValue: m.OpenPurchaseOrderValue,
		TotalCustomers:         m.TotalCustomers,
		TotalVendors:           m.TotalVendors,
		TotalProducts:          m.TotalProducts,
		PurchaseOrdersByStatus: byStatus,
		RecentPurchaseOrders:   List(m.RecentPurchaseOrders, FromPurchaseOrderView),
	}
}
