package entities

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

const recentOrdersLimit = 5

type DashboardMetrics struct {
	GeneratedAt            time.Time
	TotalSales             decimal.Decimal
	TotalPurchases         decimal.Decimal
	OutstandingPayables    decimal.Decimal
	OpenPurchaseOrderValue decimal.Decimal
	TotalCustomers         int
	TotalVendors           int
	TotalProducts          int
	PurchaseOrdersByStatus map[PurchaseOrderStatus]int
	RecentPurchaseOrders   []PurchaseOrderView
}

// BuildDashboard aggregates the headline numbers. Orders must already be joined
// with their vendor names.
func BuildDashboard(contacts []Contact, products []Product, accounts []Account, orders []PurchaseOrderView, now time.Time) DashboardMetrics {
	m := DashboardMetrics{
		GeneratedAt:            now,
		TotalSales:             decimal.Zero,
		TotalPurchases:         decimal.Zero,
		OutstandingPayables:    decimal.Zero,
		OpenPurchaseOrderValue: decimal.Zero,
		TotalProducts:          len(products),
		PurchaseOrdersByStatus: make(map[PurchaseOrderStatus]int, len(PurchaseOrderStatuses)),
	}

	for _, c := range contacts {
		if c.Kind.IsCustomer() {
			m.TotalCustomers++
		}
		if c.Kind.IsVendor() {
			m.TotalVendors++
		}
	}

	for _, a := range accounts {
		switch a.Type {
		case AccountTypeIncome:
			m.TotalSales = m.TotalSales.Add(a.Balance)
		case AccountTypeExpense:
			m.TotalPurchases = m.TotalPurchases.Add(a.Balance)
		case AccountTypeLiability:
			m.OutstandingPayables = m.OutstandingPayables.Add(a.Balance)
		}
	}

	for _, st := range PurchaseOrderStatuses {
		m.PurchaseOrdersByStatus[st] = 0
	}
	for _, o := range orders {
		m.PurchaseOrdersByStatus[o.Order.Status]++
		if o.Order.Status == PurchaseOrderStatusSent || o.Order.Status == PurchaseOrderStatusApproved {
			m.OpenPurchaseOrderValue = m.OpenPurchaseOrderValue.Add(o.Order.Total)
		}
	}

	recent := make([]PurchaseOrderView, len(orders))
	copy(recent, orders)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].Order.Date.After(recent[j].Order.Date)
	})
	if len(recent) > recentOrdersLimit {
		recent = recent[:recentOrdersLimit]
	}
	m.RecentPurchaseOrders = recent
	return m
}
