package usecase

//go:generate mockgen -source=report_usecase.go -destination=../adapter/http/handlers/mocks/report_usecase_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shiv_accounts/internal/domain/entities"
	"shiv_accounts/internal/usecase/interfaces"
)

var ErrUnknownReport = errors.New("unknown report")

// IReportUseCase builds the report tabs and the dashboard from live data.
type IReportUseCase interface {
	Generate(ctx context.Context, kind entities.ReportKind) (entities.Report, error)
	BalanceSheet(ctx context.Context) (entities.BalanceSheet, error)
	ProfitLoss(ctx context.Context) (entities.ProfitLoss, error)
	Stock(ctx context.Context) (entities.StockReport, error)
	Dashboard(ctx context.Context) (entities.DashboardMetrics, error)
}

type ReportUseCase struct {
	contacts interfaces.IContactRepository
	products interfaces.IProductRepository
	accounts interfaces.IAccountRepository
	orders   interfaces.IPurchaseOrderRepository
	now      func() time.Time
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(
	contacts interfaces.IContactRepository,
	products interfaces.IProductRepository,
	accounts interfaces.IAccountRepository,
	orders interfaces.IPurchaseOrderRepository,
) *ReportUseCase {
	return &ReportUseCase{
		contacts: contacts,
		products: products,
		accounts: accounts,
		orders:   orders,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (u *ReportUseCase) Generate(ctx context.Context, kind entities.ReportKind) (entities.Report, error) {
	var (
		report entities.Report
		err    error
	)
	switch kind {
	case entities.ReportKindBalanceSheet:
		report, err = u.BalanceSheet(ctx)
	case entities.ReportKindProfitLoss:
		report, err = u.ProfitLoss(ctx)
	case entities.ReportKindStock:
		report, err = u.Stock(ctx)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownReport, kind)
	}
	if err != nil {
		return nil, err
	}
	return report, nil
}

func (u *ReportUseCase) BalanceSheet(ctx context.Context) (entities.BalanceSheet, error) {
	accounts, err := u.accounts.List(ctx)
	if err != nil {
		return entities.BalanceSheet{}, fmt.Errorf("load accounts: %w", err)
	}
	return entities.BuildBalanceSheet(oldestFirst(accounts), u.now()), nil
}

func (u *ReportUseCase) ProfitLoss(ctx context.Context) (entities.ProfitLoss, error) {
	accounts, err := u.accounts.List(ctx)
	if err != nil {
		return entities.ProfitLoss{}, fmt.Errorf("load accounts: %w", err)
	}
	return entities.BuildProfitLoss(oldestFirst(accounts), u.now()), nil
}

func (u *ReportUseCase) Stock(ctx context.Context) (entities.StockReport, error) {
	products, err := u.products.List(ctx)
	if err != nil {
		return entities.StockReport{}, fmt.Errorf("load products: %w", err)
	}
	orders, err := u.orders.List(ctx)
	if err != nil {
		return entities.StockReport{}, fmt.Errorf("load purchase orders: %w", err)
	}
	return entities.BuildStockReport(oldestFirst(products), orders, u.now()), nil
}

func (u *ReportUseCase) Dashboard(ctx context.Context) (entities.DashboardMetrics, error) {
	contacts, err := u.contacts.List(ctx)
	if err != nil {
		return entities.DashboardMetrics{}, fmt.Errorf("load contacts: %w", err)
	}
	products, err := u.products.List(ctx)
	if err != nil {
		return entities.DashboardMetrics{}, fmt.Errorf("load products: %w", err)
	}
	accounts, err := u.accounts.List(ctx)
	if err != nil {
		return entities.DashboardMetrics{}, fmt.Errorf("load accounts: %w", err)
	}
	orders, err := u.orders.List(ctx)
	if err != nil {
		return entities.DashboardMetrics{}, fmt.Errorf("load purchase orders: %w", err)
	}
	views := JoinPurchaseOrders(orders, contacts, products)
	return entities.BuildDashboard(contacts, products, accounts, views, u.now()), nil
}

// oldestFirst reverses the store order so report lines follow the chart's
// registration order.
func oldestFirst[T any](records []T) []T {
	out := make([]T, len(records))
	for i, r := range records {
		out[len(records)-1-i] = r
	}
	return out
}
