package response

import (
	"time"

	"shiv_accounts/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type ReportLineResponse struct {
	Code   string          `json:"code,omitempty"`
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

type BalanceSheetResponse struct {
	Kind             string               `json:"kind"`
	GeneratedAt      time.Time            `json:"generatedAt"`
	Assets           []ReportLineResponse `json:"assets"`
	Liabilities      []ReportLineResponse `json:"liabilities"`
	Equity           []ReportLineResponse `json:"equity"`
	TotalAssets      decimal.Decimal      `json:"totalAssets"`
	TotalLiabilities decimal.Decimal      `json:"totalLiabilities"`
	TotalEquity      decimal.Decimal      `json:"totalEquity"`
	IsBalanced       bool                 `json:"isBalanced"`
}

type ProfitLossResponse struct {
	Kind          string               `json:"kind"`
	GeneratedAt   time.Time            `json:"generatedAt"`
	Income        []ReportLineResponse `json:"income"`
	Expenses      []ReportLineResponse `json:"expenses"`
	TotalIncome   decimal.Decimal      `json:"totalIncome"`
	TotalExpenses decimal.Decimal      `json:"totalExpenses"`
	NetProfit     decimal.Decimal      `json:"netProfit"`
}

type StockLineResponse struct {
	ProductID string          `json:"productId"`
	Product   string          `json:"product"`
	Unit      string          `json:"unit"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitValue decimal.Decimal `json:"unitValue"`
	Value     decimal.Decimal `json:"value"`
}

type StockReportResponse struct {
	Kind        string              `json:"kind"`
	GeneratedAt time.Time           `json:"generatedAt"`
	Lines       []StockLineResponse `json:"lines"`
	TotalValue  decimal.Decimal     `json:"totalValue"`
}

// StockCSVRow is one row of the stock export.
type StockCSVRow struct {
	Product  string `csv:"product"`
	Unit     string `csv:"unit"`
	Quantity string `csv:"quantity"`
	Rate     string `csv:"rate"`
	Value    string `csv:"value"`
}

func fromLines(lines []entities.ReportLine) []ReportLineResponse {
	return List(lines, func(l entities.ReportLine) ReportLineResponse {
		return ReportLineResponse{Code: l.Code, Name: l.Name, Amount: l.Amount}
	})
}

func FromBalanceSheet(b entities.BalanceSheet) BalanceSheetResponse {
	return BalanceSheetResponse{
		Kind:             string(b.Kind()),
		GeneratedAt:      b.GeneratedAt,
		Assets:           fromLines(b.Assets),
		Liabilities:      fromLines(b.Liabilities),
		Equity:           fromLines(b.Equity),
		TotalAssets:      b.TotalAssets,
		TotalLiabilities: b.TotalLiabilities,
		TotalEquity:      b.TotalEquity,
		IsBalanced:       b.IsBalanced,
	}
}

func FromProfitLoss(p entities.ProfitLoss) ProfitLossResponse {
	return ProfitLossResponse{
		Kind:          string(p.Kind()),
		GeneratedAt:   p.GeneratedAt,
		Income:        fromLines(p.Income),
		Expenses:      fromLines(p.Expenses),
		TotalIncome:   p.TotalIncome,
		TotalExpenses: p.TotalExpenses,
		NetProfit:     p.NetProfit,
	}
}

func FromStockReport(s entities.StockReport) StockReportResponse {
	return StockReportResponse{
		Kind:        string(s.Kind()),
		GeneratedAt: s.GeneratedAt,
		Lines: List(s.Lines, func(l entities.StockLine) StockLineResponse {
			return StockLineResponse{
				ProductID: l.ProductID,
				Product:   l.Product,
				Unit:      l.Unit,
				Quantity:  l.Quantity,
				UnitValue: l.UnitValue,
				Value:     l.Value,
			}
		}),
		TotalValue: s.TotalValue,
	}
}

// FromReport maps any report variant to its JSON body.
func FromReport(r entities.Report) any {
	switch v := r.(type) {
	case entities.BalanceSheet:
		return FromBalanceSheet(v)
	case entities.ProfitLoss:
		return FromProfitLoss(v)
	case entities.StockReport:
		return FromStockReport(v)
	default:
		return nil
	}
}

// StockCSVRows flattens the stock report for CSV export, amounts fixed to two
// decimals.
func StockCSVRows(s entities.StockReport) []StockCSVRow {
	return List(s.Lines, func(l entities.StockLine) StockCSVRow {
		return StockCSVRow{
			Product:  l.Product,
			Unit:     l.Unit,
			Quantity: l.Quantity.String(),
			Rate:     l.UnitValue.StringFixed(2),
			Value:    l.Value.StringFixed(2),
		}
	})
}
