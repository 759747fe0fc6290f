package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type ReportKind string

const (
	ReportKindBalanceSheet ReportKind = "balance-sheet"
	ReportKindProfitLoss   ReportKind = "profit-loss"
	ReportKindStock        ReportKind = "stock"
)

// Report is one of BalanceSheet, ProfitLoss or StockReport.
type Report interface {
	Kind() ReportKind
	Generated() time.Time
	isReport()
}

// ReportLine is a named amount within a report section.
type ReportLine struct {
	Code   string
	Name   string
	Amount decimal.Decimal
}

func sumLines(lines []ReportLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Amount)
	}
	return total
}

type BalanceSheet struct {
	GeneratedAt      time.Time
	Assets           []ReportLine
	Liabilities      []ReportLine
	Equity           []ReportLine
	TotalAssets      decimal.Decimal
	TotalLiabilities decimal.Decimal
	TotalEquity      decimal.Decimal
	IsBalanced       bool
}

func (BalanceSheet) Kind() ReportKind       { return ReportKindBalanceSheet }
func (b BalanceSheet) Generated() time.Time { return b.GeneratedAt }
func (BalanceSheet) isReport()              {}

type ProfitLoss struct {
	GeneratedAt   time.Time
	Income        []ReportLine
	Expenses      []ReportLine
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	NetProfit     decimal.Decimal
}

func (ProfitLoss) Kind() ReportKind       { return ReportKindProfitLoss }
func (p ProfitLoss) Generated() time.Time { return p.GeneratedAt }
func (ProfitLoss) isReport()              {}

type StockLine struct {
	ProductID string
	Product   string
	Unit      string
	Quantity  decimal.Decimal
	UnitValue decimal.Decimal
	Value     decimal.Decimal
}

type StockReport struct {
	GeneratedAt time.Time
	Lines       []StockLine
	TotalValue  decimal.Decimal
}

func (StockReport) Kind() ReportKind       { return ReportKindStock }
func (s StockReport) Generated() time.Time { return s.GeneratedAt }
func (StockReport) isReport()              {}

// BuildProfitLoss summarizes income and expense account balances.
func BuildProfitLoss(accounts []Account, now time.Time) ProfitLoss {
	pl := ProfitLoss{GeneratedAt: now}
	for _, a := range accounts {
		line := ReportLine{Code: a.Code, Name: a.Name, Amount: a.Balance}
		switch a.Type {
		case AccountTypeIncome:
			pl.Income = append(pl.Income, line)
		case AccountTypeExpense:
			pl.Expenses = append(pl.Expenses, line)
		}
	}
	pl.TotalIncome = sumLines(pl.Income)
	pl.TotalExpenses = sumLines(pl.Expenses)
	pl.NetProfit = pl.TotalIncome.Sub(pl.TotalExpenses)
	return pl
}

// BuildBalanceSheet groups asset, liability and equity balances. The period's
// net profit is carried into equity as current earnings.
func BuildBalanceSheet(accounts []Account, now time.Time) BalanceSheet {
	bs := BalanceSheet{GeneratedAt: now}
	for _, a := range accounts {
		line := ReportLine{Code: a.Code, Name: a.Name, Amount: a.Balance}
		switch a.Type {
		case AccountTypeAsset:
			bs.Assets = append(bs.Assets, line)
		case AccountTypeLiability:
			bs.Liabilities = append(bs.Liabilities, line)
		case AccountTypeEquity:
			bs.Equity = append(bs.Equity, line)
		}
	}
	if earnings := BuildProfitLoss(accounts, now).NetProfit; !earnings.IsZero() {
		bs.Equity = append(bs.Equity, ReportLine{Name: "Current Earnings", Amount: earnings})
	}
	bs.TotalAssets = sumLines(bs.Assets)
	bs.TotalLiabilities = sumLines(bs.Liabilities)
	bs.TotalEquity = sumLines(bs.Equity)
	bs.IsBalanced = bs.TotalAssets.Equal(bs.TotalLiabilities.Add(bs.TotalEquity))
	return bs
}

// BuildStockReport values the on-hand quantity of every Goods product at its
// sales price. On-hand is the opening stock plus quantities on completed orders.
func BuildStockReport(products []Product, orders []PurchaseOrder, now time.Time) StockReport {
	received := map[string]decimal.Decimal{}
	for _, po := range orders {
		if po.Status != PurchaseOrderStatusCompleted {
			continue
		}
		for _, it := range po.Items {
			received[it.ProductID] = received[it.ProductID].Add(it.Quantity)
		}
	}

	sr := StockReport{GeneratedAt: now, TotalValue: decimal.Zero}
	for _, p := range products {
		if p.Kind != ProductKindGoods {
			continue
		}
		qty := p.OpeningStock.Add(received[p.ID])
		value := qty.Mul(p.SalesPrice)
		sr.Lines = append(sr.Lines, StockLine{
			ProductID: p.ID,
			Product:   p.Name,
			Unit:      p.Unit,
			Quantity:  qty,
			UnitValue: p.SalesPrice,
			Value:     value,
		})
		sr.TotalValue = sr.TotalValue.Add(value)
	}
	return sr
}
