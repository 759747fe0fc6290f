package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"shiv_accounts/internal/adapter/http/handlers/mocks"
	"shiv_accounts/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func reportRouter(h *ReportHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/dashboard", h.Dashboard)
	g := r.Group("/v1/reports")
	g.GET("/balance-sheet", h.Report(entities.ReportKindBalanceSheet))
	g.GET("/profit-loss", h.Report(entities.ReportKindProfitLoss))
	g.GET("/stock", h.Report(entities.ReportKindStock))
	g.GET("/stock.csv", h.StockCSV)
	return r
}

func sampleStock() entities.StockReport {
	return entities.StockReport{
		GeneratedAt: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Lines: []entities.StockLine{
			{ProductID: "prod-chair", Product: "Office Chair", Unit: "Piece", Quantity: decimal.NewFromInt(12), UnitValue: decimal.NewFromInt(5000), Value: decimal.NewFromInt(60000)},
			{ProductID: "prod-table", Product: "Office Table", Unit: "Piece", Quantity: decimal.NewFromInt(5), UnitValue: decimal.NewFromInt(15000), Value: decimal.NewFromInt(75000)},
		},
		TotalValue: decimal.NewFromInt(135000),
	}
}

func TestReportHandler_Report(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("balance sheet", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReportUseCase(ctrl)
		r := reportRouter(NewReportHandler(uc))

		bs := entities.BuildBalanceSheet([]entities.Account{
			{Name: "Cash", Type: entities.AccountTypeAsset, Code: "A001", Balance: decimal.NewFromInt(100)},
			{Name: "Capital", Type: entities.AccountTypeEquity, Code: "Q001", Balance: decimal.NewFromInt(100)},
		}, time.Now())
		uc.EXPECT().Generate(gomock.Any(), entities.ReportKindBalanceSheet).Return(bs, nil)

		w := serve(r, http.MethodGet, "/v1/reports/balance-sheet", "")
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if w.Code != http.StatusOK || body["kind"] != "balance-sheet" || body["isBalanced"] != true {
			t.Fatalf("unexpected response: %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("stock as json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReportUseCase(ctrl)
		r := reportRouter(NewReportHandler(uc))

		uc.EXPECT().Generate(gomock.Any(), entities.ReportKindStock).Return(sampleStock(), nil)

		w := serve(r, http.MethodGet, "/v1/reports/stock", "")
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if w.Code != http.StatusOK || body["totalValue"] != "135000" {
			t.Fatalf("unexpected response: %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("usecase error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReportUseCase(ctrl)
		r := reportRouter(NewReportHandler(uc))

		uc.EXPECT().Generate(gomock.Any(), entities.ReportKindProfitLoss).Return(nil, errors.New("db"))

		w := serve(r, http.MethodGet, "/v1/reports/profit-loss", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestReportHandler_StockCSV(t *testing.T) {
	gin.SetMode(gin.TestMode)

	for _, path := range []string{"/v1/reports/stock.csv", "/v1/reports/stock?format=csv"} {
		t.Run(path, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIReportUseCase(ctrl)
			r := reportRouter(NewReportHandler(uc))

			uc.EXPECT().Stock(gomock.Any()).Return(sampleStock(), nil)

			w := serve(r, http.MethodGet, path, "")
			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", w.Code)
			}
			if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
				t.Fatalf("unexpected content type %q", ct)
			}
			lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
			if len(lines) != 3 || lines[0] != "product,unit,quantity,rate,value" {
				t.Fatalf("unexpected csv: %q", w.Body.String())
			}
			if lines[1] != "Office Chair,Piece,12,5000.00,60000.00" {
				t.Fatalf("unexpected first row: %q", lines[1])
			}
		})
	}
}

func TestReportHandler_Dashboard(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIReportUseCase(ctrl)
	r := reportRouter(NewReportHandler(uc))

	uc.EXPECT().Dashboard(gomock.Any()).Return(entities.DashboardMetrics{
		TotalSales:             decimal.NewFromInt(850000),
		TotalCustomers:         3,
		PurchaseOrdersByStatus: map[entities.PurchaseOrderStatus]int{entities.PurchaseOrderStatusSent: 1},
		RecentPurchaseOrders:   []entities.PurchaseOrderView{sampleView(entities.PurchaseOrderStatusSent)},
	}, nil)

	w := serve(r, http.MethodGet, "/v1/dashboard", "")
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if w.Code != http.StatusOK || body["totalSales"] != "850000" || body["totalCustomers"] != float64(3) {
		t.Fatalf("unexpected response: %d %s", w.Code, w.Body.String())
	}
}
