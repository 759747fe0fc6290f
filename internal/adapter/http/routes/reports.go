package routes

import (
	"shiv_accounts/internal/adapter/http/handlers"
	"shiv_accounts/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	PathReports   = "/reports"
	PathDashboard = "/dashboard"
)

func addReportRoutes(rg *gin.RouterGroup, h *handlers.ReportHandler) {
	rg.GET(PathDashboard, h.Dashboard)

	reports := rg.Group(PathReports)
	{
		reports.GET("/balance-sheet", h.Report(entities.ReportKindBalanceSheet))
		reports.GET("/profit-loss", h.Report(entities.ReportKindProfitLoss))
		reports.GET("/stock", h.Report(entities.ReportKindStock))
		reports.GET("/stock.csv", h.StockCSV)
	}
}
