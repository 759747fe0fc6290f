package handlers

import (
	"fmt"
	"net/http"

	"shiv_accounts/internal/adapter/http/dto/response"
	"shiv_accounts/internal/domain/entities"
	"shiv_accounts/internal/infrastructure/metrics"
	"shiv_accounts/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/gocarina/gocsv"
	"github.com/sirupsen/logrus"
)

const contentTypeCSV = "text/csv; charset=utf-8"

// ReportHandler serves the report tabs and the dashboard.
type ReportHandler struct {
	usecase usecase.IReportUseCase
	log     *logrus.Entry
}

func NewReportHandler(uc usecase.IReportUseCase) *ReportHandler {
	return &ReportHandler{
		usecase: uc,
		log:     logrus.WithField("component", "report_handler"),
	}
}

// Report returns the handler for one report kind. The stock report is also
// available as CSV with format=csv.
func (h *ReportHandler) Report(kind entities.ReportKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		if kind == entities.ReportKindStock && c.Query("format") == "csv" {
			h.StockCSV(c)
			return
		}
		report, err := h.usecase.Generate(c.Request.Context(), kind)
		if err != nil {
			writeError(c, h.log, err)
			return
		}
		metrics.RecordReport(string(kind), "json")
		c.JSON(http.StatusOK, response.FromReport(report))
	}
}

// StockCSV exports the stock report as a CSV attachment.
func (h *ReportHandler) StockCSV(c *gin.Context) {
	stock, err := h.usecase.Stock(c.Request.Context())
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	body, err := gocsv.MarshalBytes(response.StockCSVRows(stock))
	if err != nil {
		writeError(c, h.log, fmt.Errorf("encode stock csv: %w", err))
		return
	}
	metrics.RecordReport(string(entities.ReportKindStock), "csv")
	c.Header("Content-Disposition", `attachment; filename="stock-report.csv"`)
	c.Data(http.StatusOK, contentTypeCSV, body)
}

func (h *ReportHandler) Dashboard(c *gin.Context) {
	m, err := h.usecase.Dashboard(c.Request.Context())
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDashboard(m))
}
