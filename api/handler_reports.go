package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"api_pos/internal/reports"
)

type reportHandler struct {
	reportService *reports.Service
	logger        *zap.Logger
}

func newReportHandler(reportService *reports.Service, logger *zap.Logger) *reportHandler {
	return &reportHandler{
		reportService: reportService,
		logger:        logger,
	}
}

// handleSalesReport handles GET /reports/sales?from=YYYY-MM-DD&to=YYYY-MM-DD.
// With ?format=pdf (or Accept: application/pdf) the report is rendered as a
// downloadable PDF, otherwise as JSON.
func (h *reportHandler) handleSalesReport(ctx *gin.Context) {
	from, ok := parseDate(ctx, "from")
	if !ok {
		return
	}
	to, ok := parseDate(ctx, "to")
	if !ok {
		return
	}
	if !to.IsZero() {
		// "to" is a date; the range includes that whole day.
		to = to.Add(24*time.Hour - time.Nanosecond)
	}

	report, err := h.reportService.Build(from, to)
	if err != nil {
		h.logger.Error("failed to build sales report", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build report"})
		return
	}

	wantsPDF := ctx.Query("format") == "pdf" ||
		strings.Contains(ctx.GetHeader("Accept"), "application/pdf")
	if !wantsPDF {
		ctx.JSON(http.StatusOK, report)
		return
	}

	pdf, err := reports.RenderPDF(report)
	if err != nil {
		h.logger.Error("failed to render report PDF", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render report"})
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="sales-report.pdf"`)
	ctx.Data(http.StatusOK, "application/pdf", pdf)
}

func parseDate(ctx *gin.Context, name string) (time.Time, bool) {
	value := ctx.Query(name)
	if value == "" {
		return time.Time{}, true
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name + " date, expected YYYY-MM-DD"})
		return time.Time{}, false
	}
	return t, true
}
