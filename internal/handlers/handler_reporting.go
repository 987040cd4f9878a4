package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/accubooks/ledger_backend/internal/core/domain"
	portssvc "github.com/accubooks/ledger_backend/internal/core/ports/services"
	"github.com/accubooks/ledger_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests for reports.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(reportingService portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{
		reportingService: reportingService,
	}
}

// getTrialBalance godoc
// @Summary Get a trial balance
// @Description Builds the per-period trial balance over all accounts with recorded balances
// @Tags reports
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   fiscalYear query int true "Fiscal year"
// @Param   fiscalPeriod query string true "Fiscal period"
// @Success 200 {object} domain.TrialBalanceReport "Trial balance"
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to build trial balance"
// @Router /companies/{company_id}/reports/trial-balance [get]
func (h *reportingHandler) getTrialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("company_id")

	fiscalYear, err := strconv.Atoi(c.Query("fiscalYear"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or missing fiscalYear"})
		return
	}
	fiscalPeriod := domain.FiscalPeriod(c.Query("fiscalPeriod"))
	if !fiscalPeriod.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or missing fiscalPeriod"})
		return
	}

	report, err := h.reportingService.GetTrialBalance(c.Request.Context(), companyID, fiscalYear, fiscalPeriod)
	if err != nil {
		logger.Error("Failed to build trial balance", slog.String("error", err.Error()), slog.String("company_id", companyID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build trial balance"})
		return
	}

	c.JSON(http.StatusOK, report)
}

// registerReportingRoutes registers reporting routes nested under a company.
func registerReportingRoutes(companyGroup *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := companyGroup.Group("/reports")
	{
		reports.GET("/trial-balance", h.getTrialBalance)
	}
}
