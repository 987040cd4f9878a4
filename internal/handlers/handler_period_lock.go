package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/accubooks/ledger_backend/internal/apperrors"
	"github.com/accubooks/ledger_backend/internal/core/domain"
	portssvc "github.com/accubooks/ledger_backend/internal/core/ports/services"
	"github.com/accubooks/ledger_backend/internal/dto"
	"github.com/accubooks/ledger_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// periodLockHandler handles HTTP requests for fiscal period locks.
type periodLockHandler struct {
	periodLockService portssvc.PeriodLockSvcFacade
}

// newPeriodLockHandler creates a new periodLockHandler.
func newPeriodLockHandler(periodLockService portssvc.PeriodLockSvcFacade) *periodLockHandler {
	return &periodLockHandler{
		periodLockService: periodLockService,
	}
}

// lockPeriod godoc
// @Summary Lock a fiscal period
// @Description Closes a fiscal period against posting
// @Tags period-locks
// @Accept  json
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   lock body dto.PeriodLockRequest true "Period to lock"
// @Success 200 {object} map[string]string "Period locked"
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to lock period"
// @Router /companies/{company_id}/period-locks/lock [post]
func (h *periodLockHandler) lockPeriod(c *gin.Context) {
	h.setLocked(c, true)
}

// unlockPeriod godoc
// @Summary Unlock a fiscal period
// @Description Reopens a fiscal period for posting
// @Tags period-locks
// @Accept  json
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   lock body dto.PeriodLockRequest true "Period to unlock"
// @Success 200 {object} map[string]string "Period unlocked"
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to unlock period"
// @Router /companies/{company_id}/period-locks/unlock [post]
func (h *periodLockHandler) unlockPeriod(c *gin.Context) {
	h.setLocked(c, false)
}

func (h *periodLockHandler) setLocked(c *gin.Context, locked bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("company_id")

	var req dto.PeriodLockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var err error
	if locked {
		err = h.periodLockService.LockPeriod(c.Request.Context(), companyID, req.FiscalYear, req.FiscalPeriod, userID)
	} else {
		err = h.periodLockService.UnlockPeriod(c.Request.Context(), companyID, req.FiscalYear, req.FiscalPeriod, userID)
	}
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to update period lock", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update period lock"})
		return
	}

	status := "unlocked"
	if locked {
		status = "locked"
	}
	c.JSON(http.StatusOK, gin.H{"status": status})
}

// getPeriodLock godoc
// @Summary Get a fiscal period lock
// @Description Retrieves the lock state of a fiscal period
// @Tags period-locks
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   fiscal_year path int true "Fiscal year"
// @Param   fiscal_period path string true "Fiscal period"
// @Success 200 {object} dto.PeriodLockResponse "Period lock"
// @Failure 400 {object} map[string]string "Invalid path parameters"
// @Failure 404 {object} map[string]string "No lock recorded for period"
// @Failure 500 {object} map[string]string "Failed to retrieve period lock"
// @Router /companies/{company_id}/period-locks/{fiscal_year}/{fiscal_period} [get]
func (h *periodLockHandler) getPeriodLock(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("company_id")

	fiscalYear, err := strconv.Atoi(c.Param("fiscal_year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid fiscal year"})
		return
	}
	fiscalPeriod := domain.FiscalPeriod(c.Param("fiscal_period"))
	if !fiscalPeriod.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid fiscal period"})
		return
	}

	lock, err := h.periodLockService.GetPeriodLock(c.Request.Context(), companyID, fiscalYear, fiscalPeriod)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No lock recorded for period"})
			return
		}
		logger.Error("Failed to get period lock", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve period lock"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPeriodLockResponse(lock))
}

// registerPeriodLockRoutes registers period lock routes nested under a company.
func registerPeriodLockRoutes(companyGroup *gin.RouterGroup, periodLockService portssvc.PeriodLockSvcFacade) {
	h := newPeriodLockHandler(periodLockService)

	locks := companyGroup.Group("/period-locks")
	{
		locks.POST("/lock", h.lockPeriod)
		locks.POST("/unlock", h.unlockPeriod)
		locks.GET("/:fiscal_year/:fiscal_period", h.getPeriodLock)
	}
}
