package dto

import (
	"time"

	"github.com/accubooks/ledger_backend/internal/core/domain"
)

// PeriodLockRequest identifies the fiscal period to lock or unlock.
type PeriodLockRequest struct {
	FiscalYear   int                 `json:"fiscalYear" binding:"required"`
	FiscalPeriod domain.FiscalPeriod `json:"fiscalPeriod" binding:"required,fiscalperiod"`
}

// PeriodLockResponse defines the data returned for a period lock.
type PeriodLockResponse struct {
	CompanyID    string              `json:"companyID"`
	FiscalYear   int                 `json:"fiscalYear"`
	FiscalPeriod domain.FiscalPeriod `json:"fiscalPeriod"`
	IsLocked     bool                `json:"isLocked"`
	LockedAt     *time.Time          `json:"lockedAt,omitempty"`
	LockedBy     *string             `json:"lockedBy,omitempty"`
}

// ToPeriodLockResponse converts a domain.FiscalPeriodLock to its DTO.
func ToPeriodLockResponse(l *domain.FiscalPeriodLock) PeriodLockResponse {
	return PeriodLockResponse{
		CompanyID:    l.CompanyID,
		FiscalYear:   l.FiscalYear,
		FiscalPeriod: l.FiscalPeriod,
		IsLocked:     l.IsLocked,
		LockedAt:     l.LockedAt,
		LockedBy:     l.LockedBy,
	}
}
