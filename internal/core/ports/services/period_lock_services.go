package services

import (
	"context"

	"github.com/accubooks/ledger_backend/internal/core/domain"
)

// PeriodLockSvcFacade defines administrative and read operations on
// fiscal period locks.
type PeriodLockSvcFacade interface {
	// IsPeriodLocked reports whether the period is locked against posting.
	IsPeriodLocked(ctx context.Context, companyID string, fiscalYear int, fiscalPeriod domain.FiscalPeriod) (bool, error)

	// GetPeriodLock retrieves the lock row, or apperrors.ErrNotFound.
	GetPeriodLock(ctx context.Context, companyID string, fiscalYear int, fiscalPeriod domain.FiscalPeriod) (*domain.FiscalPeriodLock, error)

	// LockPeriod closes the period against posting.
	LockPeriod(ctx context.Context, companyID string, fiscalYear int, fiscalPeriod domain.FiscalPeriod, userID string) error

	// UnlockPeriod reopens the period.
	UnlockPeriod(ctx context.Context, companyID string, fiscalYear int, fiscalPeriod domain.FiscalPeriod, userID string) error
}
