package repositories

import (
	"context"

	"github.com/accubooks/ledger_backend/internal/core/domain"
)

// PeriodLockReader defines read operations for fiscal period locks.
// Lock checks are point reads; they must never block concurrent posters.
type PeriodLockReader interface {
	// FindLock retrieves the lock row for (company, year, period), or
	// apperrors.ErrNotFound if none exists.
	FindLock(ctx context.Context, companyID string, fiscalYear int, fiscalPeriod domain.FiscalPeriod) (*domain.FiscalPeriodLock, error)
}

// PeriodLockWriter defines administrative write operations for fiscal period locks.
type PeriodLockWriter interface {
	// UpsertLock creates or updates the lock row for its identity tuple.
	UpsertLock(ctx context.Context, lock domain.FiscalPeriodLock) error
}

// PeriodLockRepositoryFacade combines all period-lock repository interfaces.
type PeriodLockRepositoryFacade interface {
	PeriodLockReader
	PeriodLockWriter
}
