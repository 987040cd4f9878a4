package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/accubooks/ledger_backend/internal/apperrors"
	"github.com/accubooks/ledger_backend/internal/core/domain"
	portsrepo "github.com/accubooks/ledger_backend/internal/core/ports/repositories"
	portssvc "github.com/accubooks/ledger_backend/internal/core/ports/services"
	"github.com/accubooks/ledger_backend/internal/middleware"
)

// periodLockService manages fiscal period locks. Locking is an
// administrative action; the posting engine only ever reads lock state.
type periodLockService struct {
	lockRepo portsrepo.PeriodLockRepositoryFacade
}

// NewPeriodLockService creates a new fiscal period lock service.
func NewPeriodLockService(lockRepo portsrepo.PeriodLockRepositoryFacade) portssvc.PeriodLockSvcFacade {
	return &periodLockService{lockRepo: lockRepo}
}

var _ portssvc.PeriodLockSvcFacade = (*periodLockService)(nil)

// IsPeriodLocked reports whether the period is locked against posting.
// Absence of a lock row means the period is open.
func (s *periodLockService) IsPeriodLocked(ctx context.Context, companyID string, fiscalYear int, fiscalPeriod domain.FiscalPeriod) (bool, error) {
	lock, err := s.lockRepo.FindLock(ctx, companyID, fiscalYear, fiscalPeriod)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to fetch period lock: %w", err)
	}
	return lock.IsLocked, nil
}

// GetPeriodLock retrieves the lock row, or apperrors.ErrNotFound.
func (s *periodLockService) GetPeriodLock(ctx context.Context, companyID string, fiscalYear int, fiscalPeriod domain.FiscalPeriod) (*domain.FiscalPeriodLock, error) {
	return s.lockRepo.FindLock(ctx, companyID, fiscalYear, fiscalPeriod)
}

// LockPeriod closes the period against posting.
func (s *periodLockService) LockPeriod(ctx context.Context, companyID string, fiscalYear int, fiscalPeriod domain.FiscalPeriod, userID string) error {
	return s.setLocked(ctx, companyID, fiscalYear, fiscalPeriod, userID, true)
}

// UnlockPeriod reopens the period.
func (s *periodLockService) UnlockPeriod(ctx context.Context, companyID string, fiscalYear int, fiscalPeriod domain.FiscalPeriod, userID string) error {
	return s.setLocked(ctx, companyID, fiscalYear, fiscalPeriod, userID, false)
}

func (s *periodLockService) setLocked(ctx context.Context, companyID string, fiscalYear int, fiscalPeriod domain.FiscalPeriod, userID string, locked bool) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !fiscalPeriod.Valid() {
		return fmt.Errorf("%w: unknown fiscal period %s", apperrors.ErrValidation, fiscalPeriod)
	}

	now := time.Now().UTC()
	lock := domain.FiscalPeriodLock{
		LockID:       uuid.NewString(),
		CompanyID:    companyID,
		FiscalYear:   fiscalYear,
		FiscalPeriod: fiscalPeriod,
		IsLocked:     locked,
		LockedAt:     &now,
		LockedBy:     &userID,
	}

	if err := s.lockRepo.UpsertLock(ctx, lock); err != nil {
		logger.Error("Failed to upsert period lock", slog.String("error", err.Error()), slog.String("company_id", companyID))
		return fmt.Errorf("failed to update period lock: %w", err)
	}

	logger.Info("Fiscal period lock updated",
		slog.String("company_id", companyID),
		slog.Int("fiscal_year", fiscalYear),
		slog.String("fiscal_period", string(fiscalPeriod)),
		slog.Bool("locked", locked))
	return nil
}
